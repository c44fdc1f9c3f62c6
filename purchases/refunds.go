package purchases

import (
	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

// RefundUpdateParams is the body of Update.
type RefundUpdateParams struct {
	common.DocumentFields
	LinkItems    []common.LinkItemParams    `json:"link_items,omitempty"`
	DepositItems []common.DepositItemParams `json:"deposit_items"`
	Email        *common.EmailDetails       `json:"email,omitempty"`
}

// RefundCreateParams is the body of Create.
type RefundCreateParams struct {
	RefundUpdateParams
	Status common.Status `json:"status"`
}

// Refund is money returned by a supplier.
type Refund struct {
	common.Document
	LinkItems    []common.LinkItem    `json:"link_items"`
	LinkedItems  []common.LinkedItem  `json:"linked_items"`
	DepositItems []common.DepositItem `json:"deposit_items"`
	Balance      float64              `json:"balance"`
}

// RefundListParams filters List. PaymentStatus takes the lower-case values.
type RefundListParams struct {
	common.DocumentListParams
	PaymentStatus common.PaymentStatus `json:"payment_status,omitempty"`
	EmailStatus   common.EmailStatus   `json:"email_status,omitempty"`
	AccountID     string               `json:"account_id,omitempty"`
	Extra         httpclient.Params    `json:"-"`
}

// RefundList is the List response.
type RefundList struct {
	Paging       common.Pagination        `json:"paging"`
	Transactions []common.DocumentSummary `json:"transactions"`
}

// RefundService manages /purchases/refunds.
type RefundService = resource.Documents[Refund, RefundList, RefundCreateParams, RefundUpdateParams, RefundListParams]

// NewRefundService binds the service to client.
func NewRefundService(client *httpclient.Client) *RefundService {
	return resource.NewDocuments[Refund, RefundList, RefundCreateParams, RefundUpdateParams, RefundListParams](client, refundsPath)
}
