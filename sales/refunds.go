package sales

import (
	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

// RefundUpdateParams is the body of Update. LinkItems refund credit notes.
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

// Refund is money returned to a customer.
type Refund struct {
	common.Document
	LinkItems    []common.LinkItem    `json:"link_items"`
	DepositItems []common.DepositItem `json:"deposit_items"`
	Balance      float64              `json:"balance"`
}

type (
	RefundListParams = PaymentListParams
	RefundList       = PaymentList
)

// RefundService manages /sales/refunds.
type RefundService = resource.Documents[Refund, RefundList, RefundCreateParams, RefundUpdateParams, RefundListParams]

// NewRefundService binds the service to client.
func NewRefundService(client *httpclient.Client) *RefundService {
	return resource.NewDocuments[Refund, RefundList, RefundCreateParams, RefundUpdateParams, RefundListParams](client, refundsPath)
}
