package purchases

import (
	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

// PaymentUpdateParams is the body of Update. Amount is the total paid;
// LinkItems allocate it to bills.
type PaymentUpdateParams struct {
	common.DocumentFields
	Amount       float64                    `json:"amount"`
	LinkItems    []common.LinkItemParams    `json:"link_items,omitempty"`
	DepositItems []common.DepositItemParams `json:"deposit_items"`
	Email        *common.EmailDetails       `json:"email,omitempty"`
}

// PaymentCreateParams is the body of Create.
type PaymentCreateParams struct {
	PaymentUpdateParams
	Status common.Status `json:"status"`
}

// Payment is money paid to a supplier.
type Payment struct {
	common.Document
	LinkItems    []common.LinkItem    `json:"link_items"`
	LinkedItems  []common.LinkedItem  `json:"linked_items"`
	DepositItems []common.DepositItem `json:"deposit_items"`
	Balance      float64              `json:"balance"`
}

// PaymentListParams filters List. PaymentStatus takes the lower-case values.
type PaymentListParams struct {
	common.DocumentListParams
	PaymentStatus common.PaymentStatus `json:"payment_status,omitempty"`
	EmailStatus   common.EmailStatus   `json:"email_status,omitempty"`
	AccountID     string               `json:"account_id,omitempty"`
	Extra         httpclient.Params    `json:"-"`
}

// PaymentListItem is one row of List.
type PaymentListItem struct {
	common.DocumentSummary
	Balance *float64 `json:"balance,omitempty"`
}

// PaymentList is the List response.
type PaymentList struct {
	Paging       common.Pagination `json:"paging"`
	Transactions []PaymentListItem `json:"transactions"`
}

// PaymentService manages /purchases/payments.
type PaymentService = resource.Documents[Payment, PaymentList, PaymentCreateParams, PaymentUpdateParams, PaymentListParams]

// NewPaymentService binds the service to client.
func NewPaymentService(client *httpclient.Client) *PaymentService {
	return resource.NewDocuments[Payment, PaymentList, PaymentCreateParams, PaymentUpdateParams, PaymentListParams](client, paymentsPath)
}
