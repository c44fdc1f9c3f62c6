package purchases

import (
	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

// BillUpdateParams is the body of Update. TermID and DueDate only apply to
// credit bills; DepositItems are required for cash bills.
type BillUpdateParams struct {
	PaymentMode common.PaymentMode `json:"payment_mode"`
	common.DocumentFields
	Contact2ID   int                        `json:"contact2_id,omitempty"`
	TermID       int                        `json:"term_id,omitempty"`
	DueDate      string                     `json:"due_date,omitempty"`
	BillingParty string                     `json:"billing_party,omitempty"`
	TaxMode      common.TaxMode             `json:"tax_mode"`
	FormItems    []common.FormItemParams    `json:"form_items"`
	DepositItems []common.DepositItemParams `json:"deposit_items,omitempty"`
	common.EInvoiceParams
}

// BillCreateParams is the body of Create.
type BillCreateParams struct {
	BillUpdateParams
	Status common.Status `json:"status"`
}

// Bill is a supplier invoice.
type Bill struct {
	common.Document
	PaymentMode  common.PaymentMode   `json:"payment_mode"`
	Contact2ID   *int                 `json:"contact2_id"`
	Contact2Name *string              `json:"contact2_name"`
	TermID       *int                 `json:"term_id"`
	TermName     *string              `json:"term_name"`
	TermItems    []common.TermItem    `json:"term_items"`
	DueDate      *string              `json:"due_date"`
	BillingParty *string              `json:"billing_party"`
	TaxMode      common.TaxMode       `json:"tax_mode"`
	FormItems    []common.FormItem    `json:"form_items"`
	DepositItems []common.DepositItem `json:"deposit_items"`
	LinkedItems  []common.LinkedItem  `json:"linked_items"`
	Balance      float64              `json:"balance"`
	common.EInvoice
}

// BillListParams filters List. Status defaults to everything but void.
type BillListParams struct {
	common.DocumentListParams
	PaymentMode   common.PaymentMode   `json:"payment_mode,omitempty"`
	PaymentStatus common.PaymentStatus `json:"payment_status,omitempty"`
	Extra         httpclient.Params    `json:"-"`
}

// BillListItem is one row of List.
type BillListItem struct {
	common.DocumentSummary
	PaymentMode  common.PaymentMode `json:"payment_mode"`
	Contact2Name *string            `json:"contact2_name,omitempty"`
	DueDate      *string            `json:"due_date,omitempty"`
	BillingParty *string            `json:"billing_party,omitempty"`
	Balance      *float64           `json:"balance,omitempty"`
	common.MyInvoisDocument
}

// BillList is the List response.
type BillList struct {
	Paging       common.Pagination `json:"paging"`
	Transactions []BillListItem    `json:"transactions"`
}

// BillService manages /purchases/bills.
type BillService = resource.Documents[Bill, BillList, BillCreateParams, BillUpdateParams, BillListParams]

// NewBillService binds the service to client.
func NewBillService(client *httpclient.Client) *BillService {
	return resource.NewDocuments[Bill, BillList, BillCreateParams, BillUpdateParams, BillListParams](client, billsPath)
}
