package sales

import (
	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

// InvoiceUpdateParams is the body of Update. TermItems apply to credit
// invoices; DepositItems record payment received with a cash invoice.
type InvoiceUpdateParams struct {
	PaymentMode common.PaymentMode `json:"payment_mode"`
	common.DocumentFields
	common.PartyFields
	Title        string                     `json:"title,omitempty"`
	TaxMode      common.TaxMode             `json:"tax_mode"`
	FormItems    []common.FormItemParams    `json:"form_items"`
	TermItems    []common.TermItemParams    `json:"term_items,omitempty"`
	DepositItems []common.DepositItemParams `json:"deposit_items,omitempty"`
	Email        *common.EmailDetails       `json:"email,omitempty"`
	common.EInvoiceParams
}

// InvoiceCreateParams is the body of Create.
type InvoiceCreateParams struct {
	InvoiceUpdateParams
	Status common.Status `json:"status"`
}

// Invoice is a customer invoice.
type Invoice struct {
	common.Document
	common.Party
	PaymentMode    common.PaymentMode   `json:"payment_mode"`
	Title          *string              `json:"title"`
	TaxMode        common.TaxMode       `json:"tax_mode"`
	FormItems      []common.FormItem    `json:"form_items"`
	TermItems      []common.TermItem    `json:"term_items"`
	DepositItems   []common.DepositItem `json:"deposit_items"`
	LinkedItems    []common.LinkedItem  `json:"linked_items"`
	Balance        float64              `json:"balance"`
	RoundingOn     bool                 `json:"rounding_on"`
	RoundingAmount float64              `json:"rounding_amount"`
	common.EInvoice
}

// InvoiceListParams filters List.
type InvoiceListParams struct {
	common.DocumentListParams
	PaymentStatus common.PaymentStatus `json:"payment_status,omitempty"`
	PaymentMode   common.PaymentMode   `json:"payment_mode,omitempty"`
	EmailStatus   common.EmailStatus   `json:"email_status,omitempty"`
	Extra         httpclient.Params    `json:"-"`
}

// InvoiceListItem is one row of List.
type InvoiceListItem struct {
	common.DocumentSummary
	common.PartySummary
	common.EInvoice
}

// InvoiceList is the List response.
type InvoiceList struct {
	Paging       common.Pagination `json:"paging"`
	Transactions []InvoiceListItem `json:"transactions"`
}

// InvoiceService manages /sales/invoices.
type InvoiceService = resource.Documents[Invoice, InvoiceList, InvoiceCreateParams, InvoiceUpdateParams, InvoiceListParams]

// NewInvoiceService binds the service to client.
func NewInvoiceService(client *httpclient.Client) *InvoiceService {
	return resource.NewDocuments[Invoice, InvoiceList, InvoiceCreateParams, InvoiceUpdateParams, InvoiceListParams](client, invoicesPath)
}
