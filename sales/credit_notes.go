package sales

import (
	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

// CreditNoteUpdateParams is the body of Update. LinkItems apply the credit
// to outstanding invoices.
type CreditNoteUpdateParams struct {
	common.DocumentFields
	common.PartyFields
	Title     string                  `json:"title,omitempty"`
	TaxMode   common.TaxMode          `json:"tax_mode"`
	FormItems []common.FormItemParams `json:"form_items"`
	LinkItems []common.LinkItemParams `json:"link_items,omitempty"`
	Email     *common.EmailDetails    `json:"email,omitempty"`
	common.EInvoiceParams
}

// CreditNoteCreateParams is the body of Create.
type CreditNoteCreateParams struct {
	CreditNoteUpdateParams
	Status common.Status `json:"status"`
}

// CreditNote is a customer credit note.
type CreditNote struct {
	common.Document
	common.Party
	Title       *string             `json:"title"`
	TaxMode     common.TaxMode      `json:"tax_mode"`
	FormItems   []common.FormItem   `json:"form_items"`
	LinkItems   []common.LinkItem   `json:"link_items"`
	LinkedItems []common.LinkedItem `json:"linked_items"`
	Balance     float64             `json:"balance"`
	common.EInvoice
}

// CreditNoteListParams filters List.
type CreditNoteListParams struct {
	common.DocumentListParams
	PaymentStatus common.PaymentStatus `json:"payment_status,omitempty"`
	EmailStatus   common.EmailStatus   `json:"email_status,omitempty"`
	Extra         httpclient.Params    `json:"-"`
}

// CreditNoteListItem is one row of List.
type CreditNoteListItem struct {
	common.DocumentSummary
	common.PartySummary
	Balance *float64 `json:"balance,omitempty"`
	common.EInvoice
}

// CreditNoteList is the List response.
type CreditNoteList struct {
	Paging       common.Pagination    `json:"paging"`
	Transactions []CreditNoteListItem `json:"transactions"`
}

// CreditNoteService manages /sales/credit_notes.
type CreditNoteService = resource.Documents[
	CreditNote, CreditNoteList,
	CreditNoteCreateParams, CreditNoteUpdateParams, CreditNoteListParams,
]

// NewCreditNoteService binds the service to client.
func NewCreditNoteService(client *httpclient.Client) *CreditNoteService {
	return resource.NewDocuments[
		CreditNote, CreditNoteList,
		CreditNoteCreateParams, CreditNoteUpdateParams, CreditNoteListParams,
	](client, creditNotesPath)
}
