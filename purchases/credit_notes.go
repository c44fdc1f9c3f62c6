package purchases

import (
	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

// CreditNoteUpdateParams is the body of Update. LinkItems apply the credit
// to outstanding bills.
type CreditNoteUpdateParams struct {
	common.DocumentFields
	BillingParty string                  `json:"billing_party,omitempty"`
	TaxMode      common.TaxMode          `json:"tax_mode"`
	FormItems    []common.FormItemParams `json:"form_items"`
	LinkItems    []common.LinkItemParams `json:"link_items,omitempty"`
	common.EInvoiceParams
}

// CreditNoteCreateParams is the body of Create.
type CreditNoteCreateParams struct {
	CreditNoteUpdateParams
	Status common.Status `json:"status"`
}

// CreditNote is a supplier credit note.
type CreditNote struct {
	common.Document
	BillingParty *string             `json:"billing_party"`
	TaxMode      common.TaxMode      `json:"tax_mode"`
	FormItems    []common.FormItem   `json:"form_items"`
	LinkItems    []common.LinkItem   `json:"link_items"`
	LinkedItems  []common.LinkedItem `json:"linked_items"`
	Balance      float64             `json:"balance"`
	common.EInvoice
}

// CreditNoteListParams filters List.
type CreditNoteListParams struct {
	common.DocumentListParams
	PaymentStatus common.PaymentStatus `json:"payment_status,omitempty"`
	Extra         httpclient.Params    `json:"-"`
}

// CreditNoteListItem is one row of List.
type CreditNoteListItem struct {
	common.DocumentSummary
	Balance *float64 `json:"balance,omitempty"`
	common.MyInvoisDocument
}

// CreditNoteList is the List response.
type CreditNoteList struct {
	Paging       common.Pagination    `json:"paging"`
	Transactions []CreditNoteListItem `json:"transactions"`
}

// CreditNoteService manages /purchases/credit_notes.
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
