package accounting

import (
	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

const journalEntriesPath = "/journal_entries"

// JournalItemParams is one debit or credit line. Exactly one of the amounts
// is normally set.
type JournalItemParams struct {
	ID           int      `json:"id,omitempty"`
	Line         int      `json:"line"`
	AccountID    int      `json:"account_id"`
	DebitAmount  *float64 `json:"debit_amount,omitempty"`
	CreditAmount *float64 `json:"credit_amount,omitempty"`
	Description  string   `json:"description,omitempty"`
	TaxCodeID    int      `json:"tax_code_id,omitempty"`
}

// JournalEntryCreateParams is the body of Create.
type JournalEntryCreateParams struct {
	ContactID    int                     `json:"contact_id,omitempty"`
	Number       string                  `json:"number,omitempty"`
	Number2      string                  `json:"number2,omitempty"`
	Date         string                  `json:"date"`
	CurrencyCode string                  `json:"currency_code"`
	ExchangeRate float64                 `json:"exchange_rate"`
	TagIDs       []int                   `json:"tag_ids,omitempty"`
	JournalItems []JournalItemParams     `json:"journal_items"`
	Description  string                  `json:"description,omitempty"`
	InternalNote string                  `json:"internal_note,omitempty"`
	Remarks      string                  `json:"remarks,omitempty"`
	Status       common.Status           `json:"status"`
	Files        []common.FileAttachment `json:"files,omitempty"`
}

// JournalEntryUpdateParams is the body of Update. Number is required.
type JournalEntryUpdateParams struct {
	ContactID    int                     `json:"contact_id,omitempty"`
	Number       string                  `json:"number"`
	Number2      string                  `json:"number2,omitempty"`
	Date         string                  `json:"date"`
	CurrencyCode string                  `json:"currency_code"`
	ExchangeRate float64                 `json:"exchange_rate"`
	TagIDs       []int                   `json:"tag_ids,omitempty"`
	JournalItems []JournalItemParams     `json:"journal_items"`
	Description  string                  `json:"description,omitempty"`
	InternalNote string                  `json:"internal_note,omitempty"`
	Remarks      string                  `json:"remarks,omitempty"`
	Status       common.Status           `json:"status"`
	Files        []common.FileAttachment `json:"files,omitempty"`
}

// JournalItem is a journal line as returned by the API.
type JournalItem struct {
	ID           int      `json:"id"`
	Line         int      `json:"line"`
	AccountID    int      `json:"account_id"`
	AccountName  string   `json:"account_name"`
	AccountCode  string   `json:"account_code"`
	Description  *string  `json:"description"`
	DebitAmount  *float64 `json:"debit_amount"`
	CreditAmount *float64 `json:"credit_amount"`
}

// JournalEntry is a manual journal transaction.
type JournalEntry struct {
	ID              int                   `json:"id"`
	ContactID       *int                  `json:"contact_id"`
	Number          string                `json:"number"`
	Number2         *string               `json:"number2"`
	Date            string                `json:"date"`
	CurrencyCode    string                `json:"currency_code"`
	CurrencySymbol  string                `json:"currency_symbol"`
	ExchangeRate    float64               `json:"exchange_rate"`
	TagIDs          []int                 `json:"tag_ids"`
	TagNames        []string              `json:"tag_names"`
	JournalItems    []JournalItem         `json:"journal_items"`
	Remarks         *string               `json:"remarks"`
	Description     *string               `json:"description"`
	InternalNote    *string               `json:"internal_note"`
	Files           []common.AttachedFile `json:"files"`
	Amount          float64               `json:"amount"`
	Status          common.Status         `json:"status"`
	Type            string                `json:"type"`
	Reconciliations []map[string]any      `json:"reconciliations"`
	VoidReason      *string               `json:"void_reason"`
	VoidedAt        *string               `json:"voided_at"`
	SnapshottedAt   *string               `json:"snapshotted_at"`
}

// JournalEntryListParams filters List.
type JournalEntryListParams struct {
	Search   string            `json:"search,omitempty"`
	DateFrom string            `json:"date_from,omitempty"`
	DateTo   string            `json:"date_to,omitempty"`
	Status   common.Status     `json:"status,omitempty"`
	SortDir  common.SortDir    `json:"sort_dir,omitempty"`
	Page     int               `json:"page,omitempty"`
	PageSize int               `json:"page_size,omitempty"`
	Extra    httpclient.Params `json:"-"`
}

// JournalEntryListItem is one row of List.
type JournalEntryListItem struct {
	ID             int           `json:"id"`
	Number         string        `json:"number"`
	Number2        *string       `json:"number2"`
	Date           string        `json:"date"`
	ContactID      *int          `json:"contact_id"`
	Description    *string       `json:"description"`
	Remarks        *string       `json:"remarks"`
	CurrencyCode   string        `json:"currency_code"`
	CurrencySymbol string        `json:"currency_symbol"`
	ExchangeRate   float64       `json:"exchange_rate"`
	Amount         float64       `json:"amount"`
	Status         common.Status `json:"status"`
	TagNames       []string      `json:"tag_names"`
}

// JournalEntryList is the List response.
type JournalEntryList struct {
	Paging       common.Pagination      `json:"paging"`
	Transactions []JournalEntryListItem `json:"transactions"`
}

// JournalEntryService manages /journal_entries.
type JournalEntryService = resource.Documents[
	JournalEntry, JournalEntryList,
	JournalEntryCreateParams, JournalEntryUpdateParams, JournalEntryListParams,
]

// NewJournalEntryService binds the service to client.
func NewJournalEntryService(client *httpclient.Client) *JournalEntryService {
	return resource.NewDocuments[JournalEntry, JournalEntryList, JournalEntryCreateParams, JournalEntryUpdateParams, JournalEntryListParams](client, journalEntriesPath)
}
