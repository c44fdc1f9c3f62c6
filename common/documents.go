package common

// DocumentFields are the header fields of every sales and purchase document
// body. Number is generated by the server on create and required on update.
type DocumentFields struct {
	ContactID    int              `json:"contact_id"`
	Number       string           `json:"number,omitempty"`
	Number2      string           `json:"number2,omitempty"`
	Date         string           `json:"date"`
	CurrencyCode string           `json:"currency_code"`
	ExchangeRate float64          `json:"exchange_rate"`
	TagIDs       []int            `json:"tag_ids,omitempty"`
	Description  string           `json:"description,omitempty"`
	Remarks      string           `json:"remarks,omitempty"`
	Files        []FileAttachment `json:"files,omitempty"`
}

// PartyFields are the billing and shipping fields of trade documents.
type PartyFields struct {
	BillingParty  string `json:"billing_party,omitempty"`
	ShowShipping  *bool  `json:"show_shipping,omitempty"`
	ShippingParty string `json:"shipping_party,omitempty"`
	ShippingInfo  string `json:"shipping_info,omitempty"`
}

// Document is the header shared by every returned sales and purchase
// document.
type Document struct {
	ID             int            `json:"id"`
	ContactID      int            `json:"contact_id"`
	ContactName    string         `json:"contact_name"`
	Number         string         `json:"number"`
	Number2        *string        `json:"number2"`
	Date           string         `json:"date"`
	CurrencyCode   string         `json:"currency_code"`
	CurrencySymbol string         `json:"currency_symbol"`
	ExchangeRate   float64        `json:"exchange_rate"`
	TagIDs         []int          `json:"tag_ids"`
	TagNames       []string       `json:"tag_names"`
	Description    *string        `json:"description"`
	Remarks        *string        `json:"remarks"`
	Amount         float64        `json:"amount"`
	Status         Status         `json:"status"`
	Type           string         `json:"type"`
	ShortLink      *string        `json:"short_link"`
	Files          []AttachedFile `json:"files"`
	CreatedAt      string         `json:"created_at,omitempty"`
	UpdatedAt      string         `json:"updated_at,omitempty"`
}

// Party is the billing and shipping block of returned trade documents.
type Party struct {
	BillingParty  *string `json:"billing_party"`
	ShowShipping  bool    `json:"show_shipping"`
	ShippingInfo  *string `json:"shipping_info"`
	ShippingParty *string `json:"shipping_party"`
}

// DocumentListParams are the list filters common to all document lists.
// SortBy is one of number, date, contact_name, number2, title, description,
// amount, balance or created_at depending on the document.
type DocumentListParams struct {
	Search       string  `json:"search,omitempty"`
	CustomSearch string  `json:"custom_search,omitempty"`
	ContactID    int     `json:"contact_id,omitempty"`
	DateFrom     string  `json:"date_from,omitempty"`
	DateTo       string  `json:"date_to,omitempty"`
	Status       Status  `json:"status,omitempty"`
	Page         int     `json:"page,omitempty"`
	PageSize     int     `json:"page_size,omitempty"`
	SortBy       string  `json:"sort_by,omitempty"`
	SortDir      SortDir `json:"sort_dir,omitempty"`
}

// DocumentSummary is one row of a document list.
type DocumentSummary struct {
	ID             int         `json:"id"`
	Number         string      `json:"number"`
	Number2        *string     `json:"number2"`
	ContactID      int         `json:"contact_id"`
	ContactName    string      `json:"contact_name"`
	ContactEmail   *string     `json:"contact_email,omitempty"`
	Date           string      `json:"date"`
	CurrencyCode   string      `json:"currency_code"`
	CurrencySymbol string      `json:"currency_symbol"`
	ExchangeRate   float64     `json:"exchange_rate"`
	Description    *string     `json:"description"`
	TagNames       []string    `json:"tag_names,omitempty"`
	Amount         float64     `json:"amount"`
	Status         Status      `json:"status"`
	EmailStatus    EmailStatus `json:"email_status,omitempty"`
	FileCount      int         `json:"file_count,omitempty"`
	ShortLink      string      `json:"short_link,omitempty"`
	CreatedBy      string      `json:"created_by,omitempty"`
	CreatedAt      string      `json:"created_at"`
	UpdatedAt      string      `json:"updated_at"`
}

// PartySummary is the billing and shipping block of trade document rows.
type PartySummary struct {
	BillingParty  *string `json:"billing_party,omitempty"`
	ShippingParty *string `json:"shipping_party,omitempty"`
	Title         *string `json:"title,omitempty"`
}

// EInvoice is the MyInvois state of invoices, bills and credit notes.
type EInvoice struct {
	CustomsInfo
	MyInvoisAction *MyInvoisAction `json:"myinvois_action"`
	MyInvoisDocument
}

// EInvoiceParams are the customs and MyInvois fields of invoice, bill and
// credit note bodies.
type EInvoiceParams struct {
	CustomsInfo
	MyInvoisAction MyInvoisAction `json:"myinvois_action,omitempty"`
}
