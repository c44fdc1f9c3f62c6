package common

// Pagination is the paging block of transaction, contact, account and
// product lists.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// PageInfo is the paging block of control-panel lists.
type PageInfo struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// EmailDetails asks the server to e-mail the document after saving.
type EmailDetails struct {
	ToAddresses    []string `json:"to_addresses"`
	CCAddresses    []string `json:"cc_addresses,omitempty"`
	ReplyToAddress string   `json:"reply_to_address,omitempty"`
	Subject        string   `json:"subject,omitempty"`
	Message        string   `json:"message,omitempty"`
	AttachPDF      *bool    `json:"attach_pdf,omitempty"`
	FormDesignID   int      `json:"form_design_id,omitempty"`
}

// FileAttachment links an uploaded file to a document.
type FileAttachment struct {
	FileID   int  `json:"file_id"`
	IsShared bool `json:"is_shared"`
}

// AttachedFile is a file link as returned on a document.
type AttachedFile struct {
	ID        int           `json:"id"`
	FileID    int           `json:"file_id"`
	File      []FileDetails `json:"file"`
	IsShared  bool          `json:"is_shared"`
	CreatedAt string        `json:"created_at"`
}

// FileDetails describes a stored file.
type FileDetails struct {
	ID        int    `json:"id"`
	URL       string `json:"url"`
	Filename  string `json:"filename"`
	MimeType  string `json:"mime_type"`
	Size      int64  `json:"size"`
	CreatedAt string `json:"created_at"`
}

// StatusUpdate is the body of an UpdateStatus call.
type StatusUpdate struct {
	Status Status `json:"status"`
}

// ArchiveUpdate is the body of an archive toggle. IsArchived is always sent.
type ArchiveUpdate struct {
	IsArchived bool `json:"is_archived"`
}

// MyInvoisDocument holds the e-invoice submission state returned on
// invoices, bills and credit notes.
type MyInvoisDocument struct {
	MyInvoisDocumentUUID   *string `json:"myinvois_document_uuid"`
	MyInvoisDocumentLongID *string `json:"myinvois_document_long_id"`
	MyInvoisDocumentStatus *string `json:"myinvois_document_status"`
	IssuedAt               *string `json:"issued_at"`
	ValidatedAt            *string `json:"validated_at"`
	RejectedAt             *string `json:"rejected_at"`
	RejectMessage          *string `json:"reject_message"`
	CancelledAt            *string `json:"cancelled_at"`
	CancelMessage          *string `json:"cancel_message"`
}

// CustomsInfo holds the optional customs references of export documents.
type CustomsInfo struct {
	CustomsFormNo   *string `json:"customs_form_no,omitempty"`
	CustomsK2FormNo *string `json:"customs_k2_form_no,omitempty"`
	Incoterms       *string `json:"incoterms,omitempty"`
}
