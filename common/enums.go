package common

// TaxMode says whether line prices include tax.
type TaxMode string

const (
	TaxInclusive TaxMode = "inclusive"
	TaxExclusive TaxMode = "exclusive"
)

// PaymentMode is the settlement mode of invoices and bills.
type PaymentMode string

const (
	PaymentCash   PaymentMode = "cash"
	PaymentCredit PaymentMode = "credit"
	// PaymentClaim is only valid for bills.
	PaymentClaim PaymentMode = "claim"
)

// Status is the workflow state of a transaction.
type Status string

const (
	StatusDraft           Status = "draft"
	StatusPendingApproval Status = "pending_approval"
	StatusReady           Status = "ready"
	StatusVoid            Status = "void"
	// StatusAll only applies to list filters.
	StatusAll Status = "all"
)

// PaymentStatus filters documents by settlement. Sales and purchase documents
// use the upper-case values, payments the lower-case ones.
type PaymentStatus string

const (
	PaymentStatusPaid        PaymentStatus = "PAID"
	PaymentStatusOutstanding PaymentStatus = "OUTSTANDING"
	PaymentStatusOverdue     PaymentStatus = "OVERDUE"

	PaymentStatusPaidLower        PaymentStatus = "paid"
	PaymentStatusOutstandingLower PaymentStatus = "outstanding"
)

// EmailStatus is the delivery state of a document e-mail.
type EmailStatus string

const (
	EmailUnsent  EmailStatus = "UNSENT"
	EmailPending EmailStatus = "PENDING"
	EmailSent    EmailStatus = "SENT"
	EmailBounced EmailStatus = "BOUNCED"
	EmailOpened  EmailStatus = "OPENED"
	EmailViewed  EmailStatus = "VIEWED"
)

// TransferStatus tracks how much of an order was carried forward.
type TransferStatus string

const (
	TransferAll                TransferStatus = "ALL"
	TransferOutstanding        TransferStatus = "OUTSTANDING"
	TransferNotTransferred     TransferStatus = "NOT_TRANSFERRED"
	TransferPartialTransferred TransferStatus = "PARTIAL_TRANSFERRED"
	TransferTransferred        TransferStatus = "TRANSFERRED"
)

// MyInvoisAction selects how a document is submitted to MyInvois.
type MyInvoisAction string

const (
	MyInvoisNormal   MyInvoisAction = "NORMAL"
	MyInvoisValidate MyInvoisAction = "VALIDATE"
	MyInvoisExternal MyInvoisAction = "EXTERNAL"
)

// SortDir is the list sort direction.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// FormItemType marks structural lines. Normal lines leave it empty.
type FormItemType string

const (
	FormItemBundle     FormItemType = "bundle"
	FormItemSubtitle   FormItemType = "subtitle"
	FormItemSubtotal   FormItemType = "subtotal"
	FormItemBundleItem FormItemType = "bundle_item"
)
