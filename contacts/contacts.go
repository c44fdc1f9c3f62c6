package contacts

import (
	"context"

	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

// API groups the contact services.
type API struct {
	Contacts *ContactService
	Groups   *GroupService
}

// New binds the contact services to client.
func New(client *httpclient.Client) *API {
	return &API{
		Contacts: NewContactService(client),
		Groups:   NewGroupService(client),
	}
}

// EntityType is the legal form of a contact.
type EntityType string

const (
	MalaysianCompany    EntityType = "MALAYSIAN_COMPANY"
	MalaysianIndividual EntityType = "MALAYSIAN_INDIVIDUAL"
	ForeignCompany      EntityType = "FOREIGN_COMPANY"
	ForeignIndividual   EntityType = "FOREIGN_INDIVIDUAL"
	ExemptedPerson      EntityType = "EXEMPTED_PERSON"
)

// RegNoType is the kind of registration number.
type RegNoType string

const (
	RegNoNRIC     RegNoType = "NRIC"
	RegNoBRN      RegNoType = "BRN"
	RegNoPassport RegNoType = "PASSPORT"
	RegNoArmy     RegNoType = "ARMY"
)

// Type is a role a contact plays.
type Type string

const (
	Customer Type = "customer"
	Supplier Type = "supplier"
	Employee Type = "employee"
)

// PersonParams is a contact person. ID selects an existing person on update.
type PersonParams struct {
	ID                int     `json:"id,omitempty"`
	FirstName         *string `json:"first_name,omitempty"`
	LastName          *string `json:"last_name,omitempty"`
	IsDefaultBilling  *bool   `json:"is_default_billing,omitempty"`
	IsDefaultShipping *bool   `json:"is_default_shipping,omitempty"`
}

// CustomFieldParams sets a custom field value.
type CustomFieldParams struct {
	ID      int     `json:"id,omitempty"`
	FieldID int     `json:"field_id"`
	Value   *string `json:"value,omitempty"`
}

// AddressParams is a postal address. ID selects an existing address on
// update.
type AddressParams struct {
	ID                int    `json:"id,omitempty"`
	Name              string `json:"name,omitempty"`
	Street            string `json:"street,omitempty"`
	City              string `json:"city,omitempty"`
	State             string `json:"state,omitempty"`
	Postcode          string `json:"postcode,omitempty"`
	CountryCode       string `json:"country_code,omitempty"`
	IsDefaultBilling  *bool  `json:"is_default_billing,omitempty"`
	IsDefaultShipping *bool  `json:"is_default_shipping,omitempty"`
}

// FileParams attaches an uploaded file.
type FileParams struct {
	FileID int `json:"file_id"`
}

// ContactCreateParams is the body of Create. EntityType, LegalName and
// Types are required.
type ContactCreateParams struct {
	EntityType              EntityType          `json:"entity_type"`
	LegalName               string              `json:"legal_name"`
	OtherName               string              `json:"other_name,omitempty"`
	RegNoType               RegNoType           `json:"reg_no_type,omitempty"`
	RegNo                   string              `json:"reg_no,omitempty"`
	OldRegNo                *string             `json:"old_reg_no,omitempty"`
	TaxIDNo                 *string             `json:"tax_id_no,omitempty"`
	SSTRegNo                *string             `json:"sst_reg_no,omitempty"`
	ContactPersons          []PersonParams      `json:"contact_persons,omitempty"`
	GroupIDs                []int               `json:"group_ids,omitempty"`
	PriceLevelID            int                 `json:"price_level_id,omitempty"`
	Email                   string              `json:"email,omitempty"`
	PhoneNo                 string              `json:"phone_no,omitempty"`
	Types                   []Type              `json:"types"`
	TagIDs                  []int               `json:"tag_ids,omitempty"`
	DefaultCurrencyCode     string              `json:"default_currency_code,omitempty"`
	DefaultTermID           int                 `json:"default_term_id,omitempty"`
	DefaultIncomeAccountID  int                 `json:"default_income_account_id,omitempty"`
	DefaultExpenseAccountID int                 `json:"default_expense_account_id,omitempty"`
	Fields                  []CustomFieldParams `json:"fields,omitempty"`
	Remarks                 string              `json:"remarks,omitempty"`
	ReceiveMonthlyStatement *bool               `json:"receive_monthly_statement,omitempty"`
	ReceiveInvoiceReminder  *bool               `json:"receive_invoice_reminder,omitempty"`
	Key                     string              `json:"key,omitempty"`
	Addresses               []AddressParams     `json:"addresses,omitempty"`
	ReceivableAccountID     int                 `json:"receivable_account_id,omitempty"`
	DebtorCreditLimit       *float64            `json:"debtor_credit_limit,omitempty"`
	PayableAccountID        int                 `json:"payable_account_id,omitempty"`
	Files                   []FileParams        `json:"files,omitempty"`
}

// ContactUpdateParams is the body of Update.
type ContactUpdateParams struct {
	ContactCreateParams
	IsArchived *bool `json:"is_archived,omitempty"`
}

// Person is a contact person as returned by the API.
type Person struct {
	ID                int     `json:"id"`
	FirstName         *string `json:"first_name"`
	LastName          *string `json:"last_name"`
	IsDefaultBilling  bool    `json:"is_default_billing"`
	IsDefaultShipping bool    `json:"is_default_shipping"`
}

// CustomField is a custom field value.
type CustomField struct {
	ID        int     `json:"id"`
	FieldID   int     `json:"field_id"`
	DataType  string  `json:"data_type"`
	Name      string  `json:"name"`
	Value     *string `json:"value"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// Address is a postal address.
type Address struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Street            string `json:"street"`
	City              string `json:"city"`
	State             string `json:"state"`
	Postcode          string `json:"postcode"`
	CountryCode       string `json:"country_code"`
	IsDefaultBilling  bool   `json:"is_default_billing"`
	IsDefaultShipping bool   `json:"is_default_shipping"`
}

// FileDetail describes an attached file.
type FileDetail struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	MimeType  string `json:"mime_type"`
	Size      int64  `json:"size"`
	Data      any    `json:"data,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// File is a contact-to-file link.
type File struct {
	ID        int          `json:"id"`
	FileID    int          `json:"file_id"`
	File      []FileDetail `json:"file"`
	CreatedAt string       `json:"created_at"`
	UpdatedAt string       `json:"updated_at"`
}

// Contact is a customer, supplier or employee.
type Contact struct {
	ID                      int           `json:"id"`
	BillingFirstName        *string       `json:"billing_first_name"`
	BillingLastName         *string       `json:"billing_last_name"`
	ShippingFirstName       *string       `json:"shipping_first_name"`
	ShippingLastName        *string       `json:"shipping_last_name"`
	ContactPersons          []Person      `json:"contact_persons"`
	EntityType              EntityType    `json:"entity_type"`
	LegalName               string        `json:"legal_name"`
	OtherName               *string       `json:"other_name"`
	RegNoType               *RegNoType    `json:"reg_no_type"`
	RegNo                   *string       `json:"reg_no"`
	OldRegNo                *string       `json:"old_reg_no"`
	TaxIDNo                 *string       `json:"tax_id_no"`
	SSTRegNo                *string       `json:"sst_reg_no"`
	GroupIDs                []int         `json:"group_ids"`
	PriceLevelID            *int          `json:"price_level_id"`
	Email                   *string       `json:"email"`
	PhoneNo                 *string       `json:"phone_no"`
	Types                   []Type        `json:"types"`
	TagIDs                  []int         `json:"tag_ids"`
	DefaultCurrencyCode     *string       `json:"default_currency_code"`
	DefaultTermID           *int          `json:"default_term_id"`
	DefaultIncomeAccountID  *int          `json:"default_income_account_id"`
	DefaultExpenseAccountID *int          `json:"default_expense_account_id"`
	Fields                  []CustomField `json:"fields"`
	Remarks                 *string       `json:"remarks"`
	ReceiveMonthlyStatement bool          `json:"receive_monthly_statement"`
	ReceiveInvoiceReminder  bool          `json:"receive_invoice_reminder"`
	Key                     *string       `json:"key"`
	Addresses               []Address     `json:"addresses"`
	ReceivableAccountID     *int          `json:"receivable_account_id"`
	DebtorCreditLimit       *float64      `json:"debtor_credit_limit"`
	PayableAccountID        *int          `json:"payable_account_id"`
	BillingParty            *string       `json:"billing_party"`
	ShippingParty           *string       `json:"shipping_party"`
	Files                   []File        `json:"files"`
	IsArchived              bool          `json:"is_archived"`
	IsMyInvoisReady         bool          `json:"is_myinvois_ready"`
	CreatedAt               string        `json:"created_at"`
	UpdatedAt               string        `json:"updated_at"`
}

// ListStatus filters contacts by archive state.
type ListStatus string

const (
	ListAll      ListStatus = "ALL"
	ListActive   ListStatus = "ACTIVE"
	ListInactive ListStatus = "INACTIVE"
)

// ContactListParams filters List.
type ContactListParams struct {
	Search  string `json:"search,omitempty"`
	GroupID int    `json:"group_id,omitempty"`
	Page    int    `json:"page,omitempty"`
	// PageSize defaults to 30 on the server.
	PageSize int `json:"page_size,omitempty"`
	// SortBy is one of name, receivable, payable or created_at.
	SortBy          string            `json:"sort_by,omitempty"`
	SortDir         common.SortDir    `json:"sort_dir,omitempty"`
	Status          ListStatus        `json:"status,omitempty"`
	IsMyInvoisReady *bool             `json:"is_myinvois_ready,omitempty"`
	Type            Type              `json:"type,omitempty"`
	Extra           httpclient.Params `json:"-"`
}

// ContactListItem is one row of List.
type ContactListItem struct {
	ID         int        `json:"id"`
	EntityType EntityType `json:"entity_type"`
	LegalName  string     `json:"legal_name"`
	OtherName  *string    `json:"other_name"`
	Email      *string    `json:"email"`
	PhoneNo    *string    `json:"phone_no"`
	Types      []Type     `json:"types"`
	IsArchived bool       `json:"is_archived"`
	CreatedAt  string     `json:"created_at"`
	UpdatedAt  string     `json:"updated_at"`
}

// ContactList is the List response.
type ContactList struct {
	Paging   common.Pagination `json:"paging"`
	Contacts []ContactListItem `json:"contacts"`
}

// ContactService manages /contacts.
type ContactService struct {
	col *resource.Collection[Contact, ContactList]
}

// NewContactService binds the service to client.
func NewContactService(client *httpclient.Client) *ContactService {
	return &ContactService{col: resource.NewCollection[Contact, ContactList](client, "/contacts", "contact")}
}

// Create adds a contact.
func (s *ContactService) Create(ctx context.Context, params *ContactCreateParams) (*Contact, error) {
	return s.col.Create(ctx, params)
}

// List returns contacts matching params. params may be nil.
func (s *ContactService) List(ctx context.Context, params *ContactListParams) (*ContactList, error) {
	return s.col.List(ctx, params)
}

// Get fetches one contact.
func (s *ContactService) Get(ctx context.Context, id int) (*Contact, error) {
	return s.col.Get(ctx, id)
}

// Update replaces a contact.
func (s *ContactService) Update(ctx context.Context, id int, params *ContactUpdateParams) (*Contact, error) {
	return s.col.Update(ctx, id, params)
}

// Archive hides a contact from pickers without deleting it.
func (s *ContactService) Archive(ctx context.Context, id int) (*Contact, error) {
	return s.col.SetArchived(ctx, id, true)
}

// Unarchive restores an archived contact.
func (s *ContactService) Unarchive(ctx context.Context, id int) (*Contact, error) {
	return s.col.SetArchived(ctx, id, false)
}

// Delete removes a contact.
func (s *ContactService) Delete(ctx context.Context, id int) error {
	return s.col.Delete(ctx, id)
}
