package lists

// ListType names one list of POST /v2/lists.
type ListType string

const (
	Countries              ListType = "countries"
	Currencies             ListType = "currencies"
	Contacts               ListType = "contacts"
	ContactAddresses       ListType = "contact_addresses"
	CompanyAddresses       ListType = "company_addresses"
	ContactGroups          ListType = "contact_groups"
	ClassificationCodeList ListType = "classification_code_list"
	Products               ListType = "products"
	ProductList            ListType = "product_list"
	Product                ListType = "product"
	ProductGroups          ListType = "product_groups"
	Accounts               ListType = "accounts"
	Terms                  ListType = "terms"
	PaymentMethods         ListType = "payment_methods"
	PriceLevels            ListType = "price_levels"
	TagGroups              ListType = "tag_groups"
	AssetTypes             ListType = "asset_types"
	Fields                 ListType = "fields"
	Numberings             ListType = "numberings"
	FormDesigns            ListType = "form_designs"
	Locations              ListType = "locations"
	StockBalances          ListType = "stock_balances"
	TaxCodes               ListType = "tax_codes"
	Settings               ListType = "settings"
	Limits                 ListType = "limits"
	Users                  ListType = "users"
	Advisors               ListType = "advisors"
	StateList              ListType = "state_list"
)

// AllTypes lists every known list type.
var AllTypes = []ListType{
	Countries, Currencies, Contacts, ContactAddresses, CompanyAddresses,
	ContactGroups, ClassificationCodeList, Products, ProductList, Product,
	ProductGroups, Accounts, Terms, PaymentMethods, PriceLevels, TagGroups,
	AssetTypes, Fields, Numberings, FormDesigns, Locations, StockBalances,
	TaxCodes, Settings, Limits, Users, Advisors, StateList,
}

// Standard is the common {items, version} list shape.
type Standard[T any] struct {
	Items   []T    `json:"items"`
	Version string `json:"version,omitempty"`
}

type CountryItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type CurrencyItem struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// CurrencyList splits currencies into the groups shown by the Bukku UI.
type CurrencyList struct {
	Version        string         `json:"version"`
	FavouriteItems []CurrencyItem `json:"favourite_items"`
	PopularItems   []CurrencyItem `json:"popular_items"`
	OtherItems     []CurrencyItem `json:"other_items"`
}

type ContactItem struct {
	ID                      int      `json:"id"`
	LegalName               string   `json:"legal_name"`
	OtherName               *string  `json:"other_name"`
	RegNo                   *string  `json:"reg_no"`
	BillingFirstName        *string  `json:"billing_first_name"`
	BillingLastName         *string  `json:"billing_last_name"`
	ShippingFirstName       *string  `json:"shipping_first_name"`
	ShippingLastName        *string  `json:"shipping_last_name"`
	Types                   []string `json:"types"`
	Email                   *string  `json:"email"`
	PhoneNo                 *string  `json:"phone_no"`
	ReceivableAccountID     *int     `json:"receivable_account_id"`
	PayableAccountID        *int     `json:"payable_account_id"`
	BillingParty            *string  `json:"billing_party"`
	ShippingParty           *string  `json:"shipping_party"`
	DefaultCurrencyCode     *string  `json:"default_currency_code"`
	DefaultTermID           *int     `json:"default_term_id"`
	DefaultIncomeAccountID  *int     `json:"default_income_account_id"`
	DefaultExpenseAccountID *int     `json:"default_expense_account_id"`
	TagIDs                  []int    `json:"tag_ids"`
	Key                     *string  `json:"key"`
	IsArchived              bool     `json:"is_archived"`
	Field1                  string   `json:"field_1,omitempty"`
	Field8                  string   `json:"field_8,omitempty"`
}

type ContactAddressItem struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type CompanyAddressItem struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Address           string `json:"address"`
	IsDefaultBilling  bool   `json:"is_default_billing"`
	IsDefaultShipping bool   `json:"is_default_shipping"`
}

type ContactGroupItem struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Customers int    `json:"customers"`
	Suppliers int    `json:"suppliers"`
	Employees int    `json:"employees"`
}

type ClassificationCodeItem struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type ProductUnitItem struct {
	ID                int     `json:"id"`
	Label             string  `json:"label"`
	Rate              float64 `json:"rate"`
	SalePrice         float64 `json:"sale_price"`
	PurchasePrice     float64 `json:"purchase_price"`
	IsBase            bool    `json:"is_base"`
	IsSaleDefault     bool    `json:"is_sale_default"`
	IsPurchaseDefault bool    `json:"is_purchase_default"`
}

type ProductItem struct {
	ID                  int               `json:"id"`
	ThumbnailURL        *string           `json:"thumbnail_url"`
	SKU                 *string           `json:"sku"`
	Name                string            `json:"name"`
	TrackInventory      bool              `json:"track_inventory"`
	InventoryAccountID  *int              `json:"inventory_account_id"`
	Quantity            *float64          `json:"quantity"`
	IsSelling           bool              `json:"is_selling"`
	SaleDescription     *string           `json:"sale_description"`
	SaleAccountID       *int              `json:"sale_account_id"`
	SaleTaxCodeID       *int              `json:"sale_tax_code_id"`
	IsBuying            bool              `json:"is_buying"`
	PurchaseDescription *string           `json:"purchase_description"`
	PurchaseAccountID   *int              `json:"purchase_account_id"`
	PurchaseTaxCodeID   *int              `json:"purchase_tax_code_id"`
	Units               []ProductUnitItem `json:"units"`
	Type                string            `json:"type"`
	IsArchived          bool              `json:"is_archived"`
}

type ProductListUnitItem struct {
	ID     int     `json:"id"`
	Label  string  `json:"label"`
	Rate   float64 `json:"rate"`
	IsBase bool    `json:"is_base"`
}

type ProductListItem struct {
	ID                 int                   `json:"id"`
	ThumbnailURL       *string               `json:"thumbnail_url"`
	SKU                *string               `json:"sku"`
	Name               string                `json:"name"`
	TrackInventory     bool                  `json:"track_inventory"`
	InventoryAccountID *int                  `json:"inventory_account_id"`
	Quantity           *float64              `json:"quantity"`
	IsSelling          bool                  `json:"is_selling"`
	IsBuying           bool                  `json:"is_buying"`
	Units              []ProductListUnitItem `json:"units"`
	Type               string                `json:"type"`
	GroupNames         []string              `json:"group_names"`
	IsArchived         bool                  `json:"is_archived"`
}

type ProductChildItem struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Description        *string `json:"description"`
	UnitID             int     `json:"unit_id"`
	Quantity           float64 `json:"quantity"`
	UnitPrice          float64 `json:"unit_price"`
	Prices             []any   `json:"prices"`
	AccountID          int     `json:"account_id"`
	TrackInventory     bool    `json:"track_inventory"`
	InventoryAccountID int     `json:"inventory_account_id"`
	TaxCodeID          int     `json:"tax_code_id"`
}

// ProductDetailItem is a product with its bundle children.
type ProductDetailItem struct {
	ID          int                `json:"id"`
	Type        string             `json:"type"`
	Name        string             `json:"name"`
	Description *string            `json:"description"`
	Children    []ProductChildItem `json:"children"`
}

// ProductDetail is the "product" list; its items live under "item".
type ProductDetail struct {
	Item []ProductDetailItem `json:"item"`
}

type ProductGroupItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type AccountCurrency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// AccountItem is a chart-of-accounts node; Children nest recursively.
type AccountItem struct {
	ID           int             `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	CurrencyCode string          `json:"currency_code"`
	Currency     AccountCurrency `json:"currency"`
	Balance      float64         `json:"balance"`
	Type         string          `json:"type"`
	ParentID     *int            `json:"parent_id"`
	SystemType   *string         `json:"system_type"`
	IsLocked     bool            `json:"is_locked"`
	IsArchived   bool            `json:"is_archived"`
	Children     []AccountItem   `json:"children"`
}

type TermItem struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Value        int      `json:"value"`
	InterestOn   bool     `json:"interest_on"`
	InterestRate *float64 `json:"interest_rate"`
	IsArchived   bool     `json:"is_archived"`
}

type PaymentMethodItem struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	IsArchived bool   `json:"is_archived"`
	AccountID  *int   `json:"account_id"`
}

type PriceLevelItem struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	IsArchived bool   `json:"is_archived"`
}

type TagItem struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	IsArchived bool   `json:"is_archived"`
}

type TagGroupItem struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Tags       []TagItem `json:"tags"`
	IsArchived bool      `json:"is_archived"`
}

// TagGroupList is the "tag_groups" list; its items live under "item".
type TagGroupList struct {
	Item []TagGroupItem `json:"item"`
}

type AssetTypeItem struct {
	ID                            int     `json:"id"`
	Name                          string  `json:"name"`
	AssetAccountID                int     `json:"asset_account_id"`
	DepreciationAccountID         int     `json:"depreciation_account_id"`
	ExpenseAccountID              int     `json:"expense_account_id"`
	DefaultDepreciationMethod     string  `json:"default_depreciation_method"`
	DefaultDepreciationConvention string  `json:"default_depreciation_convention"`
	DefaultDepreciateMode         string  `json:"default_depreciate_mode"`
	DefaultDepreciationRate       float64 `json:"default_depreciation_rate"`
	DefaultUsefulYears            int     `json:"default_useful_years"`
	DefaultUsefulMonths           int     `json:"default_useful_months"`
	AssetsCount                   int     `json:"assets_count"`
	CreatedAt                     string  `json:"created_at"`
	UpdatedAt                     string  `json:"updated_at"`
}

// FieldItem is a custom field definition.
type FieldItem struct {
	ID                            int    `json:"id"`
	Name                          string `json:"name"`
	Type                          string `json:"type"`
	DataType                      string `json:"data_type"`
	DataOptions                   any    `json:"data_options"`
	IsRequired                    bool   `json:"is_required"`
	SaleQuoteShow                 bool   `json:"sale_quote_show"`
	SaleOrderShow                 bool   `json:"sale_order_show"`
	SaleDeliveryOrderShow         bool   `json:"sale_delivery_order_show"`
	SaleInvoiceShow               bool   `json:"sale_invoice_show"`
	SaleCreditNoteShow            bool   `json:"sale_credit_note_show"`
	SalePaymentShow               bool   `json:"sale_payment_show"`
	SaleRefundShow                bool   `json:"sale_refund_show"`
	PurchaseOrderShow             bool   `json:"purchase_order_show"`
	PurchaseGoodsReceivedNoteShow bool   `json:"purchase_goods_received_note_show"`
	PurchaseBillShow              bool   `json:"purchase_bill_show"`
	PurchaseCreditNoteShow        bool   `json:"purchase_credit_note_show"`
	PurchasePaymentShow           bool   `json:"purchase_payment_show"`
	PurchaseRefundShow            bool   `json:"purchase_refund_show"`
	CreatedAt                     string `json:"created_at"`
	UpdatedAt                     string `json:"updated_at"`
}

// FieldList groups field definitions by kind ("contact", "transaction").
type FieldList struct {
	Version string                 `json:"version"`
	Items   map[string][]FieldItem `json:"items"`
}

type NumberingItem struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Format    string `json:"format"`
	IsDefault bool   `json:"is_default"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type FormDesignItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Template string `json:"template"`
}

// LocationItem carries either code/name or type/format depending on the
// record.
type LocationItem struct {
	ID         int    `json:"id"`
	Code       string `json:"code,omitempty"`
	Name       string `json:"name,omitempty"`
	Type       string `json:"type,omitempty"`
	Format     string `json:"format,omitempty"`
	IsArchived *bool  `json:"is_archived,omitempty"`
	IsDefault  *bool  `json:"is_default,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type StockBalanceItem struct {
	ID      int     `json:"id"`
	Code    string  `json:"code,omitempty"`
	Name    string  `json:"name,omitempty"`
	Type    string  `json:"type,omitempty"`
	Format  string  `json:"format,omitempty"`
	Balance float64 `json:"balance"`
}

// StockBalanceList holds per-location balances of one product.
type StockBalanceList struct {
	ProductID int                `json:"product_id"`
	Items     []StockBalanceItem `json:"items"`
}

type TaxCodeItem struct {
	ID         int     `json:"id"`
	Code       string  `json:"code"`
	Rate       float64 `json:"rate"`
	TaxSystem  string  `json:"tax_system"`
	Type       string  `json:"type"`
	IsArchived bool    `json:"is_archived"`
	IsExempted bool    `json:"is_exempted"`
}

// LimitDetail is usage against a plan limit. Limit is a number, or false
// when the plan has no limit.
type LimitDetail struct {
	Usage float64 `json:"usage"`
	Limit any     `json:"limit"`
}

// LimitItem is the plan usage of the company.
type LimitItem struct {
	PlanType        string      `json:"plan_type"`
	LimitPeriodType string      `json:"limit_period_type"`
	Transaction     LimitDetail `json:"transaction"`
	Shoebox         LimitDetail `json:"shoebox"`
	Email           LimitDetail `json:"email"`
	Storage         LimitDetail `json:"storage"`
}

type UserItem struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AdvisorItem struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
}

type StateItem struct {
	StateCode string `json:"state_code"`
	Name      string `json:"name"`
}

// Response holds the lists that were requested; the others stay nil.
type Response struct {
	Countries              *Standard[CountryItem]            `json:"countries,omitempty"`
	Currencies             *CurrencyList                     `json:"currencies,omitempty"`
	Contacts               *Standard[ContactItem]            `json:"contacts,omitempty"`
	ContactAddresses       *Standard[ContactAddressItem]     `json:"contact_addresses,omitempty"`
	CompanyAddresses       *Standard[CompanyAddressItem]     `json:"company_addresses,omitempty"`
	ContactGroups          *Standard[ContactGroupItem]       `json:"contact_groups,omitempty"`
	ClassificationCodeList *Standard[ClassificationCodeItem] `json:"classification_code_list,omitempty"`
	Products               *Standard[ProductItem]            `json:"products,omitempty"`
	ProductList            *Standard[ProductListItem]        `json:"product_list,omitempty"`
	Product                *ProductDetail                    `json:"product,omitempty"`
	ProductGroups          *Standard[ProductGroupItem]       `json:"product_groups,omitempty"`
	Accounts               *Standard[AccountItem]            `json:"accounts,omitempty"`
	Terms                  *Standard[TermItem]               `json:"terms,omitempty"`
	PaymentMethods         *Standard[PaymentMethodItem]      `json:"payment_methods,omitempty"`
	PriceLevels            *Standard[PriceLevelItem]         `json:"price_levels,omitempty"`
	TagGroups              *TagGroupList                     `json:"tag_groups,omitempty"`
	AssetTypes             *Standard[AssetTypeItem]          `json:"asset_types,omitempty"`
	Fields                 *FieldList                        `json:"fields,omitempty"`
	Numberings             *Standard[NumberingItem]          `json:"numberings,omitempty"`
	FormDesigns            *Standard[FormDesignItem]         `json:"form_designs,omitempty"`
	Locations              *Standard[LocationItem]           `json:"locations,omitempty"`
	StockBalances          *StockBalanceList                 `json:"stock_balances,omitempty"`
	TaxCodes               *Standard[TaxCodeItem]            `json:"tax_codes,omitempty"`
	Settings               *SettingsList                     `json:"settings,omitempty"`
	Limits                 []LimitItem                       `json:"limits,omitempty"`
	Users                  *Standard[UserItem]               `json:"users,omitempty"`
	Advisors               *Standard[AdvisorItem]            `json:"advisors,omitempty"`
	StateList              *Standard[StateItem]              `json:"state_list,omitempty"`
}
