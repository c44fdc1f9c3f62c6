package products

import (
	"context"

	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

// API groups the product services.
type API struct {
	Products *ProductService
	Groups   *GroupService
}

// New binds the product services to client.
func New(client *httpclient.Client) *API {
	return &API{
		Products: NewProductService(client),
		Groups:   NewGroupService(client),
	}
}

type StockLevel string

const (
	StockLevelAll      StockLevel = "all"
	StockLevelNoStock  StockLevel = "no_stock"
	StockLevelLowStock StockLevel = "low_stock"
)

type Mode string

const (
	ModeSale     Mode = "sale"
	ModePurchase Mode = "purchase"
)

type Type string

const (
	TypeProduct Type = "product"
	TypeBundle  Type = "bundle"
)

// UnitParams is a unit of measure. Set ID to modify an existing unit.
type UnitParams struct {
	ID                *int     `json:"id,omitempty"`
	Label             string   `json:"label"`
	Rate              float64  `json:"rate"`
	SalePrice         *float64 `json:"sale_price,omitempty"`
	PurchasePrice     *float64 `json:"purchase_price,omitempty"`
	IsBase            *bool    `json:"is_base,omitempty"`
	IsSaleDefault     *bool    `json:"is_sale_default,omitempty"`
	IsPurchaseDefault *bool    `json:"is_purchase_default,omitempty"`
}

// PriceParams is a custom sale or purchase price. Set ID to modify an
// existing entry.
type PriceParams struct {
	ID              *int     `json:"id,omitempty"`
	PriceLevelID    *int     `json:"price_level_id,omitempty"`
	ContactID       *int     `json:"contact_id,omitempty"`
	DateFrom        string   `json:"date_from,omitempty"`
	DateTo          string   `json:"date_to,omitempty"`
	ProductUnitID   int      `json:"product_unit_id"`
	MinimumQuantity float64  `json:"minimum_quantity"`
	CurrencyCode    string   `json:"currency_code"`
	UnitPrice       *float64 `json:"unit_price,omitempty"`
}

// ProductCreateParams is the body of Create.
type ProductCreateParams struct {
	Name                string        `json:"name"`
	SKU                 string        `json:"sku,omitempty"`
	ClassificationCode  *string       `json:"classification_code,omitempty"`
	IsSelling           bool          `json:"is_selling"`
	SaleDescription     string        `json:"sale_description,omitempty"`
	SaleAccountID       *int          `json:"sale_account_id,omitempty"`
	SaleTaxCodeID       *int          `json:"sale_tax_code_id,omitempty"`
	IsBuying            bool          `json:"is_buying"`
	PurchaseDescription string        `json:"purchase_description,omitempty"`
	PurchaseAccountID   *int          `json:"purchase_account_id,omitempty"`
	PurchaseTaxCodeID   *int          `json:"purchase_tax_code_id,omitempty"`
	TrackInventory      bool          `json:"track_inventory"`
	InventoryAccountID  *int          `json:"inventory_account_id,omitempty"`
	QuantityLowAlert    *float64      `json:"quantity_low_alert,omitempty"`
	BinLocation         string        `json:"bin_location,omitempty"`
	Remarks             string        `json:"remarks,omitempty"`
	Units               []UnitParams  `json:"units"`
	GroupIDs            []int         `json:"group_ids,omitempty"`
	SalePrices          []PriceParams `json:"sale_prices,omitempty"`
	PurchasePrices      []PriceParams `json:"purchase_prices,omitempty"`
}

// ProductUpdateParams is the body of Update. Units and prices left out of
// the slices may be removed by the server.
type ProductUpdateParams struct {
	ProductCreateParams
	IsArchived *bool `json:"is_archived,omitempty"`
}

type Unit struct {
	ID                int      `json:"id"`
	Label             string   `json:"label"`
	Rate              float64  `json:"rate"`
	SalePrice         *float64 `json:"sale_price"`
	PurchasePrice     *float64 `json:"purchase_price"`
	IsBase            bool     `json:"is_base"`
	IsSaleDefault     bool     `json:"is_sale_default"`
	IsPurchaseDefault bool     `json:"is_purchase_default"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

type Price struct {
	ID              int      `json:"id"`
	PriceLevelID    *int     `json:"price_level_id"`
	ContactID       *int     `json:"contact_id"`
	DateFrom        *string  `json:"date_from"`
	DateTo          *string  `json:"date_to"`
	MinimumQuantity float64  `json:"minimum_quantity"`
	ProductUnitID   int      `json:"product_unit_id"`
	CurrencyCode    string   `json:"currency_code"`
	UnitPrice       *float64 `json:"unit_price"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// Product is a sellable or purchasable item.
type Product struct {
	ID                  int      `json:"id"`
	Name                string   `json:"name"`
	SKU                 *string  `json:"sku"`
	ClassificationCode  *string  `json:"classification_code"`
	Type                Type     `json:"type"`
	IsSelling           bool     `json:"is_selling"`
	SaleDescription     *string  `json:"sale_description"`
	SaleAccountID       *int     `json:"sale_account_id"`
	SaleTaxCodeID       *int     `json:"sale_tax_code_id"`
	IsBuying            bool     `json:"is_buying"`
	PurchaseDescription *string  `json:"purchase_description"`
	PurchaseAccountID   *int     `json:"purchase_account_id"`
	PurchaseTaxCodeID   *int     `json:"purchase_tax_code_id"`
	TrackInventory      bool     `json:"track_inventory"`
	InventoryAccountID  *int     `json:"inventory_account_id"`
	QuantityLowAlert    *float64 `json:"quantity_low_alert"`
	Quantity            *float64 `json:"quantity"`
	BinLocation         *string  `json:"bin_location"`
	Remarks             *string  `json:"remarks"`
	Units               []Unit   `json:"units"`
	GroupIDs            []int    `json:"group_ids"`
	SalePrices          []Price  `json:"sale_prices"`
	PurchasePrices      []Price  `json:"purchase_prices"`
	IsArchived          bool     `json:"is_archived"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

// ProductListParams filters List.
type ProductListParams struct {
	Search          string     `json:"search,omitempty"`
	StockLevel      StockLevel `json:"stock_level,omitempty"`
	Mode            Mode       `json:"mode,omitempty"`
	Type            Type       `json:"type,omitempty"`
	IncludeArchived *bool      `json:"include_archived,omitempty"`
	Page            int        `json:"page,omitempty"`
	PageSize        int        `json:"page_size,omitempty"`
	// SortBy is one of name, sku, sale_price, purchase_price or quantity.
	SortBy  string            `json:"sort_by,omitempty"`
	SortDir common.SortDir    `json:"sort_dir,omitempty"`
	Extra   httpclient.Params `json:"-"`
}

// ProductListItem is one row of List. SalePrice and PurchasePrice are the
// base unit prices when the server includes them.
type ProductListItem struct {
	ID                  int      `json:"id"`
	Name                string   `json:"name"`
	SKU                 *string  `json:"sku"`
	ClassificationCode  *string  `json:"classification_code"`
	Type                Type     `json:"type"`
	IsSelling           bool     `json:"is_selling"`
	SaleDescription     *string  `json:"sale_description"`
	SaleAccountID       *int     `json:"sale_account_id"`
	SaleTaxCodeID       *int     `json:"sale_tax_code_id"`
	IsBuying            bool     `json:"is_buying"`
	PurchaseDescription *string  `json:"purchase_description"`
	PurchaseAccountID   *int     `json:"purchase_account_id"`
	PurchaseTaxCodeID   *int     `json:"purchase_tax_code_id"`
	TrackInventory      bool     `json:"track_inventory"`
	InventoryAccountID  *int     `json:"inventory_account_id"`
	QuantityLowAlert    *float64 `json:"quantity_low_alert"`
	Quantity            *float64 `json:"quantity"`
	BinLocation         *string  `json:"bin_location"`
	Remarks             *string  `json:"remarks"`
	IsArchived          bool     `json:"is_archived"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
	SalePrice           *float64 `json:"sale_price,omitempty"`
	PurchasePrice       *float64 `json:"purchase_price,omitempty"`
}

// ProductList is the List response.
type ProductList struct {
	Paging   common.Pagination `json:"paging"`
	Products []ProductListItem `json:"products"`
}

// ProductService manages /products.
type ProductService struct {
	col *resource.Collection[Product, ProductList]
}

// NewProductService binds the service to client.
func NewProductService(client *httpclient.Client) *ProductService {
	return &ProductService{col: resource.NewCollection[Product, ProductList](client, "/products", "product")}
}

// Create adds a product.
func (s *ProductService) Create(ctx context.Context, params *ProductCreateParams) (*Product, error) {
	return s.col.Create(ctx, params)
}

// List returns products matching params. params may be nil.
func (s *ProductService) List(ctx context.Context, params *ProductListParams) (*ProductList, error) {
	return s.col.List(ctx, params)
}

// Get fetches one product.
func (s *ProductService) Get(ctx context.Context, id int) (*Product, error) {
	return s.col.Get(ctx, id)
}

// Update replaces a product.
func (s *ProductService) Update(ctx context.Context, id int, params *ProductUpdateParams) (*Product, error) {
	return s.col.Update(ctx, id, params)
}

// UpdateArchiveStatus archives or restores a product.
func (s *ProductService) UpdateArchiveStatus(ctx context.Context, id int, params common.ArchiveUpdate) (*Product, error) {
	return s.col.Patch(ctx, id, params)
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	return s.col.Delete(ctx, id)
}
