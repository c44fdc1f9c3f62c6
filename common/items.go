package common

// FormItemParams is a document line in a create or update request.
// Normal lines need AccountID, UnitPrice and Quantity; bundle and subtitle
// lines need Description.
type FormItemParams struct {
	ID                 int              `json:"id,omitempty"`
	TransferItemID     int              `json:"transfer_item_id,omitempty"`
	Type               FormItemType     `json:"type,omitempty"`
	AccountID          int              `json:"account_id,omitempty"`
	Description        string           `json:"description,omitempty"`
	ServiceDate        string           `json:"service_date,omitempty"`
	ProductID          int              `json:"product_id,omitempty"`
	ProductUnitID      int              `json:"product_unit_id,omitempty"`
	LocationID         int              `json:"location_id,omitempty"`
	UnitPrice          *float64         `json:"unit_price,omitempty"`
	Quantity           *float64         `json:"quantity,omitempty"`
	Discount           string           `json:"discount,omitempty"`
	TaxCodeID          int              `json:"tax_code_id,omitempty"`
	ClassificationCode string           `json:"classification_code,omitempty"`
	Children           []FormItemParams `json:"children,omitempty"`
}

// FormItem is a document line as returned by the API.
type FormItem struct {
	ID                 int          `json:"id"`
	Type               FormItemType `json:"type"`
	Line               int          `json:"line"`
	TransferItemID     int          `json:"transfer_item_id,omitempty"`
	AccountID          int          `json:"account_id"`
	AccountName        string       `json:"account_name"`
	Description        string       `json:"description"`
	ServiceDate        string       `json:"service_date"`
	ProductID          int          `json:"product_id"`
	ProductName        string       `json:"product_name"`
	ProductSKU         string       `json:"product_sku"`
	ProductBinLocation string       `json:"product_bin_location"`
	ProductUnitID      int          `json:"product_unit_id"`
	ProductUnitLabel   string       `json:"product_unit_label"`
	LocationID         int          `json:"location_id"`
	LocationCode       string       `json:"location_code"`
	Quantity           float64      `json:"quantity"`
	UnitPrice          float64      `json:"unit_price"`
	Amount             float64      `json:"amount"`
	Discount           string       `json:"discount"`
	DiscountAmount     float64      `json:"discount_amount"`
	TaxCodeID          int          `json:"tax_code_id"`
	TaxCode            string       `json:"tax_code"`
	TaxAmount          float64      `json:"tax_amount"`
	NetAmount          float64      `json:"net_amount"`
	ClassificationCode string       `json:"classification_code,omitempty"`
	ClassificationName string       `json:"classification_name,omitempty"`
	Children           []FormItem   `json:"children,omitempty"`
}

// TermItemParams is a payment term line. Date is required when TermID is
// empty; PaymentDue is an amount ("100.25") or a percentage ("20%").
type TermItemParams struct {
	ID          int    `json:"id,omitempty"`
	TermID      int    `json:"term_id,omitempty"`
	Date        string `json:"date,omitempty"`
	PaymentDue  string `json:"payment_due,omitempty"`
	Description string `json:"description,omitempty"`
}

// TermItem is a payment term line as returned by the API.
type TermItem struct {
	ID          int     `json:"id"`
	TermID      int     `json:"term_id"`
	TermName    string  `json:"term_name"`
	Date        string  `json:"date"`
	PaymentDue  string  `json:"payment_due"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Balance     float64 `json:"balance"`
}

// DepositItemParams is a payment line. FeeText may carry a percentage
// ("2%"); FeeAccountID is then required.
type DepositItemParams struct {
	ID              int     `json:"id,omitempty"`
	PaymentMethodID int     `json:"payment_method_id,omitempty"`
	AccountID       int     `json:"account_id"`
	Amount          float64 `json:"amount"`
	Number          string  `json:"number,omitempty"`
	FeeText         string  `json:"fee_text,omitempty"`
	FeeAccountID    int     `json:"fee_account_id,omitempty"`
}

// DepositItem is a payment line as returned by the API.
type DepositItem struct {
	ID              int        `json:"id"`
	Line            int        `json:"line"`
	PaymentMethodID *int       `json:"payment_method_id"`
	AccountID       int        `json:"account_id"`
	Amount          float64    `json:"amount"`
	Number          *string    `json:"number"`
	FeeText         FlexString `json:"fee_text"`
	FeeAccountID    *int       `json:"fee_account_id"`
}

// LinkItemParams applies a payment, refund or credit note to a document.
type LinkItemParams struct {
	ID                  int     `json:"id,omitempty"`
	TargetTransactionID int     `json:"target_transaction_id"`
	ApplyAmount         float64 `json:"apply_amount"`
}

// LinkItem is a document a transaction was applied to.
type LinkItem struct {
	ID                  int     `json:"id"`
	TargetTransactionID int     `json:"target_transaction_id"`
	Type                string  `json:"type"`
	Number              string  `json:"number"`
	Date                string  `json:"date"`
	Description         string  `json:"description"`
	Amount              float64 `json:"amount"`
	Balance             float64 `json:"balance"`
}

// LinkedItem is a transaction applied to this document.
type LinkedItem struct {
	ID                  int     `json:"id"`
	OriginTransactionID int     `json:"origin_transaction_id"`
	Type                string  `json:"type"`
	Number              string  `json:"number"`
	Date                string  `json:"date"`
	Amount              float64 `json:"amount"`
	Balance             float64 `json:"balance"`
	ApplyAmount         float64 `json:"apply_amount"`
}
