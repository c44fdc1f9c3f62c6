package accounting

import (
	"context"

	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

const accountsPath = "/accounts"

// AccountType is the detailed account category.
type AccountType string

const (
	CurrentAssets         AccountType = "current_assets"
	NonCurrentAssets      AccountType = "non_current_assets"
	OtherAssets           AccountType = "other_assets"
	CurrentLiabilities    AccountType = "current_liabilities"
	NonCurrentLiabilities AccountType = "non_current_liabilities"
	Equity                AccountType = "equity"
	Income                AccountType = "income"
	OtherIncome           AccountType = "other_income"
	CostOfSales           AccountType = "cost_of_sales"
	Expenses              AccountType = "expenses"
	Taxation              AccountType = "taxation"
)

// AccountTypeFilter is the broad category accepted by List.
type AccountTypeFilter string

const (
	FilterAssets      AccountTypeFilter = "assets"
	FilterLiabilities AccountTypeFilter = "liabilities"
	FilterEquity      AccountTypeFilter = "equity"
	FilterIncome      AccountTypeFilter = "income"
	FilterExpenses    AccountTypeFilter = "expenses"
)

// SystemType marks accounts with built-in behaviour.
type SystemType string

const (
	SystemBankCash           SystemType = "bank_cash"
	SystemAccountsReceivable SystemType = "accounts_receivable"
	SystemAccountsPayable    SystemType = "accounts_payable"
	SystemInventory          SystemType = "inventory"
	SystemCreditCard         SystemType = "credit_card"
	SystemFixedAssets        SystemType = "fixed_assets"
	SystemDepreciation       SystemType = "depreciation"
	SystemEPFExpense         SystemType = "my_epf_expense"
	SystemSOCSOExpense       SystemType = "my_socso_expense"
	SystemEISExpense         SystemType = "my_eis_expense"
	SystemSalaryExpense      SystemType = "my_salary_expense"
)

// Classification is the cash-flow class of a balance sheet account.
type Classification string

const (
	Operating Classification = "OPERATING"
	Investing Classification = "INVESTING"
	Financing Classification = "FINANCING"
)

// AccountCreateParams is the body of Create.
type AccountCreateParams struct {
	Name       string      `json:"name"`
	Type       AccountType `json:"type"`
	SystemType SystemType  `json:"system_type,omitempty"`
	ParentID   int         `json:"parent_id,omitempty"`
	// Classification is required for balance sheet accounts only.
	Classification Classification `json:"classification,omitempty"`
	Code           string         `json:"code,omitempty"`
	Description    string         `json:"description,omitempty"`
}

// AccountUpdateParams is the body of Update. Code is required.
type AccountUpdateParams struct {
	Name           string         `json:"name"`
	Type           AccountType    `json:"type"`
	SystemType     SystemType     `json:"system_type,omitempty"`
	ParentID       int            `json:"parent_id,omitempty"`
	Classification Classification `json:"classification,omitempty"`
	Code           string         `json:"code"`
	Description    string         `json:"description,omitempty"`
}

// Currency describes an account currency.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Account is a ledger account.
type Account struct {
	ID             int             `json:"id"`
	Code           *string         `json:"code"`
	Name           string          `json:"name"`
	Description    *string         `json:"description"`
	CurrencyCode   string          `json:"currency_code"`
	Currency       Currency        `json:"currency"`
	Balance        *float64        `json:"balance"`
	Type           AccountType     `json:"type"`
	SystemType     *SystemType     `json:"system_type"`
	ParentID       *int            `json:"parent_id"`
	Classification *Classification `json:"classification"`
	IsLocked       bool            `json:"is_locked"`
	IsArchived     bool            `json:"is_archived"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

// AccountListParams filters List.
type AccountListParams struct {
	Search     string            `json:"search,omitempty"`
	Type       AccountTypeFilter `json:"type,omitempty"`
	IsArchived *bool             `json:"is_archived,omitempty"`
	// SortBy is one of code, name or balance.
	SortBy  string            `json:"sort_by,omitempty"`
	SortDir common.SortDir    `json:"sort_dir,omitempty"`
	Extra   httpclient.Params `json:"-"`
}

// AccountListItem is one row of List.
type AccountListItem struct {
	ID           int         `json:"id"`
	Code         *string     `json:"code"`
	Name         string      `json:"name"`
	Description  *string     `json:"description"`
	CurrencyCode string      `json:"currency_code"`
	Balance      *float64    `json:"balance"`
	Type         AccountType `json:"type"`
	SystemType   *SystemType `json:"system_type"`
	ParentID     *int        `json:"parent_id"`
	IsLocked     bool        `json:"is_locked"`
	IsArchived   bool        `json:"is_archived"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`
}

// AccountList is the List response.
type AccountList struct {
	Paging   common.Pagination `json:"paging"`
	Accounts []AccountListItem `json:"accounts"`
}

// AccountService manages /accounts.
type AccountService struct {
	col *resource.Collection[Account, AccountList]
}

// NewAccountService binds the service to client.
func NewAccountService(client *httpclient.Client) *AccountService {
	return &AccountService{col: resource.NewCollection[Account, AccountList](client, accountsPath, "account")}
}

// Create adds an account.
func (s *AccountService) Create(ctx context.Context, params *AccountCreateParams) (*Account, error) {
	return s.col.Create(ctx, params)
}

// List returns accounts matching params. params may be nil.
func (s *AccountService) List(ctx context.Context, params *AccountListParams) (*AccountList, error) {
	return s.col.List(ctx, params)
}

// Get fetches one account.
func (s *AccountService) Get(ctx context.Context, id int) (*Account, error) {
	return s.col.Get(ctx, id)
}

// Update replaces an account.
func (s *AccountService) Update(ctx context.Context, id int, params *AccountUpdateParams) (*Account, error) {
	return s.col.Update(ctx, id, params)
}

// UpdateArchiveStatus archives or restores an account.
func (s *AccountService) UpdateArchiveStatus(ctx context.Context, id int, params common.ArchiveUpdate) (*Account, error) {
	return s.col.Patch(ctx, id, params)
}

// Delete removes an account.
func (s *AccountService) Delete(ctx context.Context, id int) error {
	return s.col.Delete(ctx, id)
}
