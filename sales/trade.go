package sales

import (
	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
)

// TradeParams is the body shared by quotations and sales orders.
type TradeParams struct {
	common.DocumentFields
	common.PartyFields
	TermID    int                     `json:"term_id,omitempty"`
	Title     string                  `json:"title,omitempty"`
	TaxMode   common.TaxMode          `json:"tax_mode"`
	FormItems []common.FormItemParams `json:"form_items"`
	Email     *common.EmailDetails    `json:"email,omitempty"`
}

// TradeCreateParams adds the initial status to TradeParams.
type TradeCreateParams struct {
	TradeParams
	Status common.Status `json:"status"`
}

// TradeDocument is a returned quotation or sales order.
type TradeDocument struct {
	common.Document
	common.Party
	TermID    *int              `json:"term_id"`
	TermName  *string           `json:"term_name"`
	Title     *string           `json:"title"`
	TaxMode   common.TaxMode    `json:"tax_mode"`
	FormItems []common.FormItem `json:"form_items"`
}

// TransferListParams filters lists of documents that can be carried
// forward to a later document.
type TransferListParams struct {
	common.DocumentListParams
	EmailStatus    common.EmailStatus    `json:"email_status,omitempty"`
	TransferStatus common.TransferStatus `json:"transfer_status,omitempty"`
	Extra          httpclient.Params     `json:"-"`
}

// TransferListItem is one row of a quotation, order or delivery order list.
type TransferListItem struct {
	common.DocumentSummary
	common.PartySummary
	TransferStatus common.TransferStatus `json:"transfer_status,omitempty"`
}

// TransferList is the List response of quotations, orders and delivery
// orders.
type TransferList struct {
	Paging       common.Pagination  `json:"paging"`
	Transactions []TransferListItem `json:"transactions"`
}
