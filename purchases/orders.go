package purchases

import (
	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

// OrderUpdateParams is the body of Update. ContactID must be a supplier.
type OrderUpdateParams struct {
	common.DocumentFields
	common.PartyFields
	TermID    int                     `json:"term_id,omitempty"`
	Title     string                  `json:"title,omitempty"`
	TaxMode   common.TaxMode          `json:"tax_mode"`
	FormItems []common.FormItemParams `json:"form_items"`
	Email     *common.EmailDetails    `json:"email,omitempty"`
}

// OrderCreateParams is the body of Create.
type OrderCreateParams struct {
	OrderUpdateParams
	Status common.Status `json:"status"`
}

// Order is a purchase order.
type Order struct {
	common.Document
	common.Party
	TermID    *int              `json:"term_id"`
	TermName  *string           `json:"term_name"`
	Title     *string           `json:"title"`
	TaxMode   common.TaxMode    `json:"tax_mode"`
	FormItems []common.FormItem `json:"form_items"`
}

// OrderListParams filters List.
type OrderListParams struct {
	common.DocumentListParams
	EmailStatus    common.EmailStatus    `json:"email_status,omitempty"`
	TransferStatus common.TransferStatus `json:"transfer_status,omitempty"`
	Extra          httpclient.Params     `json:"-"`
}

// OrderListItem is one row of List.
type OrderListItem struct {
	common.DocumentSummary
	common.PartySummary
	TransferStatus common.TransferStatus `json:"transfer_status,omitempty"`
}

// OrderList is the List response.
type OrderList struct {
	Paging       common.Pagination `json:"paging"`
	Transactions []OrderListItem   `json:"transactions"`
}

// OrderService manages /purchases/orders.
type OrderService = resource.Documents[Order, OrderList, OrderCreateParams, OrderUpdateParams, OrderListParams]

// NewOrderService binds the service to client.
func NewOrderService(client *httpclient.Client) *OrderService {
	return resource.NewDocuments[Order, OrderList, OrderCreateParams, OrderUpdateParams, OrderListParams](client, ordersPath)
}
