package sales

import (
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

type (
	OrderCreateParams = TradeCreateParams
	// OrderUpdateParams requires Number.
	OrderUpdateParams = TradeParams
	Order             = TradeDocument
	OrderListParams   = TransferListParams
	OrderList         = TransferList
)

// OrderService manages /sales/orders.
type OrderService = resource.Documents[Order, OrderList, OrderCreateParams, OrderUpdateParams, OrderListParams]

// NewOrderService binds the service to client.
func NewOrderService(client *httpclient.Client) *OrderService {
	return resource.NewDocuments[Order, OrderList, OrderCreateParams, OrderUpdateParams, OrderListParams](client, ordersPath)
}
