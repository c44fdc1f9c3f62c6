package sales

import (
	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

// DeliveryOrderUpdateParams is the body of Update. Lines transferred from
// a sales order carry TransferItemID.
type DeliveryOrderUpdateParams struct {
	common.DocumentFields
	common.PartyFields
	Title     string                  `json:"title,omitempty"`
	TaxMode   common.TaxMode          `json:"tax_mode"`
	FormItems []common.FormItemParams `json:"form_items"`
	Email     *common.EmailDetails    `json:"email,omitempty"`
}

// DeliveryOrderCreateParams is the body of Create.
type DeliveryOrderCreateParams struct {
	DeliveryOrderUpdateParams
	Status common.Status `json:"status"`
}

type (
	DeliveryOrder           = TradeDocument
	DeliveryOrderListParams = TransferListParams
	DeliveryOrderList       = TransferList
)

// DeliveryOrderService manages /sales/delivery_orders.
type DeliveryOrderService = resource.Documents[
	DeliveryOrder, DeliveryOrderList,
	DeliveryOrderCreateParams, DeliveryOrderUpdateParams, DeliveryOrderListParams,
]

// NewDeliveryOrderService binds the service to client.
func NewDeliveryOrderService(client *httpclient.Client) *DeliveryOrderService {
	return resource.NewDocuments[
		DeliveryOrder, DeliveryOrderList,
		DeliveryOrderCreateParams, DeliveryOrderUpdateParams, DeliveryOrderListParams,
	](client, deliveryOrdersPath)
}
