// Package purchases manages supplier-side transactions: purchase orders,
// goods received notes, bills, credit notes, payments and refunds.
//
// Every resource shares the /purchases/<kind> path scheme and the
// "transaction" envelope, so each service is a resource.Documents
// instantiation.
package purchases

import "github.com/kbukum/bukku-go/httpclient"

const (
	ordersPath             = "/purchases/orders"
	goodsReceivedNotesPath = "/purchases/goods_received_notes"
	billsPath              = "/purchases/bills"
	creditNotesPath        = "/purchases/credit_notes"
	paymentsPath           = "/purchases/payments"
	refundsPath            = "/purchases/refunds"
)

// API groups the purchase services.
type API struct {
	Orders             *OrderService
	GoodsReceivedNotes *GoodsReceivedNoteService
	Bills              *BillService
	CreditNotes        *CreditNoteService
	Payments           *PaymentService
	Refunds            *RefundService
}

// New binds the purchase services to client.
func New(client *httpclient.Client) *API {
	return &API{
		Orders:             NewOrderService(client),
		GoodsReceivedNotes: NewGoodsReceivedNoteService(client),
		Bills:              NewBillService(client),
		CreditNotes:        NewCreditNoteService(client),
		Payments:           NewPaymentService(client),
		Refunds:            NewRefundService(client),
	}
}
