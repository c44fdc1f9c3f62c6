// Package sales manages customer-side transactions: quotations, sales
// orders, delivery orders, invoices, credit notes, payments and refunds.
package sales

import "github.com/kbukum/bukku-go/httpclient"

const (
	quotationsPath     = "/sales/quotes"
	ordersPath         = "/sales/orders"
	deliveryOrdersPath = "/sales/delivery_orders"
	invoicesPath       = "/sales/invoices"
	creditNotesPath    = "/sales/credit_notes"
	paymentsPath       = "/sales/payments"
	refundsPath        = "/sales/refunds"
)

// API groups the sales services.
type API struct {
	Quotations     *QuotationService
	Orders         *OrderService
	DeliveryOrders *DeliveryOrderService
	Invoices       *InvoiceService
	CreditNotes    *CreditNoteService
	Payments       *PaymentService
	Refunds        *RefundService
}

// New binds the sales services to client.
func New(client *httpclient.Client) *API {
	return &API{
		Quotations:     NewQuotationService(client),
		Orders:         NewOrderService(client),
		DeliveryOrders: NewDeliveryOrderService(client),
		Invoices:       NewInvoiceService(client),
		CreditNotes:    NewCreditNoteService(client),
		Payments:       NewPaymentService(client),
		Refunds:        NewRefundService(client),
	}
}
