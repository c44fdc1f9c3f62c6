package sales

import (
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

type (
	QuotationCreateParams = TradeCreateParams
	QuotationUpdateParams = TradeParams
	Quotation             = TradeDocument
	QuotationListParams   = TransferListParams
	QuotationList         = TransferList
)

// QuotationService manages /sales/quotes.
type QuotationService = resource.Documents[Quotation, QuotationList, QuotationCreateParams, QuotationUpdateParams, QuotationListParams]

// NewQuotationService binds the service to client.
func NewQuotationService(client *httpclient.Client) *QuotationService {
	return resource.NewDocuments[Quotation, QuotationList, QuotationCreateParams, QuotationUpdateParams, QuotationListParams](client, quotationsPath)
}
