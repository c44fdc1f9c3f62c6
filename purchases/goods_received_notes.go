package purchases

import (
	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

// GoodsReceivedNoteUpdateParams is the body of Update. Lines transferred
// from a purchase order carry TransferItemID.
type GoodsReceivedNoteUpdateParams struct {
	common.DocumentFields
	common.PartyFields
	Title     string                  `json:"title,omitempty"`
	TaxMode   common.TaxMode          `json:"tax_mode"`
	FormItems []common.FormItemParams `json:"form_items"`
	Email     *common.EmailDetails    `json:"email,omitempty"`
}

// GoodsReceivedNoteCreateParams is the body of Create.
type GoodsReceivedNoteCreateParams struct {
	GoodsReceivedNoteUpdateParams
	Status common.Status `json:"status"`
}

// GoodsReceivedNote records stock received from a supplier.
type GoodsReceivedNote struct {
	common.Document
	common.Party
	Title     *string           `json:"title"`
	TaxMode   common.TaxMode    `json:"tax_mode"`
	FormItems []common.FormItem `json:"form_items"`
}

// GoodsReceivedNoteListParams filters List.
type GoodsReceivedNoteListParams struct {
	common.DocumentListParams
	EmailStatus    common.EmailStatus    `json:"email_status,omitempty"`
	TransferStatus common.TransferStatus `json:"transfer_status,omitempty"`
	Extra          httpclient.Params     `json:"-"`
}

// GoodsReceivedNoteListItem is one row of List.
type GoodsReceivedNoteListItem struct {
	common.DocumentSummary
	common.PartySummary
	TransferStatus common.TransferStatus `json:"transfer_status,omitempty"`
}

// GoodsReceivedNoteList is the List response.
type GoodsReceivedNoteList struct {
	Paging       common.Pagination           `json:"paging"`
	Transactions []GoodsReceivedNoteListItem `json:"transactions"`
}

// GoodsReceivedNoteService manages /purchases/goods_received_notes.
type GoodsReceivedNoteService = resource.Documents[
	GoodsReceivedNote, GoodsReceivedNoteList,
	GoodsReceivedNoteCreateParams, GoodsReceivedNoteUpdateParams, GoodsReceivedNoteListParams,
]

// NewGoodsReceivedNoteService binds the service to client.
func NewGoodsReceivedNoteService(client *httpclient.Client) *GoodsReceivedNoteService {
	return resource.NewDocuments[
		GoodsReceivedNote, GoodsReceivedNoteList,
		GoodsReceivedNoteCreateParams, GoodsReceivedNoteUpdateParams, GoodsReceivedNoteListParams,
	](client, goodsReceivedNotesPath)
}
