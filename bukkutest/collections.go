package bukkutest

// PagingStyle selects the paging block of a list response.
type PagingStyle int

const (
	// PagingStandard renders {"paging": {"current_page", "per_page", "total"}}.
	PagingStandard PagingStyle = iota
	// PagingControlPanel renders {"paging": {"page", "pageSize", "total"}}.
	PagingControlPanel
	// PagingNone renders the items only.
	PagingNone
)

// Collection describes one REST collection of the fake.
type Collection struct {
	Path    string
	Key     string
	ListKey string
	Paging  PagingStyle
	// CreateReturnsArray wraps the created object in a one-element array.
	CreateReturnsArray bool
}

func transactions(path string) Collection {
	return Collection{Path: path, Key: "transaction", ListKey: "transactions"}
}

// DefaultCollections are the collections served by New.
var DefaultCollections = []Collection{
	{Path: "/accounts", Key: "account", ListKey: "accounts"},
	transactions("/journal_entries"),

	{Path: "/contacts", Key: "contact", ListKey: "contacts"},
	{Path: "/contacts/groups", Key: "group", ListKey: "groups"},

	{Path: "/locations", Key: "location", ListKey: "locations", Paging: PagingControlPanel},
	{Path: "/tags", Key: "tag", ListKey: "tags", Paging: PagingControlPanel},
	{Path: "/tags/groups", Key: "tag_group", ListKey: "tag_groups", Paging: PagingControlPanel, CreateReturnsArray: true},

	{Path: "/products", Key: "product", ListKey: "products"},
	{Path: "/products/groups", Key: "group", ListKey: "groups", Paging: PagingNone},

	transactions("/purchases/orders"),
	transactions("/purchases/goods_received_notes"),
	transactions("/purchases/bills"),
	transactions("/purchases/credit_notes"),
	transactions("/purchases/payments"),
	transactions("/purchases/refunds"),

	transactions("/sales/quotes"),
	transactions("/sales/orders"),
	transactions("/sales/delivery_orders"),
	transactions("/sales/invoices"),
	transactions("/sales/credit_notes"),
	transactions("/sales/payments"),
	transactions("/sales/refunds"),
}
