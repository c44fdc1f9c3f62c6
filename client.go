package bukku

import (
	"github.com/kbukum/bukku-go/accounting"
	"github.com/kbukum/bukku-go/contacts"
	"github.com/kbukum/bukku-go/controlpanel"
	"github.com/kbukum/bukku-go/files"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/lists"
	"github.com/kbukum/bukku-go/products"
	"github.com/kbukum/bukku-go/purchases"
	"github.com/kbukum/bukku-go/sales"
)

// Client exposes every resource group over one pipeline.
type Client struct {
	Sales        *sales.API
	Purchases    *purchases.API
	Contacts     *contacts.API
	Products     *products.API
	Accounting   *accounting.API
	ControlPanel *controlpanel.API
	Files        *files.Service
	Lists        *lists.Service

	http *httpclient.Client
}

// New builds a Client on the standard net/http transport.
func New(settings Settings, opts ...httpclient.Option) (*Client, error) {
	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	transport, err := httpclient.NewHTTPTransport(settings.httpConfig())
	if err != nil {
		return nil, err
	}

	return NewWithTransport(httpclient.Config{
		AccessToken:      settings.AccessToken,
		CompanySubdomain: settings.CompanySubdomain,
		BaseURL:          settings.BaseURL,
		Transport:        transport,
	}, opts...)
}

// NewWithTransport builds a Client from a full pipeline config, for callers
// that bring their own Transport.
func NewWithTransport(cfg httpclient.Config, opts ...httpclient.Option) (*Client, error) {
	hc, err := httpclient.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return FromHTTPClient(hc), nil
}

// FromHTTPClient binds every resource group to an existing pipeline client.
func FromHTTPClient(hc *httpclient.Client) *Client {
	return &Client{
		Sales:        sales.New(hc),
		Purchases:    purchases.New(hc),
		Contacts:     contacts.New(hc),
		Products:     products.New(hc),
		Accounting:   accounting.New(hc),
		ControlPanel: controlpanel.New(hc),
		Files:        files.NewService(hc),
		Lists:        lists.NewService(hc),
		http:         hc,
	}
}

// HTTP returns the underlying pipeline client for endpoints without a typed
// service.
func (c *Client) HTTP() *httpclient.Client { return c.http }
