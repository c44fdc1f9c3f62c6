// Package httpclient is the request pipeline shared by every Bukku resource.
//
// A Client resolves a relative endpoint against the configured base URL,
// appends ordered query parameters, attaches the bearer token and the
// Company-Subdomain tenant header, serializes the JSON body and hands the
// request to an injected Transport. Non-2xx responses and transport failures
// are returned as *APIError.
//
//	client, err := httpclient.New(httpclient.Config{
//	    AccessToken:      token,
//	    CompanySubdomain: "acme",
//	    BaseURL:          "https://api.bukku.my",
//	    Transport:        transport,
//	})
//
//	invoice, err := httpclient.CallEnvelope[Invoice](ctx, client, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/sales/invoices/42",
//	}, "transaction")
package httpclient
