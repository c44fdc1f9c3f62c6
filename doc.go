// Package bukku is a typed client for the Bukku accounting API.
//
// A Client groups the resource services by area:
//
//	client, err := bukku.New(bukku.Settings{
//	    AccessToken:      os.Getenv("BUKKU_ACCESS_TOKEN"),
//	    CompanySubdomain: "acme",
//	})
//	if err != nil {
//	    return err
//	}
//	inv, err := client.Sales.Invoices.Get(ctx, 42)
//
// Every call returns an *httpclient.APIError on failure. The client does no
// business validation of its own; the server is authoritative.
package bukku
