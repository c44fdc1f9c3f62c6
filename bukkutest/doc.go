// Package bukkutest provides an in-memory fake of the Bukku API for tests
// and local development.
//
// The fake implements create, list, get, update, patch and delete for every
// collection the client knows, the multipart file upload and the lists
// endpoint. Requests are authenticated against fixed credentials and
// recorded for inspection.
//
//	srv := bukkutest.NewServer(t)
//	client := srv.NewClient(t)
//	invoices := sales.NewInvoiceService(client)
package bukkutest
