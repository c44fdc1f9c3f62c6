// Package lists fetches reference lists (countries, tax codes, accounts,
// settings and so on) in one call to POST /v2/lists.
package lists

import (
	"context"
	"net/http"
	"slices"

	"github.com/kbukum/bukku-go/errors"
	"github.com/kbukum/bukku-go/httpclient"
)

const path = "/v2/lists"

// Request selects the lists to fetch. Params carries per-list arguments,
// such as {"product_id": 12} for stock_balances.
type Request struct {
	Lists  []ListType          `json:"lists"`
	Params []httpclient.Params `json:"params,omitempty"`
}

// Service calls the lists endpoint.
type Service struct {
	client *httpclient.Client
}

// NewService binds the service to client.
func NewService(client *httpclient.Client) *Service {
	return &Service{client: client}
}

// Get fetches the requested lists. An empty selection fails locally
// without a request.
func (s *Service) Get(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Lists) == 0 {
		return nil, errors.Validation("The 'lists' array in the request body is required and cannot be empty.")
	}
	return httpclient.Call[Response](ctx, s.client, httpclient.Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   req,
	})
}

// ParseTypes converts names to list types, rejecting unknown ones.
func ParseTypes(names ...string) ([]ListType, error) {
	out := make([]ListType, 0, len(names))
	for _, name := range names {
		t := ListType(name)
		if !t.Valid() {
			return nil, errors.InvalidFormat("lists", "unknown list type: "+name)
		}
		out = append(out, t)
	}
	return out, nil
}

// Valid reports whether t is a known list type.
func (t ListType) Valid() bool {
	return slices.Contains(AllTypes, t)
}
