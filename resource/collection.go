package resource

import (
	"context"
	"net/http"
	"strconv"

	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
)

// Collection is a REST collection whose single objects decode into T and
// whose list responses decode into L.
type Collection[T, L any] struct {
	client *httpclient.Client
	path   string
	key    string
}

// NewCollection binds path and envelope key to client.
func NewCollection[T, L any](client *httpclient.Client, path, key string) *Collection[T, L] {
	return &Collection[T, L]{client: client, path: path, key: key}
}

// Path returns the collection path, e.g. "/sales/invoices".
func (c *Collection[T, L]) Path() string { return c.path }

// Key returns the envelope key single objects are wrapped in.
func (c *Collection[T, L]) Key() string { return c.key }

// Client returns the underlying pipeline.
func (c *Collection[T, L]) Client() *httpclient.Client { return c.client }

// ItemPath returns the path of one object.
func (c *Collection[T, L]) ItemPath(id int) string {
	return c.path + "/" + strconv.Itoa(id)
}

// Create POSTs body to the collection and unwraps the created object.
func (c *Collection[T, L]) Create(ctx context.Context, body any) (*T, error) {
	return httpclient.CallEnvelope[T](ctx, c.client, httpclient.Request{
		Method: http.MethodPost,
		Path:   c.path,
		Body:   body,
	}, c.key)
}

// List GETs the collection with params encoded as query parameters and
// returns the whole response.
func (c *Collection[T, L]) List(ctx context.Context, params any) (*L, error) {
	query, err := httpclient.EncodeQuery(params)
	if err != nil {
		return nil, err
	}
	return httpclient.Call[L](ctx, c.client, httpclient.Request{
		Method: http.MethodGet,
		Path:   c.path,
		Query:  query,
	})
}

// Get fetches one object.
func (c *Collection[T, L]) Get(ctx context.Context, id int) (*T, error) {
	return httpclient.CallEnvelope[T](ctx, c.client, httpclient.Request{
		Method: http.MethodGet,
		Path:   c.ItemPath(id),
	}, c.key)
}

// Update PUTs body over one object.
func (c *Collection[T, L]) Update(ctx context.Context, id int, body any) (*T, error) {
	return httpclient.CallEnvelope[T](ctx, c.client, httpclient.Request{
		Method: http.MethodPut,
		Path:   c.ItemPath(id),
		Body:   body,
	}, c.key)
}

// Patch PATCHes one object.
func (c *Collection[T, L]) Patch(ctx context.Context, id int, body any) (*T, error) {
	return httpclient.CallEnvelope[T](ctx, c.client, httpclient.Request{
		Method: http.MethodPatch,
		Path:   c.ItemPath(id),
		Body:   body,
	}, c.key)
}

// SetArchived PATCHes {"is_archived": archived}.
func (c *Collection[T, L]) SetArchived(ctx context.Context, id int, archived bool) (*T, error) {
	return c.Patch(ctx, id, common.ArchiveUpdate{IsArchived: archived})
}

// SetStatus PATCHes {"status": status}.
func (c *Collection[T, L]) SetStatus(ctx context.Context, id int, status common.Status) (*T, error) {
	return c.Patch(ctx, id, common.StatusUpdate{Status: status})
}

// Delete removes one object. Any response body is ignored.
func (c *Collection[T, L]) Delete(ctx context.Context, id int) error {
	_, err := c.client.Do(ctx, httpclient.Request{
		Method: http.MethodDelete,
		Path:   c.ItemPath(id),
	})
	return err
}
