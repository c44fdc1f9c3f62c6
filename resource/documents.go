package resource

import (
	"context"

	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
)

// TransactionKey wraps every sales, purchase and journal transaction.
const TransactionKey = "transaction"

// Documents is a transaction collection: T is the document, L the list
// response, C and U the create and update bodies, P the list filters.
type Documents[T, L, C, U, P any] struct {
	col *Collection[T, L]
}

// NewDocuments binds a transaction path to client.
func NewDocuments[T, L, C, U, P any](client *httpclient.Client, path string) *Documents[T, L, C, U, P] {
	return &Documents[T, L, C, U, P]{col: NewCollection[T, L](client, path, TransactionKey)}
}

// Path returns the collection path.
func (d *Documents[T, L, C, U, P]) Path() string { return d.col.Path() }

// Create sends POST <path>.
func (d *Documents[T, L, C, U, P]) Create(ctx context.Context, params *C) (*T, error) {
	return d.col.Create(ctx, params)
}

// List sends GET <path> with params as query parameters. params may be nil.
func (d *Documents[T, L, C, U, P]) List(ctx context.Context, params *P) (*L, error) {
	return d.col.List(ctx, params)
}

// Get sends GET <path>/{id}.
func (d *Documents[T, L, C, U, P]) Get(ctx context.Context, id int) (*T, error) {
	return d.col.Get(ctx, id)
}

// Update sends PUT <path>/{id}.
func (d *Documents[T, L, C, U, P]) Update(ctx context.Context, id int, params *U) (*T, error) {
	return d.col.Update(ctx, id, params)
}

// UpdateStatus sends PATCH <path>/{id} with {"status": ...}.
func (d *Documents[T, L, C, U, P]) UpdateStatus(ctx context.Context, id int, params common.StatusUpdate) (*T, error) {
	return d.col.Patch(ctx, id, params)
}

// Delete sends DELETE <path>/{id}.
func (d *Documents[T, L, C, U, P]) Delete(ctx context.Context, id int) error {
	return d.col.Delete(ctx, id)
}
