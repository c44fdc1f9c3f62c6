package products

import (
	"context"

	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

// GroupParams is the body of Create and Update. ProductIDs is nested as
// documented, e.g. [[1, 2]].
type GroupParams struct {
	Name       string  `json:"name"`
	ProductIDs [][]int `json:"product_ids"`
}

// Group is a product group.
type Group struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	ProductIDs    [][]int `json:"product_ids"`
	ProductsCount *int    `json:"products_count,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type GroupListItem struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	ProductsCount int    `json:"products_count"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// GroupList is the List response. It carries no paging block.
type GroupList struct {
	Groups []GroupListItem `json:"groups"`
}

// GroupService manages /products/groups.
type GroupService struct {
	col *resource.Collection[Group, GroupList]
}

// NewGroupService binds the service to client.
func NewGroupService(client *httpclient.Client) *GroupService {
	return &GroupService{col: resource.NewCollection[Group, GroupList](client, "/products/groups", "group")}
}

// Create adds a product group.
func (s *GroupService) Create(ctx context.Context, params *GroupParams) (*Group, error) {
	return s.col.Create(ctx, params)
}

// List returns every product group.
func (s *GroupService) List(ctx context.Context) (*GroupList, error) {
	return s.col.List(ctx, nil)
}

// Get fetches one product group.
func (s *GroupService) Get(ctx context.Context, id int) (*Group, error) {
	return s.col.Get(ctx, id)
}

// Update replaces a product group.
func (s *GroupService) Update(ctx context.Context, id int, params *GroupParams) (*Group, error) {
	return s.col.Update(ctx, id, params)
}

// Delete removes a product group.
func (s *GroupService) Delete(ctx context.Context, id int) error {
	return s.col.Delete(ctx, id)
}
