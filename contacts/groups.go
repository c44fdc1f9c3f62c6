package contacts

import (
	"context"

	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

// GroupParams is the body of Create and Update.
type GroupParams struct {
	Name       string `json:"name"`
	ContactIDs []int  `json:"contact_ids,omitempty"`
}

// Group is a named set of contacts.
type Group struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	ContactIDs []int  `json:"contact_ids"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// GroupList is the List response.
type GroupList struct {
	Paging common.Pagination `json:"paging"`
	Groups []Group           `json:"groups"`
}

// GroupService manages /contacts/groups.
type GroupService struct {
	col *resource.Collection[Group, GroupList]
}

// NewGroupService binds the service to client.
func NewGroupService(client *httpclient.Client) *GroupService {
	return &GroupService{col: resource.NewCollection[Group, GroupList](client, "/contacts/groups", "group")}
}

// Create adds a group.
func (s *GroupService) Create(ctx context.Context, params *GroupParams) (*Group, error) {
	return s.col.Create(ctx, params)
}

// List returns every group. The endpoint takes no filters.
func (s *GroupService) List(ctx context.Context) (*GroupList, error) {
	return s.col.List(ctx, nil)
}

// Get fetches one group.
func (s *GroupService) Get(ctx context.Context, id int) (*Group, error) {
	return s.col.Get(ctx, id)
}

// Update replaces a group.
func (s *GroupService) Update(ctx context.Context, id int, params *GroupParams) (*Group, error) {
	return s.col.Update(ctx, id, params)
}

// Delete removes a group.
func (s *GroupService) Delete(ctx context.Context, id int) error {
	return s.col.Delete(ctx, id)
}
