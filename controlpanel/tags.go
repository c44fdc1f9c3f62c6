package controlpanel

import (
	"context"

	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

// TagParams is the body of Create and Update.
type TagParams struct {
	Name       string `json:"name"`
	TagGroupID int    `json:"tag_group_id"`
}

// Tag labels transactions for reporting.
type Tag struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	TagGroupID int    `json:"tag_group_id"`
	IsArchived bool   `json:"is_archived"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// TagList is the List response.
type TagList struct {
	Tags   []Tag           `json:"tags"`
	Paging common.PageInfo `json:"paging"`
}

// TagService manages /tags.
type TagService struct {
	col *resource.Collection[Tag, TagList]
}

// NewTagService binds the service to client.
func NewTagService(client *httpclient.Client) *TagService {
	return &TagService{col: resource.NewCollection[Tag, TagList](client, "/tags", "tag")}
}

// Create adds a tag.
func (s *TagService) Create(ctx context.Context, params *TagParams) (*Tag, error) {
	return s.col.Create(ctx, params)
}

// List returns tags. params may be nil.
func (s *TagService) List(ctx context.Context, params *ListParams) (*TagList, error) {
	return s.col.List(ctx, params)
}

// Get fetches one tag.
func (s *TagService) Get(ctx context.Context, id int) (*Tag, error) {
	return s.col.Get(ctx, id)
}

// Update replaces a tag.
func (s *TagService) Update(ctx context.Context, id int, params *TagParams) (*Tag, error) {
	return s.col.Update(ctx, id, params)
}

// Delete removes a tag.
func (s *TagService) Delete(ctx context.Context, id int) error {
	return s.col.Delete(ctx, id)
}
