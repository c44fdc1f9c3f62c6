package controlpanel

import (
	"context"

	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/errors"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

const tagGroupKey = "tag_group"

// TagGroupParams is the body of Create and Update.
type TagGroupParams struct {
	Name string `json:"name"`
}

// TagGroup groups related tags.
type TagGroup struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	IsArchived bool   `json:"is_archived"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// TagGroupList is the List response.
type TagGroupList struct {
	TagGroups []TagGroup      `json:"tag_groups"`
	Paging    common.PageInfo `json:"paging"`
}

// TagGroupService manages /tags/groups.
type TagGroupService struct {
	col     *resource.Collection[TagGroup, TagGroupList]
	created *resource.Collection[[]TagGroup, TagGroupList]
}

// NewTagGroupService binds the service to client.
func NewTagGroupService(client *httpclient.Client) *TagGroupService {
	return &TagGroupService{
		col:     resource.NewCollection[TagGroup, TagGroupList](client, "/tags/groups", tagGroupKey),
		created: resource.NewCollection[[]TagGroup, TagGroupList](client, "/tags/groups", tagGroupKey),
	}
}

const invalidTagGroupResponse = "Invalid API response for create tag group"

// Create adds a tag group. The API answers with a one-element array; an
// empty, null or missing array is reported as an error.
func (s *TagGroupService) Create(ctx context.Context, params *TagGroupParams) (*TagGroup, error) {
	groups, err := s.created.Create(ctx, params)
	if errors.HasCode(err, errors.ErrCodeInvalidResponse) {
		return nil, errors.InvalidResponse(invalidTagGroupResponse).WithCause(err)
	}
	if err != nil {
		return nil, err
	}
	if groups == nil || len(*groups) == 0 {
		return nil, errors.InvalidResponse(invalidTagGroupResponse)
	}
	return &(*groups)[0], nil
}

// List returns tag groups. params may be nil.
func (s *TagGroupService) List(ctx context.Context, params *ListParams) (*TagGroupList, error) {
	return s.col.List(ctx, params)
}

// Get fetches one tag group.
func (s *TagGroupService) Get(ctx context.Context, id int) (*TagGroup, error) {
	return s.col.Get(ctx, id)
}

// Update renames a tag group.
func (s *TagGroupService) Update(ctx context.Context, id int, params *TagGroupParams) (*TagGroup, error) {
	return s.col.Update(ctx, id, params)
}

// Delete removes a tag group.
func (s *TagGroupService) Delete(ctx context.Context, id int) error {
	return s.col.Delete(ctx, id)
}
