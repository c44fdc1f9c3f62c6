package controlpanel

import (
	"context"
	"net/http"
	"testing"

	"github.com/kbukum/bukku-go/bukkutest"
	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/errors"
)

func TestLocationService(t *testing.T) {
	srv := bukkutest.NewServer(t)
	api := New(srv.NewClient(t))
	ctx := context.Background()

	loc, err := api.Locations.Create(ctx, &LocationParams{Code: "KL", Name: "Kuala Lumpur", City: "KL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Code != "KL" || loc.City == nil || *loc.City != "KL" {
		t.Errorf("location = %+v", loc)
	}

	archived := true
	list, err := api.Locations.List(ctx, &ListParams{IncludeArchived: &archived})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Locations) != 1 || list.Paging.Total != 1 {
		t.Errorf("list = %+v", list)
	}
	req, _ := srv.LastRequest()
	if req.RawQuery != "include_archived=true" {
		t.Errorf("query = %q", req.RawQuery)
	}

	updated, err := api.Locations.UpdateArchiveStatus(ctx, loc.ID, common.ArchiveUpdate{IsArchived: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.IsArchived {
		t.Error("expected archived location")
	}
	req, _ = srv.LastRequest()
	if req.Method != http.MethodPatch {
		t.Errorf("method = %s", req.Method)
	}

	if err := api.Locations.Delete(ctx, loc.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := api.Locations.Get(ctx, loc.ID); err == nil {
		t.Fatal("expected not found after delete")
	}
}

func TestTagService(t *testing.T) {
	srv := bukkutest.NewServer(t)
	api := New(srv.NewClient(t))
	ctx := context.Background()

	tag, err := api.Tags.Create(ctx, &TagParams{Name: "Project A", TagGroupID: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag.TagGroupID != 3 {
		t.Errorf("tag_group_id = %d", tag.TagGroupID)
	}

	renamed, err := api.Tags.Update(ctx, tag.ID, &TagParams{Name: "Project B", TagGroupID: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if renamed.Name != "Project B" {
		t.Errorf("name = %q", renamed.Name)
	}

	list, err := api.Tags.List(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Tags) != 1 {
		t.Errorf("tags = %+v", list.Tags)
	}
}

func TestTagGroupService_Create(t *testing.T) {
	srv := bukkutest.NewServer(t)
	api := New(srv.NewClient(t))
	ctx := context.Background()

	group, err := api.TagGroups.Create(ctx, &TagGroupParams{Name: "Projects"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if group.Name != "Projects" || group.ID == 0 {
		t.Errorf("group = %+v", group)
	}

	got, err := api.TagGroups.Get(ctx, group.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Projects" {
		t.Errorf("name = %q", got.Name)
	}

	list, err := api.TagGroups.List(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.TagGroups) != 1 {
		t.Errorf("tag groups = %+v", list.TagGroups)
	}
}

func TestTagGroupService_CreateInvalidResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty array", body: `{"tag_group":[]}`},
		{name: "null", body: `{"tag_group":null}`},
		{name: "missing key", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := bukkutest.NewServer(t)
			api := New(srv.NewClient(t))
			srv.Stub(http.MethodPost, "/tags/groups", http.StatusOK, tt.body)

			_, err := api.TagGroups.Create(context.Background(), &TagGroupParams{Name: "Empty"})
			if err == nil {
				t.Fatal("expected error")
			}
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != errors.ErrCodeInvalidResponse {
				t.Errorf("code = %s", appErr.Code)
			}
			if appErr.Message != "Invalid API response for create tag group" {
				t.Errorf("message = %q", appErr.Message)
			}
		})
	}
}
