package controlpanel

import "github.com/kbukum/bukku-go/httpclient"

// API groups the control-panel services.
type API struct {
	Locations *LocationService
	Tags      *TagService
	TagGroups *TagGroupService
}

// New binds the control-panel services to client.
func New(client *httpclient.Client) *API {
	return &API{
		Locations: NewLocationService(client),
		Tags:      NewTagService(client),
		TagGroups: NewTagGroupService(client),
	}
}

// ListParams filters the control-panel lists.
type ListParams struct {
	IncludeArchived *bool             `json:"include_archived,omitempty"`
	Extra           httpclient.Params `json:"-"`
}
