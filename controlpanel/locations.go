package controlpanel

import (
	"context"

	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

// LocationParams is the body of Create and Update. Code and Name are
// required.
type LocationParams struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Street      string `json:"street,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Postcode    string `json:"postcode,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	Remarks     string `json:"remarks,omitempty"`
}

// Location is a stock location or branch.
type Location struct {
	ID          int     `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Street      *string `json:"street"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Postcode    *string `json:"postcode"`
	CountryCode *string `json:"country_code"`
	Remarks     *string `json:"remarks"`
	IsArchived  bool    `json:"is_archived"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// LocationListItem is one row of List.
type LocationListItem struct {
	ID         int    `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	IsArchived bool   `json:"is_archived"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// LocationList is the List response.
type LocationList struct {
	Locations []LocationListItem `json:"locations"`
	Paging    common.PageInfo    `json:"paging"`
}

// LocationService manages /locations.
type LocationService struct {
	col *resource.Collection[Location, LocationList]
}

// NewLocationService binds the service to client.
func NewLocationService(client *httpclient.Client) *LocationService {
	return &LocationService{col: resource.NewCollection[Location, LocationList](client, "/locations", "location")}
}

// Create adds a location.
func (s *LocationService) Create(ctx context.Context, params *LocationParams) (*Location, error) {
	return s.col.Create(ctx, params)
}

// List returns locations. params may be nil.
func (s *LocationService) List(ctx context.Context, params *ListParams) (*LocationList, error) {
	return s.col.List(ctx, params)
}

// Get fetches one location.
func (s *LocationService) Get(ctx context.Context, id int) (*Location, error) {
	return s.col.Get(ctx, id)
}

// Update replaces a location.
func (s *LocationService) Update(ctx context.Context, id int, params *LocationParams) (*Location, error) {
	return s.col.Update(ctx, id, params)
}

// UpdateArchiveStatus archives or restores a location.
func (s *LocationService) UpdateArchiveStatus(ctx context.Context, id int, params common.ArchiveUpdate) (*Location, error) {
	return s.col.Patch(ctx, id, params)
}

// Delete removes a location.
func (s *LocationService) Delete(ctx context.Context, id int) error {
	return s.col.Delete(ctx, id)
}
