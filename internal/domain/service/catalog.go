// Package service defines interfaces for external collaborators consumed by
// the use case layer.
package service

import (
	"context"

	"bokitas/internal/errors"
)

// Errors surfaced by PlaceCatalogClient implementations.
var (
	// ErrPlaceNotFound is returned when the catalog has no place for the id.
	ErrPlaceNotFound = errors.New("place not found in catalog")
	// ErrInvalidPlaceID is returned for an empty or malformed place id.
	ErrInvalidPlaceID = errors.New("invalid place id")
)

// GeoPoint is a latitude/longitude pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PlaceCategory is a category as reported by the external catalog.
type PlaceCategory struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// PlacePhoto is a photo asset expressed as a URL prefix/suffix pair to be
// concatenated with a resolution token.
type PlacePhoto struct {
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
}

// PlaceDetails is the catalog's view of a place, as needed to materialize a
// local restaurant row.
type PlaceDetails struct {
	ExternalID       string          `json:"external_id"`
	Name             string          `json:"name"`
	FormattedAddress string          `json:"formatted_address,omitempty"`
	AddressParts     []string        `json:"address_parts,omitempty"` // Used when no pre-formatted address is available.
	Location         *GeoPoint       `json:"location,omitempty"`      // Direct coordinates reported by the catalog.
	Geocode          *GeoPoint       `json:"geocode,omitempty"`       // Geocoder fallback when direct coordinates are missing.
	WebsiteURL       string          `json:"website_url,omitempty"`
	Categories       []PlaceCategory `json:"categories,omitempty"`
	Photos           []PlacePhoto    `json:"photos,omitempty"`
}

// PlaceCatalogClient fetches place details from the external place-search
// catalog. Implementations live in internal/infra/catalog.
type PlaceCatalogClient interface {
	// FetchPlace retrieves the details of a place by its catalog identifier.
	FetchPlace(ctx context.Context, externalID string) (*PlaceDetails, error)
}
