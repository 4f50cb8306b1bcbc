// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is the canonical record for a place, whether it was created
// locally or materialized from the external place catalog on first reference.
type Restaurant struct {
	ID            uuid.UUID `json:"id"`                       // The locally issued, permanent identifier.
	Name          string    `json:"name"`                     // Display name.
	Address       string    `json:"address,omitempty"`        // Human-readable address, empty when unknown.
	Latitude      *float64  `json:"latitude,omitempty"`       // Geographic latitude, nil when unknown.
	Longitude     *float64  `json:"longitude,omitempty"`      // Geographic longitude, nil when unknown.
	CoverPhotoURL string    `json:"cover_photo_url,omitempty"` // Cover photo, empty until one is set.
	WebsiteURL    string    `json:"website_url,omitempty"`    // External website, optional.
	ExternalID    string    `json:"external_id,omitempty"`    // Place catalog identifier, empty for local-only rows. Unique when present.
	Rating        float64   `json:"rating"`                   // Aggregate rating, one fractional digit, 0 with no active reviews.
	IsActive      bool      `json:"is_active"`                // Lifecycle flag; rows are never hard-deleted.
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RestaurantUpdate carries the optional fields of an explicit restaurant
// update. Nil fields are left untouched.
type RestaurantUpdate struct {
	Name          *string `json:"name,omitempty"`
	Address       *string `json:"address,omitempty"`
	CoverPhotoURL *string `json:"cover_photo_url,omitempty"`
	WebsiteURL    *string `json:"website_url,omitempty"`
}

// IsEmpty reports whether the update would change nothing.
func (u RestaurantUpdate) IsEmpty() bool {
	return u.Name == nil && u.Address == nil && u.CoverPhotoURL == nil && u.WebsiteURL == nil
}
