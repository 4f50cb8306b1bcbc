package entity

import (
	"time"

	"github.com/google/uuid"
)

// EatlistEntry is a user's save-list relationship with a restaurant.
// At most one logically active entry exists per (user, restaurant) pair;
// a soft-deleted entry is kept as history and reactivated rather than
// duplicated.
type EatlistEntry struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Visited      bool      `json:"visited"` // false = "want to visit", true = "visited".
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EatlistItem is the read model for listing a user's eatlist: the entry
// joined with a summary of its restaurant.
type EatlistItem struct {
	EatlistEntry
	RestaurantName     string  `json:"restaurant_name"`
	RestaurantPhotoURL string  `json:"restaurant_photo_url,omitempty"`
	RestaurantRating   float64 `json:"restaurant_rating"`
}
