package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for a single review.
const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

// MaxReviewCommentLength bounds the free-text comment.
const MaxReviewCommentLength = 1000

// Review is a user's rating of a restaurant. Only the author may mutate it,
// and a soft-deleted review is terminal.
type Review struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	AuthorID     uuid.UUID `json:"author_id"`
	Rating       int       `json:"rating"`              // Integer in [1,5].
	Comment      string    `json:"comment,omitempty"`   // Optional, bounded length.
	PhotoURL     string    `json:"photo_url,omitempty"` // Optional photo attached after upload.
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
