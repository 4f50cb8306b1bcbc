package repository

import (
	"context"

	"bokitas/internal/domain/entity"
	"bokitas/internal/errors"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for review-related database operations.
type ReviewRepository interface {
	// CreateReview persists a new review.
	CreateReview(ctx context.Context, review *entity.Review) error

	// FindReviewByID retrieves a review by its unique ID, regardless of
	// lifecycle state.
	FindReviewByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// UpdateReview applies a partial update to rating and/or comment.
	// Nil fields are left untouched.
	UpdateReview(ctx context.Context, id uuid.UUID, rating *int, comment *string) error

	// SetReviewPhoto sets the review's photo URL.
	SetReviewPhoto(ctx context.Context, id uuid.UUID, photoURL string) error

	// DeactivateReview soft-deletes a review.
	DeactivateReview(ctx context.Context, id uuid.UUID) error

	// ListActiveRatings returns the rating values of all currently active
	// reviews for a restaurant. Input to the aggregate recomputation.
	ListActiveRatings(ctx context.Context, restaurantID uuid.UUID) ([]int, error)

	// FindActiveReviewsByRestaurant retrieves active reviews for a
	// restaurant, newest first.
	FindActiveReviewsByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Review, error)

	// FindActiveReviewsByAuthor retrieves a user's active reviews, newest first.
	FindActiveReviewsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Review, error)
}
