package usecase

import (
	"context"

	"bokitas/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput carries the fields of a review creation.
type CreateReviewInput struct {
	RestaurantRef string // Local UUID or external catalog id.
	Rating        int
	Comment       string
}

// ReviewUsecase defines the review lifecycle use cases.
type ReviewUsecase interface {
	// CreateReview resolves the restaurant reference, validates the input
	// and inserts an active review, then triggers a rating recompute.
	CreateReview(ctx context.Context, authorID uuid.UUID, input CreateReviewInput) (*entity.Review, error)

	// UpdateReview changes rating and/or comment. Author-only; the review
	// must be active and at least one field must change.
	UpdateReview(ctx context.Context, reviewID, authorID uuid.UUID, rating *int, comment *string) (*entity.Review, error)

	// DeleteReview soft-deletes a review (author-only, terminal) and
	// triggers a rating recompute so it no longer contributes.
	DeleteReview(ctx context.Context, reviewID, authorID uuid.UUID) error

	// AttachReviewPhoto sets the review's photo URL. The first review photo
	// of a restaurant without a cover photo also becomes the restaurant's
	// cover photo; an already-set cover photo is never overwritten.
	AttachReviewPhoto(ctx context.Context, reviewID, authorID uuid.UUID, photoURL string) (*entity.Review, error)

	// ListRestaurantReviews returns the active reviews of a restaurant,
	// newest first.
	ListRestaurantReviews(ctx context.Context, restaurantRef string) ([]*entity.Review, error)

	// ListAuthorReviews returns the user's active reviews, newest first.
	ListAuthorReviews(ctx context.Context, authorID uuid.UUID) ([]*entity.Review, error)
}
