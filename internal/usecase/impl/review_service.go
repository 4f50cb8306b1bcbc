package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bokitas/internal/domain/entity"
	domainerrors "bokitas/internal/domain/errors"
	"bokitas/internal/domain/repository"
	"bokitas/internal/errors"
	"bokitas/internal/usecase"

	"github.com/google/uuid"
)

type reviewService struct {
	reviewRepo     repository.ReviewRepository
	restaurantRepo repository.RestaurantRepository
	resolver       usecase.RestaurantResolver
	aggregator     usecase.RatingAggregator
	logger         *slog.Logger
}

// NewReviewService creates the review lifecycle service.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	restaurantRepo repository.RestaurantRepository,
	resolver usecase.RestaurantResolver,
	aggregator usecase.RatingAggregator,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:     reviewRepo,
		restaurantRepo: restaurantRepo,
		resolver:       resolver,
		aggregator:     aggregator,
		logger:         logger,
	}
}

// CreateReview validates the input, resolves the restaurant reference and
// inserts an active review, then recomputes the restaurant's rating.
func (s *reviewService) CreateReview(ctx context.Context, authorID uuid.UUID, input usecase.CreateReviewInput) (*entity.Review, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}
	if err := validateComment(input.Comment); err != nil {
		return nil, err
	}

	restaurantID, err := s.resolver.Resolve(ctx, input.RestaurantRef)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	review := &entity.Review{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		AuthorID:     authorID,
		Rating:       input.Rating,
		Comment:      strings.TrimSpace(input.Comment),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	s.recomputeRating(ctx, restaurantID)

	return review, nil
}

// UpdateReview changes rating and/or comment of an active review owned by
// the caller, then recomputes the restaurant's rating.
func (s *reviewService) UpdateReview(ctx context.Context, reviewID, authorID uuid.UUID, rating *int, comment *string) (*entity.Review, error) {
	if rating == nil && comment == nil {
		return nil, domainerrors.ErrNoFieldsToUpdate
	}
	if rating != nil {
		if err := validateRating(*rating); err != nil {
			return nil, err
		}
	}
	if comment != nil {
		if err := validateComment(*comment); err != nil {
			return nil, err
		}
	}

	review, err := s.findOwnedActiveReview(ctx, reviewID, authorID)
	if err != nil {
		return nil, err
	}

	ratingUnchanged := rating == nil || *rating == review.Rating
	commentUnchanged := comment == nil || *comment == review.Comment
	if ratingUnchanged && commentUnchanged {
		return nil, domainerrors.ErrNoFieldsToUpdate
	}

	if err := s.reviewRepo.UpdateReview(ctx, reviewID, rating, comment); err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	if rating != nil {
		review.Rating = *rating
	}
	if comment != nil {
		review.Comment = *comment
	}
	review.UpdatedAt = time.Now()

	s.recomputeRating(ctx, review.RestaurantID)

	return review, nil
}

// DeleteReview soft-deletes an active review owned by the caller. The state
// is terminal; the follow-up recompute drops the review from the average.
func (s *reviewService) DeleteReview(ctx context.Context, reviewID, authorID uuid.UUID) error {
	review, err := s.findOwnedActiveReview(ctx, reviewID, authorID)
	if err != nil {
		return err
	}

	if err := s.reviewRepo.DeactivateReview(ctx, reviewID); err != nil {
		return errors.Wrap(err, "failed to deactivate review")
	}

	s.recomputeRating(ctx, review.RestaurantID)

	return nil
}

// AttachReviewPhoto sets the review's photo URL. The first review photo of a
// restaurant without a cover photo also becomes that restaurant's cover
// photo; the write is conditional in the store, so a later photo never
// overwrites an already-set cover.
func (s *reviewService) AttachReviewPhoto(ctx context.Context, reviewID, authorID uuid.UUID, photoURL string) (*entity.Review, error) {
	photoURL = strings.TrimSpace(photoURL)
	if photoURL == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("photo url must not be empty")
	}

	review, err := s.findOwnedActiveReview(ctx, reviewID, authorID)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.SetReviewPhoto(ctx, reviewID, photoURL); err != nil {
		return nil, errors.Wrap(err, "failed to set review photo")
	}
	review.PhotoURL = photoURL
	review.UpdatedAt = time.Now()

	set, err := s.restaurantRepo.SetCoverPhotoIfEmpty(ctx, review.RestaurantID, photoURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set restaurant cover photo")
	}
	if set {
		s.logger.Info("restaurant cover photo set from review photo",
			slog.String("restaurantID", review.RestaurantID.String()),
			slog.String("reviewID", reviewID.String()))
	}

	return review, nil
}

// ListRestaurantReviews returns the active reviews of a restaurant, newest first.
func (s *reviewService) ListRestaurantReviews(ctx context.Context, restaurantRef string) ([]*entity.Review, error) {
	restaurantID, err := s.resolver.Resolve(ctx, restaurantRef)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindActiveReviewsByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by restaurant")
	}

	return reviews, nil
}

// ListAuthorReviews returns the user's active reviews, newest first.
func (s *reviewService) ListAuthorReviews(ctx context.Context, authorID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindActiveReviewsByAuthor(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by author")
	}

	return reviews, nil
}

// findOwnedActiveReview loads a review and enforces authorship and the
// active state. A soft-deleted review behaves as absent for its author too.
func (s *reviewService) findOwnedActiveReview(ctx context.Context, reviewID, authorID uuid.UUID) (*entity.Review, error) {
	review, err := s.reviewRepo.FindReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	if review.AuthorID != authorID {
		return nil, domainerrors.ErrReviewOwnershipViolation
	}
	if !review.IsActive {
		return nil, domainerrors.ErrReviewNotFound
	}

	return review, nil
}

// recomputeRating triggers the aggregator as a best-effort side effect. A
// failed recompute leaves the rating stale until the next review mutation;
// the review operation itself still succeeds.
func (s *reviewService) recomputeRating(ctx context.Context, restaurantID uuid.UUID) {
	if err := s.aggregator.Recompute(ctx, restaurantID); err != nil {
		s.logger.Error("rating recompute failed",
			slog.String("restaurantID", restaurantID.String()),
			slog.Any("error", err))
	}
}

func validateRating(rating int) error {
	if rating < entity.MinReviewRating || rating > entity.MaxReviewRating {
		return domainerrors.ErrRatingOutOfRange
	}

	return nil
}

func validateComment(comment string) error {
	if len(comment) > entity.MaxReviewCommentLength {
		return domainerrors.ErrCommentTooLong
	}

	return nil
}
