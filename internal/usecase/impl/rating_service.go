package impl

import (
	"context"
	"log/slog"
	"math"

	"bokitas/internal/domain/repository"
	"bokitas/internal/errors"
	"bokitas/internal/usecase"

	"github.com/google/uuid"
)

type ratingAggregator struct {
	restaurantRepo repository.RestaurantRepository
	reviewRepo     repository.ReviewRepository
	logger         *slog.Logger
}

// NewRatingAggregator creates the aggregator that keeps a restaurant's
// displayed rating consistent with its active reviews.
func NewRatingAggregator(
	restaurantRepo repository.RestaurantRepository,
	reviewRepo repository.ReviewRepository,
	logger *slog.Logger,
) usecase.RatingAggregator {
	return &ratingAggregator{
		restaurantRepo: restaurantRepo,
		reviewRepo:     reviewRepo,
		logger:         logger,
	}
}

// Recompute reads every active review rating for the restaurant and writes
// the rounded mean back, or 0 when no active review exists. The read and the
// write may race with a concurrent review mutation; the resulting transient
// staleness is accepted since that mutation re-triggers a recompute.
func (a *ratingAggregator) Recompute(ctx context.Context, restaurantID uuid.UUID) error {
	ratings, err := a.reviewRepo.ListActiveRatings(ctx, restaurantID)
	if err != nil {
		return errors.Wrap(err, "failed to list active review ratings")
	}

	var aggregate float64
	if len(ratings) > 0 {
		sum := 0
		for _, rating := range ratings {
			sum += rating
		}
		aggregate = roundToOneDecimal(float64(sum) / float64(len(ratings)))
	}

	if err := a.restaurantRepo.UpdateRating(ctx, restaurantID, aggregate); err != nil {
		return errors.Wrap(err, "failed to write aggregate rating")
	}

	a.logger.Debug("recomputed aggregate rating",
		slog.String("restaurantID", restaurantID.String()),
		slog.Float64("rating", aggregate),
		slog.Int("activeReviews", len(ratings)))

	return nil
}

// roundToOneDecimal rounds half up to one fractional digit.
func roundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
