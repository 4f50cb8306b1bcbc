package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RatingAggregator recomputes a restaurant's displayed rating from its
// currently active reviews. Invoked synchronously after every review
// mutation; callers treat failures as best-effort (log, never propagate).
type RatingAggregator interface {
	// Recompute reads the active review ratings and writes the rounded mean
	// (one fractional digit, round half up), or 0 when none are active.
	Recompute(ctx context.Context, restaurantID uuid.UUID) error
}
