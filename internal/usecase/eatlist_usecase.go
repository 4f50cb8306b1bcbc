package usecase

import (
	"context"

	"bokitas/internal/domain/entity"

	"github.com/google/uuid"
)

// EatlistUsecase defines the save-list lifecycle use cases. Each
// (user, restaurant) pair moves through Absent -> Active -> Inactive, with
// Inactive entries reactivated instead of duplicated.
type EatlistUsecase interface {
	// AddToEatlist resolves the restaurant reference and creates an active
	// entry, or reactivates a soft-deleted one with the given visited flag.
	// Reports whether this was a reactivation. Fails with a conflict when an
	// active entry already exists.
	AddToEatlist(ctx context.Context, userID uuid.UUID, restaurantRef string, visited bool) (*entity.EatlistEntry, bool, error)

	// UpdateVisited changes the visited flag of the active entry for the pair.
	UpdateVisited(ctx context.Context, userID, restaurantID uuid.UUID, visited bool) error

	// RemoveFromEatlist soft-deletes the active entry for the pair.
	RemoveFromEatlist(ctx context.Context, userID, restaurantID uuid.UUID) error

	// ListEatlist returns the user's active entries joined with restaurant
	// summaries, newest first, optionally filtered by visited.
	ListEatlist(ctx context.Context, userID uuid.UUID, visited *bool) ([]*entity.EatlistItem, error)
}
