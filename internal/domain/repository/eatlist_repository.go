package repository

import (
	"context"

	"bokitas/internal/domain/entity"
	"bokitas/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for eatlist persistence.
var (
	// ErrEatlistEntryNotFound is returned when an eatlist entry is not found.
	ErrEatlistEntryNotFound = errors.New("eatlist entry not found")
	// ErrDuplicateEatlistEntry is returned when an active entry for the same
	// (user, restaurant) pair already exists.
	ErrDuplicateEatlistEntry = errors.New("active eatlist entry already exists")
)

// EatlistRepository defines the interface for eatlist-related database operations.
type EatlistRepository interface {
	// CreateEntry persists a new active eatlist entry. Returns
	// ErrDuplicateEatlistEntry when the partial unique index on
	// (user_id, restaurant_id) for active rows rejects the insert.
	CreateEntry(ctx context.Context, entry *entity.EatlistEntry) error

	// FindEntryByUserAndRestaurant retrieves the entry for a (user, restaurant)
	// pair regardless of lifecycle state, preferring the active one.
	FindEntryByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.EatlistEntry, error)

	// ReactivateEntry flips a soft-deleted entry back to active with the
	// given visited flag and refreshed timestamps.
	ReactivateEntry(ctx context.Context, id uuid.UUID, visited bool) error

	// UpdateVisited updates the visited flag of the active entry for the
	// pair. Returns ErrEatlistEntryNotFound when no active entry exists.
	UpdateVisited(ctx context.Context, userID, restaurantID uuid.UUID, visited bool) error

	// DeactivateEntry soft-deletes the active entry for the pair. Returns
	// ErrEatlistEntryNotFound when no active entry exists.
	DeactivateEntry(ctx context.Context, userID, restaurantID uuid.UUID) error

	// FindActiveItemsByUser retrieves the user's active entries joined with
	// their restaurant summaries, newest first, optionally filtered by the
	// visited flag.
	FindActiveItemsByUser(ctx context.Context, userID uuid.UUID, visited *bool) ([]*entity.EatlistItem, error)
}
