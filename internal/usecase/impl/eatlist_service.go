package impl

import (
	"context"
	"log/slog"
	"time"

	"bokitas/internal/domain/entity"
	domainerrors "bokitas/internal/domain/errors"
	"bokitas/internal/domain/repository"
	"bokitas/internal/errors"
	"bokitas/internal/usecase"

	"github.com/google/uuid"
)

type eatlistService struct {
	eatlistRepo repository.EatlistRepository
	resolver    usecase.RestaurantResolver
	logger      *slog.Logger
}

// NewEatlistService creates the eatlist lifecycle service.
func NewEatlistService(
	eatlistRepo repository.EatlistRepository,
	resolver usecase.RestaurantResolver,
	logger *slog.Logger,
) usecase.EatlistUsecase {
	return &eatlistService{
		eatlistRepo: eatlistRepo,
		resolver:    resolver,
		logger:      logger,
	}
}

// AddToEatlist moves the (user, restaurant) pair from Absent or Inactive to
// Active. An Inactive entry is reactivated with the given visited flag
// rather than duplicated; an already Active pair is a conflict. Concurrent
// adds are resolved by the store's unique constraint on the active pair.
func (s *eatlistService) AddToEatlist(ctx context.Context, userID uuid.UUID, restaurantRef string, visited bool) (*entity.EatlistEntry, bool, error) {
	restaurantID, err := s.resolver.Resolve(ctx, restaurantRef)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.eatlistRepo.FindEntryByUserAndRestaurant(ctx, userID, restaurantID)
	if err == nil {
		if existing.IsActive {
			return nil, false, domainerrors.ErrDuplicateEatlistEntry
		}

		// Reactivation resets visited to the incoming flag, discarding the
		// previous value.
		if err := s.eatlistRepo.ReactivateEntry(ctx, existing.ID, visited); err != nil {
			return nil, false, errors.Wrap(err, "failed to reactivate eatlist entry")
		}
		existing.IsActive = true
		existing.Visited = visited
		existing.UpdatedAt = time.Now()

		s.logger.Debug("reactivated eatlist entry",
			slog.String("userID", userID.String()),
			slog.String("restaurantID", restaurantID.String()))

		return existing, true, nil
	}
	if !errors.Is(err, repository.ErrEatlistEntryNotFound) {
		return nil, false, errors.Wrap(err, "failed to find eatlist entry")
	}

	now := time.Now()
	entry := &entity.EatlistEntry{
		ID:           uuid.New(),
		UserID:       userID,
		RestaurantID: restaurantID,
		Visited:      visited,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.eatlistRepo.CreateEntry(ctx, entry); err != nil {
		// A concurrent add for the same pair won the race.
		if errors.Is(err, repository.ErrDuplicateEatlistEntry) {
			return nil, false, domainerrors.ErrDuplicateEatlistEntry
		}

		return nil, false, errors.Wrap(err, "failed to create eatlist entry")
	}

	return entry, false, nil
}

// UpdateVisited changes the visited flag. Only legal on an Active pair.
func (s *eatlistService) UpdateVisited(ctx context.Context, userID, restaurantID uuid.UUID, visited bool) error {
	if err := s.eatlistRepo.UpdateVisited(ctx, userID, restaurantID, visited); err != nil {
		if errors.Is(err, repository.ErrEatlistEntryNotFound) {
			return domainerrors.ErrEatlistEntryNotFound
		}

		return errors.Wrap(err, "failed to update visited flag")
	}

	return nil
}

// RemoveFromEatlist soft-deletes the Active entry for the pair, keeping it
// as history for later reactivation.
func (s *eatlistService) RemoveFromEatlist(ctx context.Context, userID, restaurantID uuid.UUID) error {
	if err := s.eatlistRepo.DeactivateEntry(ctx, userID, restaurantID); err != nil {
		if errors.Is(err, repository.ErrEatlistEntryNotFound) {
			return domainerrors.ErrEatlistEntryNotFound
		}

		return errors.Wrap(err, "failed to deactivate eatlist entry")
	}

	return nil
}

// ListEatlist returns the user's active entries joined with restaurant
// summaries, newest first, optionally filtered by visited.
func (s *eatlistService) ListEatlist(ctx context.Context, userID uuid.UUID, visited *bool) ([]*entity.EatlistItem, error) {
	items, err := s.eatlistRepo.FindActiveItemsByUser(ctx, userID, visited)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list eatlist items")
	}

	return items, nil
}
