package impl

import (
	"context"
	"testing"

	"bokitas/internal/domain/entity"
	domainerrors "bokitas/internal/domain/errors"
	"bokitas/internal/domain/repository"
	mockRepo "bokitas/internal/mocks/repository"
	mockUC "bokitas/internal/mocks/usecase"
	"bokitas/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEatlistServiceForTest(t *testing.T) (*mockRepo.MockEatlistRepository, *mockUC.MockRestaurantResolver, usecase.EatlistUsecase) {
	eatlistRepo := mockRepo.NewMockEatlistRepository(t)
	resolver := mockUC.NewMockRestaurantResolver(t)
	svc := NewEatlistService(eatlistRepo, resolver, testLogger())

	return eatlistRepo, resolver, svc
}

func TestEatlistService_AddToEatlist_New(t *testing.T) {
	eatlistRepo, resolver, svc := newEatlistServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	resolver.EXPECT().Resolve(ctx, "ext-abc").Return(restaurantID, nil)
	eatlistRepo.EXPECT().
		FindEntryByUserAndRestaurant(ctx, userID, restaurantID).
		Return(nil, repository.ErrEatlistEntryNotFound)
	eatlistRepo.EXPECT().
		CreateEntry(ctx, mock.MatchedBy(func(entry *entity.EatlistEntry) bool {
			return entry.UserID == userID &&
				entry.RestaurantID == restaurantID &&
				!entry.Visited &&
				entry.IsActive
		})).
		Return(nil)

	entry, reactivated, err := svc.AddToEatlist(ctx, userID, "ext-abc", false)
	require.NoError(t, err)
	assert.False(t, reactivated)
	assert.False(t, entry.Visited)
}

func TestEatlistService_AddToEatlist_ActiveConflict(t *testing.T) {
	eatlistRepo, resolver, svc := newEatlistServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	resolver.EXPECT().Resolve(ctx, restaurantID.String()).Return(restaurantID, nil)
	eatlistRepo.EXPECT().
		FindEntryByUserAndRestaurant(ctx, userID, restaurantID).
		Return(&entity.EatlistEntry{ID: uuid.New(), UserID: userID, RestaurantID: restaurantID, IsActive: true}, nil)

	_, _, err := svc.AddToEatlist(ctx, userID, restaurantID.String(), false)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEatlistEntry)
}

func TestEatlistService_AddToEatlist_Reactivates(t *testing.T) {
	eatlistRepo, resolver, svc := newEatlistServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()
	entryID := uuid.New()

	resolver.EXPECT().Resolve(ctx, restaurantID.String()).Return(restaurantID, nil)
	eatlistRepo.EXPECT().
		FindEntryByUserAndRestaurant(ctx, userID, restaurantID).
		Return(&entity.EatlistEntry{ID: entryID, UserID: userID, RestaurantID: restaurantID, Visited: false, IsActive: false}, nil)
	eatlistRepo.EXPECT().
		ReactivateEntry(ctx, entryID, true).
		Return(nil)

	entry, reactivated, err := svc.AddToEatlist(ctx, userID, restaurantID.String(), true)
	require.NoError(t, err)
	assert.True(t, reactivated)
	assert.True(t, entry.IsActive)
	// Reactivation resets visited to the incoming flag.
	assert.True(t, entry.Visited)
	assert.Equal(t, entryID, entry.ID)
}

func TestEatlistService_AddToEatlist_ConcurrentDuplicate(t *testing.T) {
	eatlistRepo, resolver, svc := newEatlistServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	resolver.EXPECT().Resolve(ctx, restaurantID.String()).Return(restaurantID, nil)
	eatlistRepo.EXPECT().
		FindEntryByUserAndRestaurant(ctx, userID, restaurantID).
		Return(nil, repository.ErrEatlistEntryNotFound)

	// The unique constraint on the active pair rejects the second insert.
	eatlistRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.EatlistEntry")).
		Return(repository.ErrDuplicateEatlistEntry)

	_, _, err := svc.AddToEatlist(ctx, userID, restaurantID.String(), false)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEatlistEntry)
}

func TestEatlistService_AddToEatlist_ResolveFails(t *testing.T) {
	_, resolver, svc := newEatlistServiceForTest(t)

	ctx := context.Background()

	resolver.EXPECT().Resolve(ctx, "ext-gone").Return(uuid.Nil, domainerrors.ErrCatalogLookupFailed)

	_, _, err := svc.AddToEatlist(ctx, uuid.New(), "ext-gone", false)
	assert.ErrorIs(t, err, domainerrors.ErrCatalogLookupFailed)
}

func TestEatlistService_UpdateVisited(t *testing.T) {
	eatlistRepo, _, svc := newEatlistServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	eatlistRepo.EXPECT().
		UpdateVisited(ctx, userID, restaurantID, true).
		Return(nil)

	require.NoError(t, svc.UpdateVisited(ctx, userID, restaurantID, true))
}

func TestEatlistService_UpdateVisited_NeverAdded(t *testing.T) {
	eatlistRepo, _, svc := newEatlistServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	eatlistRepo.EXPECT().
		UpdateVisited(ctx, userID, restaurantID, true).
		Return(repository.ErrEatlistEntryNotFound)

	err := svc.UpdateVisited(ctx, userID, restaurantID, true)
	assert.ErrorIs(t, err, domainerrors.ErrEatlistEntryNotFound)
}

func TestEatlistService_RemoveFromEatlist(t *testing.T) {
	eatlistRepo, _, svc := newEatlistServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	eatlistRepo.EXPECT().
		DeactivateEntry(ctx, userID, restaurantID).
		Return(nil)

	require.NoError(t, svc.RemoveFromEatlist(ctx, userID, restaurantID))
}

func TestEatlistService_RemoveFromEatlist_NeverAdded(t *testing.T) {
	eatlistRepo, _, svc := newEatlistServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	eatlistRepo.EXPECT().
		DeactivateEntry(ctx, userID, restaurantID).
		Return(repository.ErrEatlistEntryNotFound)

	err := svc.RemoveFromEatlist(ctx, userID, restaurantID)
	assert.ErrorIs(t, err, domainerrors.ErrEatlistEntryNotFound)
}

func TestEatlistService_ListEatlist_VisitedFilter(t *testing.T) {
	eatlistRepo, _, svc := newEatlistServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	visited := true

	eatlistRepo.EXPECT().
		FindActiveItemsByUser(ctx, userID, &visited).
		Return([]*entity.EatlistItem{{
			EatlistEntry:     entity.EatlistEntry{ID: uuid.New(), UserID: userID, Visited: true, IsActive: true},
			RestaurantName:   "Taquería El Faro",
			RestaurantRating: 4.5,
		}}, nil)

	items, err := svc.ListEatlist(ctx, userID, &visited)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Taquería El Faro", items[0].RestaurantName)
}
