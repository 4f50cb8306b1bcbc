package impl

import (
	"context"
	"testing"

	"bokitas/internal/domain/entity"
	domainerrors "bokitas/internal/domain/errors"
	"bokitas/internal/domain/repository"
	"bokitas/internal/domain/service"
	"bokitas/internal/domain/taxonomy"
	mockRepo "bokitas/internal/mocks/repository"
	mockSvc "bokitas/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRestaurantServiceForTest(t *testing.T) (*mockRepo.MockRestaurantRepository, *mockRepo.MockFoodTypeRepository, *mockSvc.MockPlaceCatalogClient, *restaurantService) {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	foodTypeRepo := mockRepo.NewMockFoodTypeRepository(t)
	catalog := mockSvc.NewMockPlaceCatalogClient(t)
	svc := NewRestaurantService(restaurantRepo, foodTypeRepo, catalog, testLogger()).(*restaurantService)

	return restaurantRepo, foodTypeRepo, catalog, svc
}

func TestRestaurantService_Resolve_LocalID(t *testing.T) {
	restaurantRepo, _, _, svc := newRestaurantServiceForTest(t)

	ctx := context.Background()
	id := uuid.New()

	restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, id).
		Return(&entity.Restaurant{ID: id, Name: "Taquería El Faro", IsActive: true}, nil)

	resolved, err := svc.Resolve(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, id, resolved)
}

func TestRestaurantService_Resolve_LocalID_NotFound(t *testing.T) {
	restaurantRepo, _, _, svc := newRestaurantServiceForTest(t)

	ctx := context.Background()
	id := uuid.New()

	restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, id).
		Return(nil, repository.ErrRestaurantNotFound)

	_, err := svc.Resolve(ctx, id.String())
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestRestaurantService_Resolve_LocalID_Inactive(t *testing.T) {
	restaurantRepo, _, _, svc := newRestaurantServiceForTest(t)

	ctx := context.Background()
	id := uuid.New()

	restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, id).
		Return(&entity.Restaurant{ID: id, IsActive: false}, nil)

	_, err := svc.Resolve(ctx, id.String())
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestRestaurantService_Resolve_EmptyRef(t *testing.T) {
	_, _, _, svc := newRestaurantServiceForTest(t)

	_, err := svc.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrEmptyPlaceReference)
}

func TestRestaurantService_Resolve_ExternalID_Existing(t *testing.T) {
	restaurantRepo, _, _, svc := newRestaurantServiceForTest(t)

	ctx := context.Background()
	id := uuid.New()

	// Known external ids never reach the catalog, even for an inactive row.
	restaurantRepo.EXPECT().
		FindRestaurantByExternalID(ctx, "ext-abc123").
		Return(&entity.Restaurant{ID: id, ExternalID: "ext-abc123", IsActive: false}, nil)

	resolved, err := svc.Resolve(ctx, "ext-abc123")
	require.NoError(t, err)
	assert.Equal(t, id, resolved)
}

func TestRestaurantService_Resolve_ExternalID_Materializes(t *testing.T) {
	restaurantRepo, _, catalog, svc := newRestaurantServiceForTest(t)

	ctx := context.Background()
	stored := &entity.Restaurant{ID: uuid.New(), ExternalID: "ext-new"}

	restaurantRepo.EXPECT().
		FindRestaurantByExternalID(ctx, "ext-new").
		Return(nil, repository.ErrRestaurantNotFound)

	catalog.EXPECT().
		FetchPlace(ctx, "ext-new").
		Return(&service.PlaceDetails{
			ExternalID:   "ext-new",
			Name:         "Smash Bros Burgers",
			AddressParts: []string{"123 Main St", "", "San José"},
			Geocode:      &service.GeoPoint{Latitude: 9.93, Longitude: -84.08},
			WebsiteURL:   "https://smashbros.example",
			Categories:   []service.PlaceCategory{{Code: 13031, Name: "Burger Joint"}},
			Photos:       []service.PlacePhoto{{Prefix: "https://photos.example/p/", Suffix: "/photo.jpg"}},
		}, nil)

	restaurantRepo.EXPECT().
		UpsertRestaurantByExternalID(ctx, mock.MatchedBy(func(restaurant *entity.Restaurant) bool {
			return restaurant.Name == "Smash Bros Burgers" &&
				restaurant.Address == "123 Main St, San José" &&
				restaurant.CoverPhotoURL == "https://photos.example/p/original/photo.jpg" &&
				restaurant.WebsiteURL == "https://smashbros.example" &&
				restaurant.ExternalID == "ext-new" &&
				restaurant.Rating == 0 &&
				restaurant.IsActive &&
				restaurant.Latitude != nil && *restaurant.Latitude == 9.93
		}), []int64{taxonomy.FoodTypeBurgers}).
		Return(stored, true, nil)

	resolved, err := svc.Resolve(ctx, "ext-new")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, resolved)
}

func TestRestaurantService_Resolve_ExternalID_Idempotent(t *testing.T) {
	restaurantRepo, _, catalog, svc := newRestaurantServiceForTest(t)

	ctx := context.Background()
	stored := &entity.Restaurant{ID: uuid.New(), ExternalID: "ext-once"}

	restaurantRepo.EXPECT().
		FindRestaurantByExternalID(ctx, "ext-once").
		Return(nil, repository.ErrRestaurantNotFound).Once()

	catalog.EXPECT().
		FetchPlace(ctx, "ext-once").
		Return(&service.PlaceDetails{ExternalID: "ext-once", Name: "Once"}, nil).Once()

	restaurantRepo.EXPECT().
		UpsertRestaurantByExternalID(ctx, mock.AnythingOfType("*entity.Restaurant"), []int64{}).
		Return(stored, true, nil).Once()

	// Second resolve finds the materialized row and skips the catalog.
	restaurantRepo.EXPECT().
		FindRestaurantByExternalID(ctx, "ext-once").
		Return(stored, nil).Once()

	first, err := svc.Resolve(ctx, "ext-once")
	require.NoError(t, err)
	second, err := svc.Resolve(ctx, "ext-once")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRestaurantService_Resolve_ExternalID_LostRace(t *testing.T) {
	restaurantRepo, _, catalog, svc := newRestaurantServiceForTest(t)

	ctx := context.Background()
	winner := &entity.Restaurant{ID: uuid.New(), ExternalID: "ext-race"}

	restaurantRepo.EXPECT().
		FindRestaurantByExternalID(ctx, "ext-race").
		Return(nil, repository.ErrRestaurantNotFound)

	catalog.EXPECT().
		FetchPlace(ctx, "ext-race").
		Return(&service.PlaceDetails{ExternalID: "ext-race", Name: "Race"}, nil)

	// The upsert reports "already existed": the concurrent winner's row comes back.
	restaurantRepo.EXPECT().
		UpsertRestaurantByExternalID(ctx, mock.AnythingOfType("*entity.Restaurant"), []int64{}).
		Return(winner, false, nil)

	resolved, err := svc.Resolve(ctx, "ext-race")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, resolved)
}

func TestRestaurantService_Resolve_UpstreamError(t *testing.T) {
	restaurantRepo, _, catalog, svc := newRestaurantServiceForTest(t)

	ctx := context.Background()

	restaurantRepo.EXPECT().
		FindRestaurantByExternalID(ctx, "ext-down").
		Return(nil, repository.ErrRestaurantNotFound)

	catalog.EXPECT().
		FetchPlace(ctx, "ext-down").
		Return(nil, errors.New("connection refused"))

	_, err := svc.Resolve(ctx, "ext-down")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UPSTREAM_ERROR", appErr.ErrorCode())
}

func TestRestaurantService_UpdateRestaurant_NoFields(t *testing.T) {
	_, _, _, svc := newRestaurantServiceForTest(t)

	_, err := svc.UpdateRestaurant(context.Background(), uuid.New(), entity.RestaurantUpdate{})
	assert.ErrorIs(t, err, domainerrors.ErrNoFieldsToUpdate)
}

func TestRestaurantService_UpdateRestaurant_Success(t *testing.T) {
	restaurantRepo, _, _, svc := newRestaurantServiceForTest(t)

	ctx := context.Background()
	id := uuid.New()
	name := "Renamed"
	update := entity.RestaurantUpdate{Name: &name}

	restaurantRepo.EXPECT().UpdateRestaurant(ctx, id, update).Return(nil)
	restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, id).
		Return(&entity.Restaurant{ID: id, Name: "Renamed", IsActive: true}, nil)

	restaurant, err := svc.UpdateRestaurant(ctx, id, update)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", restaurant.Name)
}

func TestRestaurantService_GetRestaurant(t *testing.T) {
	restaurantRepo, _, _, svc := newRestaurantServiceForTest(t)

	ctx := context.Background()
	id := uuid.New()

	restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, id).
		Return(&entity.Restaurant{ID: id, IsActive: true}, nil).Twice()
	restaurantRepo.EXPECT().
		FindFoodTypesByRestaurant(ctx, id).
		Return([]*entity.FoodType{{ID: taxonomy.FoodTypePizza, Name: "Pizza", IsActive: true}}, nil)

	restaurant, foodTypes, err := svc.GetRestaurant(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, id, restaurant.ID)
	require.Len(t, foodTypes, 1)
	assert.Equal(t, "Pizza", foodTypes[0].Name)
}

func TestRestaurantService_CreateFoodType_Duplicate(t *testing.T) {
	_, foodTypeRepo, _, svc := newRestaurantServiceForTest(t)

	ctx := context.Background()

	foodTypeRepo.EXPECT().
		CreateFoodType(ctx, mock.AnythingOfType("*entity.FoodType")).
		Return(repository.ErrDuplicateFoodType)

	_, err := svc.CreateFoodType(ctx, "Fusion")
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateFoodType)
}

func TestRestaurantService_CreateFoodType_EmptyName(t *testing.T) {
	_, _, _, svc := newRestaurantServiceForTest(t)

	_, err := svc.CreateFoodType(context.Background(), "  ")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
