// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bokitas/internal/domain/entity"
	domainerrors "bokitas/internal/domain/errors"
	"bokitas/internal/domain/repository"
	"bokitas/internal/domain/service"
	"bokitas/internal/domain/taxonomy"
	"bokitas/internal/errors"
	"bokitas/internal/usecase"

	"github.com/google/uuid"
)

// photoResolution is the resolution token concatenated between a catalog
// photo's URL prefix and suffix.
const photoResolution = "original"

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	foodTypeRepo   repository.FoodTypeRepository
	catalog        service.PlaceCatalogClient
	logger         *slog.Logger
}

// NewRestaurantService creates the restaurant service, which owns identity
// resolution between local UUIDs and external catalog ids.
func NewRestaurantService(
	restaurantRepo repository.RestaurantRepository,
	foodTypeRepo repository.FoodTypeRepository,
	catalog service.PlaceCatalogClient,
	logger *slog.Logger,
) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		foodTypeRepo:   foodTypeRepo,
		catalog:        catalog,
		logger:         logger,
	}
}

// Resolve turns a place reference into the canonical local restaurant id.
// References in canonical UUID form must name an active local restaurant.
// Anything else is treated as an external catalog id: an already-known id
// returns the existing row (active or not, external ids are permanent), an
// unseen one is materialized from the catalog.
func (s *restaurantService) Resolve(ctx context.Context, ref string) (uuid.UUID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return uuid.Nil, domainerrors.ErrEmptyPlaceReference
	}

	if id, err := uuid.Parse(ref); err == nil {
		restaurant, err := s.restaurantRepo.FindRestaurantByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return uuid.Nil, domainerrors.ErrRestaurantNotFound
			}

			return uuid.Nil, errors.Wrap(err, "failed to find restaurant by id")
		}
		if !restaurant.IsActive {
			return uuid.Nil, domainerrors.ErrRestaurantNotFound
		}

		return restaurant.ID, nil
	}

	existing, err := s.restaurantRepo.FindRestaurantByExternalID(ctx, ref)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, repository.ErrRestaurantNotFound) {
		return uuid.Nil, errors.Wrap(err, "failed to find restaurant by external id")
	}

	return s.materializePlace(ctx, ref)
}

// materializePlace fetches place details from the catalog and inserts a local
// restaurant row for them. The insert is an upsert on the external id unique
// constraint, so a concurrent first reference yields the winner's row instead
// of a duplicate.
func (s *restaurantService) materializePlace(ctx context.Context, externalID string) (uuid.UUID, error) {
	place, err := s.catalog.FetchPlace(ctx, externalID)
	if err != nil {
		return uuid.Nil, domainerrors.ErrCatalogLookupFailed.WithDetails(err.Error())
	}

	restaurant := newRestaurantFromPlace(place)
	foodTypeIDs := taxonomy.MapCategories(place.Categories)

	stored, created, err := s.restaurantRepo.UpsertRestaurantByExternalID(ctx, restaurant, foodTypeIDs)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to upsert restaurant from catalog")
	}

	if created {
		s.logger.Info("materialized restaurant from catalog",
			slog.String("externalID", externalID),
			slog.String("restaurantID", stored.ID.String()),
			slog.Int("foodTypes", len(foodTypeIDs)))
	}

	return stored.ID, nil
}

// GetRestaurant resolves the reference and returns the restaurant with its
// linked food types.
func (s *restaurantService) GetRestaurant(ctx context.Context, ref string) (*entity.Restaurant, []*entity.FoodType, error) {
	id, err := s.Resolve(ctx, ref)
	if err != nil {
		return nil, nil, err
	}

	restaurant, err := s.restaurantRepo.FindRestaurantByID(ctx, id)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find restaurant by id")
	}

	foodTypes, err := s.restaurantRepo.FindFoodTypesByRestaurant(ctx, id)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find restaurant food types")
	}

	return restaurant, foodTypes, nil
}

// UpdateRestaurant applies an explicit partial update to the shared
// restaurant attributes.
func (s *restaurantService) UpdateRestaurant(ctx context.Context, id uuid.UUID, update entity.RestaurantUpdate) (*entity.Restaurant, error) {
	if update.IsEmpty() {
		return nil, domainerrors.ErrNoFieldsToUpdate
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}

	if err := s.restaurantRepo.UpdateRestaurant(ctx, id, update); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to update restaurant")
	}

	restaurant, err := s.restaurantRepo.FindRestaurantByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload restaurant")
	}

	return restaurant, nil
}

// ListFoodTypes returns all active food types.
func (s *restaurantService) ListFoodTypes(ctx context.Context) ([]*entity.FoodType, error) {
	foodTypes, err := s.foodTypeRepo.FindAllFoodTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list food types")
	}

	return foodTypes, nil
}

// CreateFoodType adds a user-created food type on top of the fixed taxonomy.
func (s *restaurantService) CreateFoodType(ctx context.Context, name string) (*entity.FoodType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("food type name must not be empty")
	}

	foodType := &entity.FoodType{Name: name, IsActive: true}
	if err := s.foodTypeRepo.CreateFoodType(ctx, foodType); err != nil {
		if errors.Is(err, repository.ErrDuplicateFoodType) {
			return nil, domainerrors.ErrDuplicateFoodType
		}

		return nil, errors.Wrap(err, "failed to create food type")
	}

	return foodType, nil
}

// newRestaurantFromPlace transforms catalog place details into a fresh
// restaurant row: initial rating 0, active, external id recorded.
func newRestaurantFromPlace(place *service.PlaceDetails) *entity.Restaurant {
	now := time.Now()
	restaurant := &entity.Restaurant{
		ID:         uuid.New(),
		Name:       place.Name,
		Address:    placeAddress(place),
		WebsiteURL: place.WebsiteURL,
		ExternalID: place.ExternalID,
		Rating:     0,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if point := placeCoordinates(place); point != nil {
		latitude, longitude := point.Latitude, point.Longitude
		restaurant.Latitude = &latitude
		restaurant.Longitude = &longitude
	}

	if len(place.Photos) > 0 {
		restaurant.CoverPhotoURL = placePhotoURL(place.Photos[0])
	}

	return restaurant
}

// placeAddress prefers the catalog's pre-formatted address and falls back to
// joining the individual parts.
func placeAddress(place *service.PlaceDetails) string {
	if place.FormattedAddress != "" {
		return place.FormattedAddress
	}

	parts := make([]string, 0, len(place.AddressParts))
	for _, part := range place.AddressParts {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}

// placeCoordinates prefers direct coordinates over the geocoder fallback.
func placeCoordinates(place *service.PlaceDetails) *service.GeoPoint {
	if place.Location != nil {
		return place.Location
	}

	return place.Geocode
}

func placePhotoURL(photo service.PlacePhoto) string {
	return photo.Prefix + photoResolution + photo.Suffix
}
