// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bokitas/internal/domain/entity"
	"bokitas/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for restaurant persistence.
var (
	// ErrRestaurantNotFound is returned when a restaurant is not found.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrDuplicateExternalID is returned when another restaurant already
	// holds the same external catalog identifier.
	ErrDuplicateExternalID = errors.New("restaurant with this external id already exists")
)

// RestaurantRepository defines the interface for restaurant-related database operations.
type RestaurantRepository interface {
	// CreateRestaurant persists a new locally created restaurant.
	CreateRestaurant(ctx context.Context, restaurant *entity.Restaurant) error

	// FindRestaurantByID retrieves a restaurant by its local identifier,
	// regardless of lifecycle state.
	FindRestaurantByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// FindRestaurantByExternalID retrieves a restaurant by its external
	// catalog identifier, regardless of lifecycle state (external ids are
	// permanent).
	FindRestaurantByExternalID(ctx context.Context, externalID string) (*entity.Restaurant, error)

	// UpsertRestaurantByExternalID inserts the restaurant unless a row with
	// the same external id already exists, in which case the existing row is
	// returned untouched. The food-type link set is written only for a fresh
	// insert. Reports whether a new row was created. The external id unique
	// constraint is the correctness backstop for concurrent first references.
	UpsertRestaurantByExternalID(ctx context.Context, restaurant *entity.Restaurant, foodTypeIDs []int64) (*entity.Restaurant, bool, error)

	// UpdateRestaurant applies an explicit partial update (name, address,
	// cover photo, website).
	UpdateRestaurant(ctx context.Context, id uuid.UUID, update entity.RestaurantUpdate) error

	// UpdateRating writes a freshly recomputed aggregate rating.
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error

	// SetCoverPhotoIfEmpty sets the cover photo only when none is set yet,
	// atomically. Reports whether the photo was written.
	SetCoverPhotoIfEmpty(ctx context.Context, id uuid.UUID, photoURL string) (bool, error)

	// ReplaceFoodTypes replaces the restaurant's whole food-type link set.
	ReplaceFoodTypes(ctx context.Context, restaurantID uuid.UUID, foodTypeIDs []int64) error

	// FindFoodTypesByRestaurant retrieves the food types linked to a restaurant.
	FindFoodTypesByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.FoodType, error)
}
