// Package usecase defines the interfaces exposed by the application core to
// its callers (delivery adapters).
package usecase

import (
	"context"

	"bokitas/internal/domain/entity"

	"github.com/google/uuid"
)

// RestaurantResolver guarantees a canonical local restaurant id for a
// reference in either identity namespace. Callers acting on a
// restaurant-scoped resource resolve first.
type RestaurantResolver interface {
	// Resolve turns a place reference into the canonical local restaurant id.
	// A reference in canonical UUID form must name an active local
	// restaurant; anything else is treated as an external catalog id and is
	// materialized into a local row on first reference.
	Resolve(ctx context.Context, ref string) (uuid.UUID, error)
}

// RestaurantUsecase defines restaurant management use cases.
type RestaurantUsecase interface {
	RestaurantResolver

	// GetRestaurant resolves the reference and returns the restaurant with
	// its linked food types.
	GetRestaurant(ctx context.Context, ref string) (*entity.Restaurant, []*entity.FoodType, error)

	// UpdateRestaurant applies an explicit partial update to the shared
	// restaurant attributes.
	UpdateRestaurant(ctx context.Context, id uuid.UUID, update entity.RestaurantUpdate) (*entity.Restaurant, error)

	// ListFoodTypes returns all active food types.
	ListFoodTypes(ctx context.Context) ([]*entity.FoodType, error)

	// CreateFoodType adds a user-created food type on top of the fixed taxonomy.
	CreateFoodType(ctx context.Context, name string) (*entity.FoodType, error)
}
