package repository

import (
	"context"

	"bokitas/internal/domain/entity"
	"bokitas/internal/errors"
)

// Domain-specific errors for food type persistence.
var (
	// ErrFoodTypeNotFound is returned when a food type is not found.
	ErrFoodTypeNotFound = errors.New("food type not found")
	// ErrDuplicateFoodType is returned when a food type with the same name already exists.
	ErrDuplicateFoodType = errors.New("food type already exists")
)

// FoodTypeRepository defines the interface for food type-related database operations.
type FoodTypeRepository interface {
	// CreateFoodType persists a user-created food type.
	CreateFoodType(ctx context.Context, foodType *entity.FoodType) error

	// SeedFoodTypes inserts the given food types with their fixed ids,
	// skipping rows that already exist.
	SeedFoodTypes(ctx context.Context, foodTypes []*entity.FoodType) error

	// FindAllFoodTypes retrieves all active food types.
	FindAllFoodTypes(ctx context.Context) ([]*entity.FoodType, error)
}
