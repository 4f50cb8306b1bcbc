package postgres

import (
	"context"

	"bokitas/internal/domain/entity"
	domainerrors "bokitas/internal/domain/errors"
	"bokitas/internal/domain/repository"
	"bokitas/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// foodTypeRepository implements the repository.FoodTypeRepository interface.
type foodTypeRepository struct {
	db *gorm.DB
}

// NewFoodTypeRepository is the constructor for foodTypeRepository.
func NewFoodTypeRepository(db *gorm.DB) repository.FoodTypeRepository {
	return &foodTypeRepository{
		db: db,
	}
}

// CreateFoodType persists a user-created food type. The migration starts the
// food_types id sequence at the user range, above the seeded base taxonomy.
func (repo *foodTypeRepository) CreateFoodType(ctx context.Context, foodType *entity.FoodType) error {
	foodTypeM := &model.FoodTypeModel{
		Name:     foodType.Name,
		IsActive: foodType.IsActive,
	}

	if err := repo.db.WithContext(ctx).Create(foodTypeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFoodType
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food type")
	}

	foodType.ID = foodTypeM.ID

	return nil
}

// SeedFoodTypes inserts the base taxonomy rows with their fixed ids. Rows
// that already exist are left untouched, so the seed is safe to run on every
// startup.
func (repo *foodTypeRepository) SeedFoodTypes(ctx context.Context, foodTypes []*entity.FoodType) error {
	if len(foodTypes) == 0 {
		return nil
	}

	foodTypeModels := make([]*model.FoodTypeModel, 0, len(foodTypes))
	for _, foodType := range foodTypes {
		foodTypeModels = append(foodTypeModels, &model.FoodTypeModel{
			ID:       foodType.ID,
			Name:     foodType.Name,
			IsActive: foodType.IsActive,
		})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(foodTypeModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to seed food types")
	}

	return nil
}

// FindAllFoodTypes retrieves all active food types ordered by id, which keeps
// the base taxonomy ahead of user-created types.
func (repo *foodTypeRepository) FindAllFoodTypes(ctx context.Context) ([]*entity.FoodType, error) {
	var foodTypeModels []*model.FoodTypeModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&foodTypeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find food types")
	}

	foodTypes := make([]*entity.FoodType, 0, len(foodTypeModels))
	for _, foodTypeM := range foodTypeModels {
		foodTypes = append(foodTypes, toFoodTypeDomain(foodTypeM))
	}

	return foodTypes, nil
}

// toFoodTypeDomain converts a GORM FoodTypeModel to a domain FoodType entity.
func toFoodTypeDomain(data *model.FoodTypeModel) *entity.FoodType {
	if data == nil {
		return nil
	}

	return &entity.FoodType{
		ID:       data.ID,
		Name:     data.Name,
		IsActive: data.IsActive,
	}
}
