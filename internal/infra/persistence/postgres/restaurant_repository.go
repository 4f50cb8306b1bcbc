// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bokitas/internal/domain/entity"
	domainerrors "bokitas/internal/domain/errors"
	"bokitas/internal/domain/repository"
	"bokitas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

// CreateRestaurant persists a new locally created restaurant.
func (repo *restaurantRepository) CreateRestaurant(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateExternalID
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required restaurant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	// Update the entity with generated values
	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// FindRestaurantByID retrieves a restaurant by its local identifier,
// regardless of lifecycle state.
func (repo *restaurantRepository) FindRestaurantByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// FindRestaurantByExternalID retrieves a restaurant by its external catalog
// identifier, regardless of lifecycle state.
func (repo *restaurantRepository) FindRestaurantByExternalID(ctx context.Context, externalID string) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by external ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// UpsertRestaurantByExternalID inserts the restaurant unless a row with the
// same external id already exists. The unique index on external_id decides
// races between concurrent first references: the loser's insert affects zero
// rows and the winner's row is read back instead.
func (repo *restaurantRepository) UpsertRestaurantByExternalID(ctx context.Context, restaurant *entity.Restaurant, foodTypeIDs []int64) (*entity.Restaurant, bool, error) {
	restaurantM := fromRestaurantDomain(restaurant)

	var created bool
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "external_id"}},
				DoNothing: true,
			}).
			Create(restaurantM)
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to upsert restaurant")
		}

		if result.RowsAffected == 0 {
			// Lost the race: fetch the winner's row.
			if err := tx.
				Where("external_id = ?", restaurant.ExternalID).
				First(restaurantM).Error; err != nil {
				return errors.Wrap(err, "failed to read existing restaurant after upsert conflict")
			}

			return nil
		}

		created = true

		// The food-type link set is written only for a fresh insert.
		if len(foodTypeIDs) == 0 {
			return nil
		}

		links := make([]model.RestaurantFoodTypeModel, 0, len(foodTypeIDs))
		for _, foodTypeID := range foodTypeIDs {
			links = append(links, model.RestaurantFoodTypeModel{
				RestaurantID: restaurantM.ID,
				FoodTypeID:   foodTypeID,
			})
		}

		if err := tx.Create(&links).Error; err != nil {
			return errors.Wrap(err, "failed to link food types")
		}

		return nil
	})
	if err != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(err, "failed to upsert restaurant by external id")
	}

	return toRestaurantDomain(restaurantM), created, nil
}

// UpdateRestaurant applies an explicit partial update.
func (repo *restaurantRepository) UpdateRestaurant(ctx context.Context, id uuid.UUID, update entity.RestaurantUpdate) error {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Address != nil {
		fields["address"] = *update.Address
	}
	if update.CoverPhotoURL != nil {
		fields["cover_photo_url"] = *update.CoverPhotoURL
	}
	if update.WebsiteURL != nil {
		fields["website_url"] = *update.WebsiteURL
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update restaurant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// UpdateRating writes a freshly recomputed aggregate rating.
func (repo *restaurantRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", id).
		Update("rating", rating)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update restaurant rating")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// SetCoverPhotoIfEmpty sets the cover photo only when none is set yet. The
// condition lives in the WHERE clause so concurrent attempts cannot both win.
func (repo *restaurantRepository) SetCoverPhotoIfEmpty(ctx context.Context, id uuid.UUID, photoURL string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ? AND (cover_photo_url IS NULL OR cover_photo_url = '')", id).
		Update("cover_photo_url", photoURL)

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to set restaurant cover photo")
	}

	return result.RowsAffected > 0, nil
}

// ReplaceFoodTypes replaces the restaurant's whole food-type link set
// within a single transaction.
func (repo *restaurantRepository) ReplaceFoodTypes(ctx context.Context, restaurantID uuid.UUID, foodTypeIDs []int64) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("restaurant_id = ?", restaurantID).
			Delete(&model.RestaurantFoodTypeModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear food type links")
		}

		if len(foodTypeIDs) == 0 {
			return nil
		}

		links := make([]model.RestaurantFoodTypeModel, 0, len(foodTypeIDs))
		for _, foodTypeID := range foodTypeIDs {
			links = append(links, model.RestaurantFoodTypeModel{
				RestaurantID: restaurantID,
				FoodTypeID:   foodTypeID,
			})
		}

		if err := tx.Create(&links).Error; err != nil {
			return errors.Wrap(err, "failed to link food types")
		}

		return nil
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace food types")
	}

	return nil
}

// FindFoodTypesByRestaurant retrieves the food types linked to a restaurant.
func (repo *restaurantRepository) FindFoodTypesByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.FoodType, error) {
	var foodTypeModels []*model.FoodTypeModel

	if err := repo.db.WithContext(ctx).
		Model(&model.FoodTypeModel{}).
		Joins("JOIN restaurant_food_types rft ON rft.food_type_id = food_types.id").
		Where("rft.restaurant_id = ?", restaurantID).
		Order("food_types.id ASC").
		Find(&foodTypeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find food types by restaurant")
	}

	foodTypes := make([]*entity.FoodType, 0, len(foodTypeModels))
	for _, foodTypeM := range foodTypeModels {
		foodTypes = append(foodTypes, toFoodTypeDomain(foodTypeM))
	}

	return foodTypes, nil
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	externalID := ""
	if data.ExternalID != nil {
		externalID = *data.ExternalID
	}

	return &entity.Restaurant{
		ID:            data.ID,
		Name:          data.Name,
		Address:       data.Address,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		CoverPhotoURL: data.CoverPhotoURL,
		WebsiteURL:    data.WebsiteURL,
		ExternalID:    externalID,
		Rating:        data.Rating,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromRestaurantDomain converts a domain Restaurant entity to a GORM RestaurantModel.
func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	// Local-only rows keep a NULL external id so they never collide on the
	// unique index.
	var externalID *string
	if data.ExternalID != "" {
		value := data.ExternalID
		externalID = &value
	}

	return &model.RestaurantModel{
		ID:            data.ID,
		Name:          data.Name,
		Address:       data.Address,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		CoverPhotoURL: data.CoverPhotoURL,
		WebsiteURL:    data.WebsiteURL,
		ExternalID:    externalID,
		Rating:        data.Rating,
		IsActive:      data.IsActive,
	}
}
