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
)

// eatlistRepository implements the repository.EatlistRepository interface.
type eatlistRepository struct {
	db *gorm.DB
}

// NewEatlistRepository is the constructor for eatlistRepository.
func NewEatlistRepository(db *gorm.DB) repository.EatlistRepository {
	return &eatlistRepository{
		db: db,
	}
}

// CreateEntry persists a new active eatlist entry. The partial unique index
// ux_eatlist_active_pair rejects a second active row for the same pair.
func (repo *eatlistRepository) CreateEntry(ctx context.Context, entry *entity.EatlistEntry) error {
	entryM := fromEatlistDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEatlistEntry
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create eatlist entry")
	}

	// Update the entity with generated values
	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// FindEntryByUserAndRestaurant retrieves the entry for a (user, restaurant)
// pair regardless of lifecycle state, preferring the active one.
func (repo *eatlistRepository) FindEntryByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.EatlistEntry, error) {
	var entryM model.EatlistEntryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Order("is_active DESC, updated_at DESC").
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEatlistEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find eatlist entry")
	}

	return toEatlistDomain(&entryM), nil
}

// ReactivateEntry flips a soft-deleted entry back to active with the given
// visited flag.
func (repo *eatlistRepository) ReactivateEntry(ctx context.Context, id uuid.UUID, visited bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EatlistEntryModel{}).
		Where("id = ? AND is_active = ?", id, false).
		Updates(map[string]interface{}{
			"is_active": true,
			"visited":   visited,
		})

	if result.Error != nil {
		// A concurrent add may have recreated the active pair first.
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateEatlistEntry
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to reactivate eatlist entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEatlistEntryNotFound
	}

	return nil
}

// UpdateVisited updates the visited flag of the active entry for the pair.
func (repo *eatlistRepository) UpdateVisited(ctx context.Context, userID, restaurantID uuid.UUID, visited bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EatlistEntryModel{}).
		Where("user_id = ? AND restaurant_id = ? AND is_active = ?", userID, restaurantID, true).
		Update("visited", visited)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update visited flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEatlistEntryNotFound
	}

	return nil
}

// DeactivateEntry soft-deletes the active entry for the pair.
func (repo *eatlistRepository) DeactivateEntry(ctx context.Context, userID, restaurantID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EatlistEntryModel{}).
		Where("user_id = ? AND restaurant_id = ? AND is_active = ?", userID, restaurantID, true).
		Update("is_active", false)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate eatlist entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEatlistEntryNotFound
	}

	return nil
}

// eatlistItemRow is the scan target for the eatlist listing join.
type eatlistItemRow struct {
	model.EatlistEntryModel
	RestaurantName     string
	RestaurantPhotoURL string
	RestaurantRating   float64
}

// FindActiveItemsByUser retrieves the user's active entries joined with their
// restaurant summaries, newest first.
func (repo *eatlistRepository) FindActiveItemsByUser(ctx context.Context, userID uuid.UUID, visited *bool) ([]*entity.EatlistItem, error) {
	var rows []*eatlistItemRow

	query := repo.db.WithContext(ctx).
		Model(&model.EatlistEntryModel{}).
		Select("eatlist_entries.*, r.name AS restaurant_name, r.cover_photo_url AS restaurant_photo_url, r.rating AS restaurant_rating").
		Joins("JOIN restaurants r ON r.id = eatlist_entries.restaurant_id").
		Where("eatlist_entries.user_id = ? AND eatlist_entries.is_active = ?", userID, true).
		Order("eatlist_entries.created_at DESC")

	if visited != nil {
		query = query.Where("eatlist_entries.visited = ?", *visited)
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find eatlist items")
	}

	items := make([]*entity.EatlistItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &entity.EatlistItem{
			EatlistEntry:       *toEatlistDomain(&row.EatlistEntryModel),
			RestaurantName:     row.RestaurantName,
			RestaurantPhotoURL: row.RestaurantPhotoURL,
			RestaurantRating:   row.RestaurantRating,
		})
	}

	return items, nil
}

// --- Mapper Functions ---

// toEatlistDomain converts a GORM EatlistEntryModel to a domain EatlistEntry entity.
func toEatlistDomain(data *model.EatlistEntryModel) *entity.EatlistEntry {
	if data == nil {
		return nil
	}

	return &entity.EatlistEntry{
		ID:           data.ID,
		UserID:       data.UserID,
		RestaurantID: data.RestaurantID,
		Visited:      data.Visited,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromEatlistDomain converts a domain EatlistEntry entity to a GORM EatlistEntryModel.
func fromEatlistDomain(data *entity.EatlistEntry) *model.EatlistEntryModel {
	if data == nil {
		return nil
	}

	return &model.EatlistEntryModel{
		ID:           data.ID,
		UserID:       data.UserID,
		RestaurantID: data.RestaurantID,
		Visited:      data.Visited,
		IsActive:     data.IsActive,
	}
}
