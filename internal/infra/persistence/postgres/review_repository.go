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

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// CreateReview persists a new review.
func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrRatingOutOfRange
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	// Update the entity with generated values
	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindReviewByID retrieves a review by its unique ID, regardless of
// lifecycle state.
func (repo *reviewRepository) FindReviewByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// UpdateReview applies a partial update to rating and/or comment.
func (repo *reviewRepository) UpdateReview(ctx context.Context, id uuid.UUID, rating *int, comment *string) error {
	fields := map[string]interface{}{}
	if rating != nil {
		fields["rating"] = *rating
	}
	if comment != nil {
		fields["comment"] = *comment
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrRatingOutOfRange
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// SetReviewPhoto sets the review's photo URL.
func (repo *reviewRepository) SetReviewPhoto(ctx context.Context, id uuid.UUID, photoURL string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", id).
		Update("photo_url", photoURL)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set review photo")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// DeactivateReview soft-deletes a review.
func (repo *reviewRepository) DeactivateReview(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// ListActiveRatings returns the rating values of all currently active
// reviews for a restaurant.
func (repo *reviewRepository) ListActiveRatings(ctx context.Context, restaurantID uuid.UUID) ([]int, error) {
	var ratings []int

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active ratings")
	}

	return ratings, nil
}

// FindActiveReviewsByRestaurant retrieves active reviews for a restaurant,
// newest first.
func (repo *reviewRepository) FindActiveReviewsByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by restaurant")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// FindActiveReviewsByAuthor retrieves a user's active reviews, newest first.
func (repo *reviewRepository) FindActiveReviewsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("author_id = ? AND is_active = ?", authorID, true).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by author")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		AuthorID:     data.AuthorID,
		Rating:       data.Rating,
		Comment:      data.Comment,
		PhotoURL:     data.PhotoURL,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toReviewDomainSlice(data []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(data))
	for _, reviewM := range data {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		AuthorID:     data.AuthorID,
		Rating:       data.Rating,
		Comment:      data.Comment,
		PhotoURL:     data.PhotoURL,
		IsActive:     data.IsActive,
	}
}
