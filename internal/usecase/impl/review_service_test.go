package impl

import (
	"context"
	"strings"
	"testing"

	"bokitas/internal/domain/entity"
	domainerrors "bokitas/internal/domain/errors"
	"bokitas/internal/domain/repository"
	mockRepo "bokitas/internal/mocks/repository"
	mockUC "bokitas/internal/mocks/usecase"
	"bokitas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReviewServiceForTest(t *testing.T) (*mockRepo.MockReviewRepository, *mockRepo.MockRestaurantRepository, *mockUC.MockRestaurantResolver, *mockUC.MockRatingAggregator, usecase.ReviewUsecase) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	resolver := mockUC.NewMockRestaurantResolver(t)
	aggregator := mockUC.NewMockRatingAggregator(t)
	svc := NewReviewService(reviewRepo, restaurantRepo, resolver, aggregator, testLogger())

	return reviewRepo, restaurantRepo, resolver, aggregator, svc
}

func TestReviewService_CreateReview(t *testing.T) {
	reviewRepo, _, resolver, aggregator, svc := newReviewServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()
	restaurantID := uuid.New()

	resolver.EXPECT().Resolve(ctx, "ext-abc").Return(restaurantID, nil)
	reviewRepo.EXPECT().
		CreateReview(ctx, mock.MatchedBy(func(review *entity.Review) bool {
			return review.RestaurantID == restaurantID &&
				review.AuthorID == authorID &&
				review.Rating == 5 &&
				review.Comment == "great tacos" &&
				review.IsActive
		})).
		Return(nil)
	aggregator.EXPECT().Recompute(ctx, restaurantID).Return(nil)

	review, err := svc.CreateReview(ctx, authorID, usecase.CreateReviewInput{
		RestaurantRef: "ext-abc",
		Rating:        5,
		Comment:       "great tacos",
	})
	require.NoError(t, err)
	assert.Equal(t, restaurantID, review.RestaurantID)
}

func TestReviewService_CreateReview_RatingOutOfRange(t *testing.T) {
	_, _, _, _, svc := newReviewServiceForTest(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateReview(context.Background(), uuid.New(), usecase.CreateReviewInput{
			RestaurantRef: "ext-abc",
			Rating:        rating,
		})
		assert.ErrorIs(t, err, domainerrors.ErrRatingOutOfRange)
	}
}

func TestReviewService_CreateReview_CommentTooLong(t *testing.T) {
	_, _, _, _, svc := newReviewServiceForTest(t)

	_, err := svc.CreateReview(context.Background(), uuid.New(), usecase.CreateReviewInput{
		RestaurantRef: "ext-abc",
		Rating:        4,
		Comment:       strings.Repeat("x", entity.MaxReviewCommentLength+1),
	})
	assert.ErrorIs(t, err, domainerrors.ErrCommentTooLong)
}

func TestReviewService_CreateReview_RecomputeFailureIsSwallowed(t *testing.T) {
	reviewRepo, _, resolver, aggregator, svc := newReviewServiceForTest(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	resolver.EXPECT().Resolve(ctx, "ext-abc").Return(restaurantID, nil)
	reviewRepo.EXPECT().
		CreateReview(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)
	aggregator.EXPECT().Recompute(ctx, restaurantID).Return(errors.New("db down"))

	// The review mutation succeeds even when the recompute fails; the rating
	// stays stale until the next successful mutation.
	_, err := svc.CreateReview(ctx, uuid.New(), usecase.CreateReviewInput{
		RestaurantRef: "ext-abc",
		Rating:        3,
	})
	assert.NoError(t, err)
}

func TestReviewService_UpdateReview(t *testing.T) {
	reviewRepo, _, _, aggregator, svc := newReviewServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()
	restaurantID := uuid.New()
	reviewID := uuid.New()
	newRating := 2

	reviewRepo.EXPECT().
		FindReviewByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, RestaurantID: restaurantID, AuthorID: authorID, Rating: 4, IsActive: true}, nil)
	reviewRepo.EXPECT().
		UpdateReview(ctx, reviewID, &newRating, (*string)(nil)).
		Return(nil)
	aggregator.EXPECT().Recompute(ctx, restaurantID).Return(nil)

	review, err := svc.UpdateReview(ctx, reviewID, authorID, &newRating, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, review.Rating)
}

func TestReviewService_UpdateReview_Forbidden(t *testing.T) {
	reviewRepo, _, _, _, svc := newReviewServiceForTest(t)

	ctx := context.Background()
	reviewID := uuid.New()
	newRating := 2

	reviewRepo.EXPECT().
		FindReviewByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, AuthorID: uuid.New(), Rating: 4, IsActive: true}, nil)

	_, err := svc.UpdateReview(ctx, reviewID, uuid.New(), &newRating, nil)
	assert.ErrorIs(t, err, domainerrors.ErrReviewOwnershipViolation)
}

func TestReviewService_UpdateReview_SoftDeletedIsTerminal(t *testing.T) {
	reviewRepo, _, _, _, svc := newReviewServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()
	reviewID := uuid.New()
	newRating := 2

	reviewRepo.EXPECT().
		FindReviewByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, AuthorID: authorID, Rating: 4, IsActive: false}, nil)

	_, err := svc.UpdateReview(ctx, reviewID, authorID, &newRating, nil)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_UpdateReview_NoChange(t *testing.T) {
	reviewRepo, _, _, _, svc := newReviewServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()
	reviewID := uuid.New()
	sameRating := 4

	reviewRepo.EXPECT().
		FindReviewByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, AuthorID: authorID, Rating: 4, IsActive: true}, nil)

	_, err := svc.UpdateReview(ctx, reviewID, authorID, &sameRating, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNoFieldsToUpdate)
}

func TestReviewService_UpdateReview_NoFields(t *testing.T) {
	_, _, _, _, svc := newReviewServiceForTest(t)

	_, err := svc.UpdateReview(context.Background(), uuid.New(), uuid.New(), nil, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNoFieldsToUpdate)
}

func TestReviewService_DeleteReview(t *testing.T) {
	reviewRepo, _, _, aggregator, svc := newReviewServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()
	restaurantID := uuid.New()
	reviewID := uuid.New()

	reviewRepo.EXPECT().
		FindReviewByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, RestaurantID: restaurantID, AuthorID: authorID, Rating: 3, IsActive: true}, nil)
	reviewRepo.EXPECT().DeactivateReview(ctx, reviewID).Return(nil)
	aggregator.EXPECT().Recompute(ctx, restaurantID).Return(nil)

	require.NoError(t, svc.DeleteReview(ctx, reviewID, authorID))
}

func TestReviewService_DeleteReview_NotFound(t *testing.T) {
	reviewRepo, _, _, _, svc := newReviewServiceForTest(t)

	ctx := context.Background()
	reviewID := uuid.New()

	reviewRepo.EXPECT().
		FindReviewByID(ctx, reviewID).
		Return(nil, repository.ErrReviewNotFound)

	err := svc.DeleteReview(ctx, reviewID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_AttachReviewPhoto_SetsCoverOnce(t *testing.T) {
	reviewRepo, restaurantRepo, _, _, svc := newReviewServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()
	restaurantID := uuid.New()
	reviewID := uuid.New()

	reviewRepo.EXPECT().
		FindReviewByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, RestaurantID: restaurantID, AuthorID: authorID, IsActive: true}, nil)
	reviewRepo.EXPECT().
		SetReviewPhoto(ctx, reviewID, "https://cdn.example/r1.jpg").
		Return(nil)
	restaurantRepo.EXPECT().
		SetCoverPhotoIfEmpty(ctx, restaurantID, "https://cdn.example/r1.jpg").
		Return(true, nil)

	review, err := svc.AttachReviewPhoto(ctx, reviewID, authorID, "https://cdn.example/r1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/r1.jpg", review.PhotoURL)
}

func TestReviewService_AttachReviewPhoto_CoverAlreadySet(t *testing.T) {
	reviewRepo, restaurantRepo, _, _, svc := newReviewServiceForTest(t)

	ctx := context.Background()
	authorID := uuid.New()
	restaurantID := uuid.New()
	reviewID := uuid.New()

	reviewRepo.EXPECT().
		FindReviewByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, RestaurantID: restaurantID, AuthorID: authorID, IsActive: true}, nil)
	reviewRepo.EXPECT().
		SetReviewPhoto(ctx, reviewID, "https://cdn.example/r2.jpg").
		Return(nil)

	// The conditional write reports "not set": the existing cover stays.
	restaurantRepo.EXPECT().
		SetCoverPhotoIfEmpty(ctx, restaurantID, "https://cdn.example/r2.jpg").
		Return(false, nil)

	review, err := svc.AttachReviewPhoto(ctx, reviewID, authorID, "https://cdn.example/r2.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/r2.jpg", review.PhotoURL)
}

func TestReviewService_AttachReviewPhoto_EmptyURL(t *testing.T) {
	_, _, _, _, svc := newReviewServiceForTest(t)

	_, err := svc.AttachReviewPhoto(context.Background(), uuid.New(), uuid.New(), "  ")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestReviewService_ListRestaurantReviews(t *testing.T) {
	reviewRepo, _, resolver, _, svc := newReviewServiceForTest(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	resolver.EXPECT().Resolve(ctx, restaurantID.String()).Return(restaurantID, nil)
	reviewRepo.EXPECT().
		FindActiveReviewsByRestaurant(ctx, restaurantID).
		Return([]*entity.Review{{ID: uuid.New(), RestaurantID: restaurantID, Rating: 5, IsActive: true}}, nil)

	reviews, err := svc.ListRestaurantReviews(ctx, restaurantID.String())
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}
