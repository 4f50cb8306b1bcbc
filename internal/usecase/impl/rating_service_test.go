package impl

import (
	"context"
	"testing"

	mockRepo "bokitas/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingAggregator_Recompute(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{name: "no active reviews resets to zero", ratings: nil, want: 0},
		{name: "single review", ratings: []int{4}, want: 4.0},
		{name: "exact mean", ratings: []int{5, 4, 3}, want: 4.0},
		{name: "half rounds up", ratings: []int{5, 4}, want: 4.5},
		{name: "repeating third rounds", ratings: []int{2, 3, 3}, want: 2.7},
		{name: "all fives", ratings: []int{5, 5, 5, 5}, want: 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
			reviewRepo := mockRepo.NewMockReviewRepository(t)
			aggregator := NewRatingAggregator(restaurantRepo, reviewRepo, testLogger())

			ctx := context.Background()
			restaurantID := uuid.New()

			reviewRepo.EXPECT().
				ListActiveRatings(ctx, restaurantID).
				Return(tt.ratings, nil)
			restaurantRepo.EXPECT().
				UpdateRating(ctx, restaurantID, tt.want).
				Return(nil)

			require.NoError(t, aggregator.Recompute(ctx, restaurantID))
		})
	}
}

func TestRatingAggregator_Recompute_SoftDeleteShiftsMean(t *testing.T) {
	// Reviews 5, 4, 3 average to 4.0; soft-deleting the 3 moves it to 4.5.
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	aggregator := NewRatingAggregator(restaurantRepo, reviewRepo, testLogger())

	ctx := context.Background()
	restaurantID := uuid.New()

	reviewRepo.EXPECT().
		ListActiveRatings(ctx, restaurantID).
		Return([]int{5, 4, 3}, nil).Once()
	restaurantRepo.EXPECT().
		UpdateRating(ctx, restaurantID, 4.0).
		Return(nil).Once()

	require.NoError(t, aggregator.Recompute(ctx, restaurantID))

	reviewRepo.EXPECT().
		ListActiveRatings(ctx, restaurantID).
		Return([]int{5, 4}, nil).Once()
	restaurantRepo.EXPECT().
		UpdateRating(ctx, restaurantID, 4.5).
		Return(nil).Once()

	require.NoError(t, aggregator.Recompute(ctx, restaurantID))
}

func TestRatingAggregator_Recompute_ReadError(t *testing.T) {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	aggregator := NewRatingAggregator(restaurantRepo, reviewRepo, testLogger())

	ctx := context.Background()
	restaurantID := uuid.New()

	reviewRepo.EXPECT().
		ListActiveRatings(ctx, restaurantID).
		Return(nil, errors.New("db error"))

	assert.Error(t, aggregator.Recompute(ctx, restaurantID))
}

func TestRoundToOneDecimal(t *testing.T) {
	assert.Equal(t, 4.5, roundToOneDecimal(4.5))
	assert.Equal(t, 2.7, roundToOneDecimal(8.0/3.0))
	assert.Equal(t, 3.3, roundToOneDecimal(10.0/3.0))
	assert.Equal(t, 4.3, roundToOneDecimal(4.25))
	assert.Equal(t, 0.0, roundToOneDecimal(0))
}
