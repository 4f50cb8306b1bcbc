package taxonomy

import (
	"testing"

	"bokitas/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestMapCategories_DirectCodeLookup(t *testing.T) {
	ids := MapCategories([]service.PlaceCategory{
		{Code: 13031, Name: "Burger Joint"},
	})

	assert.Equal(t, []int64{FoodTypeBurgers}, ids)
}

func TestMapCategories_KeywordFallback(t *testing.T) {
	// Unknown code, name matches the "bbq" keyword before "korean".
	ids := MapCategories([]service.PlaceCategory{
		{Code: 99999, Name: "Korean BBQ House"},
	})

	assert.Equal(t, []int64{FoodTypeBarbecue}, ids)
}

func TestMapCategories_UnmappedDropped(t *testing.T) {
	ids := MapCategories([]service.PlaceCategory{
		{Code: 99999, Name: "Quantum Gastronomy Lab"},
	})

	assert.Empty(t, ids)
}

func TestMapCategories_Deduplicates(t *testing.T) {
	ids := MapCategories([]service.PlaceCategory{
		{Code: 13031, Name: "Burger Joint"},
		{Code: 99999, Name: "Smash Burger Spot"},
		{Code: 13064, Name: "Pizzeria"},
	})

	assert.Equal(t, []int64{FoodTypeBurgers, FoodTypePizza}, ids)
}

func TestMapCategories_OrderIndependent(t *testing.T) {
	forward := []service.PlaceCategory{
		{Code: 13276, Name: "Sushi Restaurant"},
		{Code: 13272, Name: "Ramen Restaurant"},
		{Code: 99999, Name: "Izakaya Japanese Dining"},
	}
	reversed := []service.PlaceCategory{forward[2], forward[1], forward[0]}

	assert.Equal(t, MapCategories(forward), MapCategories(reversed))
}

func TestMapCategories_EmptyInput(t *testing.T) {
	assert.Empty(t, MapCategories(nil))
}

func TestBaseFoodTypes_CoversAllIDs(t *testing.T) {
	foodTypes := BaseFoodTypes()

	assert.Len(t, foodTypes, int(FoodTypeBar))
	for _, foodType := range foodTypes {
		assert.NotEmpty(t, foodType.Name)
		assert.True(t, foodType.IsActive)
	}
}
