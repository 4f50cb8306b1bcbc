// Package taxonomy holds the fixed food-type taxonomy and the pure mapping
// from external catalog categories onto it.
package taxonomy

import "bokitas/internal/domain/entity"

// Fixed food-type identifiers. These match the seeded food_types rows; user
// created types are issued ids above UserFoodTypeIDStart.
const (
	FoodTypeBurgers int64 = iota + 1
	FoodTypePizza
	FoodTypeSushi
	FoodTypeBarbecue
	FoodTypeCafe
	FoodTypeBakery
	FoodTypeMexican
	FoodTypeItalian
	FoodTypeChinese
	FoodTypeJapanese
	FoodTypeKorean
	FoodTypeThai
	FoodTypeIndian
	FoodTypeSeafood
	FoodTypeSteakhouse
	FoodTypeVegetarian
	FoodTypeDessert
	FoodTypeFastFood
	FoodTypeRamen
	FoodTypeBar
)

// UserFoodTypeIDStart is the first id available for user-created food types.
const UserFoodTypeIDStart int64 = 1000

// BaseFoodTypes returns the seed rows of the fixed taxonomy.
func BaseFoodTypes() []*entity.FoodType {
	names := map[int64]string{
		FoodTypeBurgers:    "Burgers",
		FoodTypePizza:      "Pizza",
		FoodTypeSushi:      "Sushi",
		FoodTypeBarbecue:   "Barbecue",
		FoodTypeCafe:       "Cafe",
		FoodTypeBakery:     "Bakery",
		FoodTypeMexican:    "Mexican",
		FoodTypeItalian:    "Italian",
		FoodTypeChinese:    "Chinese",
		FoodTypeJapanese:   "Japanese",
		FoodTypeKorean:     "Korean",
		FoodTypeThai:       "Thai",
		FoodTypeIndian:     "Indian",
		FoodTypeSeafood:    "Seafood",
		FoodTypeSteakhouse: "Steakhouse",
		FoodTypeVegetarian: "Vegetarian",
		FoodTypeDessert:    "Dessert",
		FoodTypeFastFood:   "Fast Food",
		FoodTypeRamen:      "Ramen",
		FoodTypeBar:        "Bar",
	}

	foodTypes := make([]*entity.FoodType, 0, len(names))
	for id := FoodTypeBurgers; id <= FoodTypeBar; id++ {
		foodTypes = append(foodTypes, &entity.FoodType{ID: id, Name: names[id], IsActive: true})
	}

	return foodTypes
}
