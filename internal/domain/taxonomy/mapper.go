package taxonomy

import (
	"slices"
	"strings"

	"bokitas/internal/domain/service"
)

// categoryCodes maps known catalog category codes directly onto food types.
var categoryCodes = map[int]int64{
	13003: FoodTypeBar,
	13006: FoodTypeBakery,
	13026: FoodTypeBarbecue,
	13031: FoodTypeBurgers,
	13032: FoodTypeCafe,
	13035: FoodTypeCafe,
	13046: FoodTypeDessert,
	13064: FoodTypePizza,
	13072: FoodTypeVegetarian,
	13145: FoodTypeFastFood,
	13148: FoodTypeItalian,
	13198: FoodTypeIndian,
	13263: FoodTypeJapanese,
	13272: FoodTypeRamen,
	13276: FoodTypeSushi,
	13289: FoodTypeKorean,
	13297: FoodTypeChinese,
	13303: FoodTypeMexican,
	13338: FoodTypeSeafood,
	13352: FoodTypeSteakhouse,
	13365: FoodTypeThai,
}

// keywordRule matches a lowercase substring of the category name.
type keywordRule struct {
	keyword    string
	foodTypeID int64
}

// keywordRules is ordered: the first matching rule wins. More specific
// keywords must come before broader ones ("bbq" before "korean", so a
// "Korean BBQ House" lands on Barbecue).
var keywordRules = []keywordRule{
	{"bbq", FoodTypeBarbecue},
	{"barbecue", FoodTypeBarbecue},
	{"burger", FoodTypeBurgers},
	{"pizza", FoodTypePizza},
	{"sushi", FoodTypeSushi},
	{"ramen", FoodTypeRamen},
	{"steak", FoodTypeSteakhouse},
	{"seafood", FoodTypeSeafood},
	{"fish", FoodTypeSeafood},
	{"taco", FoodTypeMexican},
	{"mexican", FoodTypeMexican},
	{"italian", FoodTypeItalian},
	{"pasta", FoodTypeItalian},
	{"chinese", FoodTypeChinese},
	{"japanese", FoodTypeJapanese},
	{"korean", FoodTypeKorean},
	{"thai", FoodTypeThai},
	{"indian", FoodTypeIndian},
	{"curry", FoodTypeIndian},
	{"vegetarian", FoodTypeVegetarian},
	{"vegan", FoodTypeVegetarian},
	{"dessert", FoodTypeDessert},
	{"ice cream", FoodTypeDessert},
	{"bakery", FoodTypeBakery},
	{"coffee", FoodTypeCafe},
	{"cafe", FoodTypeCafe},
	{"café", FoodTypeCafe},
	{"fast food", FoodTypeFastFood},
	{"bar", FoodTypeBar},
	{"pub", FoodTypeBar},
}

// MapCategories maps external catalog categories onto local food type ids.
// Each category is tried against the code table first, then against the
// ordered keyword rules on its lowercased name; categories matching neither
// are dropped. The result is de-duplicated and sorted, so the same input
// multiset always yields the same output regardless of order.
func MapCategories(categories []service.PlaceCategory) []int64 {
	seen := make(map[int64]struct{}, len(categories))
	for _, category := range categories {
		id, ok := mapCategory(category)
		if !ok {
			continue
		}
		seen[id] = struct{}{}
	}

	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

func mapCategory(category service.PlaceCategory) (int64, bool) {
	if id, ok := categoryCodes[category.Code]; ok {
		return id, true
	}

	name := strings.ToLower(category.Name)
	for _, rule := range keywordRules {
		if strings.Contains(name, rule.keyword) {
			return rule.foodTypeID, true
		}
	}

	return 0, false
}
