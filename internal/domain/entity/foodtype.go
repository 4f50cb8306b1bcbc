package entity

// FoodType is a canonical cuisine/category. The base taxonomy is fixed and
// seeded; users may add their own types on top of it.
type FoodType struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}
