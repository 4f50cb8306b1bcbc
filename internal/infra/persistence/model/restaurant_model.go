// Package model contains the GORM persistence structs mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantModel mirrors the 'restaurants' table. PostgreSQL generates UUIDs
// via uuid_generate_v7(). ExternalID is nullable so that local-only rows do
// not collide on the unique index.
type RestaurantModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Address       string    `gorm:"type:text"`
	Latitude      *float64  `gorm:"type:decimal(10,8)"`
	Longitude     *float64  `gorm:"type:decimal(11,8)"`
	CoverPhotoURL string    `gorm:"type:text"`
	WebsiteURL    string    `gorm:"type:text"`
	ExternalID    *string   `gorm:"type:varchar(255);uniqueIndex:ux_restaurants_external_id"`
	Rating        float64   `gorm:"type:decimal(2,1);not null;default:0"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	FoodTypes []*FoodTypeModel `gorm:"many2many:restaurant_food_types;joinForeignKey:RestaurantID;joinReferences:FoodTypeID"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// FoodTypeModel mirrors the 'food_types' table. The base taxonomy occupies
// the low id range; user-created types are assigned ids from a higher
// sequence so the two never collide.
type FoodTypeModel struct {
	ID        int64  `gorm:"primary_key"`
	Name      string `gorm:"type:varchar(100);not null;unique"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodTypeModel) TableName() string {
	return "food_types"
}

// RestaurantFoodTypeModel mirrors the 'restaurant_food_types' join table.
type RestaurantFoodTypeModel struct {
	RestaurantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	FoodTypeID   int64     `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantFoodTypeModel) TableName() string {
	return "restaurant_food_types"
}
