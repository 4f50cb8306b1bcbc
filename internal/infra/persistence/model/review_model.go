package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. Rows are soft-deleted through
// IsActive; the rating aggregate only counts active rows.
type ReviewModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_on_restaurant"`
	AuthorID     uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_on_author"`
	Rating       int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment      string    `gorm:"type:varchar(1000)"`
	PhotoURL     string    `gorm:"type:text"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
