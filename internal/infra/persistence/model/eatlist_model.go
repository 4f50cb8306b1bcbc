package model

import (
	"time"

	"github.com/google/uuid"
)

// EatlistEntryModel mirrors the 'eatlist_entries' table.
//
// At most one active row may exist per (user_id, restaurant_id) pair. GORM
// tags cannot express a partial unique index, so the migration creates it:
//
//	CREATE UNIQUE INDEX ux_eatlist_active_pair
//	    ON eatlist_entries (user_id, restaurant_id) WHERE is_active;
type EatlistEntryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_eatlist_on_user"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null"`
	Visited      bool      `gorm:"not null;default:false"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (EatlistEntryModel) TableName() string {
	return "eatlist_entries"
}
