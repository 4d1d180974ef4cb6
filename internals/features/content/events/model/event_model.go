package model

import (
	"time"

	"github.com/google/uuid"

	"newgate_backend/internals/helpers/dbtime"
)

// EventModel represents church events (services, gatherings, activities).
// Date and category are indexed for the default sort and category filters.
type EventModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string          `gorm:"size:200;not null;index" json:"title"`
	Date        dbtime.DateOnly `gorm:"type:date;not null;index:idx_events_date_category,priority:1" json:"date"`
	Time        *string         `gorm:"size:100" json:"time"` // free text, e.g. "All Day"
	Location    string          `gorm:"size:200;not null" json:"location"`
	Category    string          `gorm:"size:100;not null;index:idx_events_date_category,priority:2" json:"category"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Image       *string         `gorm:"type:text" json:"image"` // relative media path
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}
