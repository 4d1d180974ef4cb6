package model

import (
	"time"

	"github.com/google/uuid"

	"newgate_backend/internals/helpers/dbtime"
)

// SermonModel represents sermon recordings, organized by speaker and series.
type SermonModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string          `gorm:"size:200;not null;index" json:"title"`
	Date        dbtime.DateOnly `gorm:"type:date;not null;index:idx_sermons_date_speaker,priority:1" json:"date"`
	Speaker     string          `gorm:"size:100;not null;index:idx_sermons_date_speaker,priority:2" json:"speaker"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Series      *string         `gorm:"size:200;index:idx_sermons_series_date,priority:1" json:"series"`
	Category    string          `gorm:"size:100;not null;index" json:"category"`
	VideoURL    *string         `gorm:"type:text" json:"video_url"`
	Image       *string         `gorm:"type:text" json:"image"` // relative media path
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SermonModel) TableName() string {
	return "sermons"
}
