package model

import (
	"time"

	"github.com/google/uuid"
)

// Stream status values surfaced to the Live page.
const (
	StatusLive    = "live"
	StatusOffline = "offline"
	StatusError   = "error"
)

// LiveStreamModel holds the live stream configuration. Conventionally a
// single row exists; the list handler provisions a default one on first read.
type LiveStreamModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"size:200" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	EmbedURL    *string   `gorm:"size:1000" json:"embed_url"`
	IsLive      bool      `gorm:"not null;default:false" json:"is_live"`
	Status      string    `gorm:"size:50;not null;default:'offline'" json:"status"`
	Date        string    `gorm:"size:100" json:"date"` // display text, e.g. "Sunday 9 AM"
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LiveStreamModel) TableName() string {
	return "live_streams"
}
