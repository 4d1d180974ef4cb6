package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel stores the SHA-256 hash of each issued refresh token.
// Rows are deleted on rotation and logout.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"size:128;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	UserAgent *string   `gorm:"size:512" json:"user_agent,omitempty"`
	IP        *string   `gorm:"size:64" json:"ip,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
