package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklistModel holds access tokens revoked by logout until they would
// have expired anyway; the cleanup scheduler purges stale rows.
type TokenBlacklistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Token     string    `gorm:"type:text;not null;index" json:"token"`
	ExpiredAt time.Time `gorm:"not null;index" json:"expired_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
