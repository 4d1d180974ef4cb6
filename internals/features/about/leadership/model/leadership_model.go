package model

import (
	"time"

	"github.com/google/uuid"
)

type LeadershipModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Role        string    `gorm:"size:200;not null" json:"role"`
	Description string    `gorm:"type:text" json:"description"`
	Image       *string   `gorm:"size:500" json:"image"` // stored relative to the media root
	XURL        *string   `gorm:"size:500" json:"x_url"`
	Order       int       `gorm:"column:ord;default:0" json:"order"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LeadershipModel) TableName() string {
	return "leadership"
}
