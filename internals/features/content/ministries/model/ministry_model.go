package model

import (
	"time"

	"github.com/google/uuid"
)

// MinistryModel represents church ministries and departments, displayed with
// icon and color theming. Inactive rows stay hidden from the public listing.
type MinistryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null;index" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Color       string    `gorm:"size:50;not null" json:"color"`
	IconName    string    `gorm:"size:100;not null" json:"icon_name"` // FontAwesome name, e.g. FaUserTie
	Image       *string   `gorm:"type:text" json:"image"`             // relative media path
	Order       int       `gorm:"column:ord;default:0;index" json:"order"`
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MinistryModel) TableName() string {
	return "ministries"
}
