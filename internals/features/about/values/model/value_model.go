package model

import (
	"time"

	"github.com/google/uuid"
)

// ValueModel is one core value shown on the About page. IconName is a
// react-icons identifier consumed verbatim by the frontend.
type ValueModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	IconName    string    `gorm:"size:100;not null;default:'FaHeart'" json:"icon_name"`
	Order       int       `gorm:"column:ord;default:0" json:"order"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ValueModel) TableName() string {
	return "values"
}
