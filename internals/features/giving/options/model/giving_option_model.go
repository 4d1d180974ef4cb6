package model

import (
	"time"

	"github.com/google/uuid"
)

// GivingOptionModel is one way to give (bank transfer, mobile money, in
// person). Account details are optional because not every method has them.
type GivingOptionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title         string    `gorm:"size:200;not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	Color         string    `gorm:"size:50;not null;default:'#3b82f6'" json:"color"`
	IconName      string    `gorm:"size:100" json:"icon_name"`
	AccountName   *string   `gorm:"size:200" json:"account_name"`
	AccountNumber *string   `gorm:"size:200" json:"account_number"`
	BankName      *string   `gorm:"size:200" json:"bank_name"`
	MobileNumber  *string   `gorm:"size:50" json:"mobile_number"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	Order         int       `gorm:"column:ord;default:0" json:"order"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (GivingOptionModel) TableName() string {
	return "giving_options"
}
