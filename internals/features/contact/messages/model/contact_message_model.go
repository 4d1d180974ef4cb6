package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessageModel stores contact form submissions. CreatedAt is
// server-assigned and never client-writable.
type ContactMessageModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string     `gorm:"size:200;not null;index" json:"name"`
	Email     string     `gorm:"size:254;not null;index:idx_contact_email_created,priority:1" json:"email"`
	Subject   string     `gorm:"size:200;not null" json:"subject"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	IsRead    bool       `gorm:"not null;default:false;index:idx_contact_created_read,priority:2" json:"is_read"`
	ReplyText *string    `gorm:"type:text" json:"reply_text"`
	RepliedAt *time.Time `json:"replied_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index:idx_contact_created_read,priority:1,sort:desc;index:idx_contact_email_created,priority:2,sort:desc" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ContactMessageModel) TableName() string {
	return "contact_messages"
}
