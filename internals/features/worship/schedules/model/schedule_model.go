package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceScheduleModel defines recurring service times shown on the site
// (e.g. "Sunday Morning Worship, 10:00 AM").
type ServiceScheduleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Day         string    `gorm:"size:50;not null;index:idx_schedules_day_time,priority:1" json:"day"`
	Time        string    `gorm:"size:100;not null;index:idx_schedules_day_time,priority:2" json:"time"` // free text, "10:00 AM"
	Timezone    string    `gorm:"size:50;not null;default:'America/New_York'" json:"timezone"`
	Type        string    `gorm:"size:200;not null;index" json:"type"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`
	Order       int       `gorm:"column:ord;default:0" json:"order"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ServiceScheduleModel) TableName() string {
	return "service_schedules"
}
