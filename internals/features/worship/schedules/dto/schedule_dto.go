package dto

import (
	"time"

	"newgate_backend/internals/features/worship/schedules/model"
)

type ServiceScheduleDTO struct {
	ID          string    `json:"id"`
	Day         string    `json:"day"`
	Time        string    `json:"time"`
	Timezone    string    `json:"timezone"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateServiceScheduleRequest struct {
	Day         string `json:"day" validate:"required,max=50"`
	Time        string `json:"time" validate:"required,max=100"`
	Timezone    string `json:"timezone" validate:"omitempty,max=50"`
	Type        string `json:"type" validate:"required,max=200"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
	Order       int    `json:"order"`
}

type UpdateServiceScheduleRequest struct {
	Day         *string `json:"day" validate:"omitempty,max=50"`
	Time        *string `json:"time" validate:"omitempty,max=100"`
	Timezone    *string `json:"timezone" validate:"omitempty,max=50"`
	Type        *string `json:"type" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
	Order       *int    `json:"order"`
}

func ToServiceScheduleDTO(m model.ServiceScheduleModel) ServiceScheduleDTO {
	return ServiceScheduleDTO{
		ID:          m.ID.String(),
		Day:         m.Day,
		Time:        m.Time,
		Timezone:    m.Timezone,
		Type:        m.Type,
		Description: m.Description,
		IsActive:    m.IsActive,
		Order:       m.Order,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToServiceScheduleDTOs(ms []model.ServiceScheduleModel) []ServiceScheduleDTO {
	out := make([]ServiceScheduleDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToServiceScheduleDTO(m))
	}
	return out
}

func (r CreateServiceScheduleRequest) Apply(m *model.ServiceScheduleModel) {
	m.Day = r.Day
	m.Time = r.Time
	m.Timezone = r.Timezone
	if m.Timezone == "" {
		m.Timezone = "America/New_York"
	}
	m.Type = r.Type
	m.Description = r.Description
	m.IsActive = true
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	m.Order = r.Order
}

func (r UpdateServiceScheduleRequest) Apply(m *model.ServiceScheduleModel) {
	if r.Day != nil {
		m.Day = *r.Day
	}
	if r.Time != nil {
		m.Time = *r.Time
	}
	if r.Timezone != nil {
		m.Timezone = *r.Timezone
	}
	if r.Type != nil {
		m.Type = *r.Type
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	if r.Order != nil {
		m.Order = *r.Order
	}
}
