package dto

import (
	"time"

	"newgate_backend/internals/features/about/values/model"
)

type ValueDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IconName    string    `json:"icon_name"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateValueRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	IconName    string `json:"icon_name" validate:"omitempty,max=100"`
	Order       int    `json:"order"`
}

type UpdateValueRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	IconName    *string `json:"icon_name" validate:"omitempty,max=100"`
	Order       *int    `json:"order"`
}

func ToValueDTO(m model.ValueModel) ValueDTO {
	return ValueDTO{
		ID:          m.ID.String(),
		Title:       m.Title,
		Description: m.Description,
		IconName:    m.IconName,
		Order:       m.Order,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToValueDTOs(ms []model.ValueModel) []ValueDTO {
	out := make([]ValueDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToValueDTO(m))
	}
	return out
}

func (r CreateValueRequest) Apply(m *model.ValueModel) {
	m.Title = r.Title
	m.Description = r.Description
	m.IconName = r.IconName
	if m.IconName == "" {
		m.IconName = "FaHeart"
	}
	m.Order = r.Order
}

func (r UpdateValueRequest) Apply(m *model.ValueModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.IconName != nil {
		m.IconName = *r.IconName
	}
	if r.Order != nil {
		m.Order = *r.Order
	}
}
