package dto

import (
	"time"

	"newgate_backend/internals/features/site/homefeatures/model"
)

type HomeFeatureDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IconName    string    `json:"icon_name"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateHomeFeatureRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	IconName    string `json:"icon_name" validate:"omitempty,max=100"`
	Order       int    `json:"order"`
}

type UpdateHomeFeatureRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	IconName    *string `json:"icon_name" validate:"omitempty,max=100"`
	Order       *int    `json:"order"`
}

func ToHomeFeatureDTO(m model.HomeFeatureModel) HomeFeatureDTO {
	return HomeFeatureDTO{
		ID:          m.ID.String(),
		Title:       m.Title,
		Description: m.Description,
		IconName:    m.IconName,
		Order:       m.Order,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToHomeFeatureDTOs(ms []model.HomeFeatureModel) []HomeFeatureDTO {
	out := make([]HomeFeatureDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToHomeFeatureDTO(m))
	}
	return out
}

func (r CreateHomeFeatureRequest) Apply(m *model.HomeFeatureModel) {
	m.Title = r.Title
	m.Description = r.Description
	m.IconName = r.IconName
	if m.IconName == "" {
		m.IconName = "FaHeart"
	}
	m.Order = r.Order
}

func (r UpdateHomeFeatureRequest) Apply(m *model.HomeFeatureModel) {
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
