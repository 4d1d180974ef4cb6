package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"newgate_backend/internals/features/content/ministries/model"
	helper "newgate_backend/internals/helpers"
)

type MinistryDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	IconName    string    `json:"icon_name"`
	Image       *string   `json:"image"` // absolute URL
	Order       int       `json:"order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateMinistryRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	Color       string  `json:"color" validate:"required,max=50"`
	IconName    string  `json:"icon_name" validate:"required,max=100"`
	Image       *string `json:"image"`
	Order       int     `json:"order"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateMinistryRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	Color       *string `json:"color" validate:"omitempty,max=50"`
	IconName    *string `json:"icon_name" validate:"omitempty,max=100"`
	Image       *string `json:"image"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"is_active"`
}

func ToMinistryDTO(c *fiber.Ctx, m model.MinistryModel) MinistryDTO {
	image := ""
	if m.Image != nil {
		image = *m.Image
	}
	return MinistryDTO{
		ID:          m.ID.String(),
		Title:       m.Title,
		Description: m.Description,
		Color:       m.Color,
		IconName:    m.IconName,
		Image:       helper.MediaURL(c, image),
		Order:       m.Order,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToMinistryDTOs(c *fiber.Ctx, ms []model.MinistryModel) []MinistryDTO {
	out := make([]MinistryDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToMinistryDTO(c, m))
	}
	return out
}

func (r CreateMinistryRequest) Apply(m *model.MinistryModel) {
	m.Title = r.Title
	m.Description = r.Description
	m.Color = r.Color
	m.IconName = r.IconName
	m.Image = r.Image
	m.Order = r.Order
	m.IsActive = true
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

func (r UpdateMinistryRequest) Apply(m *model.MinistryModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.Color != nil {
		m.Color = *r.Color
	}
	if r.IconName != nil {
		m.IconName = *r.IconName
	}
	if r.Image != nil {
		m.Image = r.Image
	}
	if r.Order != nil {
		m.Order = *r.Order
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}
