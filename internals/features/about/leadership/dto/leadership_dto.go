package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"newgate_backend/internals/features/about/leadership/model"
	helper "newgate_backend/internals/helpers"
)

type LeadershipDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Description string    `json:"description"`
	Image       *string   `json:"image"` // absolute URL
	XURL        *string   `json:"x_url"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateLeadershipRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Role        string  `json:"role" validate:"required,max=200"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	XURL        *string `json:"x_url" validate:"omitempty,max=500"`
	Order       int     `json:"order"`
}

type UpdateLeadershipRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Role        *string `json:"role" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	XURL        *string `json:"x_url" validate:"omitempty,max=500"`
	Order       *int    `json:"order"`
}

func ToLeadershipDTO(c *fiber.Ctx, m model.LeadershipModel) LeadershipDTO {
	return LeadershipDTO{
		ID:          m.ID.String(),
		Name:        m.Name,
		Role:        m.Role,
		Description: m.Description,
		Image:       helper.MediaURL(c, strOrEmpty(m.Image)),
		XURL:        m.XURL,
		Order:       m.Order,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToLeadershipDTOs(c *fiber.Ctx, ms []model.LeadershipModel) []LeadershipDTO {
	out := make([]LeadershipDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToLeadershipDTO(c, m))
	}
	return out
}

func (r CreateLeadershipRequest) Apply(m *model.LeadershipModel) {
	m.Name = r.Name
	m.Role = r.Role
	m.Description = r.Description
	m.Image = r.Image
	m.XURL = r.XURL
	m.Order = r.Order
}

func (r UpdateLeadershipRequest) Apply(m *model.LeadershipModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.Image != nil {
		m.Image = r.Image
	}
	if r.XURL != nil {
		m.XURL = r.XURL
	}
	if r.Order != nil {
		m.Order = *r.Order
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
