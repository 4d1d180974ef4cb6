package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"newgate_backend/internals/features/content/events/model"
	helper "newgate_backend/internals/helpers"
	"newgate_backend/internals/helpers/dbtime"
)

// ============================
// Response DTO
// ============================

type EventDTO struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Date        dbtime.DateOnly `json:"date"`
	Time        *string         `json:"time"`
	Location    string          `json:"location"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Image       *string         `json:"image"` // absolute URL
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateEventRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time        *string `json:"time" validate:"omitempty,max=100"`
	Location    string  `json:"location" validate:"required,max=200"`
	Category    string  `json:"category" validate:"required,max=100"`
	Description string  `json:"description" validate:"required"`
	Image       *string `json:"image"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time        *string `json:"time" validate:"omitempty,max=100"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// ============================
// Converter
// ============================

func ToEventDTO(c *fiber.Ctx, m model.EventModel) EventDTO {
	return EventDTO{
		ID:          m.ID.String(),
		Title:       m.Title,
		Date:        m.Date,
		Time:        m.Time,
		Location:    m.Location,
		Category:    m.Category,
		Description: m.Description,
		Image:       helper.MediaURL(c, strOrEmpty(m.Image)),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToEventDTOs(c *fiber.Ctx, ms []model.EventModel) []EventDTO {
	out := make([]EventDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToEventDTO(c, m))
	}
	return out
}

// Apply copies the create request onto a model; the date has already passed
// validation so the parse cannot fail here.
func (r CreateEventRequest) Apply(m *model.EventModel) {
	m.Title = r.Title
	m.Date, _ = dbtime.Parse(r.Date)
	m.Time = r.Time
	m.Location = r.Location
	m.Category = r.Category
	m.Description = r.Description
	m.Image = r.Image
}

// Apply overwrites only the fields present in a partial update.
func (r UpdateEventRequest) Apply(m *model.EventModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Date != nil {
		m.Date, _ = dbtime.Parse(*r.Date)
	}
	if r.Time != nil {
		m.Time = r.Time
	}
	if r.Location != nil {
		m.Location = *r.Location
	}
	if r.Category != nil {
		m.Category = *r.Category
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.Image != nil {
		m.Image = r.Image
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
