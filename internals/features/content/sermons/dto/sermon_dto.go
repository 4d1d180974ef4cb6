package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"newgate_backend/internals/features/content/sermons/model"
	helper "newgate_backend/internals/helpers"
	"newgate_backend/internals/helpers/dbtime"
)

type SermonDTO struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Date        dbtime.DateOnly `json:"date"`
	Speaker     string          `json:"speaker"`
	Description string          `json:"description"`
	Series      *string         `json:"series"`
	Category    string          `json:"category"`
	VideoURL    *string         `json:"video_url"`
	Image       *string         `json:"image"` // absolute URL
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateSermonRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Speaker     string  `json:"speaker" validate:"required,max=100"`
	Description string  `json:"description" validate:"required"`
	Series      *string `json:"series" validate:"omitempty,max=200"`
	Category    string  `json:"category" validate:"required,max=100"`
	VideoURL    *string `json:"video_url" validate:"omitempty,url"`
	Image       *string `json:"image"`
}

type UpdateSermonRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Speaker     *string `json:"speaker" validate:"omitempty,max=100"`
	Description *string `json:"description"`
	Series      *string `json:"series" validate:"omitempty,max=200"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	VideoURL    *string `json:"video_url" validate:"omitempty,url"`
	Image       *string `json:"image"`
}

func ToSermonDTO(c *fiber.Ctx, m model.SermonModel) SermonDTO {
	image := ""
	if m.Image != nil {
		image = *m.Image
	}
	return SermonDTO{
		ID:          m.ID.String(),
		Title:       m.Title,
		Date:        m.Date,
		Speaker:     m.Speaker,
		Description: m.Description,
		Series:      m.Series,
		Category:    m.Category,
		VideoURL:    m.VideoURL,
		Image:       helper.MediaURL(c, image),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToSermonDTOs(c *fiber.Ctx, ms []model.SermonModel) []SermonDTO {
	out := make([]SermonDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToSermonDTO(c, m))
	}
	return out
}

func (r CreateSermonRequest) Apply(m *model.SermonModel) {
	m.Title = r.Title
	m.Date, _ = dbtime.Parse(r.Date)
	m.Speaker = r.Speaker
	m.Description = r.Description
	m.Series = r.Series
	m.Category = r.Category
	m.VideoURL = r.VideoURL
	m.Image = r.Image
}

func (r UpdateSermonRequest) Apply(m *model.SermonModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Date != nil {
		m.Date, _ = dbtime.Parse(*r.Date)
	}
	if r.Speaker != nil {
		m.Speaker = *r.Speaker
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.Series != nil {
		m.Series = r.Series
	}
	if r.Category != nil {
		m.Category = *r.Category
	}
	if r.VideoURL != nil {
		m.VideoURL = r.VideoURL
	}
	if r.Image != nil {
		m.Image = r.Image
	}
}
