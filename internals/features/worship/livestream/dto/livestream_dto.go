package dto

import (
	"time"

	"newgate_backend/internals/features/worship/livestream/model"
)

type LiveStreamDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EmbedURL    *string   `json:"embed_url"`
	IsLive      bool      `json:"is_live"`
	Status      string    `json:"status"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateLiveStreamRequest struct {
	Title       string  `json:"title" validate:"max=200"`
	Description string  `json:"description"`
	EmbedURL    *string `json:"embed_url" validate:"omitempty,max=1000"`
	IsLive      bool    `json:"is_live"`
	Status      string  `json:"status" validate:"omitempty,oneof=live offline error"`
	Date        string  `json:"date" validate:"max=100"`
}

type UpdateLiveStreamRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	EmbedURL    *string `json:"embed_url" validate:"omitempty,max=1000"`
	IsLive      *bool   `json:"is_live"`
	Status      *string `json:"status" validate:"omitempty,oneof=live offline error"`
	Date        *string `json:"date" validate:"omitempty,max=100"`
}

func ToLiveStreamDTO(m model.LiveStreamModel) LiveStreamDTO {
	return LiveStreamDTO{
		ID:          m.ID.String(),
		Title:       m.Title,
		Description: m.Description,
		EmbedURL:    m.EmbedURL,
		IsLive:      m.IsLive,
		Status:      m.Status,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToLiveStreamDTOs(ms []model.LiveStreamModel) []LiveStreamDTO {
	out := make([]LiveStreamDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToLiveStreamDTO(m))
	}
	return out
}

func (r CreateLiveStreamRequest) Apply(m *model.LiveStreamModel) {
	m.Title = r.Title
	m.Description = r.Description
	m.EmbedURL = r.EmbedURL
	m.IsLive = r.IsLive
	m.Status = r.Status
	if m.Status == "" {
		m.Status = model.StatusOffline
	}
	m.Date = r.Date
}

func (r UpdateLiveStreamRequest) Apply(m *model.LiveStreamModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.EmbedURL != nil {
		m.EmbedURL = r.EmbedURL
	}
	if r.IsLive != nil {
		m.IsLive = *r.IsLive
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.Date != nil {
		m.Date = *r.Date
	}
}
