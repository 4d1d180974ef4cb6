package dto

import (
	"time"

	"newgate_backend/internals/features/contact/messages/model"
)

type ContactMessageDTO struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	IsRead    bool       `json:"is_read"`
	ReplyText *string    `json:"reply_text"`
	RepliedAt *time.Time `json:"replied_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateContactMessageRequest is the public contact form payload. Read state
// and reply fields are admin-only and deliberately absent here.
type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

type UpdateContactMessageRequest struct {
	IsRead    *bool   `json:"is_read"`
	ReplyText *string `json:"reply_text"`
}

func ToContactMessageDTO(m model.ContactMessageModel) ContactMessageDTO {
	return ContactMessageDTO{
		ID:        m.ID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		IsRead:    m.IsRead,
		ReplyText: m.ReplyText,
		RepliedAt: m.RepliedAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToContactMessageDTOs(ms []model.ContactMessageModel) []ContactMessageDTO {
	out := make([]ContactMessageDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToContactMessageDTO(m))
	}
	return out
}

func (r CreateContactMessageRequest) Apply(m *model.ContactMessageModel) {
	m.Name = r.Name
	m.Email = r.Email
	m.Subject = r.Subject
	m.Message = r.Message
}

// Apply marks the reply timestamp the first time a reply is stored.
func (r UpdateContactMessageRequest) Apply(m *model.ContactMessageModel, now time.Time) {
	if r.IsRead != nil {
		m.IsRead = *r.IsRead
	}
	if r.ReplyText != nil {
		m.ReplyText = r.ReplyText
		if m.RepliedAt == nil {
			m.RepliedAt = &now
		}
	}
}
