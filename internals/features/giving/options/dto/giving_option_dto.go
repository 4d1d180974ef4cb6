package dto

import (
	"time"

	"newgate_backend/internals/features/giving/options/model"
)

type GivingOptionDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Color         string    `json:"color"`
	IconName      string    `json:"icon_name"`
	AccountName   *string   `json:"account_name"`
	AccountNumber *string   `json:"account_number"`
	BankName      *string   `json:"bank_name"`
	MobileNumber  *string   `json:"mobile_number"`
	IsActive      bool      `json:"is_active"`
	Order         int       `json:"order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateGivingOptionRequest struct {
	Title         string  `json:"title" validate:"required,max=200"`
	Description   string  `json:"description"`
	Color         string  `json:"color" validate:"omitempty,max=50"`
	IconName      string  `json:"icon_name" validate:"omitempty,max=100"`
	AccountName   *string `json:"account_name" validate:"omitempty,max=200"`
	AccountNumber *string `json:"account_number" validate:"omitempty,max=200"`
	BankName      *string `json:"bank_name" validate:"omitempty,max=200"`
	MobileNumber  *string `json:"mobile_number" validate:"omitempty,max=50"`
	IsActive      *bool   `json:"is_active"`
	Order         int     `json:"order"`
}

type UpdateGivingOptionRequest struct {
	Title         *string `json:"title" validate:"omitempty,max=200"`
	Description   *string `json:"description"`
	Color         *string `json:"color" validate:"omitempty,max=50"`
	IconName      *string `json:"icon_name" validate:"omitempty,max=100"`
	AccountName   *string `json:"account_name" validate:"omitempty,max=200"`
	AccountNumber *string `json:"account_number" validate:"omitempty,max=200"`
	BankName      *string `json:"bank_name" validate:"omitempty,max=200"`
	MobileNumber  *string `json:"mobile_number" validate:"omitempty,max=50"`
	IsActive      *bool   `json:"is_active"`
	Order         *int    `json:"order"`
}

func ToGivingOptionDTO(m model.GivingOptionModel) GivingOptionDTO {
	return GivingOptionDTO{
		ID:            m.ID.String(),
		Title:         m.Title,
		Description:   m.Description,
		Color:         m.Color,
		IconName:      m.IconName,
		AccountName:   m.AccountName,
		AccountNumber: m.AccountNumber,
		BankName:      m.BankName,
		MobileNumber:  m.MobileNumber,
		IsActive:      m.IsActive,
		Order:         m.Order,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToGivingOptionDTOs(ms []model.GivingOptionModel) []GivingOptionDTO {
	out := make([]GivingOptionDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToGivingOptionDTO(m))
	}
	return out
}

func (r CreateGivingOptionRequest) Apply(m *model.GivingOptionModel) {
	m.Title = r.Title
	m.Description = r.Description
	m.Color = r.Color
	if m.Color == "" {
		m.Color = "#3b82f6"
	}
	m.IconName = r.IconName
	m.AccountName = r.AccountName
	m.AccountNumber = r.AccountNumber
	m.BankName = r.BankName
	m.MobileNumber = r.MobileNumber
	m.IsActive = true
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	m.Order = r.Order
}

func (r UpdateGivingOptionRequest) Apply(m *model.GivingOptionModel) {
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
	if r.AccountName != nil {
		m.AccountName = r.AccountName
	}
	if r.AccountNumber != nil {
		m.AccountNumber = r.AccountNumber
	}
	if r.BankName != nil {
		m.BankName = r.BankName
	}
	if r.MobileNumber != nil {
		m.MobileNumber = r.MobileNumber
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	if r.Order != nil {
		m.Order = *r.Order
	}
}
