package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newgate_backend/internals/features/giving/options/model"
)

func TestCreateApplyDefaults(t *testing.T) {
	var m model.GivingOptionModel
	CreateGivingOptionRequest{Title: "Bank Transfer"}.Apply(&m)

	assert.Equal(t, "#3b82f6", m.Color)
	assert.True(t, m.IsActive)
	assert.Nil(t, m.AccountNumber)
}

func TestCreateApplyExplicit(t *testing.T) {
	acct := "0012345678"
	bank := "First National"
	inactive := false

	var m model.GivingOptionModel
	CreateGivingOptionRequest{
		Title:         "Mobile Money",
		Color:         "#16a34a",
		AccountNumber: &acct,
		BankName:      &bank,
		IsActive:      &inactive,
		Order:         2,
	}.Apply(&m)

	assert.Equal(t, "#16a34a", m.Color)
	assert.Equal(t, &acct, m.AccountNumber)
	assert.Equal(t, &bank, m.BankName)
	assert.False(t, m.IsActive)
	assert.Equal(t, 2, m.Order)
}

func TestUpdateApplyPartial(t *testing.T) {
	m := model.GivingOptionModel{Title: "Bank Transfer", Color: "#3b82f6", IsActive: true}

	title := "Wire Transfer"
	UpdateGivingOptionRequest{Title: &title}.Apply(&m)

	assert.Equal(t, "Wire Transfer", m.Title)
	assert.Equal(t, "#3b82f6", m.Color)
	assert.True(t, m.IsActive)
}
