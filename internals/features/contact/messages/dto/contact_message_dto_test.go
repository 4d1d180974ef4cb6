package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newgate_backend/internals/features/contact/messages/model"
)

func TestCreateApplyIgnoresAdminFields(t *testing.T) {
	var m model.ContactMessageModel
	CreateContactMessageRequest{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Subject: "Prayer request",
		Message: "Please pray for my family.",
	}.Apply(&m)

	assert.Equal(t, "Jane Visitor", m.Name)
	assert.Equal(t, "jane@example.com", m.Email)
	assert.False(t, m.IsRead)
	assert.Nil(t, m.ReplyText)
	assert.Nil(t, m.RepliedAt)
}

func TestUpdateApplySetsRepliedAtOnFirstReply(t *testing.T) {
	now := time.Date(2025, 8, 20, 9, 0, 0, 0, time.UTC)
	var m model.ContactMessageModel

	reply := "Thank you for reaching out."
	UpdateContactMessageRequest{ReplyText: &reply}.Apply(&m, now)

	require.NotNil(t, m.ReplyText)
	assert.Equal(t, reply, *m.ReplyText)
	require.NotNil(t, m.RepliedAt)
	assert.Equal(t, now, *m.RepliedAt)
}

func TestUpdateApplyKeepsOriginalReplyTimestamp(t *testing.T) {
	first := time.Date(2025, 8, 20, 9, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	var m model.ContactMessageModel
	reply := "First reply"
	UpdateContactMessageRequest{ReplyText: &reply}.Apply(&m, first)

	edited := "Edited reply"
	UpdateContactMessageRequest{ReplyText: &edited}.Apply(&m, later)

	require.NotNil(t, m.RepliedAt)
	assert.Equal(t, first, *m.RepliedAt)
	assert.Equal(t, edited, *m.ReplyText)
}

func TestUpdateApplyReadFlagOnly(t *testing.T) {
	var m model.ContactMessageModel
	read := true
	UpdateContactMessageRequest{IsRead: &read}.Apply(&m, time.Now())

	assert.True(t, m.IsRead)
	assert.Nil(t, m.ReplyText)
	assert.Nil(t, m.RepliedAt)
}
