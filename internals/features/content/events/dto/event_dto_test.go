package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newgate_backend/internals/features/content/events/model"
)

func TestCreateApplyParsesDate(t *testing.T) {
	var m model.EventModel
	CreateEventRequest{
		Title:       "Harvest Sunday",
		Date:        "2025-11-02",
		Location:    "Main Auditorium",
		Category:    "Service",
		Description: "Annual harvest and thanksgiving service.",
	}.Apply(&m)

	assert.Equal(t, "2025-11-02", m.Date.String())
	assert.Equal(t, "Harvest Sunday", m.Title)
	assert.Nil(t, m.Image)
}

func TestUpdateApplyPartial(t *testing.T) {
	var m model.EventModel
	CreateEventRequest{
		Title: "Harvest Sunday", Date: "2025-11-02",
		Location: "Main Auditorium", Category: "Service", Description: "x",
	}.Apply(&m)

	newDate := "2025-11-09"
	UpdateEventRequest{Date: &newDate}.Apply(&m)

	assert.Equal(t, "2025-11-09", m.Date.String())
	assert.Equal(t, "Harvest Sunday", m.Title)
	assert.Equal(t, "Main Auditorium", m.Location)
}

func TestEventDTODateSerialization(t *testing.T) {
	var m model.EventModel
	CreateEventRequest{
		Title: "Night of Worship", Date: "2025-12-31",
		Location: "Main Auditorium", Category: "Worship", Description: "x",
	}.Apply(&m)

	b, err := json.Marshal(ToEventDTO(nil, m))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"date":"2025-12-31"`)
	assert.Contains(t, string(b), `"image":null`)
}
