package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newgate_backend/internals/features/worship/schedules/model"
)

func TestCreateApplyDefaults(t *testing.T) {
	var m model.ServiceScheduleModel
	CreateServiceScheduleRequest{
		Day:  "Sunday",
		Time: "10:00 AM",
		Type: "Morning Worship",
	}.Apply(&m)

	assert.Equal(t, "America/New_York", m.Timezone)
	assert.True(t, m.IsActive)
	assert.Equal(t, 0, m.Order)
}

func TestCreateApplyExplicitValues(t *testing.T) {
	inactive := false
	var m model.ServiceScheduleModel
	CreateServiceScheduleRequest{
		Day:      "Wednesday",
		Time:     "7:00 PM",
		Timezone: "Africa/Accra",
		Type:     "Bible Study",
		IsActive: &inactive,
		Order:    3,
	}.Apply(&m)

	assert.Equal(t, "Africa/Accra", m.Timezone)
	assert.False(t, m.IsActive)
	assert.Equal(t, 3, m.Order)
}

func TestUpdateApplyPartial(t *testing.T) {
	m := model.ServiceScheduleModel{
		Day: "Sunday", Time: "10:00 AM", Timezone: "America/New_York",
		Type: "Morning Worship", IsActive: true, Order: 1,
	}

	newTime := "11:00 AM"
	UpdateServiceScheduleRequest{Time: &newTime}.Apply(&m)

	assert.Equal(t, "11:00 AM", m.Time)
	assert.Equal(t, "Sunday", m.Day)
	assert.Equal(t, "Morning Worship", m.Type)
	assert.True(t, m.IsActive)
}
