package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"newgate_backend/internals/features/site/churchinfo/model"
)

func TestDefaultChurchInfo(t *testing.T) {
	m := model.DefaultChurchInfo()
	assert.Equal(t, "New Gate Chapel", m.Name)
	assert.Equal(t, "Welcome Home", m.HeroSubtitle)
	assert.Equal(t, "Welcome to New Gate Chapel", m.HeroTitle)
	assert.NotEmpty(t, m.HeroDescription)
	assert.NotEmpty(t, m.AboutMission)
	assert.NotEmpty(t, m.GivingIntro)
	assert.Equal(t, "[]", string(m.GivingVerses))
}

func TestToChurchInfoDTOEmptyVersesRenderAsArray(t *testing.T) {
	d := ToChurchInfoDTO(model.ChurchInfoModel{Name: "New Gate Chapel"})
	assert.Equal(t, "[]", string(d.GivingVerses))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"giving_verses":[]`)
}

func TestCreateApplyStartsFromDefaults(t *testing.T) {
	var m model.ChurchInfoModel
	CreateChurchInfoRequest{Name: "Another Chapel"}.Apply(&m)

	assert.Equal(t, "Another Chapel", m.Name)
	assert.Equal(t, "Welcome Home", m.HeroSubtitle)
	assert.NotEmpty(t, m.GivingIntro)
}

func TestUpdateApplyVerses(t *testing.T) {
	m := model.DefaultChurchInfo()
	verses := json.RawMessage(`[{"text":"Give, and it will be given to you.","reference":"Luke 6:38"}]`)
	UpdateChurchInfoRequest{GivingVerses: verses}.Apply(&m)

	assert.Equal(t, datatypes.JSON(verses), m.GivingVerses)
}
