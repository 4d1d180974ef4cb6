package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"newgate_backend/internals/features/site/churchinfo/model"
)

type ChurchInfoDTO struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	HeroSubtitle    string          `json:"hero_subtitle"`
	HeroTitle       string          `json:"hero_title"`
	HeroDescription string          `json:"hero_description"`
	AboutStory      string          `json:"about_story"`
	AboutMission    string          `json:"about_mission"`
	AboutVision     string          `json:"about_vision"`
	Address         string          `json:"address"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	FacebookURL     *string         `json:"facebook_url"`
	InstagramURL    *string         `json:"instagram_url"`
	YoutubeURL      *string         `json:"youtube_url"`
	TwitterURL      *string         `json:"twitter_url"`
	GivingIntro     string          `json:"giving_intro"`
	GivingVerses    json.RawMessage `json:"giving_verses"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type CreateChurchInfoRequest struct {
	Name            string          `json:"name" validate:"omitempty,max=200"`
	HeroSubtitle    string          `json:"hero_subtitle" validate:"omitempty,max=200"`
	HeroTitle       string          `json:"hero_title" validate:"omitempty,max=500"`
	HeroDescription string          `json:"hero_description"`
	AboutStory      string          `json:"about_story"`
	AboutMission    string          `json:"about_mission"`
	AboutVision     string          `json:"about_vision"`
	Address         string          `json:"address" validate:"omitempty,max=500"`
	Phone           string          `json:"phone" validate:"omitempty,max=100"`
	Email           string          `json:"email" validate:"omitempty,max=200"`
	FacebookURL     *string         `json:"facebook_url" validate:"omitempty,url"`
	InstagramURL    *string         `json:"instagram_url" validate:"omitempty,url"`
	YoutubeURL      *string         `json:"youtube_url" validate:"omitempty,url"`
	TwitterURL      *string         `json:"twitter_url" validate:"omitempty,url"`
	GivingIntro     string          `json:"giving_intro"`
	GivingVerses    json.RawMessage `json:"giving_verses"`
}

type UpdateChurchInfoRequest struct {
	Name            *string         `json:"name" validate:"omitempty,max=200"`
	HeroSubtitle    *string         `json:"hero_subtitle" validate:"omitempty,max=200"`
	HeroTitle       *string         `json:"hero_title" validate:"omitempty,max=500"`
	HeroDescription *string         `json:"hero_description"`
	AboutStory      *string         `json:"about_story"`
	AboutMission    *string         `json:"about_mission"`
	AboutVision     *string         `json:"about_vision"`
	Address         *string         `json:"address" validate:"omitempty,max=500"`
	Phone           *string         `json:"phone" validate:"omitempty,max=100"`
	Email           *string         `json:"email" validate:"omitempty,max=200"`
	FacebookURL     *string         `json:"facebook_url" validate:"omitempty,url"`
	InstagramURL    *string         `json:"instagram_url" validate:"omitempty,url"`
	YoutubeURL      *string         `json:"youtube_url" validate:"omitempty,url"`
	TwitterURL      *string         `json:"twitter_url" validate:"omitempty,url"`
	GivingIntro     *string         `json:"giving_intro"`
	GivingVerses    json.RawMessage `json:"giving_verses"`
}

func ToChurchInfoDTO(m model.ChurchInfoModel) ChurchInfoDTO {
	verses := json.RawMessage(m.GivingVerses)
	if len(verses) == 0 {
		verses = json.RawMessage("[]")
	}
	return ChurchInfoDTO{
		ID:              m.ID.String(),
		Name:            m.Name,
		HeroSubtitle:    m.HeroSubtitle,
		HeroTitle:       m.HeroTitle,
		HeroDescription: m.HeroDescription,
		AboutStory:      m.AboutStory,
		AboutMission:    m.AboutMission,
		AboutVision:     m.AboutVision,
		Address:         m.Address,
		Phone:           m.Phone,
		Email:           m.Email,
		FacebookURL:     m.FacebookURL,
		InstagramURL:    m.InstagramURL,
		YoutubeURL:      m.YoutubeURL,
		TwitterURL:      m.TwitterURL,
		GivingIntro:     m.GivingIntro,
		GivingVerses:    verses,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// Apply starts from the provisioning defaults so an empty create still
// yields a fully populated row, then overlays whatever was sent.
func (r CreateChurchInfoRequest) Apply(m *model.ChurchInfoModel) {
	*m = model.DefaultChurchInfo()
	if r.Name != "" {
		m.Name = r.Name
	}
	if r.HeroSubtitle != "" {
		m.HeroSubtitle = r.HeroSubtitle
	}
	if r.HeroTitle != "" {
		m.HeroTitle = r.HeroTitle
	}
	if r.HeroDescription != "" {
		m.HeroDescription = r.HeroDescription
	}
	if r.AboutStory != "" {
		m.AboutStory = r.AboutStory
	}
	if r.AboutMission != "" {
		m.AboutMission = r.AboutMission
	}
	if r.AboutVision != "" {
		m.AboutVision = r.AboutVision
	}
	m.Address = r.Address
	m.Phone = r.Phone
	m.Email = r.Email
	m.FacebookURL = r.FacebookURL
	m.InstagramURL = r.InstagramURL
	m.YoutubeURL = r.YoutubeURL
	m.TwitterURL = r.TwitterURL
	if r.GivingIntro != "" {
		m.GivingIntro = r.GivingIntro
	}
	if len(r.GivingVerses) > 0 {
		m.GivingVerses = datatypes.JSON(r.GivingVerses)
	}
}

func (r UpdateChurchInfoRequest) Apply(m *model.ChurchInfoModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.HeroSubtitle != nil {
		m.HeroSubtitle = *r.HeroSubtitle
	}
	if r.HeroTitle != nil {
		m.HeroTitle = *r.HeroTitle
	}
	if r.HeroDescription != nil {
		m.HeroDescription = *r.HeroDescription
	}
	if r.AboutStory != nil {
		m.AboutStory = *r.AboutStory
	}
	if r.AboutMission != nil {
		m.AboutMission = *r.AboutMission
	}
	if r.AboutVision != nil {
		m.AboutVision = *r.AboutVision
	}
	if r.Address != nil {
		m.Address = *r.Address
	}
	if r.Phone != nil {
		m.Phone = *r.Phone
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.FacebookURL != nil {
		m.FacebookURL = r.FacebookURL
	}
	if r.InstagramURL != nil {
		m.InstagramURL = r.InstagramURL
	}
	if r.YoutubeURL != nil {
		m.YoutubeURL = r.YoutubeURL
	}
	if r.TwitterURL != nil {
		m.TwitterURL = r.TwitterURL
	}
	if len(r.GivingVerses) > 0 {
		m.GivingVerses = datatypes.JSON(r.GivingVerses)
	}
}
