package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChurchInfoModel is the singleton holding site-wide content: hero text,
// about sections, contact details, social links, and giving copy.
type ChurchInfoModel struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name            string    `gorm:"size:200;not null" json:"name"`
	HeroSubtitle    string    `gorm:"size:200;not null" json:"hero_subtitle"`
	HeroTitle       string    `gorm:"size:500;not null" json:"hero_title"`
	HeroDescription string    `gorm:"type:text" json:"hero_description"`
	AboutStory      string    `gorm:"type:text" json:"about_story"`
	AboutMission    string    `gorm:"type:text" json:"about_mission"`
	AboutVision     string    `gorm:"type:text" json:"about_vision"`
	Address         string    `gorm:"size:500" json:"address"`
	Phone           string    `gorm:"size:100" json:"phone"`
	Email           string    `gorm:"size:200" json:"email"`
	FacebookURL     *string   `gorm:"size:500" json:"facebook_url"`
	InstagramURL    *string   `gorm:"size:500" json:"instagram_url"`
	YoutubeURL      *string   `gorm:"size:500" json:"youtube_url"`
	TwitterURL      *string   `gorm:"size:500" json:"twitter_url"`
	GivingIntro     string    `gorm:"type:text" json:"giving_intro"`
	// List of inspirational verses for the giving page.
	GivingVerses datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"giving_verses"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ChurchInfoModel) TableName() string {
	return "church_info"
}

// DefaultChurchInfo is the row provisioned on first read when the table is
// empty, so the public site always has content to render.
func DefaultChurchInfo() ChurchInfoModel {
	return ChurchInfoModel{
		Name:            "New Gate Chapel",
		HeroSubtitle:    "Welcome Home",
		HeroTitle:       "Welcome to New Gate Chapel",
		HeroDescription: "A place of worship, community, and spiritual growth. Join us as we journey together in faith and discover God's purpose for our lives.",
		AboutStory:      "New Gate Chapel was founded with a vision...",
		AboutMission:    "To glorify God by making disciples of Jesus Christ who love God, love others, and serve the world.",
		AboutVision:     "A community where every person experiences the transforming love of Christ and discovers their God-given purpose.",
		GivingIntro:     "Your generosity enables us to reach our community, support missions, and continue the work of God in our city.",
		GivingVerses:    datatypes.JSON([]byte("[]")),
	}
}
