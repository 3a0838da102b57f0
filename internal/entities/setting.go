package entities

import (
	"time"
)

// Setting is a site-wide key/value setting (as opposed to visitor preferences).
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	// Plausible Analytics settings
	SettingKeyPlausibleEnabled    = "plausible_enabled"
	SettingKeyPlausibleDomain     = "plausible_domain"
	SettingKeyPlausibleScriptURL  = "plausible_script_url"
	SettingKeyPlausibleExtensions = "plausible_extensions"
)
