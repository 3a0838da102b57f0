package entities

import (
	"time"
)

// Preference is a single persisted preference value for one visitor.
// The (VisitorID, Key) pair is unique; Value holds either a bare enum
// value ("dark", "fr") or a JSON document for record-shaped preferences.
type Preference struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VisitorID string    `gorm:"uniqueIndex:idx_visitor_key;size:64" json:"visitor_id"`
	Key       string    `gorm:"uniqueIndex:idx_visitor_key;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Preference) TableName() string {
	return "preferences"
}

// Persisted preference keys
const (
	PreferenceKeyTheme         = "theme"
	PreferenceKeyLocale        = "portfolioLanguage"
	PreferenceKeyAccessibility = "accessibility"
)
