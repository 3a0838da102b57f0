package entities

import (
	"time"
)

// PageView is a first-party analytics event, one row per rendered page.
type PageView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"index;size:64" json:"session_id"`
	Path      string    `gorm:"size:500" json:"path"`
	Referrer  string    `gorm:"size:500" json:"referrer"`
	Language  string    `gorm:"size:20" json:"language"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (PageView) TableName() string {
	return "page_views"
}
