package entities

import (
	"time"
)

// ContactMessage records a contact form submission and the relay outcome.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VisitorID string    `gorm:"index;size:64" json:"visitor_id"`
	Name      string    `gorm:"size:200" json:"name"`
	Email     string    `gorm:"size:200" json:"email"`
	Subject   string    `gorm:"size:500" json:"subject"`
	Message   string    `gorm:"type:text" json:"message"`
	Delivered bool      `json:"delivered"`
	Error     string    `gorm:"type:text" json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
