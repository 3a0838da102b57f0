// Package messages provides database operations for contact form submissions.
package messages

import (
	"gorm.io/gorm"

	"github.com/ghassen-kharrat/portfolio/internal/entities"
)

// Repository handles contact message database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new contact message repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Record stores a submission and the relay outcome. Delivery failures are
// recorded with the error text so resubmissions can be correlated later.
func (r *Repository) Record(msg *entities.ContactMessage) error {
	return r.db.Create(msg).Error
}

// ListRecent returns the most recent submissions, newest first.
func (r *Repository) ListRecent(limit int) ([]entities.ContactMessage, error) {
	var msgs []entities.ContactMessage
	err := r.db.Order("created_at DESC").Limit(limit).Find(&msgs).Error
	return msgs, err
}

// CountUndelivered returns how many submissions failed relay delivery.
func (r *Repository) CountUndelivered() (int64, error) {
	var count int64
	err := r.db.Model(&entities.ContactMessage{}).Where("delivered = ?", false).Count(&count).Error
	return count, err
}
