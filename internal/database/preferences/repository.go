// Package preferences provides database operations for visitor preferences.
//
// # Usage
//
//	repo := preferences.NewRepository(db)
//	value, err := repo.Get(visitorID, "theme")
package preferences

import (
	"gorm.io/gorm"

	"github.com/ghassen-kharrat/portfolio/internal/entities"
)

// Repository handles all preference database operations.
// Rows are scoped to a visitor; the same key can hold different values
// for different visitors.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new preferences repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get retrieves a preference value for a visitor.
func (r *Repository) Get(visitorID, key string) (string, error) {
	var pref entities.Preference
	err := r.db.Where("visitor_id = ? AND key = ?", visitorID, key).First(&pref).Error
	if err != nil {
		return "", err
	}
	return pref.Value, nil
}

// GetAll retrieves every stored preference for a visitor.
func (r *Repository) GetAll(visitorID string) (map[string]string, error) {
	var prefs []entities.Preference
	err := r.db.Where("visitor_id = ?", visitorID).Find(&prefs).Error
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(prefs))
	for _, p := range prefs {
		values[p.Key] = p.Value
	}
	return values, nil
}

// Set creates or updates a preference for a visitor.
func (r *Repository) Set(visitorID, key, value string) error {
	var pref entities.Preference
	result := r.db.Where("visitor_id = ? AND key = ?", visitorID, key).First(&pref)

	if result.Error == gorm.ErrRecordNotFound {
		pref = entities.Preference{
			VisitorID: visitorID,
			Key:       key,
			Value:     value,
		}
		return r.db.Create(&pref).Error
	} else if result.Error != nil {
		return result.Error
	}

	pref.Value = value
	return r.db.Save(&pref).Error
}

// Delete removes a preference for a visitor.
func (r *Repository) Delete(visitorID, key string) error {
	return r.db.Where("visitor_id = ? AND key = ?", visitorID, key).Delete(&entities.Preference{}).Error
}

// DeleteVisitor removes every preference stored for a visitor.
func (r *Repository) DeleteVisitor(visitorID string) error {
	return r.db.Where("visitor_id = ?", visitorID).Delete(&entities.Preference{}).Error
}
