// Package pageviews provides database operations for first-party analytics events.
package pageviews

import (
	"time"

	"gorm.io/gorm"

	"github.com/ghassen-kharrat/portfolio/internal/entities"
)

// Repository handles page view database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new page view repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Record stores a single page view event.
func (r *Repository) Record(view *entities.PageView) error {
	return r.db.Create(view).Error
}

// CountBySession returns the number of views recorded for a session.
func (r *Repository) CountBySession(sessionID string) (int64, error) {
	var count int64
	err := r.db.Model(&entities.PageView{}).Where("session_id = ?", sessionID).Count(&count).Error
	return count, err
}

// CountByPath returns view counts grouped by path, most viewed first.
func (r *Repository) CountByPath() (map[string]int64, error) {
	type row struct {
		Path  string
		Count int64
	}
	var rows []row
	err := r.db.Model(&entities.PageView{}).
		Select("path, COUNT(*) as count").
		Group("path").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Path] = r.Count
	}
	return counts, nil
}

// DeleteOldEvents removes page views older than the retention period and
// returns how many rows were deleted.
func (r *Repository) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	result := r.db.Where("created_at < ?", cutoff).Delete(&entities.PageView{})
	return result.RowsAffected, result.Error
}
