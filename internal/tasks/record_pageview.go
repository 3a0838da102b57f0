package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/ghassen-kharrat/portfolio/internal/entities"
)

// PageViewRecorder provides the ability to persist page view events.
type PageViewRecorder interface {
	Record(view *entities.PageView) error
}

// RecordPageViewTask persists a single first-party page view event.
// Handlers enqueue these so the response is never delayed by an analytics write.
type RecordPageViewTask struct {
	SessionID string `json:"session_id"`
	Path      string `json:"path"`
	Referrer  string `json:"referrer"`
	Language  string `json:"language"`
}

// Config returns the queue configuration for page view recording tasks.
func (t RecordPageViewTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "record_page_view",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     30 * time.Second,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: true,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// RecordPageViewProcessor creates a processor function for RecordPageViewTask.
func RecordPageViewProcessor(recorder PageViewRecorder) backlite.QueueProcessor[RecordPageViewTask] {
	return func(ctx context.Context, task RecordPageViewTask) error {
		if recorder == nil {
			return fmt.Errorf("page view recorder not configured")
		}

		view := &entities.PageView{
			SessionID: task.SessionID,
			Path:      task.Path,
			Referrer:  task.Referrer,
			Language:  task.Language,
		}
		if err := recorder.Record(view); err != nil {
			return fmt.Errorf("record page view: %w", err)
		}
		return nil
	}
}

// NewRecordPageViewQueue creates a backlite queue for page view recording tasks.
func NewRecordPageViewQueue(recorder PageViewRecorder) backlite.Queue {
	return backlite.NewQueue(RecordPageViewProcessor(recorder))
}
