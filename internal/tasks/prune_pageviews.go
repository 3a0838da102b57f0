package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// PageViewPruner provides the ability to delete old page view events.
type PageViewPruner interface {
	DeleteOldEvents(retention time.Duration) (int64, error)
}

// PrunePageViewsTask removes page views older than the configured retention period.
type PrunePageViewsTask struct {
	RetentionDays int `json:"retention_days"`
}

// Config returns the queue configuration for page view pruning tasks.
func (t PrunePageViewsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "prune_page_views",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// PrunePageViewsProcessor creates a processor function for PrunePageViewsTask.
func PrunePageViewsProcessor(pruner PageViewPruner) backlite.QueueProcessor[PrunePageViewsTask] {
	return func(ctx context.Context, task PrunePageViewsTask) error {
		if pruner == nil {
			return fmt.Errorf("page view pruner not configured")
		}

		retentionDays := task.RetentionDays
		if retentionDays <= 0 {
			retentionDays = 90
		}
		retention := time.Duration(retentionDays) * 24 * time.Hour

		deleted, err := pruner.DeleteOldEvents(retention)
		if err != nil {
			return fmt.Errorf("prune page views: %w", err)
		}

		log.Printf("[TASK] Pruned %d page views older than %d days", deleted, retentionDays)
		return nil
	}
}

// NewPrunePageViewsQueue creates a backlite queue for page view pruning tasks.
func NewPrunePageViewsQueue(pruner PageViewPruner) backlite.Queue {
	return backlite.NewQueue(PrunePageViewsProcessor(pruner))
}
