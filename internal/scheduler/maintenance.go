// Package scheduler runs the periodic maintenance jobs: pruning old page
// views and sweeping idle visitor shells.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ghassen-kharrat/portfolio/internal/config"
	"github.com/ghassen-kharrat/portfolio/internal/shell"
	"github.com/ghassen-kharrat/portfolio/internal/tasks"
)

// MaintenanceScheduler manages the recurring cleanup and sweep jobs.
type MaintenanceScheduler struct {
	taskClient *tasks.Client
	shells     *shell.Manager
	cleanup    config.Cleanup
	shellCfg   config.Shell

	runner       *cron.Cron
	pruneEntryID cron.EntryID
	sweepEntryID cron.EntryID

	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewMaintenanceScheduler creates a new scheduler instance.
func NewMaintenanceScheduler(taskClient *tasks.Client, shells *shell.Manager, cleanup config.Cleanup, shellCfg config.Shell) *MaintenanceScheduler {
	return &MaintenanceScheduler{
		taskClient: taskClient,
		shells:     shells,
		cleanup:    cleanup,
		shellCfg:   shellCfg,
		runner:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *MaintenanceScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	pruneID, err := s.runner.AddFunc(s.cleanup.Schedule, func() {
		s.runPrune()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule page view pruning '%s': %w", s.cleanup.Schedule, err)
	}
	s.pruneEntryID = pruneID

	sweepID, err := s.runner.AddFunc(s.shellCfg.SweepSchedule, func() {
		s.runSweep()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule shell sweep '%s': %w", s.shellCfg.SweepSchedule, err)
	}
	s.sweepEntryID = sweepID

	// Create cancellable context
	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.runner.Start()
	s.isRunning = true

	log.Printf("Maintenance scheduler: started (prune '%s', sweep '%s')",
		s.cleanup.Schedule, s.shellCfg.SweepSchedule)

	// Monitor for context cancellation
	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler.
func (s *MaintenanceScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.runner.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Maintenance scheduler: stopped")
}

// IsRunning returns whether the scheduler is active.
func (s *MaintenanceScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextPruneTime returns when the next pruning job will run.
func (s *MaintenanceScheduler) NextPruneTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.runner.Entries() {
		if entry.ID == s.pruneEntryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// RunPruneNow triggers an immediate pruning run.
func (s *MaintenanceScheduler) RunPruneNow() {
	go s.runPrune()
}

func (s *MaintenanceScheduler) runPrune() {
	if s.taskClient == nil {
		return
	}

	_, err := s.taskClient.Add(tasks.PrunePageViewsTask{
		RetentionDays: s.cleanup.PageViewRetention,
	}).Save()
	if err != nil {
		log.Printf("Maintenance scheduler: failed to enqueue page view pruning: %v", err)
		return
	}
	log.Printf("Maintenance scheduler: enqueued page view pruning (retention %d days)",
		s.cleanup.PageViewRetention)
}

func (s *MaintenanceScheduler) runSweep() {
	if s.shells == nil {
		return
	}

	evicted := s.shells.EvictIdle(s.shellCfg.IdleTimeout)
	if evicted > 0 {
		log.Printf("Maintenance scheduler: evicted %d idle visitor shells", evicted)
	}
}
