// Package scheduler drives periodic background maintenance via cron.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/postboard/postboard/internal/config"
	"github.com/postboard/postboard/internal/tasks"
)

// AuditCleanupScheduler periodically enqueues auth event cleanup tasks.
type AuditCleanupScheduler struct {
	taskClient *tasks.Client
	cfg        config.Audit

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewAuditCleanupScheduler creates a new scheduler instance.
func NewAuditCleanupScheduler(taskClient *tasks.Client, cfg config.Audit) *AuditCleanupScheduler {
	return &AuditCleanupScheduler{
		taskClient: taskClient,
		cfg:        cfg,
		cron:       cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if audit cleanup is enabled.
func (s *AuditCleanupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.cfg.Enabled {
		log.Printf("Audit cleanup scheduler: disabled")
		return nil
	}

	if s.taskClient == nil {
		log.Printf("Audit cleanup scheduler: task queue not configured, skipping")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.cfg.CleanupSchedule, func() {
		s.runCleanup()
	})
	if err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.cfg.CleanupSchedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Audit cleanup scheduler: started with schedule '%s' (retention %d days)",
		s.cfg.CleanupSchedule, s.cfg.RetentionDays)

	// Monitor for context cancellation
	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler.
func (s *AuditCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	log.Printf("Audit cleanup scheduler: stopped")
}

// RunNow triggers an immediate cleanup.
func (s *AuditCleanupScheduler) RunNow() {
	s.runCleanup()
}

// IsRunning returns whether the scheduler is active.
func (s *AuditCleanupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// runCleanup enqueues one cleanup task.
func (s *AuditCleanupScheduler) runCleanup() {
	_, err := s.taskClient.Add(tasks.CleanupAuthEventsTask{
		RetentionDays: s.cfg.RetentionDays,
	}).Save()
	if err != nil {
		log.Printf("Audit cleanup: failed to enqueue task: %v", err)
		return
	}
	log.Printf("Audit cleanup: task enqueued")
}
