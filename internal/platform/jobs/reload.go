package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Reloader re-reads a data set from its source.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Scheduler reloads the employee catalog on a cron schedule. Each run holds
// mu, the same lock that serializes request handling.
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	mu       sync.Locker
	reloader Reloader
	logger   *zap.Logger
}

func NewScheduler(schedule string, mu sync.Locker, reloader Reloader, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:     cron.New(),
		schedule: schedule,
		mu:       mu,
		reloader: reloader,
		logger:   logger,
	}
}

// Start registers the reload job and starts the cron runner. An empty
// schedule disables reloading.
func (s *Scheduler) Start() error {
	if s.schedule == "" {
		s.logger.Info("catalog reload disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(s.schedule, s.RunReload); err != nil {
		return err
	}
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))
	s.cron.Start()
	return nil
}

// Stop halts the runner and waits for a running reload to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) RunReload() {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	if err := s.reloader.Reload(context.Background()); err != nil {
		s.logger.Error("catalog reload failed", zap.Error(err))
		return
	}
	s.logger.Info("catalog reloaded", zap.Int64("durationMs", time.Since(start).Milliseconds()))
}
