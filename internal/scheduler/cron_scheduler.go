package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"epidash-service/internal/logger"
)

type Task func(ctx context.Context) error

// CronScheduler runs named tasks at fixed intervals. Each run gets its own
// timeout derived from the context passed to Schedule.
type CronScheduler struct {
	cron    *cron.Cron
	jobs    map[string]cron.EntryID
	mu      sync.RWMutex
	timeout time.Duration
	log     *logger.Logger
}

func NewCronScheduler(log *logger.Logger, timeout time.Duration) *CronScheduler {
	if log == nil {
		log = logger.NewNop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}

	c := cron.New()
	s := &CronScheduler{
		cron:    c,
		jobs:    make(map[string]cron.EntryID),
		timeout: timeout,
		log:     log.With("component", "cron_scheduler"),
	}

	c.Start()
	s.log.Info("cron scheduler started")

	return s
}

// Schedule registers task under name. Intervals below one second run every second.
func (s *CronScheduler) Schedule(ctx context.Context, name string, interval time.Duration, task Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %q already scheduled", name)
	}
	if interval <= 0 {
		return fmt.Errorf("job %q: interval must be positive", name)
	}

	entryID := s.cron.Schedule(cron.Every(interval), cron.FuncJob(func() {
		s.runTask(ctx, name, task)
	}))

	s.jobs[name] = entryID
	s.log.Info("job scheduled", "job", name, "interval", interval.String())
	return nil
}

func (s *CronScheduler) runTask(parent context.Context, name string, task Task) {
	if parent.Err() != nil {
		return
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(parent, s.timeout)
	defer cancel()

	if err := task(ctx); err != nil {
		s.log.Error("job failed", "job", name, "duration", time.Since(start).String(), "error", err)
		return
	}
	s.log.Debug("job completed", "job", name, "duration", time.Since(start).String())
}

// Jobs lists the scheduled job names.
func (s *CronScheduler) Jobs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	return names
}

// Stop waits for running jobs to finish.
func (s *CronScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	<-s.cron.Stop().Done()

	s.jobs = make(map[string]cron.EntryID)
	s.log.Info("cron scheduler stopped")
}
