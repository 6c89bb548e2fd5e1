package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vocabachkhoa/api/internal/metrics"
)

const refreshTimeout = 30 * time.Second

// StatsSource counts the rows held by the stores.
type StatsSource interface {
	GetStats(ctx context.Context) (accounts int64, entries int64, err error)
}

// StatsScheduler periodically refreshes the store-size gauges.
type StatsScheduler struct {
	source   StatsSource
	recorder metrics.Recorder
	schedule string
	logger   *slog.Logger

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewStatsScheduler creates a scheduler for the given cron schedule.
// Descriptors such as "@every 1m" are accepted.
func NewStatsScheduler(source StatsSource, recorder metrics.Recorder, schedule string, logger *slog.Logger) *StatsScheduler {
	return &StatsScheduler{
		source:   source,
		recorder: recorder,
		schedule: schedule,
		logger:   logger,
		cron:     cron.New(cron.WithParser(newParser())),
	}
}

func newParser() cron.Parser {
	return cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// ValidateSchedule reports whether schedule is a valid cron expression.
func ValidateSchedule(schedule string) error {
	_, err := newParser().Parse(schedule)
	return err
}

// Start refreshes the gauges once and then on every tick of the schedule.
// An empty schedule leaves the scheduler disabled.
func (s *StatsScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.schedule == "" {
		s.logger.Info("stats scheduler: disabled")
		return nil
	}

	if err := ValidateSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.Refresh)
	if err != nil {
		return fmt.Errorf("failed to schedule stats job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.Refresh()

	s.cron.Start()
	s.isRunning = true
	s.logger.Info("stats scheduler: started", "schedule", s.schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running refresh to finish and stops the scheduler.
func (s *StatsScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	s.logger.Info("stats scheduler: stopped")
}

func (s *StatsScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next refresh will occur.
func (s *StatsScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// Refresh reads the store counts and updates the gauges.
func (s *StatsScheduler) Refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	accounts, entries, err := s.source.GetStats(ctx)
	if err != nil {
		s.logger.Warn("stats scheduler: failed to read store stats", "error", err)
		return
	}

	s.recorder.SetStoreSize(accounts, entries)
	s.logger.Debug("stats scheduler: refreshed", "accounts", accounts, "entries", entries)
}
