// Package scheduler runs the periodic chart refresh.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"equity_backend/internal/feature/equities/usecase"

	"github.com/robfig/cron/v3"
)

// Refresher refreshes the stored charts of the given symbols, or of every company when empty.
type Refresher interface {
	RefreshAll(ctx context.Context, symbols []string) (usecase.RefreshSummary, error)
}

// Scheduler wraps a cron runner that triggers RefreshAll.
type Scheduler struct {
	cron    *cron.Cron
	refresh Refresher
	timeout time.Duration
}

// New creates a Scheduler. spec uses the six-field format with seconds.
// Each run gets its own context bounded by timeout.
func New(spec string, r Refresher, timeout time.Duration) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		refresh: r,
		timeout: timeout,
	}
	if _, err := s.cron.AddFunc(spec, s.RunNow); err != nil {
		return nil, fmt.Errorf("register refresh task %q: %w", spec, err)
	}
	return s, nil
}

// Start starts the cron scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("refresh scheduler started")
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("refresh scheduler stopped")
}

// RunNow executes one refresh of every stored company.
func (s *Scheduler) RunNow() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	summary, err := s.refresh.RefreshAll(ctx, nil)
	if err != nil {
		slog.Error("scheduled refresh failed", "error", err)
		return
	}
	slog.Info("scheduled refresh completed",
		"symbols", summary.Symbols,
		"inserted", summary.Inserted,
		"failed", summary.Failed,
		"elapsed", time.Since(start))
}
