// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/oscode/platform-go/internal/session"
)

// Scheduler sweeps expired admin sessions in the background. Expiry is still
// checked lazily on every lookup; the sweep only keeps the store from
// accumulating tokens that are never touched again.
type Scheduler struct {
	sessions session.Store
	cron     *cron.Cron
	logger   *slog.Logger
}

// New creates a new scheduler instance.
func New(sessions session.Store, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		sessions: sessions,
		cron:     cron.New(),
		logger:   logger,
	}
}

// Start begins the scheduler with an every-minute session sweep.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("* * * * *", s.sweepSessions)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) sweepSessions() {
	if purged := s.sessions.PurgeExpired(context.Background()); purged > 0 {
		s.logger.Info("purged expired sessions", "count", purged)
	}
}
