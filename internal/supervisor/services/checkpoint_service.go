// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Checkpointer flushes a database's write-ahead log into the main file.
type Checkpointer interface {
	Checkpoint(ctx context.Context) error
}

// CheckpointService checkpoints the database on a fixed interval so the WAL
// stays small between restarts.
type CheckpointService struct {
	db       Checkpointer
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCheckpointService creates the service. A non-positive interval means 5m.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCheckpointService(db Checkpointer, interval time.Duration, logger zerolog.Logger) *CheckpointService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &CheckpointService{
		db:       db,
		interval: interval,
		timeout:  30 * time.Second,
		logger:   logger.With().Str("service", "checkpoint").Logger(),
		name:     "checkpoint-service",
	}
}

// Serve implements suture.Service. Checkpoint failures are logged and
// retried on the next tick; they never stop the service.
func (s *CheckpointService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug().Dur("interval", s.interval).Msg("checkpoint service running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.checkpoint(ctx)
		}
	}
}

func (s *CheckpointService) checkpoint(ctx context.Context) {
	cpCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.db.Checkpoint(cpCtx); err != nil {
		s.logger.Warn().Err(err).Msg("checkpoint failed")
		return
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("checkpoint complete")
}

// String returns the service name for logging.
func (s *CheckpointService) String() string {
	return s.name
}
