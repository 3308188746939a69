// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// SnapshotRefresher republishes the recommendation snapshot when the corpus
// changed. With no snapshot published yet it always loads.
// *recommend.Store implements it.
type SnapshotRefresher interface {
	RefreshIfChanged(ctx context.Context) (bool, error)
}

// RefreshServiceConfig holds configuration for the refresh loop.
type RefreshServiceConfig struct {
	// LoadOnStartup fits the first snapshot as soon as the service starts
	// instead of on the first request.
	LoadOnStartup bool

	// Interval is how often the corpus fingerprint is checked. Zero disables
	// polling.
	Interval time.Duration

	// Timeout bounds a single load and fit. Default: 5m
	Timeout time.Duration
}

// RefreshService keeps the published snapshot current.
type RefreshService struct {
	refresher SnapshotRefresher
	config    RefreshServiceConfig
	logger    zerolog.Logger
	name      string
}

// NewRefreshService creates the refresh loop.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRefreshService(refresher SnapshotRefresher, cfg RefreshServiceConfig, logger zerolog.Logger) *RefreshService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	return &RefreshService{
		refresher: refresher,
		config:    cfg,
		logger:    logger.With().Str("service", "corpus-refresh").Logger(),
		name:      "corpus-refresh",
	}
}

// Serve implements suture.Service.
func (s *RefreshService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("load_on_startup", s.config.LoadOnStartup).
		Dur("interval", s.config.Interval).
		Msg("Corpus refresh service starting")

	if s.config.LoadOnStartup {
		s.refresh(ctx)
	}

	if s.config.Interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Corpus refresh service shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

// refresh runs one check. Failures are logged and retried next tick.
func (s *RefreshService) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	changed, err := s.refresher.RefreshIfChanged(refreshCtx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn().Err(err).Msg("Corpus refresh failed, keeping previous snapshot")
		return
	}
	if changed {
		s.logger.Info().Dur("duration", time.Since(start)).Msg("Corpus changed, snapshot refreshed")
	}
}

func (s *RefreshService) String() string {
	return s.name
}
