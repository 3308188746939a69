// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/corpus"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// Snapshot is one corpus together with the vector spaces fitted from it.
// It is never modified after construction.
type Snapshot struct {
	Version     int64
	Corpus      *corpus.Corpus
	Similarity  *FittedSpace
	Criteria    *FittedSpace
	BuiltAt     time.Time
	FitDuration time.Duration
}

// BuildSnapshot composes and fits both spaces for c.
func BuildSnapshot(c *corpus.Corpus, cfg *Config, version int64) *Snapshot {
	start := time.Now()
	tok := Tokenizer{MinLength: cfg.TokenMinLength}

	similarity := NewVectorizer(tok).Fit(ComposeAll(c.Movies, cfg.SimilarityFeatures))
	criteria := NewVectorizer(tok).Fit(ComposeAll(c.Movies, cfg.CriteriaFeatures))

	return &Snapshot{
		Version:     version,
		Corpus:      c,
		Similarity:  similarity,
		Criteria:    criteria,
		BuiltAt:     time.Now(),
		FitDuration: time.Since(start),
	}
}

// Store owns the published snapshot. Refreshes are serialized; readers
// load the current pointer without locking.
type Store struct {
	source corpus.Source
	cfg    *Config
	logger zerolog.Logger

	current   atomic.Pointer[Snapshot]
	refreshMu sync.Mutex
	version   atomic.Int64
	lastErr   atomic.Pointer[refreshError]
}

type refreshError struct {
	err error
	at  time.Time
}

// NewStore creates a store with no published snapshot.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStore(source corpus.Source, cfg *Config, logger zerolog.Logger) *Store {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Store{
		source: source,
		cfg:    cfg,
		logger: logger.With().Str("component", "snapshot_store").Logger(),
	}
}

// Current returns the published snapshot, or nil before the first refresh.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Source returns the underlying corpus source.
func (s *Store) Source() corpus.Source {
	return s.source
}

// Refresh loads the corpus, fits a new snapshot and publishes it.
func (s *Store) Refresh(ctx context.Context) (*Snapshot, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()
	return s.refreshLocked(ctx)
}

// RefreshIfChanged refreshes only when the source fingerprint differs from
// the published snapshot. It reports whether a new snapshot was published.
func (s *Store) RefreshIfChanged(ctx context.Context) (bool, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	fingerprint, err := s.source.Fingerprint(ctx)
	if err != nil {
		s.recordError(err)
		return false, err
	}
	if cur := s.current.Load(); cur != nil && cur.Corpus.Fingerprint == fingerprint {
		return false, nil
	}

	if _, err := s.refreshLocked(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// EnsureLoaded returns the published snapshot, refreshing first if none exists.
func (s *Store) EnsureLoaded(ctx context.Context) (*Snapshot, error) {
	if cur := s.current.Load(); cur != nil {
		return cur, nil
	}

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	// Another caller may have published while we waited.
	if cur := s.current.Load(); cur != nil {
		return cur, nil
	}
	return s.refreshLocked(ctx)
}

// Build loads and fits a private snapshot without publishing it.
func (s *Store) Build(ctx context.Context) (*Snapshot, error) {
	c, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	return BuildSnapshot(c, s.cfg, 0), nil
}

// LastFailure returns when the most recent refresh failed and why. Both are
// zero once a later refresh succeeds.
func (s *Store) LastFailure() (time.Time, error) {
	if le := s.lastErr.Load(); le != nil {
		return le.at, le.err
	}
	return time.Time{}, nil
}

func (s *Store) refreshLocked(ctx context.Context) (*Snapshot, error) {
	c, err := s.source.Load(ctx)
	if err != nil {
		s.recordError(err)
		s.logger.Error().Err(err).Str("source", s.source.Name()).Msg("Corpus load failed")
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	snap := BuildSnapshot(c, s.cfg, s.version.Add(1))
	s.current.Store(snap)
	s.lastErr.Store(nil)

	metrics.RecordSnapshot(snap.Version, c.Len(),
		snap.Similarity.VocabularySize(), snap.Criteria.VocabularySize(), snap.FitDuration)

	s.logger.Info().
		Int64("version", snap.Version).
		Int("movies", c.Len()).
		Int("skipped_rows", c.SkippedRows).
		Int("similarity_terms", snap.Similarity.VocabularySize()).
		Int("criteria_terms", snap.Criteria.VocabularySize()).
		Dur("fit_duration", snap.FitDuration).
		Msg("Published recommendation snapshot")
	return snap, nil
}

func (s *Store) recordError(err error) {
	s.lastErr.Store(&refreshError{err: err, at: time.Now()})
}
