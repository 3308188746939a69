// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/corpus"
	"github.com/tomtom215/reelmatch/internal/models"
)

var testColumns = []string{
	models.ColumnTitle, models.ColumnOverview, models.ColumnGenres,
	models.ColumnOriginalLanguage, models.ColumnReleaseDate, models.ColumnGenresList,
}

// movie builds a row with genres mirrored into genresLs.
func movie(title, genres, lang, date string) models.Movie {
	return models.NewMovie(map[string]string{
		models.ColumnTitle:            title,
		models.ColumnOverview:         "About " + title,
		models.ColumnGenres:           genres,
		models.ColumnOriginalLanguage: lang,
		models.ColumnReleaseDate:      date,
		models.ColumnGenresList:       genres,
	})
}

// memorySource serves a fixed movie list and counts loads.
type memorySource struct {
	mu          sync.Mutex
	movies      []models.Movie
	fingerprint string
	err         error
	delay       time.Duration

	loads       atomic.Int32
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func newMemorySource(movies ...models.Movie) *memorySource {
	return &memorySource{movies: movies, fingerprint: "v1"}
}

func (s *memorySource) Name() string { return "memory" }

func (s *memorySource) Fingerprint(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fingerprint, s.err
}

func (s *memorySource) Load(ctx context.Context) (*corpus.Corpus, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		cur := s.maxInFlight.Load()
		if n <= cur || s.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}
	s.loads.Add(1)

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	movies := append([]models.Movie(nil), s.movies...)
	return corpus.New(testColumns, movies, 0, s.fingerprint)
}

func (s *memorySource) set(fingerprint string, movies ...models.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fingerprint = fingerprint
	s.movies = movies
}

func (s *memorySource) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func newTestEngine(t *testing.T, cfg *Config, src corpus.Source) *Engine {
	t.Helper()
	if cfg == nil {
		cfg = DefaultConfig()
	}
	store := NewStore(src, cfg, zerolog.Nop())
	e, err := NewEngine(cfg, store, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func intPtr(v int) *int { return &v }

func titles(items []models.MovieSummary) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}
