// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/models"
)

// Operation names used in errors, logs and metrics.
const (
	OpListTitles          = "list_titles"
	OpRecommendSimilarTo  = "recommend_similar"
	OpGetItemDetails      = "item_details"
	OpRecommendByCriteria = "recommend_criteria"
	OpRefresh             = "refresh"
)

// selfSimilarityTolerance bounds how far a non-zero vector's cosine with
// itself may drift from 1 before it is reported.
const selfSimilarityTolerance = 1e-9

// Engine answers recommendation queries against the Store's snapshot.
// It is safe for concurrent use.
type Engine struct {
	config  *Config
	store   *Store
	logger  zerolog.Logger
	similar *cache.LRU[similarKey, []models.MovieSummary]
}

// similarKey scopes cached rankings to the snapshot they were computed on.
type similarKey struct {
	version int64
	title   string
}

// Status describes the engine's published snapshot.
type Status struct {
	Ready           bool      `json:"ready"`
	Version         int64     `json:"version"`
	Source          string    `json:"source"`
	Items           int       `json:"items"`
	SkippedRows     int       `json:"skipped_rows"`
	SimilarityTerms int       `json:"similarity_terms"`
	CriteriaTerms   int       `json:"criteria_terms"`
	Fingerprint     string    `json:"fingerprint,omitempty"`
	LoadedAt        time.Time `json:"loaded_at,omitempty"`
	FitDurationMS   int64     `json:"fit_duration_ms"`
	RefitPerRequest bool      `json:"refit_per_request"`
	LastError       string    `json:"last_error,omitempty"`
	LastErrorAt     time.Time `json:"last_error_at,omitempty"`

	Cache *cache.Stats `json:"cache,omitempty"`
}

// NewEngine creates an engine over store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, store *Store, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if store == nil {
		return nil, fmt.Errorf("snapshot store is required")
	}
	e := &Engine{
		config: cfg,
		store:  store,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
	if cfg.CacheSize > 0 && !cfg.RefitPerRequest {
		e.similar = cache.NewLRU[similarKey, []models.MovieSummary](cfg.CacheSize)
	}
	return e, nil
}

// ListTitles returns every title, in corpus order.
func (e *Engine) ListTitles(ctx context.Context) (titles []string, err error) {
	err = e.run(ctx, OpListTitles, func(snap *Snapshot) error {
		titles = snap.Corpus.Titles()
		return nil
	})
	return titles, err
}

// RecommendSimilarTo returns up to Limit movies most similar to the first
// movie titled title, excluding that movie itself.
func (e *Engine) RecommendSimilarTo(ctx context.Context, title string) (out []models.MovieSummary, err error) {
	err = e.run(ctx, OpRecommendSimilarTo, func(snap *Snapshot) error {
		key := similarKey{version: snap.Version, title: title}
		if cached, ok := e.cachedSimilar(key); ok {
			out = cached
			return nil
		}

		idx, ok := snap.Corpus.IndexOf(title)
		if !ok {
			return &Error{Kind: KindItemNotFound, Message: fmt.Sprintf("movie %q not found", title)}
		}

		query := snap.Similarity.Vector(idx)
		e.checkSelfSimilarity(ctx, title, query)

		ranked := RankExcluding(query, snap.Similarity.Vectors(), idx)
		if len(ranked) > e.config.Limit {
			ranked = ranked[:e.config.Limit]
		}
		out = Summaries(ranked, snap.Corpus.Movies)
		if e.similar != nil {
			e.similar.Add(key, append([]models.MovieSummary(nil), out...))
		}
		return nil
	})
	return out, err
}

// cachedSimilar returns a copy of a cached ranking.
func (e *Engine) cachedSimilar(key similarKey) ([]models.MovieSummary, bool) {
	if e.similar == nil {
		return nil, false
	}
	cached, ok := e.similar.Get(key)
	metrics.RecordCacheLookup(ok)
	if !ok {
		return nil, false
	}
	return append([]models.MovieSummary(nil), cached...), true
}

// GetItemDetails returns every column of the first movie titled title.
// Missing values are empty strings.
func (e *Engine) GetItemDetails(ctx context.Context, title string) (details map[string]string, err error) {
	err = e.run(ctx, OpGetItemDetails, func(snap *Snapshot) error {
		idx, ok := snap.Corpus.IndexOf(title)
		if !ok {
			return &Error{Kind: KindItemNotFound, Message: fmt.Sprintf("movie %q not found", title)}
		}
		details = Details(&snap.Corpus.Movies[idx], snap.Corpus.Columns)
		return nil
	})
	return details, err
}

// RecommendByCriteria ranks every movie against the requested genres and
// returns up to Limit movies that pass the year and language constraints.
func (e *Engine) RecommendByCriteria(ctx context.Context, c Criteria) (out []models.MovieSummary, err error) {
	err = e.run(ctx, OpRecommendByCriteria, func(snap *Snapshot) error {
		if c.MinYear != nil && c.MaxYear != nil && *c.MinYear > *c.MaxYear {
			return &Error{
				Kind:    KindInvalidRequest,
				Message: fmt.Sprintf("minYear %d is after maxYear %d", *c.MinYear, *c.MaxYear),
			}
		}

		query, err := snap.Criteria.Transform(c.Query())
		if err != nil {
			return err
		}

		ranked := Rank(query, snap.Criteria.Vectors())
		accepted := Filter(ranked, snap.Corpus.Movies, NewPredicate(c.Languages, c.MinYear, c.MaxYear), e.config.Limit)
		out = Summaries(accepted, snap.Corpus.Movies)
		return nil
	})
	return out, err
}

// Refresh reloads the corpus and publishes a new snapshot.
func (e *Engine) Refresh(ctx context.Context) (Status, error) {
	start := time.Now()
	_, err := e.store.Refresh(ctx)
	if err != nil {
		werr := wrap(OpRefresh, err)
		metrics.RecordRecommendation(OpRefresh, outcomeFor(werr.Kind), time.Since(start))
		return e.Status(), werr
	}
	metrics.RecordRecommendation(OpRefresh, metrics.OutcomeSuccess, time.Since(start))
	return e.Status(), nil
}

// Status reports the published snapshot. It never triggers a load.
func (e *Engine) Status() Status {
	st := Status{
		Ready:           e.Ready(),
		Source:          e.store.Source().Name(),
		RefitPerRequest: e.config.RefitPerRequest,
	}
	if at, err := e.store.LastFailure(); err != nil {
		st.LastError = err.Error()
		st.LastErrorAt = at
	}

	if e.similar != nil {
		cs := e.similar.Stats()
		st.Cache = &cs
	}

	snap := e.store.Current()
	if snap == nil {
		return st
	}
	st.Ready = true
	st.Version = snap.Version
	st.Items = snap.Corpus.Len()
	st.SkippedRows = snap.Corpus.SkippedRows
	st.SimilarityTerms = snap.Similarity.VocabularySize()
	st.CriteriaTerms = snap.Criteria.VocabularySize()
	st.Fingerprint = snap.Corpus.Fingerprint
	st.LoadedAt = snap.Corpus.LoadedAt
	st.FitDurationMS = snap.FitDuration.Milliseconds()
	return st
}

// Ready reports whether a snapshot can serve queries.
func (e *Engine) Ready() bool {
	return e.config.RefitPerRequest || e.store.Current() != nil
}

// snapshot returns the snapshot a query should read.
func (e *Engine) snapshot(ctx context.Context) (*Snapshot, error) {
	if e.config.RefitPerRequest {
		return e.store.Build(ctx)
	}
	return e.store.EnsureLoaded(ctx)
}

// run executes fn against a snapshot, converting errors and panics into
// *Error and recording the outcome.
func (e *Engine) run(ctx context.Context, op string, fn func(*Snapshot) error) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logging.Ctx(ctx).Error().
				Str("operation", op).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("Recovered panic in recommendation engine")
			err = &Error{Kind: KindInternal, Op: op, Err: fmt.Errorf("panic: %v", r)}
		}

		kind := KindInternal
		outcome := metrics.OutcomeSuccess
		if err != nil {
			werr := wrap(op, err)
			err = werr
			kind = werr.Kind
			outcome = outcomeFor(kind)
		}
		metrics.RecordRecommendation(op, outcome, time.Since(start))

		if err != nil && kind != KindItemNotFound && kind != KindInvalidRequest {
			e.logger.Error().Err(err).Str("operation", op).Msg("Recommendation failed")
		}
	}()

	snap, err := e.snapshot(ctx)
	if err != nil {
		return err
	}
	return fn(snap)
}

func (e *Engine) checkSelfSimilarity(ctx context.Context, title string, v SparseVector) {
	if v.NNZ() == 0 {
		return
	}
	if s := selfSimilarity(v); math.Abs(s-1) > selfSimilarityTolerance {
		logging.Ctx(ctx).Warn().
			Str("title", logging.SanitizeValue(title)).
			Float64("self_similarity", s).
			Msg("Query vector is not self-similar")
	}
}

// selfSimilarity is v's cosine with itself, unclamped so drift in either
// direction shows. A zero vector yields 0.
func selfSimilarity(v SparseVector) float64 {
	n := v.Norm()
	if n == 0 {
		return 0
	}
	return v.Dot(v) / (n * n)
}

func outcomeFor(k Kind) string {
	switch k {
	case KindItemNotFound:
		return metrics.OutcomeItemNotFound
	case KindCorpusUnavailable:
		return metrics.OutcomeCorpusUnavailable
	case KindInvalidRequest:
		return metrics.OutcomeInvalidRequest
	default:
		return metrics.OutcomeInternal
	}
}

// IsNotFound reports whether err is an ItemNotFound failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrItemNotFound)
}
