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
	"slices"
	"testing"

	"github.com/tomtom215/reelmatch/internal/models"
)

func scenarioSource() *memorySource {
	return newMemorySource(
		movie("A", "action", "en", "2001-01-01"),
		movie("B", "action", "en", "2002-01-01"),
		movie("C", "drama", "en", "2003-01-01"),
	)
}

func TestEngine_ScenarioA_SimilarRanksSharedGenreFirst(t *testing.T) {
	e := newTestEngine(t, nil, scenarioSource())

	got, err := e.RecommendSimilarTo(context.Background(), "A")
	if err != nil {
		t.Fatalf("RecommendSimilarTo() error = %v", err)
	}
	if want := []string{"B", "C"}; !slices.Equal(titles(got), want) {
		t.Errorf("titles = %v, want %v", titles(got), want)
	}
	if got[0].Overview != "About B" {
		t.Errorf("overview = %q", got[0].Overview)
	}
}

func TestEngine_ScenarioB_CriteriaRanksMatchingGenreFirst(t *testing.T) {
	e := newTestEngine(t, nil, scenarioSource())

	got, err := e.RecommendByCriteria(context.Background(), Criteria{Genres: []string{"drama"}})
	if err != nil {
		t.Fatalf("RecommendByCriteria() error = %v", err)
	}
	if len(got) == 0 || got[0].Title != "C" {
		t.Errorf("titles = %v, want C first", titles(got))
	}
}

func TestEngine_ScenarioC_MalformedDateNeverReturned(t *testing.T) {
	src := scenarioSource()
	src.set("v2",
		movie("A", "drama", "en", "2001-01-01"),
		movie("D", "drama", "en", "not-a-date"),
		movie("E", "drama", "en", "2019-12-31"),
	)
	e := newTestEngine(t, nil, src)

	got, err := e.RecommendByCriteria(context.Background(), Criteria{
		Genres:  []string{"drama"},
		MinYear: intPtr(2000),
		MaxYear: intPtr(2020),
	})
	if err != nil {
		t.Fatalf("RecommendByCriteria() error = %v", err)
	}
	if slices.Contains(titles(got), "D") {
		t.Errorf("titles = %v, must not contain D", titles(got))
	}
	if want := []string{"A", "E"}; !slices.Equal(titles(got), want) {
		t.Errorf("titles = %v, want %v", titles(got), want)
	}
}

func TestEngine_UnknownTitle(t *testing.T) {
	e := newTestEngine(t, nil, scenarioSource())
	ctx := context.Background()

	_, err := e.RecommendSimilarTo(ctx, "Unknown")
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("RecommendSimilarTo() error = %v, want ErrItemNotFound", err)
	}
	_, err = e.GetItemDetails(ctx, "Unknown")
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("GetItemDetails() error = %v, want ErrItemNotFound", err)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound() = false")
	}

	var rerr *Error
	if !errors.As(err, &rerr) || rerr.Op != OpGetItemDetails || rerr.Kind != KindItemNotFound {
		t.Errorf("error = %#v", err)
	}
}

func TestEngine_SimilarLengthAndSelfExclusion(t *testing.T) {
	movies := make([]models.Movie, 25)
	for i := range movies {
		movies[i] = movie(fmt.Sprintf("Movie %02d", i), fmt.Sprintf("genre%d shared", i%5), "en", "2000-01-01")
	}
	src := newMemorySource(movies...)

	cfg := DefaultConfig()
	e := newTestEngine(t, cfg, src)
	got, err := e.RecommendSimilarTo(context.Background(), "Movie 07")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != cfg.Limit {
		t.Fatalf("len = %d, want %d", len(got), cfg.Limit)
	}
	if slices.Contains(titles(got), "Movie 07") {
		t.Error("query movie returned as its own recommendation")
	}

	small := newTestEngine(t, nil, scenarioSource())
	got, err = small.RecommendSimilarTo(context.Background(), "C")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want corpus size - 1 = 2", len(got))
	}
}

func TestEngine_DuplicateTitleFirstMatchWins(t *testing.T) {
	src := newMemorySource(
		movie("Heat", "crime", "en", "1995-12-15"),
		movie("Heat", "drama", "fr", "1986-01-01"),
		movie("Ronin", "crime", "en", "1998-09-25"),
	)
	e := newTestEngine(t, nil, src)

	details, err := e.GetItemDetails(context.Background(), "Heat")
	if err != nil {
		t.Fatal(err)
	}
	if details[models.ColumnOriginalLanguage] != "en" || details[models.ColumnGenres] != "crime" {
		t.Errorf("details = %v, want the first Heat row", details)
	}

	got, err := e.RecommendSimilarTo(context.Background(), "Heat")
	if err != nil {
		t.Fatal(err)
	}
	// The second Heat row is a different movie and may be recommended.
	names := titles(got)
	slices.Sort(names)
	if want := []string{"Heat", "Ronin"}; !slices.Equal(names, want) {
		t.Errorf("titles = %v, want %v", names, want)
	}
}

func TestEngine_DetailsIncludesEveryColumn(t *testing.T) {
	src := newMemorySource(models.NewMovie(map[string]string{
		models.ColumnTitle: "Sparse",
	}))
	e := newTestEngine(t, nil, src)

	details, err := e.GetItemDetails(context.Background(), "Sparse")
	if err != nil {
		t.Fatal(err)
	}
	for _, col := range testColumns {
		v, ok := details[col]
		if !ok {
			t.Errorf("column %q missing", col)
		}
		if col != models.ColumnTitle && v != "" {
			t.Errorf("column %q = %q, want empty", col, v)
		}
	}
}

func TestEngine_CriteriaValidation(t *testing.T) {
	e := newTestEngine(t, nil, scenarioSource())
	_, err := e.RecommendByCriteria(context.Background(), Criteria{
		Genres: []string{"drama"}, MinYear: intPtr(2020), MaxYear: intPtr(2000),
	})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("error = %v, want ErrInvalidRequest", err)
	}
}

func TestEngine_CriteriaLanguagesAndEmptyGenres(t *testing.T) {
	src := newMemorySource(
		movie("A", "action", "en", "2001-01-01"),
		movie("B", "drama", "fr", "2002-01-01"),
		movie("C", "drama", "en", "2003-01-01"),
	)
	e := newTestEngine(t, nil, src)

	got, err := e.RecommendByCriteria(context.Background(), Criteria{
		Genres: []string{"drama"}, Languages: []string{"FR"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"B"}; !slices.Equal(titles(got), want) {
		t.Errorf("titles = %v, want %v", titles(got), want)
	}

	got, err = e.RecommendByCriteria(context.Background(), Criteria{})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !slices.Equal(titles(got), want) {
		t.Errorf("empty genres titles = %v, want corpus order %v", titles(got), want)
	}
}

func TestEngine_ListTitles(t *testing.T) {
	e := newTestEngine(t, nil, scenarioSource())
	got, err := e.ListTitles(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !slices.Equal(got, want) {
		t.Errorf("ListTitles() = %v, want %v", got, want)
	}
}

func TestEngine_CorpusUnavailable(t *testing.T) {
	src := scenarioSource()
	src.fail(fmt.Errorf("%w: disk gone", ErrCorpusUnavailable))
	e := newTestEngine(t, nil, src)

	_, err := e.ListTitles(context.Background())
	if !errors.Is(err, ErrCorpusUnavailable) {
		t.Fatalf("error = %v, want ErrCorpusUnavailable", err)
	}
	if KindOf(err) != KindCorpusUnavailable {
		t.Errorf("KindOf = %v", KindOf(err))
	}
	if st := e.Status(); st.Ready || st.LastError == "" {
		t.Errorf("Status() = %+v, want not ready with last error", st)
	}
}

func TestEngine_PanicBecomesInternal(t *testing.T) {
	e := newTestEngine(t, nil, scenarioSource())
	err := e.run(context.Background(), "boom", func(*Snapshot) error {
		var m map[string]int
		m["x"] = 1
		return nil
	})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("error = %v, want ErrInternal", err)
	}
}

func TestEngine_RefitPerRequest(t *testing.T) {
	src := scenarioSource()
	cfg := DefaultConfig()
	cfg.RefitPerRequest = true
	e := newTestEngine(t, cfg, src)
	ctx := context.Background()

	if _, err := e.ListTitles(ctx); err != nil {
		t.Fatal(err)
	}
	src.set("v2", movie("Z", "horror", "en", "1980-01-01"))
	got, err := e.ListTitles(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []string{"Z"}) {
		t.Errorf("ListTitles() = %v, want [Z] from a fresh load", got)
	}
	if src.loads.Load() != 2 {
		t.Errorf("loads = %d, want 2", src.loads.Load())
	}
	st := e.Status()
	if st.Version != 0 || st.Items != 0 {
		t.Errorf("refit-per-request must not publish a snapshot: %+v", st)
	}
	if !e.Ready() || !st.Ready {
		t.Errorf("Ready() = %v, Status().Ready = %v; both want true in refit-per-request mode", e.Ready(), st.Ready)
	}
}

func TestEngine_RefreshPublishesNewSnapshot(t *testing.T) {
	src := scenarioSource()
	e := newTestEngine(t, nil, src)
	ctx := context.Background()

	if _, err := e.ListTitles(ctx); err != nil {
		t.Fatal(err)
	}
	v1 := e.Status().Version

	src.set("v2", movie("Z", "horror", "en", "1980-01-01"))
	if got, _ := e.ListTitles(ctx); len(got) != 3 {
		t.Fatalf("published snapshot changed without refresh: %v", got)
	}

	st, err := e.Refresh(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.Version != v1+1 || st.Items != 1 || st.Fingerprint != "v2" {
		t.Errorf("Status after refresh = %+v", st)
	}
}

func TestEngine_SimilarResultCache(t *testing.T) {
	src := scenarioSource()
	e := newTestEngine(t, nil, src)
	ctx := context.Background()

	first, err := e.RecommendSimilarTo(ctx, "A")
	if err != nil {
		t.Fatal(err)
	}
	first[0].Title = "mutated by caller"

	second, err := e.RecommendSimilarTo(ctx, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"B", "C"}; !slices.Equal(titles(second), want) {
		t.Errorf("cached titles = %v, want %v", titles(second), want)
	}
	if st := e.Status().Cache; st == nil || st.Hits != 1 || st.Misses != 1 {
		t.Fatalf("cache stats = %+v, want 1 hit and 1 miss", st)
	}

	src.set("v2",
		movie("A", "western", "en", "1990-01-01"),
		movie("Y", "western", "en", "1991-01-01"),
	)
	if _, err := e.Refresh(ctx); err != nil {
		t.Fatal(err)
	}
	got, err := e.RecommendSimilarTo(ctx, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Y"}; !slices.Equal(titles(got), want) {
		t.Errorf("titles after refresh = %v, want %v (stale cache entry served)", titles(got), want)
	}
}

func TestEngine_CacheDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CacheSize = 0
	e := newTestEngine(t, cfg, scenarioSource())

	for i := 0; i < 2; i++ {
		if _, err := e.RecommendSimilarTo(context.Background(), "A"); err != nil {
			t.Fatal(err)
		}
	}
	if e.Status().Cache != nil {
		t.Error("Status().Cache should be nil when caching is disabled")
	}
}

func TestSelfSimilarity(t *testing.T) {
	tests := []struct {
		name string
		v    SparseVector
		want float64
	}{
		{"zero vector", SparseVector{}, 0},
		{"unit vector", SparseVector{Indices: []int{0, 3}, Values: []float64{0.6, 0.8}}, 1},
		{"unnormalized", SparseVector{Indices: []int{1, 2, 5}, Values: []float64{3, 4, 12}}, 1},
		// Weights without matching indices inflate the norm but not the dot product.
		{"inconsistent weights", SparseVector{Indices: []int{0}, Values: []float64{1, 1}}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selfSimilarity(tt.v); math.Abs(got-tt.want) > selfSimilarityTolerance {
				t.Errorf("selfSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}
