// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/corpus"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

const testMoviesCSV = `,original_title,overview,genres,keywords,original_language,release_date,genresLs
0,Alien,A crew meets a creature,Horror Science Fiction,space creature,en,1979-05-25,Horror Science Fiction
1,Aliens,The marines return,Action Horror Science Fiction,space creature marines,en,1986-07-18,Action Horror Science Fiction
2,Amélie,A Parisian waitress,Comedy Romance,paris,fr,2001-04-25,Comedy Romance
3,Heat,A thief and a detective,Action Crime Drama,heist,en,1995-12-15,Action Crime Drama
4,La Haine,Three friends in the banlieue,Crime Drama,,fr,not-a-date,Crime Drama
5,Ronin,Mercenaries chase a case,Action Crime Thriller,heist,en,1998-09-25,Action Crime Thriller
`

// newTestServer serves the full router over a real engine and CSV corpus.
func newTestServer(t *testing.T) (http.Handler, *recommend.Engine) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte(testMoviesCSV), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := recommend.DefaultConfig()
	store := recommend.NewStore(corpus.NewCSVSource(path, "", ""), cfg, zerolog.Nop())
	engine, err := recommend.NewEngine(cfg, store, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitDisabled = true
	return NewRouter(NewHandler(engine, 0), mw).SetupChi(), engine
}

// newStubServer serves the full router over a stub engine.
func newStubServer(t *testing.T, stub *stubRecommender) http.Handler {
	t.Helper()
	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitDisabled = true
	return NewRouter(NewHandler(stub, 0), mw).SetupChi()
}

func do(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// envelope decodes a models.APIResponse whose data is left raw.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

type legacyEnvelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return v
}

func summaryTitles(t *testing.T, raw json.RawMessage) []string {
	t.Helper()
	var items []models.MovieSummary
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("decode summaries %s: %v", raw, err)
	}
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

// stubRecommender returns canned results or a fixed error.
type stubRecommender struct {
	err      error
	status   recommend.Status
	ready    bool
	title    string
	criteria recommend.Criteria
}

func (s *stubRecommender) ListTitles(context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []string{"Heat"}, nil
}

func (s *stubRecommender) RecommendSimilarTo(context.Context, string) ([]models.MovieSummary, error) {
	return nil, s.err
}

func (s *stubRecommender) GetItemDetails(_ context.Context, title string) (map[string]string, error) {
	s.title = title
	if s.err != nil {
		return nil, s.err
	}
	return map[string]string{"original_title": title}, nil
}

func (s *stubRecommender) RecommendByCriteria(_ context.Context, c recommend.Criteria) ([]models.MovieSummary, error) {
	s.criteria = c
	return []models.MovieSummary{}, s.err
}

func (s *stubRecommender) Refresh(context.Context) (recommend.Status, error) {
	return s.status, s.err
}

func (s *stubRecommender) Status() recommend.Status { return s.status }

func (s *stubRecommender) Ready() bool { return s.ready }
