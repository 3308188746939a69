// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

func TestHealthLive(t *testing.T) {
	h := newStubServer(t, &stubRecommender{})
	rec := do(t, h, http.MethodGet, "/api/v1/health/live", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers missing")
	}
}

func TestHealthReady(t *testing.T) {
	tests := []struct {
		name       string
		stub       *stubRecommender
		wantStatus int
		wantBody   string
	}{
		{"not loaded", &stubRecommender{}, http.StatusServiceUnavailable, "not_ready"},
		{"loaded", &stubRecommender{ready: true, status: recommend.Status{Ready: true, Version: 3}}, http.StatusOK, "ready"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newStubServer(t, tt.stub), http.MethodGet, "/api/v1/health/ready", nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if body := decode[envelope](t, rec); body.Status != tt.wantBody {
				t.Errorf("body status = %q, want %q", body.Status, tt.wantBody)
			}
		})
	}
}

func TestStatusAndReload(t *testing.T) {
	h, engine := newTestServer(t)

	if rec := do(t, h, http.MethodGet, "/api/v1/movies", nil); rec.Code != http.StatusOK {
		t.Fatalf("warm-up status = %d", rec.Code)
	}

	rec := do(t, h, http.MethodGet, "/api/v1/status", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var st StatusResponse
	if err := json.Unmarshal(decode[envelope](t, rec).Data, &st); err != nil {
		t.Fatal(err)
	}
	if !st.Engine.Ready || st.Engine.Items != 6 || st.Engine.Source != "csv" || st.Engine.Version != 1 {
		t.Errorf("engine status = %+v", st.Engine)
	}
	if len(st.Endpoints) == 0 {
		t.Error("endpoint stats empty after a request")
	}

	rec = do(t, h, http.MethodPost, "/api/v1/corpus/reload", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("reload status = %d, body %s", rec.Code, rec.Body)
	}
	if got := engine.Status().Version; got != 2 {
		t.Errorf("version after reload = %d, want 2", got)
	}
}

func TestNotFoundRoute(t *testing.T) {
	h := newStubServer(t, &stubRecommender{})
	rec := do(t, h, http.MethodGet, "/does/not/exist", nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode[envelope](t, rec)
	if body.Error == nil || body.Error.Code != ErrCodeNotFound || body.Error.Message != "Looks like you are lost" {
		t.Errorf("error = %+v", body.Error)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newStubServer(t, &stubRecommender{})
	do(t, h, http.MethodGet, "/api/v1/health/live", nil)

	rec := do(t, h, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Error("metrics output missing api_requests_total")
	}
}
