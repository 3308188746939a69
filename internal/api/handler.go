// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/middleware"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Recommender is the engine surface the HTTP layer depends on.
// *recommend.Engine implements it.
type Recommender interface {
	ListTitles(ctx context.Context) ([]string, error)
	RecommendSimilarTo(ctx context.Context, title string) ([]models.MovieSummary, error)
	GetItemDetails(ctx context.Context, title string) (map[string]string, error)
	RecommendByCriteria(ctx context.Context, c recommend.Criteria) ([]models.MovieSummary, error)
	Refresh(ctx context.Context) (recommend.Status, error)
	Status() recommend.Status
	Ready() bool
}

// DefaultRequestTimeout bounds one engine call when no timeout is configured.
const DefaultRequestTimeout = 30 * time.Second

// performanceWindow is the number of recent requests kept for /status.
const performanceWindow = 1000

// Handler serves every API route.
type Handler struct {
	engine    Recommender
	perfMon   *middleware.PerformanceMonitor
	timeout   time.Duration
	startTime time.Time
}

// NewHandler creates a handler over engine. A zero timeout selects
// DefaultRequestTimeout.
func NewHandler(engine Recommender, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Handler{
		engine:    engine,
		perfMon:   middleware.NewPerformanceMonitor(performanceWindow, middleware.DefaultSlowRequestThreshold),
		timeout:   timeout,
		startTime: time.Now(),
	}
}

// PerformanceMonitor returns the monitor fed by the router.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}

func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}
