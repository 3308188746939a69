// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/reelmatch/internal/middleware"
)

// Router wires the handler and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil middleware config selects the defaults.
func NewRouter(handler *Handler, cfg *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(cfg),
	}
}

// SetupChi builds the HTTP handler for every route.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.handler.perfMon.Middleware)

	r.NotFound(router.notFound)
	r.MethodNotAllowed(router.methodNotAllowed)

	// ========================
	// Legacy Endpoints
	// ========================
	r.Get("/", router.handler.Index)
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit("legacy"))

		r.With(middleware.Compression).Post("/getAllMovies", router.handler.LegacyAllMovies)
		r.Post("/recommendMovie", router.handler.LegacyRecommendMovie)
		r.Post("/getMovieDetails", router.handler.LegacyMovieDetails)
		r.Post("/getMovieDetailsByGenre", router.handler.LegacyMoviesByGenre)
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom("health", healthRateLimitRequests, healthRateLimitWindow))
		r.Use(APISecurityHeaders)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Versioned API
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit("api"))
		r.Use(APISecurityHeaders)

		r.With(middleware.Compression).Get("/movies", router.handler.ListMovies)
		r.Get("/movies/{title}", router.handler.MovieDetails)
		r.Get("/movies/{title}/similar", router.handler.SimilarMovies)
		r.Post("/recommendations/criteria", router.handler.RecommendByCriteria)

		r.Get("/status", router.handler.Status)
		r.Post("/corpus/reload", router.handler.ReloadCorpus)
	})

	// Prometheus scrapes are not rate limited.
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (router *Router) notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Looks like you are lost", nil)
}

func (router *Router) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
}
