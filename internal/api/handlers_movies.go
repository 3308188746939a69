// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/reelmatch/internal/validation"
)

// ListMovies handles GET /api/v1/movies.
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := h.requestContext(r)
	defer cancel()

	titles, err := h.engine.ListTitles(ctx)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondJSON(w, r, start, titles)
}

// MovieDetails handles GET /api/v1/movies/{title}.
func (h *Handler) MovieDetails(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, ok := titleFromPath(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	details, err := h.engine.GetItemDetails(ctx, req.Movie)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondJSON(w, r, start, details)
}

// SimilarMovies handles GET /api/v1/movies/{title}/similar.
func (h *Handler) SimilarMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, ok := titleFromPath(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	movies, err := h.engine.RecommendSimilarTo(ctx, req.Movie)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondJSON(w, r, start, movies)
}

// RecommendByCriteria handles POST /api/v1/recommendations/criteria.
func (h *Handler) RecommendByCriteria(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CriteriaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	movies, err := h.engine.RecommendByCriteria(ctx, req.Criteria())
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondJSON(w, r, start, movies)
}

// titleFromPath reads and validates the {title} URL parameter. chi routes on
// the raw path when the URL has one (an encoded slash, for example), in which
// case the parameter is still escaped.
func titleFromPath(w http.ResponseWriter, r *http.Request) (TitleRequest, bool) {
	title := chi.URLParam(r, "title")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(title); err == nil {
			title = unescaped
		}
	}

	req := TitleRequest{Movie: title}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return req, false
	}
	return req, true
}
