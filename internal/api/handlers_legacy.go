// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/validation"
)

// Index rejects requests to the root path.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusForbidden, &legacyResponse{
		Status:  "forbidden",
		Message: "Why are you here?",
	})
}

// LegacyAllMovies handles POST /getAllMovies. The data field is the title
// list encoded as a JSON string, which is what existing clients parse.
func (h *Handler) LegacyAllMovies(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	titles, err := h.engine.ListTitles(ctx)
	if err != nil {
		respondLegacyEngineError(w, r, err)
		return
	}

	encoded, err := json.Marshal(titles)
	if err != nil {
		respondLegacyError(w, r, http.StatusInternalServerError, msgInternal, err)
		return
	}
	respondLegacy(w, r, string(encoded))
}

// LegacyRecommendMovie handles POST /recommendMovie {"movie": title}.
func (h *Handler) LegacyRecommendMovie(w http.ResponseWriter, r *http.Request) {
	var req TitleRequest
	if !decodeLegacy(w, r, &req) {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	movies, err := h.engine.RecommendSimilarTo(ctx, req.Movie)
	if err != nil {
		respondLegacyEngineError(w, r, err)
		return
	}
	respondLegacy(w, r, movies)
}

// LegacyMovieDetails handles POST /getMovieDetails {"movie": title}.
func (h *Handler) LegacyMovieDetails(w http.ResponseWriter, r *http.Request) {
	var req TitleRequest
	if !decodeLegacy(w, r, &req) {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	details, err := h.engine.GetItemDetails(ctx, req.Movie)
	if err != nil {
		respondLegacyEngineError(w, r, err)
		return
	}
	respondLegacy(w, r, details)
}

// LegacyMoviesByGenre handles POST /getMovieDetailsByGenre.
func (h *Handler) LegacyMoviesByGenre(w http.ResponseWriter, r *http.Request) {
	var req CriteriaRequest
	if !decodeLegacy(w, r, &req) {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	movies, err := h.engine.RecommendByCriteria(ctx, req.Criteria())
	if err != nil {
		respondLegacyEngineError(w, r, err)
		return
	}
	respondLegacy(w, r, movies)
}

// decodeLegacy decodes and validates a legacy body, writing the 400 itself.
func decodeLegacy(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := decodeJSON(w, r, dst); err != nil {
		respondLegacyError(w, r, http.StatusBadRequest, err.Error(), nil)
		return false
	}
	if verr := validation.ValidateStruct(dst); verr != nil {
		respondLegacyError(w, r, http.StatusBadRequest, verr.ToAPIError().Message, nil)
		return false
	}
	return true
}
