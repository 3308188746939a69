// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api provides the HTTP layer for Reelmatch.

The package decodes requests, calls the recommendation engine and encodes the
result. It knows nothing about TF-IDF; every route maps onto one engine
operation through the Recommender interface.

# Route Groups

Legacy routes keep the v0 wire contract so existing
frontends continue to work. They accept POST with a JSON body and answer with
{"status": "success", "data": ...} or {"status": "error", "message": ...}:

	GET  /                        403, the root is not an endpoint
	POST /getAllMovies            every title (data is a JSON-encoded string)
	POST /recommendMovie          {"movie": "Avatar"}
	POST /getMovieDetails         {"movie": "Avatar"}
	POST /getMovieDetailsByGenre  {"genres": [...], "languages": [...], "minYear": 2000, "maxYear": 2010}

Versioned routes use the models.APIResponse envelope with machine-readable
error codes:

	GET  /api/v1/movies
	GET  /api/v1/movies/{title}
	GET  /api/v1/movies/{title}/similar
	POST /api/v1/recommendations/criteria
	GET  /api/v1/status
	POST /api/v1/corpus/reload
	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /metrics

# Error Mapping

	ItemNotFound        404 ITEM_NOT_FOUND
	InvalidRequest      400 BAD_REQUEST
	validation failure  400 VALIDATION_ERROR
	CorpusUnavailable   503 CORPUS_UNAVAILABLE
	anything else       500 INTERNAL_ERROR (message is never the raw error)

# Middleware Stack

Applied globally in order: request ID with logging context, real IP, panic
recovery, CORS, Prometheus metrics and the performance monitor. Rate limiting
by client IP is applied per route group.
*/
package api
