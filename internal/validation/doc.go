// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package validation validates decoded API requests with go-playground/validator.

A single validator instance is shared by all handlers; it caches struct
metadata after the first use and is safe for concurrent use. Error field names
come from json tags, so a failure on MinYear is reported as "minYear", which
is what the client sent.

# Custom Tags

  - movietitle: non-blank, no control characters
  - langcode: two or three ASCII letters with an optional region suffix

# Usage

	type SimilarRequest struct {
	    Movie string `json:"movie" validate:"required,max=500,movietitle"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
	    return
	}
*/
package validation
