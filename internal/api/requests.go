// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// maxRequestBodyBytes bounds every JSON request body.
const maxRequestBodyBytes = 64 << 10

// TitleRequest names one movie by its original title.
type TitleRequest struct {
	Movie string `json:"movie" validate:"required,max=500,movietitle"`
}

// CriteriaRequest selects movies by genre, language and release year.
// Both year bounds are optional and independent.
type CriteriaRequest struct {
	Genres    []string `json:"genres" validate:"max=50,dive,max=100"`
	Languages []string `json:"languages" validate:"max=50,dive,omitempty,langcode"`
	MinYear   *int     `json:"minYear" validate:"omitempty,gte=1800,lte=3000"`
	MaxYear   *int     `json:"maxYear" validate:"omitempty,gte=1800,lte=3000"`
}

// Criteria converts the request into engine criteria.
func (c *CriteriaRequest) Criteria() recommend.Criteria {
	return recommend.Criteria{
		Genres:    trimAll(c.Genres),
		Languages: trimAll(c.Languages),
		MinYear:   c.MinYear,
		MaxYear:   c.MaxYear,
	}
}

// errEmptyBody is returned for a request without a JSON body.
var errEmptyBody = errors.New("request body is empty")

// decodeJSON decodes a single JSON value from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	dec := json.NewDecoder(body)

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return errEmptyBody
		case errors.As(err, &maxErr):
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		default:
			return fmt.Errorf("invalid JSON body: %w", err)
		}
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
