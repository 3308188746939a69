// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"github.com/tomtom215/reelmatch/internal/models"
)

// Summaries projects ranked rows to title/overview pairs.
func Summaries(ranked []Scored, movies []models.Movie) []models.MovieSummary {
	out := make([]models.MovieSummary, len(ranked))
	for i, s := range ranked {
		m := &movies[s.Index]
		out[i] = models.MovieSummary{Title: m.Title, Overview: m.Overview}
	}
	return out
}

// Details returns every column of m. Columns without a value map to "".
func Details(m *models.Movie, columns []string) map[string]string {
	out := make(map[string]string, len(columns))
	for _, c := range columns {
		out[c] = m.Field(c)
	}
	for k, v := range m.Attributes {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return out
}
