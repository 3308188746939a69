// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"strings"

	"github.com/tomtom215/reelmatch/internal/models"
)

// Compose joins the named attributes of m with single spaces, in order.
// Missing attributes contribute an empty string.
func Compose(m *models.Movie, attrs []string) string {
	var b strings.Builder
	for i, a := range attrs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.Field(a))
	}
	return b.String()
}

// ComposeAll composes every movie with the same attribute list.
func ComposeAll(movies []models.Movie, attrs []string) []string {
	texts := make([]string, len(movies))
	for i := range movies {
		texts[i] = Compose(&movies[i], attrs)
	}
	return texts
}
