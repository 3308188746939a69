// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"strings"

	"github.com/tomtom215/reelmatch/internal/models"
)

// Criteria describes a by-criteria query.
type Criteria struct {
	Genres    []string `json:"genres"`
	Languages []string `json:"languages"`
	MinYear   *int     `json:"min_year,omitempty"`
	MaxYear   *int     `json:"max_year,omitempty"`
}

// Query returns the text transformed into the criteria space.
func (c Criteria) Query() string {
	return strings.Join(c.Genres, " ")
}

// Predicate accepts movies by release year and language.
//
// A movie whose release date is missing or does not start with an integer
// year is never accepted. Each year bound is optional on its own; an empty
// language set accepts every language.
type Predicate struct {
	MinYear   *int
	MaxYear   *int
	languages map[string]struct{}
}

// NewPredicate builds a predicate. Languages compare case-insensitively.
func NewPredicate(languages []string, minYear, maxYear *int) Predicate {
	p := Predicate{MinYear: minYear, MaxYear: maxYear}
	for _, l := range languages {
		l = strings.ToLower(strings.TrimSpace(l))
		if l == "" {
			continue
		}
		if p.languages == nil {
			p.languages = make(map[string]struct{}, len(languages))
		}
		p.languages[l] = struct{}{}
	}
	return p
}

// Accept reports whether m passes every active constraint.
func (p Predicate) Accept(m *models.Movie) bool {
	year, ok := models.ReleaseYear(m.ReleaseDate)
	if !ok {
		return false
	}
	if p.MinYear != nil && year < *p.MinYear {
		return false
	}
	if p.MaxYear != nil && year > *p.MaxYear {
		return false
	}
	if len(p.languages) > 0 {
		if _, ok := p.languages[strings.ToLower(strings.TrimSpace(m.OriginalLanguage))]; !ok {
			return false
		}
	}
	return true
}

// Filter walks ranked in order and keeps candidates accepted by p, stopping
// as soon as limit candidates are kept.
func Filter(ranked []Scored, movies []models.Movie, p Predicate, limit int) []Scored {
	out := make([]Scored, 0, min(limit, len(ranked)))
	for _, s := range ranked {
		if len(out) >= limit {
			break
		}
		if p.Accept(&movies[s.Index]) {
			out = append(out, s)
		}
	}
	return out
}
