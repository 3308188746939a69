// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package models

import (
	"strconv"
	"strings"
)

// Column names of the movie dataset.
const (
	ColumnTitle            = "original_title"
	ColumnOverview         = "overview"
	ColumnGenres           = "genres"
	ColumnKeywords         = "keywords"
	ColumnActor1           = "actor_1"
	ColumnActor2           = "actor_2"
	ColumnActor3           = "actor_3"
	ColumnDirector         = "director"
	ColumnOriginalLanguage = "original_language"
	ColumnTagline          = "tagline"
	ColumnReleaseDate      = "release_date"
	ColumnGenresList       = "genresLs"
)

// Movie is one row of the movie corpus.
//
// The typed fields cover every column the recommendation engine reads. Attributes
// holds every column of the source row (including the typed ones) so the full-detail
// lookup can return the record exactly as loaded.
type Movie struct {
	Title            string `json:"title"`
	Overview         string `json:"overview"`
	Genres           string `json:"genres"`
	Keywords         string `json:"keywords"`
	Actor1           string `json:"actor_1"`
	Actor2           string `json:"actor_2"`
	Actor3           string `json:"actor_3"`
	Director         string `json:"director"`
	OriginalLanguage string `json:"original_language"`
	Tagline          string `json:"tagline"`
	ReleaseDate      string `json:"release_date"`
	GenresList       string `json:"genres_list"`

	Attributes map[string]string `json:"-"`
}

// Field returns the value of the named column, or "" when the movie has no such column.
func (m *Movie) Field(name string) string {
	switch name {
	case ColumnTitle:
		return m.Title
	case ColumnOverview:
		return m.Overview
	case ColumnGenres:
		return m.Genres
	case ColumnKeywords:
		return m.Keywords
	case ColumnActor1:
		return m.Actor1
	case ColumnActor2:
		return m.Actor2
	case ColumnActor3:
		return m.Actor3
	case ColumnDirector:
		return m.Director
	case ColumnOriginalLanguage:
		return m.OriginalLanguage
	case ColumnTagline:
		return m.Tagline
	case ColumnReleaseDate:
		return m.ReleaseDate
	case ColumnGenresList:
		return m.GenresList
	}
	return m.Attributes[name]
}

// NewMovie builds a Movie from a sanitized column map. The map is retained as Attributes.
func NewMovie(attrs map[string]string) Movie {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return Movie{
		Title:            attrs[ColumnTitle],
		Overview:         attrs[ColumnOverview],
		Genres:           attrs[ColumnGenres],
		Keywords:         attrs[ColumnKeywords],
		Actor1:           attrs[ColumnActor1],
		Actor2:           attrs[ColumnActor2],
		Actor3:           attrs[ColumnActor3],
		Director:         attrs[ColumnDirector],
		OriginalLanguage: attrs[ColumnOriginalLanguage],
		Tagline:          attrs[ColumnTagline],
		ReleaseDate:      attrs[ColumnReleaseDate],
		GenresList:       attrs[ColumnGenresList],
		Attributes:       attrs,
	}
}

// MovieSummary is the projection returned by ranking operations.
type MovieSummary struct {
	Title    string `json:"title"`
	Overview string `json:"overview"`
}

// ReleaseYear extracts the year from an ISO-like YYYY-MM-DD date.
// Only the segment before the first '-' is read; ok is false when it is not an integer.
func ReleaseYear(date string) (year int, ok bool) {
	date = strings.TrimSpace(date)
	if date == "" {
		return 0, false
	}
	head, _, _ := strings.Cut(date, "-")
	year, err := strconv.Atoi(head)
	if err != nil {
		return 0, false
	}
	return year, true
}

// IsMissingValue reports whether a raw dataset cell represents an absent value.
// The dataset was produced by pandas, which writes NaN cells as empty strings or "nan".
func IsMissingValue(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "nan", "NaN", "NAN", "null", "NULL", "None", "<NA>":
		return true
	}
	return false
}
