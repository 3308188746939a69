// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package corpus

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/reelmatch/internal/models"
)

// ErrCorpusUnavailable is returned when the dataset cannot be read or lacks
// the columns the engine needs.
var ErrCorpusUnavailable = errors.New("corpus unavailable")

// Source loads corpus snapshots from a backing store.
type Source interface {
	// Load reads the full dataset.
	Load(ctx context.Context) (*Corpus, error)

	// Fingerprint returns a value that changes whenever the backing data changes.
	Fingerprint(ctx context.Context) (string, error)

	// Name identifies the source in logs and metrics.
	Name() string
}

// Corpus is an immutable, fully loaded movie table.
type Corpus struct {
	Movies      []models.Movie
	Columns     []string
	SkippedRows int
	Fingerprint string
	LoadedAt    time.Time

	titles []string
	index  map[string]int
}

// New builds a Corpus from already sanitized movies. The column list must
// contain the title column.
func New(columns []string, movies []models.Movie, skipped int, fingerprint string) (*Corpus, error) {
	hasTitle := false
	for _, c := range columns {
		if c == models.ColumnTitle {
			hasTitle = true
			break
		}
	}
	if !hasTitle {
		return nil, fmt.Errorf("%w: missing required column %q", ErrCorpusUnavailable, models.ColumnTitle)
	}

	index := make(map[string]int, len(movies))
	for i := range movies {
		// First matching row wins for duplicate titles.
		if _, seen := index[movies[i].Title]; !seen {
			index[movies[i].Title] = i
		}
	}

	return &Corpus{
		Movies:      movies,
		Columns:     columns,
		SkippedRows: skipped,
		Fingerprint: fingerprint,
		LoadedAt:    time.Now(),
		index:       index,
	}, nil
}

// Len returns the number of movies.
func (c *Corpus) Len() int {
	return len(c.Movies)
}

// IndexOf returns the row of the first movie whose title matches exactly.
func (c *Corpus) IndexOf(title string) (int, bool) {
	i, ok := c.index[title]
	return i, ok
}

// Titles returns the title list: the separately loaded list when one was
// configured, otherwise every movie title in row order.
func (c *Corpus) Titles() []string {
	if c.titles != nil {
		out := make([]string, len(c.titles))
		copy(out, c.titles)
		return out
	}
	out := make([]string, len(c.Movies))
	for i := range c.Movies {
		out[i] = c.Movies[i].Title
	}
	return out
}

// WithTitles attaches a separately loaded title list.
func (c *Corpus) WithTitles(titles []string) {
	if titles == nil {
		titles = []string{}
	}
	c.titles = titles
}

// fromTable turns a header and raw rows into a Corpus. Rows whose field count
// does not match the header are skipped and counted.
func fromTable(header []string, rows [][]string, fingerprint string) (*Corpus, error) {
	columns := normalizeHeader(header)

	movies := make([]models.Movie, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		if len(row) != len(columns) {
			skipped++
			continue
		}
		movies = append(movies, movieFromRow(columns, row))
	}

	return New(columns, movies, skipped, fingerprint)
}

// normalizeHeader strips a UTF-8 BOM and names anonymous columns the way
// pandas does ("Unnamed: <position>"). Duplicate names keep their first
// occurrence; later duplicates get a ".<n>" suffix.
func normalizeHeader(header []string) []string {
	columns := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		columns[i] = name
	}
	return columns
}

func movieFromRow(columns, row []string) models.Movie {
	attrs := make(map[string]string, len(columns))
	for i, col := range columns {
		v := row[i]
		if models.IsMissingValue(v) {
			v = ""
		}
		attrs[col] = v
	}
	return models.NewMovie(attrs)
}

// sanitizeTitles drops missing entries from a title list.
func sanitizeTitles(raw []string) []string {
	titles := make([]string, 0, len(raw))
	for _, t := range raw {
		if models.IsMissingValue(t) {
			continue
		}
		titles = append(titles, t)
	}
	return titles
}
