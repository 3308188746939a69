// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package corpus

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// CSVSource reads the movie dataset from a CSV file on disk.
type CSVSource struct {
	Path string

	// TitlesPath optionally points at a separate title list CSV.
	TitlesPath   string
	TitlesColumn string
}

// NewCSVSource creates a CSV-backed source.
func NewCSVSource(path, titlesPath, titlesColumn string) *CSVSource {
	return &CSVSource{Path: path, TitlesPath: titlesPath, TitlesColumn: titlesColumn}
}

// Name implements Source.
func (s *CSVSource) Name() string {
	return "csv"
}

// Fingerprint implements Source using file size and modification time.
func (s *CSVSource) Fingerprint(_ context.Context) (string, error) {
	return filesFingerprint(s.Path, s.TitlesPath)
}

// Load implements Source.
func (s *CSVSource) Load(ctx context.Context) (*Corpus, error) {
	start := time.Now()
	c, err := s.load(ctx)
	skipped := 0
	if c != nil {
		skipped = c.SkippedRows
	}
	metrics.RecordCorpusLoad(s.Name(), skipped, time.Since(start), err)
	return c, err
}

func (s *CSVSource) load(ctx context.Context) (*Corpus, error) {
	fingerprint, err := s.Fingerprint(ctx)
	if err != nil {
		return nil, err
	}

	header, rows, skipped, err := readCSV(ctx, s.Path)
	if err != nil {
		return nil, err
	}

	c, err := fromTable(header, rows, fingerprint)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	c.SkippedRows += skipped

	if s.TitlesPath != "" {
		titles, err := LoadTitles(ctx, s.TitlesPath, s.TitlesColumn)
		if err != nil {
			return nil, err
		}
		c.WithTitles(titles)
	}

	if c.SkippedRows > 0 {
		logging.Warn().
			Str("path", s.Path).
			Int("skipped_rows", c.SkippedRows).
			Msg("Skipped malformed corpus rows")
	}
	return c, nil
}

// readCSV returns the header and every parseable record. Records the parser
// rejects are counted rather than failing the read.
func readCSV(ctx context.Context, path string) (header []string, rows [][]string, skipped int, err error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, nil, 0, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}
	defer f.Close()

	var r *csv.Reader
	r, header, err = newCSVReader(f, path)
	if err != nil {
		return nil, nil, 0, err
	}

	for n := 0; ; n++ {
		if n%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, 0, err
			}
		}
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			skipped++
			continue
		}
		if err != nil {
			return nil, nil, 0, fmt.Errorf("%w: reading %s: %v", ErrCorpusUnavailable, path, err)
		}
		rows = append(rows, record)
	}

	return header, rows, skipped, nil
}

// readHeader returns the raw header record of a CSV file.
func readHeader(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}
	defer f.Close()

	_, header, err := newCSVReader(f, path)
	return header, err
}

// newCSVReader configures a lenient reader and consumes the header record.
func newCSVReader(f io.Reader, path string) (*csv.Reader, []string, error) {
	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%w: %s is empty", ErrCorpusUnavailable, path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading header of %s: %v", ErrCorpusUnavailable, path, err)
	}
	return r, header, nil
}

// LoadTitles reads one column of a CSV file as a title list. Missing values
// are dropped.
func LoadTitles(ctx context.Context, path, column string) ([]string, error) {
	header, rows, _, err := readCSV(ctx, path)
	if err != nil {
		return nil, err
	}

	col := -1
	for i, name := range normalizeHeader(header) {
		if name == column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("%w: %s has no column %q", ErrCorpusUnavailable, path, column)
	}

	raw := make([]string, 0, len(rows))
	for _, row := range rows {
		if col < len(row) {
			raw = append(raw, row[col])
		}
	}
	return sanitizeTitles(raw), nil
}

// filesFingerprint combines size and modification time of each non-empty path.
func filesFingerprint(paths ...string) (string, error) {
	parts := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
		}
		parts = append(parts, fmt.Sprintf("%d-%d", info.Size(), info.ModTime().UnixNano()))
	}
	return strings.Join(parts, "/"), nil
}
