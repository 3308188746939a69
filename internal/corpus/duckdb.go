// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// DuckDBSource reads the movie dataset through an in-memory DuckDB instance
// using read_csv_auto. Every column is read as VARCHAR so values reach the
// engine exactly as they appear in the file.
type DuckDBSource struct {
	Path         string
	TitlesPath   string
	TitlesColumn string
}

// NewDuckDBSource creates a DuckDB-backed source.
func NewDuckDBSource(path, titlesPath, titlesColumn string) *DuckDBSource {
	return &DuckDBSource{Path: path, TitlesPath: titlesPath, TitlesColumn: titlesColumn}
}

// Name implements Source.
func (s *DuckDBSource) Name() string {
	return "duckdb"
}

// Fingerprint implements Source using file size and modification time.
func (s *DuckDBSource) Fingerprint(_ context.Context) (string, error) {
	return filesFingerprint(s.Path, s.TitlesPath)
}

// Load implements Source.
func (s *DuckDBSource) Load(ctx context.Context) (*Corpus, error) {
	start := time.Now()
	c, err := s.load(ctx)
	skipped := 0
	if c != nil {
		skipped = c.SkippedRows
	}
	metrics.RecordCorpusLoad(s.Name(), skipped, time.Since(start), err)
	return c, err
}

func (s *DuckDBSource) load(ctx context.Context) (*Corpus, error) {
	fingerprint, err := s.Fingerprint(ctx)
	if err != nil {
		return nil, err
	}

	// Autoload is disabled so a restricted network cannot stall the load.
	db, err := sql.Open("duckdb", ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false")
	if err != nil {
		return nil, fmt.Errorf("%w: opening duckdb: %v", ErrCorpusUnavailable, err)
	}
	defer db.Close()

	// Reject tables are temporary, so every query must share one connection.
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: opening duckdb connection: %v", ErrCorpusUnavailable, err)
	}
	defer conn.Close()

	header, rows, rejected, err := queryCSV(ctx, conn, s.Path, "*", "corpus_rejects")
	if err != nil {
		return nil, err
	}

	// DuckDB names anonymous columns "columnN"; the file's own header is
	// authoritative so both drivers expose the same column names.
	raw, err := readHeader(s.Path)
	if err != nil {
		return nil, err
	}
	if len(raw) == len(header) {
		header = raw
	}

	c, err := fromTable(header, rows, fingerprint)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	c.SkippedRows += rejected

	if s.TitlesPath != "" {
		_, titleRows, _, err := queryCSV(ctx, conn, s.TitlesPath, quoteIdent(s.TitlesColumn), "titles_rejects")
		if err != nil {
			return nil, err
		}
		titles := make([]string, 0, len(titleRows))
		for _, r := range titleRows {
			titles = append(titles, r[0])
		}
		c.WithTitles(sanitizeTitles(titles))
	}

	if c.SkippedRows > 0 {
		logging.Warn().
			Str("path", s.Path).
			Int("skipped_rows", c.SkippedRows).
			Msg("Skipped malformed corpus rows")
	}
	logging.Debug().
		Str("path", s.Path).
		Int("movies", c.Len()).
		Msg("Loaded corpus through DuckDB")
	return c, nil
}

// queryCSV selects the given projection from a CSV file. NULL cells come back
// as empty strings. Rows DuckDB cannot parse are stored in rejectsTable and
// their count is returned.
func queryCSV(ctx context.Context, conn *sql.Conn, path, projection, rejectsTable string) ([]string, [][]string, int, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM read_csv_auto(%s, header=true, all_varchar=true, store_rejects=true, rejects_table=%s, rejects_scan=%s)",
		projection, quoteLiteral(path), quoteLiteral(rejectsTable), quoteLiteral(rejectsTable+"_scan"))

	rs, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("%w: reading %s: %v", ErrCorpusUnavailable, path, err)
	}
	defer rs.Close()

	header, err := rs.Columns()
	if err != nil {
		return nil, nil, 0, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}

	var rows [][]string
	cells := make([]sql.NullString, len(header))
	dest := make([]interface{}, len(header))
	for i := range cells {
		dest[i] = &cells[i]
	}
	for rs.Next() {
		if err := rs.Scan(dest...); err != nil {
			return nil, nil, 0, fmt.Errorf("%w: scanning %s: %v", ErrCorpusUnavailable, path, err)
		}
		row := make([]string, len(cells))
		for i, c := range cells {
			if c.Valid {
				row[i] = c.String
			}
		}
		rows = append(rows, row)
	}
	if err := rs.Err(); err != nil {
		return nil, nil, 0, fmt.Errorf("%w: reading %s: %v", ErrCorpusUnavailable, path, err)
	}
	if err := rs.Close(); err != nil {
		return nil, nil, 0, fmt.Errorf("%w: reading %s: %v", ErrCorpusUnavailable, path, err)
	}

	// One malformed line can report several errors.
	var rejected int
	countQuery := fmt.Sprintf("SELECT count(DISTINCT line) FROM %s", quoteIdent(rejectsTable))
	if err := conn.QueryRowContext(ctx, countQuery).Scan(&rejected); err != nil {
		return nil, nil, 0, fmt.Errorf("%w: counting rejected rows of %s: %v", ErrCorpusUnavailable, path, err)
	}
	return header, rows, rejected, nil
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
