// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package corpus loads the movie dataset that the recommendation engine ranks.

A Corpus is an immutable snapshot of the item table: one models.Movie per
well-formed row, in file order. Row positions are only meaningful for the
lifetime of a single snapshot and must not be persisted.

# Sources

  - CSVSource reads the dataset with encoding/csv
  - DuckDBSource reads it with DuckDB's read_csv_auto
  - BreakerSource wraps either one in a sony/gobreaker circuit breaker

Every source reports failures to read or interpret the dataset as
ErrCorpusUnavailable. Individual malformed rows are skipped and counted in
Corpus.SkippedRows rather than failing the load.

# Missing Values

Cells holding a missing-value marker ("", "nan", "NaN", "null", "None", ...)
are normalized to the empty string once, at load time.

# Title List

The legacy title listing reads a separate CSV (allmovies.csv, column "Movie").
When a source is configured with a titles path, Corpus.Titles returns that
list; otherwise it returns every movie title in row order.
*/
package corpus
