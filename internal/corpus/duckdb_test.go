// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package corpus

import (
	"context"
	"errors"
	"maps"
	"path/filepath"
	"slices"
	"testing"
)

func TestDuckDBSource_Load(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DuckDB test in short mode")
	}

	path := writeFile(t, "finalDataSet.csv", `original_title,overview,original_language,release_date
Avatar,Pandora,en,2009-12-10
Spectre,NaN,en,
Amélie,Paris,fr,2001-04-25
`)
	titles := writeFile(t, "allmovies.csv", sampleTitlesCSV)

	c, err := NewDuckDBSource(path, titles, "Movie").Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if c.Movies[0].Title != "Avatar" || c.Movies[2].Title != "Amélie" {
		t.Errorf("row order not preserved: %q, %q", c.Movies[0].Title, c.Movies[2].Title)
	}
	if c.Movies[1].Overview != "" || c.Movies[1].ReleaseDate != "" {
		t.Errorf("missing values not sanitized: %+v", c.Movies[1])
	}
	if want := []string{"Avatar", "Spectre", "Amélie"}; !slices.Equal(c.Titles(), want) {
		t.Errorf("Titles() = %v, want %v", c.Titles(), want)
	}
}

func TestDuckDBSource_MatchesCSVSource(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DuckDB test in short mode")
	}

	tests := []struct {
		name        string
		content     string
		wantSkipped int
	}{
		{
			name: "anonymous index column and short row",
			content: `,original_title,overview,release_date
0,Alien,In space no one can hear you scream,1979-05-25
1,Broken,row
2,Heat,nan,1995-12-15
`,
			wantSkipped: 1,
		},
		{name: "quoted fields and duplicates", content: sampleCSV, wantSkipped: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "finalDataSet.csv", tt.content)
			ctx := context.Background()

			want, err := NewCSVSource(path, "", "").Load(ctx)
			if err != nil {
				t.Fatalf("csv Load() error = %v", err)
			}
			got, err := NewDuckDBSource(path, "", "").Load(ctx)
			if err != nil {
				t.Fatalf("duckdb Load() error = %v", err)
			}

			if !slices.Equal(got.Columns, want.Columns) {
				t.Errorf("Columns = %v, want %v", got.Columns, want.Columns)
			}
			if got.Columns[0] != "Unnamed: 0" {
				t.Errorf("Columns[0] = %q, want Unnamed: 0", got.Columns[0])
			}
			if got.SkippedRows != tt.wantSkipped || want.SkippedRows != tt.wantSkipped {
				t.Errorf("SkippedRows: duckdb %d, csv %d, want %d", got.SkippedRows, want.SkippedRows, tt.wantSkipped)
			}
			if !slices.Equal(got.Titles(), want.Titles()) {
				t.Fatalf("Titles() = %v, want %v", got.Titles(), want.Titles())
			}
			for i := range want.Movies {
				if !maps.Equal(got.Movies[i].Attributes, want.Movies[i].Attributes) {
					t.Errorf("row %d attributes = %v, want %v", i, got.Movies[i].Attributes, want.Movies[i].Attributes)
				}
			}
		})
	}
}

func TestDuckDBSource_MissingFile(t *testing.T) {
	src := NewDuckDBSource(filepath.Join(t.TempDir(), "missing.csv"), "", "")
	if _, err := src.Load(context.Background()); !errors.Is(err, ErrCorpusUnavailable) {
		t.Errorf("Load() error = %v, want ErrCorpusUnavailable", err)
	}
}

func TestQuoting(t *testing.T) {
	if got := quoteLiteral("/data/o'brien.csv"); got != "'/data/o''brien.csv'" {
		t.Errorf("quoteLiteral = %s", got)
	}
	if got := quoteIdent(`Mo"vie`); got != `"Mo""vie"` {
		t.Errorf("quoteIdent = %s", got)
	}
}
