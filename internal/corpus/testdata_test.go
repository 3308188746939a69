// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleCSV = `,original_title,overview,genres,original_language,release_date,genresLs
0,Avatar,"In the 22nd century, a paraplegic Marine...",Action Adventure,en,2009-12-10,Action Adventure
1,Spectre,A cryptic message,Action Thriller,en,2015-10-26,Action Thriller
2,Broken,row with,too,few
3,Amélie,nan,Comedy Romance,fr,,Comedy Romance
4,Avatar,Duplicate title,Drama,en,2020-01-01,Drama
`

const sampleTitlesCSV = `Movie
Avatar
Spectre
nan
Amélie
`

// writeFile writes content under a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
