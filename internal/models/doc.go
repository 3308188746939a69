// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package models defines data structures shared across Reelmatch.

Key Components:

  - Movie: One corpus row with typed feature fields and the full sanitized column map
  - MovieSummary: The {title, overview} projection returned by ranking endpoints
  - APIResponse: Standardized API response wrapper

Movie values are produced once per corpus load by the corpus package. Missing-value
markers are normalized to the empty string at that point, so consumers never need to
re-validate raw column values.

Release dates are kept as strings. ReleaseYear is the single place where a date is
interpreted; it returns ok=false for anything it cannot parse instead of failing.
*/
package models
