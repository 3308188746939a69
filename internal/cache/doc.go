// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package cache provides a bounded, thread-safe LRU cache.
//
// The recommendation engine uses it to memoize similar-movie rankings. Keys
// carry the snapshot version, so entries computed against a replaced
// snapshot can never be served; they simply age out.
package cache
