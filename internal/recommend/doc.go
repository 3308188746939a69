// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package recommend implements content-based movie recommendations over a
TF-IDF vector space.

# Pipeline

	Corpus -> Compose -> FittedSpace -> Rank -> [Filter] -> Project

  - Compose joins a configured list of movie attributes into one text blob.
  - Vectorizer.Fit builds a TF-IDF space: lowercase tokens of at least two
    letters, digits or underscores; lexicographically ordered vocabulary;
    raw term counts; smooth IDF ln((1+n)/(1+df))+1; L2-normalized rows.
  - Rank scores every corpus vector against a query by cosine similarity
    and sorts descending with a stable tie-break on row order.
  - Filter scans the ranked list in order and stops after limit accepted
    candidates.
  - Summaries and Details project rows back to caller-facing records.

# Snapshots

A Store publishes immutable Snapshots (corpus plus its fitted spaces)
through an atomic pointer. Readers always see a complete snapshot; at most
one fit runs at a time. With Config.RefitPerRequest the Engine instead fits
a private snapshot for every call and never publishes it.

Similar-movie rankings are memoized in an LRU keyed by snapshot version and
title (Config.CacheSize). A new snapshot never sees an older one's entries.

# Errors

Engine operations return *Error values carrying a Kind. Use errors.Is with
ErrCorpusUnavailable, ErrItemNotFound, ErrInvalidSpaceState,
ErrInvalidRequest or ErrInternal. Panics inside an operation are recovered
and reported as ErrInternal.

# Thread Safety

Engine, Store, Snapshot and FittedSpace are safe for concurrent use.
A Vectorizer is not; it is only used while building a snapshot.
*/
package recommend
