// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"cmp"
	"math"
	"slices"
)

// Scored pairs a corpus row with its similarity to a query.
type Scored struct {
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// Cosine returns the cosine similarity of a and b, clamped to [0, 1].
// A zero vector on either side yields 0.
func Cosine(a, b SparseVector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	s := a.Dot(b) / (na * nb)
	switch {
	case math.IsNaN(s) || s < 0:
		return 0
	case s > 1:
		return 1
	default:
		return s
	}
}

// Rank scores every corpus vector against query and orders the result by
// descending score. Equal scores keep corpus order.
func Rank(query SparseVector, corpus []SparseVector) []Scored {
	ranked := make([]Scored, len(corpus))
	for i, v := range corpus {
		ranked[i] = Scored{Index: i, Score: Cosine(query, v)}
	}
	slices.SortStableFunc(ranked, func(a, b Scored) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return ranked
}

// RankExcluding ranks like Rank and then removes row exclude.
func RankExcluding(query SparseVector, corpus []SparseVector, exclude int) []Scored {
	ranked := Rank(query, corpus)
	return slices.DeleteFunc(ranked, func(s Scored) bool {
		return s.Index == exclude
	})
}
