// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"math"
	"slices"
)

// SparseVector holds non-zero weights keyed by vocabulary column.
// Indices are strictly increasing.
type SparseVector struct {
	Indices []int
	Values  []float64
}

// Norm returns the Euclidean length of v.
func (v SparseVector) Norm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Dot returns the inner product of v and o.
func (v SparseVector) Dot(o SparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(o.Indices) {
		switch {
		case v.Indices[i] == o.Indices[j]:
			sum += v.Values[i] * o.Values[j]
			i++
			j++
		case v.Indices[i] < o.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// NNZ returns the number of stored weights.
func (v SparseVector) NNZ() int {
	return len(v.Indices)
}

// FittedSpace is an immutable TF-IDF space: vocabulary, IDF weights and one
// vector per fitted document. Query vectors must come from Transform on the
// same space to be comparable with the document vectors.
type FittedSpace struct {
	tokenizer  Tokenizer
	vocabulary map[string]int
	idf        []float64
	vectors    []SparseVector
}

// Len returns the number of fitted documents.
func (s *FittedSpace) Len() int {
	if s == nil {
		return 0
	}
	return len(s.vectors)
}

// VocabularySize returns the number of distinct terms.
func (s *FittedSpace) VocabularySize() int {
	if s == nil {
		return 0
	}
	return len(s.idf)
}

// Vector returns the fitted vector of document i.
func (s *FittedSpace) Vector(i int) SparseVector {
	return s.vectors[i]
}

// Vectors returns all fitted document vectors in corpus order. Callers must
// not modify the result.
func (s *FittedSpace) Vectors() []SparseVector {
	return s.vectors
}

// Transform projects text into the space. Terms not seen at fit time are dropped.
func (s *FittedSpace) Transform(text string) (SparseVector, error) {
	if s == nil || s.vocabulary == nil {
		return SparseVector{}, &Error{Kind: KindInvalidSpaceState, Op: "transform"}
	}
	return s.weigh(s.tokenizer.Tokenize(text)), nil
}

// weigh turns tokens into an L2-normalized TF-IDF vector.
func (s *FittedSpace) weigh(tokens []string) SparseVector {
	counts := make(map[int]int, len(tokens))
	for _, tok := range tokens {
		if col, ok := s.vocabulary[tok]; ok {
			counts[col]++
		}
	}

	v := SparseVector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for col := range counts {
		v.Indices = append(v.Indices, col)
	}
	slices.Sort(v.Indices)

	for _, col := range v.Indices {
		v.Values = append(v.Values, float64(counts[col])*s.idf[col])
	}
	if norm := v.Norm(); norm > 0 {
		for i := range v.Values {
			v.Values[i] /= norm
		}
	}
	return v
}

// Vectorizer fits FittedSpaces. The zero value is unfitted.
type Vectorizer struct {
	Tokenizer Tokenizer
	space     *FittedSpace
}

// NewVectorizer creates an unfitted vectorizer.
func NewVectorizer(tok Tokenizer) *Vectorizer {
	return &Vectorizer{Tokenizer: tok}
}

// Fit builds the vocabulary and IDF weights from texts and vectorizes every
// text. An empty corpus, or one with no terms, yields a space whose vectors
// are all zero.
func (v *Vectorizer) Fit(texts []string) *FittedSpace {
	docs := make([][]string, len(texts))
	df := make(map[string]int)
	for i, text := range texts {
		docs[i] = v.Tokenizer.Tokenize(text)
		seen := make(map[string]struct{}, len(docs[i]))
		for _, tok := range docs[i] {
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	slices.Sort(terms)

	n := float64(len(texts))
	space := &FittedSpace{
		tokenizer:  v.Tokenizer,
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
		vectors:    make([]SparseVector, len(texts)),
	}
	for col, term := range terms {
		space.vocabulary[term] = col
		space.idf[col] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	for i, tokens := range docs {
		space.vectors[i] = space.weigh(tokens)
	}

	v.space = space
	return space
}

// Space returns the most recently fitted space, or nil.
func (v *Vectorizer) Space() *FittedSpace {
	return v.space
}

// Transform projects text into the most recently fitted space.
func (v *Vectorizer) Transform(text string) (SparseVector, error) {
	return v.space.Transform(text)
}
