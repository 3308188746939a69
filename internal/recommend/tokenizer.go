// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer splits text into lowercase terms. A term is a maximal run of
// Unicode letters, numbers or underscores at least MinLength runes long.
// "Sci-Fi" yields [sci fi]; "Spider-Man 2" yields [spider man].
type Tokenizer struct {
	MinLength int
}

// Tokenize returns the terms of text in order of appearance.
func (t Tokenizer) Tokenize(text string) []string {
	minLen := t.MinLength
	if minLen < 1 {
		minLen = 1
	}

	lower := strings.ToLower(text)
	tokens := make([]string, 0, len(lower)/6)
	start := -1
	for i, r := range lower {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = appendToken(tokens, lower[start:i], minLen)
			start = -1
		}
	}
	if start >= 0 {
		tokens = appendToken(tokens, lower[start:], minLen)
	}
	return tokens
}

func appendToken(tokens []string, tok string, minLen int) []string {
	if utf8.RuneCountInString(tok) < minLen {
		return tokens
	}
	return append(tokens, tok)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
