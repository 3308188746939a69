// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"

	"github.com/tomtom215/reelmatch/internal/models"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Limit is the maximum number of movies returned by a recommendation.
	Limit int `json:"limit"`

	// SimilarityFeatures are the attributes composed for similar-movie queries.
	SimilarityFeatures []string `json:"similarity_features"`

	// CriteriaFeatures are the attributes composed for criteria queries.
	CriteriaFeatures []string `json:"criteria_features"`

	// TokenMinLength is the shortest token, in runes, kept by the tokenizer.
	TokenMinLength int `json:"token_min_length"`

	// RefitPerRequest rebuilds the corpus and vector spaces on every call
	// instead of sharing a published snapshot.
	RefitPerRequest bool `json:"refit_per_request"`

	// CacheSize bounds the similar-movie result cache. Zero disables it.
	// Ignored when RefitPerRequest is set.
	CacheSize int `json:"cache_size"`
}

// DefaultSimilarityFeatures lists the attributes composed for similar-movie queries.
var DefaultSimilarityFeatures = []string{
	models.ColumnGenres,
	models.ColumnKeywords,
	models.ColumnActor1,
	models.ColumnActor2,
	models.ColumnActor3,
	models.ColumnDirector,
	models.ColumnOriginalLanguage,
	models.ColumnTagline,
	models.ColumnTitle,
}

// DefaultCriteriaFeatures lists the attributes composed for criteria queries.
var DefaultCriteriaFeatures = []string{models.ColumnGenresList}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Limit:              10,
		SimilarityFeatures: append([]string(nil), DefaultSimilarityFeatures...),
		CriteriaFeatures:   append([]string(nil), DefaultCriteriaFeatures...),
		TokenMinLength:     2,
		RefitPerRequest:    false,
		CacheSize:          1024,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Limit < 1 {
		return fmt.Errorf("limit must be positive, got %d", c.Limit)
	}
	if len(c.SimilarityFeatures) == 0 {
		return fmt.Errorf("similarity_features must not be empty")
	}
	if len(c.CriteriaFeatures) == 0 {
		return fmt.Errorf("criteria_features must not be empty")
	}
	if c.TokenMinLength < 1 {
		return fmt.Errorf("token_min_length must be positive, got %d", c.TokenMinLength)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.SimilarityFeatures = append([]string(nil), c.SimilarityFeatures...)
	clone.CriteriaFeatures = append([]string(nil), c.CriteriaFeatures...)
	return &clone
}
