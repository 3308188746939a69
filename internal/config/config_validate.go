// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"strings"
	"time"
)

// Corpus loader drivers.
const (
	DriverCSV    = "csv"
	DriverDuckDB = "duckdb"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCorpus(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateCorpus validates dataset location and loader settings
func (c *Config) validateCorpus() error {
	if strings.TrimSpace(c.Corpus.Path) == "" {
		return fmt.Errorf("CORPUS_PATH is required")
	}
	switch c.Corpus.Driver {
	case DriverCSV, DriverDuckDB:
	default:
		return fmt.Errorf("CORPUS_DRIVER must be one of: %s, %s", DriverCSV, DriverDuckDB)
	}
	if c.Corpus.TitlesPath != "" && strings.TrimSpace(c.Corpus.TitlesColumn) == "" {
		return fmt.Errorf("TITLES_COLUMN is required when TITLES_PATH is set")
	}
	if c.Corpus.RefreshInterval < 0 {
		return fmt.Errorf("CORPUS_REFRESH_INTERVAL must not be negative")
	}
	if c.Corpus.BreakerMaxFailures == 0 {
		return fmt.Errorf("CORPUS_BREAKER_MAX_FAILURES must be at least 1")
	}
	if c.Corpus.BreakerTimeout <= 0 {
		return fmt.Errorf("CORPUS_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// validateRecommend validates engine tuning
func (c *Config) validateRecommend() error {
	if c.Recommend.Limit < 1 || c.Recommend.Limit > 1000 {
		return fmt.Errorf("RECOMMEND_LIMIT must be between 1 and 1000")
	}
	if len(c.Recommend.SimilarityFeatures) == 0 {
		return fmt.Errorf("RECOMMEND_SIMILARITY_FEATURES must list at least one attribute")
	}
	if len(c.Recommend.CriteriaFeatures) == 0 {
		return fmt.Errorf("RECOMMEND_CRITERIA_FEATURES must list at least one attribute")
	}
	if c.Recommend.TokenMinLength < 1 {
		return fmt.Errorf("RECOMMEND_TOKEN_MIN_LENGTH must be at least 1")
	}
	if c.Recommend.CacheSize < 0 {
		return fmt.Errorf("RECOMMEND_CACHE_SIZE must not be negative")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits validates rate limiting bounds when limiting is enabled
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS reports whether any configured origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
