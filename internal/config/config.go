// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Example - Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	addr := cfg.Server.Address()
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Corpus    CorpusConfig    `koanf:"corpus"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Address returns the host:port listen address.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CorpusConfig describes where the movie dataset lives and how it is loaded.
//
// Environment Variables:
//   - CORPUS_PATH: path to the movie dataset CSV (default: finalDataSet.csv)
//   - TITLES_PATH: optional separate title list CSV (default: "" - use corpus titles)
//   - TITLES_COLUMN: column holding titles in TITLES_PATH (default: Movie)
//   - CORPUS_DRIVER: csv or duckdb (default: csv)
//   - CORPUS_REFRESH_INTERVAL: fingerprint poll interval, 0 disables (default: 1m)
//   - CORPUS_LOAD_ON_STARTUP: fit the first snapshot at startup (default: true)
//   - CORPUS_BREAKER_MAX_FAILURES: consecutive load failures before the circuit opens (default: 3)
//   - CORPUS_BREAKER_TIMEOUT: how long the circuit stays open (default: 30s)
type CorpusConfig struct {
	Path               string        `koanf:"path"`
	TitlesPath         string        `koanf:"titles_path"`
	TitlesColumn       string        `koanf:"titles_column"`
	Driver             string        `koanf:"driver"`
	RefreshInterval    time.Duration `koanf:"refresh_interval"`
	LoadOnStartup      bool          `koanf:"load_on_startup"`
	BreakerMaxFailures uint32        `koanf:"breaker_max_failures"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout"`
}

// RecommendConfig holds engine tuning.
//
// Environment Variables:
//   - RECOMMEND_LIMIT: maximum results per query (default: 10)
//   - RECOMMEND_SIMILARITY_FEATURES: attributes composed for similar-movie queries
//   - RECOMMEND_CRITERIA_FEATURES: attributes composed for criteria queries (default: genresLs)
//   - RECOMMEND_TOKEN_MIN_LENGTH: shortest token kept by the tokenizer (default: 2)
//   - RECOMMEND_REFIT_PER_REQUEST: rebuild the vector space on every request (default: false)
//   - RECOMMEND_CACHE_SIZE: similar-movie results kept in memory, 0 disables (default: 1024)
type RecommendConfig struct {
	Limit              int      `koanf:"limit"`
	SimilarityFeatures []string `koanf:"similarity_features"`
	CriteriaFeatures   []string `koanf:"criteria_features"`
	TokenMinLength     int      `koanf:"token_min_length"`
	RefitPerRequest    bool     `koanf:"refit_per_request"`
	CacheSize          int      `koanf:"cache_size"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from all layers and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
