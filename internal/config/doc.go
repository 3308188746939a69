// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package config provides centralized configuration management for Reelmatch.

Configuration is layered with Koanf v2:

 1. Defaults built from defaultConfig()
 2. An optional YAML file (config.yaml, /etc/reelmatch/config.yaml, or CONFIG_PATH)
 3. Environment variables, which always win

# Configuration Structure

  - ServerConfig: HTTP listener (host, port, timeouts)
  - CorpusConfig: movie dataset location, loader driver, refresh cadence, circuit breaker
  - RecommendConfig: result limit, feature attribute lists, tokenizer, refit mode
  - SecurityConfig: CORS origins and rate limiting
  - LoggingConfig: zerolog level, format and caller info

# Environment Variables

	HTTP_PORT=5000
	CORPUS_PATH=/data/finalDataSet.csv
	TITLES_PATH=/data/allmovies.csv
	CORPUS_DRIVER=csv            # csv or duckdb
	CORPUS_REFRESH_INTERVAL=1m   # 0 disables polling
	RECOMMEND_LIMIT=10
	RECOMMEND_REFIT_PER_REQUEST=false
	CORS_ORIGINS=*
	LOG_LEVEL=info

Comma-separated values are accepted for list settings such as CORS_ORIGINS
and RECOMMEND_SIMILARITY_FEATURES.

# Thread Safety

Config is immutable after Load() returns and safe for concurrent reads.
*/
package config
