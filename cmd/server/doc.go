// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package main is the entry point for the Reelmatch server.

Reelmatch serves content-based movie recommendations over HTTP. Each movie's
descriptive attributes are composed into a document, weighted with TF-IDF and
compared by cosine similarity, either against another movie or against a
free-form genre query narrowed by language and release year.

# Application Architecture

The server runs under Suture v4 process supervision:

	RootSupervisor ("reelmatch")
	├── DataSupervisor ("data-layer")
	│   └── Corpus refresh (fingerprint polling, snapshot publish)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog, bridged to slog for the supervisor event hook
 3. Corpus source: CSV or DuckDB reader behind a gobreaker circuit breaker
 4. Recommendation engine: snapshot store plus query engine
 5. Supervisor tree: refresh loop and HTTP server

# Configuration

Configuration is layered (highest priority wins):
  - Environment variables (HTTP_PORT, CORPUS_PATH, RECOMMEND_LIMIT, ...)
  - Config file (config.yaml, /etc/reelmatch/config.yaml, or CONFIG_PATH)
  - Built-in defaults

# Example Usage

	export CORPUS_PATH=./data/finalDataSet.csv
	export TITLES_PATH=./data/allmovies.csv
	export LOG_FORMAT=console
	./reelmatch

Querying:

	curl -s localhost:5000/api/v1/movies/Heat/similar
	curl -s -X POST localhost:5000/recommendMovie -d '{"movie":"Heat"}'

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests for up to SERVER_SHUTDOWN_TIMEOUT before the process exits.
*/
package main
