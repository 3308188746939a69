// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics:

	curl http://localhost:5000/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Recommendation Metrics:
  - recommend_requests_total{operation,outcome}
  - recommend_duration_seconds{operation}
  - recommend_fit_duration_seconds
  - recommend_vocabulary_terms{space}
  - recommend_snapshot_version

Corpus Metrics:
  - corpus_items
  - corpus_skipped_rows_total
  - corpus_loads_total{source,result}
  - corpus_load_duration_seconds{source}

Circuit Breaker Metrics:
  - circuit_breaker_state{name}
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}
*/
package metrics
