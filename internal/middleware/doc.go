// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides HTTP middleware shared by the API router.

Every middleware has the standard func(http.Handler) http.Handler shape so it
can be passed directly to chi's Use and With.

# Available Middleware

  - RequestID: propagates or generates an X-Request-ID and seeds the logging
    context with request and correlation IDs
  - PrometheusMetrics: records request count, latency and in-flight gauges
    labelled by chi route pattern
  - Compression: gzip for clients that accept it, used on the large title
    list responses
  - PerformanceMonitor: sliding window of request latencies with per-route
    percentiles, reported by the status endpoint

# Ordering

RequestID should run first so every later middleware and handler can log with
the request ID. PrometheusMetrics should wrap the router's handlers so that
chi has resolved the route pattern by the time it records:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(perf.Middleware)
*/
package middleware
