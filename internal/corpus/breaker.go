// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package corpus

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// BreakerSource wraps a Source with a circuit breaker so a persistently
// broken dataset fails fast instead of being re-read on every attempt.
//
// The breaker uses real time for its open timeout; tests that need to
// observe recovery must wait out Timeout.
type BreakerSource struct {
	inner Source
	cb    *gobreaker.CircuitBreaker[*Corpus]
	name  string
}

// BreakerSettings configures a BreakerSource.
type BreakerSettings struct {
	// MaxFailures is the number of consecutive load failures that opens the circuit.
	MaxFailures uint32

	// Timeout is how long the circuit stays open before a trial load is allowed.
	Timeout time.Duration
}

// NewBreakerSource wraps inner with a circuit breaker named "corpus-<inner.Name()>".
func NewBreakerSource(inner Source, settings BreakerSettings) *BreakerSource {
	if settings.MaxFailures == 0 {
		settings.MaxFailures = 3
	}
	if settings.Timeout <= 0 {
		settings.Timeout = 30 * time.Second
	}
	name := "corpus-" + inner.Name()

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[*Corpus](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1, // a single trial load in half-open state
		Timeout:     settings.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			trip := counts.ConsecutiveFailures >= settings.MaxFailures
			if trip {
				logging.Warn().
					Str("breaker", name).
					Uint32("consecutive_failures", counts.ConsecutiveFailures).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return trip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		// Cancellation is the caller giving up, not the dataset failing.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &BreakerSource{inner: inner, cb: cb, name: name}
}

// Name implements Source.
func (b *BreakerSource) Name() string {
	return b.inner.Name()
}

// Fingerprint implements Source. Fingerprints bypass the breaker so a
// changed file is still noticed while the circuit is open.
func (b *BreakerSource) Fingerprint(ctx context.Context) (string, error) {
	return b.inner.Fingerprint(ctx)
}

// Load implements Source.
func (b *BreakerSource) Load(ctx context.Context) (*Corpus, error) {
	c, err := b.cb.Execute(func() (*Corpus, error) {
		return b.inner.Load(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(b.cb.Counts().ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return c, nil
}

// State returns the breaker state as "closed", "half-open" or "open".
func (b *BreakerSource) State() string {
	return stateToString(b.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
