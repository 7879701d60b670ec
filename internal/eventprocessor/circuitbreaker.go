// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package eventprocessor

import (
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/wardrobe/internal/metrics"
)

// NewCircuitBreaker creates a circuit breaker that reports state changes to
// the logger and the circuit breaker metrics.
func NewCircuitBreaker(cfg CircuitBreakerConfig, logger zerolog.Logger) *gobreaker.CircuitBreaker[interface{}] {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String(), stateValue(to))
		},
	}

	metrics.RecordCircuitBreakerTransition(cfg.Name, "init", gobreaker.StateClosed.String(), metrics.CircuitClosed)
	return gobreaker.NewCircuitBreaker[interface{}](settings)
}

// CircuitBreakerState converts the breaker state to a string for monitoring.
func CircuitBreakerState(cb *gobreaker.CircuitBreaker[interface{}]) string {
	return cb.State().String()
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return metrics.CircuitHalfOpen
	case gobreaker.StateOpen:
		return metrics.CircuitOpen
	default:
		return metrics.CircuitClosed
	}
}
