// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package eventprocessor

import (
	"fmt"
	"time"

	"github.com/tomtom215/wardrobe/internal/config"
)

// Config holds bus, breaker and router settings.
type Config struct {
	// BufferSize is the output channel buffer of each subscription.
	BufferSize int64

	Breaker CircuitBreakerConfig

	// Router retry settings for failing handlers.
	CloseTimeout         time.Duration
	RetryMaxRetries      int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RetryMultiplier      float64
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	Name             string
	MaxRequests      uint32        // Allowed in half-open state
	Interval         time.Duration // Reset interval for counts
	Timeout          time.Duration // Time to stay open
	FailureThreshold uint32        // Failures before opening
}

// DefaultCircuitBreakerConfig returns production defaults.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          10 * time.Second,
		FailureThreshold: 5,
	}
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		BufferSize:           256,
		Breaker:              DefaultCircuitBreakerConfig("history-events"),
		CloseTimeout:         10 * time.Second,
		RetryMaxRetries:      3,
		RetryInitialInterval: 100 * time.Millisecond,
		RetryMaxInterval:     2 * time.Second,
		RetryMultiplier:      2.0,
	}
}

// ConfigFromApp maps the application events section onto Config.
//
//nolint:gocritic // hugeParam: called once at startup
func ConfigFromApp(cfg config.EventsConfig) Config {
	c := DefaultConfig()
	if cfg.BufferSize > 0 {
		c.BufferSize = int64(cfg.BufferSize)
	}
	if cfg.FailureThreshold > 0 {
		c.Breaker.FailureThreshold = cfg.FailureThreshold
	}
	if cfg.BreakerTimeout > 0 {
		c.Breaker.Timeout = cfg.BreakerTimeout
	}
	return c
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.BufferSize < 0 {
		return fmt.Errorf("%w: buffer size must be non-negative", ErrInvalidConfig)
	}
	if c.Breaker.Name == "" {
		return fmt.Errorf("%w: circuit breaker name is required", ErrInvalidConfig)
	}
	if c.Breaker.FailureThreshold == 0 {
		return fmt.Errorf("%w: failure threshold must be positive", ErrInvalidConfig)
	}
	if c.Breaker.Timeout <= 0 {
		return fmt.Errorf("%w: breaker timeout must be positive", ErrInvalidConfig)
	}
	if c.RetryMaxRetries < 0 {
		return fmt.Errorf("%w: retry count must be non-negative", ErrInvalidConfig)
	}
	return nil
}
