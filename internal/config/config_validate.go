// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that the configuration is well formed.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateEvents(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
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

func (c *Config) validateDatabase() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverDuckDB:
	default:
		return fmt.Errorf("DB_DRIVER must be one of: %s, %s", DriverSQLite, DriverDuckDB)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("DB_PATH is required")
	}
	if c.Database.BusyTimeout < 0 {
		return fmt.Errorf("DB_BUSY_TIMEOUT must not be negative")
	}
	if c.Database.CheckpointInterval < 0 {
		return fmt.Errorf("DB_CHECKPOINT_INTERVAL must not be negative")
	}
	if c.Database.MaxOpenConns < 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must not be negative")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	return nil
}

// validPresets mirrors the preset names understood by the recommendation engine.
var validPresets = map[string]bool{
	"balanced":        true,
	"freshness-first": true,
	"rating-first":    true,
}

func (c *Config) validateRecommend() error {
	r := &c.Recommend
	if r.DefaultLimit < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_LIMIT must be positive")
	}
	if r.MaxLimit < r.DefaultLimit {
		return fmt.Errorf("RECOMMEND_MAX_LIMIT must be >= RECOMMEND_DEFAULT_LIMIT")
	}
	if !validPresets[r.DefaultPreset] {
		return fmt.Errorf("RECOMMEND_DEFAULT_PRESET must be one of: balanced, freshness-first, rating-first")
	}
	if r.CacheEnabled && (r.CacheTTL <= 0 || r.CacheSize < 1) {
		return fmt.Errorf("RECOMMEND_CACHE_TTL and RECOMMEND_CACHE_SIZE must be positive when caching is enabled")
	}
	if _, err := r.Location(); err != nil {
		return fmt.Errorf("RECOMMEND_TIMEZONE %q is not a valid IANA zone: %w", r.Timezone, err)
	}
	if r.BasicMinRating < 0 || r.BasicMinRating > 5 {
		return fmt.Errorf("RECOMMEND_BASIC_MIN_RATING must be between 0 and 5")
	}
	if r.BasicMinFormality < 0 || r.BasicMinFormality > 5 {
		return fmt.Errorf("RECOMMEND_BASIC_MIN_FORMALITY must be between 0 and 5")
	}
	if r.BasicExcludeDays < 0 {
		return fmt.Errorf("RECOMMEND_BASIC_EXCLUDE_DAYS must not be negative")
	}
	return nil
}

func (c *Config) validateEvents() error {
	if !c.Events.Enabled {
		return nil
	}
	if c.Events.BufferSize < 0 {
		return fmt.Errorf("EVENTS_BUFFER_SIZE must not be negative")
	}
	if c.Events.FailureThreshold == 0 {
		return fmt.Errorf("EVENTS_FAILURE_THRESHOLD must be positive")
	}
	if c.Events.BreakerTimeout <= 0 {
		return fmt.Errorf("EVENTS_BREAKER_TIMEOUT must be positive")
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

func (c *Config) validateSecurity() error {
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

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fatal": true,
	"panic": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, fatal, panic")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console")
	}
	return nil
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
