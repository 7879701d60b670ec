// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/wardrobe/internal/config"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Limits contains result size limits.
	Limits LimitsConfig `json:"limits"`

	// DefaultPreset names the weights used when a request supplies none.
	// Default: "balanced".
	DefaultPreset string `json:"default_preset"`

	// Basic contains defaults for the unscored basic mode.
	Basic BasicConfig `json:"basic"`

	// Cache contains response caching parameters.
	Cache CacheConfig `json:"cache"`

	// Location is the zone used to derive "today". Nil means local time.
	Location *time.Location `json:"-"`
}

// LimitsConfig bounds the number of outfits returned per request.
type LimitsConfig struct {
	// DefaultLimit is used when a request has no limit.
	// Default: 5.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit caps any requested limit.
	// Default: 50.
	MaxLimit int `json:"max_limit"`
}

// BasicConfig holds defaults applied by the HTTP and CLI surfaces to basic mode.
type BasicConfig struct {
	MinRating     int  `json:"min_rating"`
	MinFormality  int  `json:"min_formality"`
	ExcludeRecent bool `json:"exclude_recent"`
	ExcludeDays   int  `json:"exclude_days"`
}

// ToRequest builds the default basic request.
func (b BasicConfig) ToRequest() BasicRequest {
	req := BasicRequest{MinRating: b.MinRating, MinFormality: b.MinFormality}
	if b.ExcludeRecent {
		req.ExcludeRecentDays = b.ExcludeDays
	}
	return req
}

// CacheConfig contains response caching parameters.
type CacheConfig struct {
	// Enabled turns on in-memory response caching.
	Enabled bool `json:"enabled"`

	// TTL is how long a cached response stays valid. Any ledger event
	// also clears the cache.
	// Default: 1m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries bounds the number of cached responses.
	// Default: 1000.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultLimit: 5,
			MaxLimit:     50,
		},
		DefaultPreset: PresetBalanced,
		Basic: BasicConfig{
			MinRating:     3,
			MinFormality:  3,
			ExcludeRecent: true,
			ExcludeDays:   2,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        time.Minute,
			MaxEntries: 1000,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Limits.DefaultLimit < 1 {
		return fmt.Errorf("limits.default_limit must be positive, got %d", c.Limits.DefaultLimit)
	}
	if c.Limits.MaxLimit < c.Limits.DefaultLimit {
		return fmt.Errorf("limits.max_limit must be >= limits.default_limit, got %d < %d",
			c.Limits.MaxLimit, c.Limits.DefaultLimit)
	}
	if _, err := WeightsForPreset(c.DefaultPreset); err != nil {
		return fmt.Errorf("default_preset: %w", err)
	}
	if c.Basic.MinRating < 0 || c.Basic.MinRating > 5 {
		return fmt.Errorf("basic.min_rating must be in [0, 5], got %d", c.Basic.MinRating)
	}
	if c.Basic.MinFormality < 0 || c.Basic.MinFormality > 5 {
		return fmt.Errorf("basic.min_formality must be in [0, 5], got %d", c.Basic.MinFormality)
	}
	if c.Basic.ExcludeDays < 0 {
		return fmt.Errorf("basic.exclude_days must be non-negative, got %d", c.Basic.ExcludeDays)
	}
	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigFromApp maps the application recommend section onto Config and
// validates the result.
func ConfigFromApp(cfg *config.RecommendConfig) (*Config, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", cfg.Timezone, err)
	}

	c := &Config{
		Limits: LimitsConfig{
			DefaultLimit: cfg.DefaultLimit,
			MaxLimit:     cfg.MaxLimit,
		},
		DefaultPreset: cfg.DefaultPreset,
		Basic: BasicConfig{
			MinRating:     cfg.BasicMinRating,
			MinFormality:  cfg.BasicMinFormality,
			ExcludeRecent: cfg.BasicExcludeRecent,
			ExcludeDays:   cfg.BasicExcludeDays,
		},
		Cache: CacheConfig{
			Enabled:    cfg.CacheEnabled,
			TTL:        cfg.CacheTTL,
			MaxEntries: cfg.CacheSize,
		},
		Location: loc,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
