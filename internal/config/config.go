// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package config

import "time"

// Config holds all application configuration loaded from defaults, an
// optional config file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Example - Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	db, err := database.New(&cfg.Database, logger)
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
	Events    EventsConfig    `koanf:"events"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// Supported database drivers.
const (
	DriverSQLite = "sqlite"
	DriverDuckDB = "duckdb"
)

// DatabaseConfig holds storage settings.
//
// Environment Variables:
//   - DB_DRIVER: sqlite or duckdb (default: sqlite)
//   - DB_PATH: database file, or :memory: (default: /data/wardrobe.db)
//   - DB_BUSY_TIMEOUT: SQLite busy timeout (default: 5s)
//   - DB_MAX_OPEN_CONNS: connection pool size, 0 picks the driver default
//   - DUCKDB_MAX_MEMORY / DUCKDB_THREADS: DuckDB tuning
//   - DB_CHECKPOINT_INTERVAL: WAL checkpoint period, 0 disables (default: 5m)
type DatabaseConfig struct {
	Driver       string        `koanf:"driver"`
	Path         string        `koanf:"path"`
	BusyTimeout  time.Duration `koanf:"busy_timeout"`
	MaxOpenConns int           `koanf:"max_open_conns"`
	MaxMemory    string        `koanf:"max_memory"` // duckdb only
	Threads      int           `koanf:"threads"`    // duckdb only, 0 = NumCPU

	// CheckpointInterval is how often the server flushes the WAL. 0 disables it.
	CheckpointInterval time.Duration `koanf:"checkpoint_interval"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	DefaultLimit  int           `koanf:"default_limit"`
	MaxLimit      int           `koanf:"max_limit"`
	DefaultPreset string        `koanf:"default_preset"`
	CacheEnabled  bool          `koanf:"cache_enabled"`
	CacheTTL      time.Duration `koanf:"cache_ttl"`
	CacheSize     int           `koanf:"cache_size"`

	// Timezone is an IANA zone name used to decide what "today" is.
	// Empty means the process local zone.
	Timezone string `koanf:"timezone"`

	// Basic mode defaults used when a request omits a parameter.
	BasicMinRating     int  `koanf:"basic_min_rating"`
	BasicMinFormality  int  `koanf:"basic_min_formality"`
	BasicExcludeRecent bool `koanf:"basic_exclude_recent"`
	BasicExcludeDays   int  `koanf:"basic_exclude_days"`
}

// Location resolves Timezone. An empty value returns time.Local.
func (r *RecommendConfig) Location() (*time.Location, error) {
	if r.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(r.Timezone)
}

// EventsConfig holds in-process event bus settings.
type EventsConfig struct {
	Enabled    bool `koanf:"enabled"`
	BufferSize int  `koanf:"buffer_size"`

	// Circuit breaker around publishing.
	FailureThreshold uint32        `koanf:"failure_threshold"`
	BreakerTimeout   time.Duration `koanf:"breaker_timeout"`
}

// SecurityConfig holds HTTP hardening settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}
