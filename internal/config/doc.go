// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
Package config loads and validates the wardrobe server configuration.

Configuration is layered with Koanf v2. Later layers win:

 1. Built-in defaults (structs provider)
 2. A YAML file from CONFIG_PATH, ./config.yaml or /etc/wardrobe/config.yaml
 3. Environment variables with an explicit name mapping

Only mapped environment variables are read, so unrelated variables never
leak into the configuration.

# Example config.yaml

	server:
	  port: 8080
	database:
	  driver: sqlite
	  path: /data/wardrobe.db
	recommend:
	  default_preset: freshness-first
	  timezone: Europe/Berlin
	events:
	  enabled: true

# Environment Variables

	HTTP_PORT, HTTP_HOST, HTTP_TIMEOUT, ENVIRONMENT
	DB_DRIVER, DB_PATH, DB_BUSY_TIMEOUT, DB_MAX_OPEN_CONNS
	DUCKDB_MAX_MEMORY, DUCKDB_THREADS
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
	RECOMMEND_DEFAULT_LIMIT, RECOMMEND_MAX_LIMIT, RECOMMEND_DEFAULT_PRESET
	RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_TTL, RECOMMEND_CACHE_SIZE
	RECOMMEND_TIMEZONE
	RECOMMEND_BASIC_MIN_RATING, RECOMMEND_BASIC_MIN_FORMALITY
	RECOMMEND_BASIC_EXCLUDE_RECENT, RECOMMEND_BASIC_EXCLUDE_DAYS
	EVENTS_ENABLED, EVENTS_BUFFER_SIZE
	EVENTS_FAILURE_THRESHOLD, EVENTS_BREAKER_TIMEOUT
	CORS_ORIGINS (comma separated), RATE_LIMIT_REQUESTS
	RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

# Thread Safety

A loaded Config is not mutated afterwards and may be shared freely.
*/
package config
