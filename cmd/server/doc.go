// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
Package main is the entry point for the wardrobe server.

The server records which outfit was worn on which day and recommends what to
wear next. It serves a REST API over SQLite or DuckDB storage.

# Application Architecture

Long-running components run under Suture v4 supervision:

	RootSupervisor ("wardrobe")
	├── DataSupervisor ("data-layer")
	│   └── Checkpoint service (periodic WAL flush)
	├── MessagingSupervisor ("messaging-layer")
	│   └── Cache invalidator (history events → recommendation cache)
	└── APISupervisor ("api-layer")
	    └── HTTP server (Chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment variables
 2. Logging: zerolog with JSON or console output
 3. Database: SQLite (modernc.org/sqlite) or DuckDB, migrations applied on open
 4. Recommendation engine: filter pipeline, scorers and response cache
 5. Event bus: Watermill GoChannel with a circuit-breaking publisher
 6. Worn-history ledger: publishes history events after each commit
 7. HTTP server: REST API, health probes and /metrics

# Configuration

Common environment variables:
  - HTTP_PORT, HTTP_HOST: listen address (default 0.0.0.0:8080)
  - DB_DRIVER, DB_PATH: storage driver and file
  - RECOMMEND_TIMEZONE: IANA zone deciding what "today" is
  - EVENTS_ENABLED: history event bus (default true)
  - LOG_LEVEL, LOG_FORMAT

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
in-flight requests for up to 10s, the event bus is closed and the database
is checkpointed and closed.

# Example Usage

	export DB_PATH=./data/wardrobe.db
	./wardrobe-server

	curl -X POST localhost:8080/api/v1/outfits/3/worn
	curl -X POST localhost:8080/api/v1/recommendations -d '{"preset":"freshness-first"}'
*/
package main
