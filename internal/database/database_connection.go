// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
database_connection.go - Driver Dialects and Connection Pool

SQLite (modernc.org/sqlite):
  - DSN pragmas: journal_mode(WAL), busy_timeout, foreign_keys(1)
  - _txlock=immediate: every transaction takes the write lock at BEGIN, so
    writers from other connections or processes wait out busy_timeout
    instead of failing on lock upgrade.
  - One open connection unless max_open_conns is set. Busy errors that
    outlive busy_timeout are retried by WithTx.

DuckDB (duckdb-go):
  - DSN options: access_mode, threads, max_memory
  - Pool sized by CPU count. Conflicting concurrent writes surface as
    transaction conflicts and are retried by WithTx.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "modernc.org/sqlite"

	"github.com/tomtom215/wardrobe/internal/config"
)

// memoryPath selects an in-memory database on either driver.
const memoryPath = ":memory:"

// dialect captures the differences between the supported drivers.
type dialect interface {
	driverName() string
	dsn(cfg *config.DatabaseConfig) string
	maxOpenConns(cfg *config.DatabaseConfig) int
	schema() []string
	checkpointSQL() string
}

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case config.DriverSQLite, "":
		return sqliteDialect{}, nil
	case config.DriverDuckDB:
		return duckdbDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

type sqliteDialect struct{}

func (sqliteDialect) driverName() string { return "sqlite" }

// modernc.org/sqlite uses _pragma=name(value) syntax.
// _txlock=immediate takes the write lock at BEGIN, where busy_timeout applies,
// instead of failing with SQLITE_BUSY when a read lock cannot be upgraded.
func (sqliteDialect) dsn(cfg *config.DatabaseConfig) string {
	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}
	return fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)&_txlock=immediate",
		cfg.Path, busy.Milliseconds())
}

func (sqliteDialect) maxOpenConns(cfg *config.DatabaseConfig) int {
	if cfg.MaxOpenConns > 0 && cfg.Path != memoryPath {
		return cfg.MaxOpenConns
	}
	// An in-memory database lives and dies with its only connection.
	return 1
}

func (sqliteDialect) checkpointSQL() string { return "PRAGMA wal_checkpoint(TRUNCATE)" }

type duckdbDialect struct{}

func (duckdbDialect) driverName() string { return "duckdb" }

func (duckdbDialect) dsn(cfg *config.DatabaseConfig) string {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "512MB"
	}
	path := cfg.Path
	if path == memoryPath {
		path = ""
	}
	// Disable auto-install/auto-load; no extensions are needed.
	return fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		path, threads, maxMemory)
}

func (duckdbDialect) maxOpenConns(cfg *config.DatabaseConfig) int {
	if cfg.MaxOpenConns > 0 {
		return cfg.MaxOpenConns
	}
	return runtime.NumCPU()
}

func (duckdbDialect) checkpointSQL() string { return "CHECKPOINT" }

// configureConnectionPool sets connection pool parameters
func (db *DB) configureConnectionPool() {
	db.conn.SetMaxOpenConns(db.dialect.maxOpenConns(db.cfg))
	db.conn.SetMaxIdleConns(db.dialect.maxOpenConns(db.cfg))
	db.conn.SetConnMaxLifetime(0) // Don't close connections
}

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// isDuplicateKeyError checks if the error is a unique constraint violation
// on either driver.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "Duplicate key") ||
		strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "violates unique constraint") ||
		strings.Contains(errStr, "violates primary key constraint")
}

// isTransactionConflict reports whether a transaction lost to a concurrent
// writer and can be retried: a DuckDB conflict, or SQLite still busy after
// busy_timeout (another process holding the write lock).
func isTransactionConflict(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Transaction conflict") ||
		strings.Contains(errStr, "Conflict on update") ||
		strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked")
}

// isTableNotFoundError checks if the error indicates a missing table.
func isTableNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "no such table") ||
		strings.Contains(errStr, "does not exist")
}
