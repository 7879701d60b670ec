// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wardrobe/internal/config"
	"github.com/tomtom215/wardrobe/internal/metrics"
)

// ErrInvalidOutfit is returned when an outfit violates catalog rules.
var ErrInvalidOutfit = errors.New("invalid outfit")

// ErrInvalidItem is returned when an item violates catalog rules.
var ErrInvalidItem = errors.New("invalid item")

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DB wraps the SQL connection and provides data access methods.
type DB struct {
	conn    *sql.DB
	cfg     *config.DatabaseConfig
	dialect dialect
	logger  zerolog.Logger
	now     func() time.Time

	closeOnce sync.Once
	closeErr  error
}

// New opens the configured database and applies pending migrations.
func New(cfg *config.DatabaseConfig, logger zerolog.Logger) (*DB, error) {
	d, err := dialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	// Ensure parent directory exists for database file.
	// Use 0750 permissions (owner: rwx, group: rx, other: none) per gosec G301
	if cfg.Path != memoryPath {
		if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	conn, err := sql.Open(d.driverName(), d.dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{
		conn:    conn,
		cfg:     cfg,
		dialect: d,
		logger:  logger.With().Str("component", "database").Str("driver", cfg.Driver).Logger(),
		now:     time.Now,
	}

	db.configureConnectionPool()

	ctx, cancel := schemaContext()
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.migrate(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db.logger.Info().Str("path", cfg.Path).Msg("Database ready")
	return db, nil
}

// Close checkpoints and closes the database. It is safe to call Close
// multiple times.
func (db *DB) Close() error {
	db.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := db.Checkpoint(ctx); err != nil {
			db.logger.Warn().Err(err).Msg("Failed to checkpoint database before close")
		}
		cancel()
		db.closeErr = db.conn.Close()
	})
	return db.closeErr
}

// Checkpoint flushes the write-ahead log into the main database file.
func (db *DB) Checkpoint(ctx context.Context) error {
	_, err := db.conn.ExecContext(ctx, db.dialect.checkpointSQL())
	return err
}

// Ping verifies the database connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// Conn returns the underlying SQL database connection.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Driver returns the configured driver name.
func (db *DB) Driver() string {
	return db.cfg.Driver
}

// observe records one query in the DB metrics.
func observe(operation, table string, start time.Time, err error) {
	metrics.RecordDBQuery(operation, table, time.Since(start), err)
}

func closeQuietly(c io.Closer) {
	_ = c.Close() //nolint:errcheck // best-effort cleanup on an error path
}

// closeRows closes rows and keeps the first error.
func closeRows(rows *sql.Rows, errp *error) {
	if err := rows.Close(); err != nil && *errp == nil {
		*errp = err
	}
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
