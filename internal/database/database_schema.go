// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
database_schema.go - Database Schema Management

Migrations are versioned and recorded in schema_meta. Each migration is a
list of statements executed one at a time, since not every driver accepts
multi-statement Exec.

Tables:
  - items: catalog items
  - outfits: outfits with derived worn_count and last_worn_date
  - outfit_items: ordered outfit membership
  - history: worn records, UNIQUE(outfit_id, worn_date)

Index Strategy:
  - history(worn_date) for range and month queries
  - history(outfit_id, worn_date) through the UNIQUE constraint
  - outfits(rating, formality_level) for candidate selection (sqlite)
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type migration struct {
	version    int
	statements []string
}

// migrate runs database migrations to ensure the schema is up to date.
func (db *DB) migrate(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_meta (
			version INTEGER PRIMARY KEY,
			applied_at_unix_ms BIGINT NOT NULL
		)`); err != nil {
		return fmt.Errorf("failed to create schema_meta: %w", err)
	}

	currentVersion := 0
	row := db.conn.QueryRowContext(ctx, `SELECT version FROM schema_meta ORDER BY version DESC LIMIT 1`)
	if err := row.Scan(&currentVersion); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows), isTableNotFoundError(err):
			currentVersion = 0
		default:
			return fmt.Errorf("failed to read schema version: %w", err)
		}
	}

	migrations := []migration{
		{version: 1, statements: db.dialect.schema()},
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}

		for _, stmt := range m.statements {
			if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration v%d failed: %s: %w", m.version, stmt, err)
			}
		}

		if _, err := db.conn.ExecContext(ctx,
			`INSERT INTO schema_meta (version, applied_at_unix_ms) VALUES (?, ?)`,
			m.version, toMillis(db.now())); err != nil {
			return fmt.Errorf("failed to record migration v%d: %w", m.version, err)
		}

		db.logger.Info().Int("version", m.version).Msg("Applied schema migration")
	}

	return nil
}

// SchemaVersion returns the latest applied migration version.
func (db *DB) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	err := db.conn.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_meta`).Scan(&v)
	return v, err
}

func (sqliteDialect) schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT '',
			season TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			created_at_ms INTEGER NOT NULL,
			updated_at_ms INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS outfits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL DEFAULT '',
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			formality_level INTEGER NOT NULL CHECK (formality_level BETWEEN 1 AND 5),
			memo TEXT NOT NULL DEFAULT '',
			worn_count INTEGER NOT NULL DEFAULT 0 CHECK (worn_count >= 0),
			last_worn_date TEXT,
			created_at_ms INTEGER NOT NULL,
			updated_at_ms INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS outfit_items (
			outfit_id INTEGER NOT NULL REFERENCES outfits(id) ON DELETE CASCADE,
			item_id INTEGER NOT NULL REFERENCES items(id),
			position INTEGER NOT NULL,
			PRIMARY KEY (outfit_id, item_id)
		)`,
		`CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			outfit_id INTEGER NOT NULL REFERENCES outfits(id) ON DELETE CASCADE,
			worn_date TEXT NOT NULL,
			created_at_ms INTEGER NOT NULL,
			UNIQUE (outfit_id, worn_date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_history_worn_date ON history(worn_date)`,
		`CREATE INDEX IF NOT EXISTS idx_outfits_rating_formality ON outfits(rating, formality_level)`,
		`CREATE INDEX IF NOT EXISTS idx_outfit_items_item ON outfit_items(item_id)`,
	}
}

// DuckDB checks foreign keys eagerly when a referenced row is updated, and
// outfits are updated on every wear, so referential checks live in the queries.
func (duckdbDialect) schema() []string {
	return []string{
		`CREATE SEQUENCE IF NOT EXISTS items_id_seq START 1`,
		`CREATE SEQUENCE IF NOT EXISTS outfits_id_seq START 1`,
		`CREATE SEQUENCE IF NOT EXISTS history_id_seq START 1`,
		`CREATE TABLE IF NOT EXISTS items (
			id BIGINT PRIMARY KEY DEFAULT nextval('items_id_seq'),
			category VARCHAR NOT NULL,
			name VARCHAR NOT NULL DEFAULT '',
			color VARCHAR NOT NULL DEFAULT '',
			season VARCHAR NOT NULL DEFAULT '',
			image_url VARCHAR NOT NULL DEFAULT '',
			created_at_ms BIGINT NOT NULL,
			updated_at_ms BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS outfits (
			id BIGINT PRIMARY KEY DEFAULT nextval('outfits_id_seq'),
			name VARCHAR NOT NULL DEFAULT '',
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			formality_level INTEGER NOT NULL CHECK (formality_level BETWEEN 1 AND 5),
			memo VARCHAR NOT NULL DEFAULT '',
			worn_count INTEGER NOT NULL DEFAULT 0 CHECK (worn_count >= 0),
			last_worn_date VARCHAR,
			created_at_ms BIGINT NOT NULL,
			updated_at_ms BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS outfit_items (
			outfit_id BIGINT NOT NULL,
			item_id BIGINT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (outfit_id, item_id)
		)`,
		`CREATE TABLE IF NOT EXISTS history (
			id BIGINT PRIMARY KEY DEFAULT nextval('history_id_seq'),
			outfit_id BIGINT NOT NULL,
			worn_date VARCHAR NOT NULL,
			created_at_ms BIGINT NOT NULL,
			UNIQUE (outfit_id, worn_date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_history_worn_date ON history(worn_date)`,
	}
}
