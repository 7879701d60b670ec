// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/wardrobe/internal/config"
	"github.com/tomtom215/wardrobe/internal/models"
)

var testDrivers = []string{config.DriverSQLite, config.DriverDuckDB}

// setupTestDB opens a fresh database file under t.TempDir.
func setupTestDB(t *testing.T, driver string) *DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver:      driver,
		Path:        filepath.Join(t.TempDir(), "wardrobe-"+driver+".db"),
		BusyTimeout: 5 * time.Second,
		MaxMemory:   "256MB",
		Threads:     1,
	}
	db, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// forEachDriver runs fn once per supported driver.
func forEachDriver(t *testing.T, fn func(t *testing.T, db *DB)) {
	t.Helper()
	for _, driver := range testDrivers {
		t.Run(driver, func(t *testing.T) {
			fn(t, setupTestDB(t, driver))
		})
	}
}

func seedItem(t *testing.T, db *DB, category models.Category, season models.Season) models.Item {
	t.Helper()
	item := models.Item{Category: category, Name: string(category), Season: season}
	require.NoError(t, db.CreateItem(context.Background(), &item))
	return item
}

func seedOutfit(t *testing.T, db *DB, rating, formality int, items ...models.Item) models.Outfit {
	t.Helper()
	ids := make([]int64, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	outfit := models.Outfit{Rating: rating, FormalityLevel: formality}
	require.NoError(t, db.CreateOutfit(context.Background(), &outfit, ids))
	return outfit
}

func date(s string) models.Date {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
