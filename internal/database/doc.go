// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
Package database persists the wardrobe catalog and worn history.

Two embedded drivers are supported and selected by config.DatabaseConfig.Driver:

  - sqlite (modernc.org/sqlite, pure Go): WAL journal, busy timeout and
    foreign keys are enabled through DSN pragmas, with a single connection
    so writers never contend on the file lock.
  - duckdb (github.com/duckdb/duckdb-go/v2): the same queries on a DuckDB
    file, with sequences instead of AUTOINCREMENT and application-level
    referential checks.

Dates are stored as YYYY-MM-DD text so lexical and calendar order agree on
both drivers. Timestamps are stored as unix milliseconds.

# Tables

  - items: catalog items (category, optional season)
  - outfits: rating, formality and the derived worn_count/last_worn_date
  - outfit_items: ordered outfit membership
  - history: one row per (outfit_id, worn_date), enforced by a UNIQUE index
  - schema_meta: applied migration versions

# Interfaces

DB implements recommend.OutfitSource for candidate queries and
ledger.Repository for transactional history mutations and history reads.
All queries are recorded through metrics.RecordDBQuery.

# Usage

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
	    return err
	}
	defer db.Close()

	l := ledger.New(db, logger)
	engine, err := recommend.NewEngine(db, recommend.DefaultConfig(), logger)
*/
package database
