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
	"time"

	"github.com/tomtom215/wardrobe/internal/database/query"
	"github.com/tomtom215/wardrobe/internal/ledger"
	"github.com/tomtom215/wardrobe/internal/models"
)

const historyColumns = `id, outfit_id, worn_date, created_at_ms`

// newestFirst orders history by worn date, then insertion, both descending.
const newestFirst = `ORDER BY worn_date DESC, created_at_ms DESC, id DESC`

var _ ledger.Repository = (*DB)(nil)

// GetHistory returns one history record or ledger.ErrHistoryNotFound.
func (db *DB) GetHistory(ctx context.Context, historyID int64) (*models.HistoryRecord, error) {
	return getHistory(ctx, db.conn, historyID)
}

// ListHistory returns every history record, newest worn date first.
func (db *DB) ListHistory(ctx context.Context) ([]models.HistoryRecord, error) {
	return listHistory(ctx, db.conn, "", newestFirst)
}

// ListHistoryByOutfit returns the records of one outfit, newest first, or
// ledger.ErrOutfitNotFound when the outfit does not exist.
func (db *DB) ListHistoryByOutfit(ctx context.Context, outfitID int64) ([]models.HistoryRecord, error) {
	if _, err := findOutfitByID(ctx, db.conn, outfitID); err != nil {
		return nil, err
	}
	return listHistory(ctx, db.conn, "WHERE outfit_id = ?", newestFirst, outfitID)
}

// ListHistoryByDateRange returns records worn in [start, end], newest first.
func (db *DB) ListHistoryByDateRange(ctx context.Context, start, end models.Date) ([]models.HistoryRecord, error) {
	where, args := query.NewWhereBuilder().
		AddDateRange("worn_date", start.String(), end.String()).
		BuildWithPrefix()
	return listHistory(ctx, db.conn, where, newestFirst, args...)
}

// ListHistoryByMonth returns records worn in the given month, oldest first.
func (db *DB) ListHistoryByMonth(ctx context.Context, year, month int) ([]models.HistoryRecord, error) {
	first := models.NewDate(year, time.Month(month), 1)
	next := first.AddDays(32)
	next = models.NewDate(next.Year(), next.Month(), 1)

	return listHistory(ctx, db.conn,
		"WHERE worn_date >= ? AND worn_date < ?",
		"ORDER BY worn_date ASC, created_at_ms ASC, id ASC",
		first.String(), next.String())
}

func getHistory(ctx context.Context, q querier, historyID int64) (*models.HistoryRecord, error) {
	start := time.Now()
	rec, err := scanHistory(q.QueryRowContext(ctx,
		`SELECT `+historyColumns+` FROM history WHERE id = ?`, historyID))
	if errors.Is(err, sql.ErrNoRows) {
		observe("select", "history", start, nil)
		return nil, ledger.ErrHistoryNotFound
	}
	observe("select", "history", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get history %d: %w", historyID, err)
	}
	return rec, nil
}

func listHistory(ctx context.Context, q querier, where, orderBy string, args ...interface{}) (records []models.HistoryRecord, err error) {
	start := time.Now()
	defer func() { observe("select", "history", start, err) }()

	rows, err := q.QueryContext(ctx, `SELECT `+historyColumns+` FROM history `+where+` `+orderBy, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer closeRows(rows, &err)

	records = []models.HistoryRecord{}
	for rows.Next() {
		rec, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func scanHistory(s rowScanner) (*models.HistoryRecord, error) {
	var (
		rec     models.HistoryRecord
		created int64
	)
	if err := s.Scan(&rec.ID, &rec.OutfitID, &rec.WornDate, &created); err != nil {
		return nil, err
	}
	rec.CreatedAt = fromMillis(created)
	return &rec, nil
}
