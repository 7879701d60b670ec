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

	"github.com/tomtom215/wardrobe/internal/ledger"
	"github.com/tomtom215/wardrobe/internal/models"
)

const (
	maxTxAttempts = 5
	txRetryDelay  = 10 * time.Millisecond
)

// inTx runs fn in a database transaction, committing when fn returns nil.
func (db *DB) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// WithTx implements ledger.Store. DuckDB conflicts and SQLite busy errors
// are retried with a short linear backoff.
func (db *DB) WithTx(ctx context.Context, fn func(ledger.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.inTx(ctx, func(tx *sql.Tx) error {
			return fn(&txStore{tx: tx, now: db.now})
		})
		if !isTransactionConflict(err) {
			return err
		}

		db.logger.Debug().Err(err).Int("attempt", attempt).Msg("Transaction conflict, retrying")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * txRetryDelay):
		}
	}
	return fmt.Errorf("transaction failed after %d attempts: %w", maxTxAttempts, err)
}

// txStore implements ledger.Tx on top of one *sql.Tx.
type txStore struct {
	tx  *sql.Tx
	now func() time.Time
}

var _ ledger.Tx = (*txStore)(nil)

func (t *txStore) FindOutfitByID(ctx context.Context, outfitID int64) (*models.Outfit, error) {
	return findOutfitByID(ctx, t.tx, outfitID)
}

func (t *txStore) FindHistoryByID(ctx context.Context, historyID int64) (*models.HistoryRecord, error) {
	return getHistory(ctx, t.tx, historyID)
}

func (t *txStore) FindHistoryByOutfit(ctx context.Context, outfitID int64) ([]models.HistoryRecord, error) {
	return listHistory(ctx, t.tx, "WHERE outfit_id = ?", "ORDER BY worn_date DESC, id DESC", outfitID)
}

func (t *txStore) ExistsHistory(ctx context.Context, outfitID int64, date models.Date) (bool, error) {
	var n int
	start := time.Now()
	err := t.tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM history WHERE outfit_id = ? AND worn_date = ?`,
		outfitID, dateArg(date)).Scan(&n)
	observe("select", "history", start, err)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (t *txStore) FindHistoryByOutfitAndDate(ctx context.Context, outfitID int64, date models.Date) (*models.HistoryRecord, error) {
	start := time.Now()
	rec, err := scanHistory(t.tx.QueryRowContext(ctx,
		`SELECT `+historyColumns+` FROM history WHERE outfit_id = ? AND worn_date = ?`,
		outfitID, dateArg(date)))
	if errors.Is(err, sql.ErrNoRows) {
		observe("select", "history", start, nil)
		return nil, ledger.ErrHistoryNotFound
	}
	observe("select", "history", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to find history for outfit %d on %s: %w", outfitID, date, err)
	}
	return rec, nil
}

func (t *txStore) SaveHistory(ctx context.Context, rec *models.HistoryRecord) error {
	created := t.now().UTC().Truncate(time.Millisecond)

	start := time.Now()
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO history (outfit_id, worn_date, created_at_ms)
		VALUES (?, ?, ?)
		RETURNING id`,
		rec.OutfitID, dateArg(rec.WornDate), toMillis(created),
	).Scan(&rec.ID)
	if isDuplicateKeyError(err) {
		observe("insert", "history", start, nil)
		return ledger.ErrDuplicateHistory
	}
	observe("insert", "history", start, err)
	if err != nil {
		return fmt.Errorf("failed to insert history: %w", err)
	}

	rec.CreatedAt = created
	return nil
}

func (t *txStore) DeleteHistory(ctx context.Context, historyID int64) error {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, `DELETE FROM history WHERE id = ?`, historyID)
	observe("delete", "history", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete history %d: %w", historyID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ledger.ErrHistoryNotFound
	}
	return nil
}

func (t *txStore) PersistOutfitAggregates(ctx context.Context, outfitID int64, wornCount int, lastWorn models.Date) error {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, `
		UPDATE outfits SET worn_count = ?, last_worn_date = ?, updated_at_ms = ?
		WHERE id = ?`,
		wornCount, dateArg(lastWorn), toMillis(t.now()), outfitID)
	observe("update", "outfits", start, err)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ledger.ErrOutfitNotFound
	}
	return nil
}

// dateArg binds a date as YYYY-MM-DD text, or NULL when unset.
func dateArg(d models.Date) interface{} {
	if d.IsZero() {
		return nil
	}
	return d.String()
}
