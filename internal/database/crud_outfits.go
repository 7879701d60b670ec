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
	"github.com/tomtom215/wardrobe/internal/models"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

var _ recommend.OutfitSource = (*DB)(nil)

const outfitColumns = `id, name, rating, formality_level, memo, worn_count, last_worn_date, created_at_ms, updated_at_ms`

// stalenessOrder lists never-worn outfits first, then the longest unworn.
const stalenessOrder = `ORDER BY last_worn_date IS NOT NULL, last_worn_date ASC, id ASC`

// CreateOutfit inserts an outfit composed of itemIDs, in order, and fills in
// its ID, timestamps and Items. WornCount and LastWornDate start empty.
func (db *DB) CreateOutfit(ctx context.Context, outfit *models.Outfit, itemIDs []int64) error {
	if err := validateOutfit(outfit); err != nil {
		return err
	}
	if len(itemIDs) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidOutfit)
	}
	seen := make(map[int64]bool, len(itemIDs))
	for _, id := range itemIDs {
		if seen[id] {
			return fmt.Errorf("%w: item %d listed twice", ErrInvalidOutfit, id)
		}
		seen[id] = true
	}

	now := db.now().UTC().Truncate(time.Millisecond)

	err := db.inTx(ctx, func(tx *sql.Tx) error {
		found, err := existingItemIDs(ctx, tx, itemIDs)
		if err != nil {
			return err
		}
		for _, id := range itemIDs {
			if !found[id] {
				return fmt.Errorf("%w: %d", models.ErrItemNotFound, id)
			}
		}

		start := time.Now()
		err = tx.QueryRowContext(ctx, `
			INSERT INTO outfits (name, rating, formality_level, memo, worn_count, last_worn_date, created_at_ms, updated_at_ms)
			VALUES (?, ?, ?, ?, 0, NULL, ?, ?)
			RETURNING id`,
			outfit.Name, outfit.Rating, outfit.FormalityLevel, outfit.Memo, toMillis(now), toMillis(now),
		).Scan(&outfit.ID)
		observe("insert", "outfits", start, err)
		if err != nil {
			return fmt.Errorf("failed to insert outfit: %w", err)
		}

		for pos, itemID := range itemIDs {
			start := time.Now()
			_, err := tx.ExecContext(ctx,
				`INSERT INTO outfit_items (outfit_id, item_id, position) VALUES (?, ?, ?)`,
				outfit.ID, itemID, pos)
			observe("insert", "outfit_items", start, err)
			if err != nil {
				return fmt.Errorf("failed to link item %d: %w", itemID, err)
			}
		}

		outfits := []models.Outfit{*outfit}
		if err := loadItems(ctx, tx, outfits); err != nil {
			return err
		}
		outfit.Items = outfits[0].Items
		return nil
	})
	if err != nil {
		return err
	}

	outfit.WornCount = 0
	outfit.LastWornDate = models.Date{}
	outfit.CreatedAt = now
	outfit.UpdatedAt = now
	return nil
}

// UpdateOutfit changes the descriptive fields of an outfit: name, rating,
// formality and memo. Items and wear statistics are left alone.
func (db *DB) UpdateOutfit(ctx context.Context, outfit *models.Outfit) error {
	if err := validateOutfit(outfit); err != nil {
		return err
	}

	now := db.now().UTC().Truncate(time.Millisecond)
	start := time.Now()
	res, err := db.conn.ExecContext(ctx, `
		UPDATE outfits
		SET name = ?, rating = ?, formality_level = ?, memo = ?, updated_at_ms = ?
		WHERE id = ?`,
		outfit.Name, outfit.Rating, outfit.FormalityLevel, outfit.Memo, toMillis(now), outfit.ID)
	observe("update", "outfits", start, err)
	if err != nil {
		return fmt.Errorf("failed to update outfit %d: %w", outfit.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrOutfitNotFound
	}
	outfit.UpdatedAt = now
	return nil
}

// DeleteOutfit removes an outfit together with its item links and history.
func (db *DB) DeleteOutfit(ctx context.Context, id int64) error {
	return db.inTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range []struct{ table, sql string }{
			{"history", `DELETE FROM history WHERE outfit_id = ?`},
			{"outfit_items", `DELETE FROM outfit_items WHERE outfit_id = ?`},
		} {
			start := time.Now()
			_, err := tx.ExecContext(ctx, stmt.sql, id)
			observe("delete", stmt.table, start, err)
			if err != nil {
				return fmt.Errorf("failed to delete outfit %d %s: %w", id, stmt.table, err)
			}
		}

		start := time.Now()
		res, err := tx.ExecContext(ctx, `DELETE FROM outfits WHERE id = ?`, id)
		observe("delete", "outfits", start, err)
		if err != nil {
			return fmt.Errorf("failed to delete outfit %d: %w", id, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return models.ErrOutfitNotFound
		}
		return nil
	})
}

// GetOutfit returns one outfit with its items, or models.ErrOutfitNotFound.
func (db *DB) GetOutfit(ctx context.Context, id int64) (*models.Outfit, error) {
	outfit, err := findOutfitByID(ctx, db.conn, id)
	if err != nil {
		return nil, err
	}
	outfits := []models.Outfit{*outfit}
	if err := loadItems(ctx, db.conn, outfits); err != nil {
		return nil, err
	}
	return &outfits[0], nil
}

// ListOutfits returns every outfit with items, ordered by id.
func (db *DB) ListOutfits(ctx context.Context) ([]models.Outfit, error) {
	return db.findOutfits(ctx, query.NewWhereBuilder(), "ORDER BY id ASC")
}

// FindOutfitsByRatingAndFormality returns outfits with rating >= minRating and
// formality in [minFormality, maxFormality], never-worn first and then by
// last worn date ascending. A zero bound is not applied.
func (db *DB) FindOutfitsByRatingAndFormality(ctx context.Context, minRating, minFormality, maxFormality int) ([]models.Outfit, error) {
	wb := query.NewWhereBuilder().
		AddMin("rating", minRating).
		AddMin("formality_level", minFormality).
		AddMax("formality_level", maxFormality)
	return db.findOutfits(ctx, wb, stalenessOrder)
}

// FindOutfitsExcludingRecent is FindOutfitsByRatingAndFormality without an
// upper formality bound that also drops outfits last worn on or after
// excludeAfter. Never-worn outfits are always kept.
func (db *DB) FindOutfitsExcludingRecent(ctx context.Context, minRating, minFormality int, excludeAfter models.Date) ([]models.Outfit, error) {
	wb := query.NewWhereBuilder().
		AddMin("rating", minRating).
		AddMin("formality_level", minFormality)
	if !excludeAfter.IsZero() {
		wb.AddClause("(last_worn_date IS NULL OR last_worn_date < ?)", excludeAfter.String())
	}
	return db.findOutfits(ctx, wb, stalenessOrder)
}

func (db *DB) findOutfits(ctx context.Context, wb *query.WhereBuilder, orderBy string) (outfits []models.Outfit, err error) {
	where, args := wb.BuildWithPrefix()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, `SELECT `+outfitColumns+` FROM outfits `+where+` `+orderBy, args...)
	if err != nil {
		observe("select", "outfits", start, err)
		return nil, fmt.Errorf("failed to query outfits: %w", err)
	}

	outfits, err = func() (outfits []models.Outfit, err error) {
		defer closeRows(rows, &err)
		outfits = []models.Outfit{}
		for rows.Next() {
			o, err := scanOutfit(rows)
			if err != nil {
				return nil, err
			}
			outfits = append(outfits, *o)
		}
		return outfits, rows.Err()
	}()
	observe("select", "outfits", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to read outfits: %w", err)
	}

	if err := loadItems(ctx, db.conn, outfits); err != nil {
		return nil, err
	}
	return outfits, nil
}

// findOutfitByID loads an outfit without items.
func findOutfitByID(ctx context.Context, q querier, id int64) (*models.Outfit, error) {
	start := time.Now()
	o, err := scanOutfit(q.QueryRowContext(ctx, `SELECT `+outfitColumns+` FROM outfits WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		observe("select", "outfits", start, nil)
		return nil, models.ErrOutfitNotFound
	}
	observe("select", "outfits", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get outfit %d: %w", id, err)
	}
	return o, nil
}

// loadItems fills Items of every outfit in place, in outfit order.
func loadItems(ctx context.Context, q querier, outfits []models.Outfit) error {
	if len(outfits) == 0 {
		return nil
	}

	index := make(map[int64]int, len(outfits))
	ids := make([]int64, len(outfits))
	for i := range outfits {
		index[outfits[i].ID] = i
		ids[i] = outfits[i].ID
		outfits[i].Items = []models.Item{}
	}

	for _, chunk := range chunkIDs(ids, maxInParams) {
		if err := loadItemChunk(ctx, q, chunk, outfits, index); err != nil {
			return err
		}
	}
	return nil
}

func loadItemChunk(ctx context.Context, q querier, ids []int64, outfits []models.Outfit, index map[int64]int) (err error) {
	where, args := query.NewWhereBuilder().AddIDs("oi.outfit_id", ids).Build()

	start := time.Now()
	defer func() { observe("select", "outfit_items", start, err) }()

	rows, err := q.QueryContext(ctx, `
		SELECT oi.outfit_id, i.id, i.category, i.name, i.color, i.season, i.image_url, i.created_at_ms, i.updated_at_ms
		FROM outfit_items oi
		JOIN items i ON i.id = oi.item_id
		WHERE `+where+`
		ORDER BY oi.outfit_id, oi.position`, args...)
	if err != nil {
		return fmt.Errorf("failed to load outfit items: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var (
			outfitID         int64
			item             models.Item
			category, season string
			created, updated int64
		)
		if err := rows.Scan(&outfitID, &item.ID, &category, &item.Name, &item.Color, &season,
			&item.ImageURL, &created, &updated); err != nil {
			return fmt.Errorf("failed to scan outfit item: %w", err)
		}
		item.Category = models.Category(category)
		item.Season = models.Season(season)
		item.CreatedAt = fromMillis(created)
		item.UpdatedAt = fromMillis(updated)

		if i, ok := index[outfitID]; ok {
			outfits[i].Items = append(outfits[i].Items, item)
		}
	}
	return rows.Err()
}

func scanOutfit(s rowScanner) (*models.Outfit, error) {
	var (
		o                models.Outfit
		created, updated int64
	)
	if err := s.Scan(&o.ID, &o.Name, &o.Rating, &o.FormalityLevel, &o.Memo, &o.WornCount,
		&o.LastWornDate, &created, &updated); err != nil {
		return nil, err
	}
	o.CreatedAt = fromMillis(created)
	o.UpdatedAt = fromMillis(updated)
	return &o, nil
}

func validateOutfit(o *models.Outfit) error {
	if o.Rating < models.MinScale || o.Rating > models.MaxScale {
		return fmt.Errorf("%w: rating %d outside [%d, %d]", ErrInvalidOutfit, o.Rating, models.MinScale, models.MaxScale)
	}
	if o.FormalityLevel < models.MinScale || o.FormalityLevel > models.MaxScale {
		return fmt.Errorf("%w: formality %d outside [%d, %d]", ErrInvalidOutfit, o.FormalityLevel, models.MinScale, models.MaxScale)
	}
	return nil
}
