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
)

const itemColumns = `id, category, name, color, season, image_url, created_at_ms, updated_at_ms`

// CreateItem inserts an item and fills in its ID and timestamps.
func (db *DB) CreateItem(ctx context.Context, item *models.Item) error {
	if !item.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidItem, item.Category)
	}
	if !item.Season.IsValid() {
		return fmt.Errorf("%w: unknown season %q", ErrInvalidItem, item.Season)
	}

	now := db.now().UTC().Truncate(time.Millisecond)
	start := time.Now()
	err := db.conn.QueryRowContext(ctx, `
		INSERT INTO items (category, name, color, season, image_url, created_at_ms, updated_at_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		string(item.Category), item.Name, item.Color, string(item.Season), item.ImageURL,
		toMillis(now), toMillis(now),
	).Scan(&item.ID)
	observe("insert", "items", start, err)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	item.CreatedAt = now
	item.UpdatedAt = now
	return nil
}

// GetItem returns one item or models.ErrItemNotFound.
func (db *DB) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	start := time.Now()
	row := db.conn.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		observe("select", "items", start, nil)
		return nil, models.ErrItemNotFound
	}
	observe("select", "items", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return item, nil
}

// ListItems returns every item ordered by id.
func (db *DB) ListItems(ctx context.Context) (items []models.Item, err error) {
	start := time.Now()
	defer func() { observe("select", "items", start, err) }()

	rows, err := db.conn.QueryContext(ctx, `SELECT `+itemColumns+` FROM items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer closeRows(rows, &err)

	items = []models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// existingItemIDs returns which of ids are present in the catalog.
func existingItemIDs(ctx context.Context, q querier, ids []int64) (found map[int64]bool, err error) {
	found = make(map[int64]bool, len(ids))
	for _, chunk := range chunkIDs(ids, maxInParams) {
		if err := func() (err error) {
			rows, err := q.QueryContext(ctx,
				`SELECT id FROM items WHERE id IN (`+query.Placeholders(len(chunk))+`)`, int64Args(chunk)...)
			if err != nil {
				return err
			}
			defer closeRows(rows, &err)
			for rows.Next() {
				var id int64
				if err := rows.Scan(&id); err != nil {
					return err
				}
				found[id] = true
			}
			return rows.Err()
		}(); err != nil {
			return nil, fmt.Errorf("failed to check items: %w", err)
		}
	}
	return found, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(s rowScanner) (*models.Item, error) {
	var (
		item             models.Item
		category, season string
		created, updated int64
	)
	if err := s.Scan(&item.ID, &category, &item.Name, &item.Color, &season, &item.ImageURL, &created, &updated); err != nil {
		return nil, err
	}
	item.Category = models.Category(category)
	item.Season = models.Season(season)
	item.CreatedAt = fromMillis(created)
	item.UpdatedAt = fromMillis(updated)
	return &item, nil
}
