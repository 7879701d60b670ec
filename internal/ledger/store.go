// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package ledger

import (
	"context"

	"github.com/tomtom215/wardrobe/internal/models"
)

// Tx is the set of storage operations available inside one transaction.
type Tx interface {
	// FindOutfitByID returns the outfit without items, or ErrOutfitNotFound.
	FindOutfitByID(ctx context.Context, outfitID int64) (*models.Outfit, error)

	// FindHistoryByID returns the record, or ErrHistoryNotFound.
	FindHistoryByID(ctx context.Context, historyID int64) (*models.HistoryRecord, error)

	// FindHistoryByOutfit returns every record of the outfit.
	FindHistoryByOutfit(ctx context.Context, outfitID int64) ([]models.HistoryRecord, error)

	// ExistsHistory reports whether a record exists for the outfit and date.
	ExistsHistory(ctx context.Context, outfitID int64, date models.Date) (bool, error)

	// FindHistoryByOutfitAndDate returns the record, or ErrHistoryNotFound.
	FindHistoryByOutfitAndDate(ctx context.Context, outfitID int64, date models.Date) (*models.HistoryRecord, error)

	// SaveHistory inserts rec and fills in its ID and CreatedAt.
	// It returns ErrDuplicateHistory on a uniqueness violation.
	SaveHistory(ctx context.Context, rec *models.HistoryRecord) error

	// DeleteHistory removes the record, or returns ErrHistoryNotFound.
	DeleteHistory(ctx context.Context, historyID int64) error

	// PersistOutfitAggregates writes the derived wear statistics of an outfit.
	PersistOutfitAggregates(ctx context.Context, outfitID int64, wornCount int, lastWorn models.Date) error
}

// Store runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back otherwise.
type Store interface {
	WithTx(ctx context.Context, fn func(Tx) error) error
}

// HistoryReader serves read-only history queries.
type HistoryReader interface {
	GetHistory(ctx context.Context, historyID int64) (*models.HistoryRecord, error)

	// ListHistory returns all records, newest worn date first.
	ListHistory(ctx context.Context) ([]models.HistoryRecord, error)

	// ListHistoryByOutfit returns ErrOutfitNotFound for an unknown outfit.
	ListHistoryByOutfit(ctx context.Context, outfitID int64) ([]models.HistoryRecord, error)

	// ListHistoryByDateRange returns records worn in [start, end], newest first.
	ListHistoryByDateRange(ctx context.Context, start, end models.Date) ([]models.HistoryRecord, error)

	// ListHistoryByMonth returns records worn in the month, oldest first.
	ListHistoryByMonth(ctx context.Context, year int, month int) ([]models.HistoryRecord, error)
}

// Repository is the storage needed by the ledger.
type Repository interface {
	Store
	HistoryReader
}

// Publisher receives committed history changes.
type Publisher interface {
	PublishHistoryEvent(ctx context.Context, event models.HistoryEvent) error
}

// CacheInvalidator drops derived state that depends on the worn history.
// It is implemented by the recommendation engine.
type CacheInvalidator interface {
	InvalidateCache()
}
