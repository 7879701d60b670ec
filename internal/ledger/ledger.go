// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wardrobe/internal/metrics"
	"github.com/tomtom215/wardrobe/internal/models"
)

const (
	opRecordWorn   = "record_worn"
	opRemoveRecord = "remove_record"
)

// Ledger records and removes worn history entries.
type Ledger struct {
	repo        Repository
	publisher   Publisher
	invalidator CacheInvalidator
	locks       *outfitLocks
	logger      zerolog.Logger
	now         func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithPublisher announces committed changes to p.
func WithPublisher(p Publisher) Option {
	return func(l *Ledger) {
		l.publisher = p
	}
}

// WithCacheInvalidator purges c after every committed change, before
// RecordWorn or RemoveRecord returns.
func WithCacheInvalidator(c CacheInvalidator) Option {
	return func(l *Ledger) {
		l.invalidator = c
	}
}

// WithNow overrides the clock used for event timestamps.
func WithNow(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New creates a Ledger backed by repo.
func New(repo Repository, logger zerolog.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		repo:   repo,
		locks:  newOutfitLocks(),
		logger: logger.With().Str("component", "ledger").Logger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RecordWorn records that outfitID was worn on date.
//
// When a record for the same outfit and date already exists it is returned
// with created == false and nothing is modified.
func (l *Ledger) RecordWorn(ctx context.Context, outfitID int64, date models.Date) (rec *models.HistoryRecord, created bool, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordLedgerOperation(opRecordWorn, recordResult(created, err), time.Since(start))
	}()

	if date.IsZero() {
		return nil, false, ErrInvalidDate
	}

	unlock := l.locks.lock(outfitID)
	defer unlock()

	var event models.HistoryEvent
	err = l.repo.WithTx(ctx, func(tx Tx) error {
		created = false
		outfit, err := tx.FindOutfitByID(ctx, outfitID)
		if err != nil {
			return err
		}

		exists, err := tx.ExistsHistory(ctx, outfitID, date)
		if err != nil {
			return fmt.Errorf("check existing history: %w", err)
		}
		if exists {
			rec, err = tx.FindHistoryByOutfitAndDate(ctx, outfitID, date)
			return err
		}

		rec = &models.HistoryRecord{OutfitID: outfitID, WornDate: date}
		if err := tx.SaveHistory(ctx, rec); err != nil {
			return err
		}

		wornCount := outfit.WornCount + 1
		lastWorn := models.MaxDate(outfit.LastWornDate, date)
		if err := tx.PersistOutfitAggregates(ctx, outfitID, wornCount, lastWorn); err != nil {
			return fmt.Errorf("update outfit aggregates: %w", err)
		}

		created = true
		event = models.HistoryEvent{
			Type:         models.HistoryRecorded,
			OutfitID:     outfitID,
			HistoryID:    rec.ID,
			WornDate:     date,
			WornCount:    wornCount,
			LastWornDate: lastWorn,
		}
		return nil
	})

	// Another writer outside this process won the insert.
	if errors.Is(err, ErrDuplicateHistory) {
		created = false
		rec, err = l.findExisting(ctx, outfitID, date)
	}
	if err != nil {
		return nil, false, err
	}

	if created {
		l.logger.Info().
			Int64("outfit_id", outfitID).
			Int64("history_id", rec.ID).
			Str("worn_date", date.String()).
			Int("worn_count", event.WornCount).
			Msg("Recorded worn outfit")
		l.committed(ctx, event)
	} else {
		l.logger.Debug().
			Int64("outfit_id", outfitID).
			Str("worn_date", date.String()).
			Msg("Outfit already recorded for date")
	}

	return rec, created, nil
}

func (l *Ledger) findExisting(ctx context.Context, outfitID int64, date models.Date) (*models.HistoryRecord, error) {
	var rec *models.HistoryRecord
	err := l.repo.WithTx(ctx, func(tx Tx) error {
		var err error
		rec, err = tx.FindHistoryByOutfitAndDate(ctx, outfitID, date)
		return err
	})
	return rec, err
}

// RemoveRecord deletes a history record and re-derives the outfit's
// WornCount and LastWornDate. It returns the removed record.
func (l *Ledger) RemoveRecord(ctx context.Context, historyID int64) (rec *models.HistoryRecord, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordLedgerOperation(opRemoveRecord, removeResult(err), time.Since(start))
	}()

	// The owning outfit is needed to pick the lock.
	rec, err = l.repo.GetHistory(ctx, historyID)
	if err != nil {
		return nil, err
	}

	unlock := l.locks.lock(rec.OutfitID)
	defer unlock()

	var event models.HistoryEvent
	err = l.repo.WithTx(ctx, func(tx Tx) error {
		current, err := tx.FindHistoryByID(ctx, historyID)
		if err != nil {
			return err
		}
		rec = current

		outfit, err := tx.FindOutfitByID(ctx, current.OutfitID)
		if err != nil {
			return err
		}

		if err := tx.DeleteHistory(ctx, historyID); err != nil {
			return err
		}

		remaining, err := tx.FindHistoryByOutfit(ctx, current.OutfitID)
		if err != nil {
			return fmt.Errorf("load remaining history: %w", err)
		}

		wornCount := outfit.WornCount - 1
		if wornCount < 0 {
			wornCount = 0
		}
		var lastWorn models.Date
		for i := range remaining {
			lastWorn = models.MaxDate(lastWorn, remaining[i].WornDate)
		}

		if err := tx.PersistOutfitAggregates(ctx, current.OutfitID, wornCount, lastWorn); err != nil {
			return fmt.Errorf("update outfit aggregates: %w", err)
		}

		event = models.HistoryEvent{
			Type:         models.HistoryRemoved,
			OutfitID:     current.OutfitID,
			HistoryID:    historyID,
			WornDate:     current.WornDate,
			WornCount:    wornCount,
			LastWornDate: lastWorn,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info().
		Int64("outfit_id", event.OutfitID).
		Int64("history_id", historyID).
		Int("worn_count", event.WornCount).
		Msg("Removed worn history record")
	l.committed(ctx, event)

	return rec, nil
}

// GetHistory returns one history record.
func (l *Ledger) GetHistory(ctx context.Context, historyID int64) (*models.HistoryRecord, error) {
	return l.repo.GetHistory(ctx, historyID)
}

// ListHistory returns every record, newest worn date first.
func (l *Ledger) ListHistory(ctx context.Context) ([]models.HistoryRecord, error) {
	return l.repo.ListHistory(ctx)
}

// ListHistoryByOutfit returns the records of one outfit.
func (l *Ledger) ListHistoryByOutfit(ctx context.Context, outfitID int64) ([]models.HistoryRecord, error) {
	return l.repo.ListHistoryByOutfit(ctx, outfitID)
}

// ListHistoryByDateRange returns records worn between start and end inclusive.
func (l *Ledger) ListHistoryByDateRange(ctx context.Context, start, end models.Date) ([]models.HistoryRecord, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: start and end are required", ErrInvalidRange)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s is before start %s", ErrInvalidRange, end, start)
	}
	return l.repo.ListHistoryByDateRange(ctx, start, end)
}

// ListHistoryByMonth returns the records of a calendar month, oldest first.
func (l *Ledger) ListHistoryByMonth(ctx context.Context, year, month int) ([]models.HistoryRecord, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d", ErrInvalidRange, month)
	}
	if year < 1 {
		return nil, fmt.Errorf("%w: year %d", ErrInvalidRange, year)
	}
	return l.repo.ListHistoryByMonth(ctx, year, month)
}

// committed runs after a change is durable: the cache is purged first so a
// caller that reads right after this returns sees the change, then the
// event is announced.
//
//nolint:gocritic // hugeParam: event is built once per mutation
func (l *Ledger) committed(ctx context.Context, event models.HistoryEvent) {
	if l.invalidator != nil {
		l.invalidator.InvalidateCache()
	}
	l.publish(ctx, event)
}

//nolint:gocritic // hugeParam: event is built once per mutation
func (l *Ledger) publish(ctx context.Context, event models.HistoryEvent) {
	if l.publisher == nil {
		return
	}
	event.OccurredAt = l.now().UTC()
	if err := l.publisher.PublishHistoryEvent(ctx, event); err != nil {
		l.logger.Warn().Err(err).
			Str("type", string(event.Type)).
			Int64("outfit_id", event.OutfitID).
			Msg("Failed to publish history event")
	}
}

func recordResult(created bool, err error) string {
	switch {
	case errors.Is(err, ErrOutfitNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidDate):
		return "invalid"
	case err != nil:
		return "error"
	case created:
		return "created"
	default:
		return "duplicate"
	}
}

func removeResult(err error) string {
	switch {
	case errors.Is(err, ErrHistoryNotFound), errors.Is(err, ErrOutfitNotFound):
		return "not_found"
	case err != nil:
		return "error"
	default:
		return "removed"
	}
}
