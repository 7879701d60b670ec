// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package ledger

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/wardrobe/internal/models"
)

// memRepo is an in-memory Repository. WithTx works on a copy of the state
// and swaps it in on success, so a failed callback leaves nothing behind.
type memRepo struct {
	mu      sync.Mutex
	state   memState
	nextID  int64
	txCount int

	// failAggregates makes PersistOutfitAggregates fail.
	failAggregates bool
	// duplicateOnSave makes SaveHistory report a uniqueness violation after
	// inserting the record as if another writer got there first.
	duplicateOnSave bool
}

type memState struct {
	outfits map[int64]models.Outfit
	history map[int64]models.HistoryRecord
}

func newMemRepo(outfits ...models.Outfit) *memRepo {
	r := &memRepo{
		state: memState{
			outfits: make(map[int64]models.Outfit),
			history: make(map[int64]models.HistoryRecord),
		},
	}
	for i := range outfits {
		r.state.outfits[outfits[i].ID] = outfits[i]
	}
	return r
}

func (s memState) clone() memState {
	c := memState{
		outfits: make(map[int64]models.Outfit, len(s.outfits)),
		history: make(map[int64]models.HistoryRecord, len(s.history)),
	}
	for k, v := range s.outfits {
		c.outfits[k] = v
	}
	for k, v := range s.history {
		c.history[k] = v
	}
	return c
}

func (r *memRepo) outfit(id int64) models.Outfit {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.outfits[id]
}

func (r *memRepo) historyCount(outfitID int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, h := range r.state.history {
		if h.OutfitID == outfitID {
			n++
		}
	}
	return n
}

func (r *memRepo) WithTx(ctx context.Context, fn func(Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txCount++

	tx := &memTx{repo: r, state: r.state.clone()}
	if err := fn(tx); err != nil {
		if r.duplicateOnSave && errors.Is(err, ErrDuplicateHistory) {
			r.state = tx.state
		}
		return err
	}
	r.state = tx.state
	return nil
}

func (r *memRepo) GetHistory(_ context.Context, id int64) (*models.HistoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.state.history[id]
	if !ok {
		return nil, ErrHistoryNotFound
	}
	return &h, nil
}

func (r *memRepo) all(keep func(models.HistoryRecord) bool) []models.HistoryRecord {
	var out []models.HistoryRecord
	for _, h := range r.state.history {
		if keep(h) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].WornDate.Equal(out[j].WornDate) {
			return out[i].WornDate.After(out[j].WornDate)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *memRepo) ListHistory(context.Context) ([]models.HistoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.all(func(models.HistoryRecord) bool { return true }), nil
}

func (r *memRepo) ListHistoryByOutfit(_ context.Context, outfitID int64) ([]models.HistoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.state.outfits[outfitID]; !ok {
		return nil, ErrOutfitNotFound
	}
	return r.all(func(h models.HistoryRecord) bool { return h.OutfitID == outfitID }), nil
}

func (r *memRepo) ListHistoryByDateRange(_ context.Context, start, end models.Date) ([]models.HistoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.all(func(h models.HistoryRecord) bool {
		return !h.WornDate.Before(start) && !h.WornDate.After(end)
	}), nil
}

func (r *memRepo) ListHistoryByMonth(_ context.Context, year, month int) ([]models.HistoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.all(func(h models.HistoryRecord) bool {
		return h.WornDate.Year() == year && int(h.WornDate.Month()) == month
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].WornDate.Before(out[j].WornDate) })
	return out, nil
}

type memTx struct {
	repo  *memRepo
	state memState
}

func (t *memTx) FindOutfitByID(_ context.Context, id int64) (*models.Outfit, error) {
	o, ok := t.state.outfits[id]
	if !ok {
		return nil, ErrOutfitNotFound
	}
	return &o, nil
}

func (t *memTx) FindHistoryByID(_ context.Context, id int64) (*models.HistoryRecord, error) {
	h, ok := t.state.history[id]
	if !ok {
		return nil, ErrHistoryNotFound
	}
	return &h, nil
}

func (t *memTx) FindHistoryByOutfit(_ context.Context, outfitID int64) ([]models.HistoryRecord, error) {
	var out []models.HistoryRecord
	for _, h := range t.state.history {
		if h.OutfitID == outfitID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (t *memTx) ExistsHistory(ctx context.Context, outfitID int64, date models.Date) (bool, error) {
	_, err := t.FindHistoryByOutfitAndDate(ctx, outfitID, date)
	if errors.Is(err, ErrHistoryNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (t *memTx) FindHistoryByOutfitAndDate(_ context.Context, outfitID int64, date models.Date) (*models.HistoryRecord, error) {
	for _, h := range t.state.history {
		if h.OutfitID == outfitID && h.WornDate.Equal(date) {
			return &h, nil
		}
	}
	return nil, ErrHistoryNotFound
}

func (t *memTx) SaveHistory(ctx context.Context, rec *models.HistoryRecord) error {
	if exists, _ := t.ExistsHistory(ctx, rec.OutfitID, rec.WornDate); exists {
		return ErrDuplicateHistory
	}
	t.repo.nextID++
	rec.ID = t.repo.nextID
	rec.CreatedAt = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	t.state.history[rec.ID] = *rec
	if t.repo.duplicateOnSave {
		return ErrDuplicateHistory
	}
	return nil
}

func (t *memTx) DeleteHistory(_ context.Context, id int64) error {
	if _, ok := t.state.history[id]; !ok {
		return ErrHistoryNotFound
	}
	delete(t.state.history, id)
	return nil
}

func (t *memTx) PersistOutfitAggregates(_ context.Context, outfitID int64, wornCount int, lastWorn models.Date) error {
	if t.repo.failAggregates {
		return errors.New("disk full")
	}
	o, ok := t.state.outfits[outfitID]
	if !ok {
		return ErrOutfitNotFound
	}
	o.WornCount = wornCount
	o.LastWornDate = lastWorn
	t.state.outfits[outfitID] = o
	return nil
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []models.HistoryEvent
	err    error
}

//nolint:gocritic // hugeParam: test helper
func (p *recordingPublisher) PublishHistoryEvent(_ context.Context, e models.HistoryEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) published() []models.HistoryEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.HistoryEvent(nil), p.events...)
}
