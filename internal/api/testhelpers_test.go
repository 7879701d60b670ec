// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wardrobe/internal/ledger"
	"github.com/tomtom215/wardrobe/internal/models"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

var errStorage = errors.New("disk I/O error")

// fixedNow is the clock used by every test handler: 2026-03-15 10:00 UTC.
var fixedNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

// fakeHistory is an in-memory HistoryService.
type fakeHistory struct {
	mu      sync.Mutex
	nextID  int64
	records map[int64]models.HistoryRecord
	outfits map[int64]bool
	err     error

	lastRange [2]models.Date
	lastMonth [2]int
}

func newFakeHistory(outfitIDs ...int64) *fakeHistory {
	f := &fakeHistory{records: map[int64]models.HistoryRecord{}, outfits: map[int64]bool{}}
	for _, id := range outfitIDs {
		f.outfits[id] = true
	}
	return f
}

func (f *fakeHistory) RecordWorn(_ context.Context, outfitID int64, date models.Date) (*models.HistoryRecord, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, false, f.err
	}
	if !f.outfits[outfitID] {
		return nil, false, models.ErrOutfitNotFound
	}
	for _, rec := range f.records {
		if rec.OutfitID == outfitID && rec.WornDate.Equal(date) {
			r := rec
			return &r, false, nil
		}
	}
	f.nextID++
	rec := models.HistoryRecord{ID: f.nextID, OutfitID: outfitID, WornDate: date, CreatedAt: fixedNow}
	f.records[rec.ID] = rec
	return &rec, true, nil
}

func (f *fakeHistory) RemoveRecord(_ context.Context, historyID int64) (*models.HistoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[historyID]
	if !ok {
		return nil, models.ErrHistoryNotFound
	}
	delete(f.records, historyID)
	return &rec, nil
}

func (f *fakeHistory) GetHistory(_ context.Context, historyID int64) (*models.HistoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[historyID]
	if !ok {
		return nil, models.ErrHistoryNotFound
	}
	return &rec, nil
}

func (f *fakeHistory) ListHistory(context.Context) ([]models.HistoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.HistoryRecord, 0, len(f.records))
	for _, rec := range f.records {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeHistory) ListHistoryByOutfit(_ context.Context, outfitID int64) ([]models.HistoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.outfits[outfitID] {
		return nil, models.ErrOutfitNotFound
	}
	var out []models.HistoryRecord
	for _, rec := range f.records {
		if rec.OutfitID == outfitID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeHistory) ListHistoryByDateRange(_ context.Context, start, end models.Date) ([]models.HistoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastRange = [2]models.Date{start, end}
	if end.Before(start) {
		return nil, ledger.ErrInvalidRange
	}
	return nil, nil
}

func (f *fakeHistory) ListHistoryByMonth(_ context.Context, year, month int) ([]models.HistoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastMonth = [2]int{year, month}
	return []models.HistoryRecord{}, nil
}

// fakeRecommender records the last request it saw.
type fakeRecommender struct {
	mu        sync.Mutex
	cfg       *recommend.Config
	resp      *recommend.Response
	outfits   []models.Outfit
	err       error
	lastReq   recommend.Request
	lastBasic recommend.BasicRequest
	lastArgs  [2]int
	purges    int
}

func newFakeRecommender() *fakeRecommender {
	cfg := recommend.DefaultConfig()
	cfg.Location = time.UTC
	return &fakeRecommender{
		cfg:  cfg,
		resp: &recommend.Response{Metadata: recommend.ResponseMetadata{Preset: recommend.PresetBalanced}},
	}
}

//nolint:gocritic // hugeParam: matches Recommender
func (f *fakeRecommender) Recommend(_ context.Context, req recommend.Request) (*recommend.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastReq = req
	return f.resp, f.err
}

func (f *fakeRecommender) RecommendFresh(_ context.Context, minRating, limit int) (*recommend.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastArgs = [2]int{minRating, limit}
	return f.resp, f.err
}

func (f *fakeRecommender) RecommendFavorites(_ context.Context, minFormality, limit int) (*recommend.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastArgs = [2]int{minFormality, limit}
	return f.resp, f.err
}

func (f *fakeRecommender) RecommendBasic(_ context.Context, req recommend.BasicRequest) ([]models.Outfit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastBasic = req
	return f.outfits, f.err
}

func (f *fakeRecommender) Stats() recommend.Stats { return recommend.Stats{RequestCount: 7} }

func (f *fakeRecommender) Config() *recommend.Config { return f.cfg }

func (f *fakeRecommender) InvalidateCache() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.purges++
}

func (f *fakeRecommender) purgeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.purges
}

// fakeCatalog stores items and outfits in maps.
type fakeCatalog struct {
	mu      sync.Mutex
	items   map[int64]models.Item
	outfits map[int64]models.Outfit
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{items: map[int64]models.Item{}, outfits: map[int64]models.Outfit{}}
}

func (f *fakeCatalog) CreateItem(_ context.Context, item *models.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.ID = int64(len(f.items) + 1)
	f.items[item.ID] = *item
	return nil
}

func (f *fakeCatalog) GetItem(_ context.Context, id int64) (*models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, models.ErrItemNotFound
	}
	return &item, nil
}

func (f *fakeCatalog) ListItems(context.Context) ([]models.Item, error) {
	return nil, nil
}

func (f *fakeCatalog) CreateOutfit(_ context.Context, outfit *models.Outfit, itemIDs []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range itemIDs {
		item, ok := f.items[id]
		if !ok {
			return models.ErrItemNotFound
		}
		outfit.Items = append(outfit.Items, item)
	}
	outfit.ID = int64(len(f.outfits) + 1)
	f.outfits[outfit.ID] = *outfit
	return nil
}

func (f *fakeCatalog) GetOutfit(_ context.Context, id int64) (*models.Outfit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	outfit, ok := f.outfits[id]
	if !ok {
		return nil, models.ErrOutfitNotFound
	}
	return &outfit, nil
}

func (f *fakeCatalog) ListOutfits(context.Context) ([]models.Outfit, error) {
	return nil, nil
}

func (f *fakeCatalog) UpdateOutfit(_ context.Context, outfit *models.Outfit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.outfits[outfit.ID]
	if !ok {
		return models.ErrOutfitNotFound
	}
	current.Name = outfit.Name
	current.Rating = outfit.Rating
	current.FormalityLevel = outfit.FormalityLevel
	current.Memo = outfit.Memo
	f.outfits[outfit.ID] = current
	return nil
}

func (f *fakeCatalog) DeleteOutfit(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.outfits[id]; !ok {
		return models.ErrOutfitNotFound
	}
	delete(f.outfits, id)
	return nil
}

type fakeHealth struct{ err error }

func (f fakeHealth) Ping(context.Context) error { return f.err }

// testEnv bundles the fakes behind one router.
type testEnv struct {
	history     *fakeHistory
	recommender *fakeRecommender
	catalog     *fakeCatalog
	health      *fakeHealth
	server      http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		history:     newFakeHistory(1, 2),
		recommender: newFakeRecommender(),
		catalog:     newFakeCatalog(),
		health:      &fakeHealth{},
	}
	handler := NewHandler(env.history, env.recommender, env.catalog, env.health,
		WithClock(func() time.Time { return fixedNow }), WithVersion("test"))

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	env.server = NewRouter(handler, NewChiMiddleware(cfg)).SetupChi()
	return env
}

// envelope mirrors models.APIResponse with a raw data payload.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantCode string) {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, wantStatus, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Status != "error" {
		t.Errorf("envelope status = %q, want error", env.Status)
	}
	if env.Error == nil || env.Error.Code != wantCode {
		t.Errorf("error = %+v, want code %s", env.Error, wantCode)
	}
}

func containsString(s, substr string) bool {
	return strings.Contains(s, substr)
}
