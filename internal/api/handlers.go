// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package api

import (
	"context"
	"time"

	"github.com/tomtom215/wardrobe/internal/models"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

// HistoryService is the worn-history ledger.
type HistoryService interface {
	RecordWorn(ctx context.Context, outfitID int64, date models.Date) (*models.HistoryRecord, bool, error)
	RemoveRecord(ctx context.Context, historyID int64) (*models.HistoryRecord, error)
	GetHistory(ctx context.Context, historyID int64) (*models.HistoryRecord, error)
	ListHistory(ctx context.Context) ([]models.HistoryRecord, error)
	ListHistoryByOutfit(ctx context.Context, outfitID int64) ([]models.HistoryRecord, error)
	ListHistoryByDateRange(ctx context.Context, start, end models.Date) ([]models.HistoryRecord, error)
	ListHistoryByMonth(ctx context.Context, year, month int) ([]models.HistoryRecord, error)
}

// Recommender ranks outfits.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
	RecommendFresh(ctx context.Context, minRating, limit int) (*recommend.Response, error)
	RecommendFavorites(ctx context.Context, minFormality, limit int) (*recommend.Response, error)
	RecommendBasic(ctx context.Context, req recommend.BasicRequest) ([]models.Outfit, error)
	Stats() recommend.Stats
	Config() *recommend.Config
	InvalidateCache()
}

// Catalog stores items and outfits.
type Catalog interface {
	CreateItem(ctx context.Context, item *models.Item) error
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	CreateOutfit(ctx context.Context, outfit *models.Outfit, itemIDs []int64) error
	GetOutfit(ctx context.Context, id int64) (*models.Outfit, error)
	ListOutfits(ctx context.Context) ([]models.Outfit, error)
	UpdateOutfit(ctx context.Context, outfit *models.Outfit) error
	DeleteOutfit(ctx context.Context, id int64) error
}

// HealthChecker reports whether storage is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Handler serves the REST API.
type Handler struct {
	history     HistoryService
	recommender Recommender
	catalog     Catalog
	health      HealthChecker

	version   string
	startTime time.Time
	location  *time.Location
	now       func() time.Time
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithVersion sets the version reported by the health endpoint.
func WithVersion(v string) HandlerOption {
	return func(h *Handler) { h.version = v }
}

// WithClock overrides the clock used to default the worn date.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) { h.now = now }
}

// NewHandler creates a Handler. The zone used for "today" comes from the
// recommender configuration so the ledger and the scorer agree on dates.
func NewHandler(history HistoryService, recommender Recommender, catalog Catalog, health HealthChecker, opts ...HandlerOption) *Handler {
	h := &Handler{
		history:     history,
		recommender: recommender,
		catalog:     catalog,
		health:      health,
		version:     "dev",
		startTime:   time.Now(),
		now:         time.Now,
	}
	if cfg := recommender.Config(); cfg != nil {
		h.location = cfg.Location
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// today returns the current date in the configured zone.
func (h *Handler) today() models.Date {
	now := h.now()
	if h.location != nil {
		now = now.In(h.location)
	}
	return models.DateOf(now)
}
