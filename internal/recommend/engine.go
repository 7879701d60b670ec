// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wardrobe/internal/cache"
	"github.com/tomtom215/wardrobe/internal/metrics"
	"github.com/tomtom215/wardrobe/internal/models"
	"github.com/tomtom215/wardrobe/internal/validation"
)

// OutfitSource loads candidate outfits, items included.
// It is implemented by the database layer.
type OutfitSource interface {
	// FindOutfitsByRatingAndFormality returns outfits with rating >= minRating
	// and formality in [minFormality, maxFormality]. maxFormality 0 means no
	// upper bound. Results are ordered by last worn date ascending, never-worn first.
	FindOutfitsByRatingAndFormality(ctx context.Context, minRating, minFormality, maxFormality int) ([]models.Outfit, error)

	// FindOutfitsExcludingRecent is FindOutfitsByRatingAndFormality without an
	// upper bound, additionally dropping outfits last worn on or after excludeAfter.
	FindOutfitsExcludingRecent(ctx context.Context, minRating, minFormality int, excludeAfter models.Date) ([]models.Outfit, error)
}

// Engine filters, scores and ranks outfits. It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
	source OutfitSource

	pipeline []Stage
	scorers  []Scorer

	// now is the clock used to derive today's date.
	now func() time.Time

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	errorCount   atomic.Int64

	// cache is nil when response caching is disabled.
	cache *cache.LRU[*Response]
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock overrides the clock used to derive today's date.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithPipeline replaces the candidate stages.
func WithPipeline(stages ...Stage) Option {
	return func(e *Engine) {
		e.pipeline = stages
	}
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(source OutfitSource, cfg *Config, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if source == nil {
		return nil, errors.New("outfit source is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config:   cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
		source:   source,
		pipeline: DefaultPipeline(),
		scorers:  DefaultScorers(),
		now:      time.Now,
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[*Response](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Recommend runs the advanced mode: query, filter, score, rank and truncate.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req, err := e.prepareRequest(req)
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendation("advanced", "invalid", 0, 0, time.Since(start))
		return nil, err
	}

	logger := e.createRequestLogger(req)
	logger.Debug().Msg("processing recommendation request")

	today := e.today()
	cacheKey := e.cacheKey(req, today)
	if resp := e.tryGetCachedResponse(cacheKey, req, start, logger); resp != nil {
		metrics.RecordRecommendation("advanced", "success", resp.TotalCandidates, len(resp.Items), time.Since(start))
		return resp, nil
	}

	candidates, err := e.getCandidates(ctx, &req.Criteria, today)
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendation("advanced", "error", 0, 0, time.Since(start))
		return nil, fmt.Errorf("get candidates: %w", err)
	}

	candidates = RunPipeline(e.pipeline, candidates, &req.Criteria, today)
	scored := e.scoreAndRank(candidates, &req.Criteria, today, req.Limit)

	resp := &Response{
		Items:           scored,
		TotalCandidates: len(candidates),
		Metadata:        e.buildResponseMetadata(req, today, start, false),
	}
	e.cacheResponse(cacheKey, resp)

	metrics.RecordRecommendation("advanced", "success", len(candidates), len(scored), time.Since(start))
	logger.Debug().
		Int("candidates", len(candidates)).
		Int("returned", len(scored)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// RecommendFresh recommends with the freshness-first preset.
func (e *Engine) RecommendFresh(ctx context.Context, minRating, limit int) (*Response, error) {
	return e.Recommend(ctx, Request{
		Criteria: Criteria{MinRating: minRating, Weights: FreshnessFirstWeights()},
		Limit:    limit,
	})
}

// RecommendFavorites recommends with the rating-first preset.
func (e *Engine) RecommendFavorites(ctx context.Context, minFormality, limit int) (*Response, error) {
	return e.Recommend(ctx, Request{
		Criteria: Criteria{MinFormality: minFormality, Weights: RatingFirstWeights()},
		Limit:    limit,
	})
}

// RecommendBasic returns unscored outfits ordered by last worn date
// ascending. Never-worn outfits come first; ties are broken by id.
func (e *Engine) RecommendBasic(ctx context.Context, req BasicRequest) ([]models.Outfit, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if verr := validation.ValidateStruct(&req); verr != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendation("basic", "invalid", 0, 0, time.Since(start))
		return nil, fmt.Errorf("%w: %s", ErrInvalidCriteria, verr.Error())
	}

	criteria := Criteria{
		MinRating:         req.MinRating,
		MinFormality:      req.MinFormality,
		ExcludeRecentDays: req.ExcludeRecentDays,
	}
	today := e.today()

	outfits, err := e.getCandidates(ctx, &criteria, today)
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendation("basic", "error", 0, 0, time.Since(start))
		return nil, fmt.Errorf("get candidates: %w", err)
	}
	outfits = RecencyStage(outfits, &criteria, today)
	SortByStaleness(outfits)

	metrics.RecordRecommendation("basic", "success", len(outfits), len(outfits), time.Since(start))
	e.logger.Debug().
		Int("min_rating", req.MinRating).
		Int("min_formality", req.MinFormality).
		Int("exclude_recent_days", req.ExcludeRecentDays).
		Int("returned", len(outfits)).
		Msg("basic recommendation complete")

	return outfits, nil
}

// SortByStaleness orders outfits by last worn date ascending, never-worn
// first, then by id ascending.
func SortByStaleness(outfits []models.Outfit) {
	sort.SliceStable(outfits, func(i, j int) bool {
		a, b := outfits[i].LastWornDate, outfits[j].LastWornDate
		switch {
		case a.IsZero() && !b.IsZero():
			return true
		case !a.IsZero() && b.IsZero():
			return false
		case !a.Equal(b):
			return a.Before(b)
		default:
			return outfits[i].ID < outfits[j].ID
		}
	})
}

// prepareRequest validates criteria and applies defaults.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) (Request, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}

	if req.Limit <= 0 {
		req.Limit = e.config.Limits.DefaultLimit
	}
	if req.Limit > e.config.Limits.MaxLimit {
		req.Limit = e.config.Limits.MaxLimit
	}

	c := &req.Criteria
	if verr := validation.ValidateStruct(c); verr != nil {
		return req, fmt.Errorf("%w: %s", ErrInvalidCriteria, verr.Error())
	}
	if err := c.Weights.Validate(); err != nil {
		return req, err
	}

	c.MinRating = c.effectiveMinRating()
	c.MinFormality, c.MaxFormality = c.formalityRange()
	if c.MinFormality > c.MaxFormality {
		return req, fmt.Errorf("%w: min_formality %d exceeds max_formality %d",
			ErrInvalidCriteria, c.MinFormality, c.MaxFormality)
	}

	if c.Weights.IsZero() {
		// Validated by Config.Validate.
		c.Weights, _ = WeightsForPreset(e.config.DefaultPreset)
	} else if !c.Weights.Normalized() {
		e.logger.Warn().
			Str("request_id", req.RequestID).
			Float64("weight_sum", c.Weights.Sum()).
			Msg("scoring weights do not sum to 1.0")
	}

	return req, nil
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("preset", req.Criteria.Weights.PresetName()).
		Int("limit", req.Limit).
		Logger()
}

// getCandidates queries the source. Recency is pushed down to the query
// when enabled; RecencyStage re-applies it harmlessly.
func (e *Engine) getCandidates(ctx context.Context, c *Criteria, today models.Date) ([]models.Outfit, error) {
	minRating := c.effectiveMinRating()
	minFormality, _ := c.formalityRange()

	if c.ExcludeRecentDays > 0 {
		return e.source.FindOutfitsExcludingRecent(ctx, minRating, minFormality, today.AddDays(-c.ExcludeRecentDays))
	}
	return e.source.FindOutfitsByRatingAndFormality(ctx, minRating, minFormality, 0)
}

// scoreAndRank scores every candidate, sorts by total descending (stable,
// so ties keep pipeline order) and truncates to limit.
func (e *Engine) scoreAndRank(candidates []models.Outfit, c *Criteria, today models.Date, limit int) []ScoredOutfit {
	scored := make([]ScoredOutfit, len(candidates))
	for i := range candidates {
		scored[i] = ScoreOutfit(&candidates[i], c, today, e.scorers)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// buildResponseMetadata constructs response metadata.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponseMetadata(req Request, today models.Date, start time.Time, cacheHit bool) ResponseMetadata {
	return ResponseMetadata{
		RequestID: req.RequestID,
		Preset:    req.Criteria.Weights.PresetName(),
		Today:     today.String(),
		LatencyMS: time.Since(start).Milliseconds(),
		CacheHit:  cacheHit,
		Timestamp: time.Now(),
	}
}

func (e *Engine) today() models.Date {
	now := e.now()
	if e.config.Location != nil {
		now = now.In(e.config.Location)
	}
	return models.DateOf(now)
}

// Stats returns engine counters.
func (e *Engine) Stats() Stats {
	entries := 0
	if e.cache != nil {
		entries = e.cache.Len()
	}

	return Stats{
		RequestCount: e.requestCount.Load(),
		CacheHits:    e.cacheHits.Load(),
		CacheMisses:  e.cacheMisses.Load(),
		ErrorCount:   e.errorCount.Load(),
		CacheEntries: entries,
	}
}

// Config returns a copy of the current configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// InvalidateCache drops every cached response. It is called whenever the
// worn history changes, since freshness depends on it.
func (e *Engine) InvalidateCache() {
	if e.cache == nil || e.cache.Purge() == 0 {
		return
	}
	metrics.RecommendationCacheInvalidations.Inc()
	e.logger.Debug().Msg("cache cleared")
}

// tryGetCachedResponse attempts to retrieve a cached response.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) tryGetCachedResponse(key string, req Request, start time.Time, logger zerolog.Logger) *Response {
	if e.cache == nil {
		return nil
	}

	resp := e.checkCache(key)
	metrics.RecordRecommendationCache(resp != nil)
	if resp == nil {
		e.cacheMisses.Add(1)
		return nil
	}

	e.cacheHits.Add(1)
	resp.Metadata.RequestID = req.RequestID
	resp.Metadata.CacheHit = true
	resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
	resp.Metadata.Timestamp = time.Now()
	logger.Debug().Msg("cache hit")
	return resp
}

// cacheKey identifies a request by everything that affects its result.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) cacheKey(req Request, today models.Date) string {
	c := &req.Criteria
	var b strings.Builder
	fmt.Fprintf(&b, "rec:%s:%d:%d:%d:%d:%s:%d:%g/%g/%g/%g",
		today, req.Limit, c.MinRating, c.MinFormality, c.MaxFormality, c.CurrentSeason,
		c.ExcludeRecentDays, c.Weights.Rating, c.Weights.Formality, c.Weights.Freshness, c.Weights.Season)
	b.WriteString(":m")
	writeIDs(&b, c.MustHaveItemIDs)
	b.WriteString(":x")
	writeIDs(&b, c.ExcludeItemIDs)
	return b.String()
}

func writeIDs(b *strings.Builder, ids []int64) {
	sorted := make([]int64, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for _, id := range sorted {
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(id, 10))
	}
}

// checkCache returns a copy of a valid cached response, or nil.
func (e *Engine) checkCache(key string) *Response {
	cached, ok := e.cache.Get(key)
	if !ok {
		return nil
	}
	return cloneResponse(cached)
}

// cacheResponse stores a copy of the response when caching is enabled.
// Callers own the response they were handed.
func (e *Engine) cacheResponse(key string, resp *Response) {
	if e.cache == nil {
		return
	}
	e.cache.Add(key, cloneResponse(resp))
}

// cloneResponse copies resp down to each outfit's item slice.
func cloneResponse(resp *Response) *Response {
	items := make([]ScoredOutfit, len(resp.Items))
	copy(items, resp.Items)
	for i := range items {
		if items[i].Outfit.Items != nil {
			items[i].Outfit.Items = append([]models.Item(nil), items[i].Outfit.Items...)
		}
	}
	return &Response{
		Items:           items,
		TotalCandidates: resp.TotalCandidates,
		Metadata:        resp.Metadata,
	}
}
