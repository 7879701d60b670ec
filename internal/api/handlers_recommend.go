// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/wardrobe/internal/logging"
	"github.com/tomtom215/wardrobe/internal/models"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

// Recommend handles POST /api/v1/recommendations.
//
// Example body:
//
//	{"criteria": {"min_rating": 3, "current_season": "winter", "exclude_recent_days": 7},
//	 "preset": "freshness-first", "limit": 5}
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		respondError(w, r, http.StatusBadRequest, CodeInvalidJSON, "Invalid JSON body: "+err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	criteria := req.Criteria
	if req.Preset != "" {
		if !criteria.Weights.IsZero() {
			respondError(w, r, http.StatusBadRequest, CodeInvalidCriteria,
				"preset and criteria.weights are mutually exclusive", nil)
			return
		}
		weights, err := recommend.WeightsForPreset(req.Preset)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		criteria.Weights = weights
	}

	resp, err := h.recommender.Recommend(r.Context(), recommend.Request{
		Criteria:  criteria,
		Limit:     req.Limit,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	h.respondRecommendation(w, r, resp, start)
}

// RecommendFresh handles GET /api/v1/recommendations/fresh?min_rating=&limit=.
func (h *Handler) RecommendFresh(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	minRating, err := queryInt(r, "min_rating", 0)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	resp, err := h.recommender.RecommendFresh(r.Context(), minRating, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	h.respondRecommendation(w, r, resp, start)
}

// RecommendFavorites handles GET /api/v1/recommendations/favorites?min_formality=&limit=.
func (h *Handler) RecommendFavorites(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	minFormality, err := queryInt(r, "min_formality", 0)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	resp, err := h.recommender.RecommendFavorites(r.Context(), minFormality, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	h.respondRecommendation(w, r, resp, start)
}

// RecommendBasic handles GET /api/v1/recommendations/basic.
//
// Query parameters default to the configured basic-mode settings:
// min_rating, min_formality, exclude_recent (bool) and exclude_days.
func (h *Handler) RecommendBasic(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defaults := recommend.DefaultConfig().Basic
	if cfg := h.recommender.Config(); cfg != nil {
		defaults = cfg.Basic
	}

	req, err := parseBasicQuery(r, defaults)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	outfits, err := h.recommender.RecommendBasic(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if outfits == nil {
		outfits = []models.Outfit{}
	}

	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"outfits": outfits,
		"count":   len(outfits),
	}, start)
}

// RecommendStats handles GET /api/v1/recommendations/stats.
func (h *Handler) RecommendStats(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, h.recommender.Stats(), time.Now())
}

func parseBasicQuery(r *http.Request, defaults recommend.BasicConfig) (recommend.BasicRequest, error) {
	var req recommend.BasicRequest
	var err error

	if req.MinRating, err = queryInt(r, "min_rating", defaults.MinRating); err != nil {
		return req, err
	}
	if req.MinFormality, err = queryInt(r, "min_formality", defaults.MinFormality); err != nil {
		return req, err
	}
	excludeRecent, err := queryBool(r, "exclude_recent", defaults.ExcludeRecent)
	if err != nil {
		return req, err
	}
	days, err := queryInt(r, "exclude_days", defaults.ExcludeDays)
	if err != nil {
		return req, err
	}
	if days < 0 {
		return req, errors.New("exclude_days must be non-negative")
	}
	if excludeRecent {
		req.ExcludeRecentDays = days
	}
	return req, nil
}

func (h *Handler) respondRecommendation(w http.ResponseWriter, r *http.Request, resp *recommend.Response, start time.Time) {
	out := *resp
	if out.Items == nil {
		out.Items = []recommend.ScoredOutfit{}
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   out,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			RequestID:   logging.RequestIDFromContext(r.Context()),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Cached:      resp.Metadata.CacheHit,
		},
	})
}
