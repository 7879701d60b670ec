// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/wardrobe/internal/models"
)

// CreateItem handles POST /api/v1/items.
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CreateItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeInvalidJSON, "Invalid JSON body: "+err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	// Validated by the season tag.
	season, _ := models.ParseSeason(req.Season)
	item := &models.Item{
		Category: models.Category(req.Category),
		Name:     req.Name,
		Color:    req.Color,
		Season:   season,
		ImageURL: req.ImageURL,
	}
	if err := h.catalog.CreateItem(r.Context(), item); err != nil {
		respondServiceError(w, r, err)
		return
	}
	h.recommender.InvalidateCache()
	respondSuccess(w, r, http.StatusCreated, item, start)
}

// GetItem handles GET /api/v1/items/{itemID}.
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r, "itemID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	item, err := h.catalog.GetItem(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, item, start)
}

// ListItems handles GET /api/v1/items.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	items, err := h.catalog.ListItems(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	}, start)
}

// CreateOutfit handles POST /api/v1/outfits.
func (h *Handler) CreateOutfit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CreateOutfitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeInvalidJSON, "Invalid JSON body: "+err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	outfit := &models.Outfit{
		Name:           req.Name,
		Rating:         req.Rating,
		FormalityLevel: req.FormalityLevel,
		Memo:           req.Memo,
	}
	if err := h.catalog.CreateOutfit(r.Context(), outfit, req.ItemIDs); err != nil {
		respondServiceError(w, r, err)
		return
	}
	h.recommender.InvalidateCache()
	respondSuccess(w, r, http.StatusCreated, outfit, start)
}

// GetOutfit handles GET /api/v1/outfits/{outfitID}.
func (h *Handler) GetOutfit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r, "outfitID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	outfit, err := h.catalog.GetOutfit(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, outfit, start)
}

// ListOutfits handles GET /api/v1/outfits.
func (h *Handler) ListOutfits(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	outfits, err := h.catalog.ListOutfits(r.Context())
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

// UpdateOutfit handles PUT /api/v1/outfits/{outfitID}. Items and wear
// statistics are not touched.
func (h *Handler) UpdateOutfit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r, "outfitID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	var req UpdateOutfitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeInvalidJSON, "Invalid JSON body: "+err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	err = h.catalog.UpdateOutfit(r.Context(), &models.Outfit{
		ID:             id,
		Name:           req.Name,
		Rating:         req.Rating,
		FormalityLevel: req.FormalityLevel,
		Memo:           req.Memo,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	h.recommender.InvalidateCache()

	outfit, err := h.catalog.GetOutfit(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, outfit, start)
}

// DeleteOutfit handles DELETE /api/v1/outfits/{outfitID}. The outfit's
// item links and history go with it.
func (h *Handler) DeleteOutfit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := pathID(r, "outfitID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	if err := h.catalog.DeleteOutfit(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	h.recommender.InvalidateCache()
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{"id": id, "deleted": true}, start)
}
