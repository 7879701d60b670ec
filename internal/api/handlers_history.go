// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/wardrobe/internal/models"
)

// RecordWorn handles POST /api/v1/outfits/{outfitID}/worn.
//
// The body is optional: {"worn_date": "2026-03-01"}. Without a date the
// outfit is recorded as worn today. A new record answers 201; a record that
// already existed for that date answers 200 with created=false.
func (h *Handler) RecordWorn(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	outfitID, err := pathID(r, "outfitID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	var req WornRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		respondError(w, r, http.StatusBadRequest, CodeInvalidJSON, "Invalid JSON body: "+err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	date := h.today()
	if req.WornDate != "" {
		// Validated by the isodate tag.
		date, _ = models.ParseDate(req.WornDate)
	}

	rec, created, err := h.history.RecordWorn(r.Context(), outfitID, date)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondSuccess(w, r, status, WornResponse{Record: rec, Created: created}, start)
}

// RemoveHistory handles DELETE /api/v1/history/{historyID}.
func (h *Handler) RemoveHistory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	historyID, err := pathID(r, "historyID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	rec, err := h.history.RemoveRecord(r.Context(), historyID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, rec, start)
}

// GetHistory handles GET /api/v1/history/{historyID}.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	historyID, err := pathID(r, "historyID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	rec, err := h.history.GetHistory(r.Context(), historyID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, rec, start)
}

// ListHistory handles GET /api/v1/history, newest first.
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	records, err := h.history.ListHistory(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, newHistoryList(records), start)
}

// ListOutfitHistory handles GET /api/v1/outfits/{outfitID}/history.
func (h *Handler) ListOutfitHistory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	outfitID, err := pathID(r, "outfitID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	records, err := h.history.ListHistoryByOutfit(r.Context(), outfitID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, newHistoryList(records), start)
}

// ListHistoryRange handles GET /api/v1/history/range?start=YYYY-MM-DD&end=YYYY-MM-DD.
// Both bounds are inclusive.
func (h *Handler) ListHistoryRange(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := HistoryRangeQuery{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}
	from, _ := models.ParseDate(q.Start)
	to, _ := models.ParseDate(q.End)

	records, err := h.history.ListHistoryByDateRange(r.Context(), from, to)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, newHistoryList(records), start)
}

// ListHistoryMonth handles GET /api/v1/history/month?year=2026&month=3.
// Year and month default to the current month.
func (h *Handler) ListHistoryMonth(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	today := h.today()

	year, err := queryInt(r, "year", today.Year())
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}
	month, err := queryInt(r, "month", int(today.Month()))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}
	q := HistoryMonthQuery{Year: year, Month: month}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	records, err := h.history.ListHistoryByMonth(r.Context(), q.Year, q.Month)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, newHistoryList(records), start)
}
