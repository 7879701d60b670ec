// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/wardrobe/internal/database"
	"github.com/tomtom215/wardrobe/internal/ledger"
	"github.com/tomtom215/wardrobe/internal/models"
)

// Error codes returned in APIError.Code.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidJSON      = "INVALID_JSON"
	CodeInvalidCriteria  = "INVALID_CRITERIA"
	CodeOutfitNotFound   = "OUTFIT_NOT_FOUND"
	CodeItemNotFound     = "ITEM_NOT_FOUND"
	CodeHistoryNotFound  = "HISTORY_NOT_FOUND"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeRateLimited      = "RATE_LIMITED"
	CodeTimeout          = "TIMEOUT"
	CodeDatabase         = "DATABASE_ERROR"
	CodeServiceNotReady  = "SERVICE_UNAVAILABLE"
)

// errorMapping pairs a sentinel with its HTTP status and code.
type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// errorMappings is checked in order; the first errors.Is match wins.
var errorMappings = []errorMapping{
	{models.ErrOutfitNotFound, http.StatusNotFound, CodeOutfitNotFound, "Outfit not found"},
	{models.ErrItemNotFound, http.StatusNotFound, CodeItemNotFound, "Item not found"},
	{models.ErrHistoryNotFound, http.StatusNotFound, CodeHistoryNotFound, "History record not found"},
	{models.ErrInvalidCriteria, http.StatusBadRequest, CodeInvalidCriteria, ""},
	{ledger.ErrInvalidDate, http.StatusBadRequest, CodeValidation, ""},
	{ledger.ErrInvalidRange, http.StatusBadRequest, CodeValidation, ""},
	{database.ErrInvalidOutfit, http.StatusBadRequest, CodeValidation, ""},
	{database.ErrInvalidItem, http.StatusBadRequest, CodeValidation, ""},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, CodeTimeout, "Request timed out"},
}

// classifyError maps a service error to an HTTP status, code and client
// message. An empty mapping message means the error text is safe to show.
func classifyError(err error) (status int, code, message string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			return m.status, m.code, msg
		}
	}
	return http.StatusInternalServerError, CodeDatabase, "Internal server error"
}

// respondServiceError writes the error response for a service-layer error.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := classifyError(err)
	respondError(w, r, status, code, message, err)
}

var errNoHealthChecker = errors.New("health checker not configured")
