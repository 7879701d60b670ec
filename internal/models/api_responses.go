// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package models

import (
	"time"
)

// APIResponse is the envelope returned by every HTTP endpoint.
//
// Status is "success" (see Data) or "error" (see Error).
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"outfits": [...], "count": 3},
//	  "metadata": {"timestamp": "2026-03-01T08:00:00Z", "query_time_ms": 4}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "OUTFIT_NOT_FOUND", "message": "Outfit not found"},
//	  "metadata": {"timestamp": "2026-03-01T08:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response timing and cache information.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError carries a machine-readable code and a human-readable message.
//
// Common error codes:
//   - VALIDATION_ERROR: malformed request parameters
//   - INVALID_CRITERIA: recommendation criteria out of range or inverted
//   - OUTFIT_NOT_FOUND, ITEM_NOT_FOUND, HISTORY_NOT_FOUND
//   - DATABASE_ERROR: storage failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
