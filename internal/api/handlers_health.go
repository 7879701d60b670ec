// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/wardrobe/internal/models"
)

// healthPingTimeout bounds the storage ping of the health endpoints.
const healthPingTimeout = 2 * time.Second

// Health reports overall status. It always answers 200; a storage outage
// shows as status "degraded".
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.pingDatabase(r.Context()) == nil

	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthStatus{
			Status:            status,
			Version:           h.version,
			DatabaseConnected: dbConnected,
			Uptime:            time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}

// HealthLive is the liveness probe. It never touches storage.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"status": "alive",
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}

// HealthReady is the readiness probe: 503 until storage answers a ping.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.pingDatabase(r.Context()); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status: "error",
			Data: map[string]interface{}{
				"status":   "not_ready",
				"database": false,
			},
			Metadata: models.Metadata{Timestamp: time.Now().UTC()},
			Error: &models.APIError{
				Code:    CodeServiceNotReady,
				Message: "Database is not reachable",
			},
		})
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"status":   "ready",
			"database": true,
		},
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}

func (h *Handler) pingDatabase(ctx context.Context) error {
	if h.health == nil {
		return errNoHealthChecker
	}
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return h.health.Ping(ctx)
}
