// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
Package api provides the HTTP REST API for the wardrobe server.

All endpoints live under /api/v1 and answer with the models.APIResponse
envelope:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "request_id": "...", "query_time_ms": 3}
	}

Errors use status "error" and carry an error object with a code such as
VALIDATION_ERROR, INVALID_CRITERIA, OUTFIT_NOT_FOUND or HISTORY_NOT_FOUND.

# Endpoints

Health:
  - GET /api/v1/health, /api/v1/health/live, /api/v1/health/ready
  - GET /metrics (Prometheus)

Recommendations:
  - POST /api/v1/recommendations
  - GET /api/v1/recommendations/basic
  - GET /api/v1/recommendations/fresh
  - GET /api/v1/recommendations/favorites
  - GET /api/v1/recommendations/stats

Worn history:
  - POST /api/v1/outfits/{outfitID}/worn (201 when recorded, 200 when already recorded)
  - GET /api/v1/outfits/{outfitID}/history
  - GET /api/v1/history, /api/v1/history/range, /api/v1/history/month
  - GET, DELETE /api/v1/history/{historyID}

Catalog:
  - GET, POST /api/v1/items and GET /api/v1/items/{itemID}
  - GET, POST /api/v1/outfits
  - GET, PUT, DELETE /api/v1/outfits/{outfitID}

Catalog writes purge the recommendation cache before responding. Worn
history writes are purged by the ledger.

# Middleware

Every request gets a request ID (X-Request-ID), panic recovery, CORS,
Prometheus instrumentation and gzip compression. The /api/v1 group is rate
limited per client IP, and mutating routes have a stricter limit of their own.

# Thread Safety

Handler is safe for concurrent use. It holds no per-request state; the
services it wraps provide their own synchronization.
*/
package api
