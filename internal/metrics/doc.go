// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
Package metrics provides Prometheus metrics for the wardrobe server.

Collectors are registered with the default registry through promauto and
exposed by the API at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP:
  - wardrobe_api_requests_total (method, endpoint, status_code)
  - wardrobe_api_request_duration_seconds (method, endpoint)
  - wardrobe_api_active_requests
  - wardrobe_api_rate_limit_hits_total (endpoint)

Recommendations:
  - wardrobe_recommendation_requests_total (mode, result)
  - wardrobe_recommendation_duration_seconds (mode)
  - wardrobe_recommendation_candidates
  - wardrobe_recommendation_returned
  - wardrobe_recommendation_cache_hits_total / _misses_total / _invalidations_total

Ledger:
  - wardrobe_ledger_operations_total (operation, result)
  - wardrobe_ledger_duration_seconds (operation)

Database:
  - wardrobe_db_query_duration_seconds (operation, table)
  - wardrobe_db_query_errors_total (operation, table, error_type)

Events and circuit breaker:
  - wardrobe_events_published_total / _publish_failed_total (topic)
  - wardrobe_events_consumed_total (topic, result)
  - wardrobe_circuit_breaker_state (name): 0=closed, 1=half-open, 2=open
  - wardrobe_circuit_breaker_requests_total (name, result)
  - wardrobe_circuit_breaker_state_transitions_total (name, from_state, to_state)

# Usage

	start := time.Now()
	rows, err := db.QueryContext(ctx, query)
	metrics.RecordDBQuery("select", "outfits", time.Since(start), err)
*/
package metrics
