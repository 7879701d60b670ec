// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
Package middleware provides HTTP middleware shared by the API router.

  - RequestID: accepts or generates an X-Request-ID, echoes it on the
    response and stores it with a correlation ID and a request-scoped
    zerolog logger in the request context.
  - PrometheusMetrics: records request count, latency and in-flight
    requests, labelled by the chi route pattern so path parameters do not
    explode label cardinality.

Both have the func(http.Handler) http.Handler shape chi expects:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
