// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/wardrobe/internal/middleware"
)

// Router wires handlers to routes.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	// Applied to ALL routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		writes := router.chiMiddleware.RateLimitWrites()

		r.Route("/recommendations", func(r chi.Router) {
			r.Post("/", router.handler.Recommend)
			r.Get("/basic", router.handler.RecommendBasic)
			r.Get("/fresh", router.handler.RecommendFresh)
			r.Get("/favorites", router.handler.RecommendFavorites)
			r.Get("/stats", router.handler.RecommendStats)
		})

		r.Route("/outfits", func(r chi.Router) {
			r.Get("/", router.handler.ListOutfits)
			r.With(writes).Post("/", router.handler.CreateOutfit)
			r.Route("/{outfitID}", func(r chi.Router) {
				r.Get("/", router.handler.GetOutfit)
				r.With(writes).Put("/", router.handler.UpdateOutfit)
				r.With(writes).Delete("/", router.handler.DeleteOutfit)
				r.Get("/history", router.handler.ListOutfitHistory)
				r.With(writes).Post("/worn", router.handler.RecordWorn)
			})
		})

		r.Route("/history", func(r chi.Router) {
			r.Get("/", router.handler.ListHistory)
			r.Get("/range", router.handler.ListHistoryRange)
			r.Get("/month", router.handler.ListHistoryMonth)
			r.Get("/{historyID}", router.handler.GetHistory)
			r.With(writes).Delete("/{historyID}", router.handler.RemoveHistory)
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", router.handler.ListItems)
			r.With(writes).Post("/", router.handler.CreateItem)
			r.Get("/{itemID}", router.handler.GetItem)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
