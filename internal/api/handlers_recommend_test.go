// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package api

import (
	"net/http"
	"testing"

	"github.com/tomtom215/wardrobe/internal/models"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

func TestRecommend(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantWeights recommend.ScoringWeights
		wantLimit   int
		wantSeason  models.Season
	}{
		{
			name:        "preset resolves to weights",
			body:        `{"criteria":{"min_rating":3,"current_season":"winter"},"preset":"freshness-first","limit":3}`,
			wantWeights: recommend.FreshnessFirstWeights(),
			wantLimit:   3,
			wantSeason:  models.SeasonWinter,
		},
		{
			name:        "explicit weights pass through",
			body:        `{"criteria":{"weights":{"rating":1,"formality":0,"freshness":0,"season":0}}}`,
			wantWeights: recommend.ScoringWeights{Rating: 1},
		},
		{
			name: "empty body leaves defaults to the engine",
			body: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := doRequest(t, env.server, http.MethodPost, "/api/v1/recommendations", tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
			}

			got := env.recommender.lastReq
			if got.Criteria.Weights != tt.wantWeights {
				t.Errorf("weights = %+v, want %+v", got.Criteria.Weights, tt.wantWeights)
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", got.Limit, tt.wantLimit)
			}
			if got.Criteria.CurrentSeason != tt.wantSeason {
				t.Errorf("season = %q, want %q", got.Criteria.CurrentSeason, tt.wantSeason)
			}
			if got.RequestID == "" {
				t.Error("request id was not propagated from the middleware")
			}
		})
	}
}

func TestRecommend_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		engineErr  error
		wantStatus int
		wantCode   string
	}{
		{"unknown preset", `{"preset":"newest-first"}`, nil, http.StatusBadRequest, CodeValidation},
		{"preset with weights", `{"preset":"balanced","criteria":{"weights":{"rating":1}}}`, nil, http.StatusBadRequest, CodeInvalidCriteria},
		{"rating above scale", `{"criteria":{"min_rating":6}}`, nil, http.StatusBadRequest, CodeValidation},
		{"negative weight", `{"criteria":{"weights":{"rating":-0.5}}}`, nil, http.StatusBadRequest, CodeValidation},
		{"unknown season", `{"criteria":{"current_season":"monsoon"}}`, nil, http.StatusBadRequest, CodeValidation},
		{"unknown field", `{"criteria":{},"colour":"red"}`, nil, http.StatusBadRequest, CodeInvalidJSON},
		{"engine rejects criteria", `{}`, models.ErrInvalidCriteria, http.StatusBadRequest, CodeInvalidCriteria},
		{"engine storage failure", `{}`, errStorage, http.StatusInternalServerError, CodeDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.recommender.err = tt.engineErr

			rec := doRequest(t, env.server, http.MethodPost, "/api/v1/recommendations", tt.body)
			assertError(t, rec, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestRecommend_CachedFlag(t *testing.T) {
	env := newTestEnv(t)
	env.recommender.resp = &recommend.Response{Metadata: recommend.ResponseMetadata{CacheHit: true}}

	rec := doRequest(t, env.server, http.MethodPost, "/api/v1/recommendations", "{}")
	env2 := decodeEnvelope(t, rec)
	if !env2.Metadata.Cached {
		t.Error("metadata.cached = false, want true for a cache hit")
	}
	if !containsString(rec.Body.String(), `"items":[]`) {
		t.Errorf("empty result should encode items as [], got %s", rec.Body.String())
	}
}

func TestRecommendBasic(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  recommend.BasicRequest
	}{
		{"configured defaults", "", recommend.BasicRequest{MinRating: 3, MinFormality: 3, ExcludeRecentDays: 2}},
		{"overrides", "?min_rating=4&min_formality=1&exclude_days=7", recommend.BasicRequest{MinRating: 4, MinFormality: 1, ExcludeRecentDays: 7}},
		{"recency disabled", "?exclude_recent=false&exclude_days=7", recommend.BasicRequest{MinRating: 3, MinFormality: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := doRequest(t, env.server, http.MethodGet, "/api/v1/recommendations/basic"+tt.query, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d (body %s)", rec.Code, rec.Body.String())
			}
			if env.recommender.lastBasic != tt.want {
				t.Errorf("basic request = %+v, want %+v", env.recommender.lastBasic, tt.want)
			}
		})
	}
}

func TestRecommendBasic_Errors(t *testing.T) {
	for _, query := range []string{"?min_rating=high", "?exclude_recent=maybe", "?exclude_days=-1"} {
		t.Run(query, func(t *testing.T) {
			env := newTestEnv(t)
			rec := doRequest(t, env.server, http.MethodGet, "/api/v1/recommendations/basic"+query, "")
			assertError(t, rec, http.StatusBadRequest, CodeValidation)
		})
	}
}

func TestRecommendFreshAndFavorites(t *testing.T) {
	env := newTestEnv(t)

	rec := doRequest(t, env.server, http.MethodGet, "/api/v1/recommendations/fresh?min_rating=4&limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("fresh status = %d", rec.Code)
	}
	if env.recommender.lastArgs != [2]int{4, 2} {
		t.Errorf("fresh args = %v, want [4 2]", env.recommender.lastArgs)
	}

	rec = doRequest(t, env.server, http.MethodGet, "/api/v1/recommendations/favorites?min_formality=3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("favorites status = %d", rec.Code)
	}
	if env.recommender.lastArgs != [2]int{3, 0} {
		t.Errorf("favorites args = %v, want [3 0]", env.recommender.lastArgs)
	}

	rec = doRequest(t, env.server, http.MethodGet, "/api/v1/recommendations/fresh?limit=ten", "")
	assertError(t, rec, http.StatusBadRequest, CodeValidation)
}

func TestRecommendStats(t *testing.T) {
	env := newTestEnv(t)

	rec := doRequest(t, env.server, http.MethodGet, "/api/v1/recommendations/stats", "")
	var stats recommend.Stats
	decodeData(t, decodeEnvelope(t, rec), &stats)
	if stats.RequestCount != 7 {
		t.Errorf("request_count = %d, want 7", stats.RequestCount)
	}
}
