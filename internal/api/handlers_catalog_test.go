// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package api

import (
	"net/http"
	"testing"

	"github.com/tomtom215/wardrobe/internal/models"
)

func TestCreateItem(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"valid item", `{"category":"top","name":"Oxford shirt","season":"spring"}`, http.StatusCreated, ""},
		{"all-season item", `{"category":"shoes"}`, http.StatusCreated, ""},
		{"season alias is not accepted", `{"category":"outerwear","season":"autumn"}`, http.StatusBadRequest, CodeValidation},
		{"missing category", `{"name":"mystery"}`, http.StatusBadRequest, CodeValidation},
		{"unknown category", `{"category":"hat"}`, http.StatusBadRequest, CodeValidation},
		{"bad image url", `{"category":"bag","image_url":"not a url"}`, http.StatusBadRequest, CodeValidation},
		{"empty body", "", http.StatusBadRequest, CodeInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := doRequest(t, env.server, http.MethodPost, "/api/v1/items", tt.body)
			if tt.wantCode != "" {
				assertError(t, rec, tt.wantStatus, tt.wantCode)
				return
			}
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestCreateAndGetItem(t *testing.T) {
	env := newTestEnv(t)

	rec := doRequest(t, env.server, http.MethodPost, "/api/v1/items", `{"category":"outerwear","season":"fall"}`)
	var item models.Item
	decodeData(t, decodeEnvelope(t, rec), &item)
	if item.Season != models.SeasonFall {
		t.Errorf("season = %q, want fall", item.Season)
	}

	rec = doRequest(t, env.server, http.MethodGet, "/api/v1/items/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	rec = doRequest(t, env.server, http.MethodGet, "/api/v1/items/2", "")
	assertError(t, rec, http.StatusNotFound, CodeItemNotFound)
}

func TestCreateOutfit(t *testing.T) {
	env := newTestEnv(t)
	doRequest(t, env.server, http.MethodPost, "/api/v1/items", `{"category":"top"}`)
	doRequest(t, env.server, http.MethodPost, "/api/v1/items", `{"category":"bottom"}`)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"valid outfit", `{"name":"office","rating":4,"formality_level":3,"item_ids":[1,2]}`, http.StatusCreated, ""},
		{"no items", `{"rating":4,"formality_level":3,"item_ids":[]}`, http.StatusBadRequest, CodeValidation},
		{"duplicate items", `{"rating":4,"formality_level":3,"item_ids":[1,1]}`, http.StatusBadRequest, CodeValidation},
		{"rating out of scale", `{"rating":0,"formality_level":3,"item_ids":[1]}`, http.StatusBadRequest, CodeValidation},
		{"unknown item", `{"rating":4,"formality_level":3,"item_ids":[9]}`, http.StatusNotFound, CodeItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, env.server, http.MethodPost, "/api/v1/outfits", tt.body)
			if tt.wantCode != "" {
				assertError(t, rec, tt.wantStatus, tt.wantCode)
				return
			}
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			var outfit models.Outfit
			decodeData(t, decodeEnvelope(t, rec), &outfit)
			if len(outfit.Items) != 2 {
				t.Errorf("items = %d, want 2", len(outfit.Items))
			}
		})
	}
}

func TestListCatalog_EmptyIsArray(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/v1/items", "/api/v1/outfits"} {
		rec := doRequest(t, env.server, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d", path, rec.Code)
		}
		if !containsString(rec.Body.String(), `"count":0`) {
			t.Errorf("%s body = %s, want count 0", path, rec.Body.String())
		}
	}
}

// seedOutfit creates two items and one outfit built from them.
func seedOutfit(t *testing.T, env *testEnv) {
	t.Helper()
	doRequest(t, env.server, http.MethodPost, "/api/v1/items", `{"category":"top"}`)
	doRequest(t, env.server, http.MethodPost, "/api/v1/items", `{"category":"bottom"}`)
	rec := doRequest(t, env.server, http.MethodPost, "/api/v1/outfits",
		`{"name":"office","rating":3,"formality_level":3,"item_ids":[1,2]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed outfit status = %d (body %s)", rec.Code, rec.Body.String())
	}
}

func TestUpdateOutfit(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"valid update", "/api/v1/outfits/1", `{"name":"weekend","rating":5,"formality_level":1,"memo":"loose fit"}`, http.StatusOK, ""},
		{"unknown outfit", "/api/v1/outfits/9", `{"rating":5,"formality_level":1}`, http.StatusNotFound, CodeOutfitNotFound},
		{"rating out of scale", "/api/v1/outfits/1", `{"rating":6,"formality_level":1}`, http.StatusBadRequest, CodeValidation},
		{"bad id", "/api/v1/outfits/abc", `{"rating":5,"formality_level":1}`, http.StatusBadRequest, CodeValidation},
		{"empty body", "/api/v1/outfits/1", "", http.StatusBadRequest, CodeInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			seedOutfit(t, env)

			rec := doRequest(t, env.server, http.MethodPut, tt.path, tt.body)
			if tt.wantCode != "" {
				assertError(t, rec, tt.wantStatus, tt.wantCode)
				return
			}
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			var outfit models.Outfit
			decodeData(t, decodeEnvelope(t, rec), &outfit)
			if outfit.Name != "weekend" || outfit.Rating != 5 || outfit.FormalityLevel != 1 || outfit.Memo != "loose fit" {
				t.Errorf("outfit = %+v", outfit)
			}
			if len(outfit.Items) != 2 {
				t.Errorf("items = %d, want 2 (update keeps links)", len(outfit.Items))
			}
		})
	}
}

func TestDeleteOutfit(t *testing.T) {
	env := newTestEnv(t)
	seedOutfit(t, env)

	rec := doRequest(t, env.server, http.MethodDelete, "/api/v1/outfits/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d (body %s)", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, env.server, http.MethodGet, "/api/v1/outfits/1", "")
	assertError(t, rec, http.StatusNotFound, CodeOutfitNotFound)

	rec = doRequest(t, env.server, http.MethodDelete, "/api/v1/outfits/1", "")
	assertError(t, rec, http.StatusNotFound, CodeOutfitNotFound)
}

func TestCatalogWritesPurgeRecommendationCache(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantPurges int
	}{
		{"create item", http.MethodPost, "/api/v1/items", `{"category":"shoes"}`, 1},
		{"create outfit", http.MethodPost, "/api/v1/outfits", `{"rating":4,"formality_level":2,"item_ids":[1]}`, 1},
		{"update outfit", http.MethodPut, "/api/v1/outfits/1", `{"rating":1,"formality_level":1}`, 1},
		{"delete outfit", http.MethodDelete, "/api/v1/outfits/1", "", 1},
		{"rejected item", http.MethodPost, "/api/v1/items", `{"category":"hat"}`, 0},
		{"rejected outfit", http.MethodPost, "/api/v1/outfits", `{"rating":4,"formality_level":2,"item_ids":[9]}`, 0},
		{"update of unknown outfit", http.MethodPut, "/api/v1/outfits/9", `{"rating":1,"formality_level":1}`, 0},
		{"delete of unknown outfit", http.MethodDelete, "/api/v1/outfits/9", "", 0},
		{"read", http.MethodGet, "/api/v1/outfits/1", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			seedOutfit(t, env)
			before := env.recommender.purgeCount()

			doRequest(t, env.server, tt.method, tt.path, tt.body)

			if got := env.recommender.purgeCount() - before; got != tt.wantPurges {
				t.Errorf("cache purges = %d, want %d", got, tt.wantPurges)
			}
		})
	}
}
