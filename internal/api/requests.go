// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package api

import (
	"github.com/tomtom215/wardrobe/internal/models"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

// RecommendRequest is the body of POST /api/v1/recommendations.
//
// Preset selects named weights. It may not be combined with explicit
// criteria.weights; when both are empty the configured default applies.
type RecommendRequest struct {
	Criteria recommend.Criteria `json:"criteria"`
	Preset   string             `json:"preset,omitempty" validate:"preset"`
	Limit    int                `json:"limit,omitempty" validate:"min=0"`
}

// WornRequest is the optional body of POST /api/v1/outfits/{outfitID}/worn.
// An empty WornDate means today.
type WornRequest struct {
	WornDate string `json:"worn_date,omitempty" validate:"omitempty,isodate"`
}

// WornResponse reports the record and whether this call created it.
type WornResponse struct {
	Record  *models.HistoryRecord `json:"record"`
	Created bool                  `json:"created"`
}

// HistoryRangeQuery holds the parameters of GET /api/v1/history/range.
type HistoryRangeQuery struct {
	Start string `validate:"required,isodate"`
	End   string `validate:"required,isodate"`
}

// HistoryMonthQuery holds the parameters of GET /api/v1/history/month.
type HistoryMonthQuery struct {
	Year  int `validate:"min=1,max=9999"`
	Month int `validate:"min=1,max=12"`
}

// CreateItemRequest is the body of POST /api/v1/items.
type CreateItemRequest struct {
	Category string `json:"category" validate:"required,category"`
	Name     string `json:"name,omitempty" validate:"max=200"`
	Color    string `json:"color,omitempty" validate:"max=50"`
	Season   string `json:"season,omitempty" validate:"season"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url,max=2048"`
}

// CreateOutfitRequest is the body of POST /api/v1/outfits.
type CreateOutfitRequest struct {
	Name           string  `json:"name,omitempty" validate:"max=200"`
	Rating         int     `json:"rating" validate:"min=1,max=5"`
	FormalityLevel int     `json:"formality_level" validate:"min=1,max=5"`
	Memo           string  `json:"memo,omitempty" validate:"max=2000"`
	ItemIDs        []int64 `json:"item_ids" validate:"required,min=1,unique,dive,gt=0"`
}

// UpdateOutfitRequest is the body of PUT /api/v1/outfits/{outfitID}. It
// replaces the descriptive fields; item links are fixed at creation.
type UpdateOutfitRequest struct {
	Name           string `json:"name,omitempty" validate:"max=200"`
	Rating         int    `json:"rating" validate:"min=1,max=5"`
	FormalityLevel int    `json:"formality_level" validate:"min=1,max=5"`
	Memo           string `json:"memo,omitempty" validate:"max=2000"`
}

// HistoryList wraps a list of records with its count.
type HistoryList struct {
	Records []models.HistoryRecord `json:"records"`
	Count   int                    `json:"count"`
}

func newHistoryList(records []models.HistoryRecord) HistoryList {
	if records == nil {
		records = []models.HistoryRecord{}
	}
	return HistoryList{Records: records, Count: len(records)}
}
