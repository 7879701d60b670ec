// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package models

import (
	"fmt"
	"strings"
	"time"
)

// Season is the season an item is suited to. The empty Season means the
// item is worn in every season.
type Season string

const (
	SeasonAny    Season = ""
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// Seasons lists the concrete seasons in calendar order.
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// ParseSeason parses a season name case-insensitively. "" and "all" map to SeasonAny.
func ParseSeason(s string) (Season, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "any":
		return SeasonAny, nil
	case "spring":
		return SeasonSpring, nil
	case "summer":
		return SeasonSummer, nil
	case "fall", "autumn":
		return SeasonFall, nil
	case "winter":
		return SeasonWinter, nil
	default:
		return SeasonAny, fmt.Errorf("unknown season %q", s)
	}
}

// IsValid reports whether s is SeasonAny or one of the four seasons.
func (s Season) IsValid() bool {
	switch s {
	case SeasonAny, SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter:
		return true
	}
	return false
}

// Category classifies an item.
type Category string

const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryOuterwear Category = "outerwear"
	CategoryDress     Category = "dress"
	CategoryShoes     Category = "shoes"
	CategoryBag       Category = "bag"
	CategoryAccessory Category = "accessory"
)

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	switch c {
	case CategoryTop, CategoryBottom, CategoryOuterwear, CategoryDress,
		CategoryShoes, CategoryBag, CategoryAccessory:
		return true
	}
	return false
}

// Item is a single wardrobe piece.
type Item struct {
	ID        int64     `json:"id"`
	Category  Category  `json:"category"`
	Name      string    `json:"name,omitempty"`
	Color     string    `json:"color,omitempty"`
	Season    Season    `json:"season,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Outfit is a rated collection of items recommended as one unit.
//
// WornCount and LastWornDate are derived from the outfit's history records
// and are only written by the worn-history ledger.
type Outfit struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name,omitempty"`
	Rating         int       `json:"rating"`
	FormalityLevel int       `json:"formality_level"`
	Memo           string    `json:"memo,omitempty"`
	WornCount      int       `json:"worn_count"`
	LastWornDate   Date      `json:"last_worn_date"`
	Items          []Item    `json:"items"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ItemIDs returns the ids of the outfit's items in order.
func (o *Outfit) ItemIDs() []int64 {
	ids := make([]int64, len(o.Items))
	for i := range o.Items {
		ids[i] = o.Items[i].ID
	}
	return ids
}

// HasItem reports whether the outfit contains the item.
func (o *Outfit) HasItem(id int64) bool {
	for i := range o.Items {
		if o.Items[i].ID == id {
			return true
		}
	}
	return false
}

// HistoryRecord records that an outfit was worn on a date.
type HistoryRecord struct {
	ID        int64     `json:"id"`
	OutfitID  int64     `json:"outfit_id"`
	WornDate  Date      `json:"worn_date"`
	CreatedAt time.Time `json:"created_at"`
}

// Rating and formality bounds shared by the catalog and the recommender.
const (
	MinScale = 1
	MaxScale = 5
)
