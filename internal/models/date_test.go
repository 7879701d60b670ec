// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		want    Date
		wantErr bool
	}{
		{"2026-03-01", NewDate(2026, time.March, 1), false},
		{"2024-02-29", NewDate(2024, time.February, 29), false},
		{"2026-13-01", Date{}, true},
		{"03/01/2026", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDate_DaysSince(t *testing.T) {
	base := NewDate(2026, time.March, 10)

	tests := []struct {
		name    string
		earlier Date
		want    int
	}{
		{"same day", base, 0},
		{"ten days", NewDate(2026, time.February, 28), 10},
		{"future", NewDate(2026, time.March, 12), -2},
		{"across year", NewDate(2025, time.December, 31), 69},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.DaysSince(tt.earlier); got != tt.want {
				t.Errorf("DaysSince() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDate_AddDays(t *testing.T) {
	d := NewDate(2026, time.March, 1)
	if got := d.AddDays(-1); got.String() != "2026-02-28" {
		t.Errorf("AddDays(-1) = %s, want 2026-02-28", got)
	}
	if got := d.AddDays(31); got.String() != "2026-04-01" {
		t.Errorf("AddDays(31) = %s, want 2026-04-01", got)
	}
}

func TestMaxDate(t *testing.T) {
	a := NewDate(2026, time.January, 5)
	b := NewDate(2026, time.January, 9)

	if got := MaxDate(a, b); !got.Equal(b) {
		t.Errorf("MaxDate(a, b) = %s, want %s", got, b)
	}
	if got := MaxDate(b, a); !got.Equal(b) {
		t.Errorf("MaxDate(b, a) = %s, want %s", got, b)
	}
	if got := MaxDate(Date{}, a); !got.Equal(a) {
		t.Errorf("MaxDate(zero, a) = %s, want %s", got, a)
	}
	if got := MaxDate(a, Date{}); !got.Equal(a) {
		t.Errorf("MaxDate(a, zero) = %s, want %s", got, a)
	}
	if got := MaxDate(Date{}, Date{}); !got.IsZero() {
		t.Errorf("MaxDate(zero, zero) = %s, want zero", got)
	}
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		D Date `json:"d"`
	}

	data, err := json.Marshal(wrapper{D: NewDate(2026, time.May, 4)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"d":"2026-05-04"}` {
		t.Errorf("Marshal = %s", data)
	}

	data, err = json.Marshal(wrapper{})
	if err != nil {
		t.Fatalf("Marshal zero: %v", err)
	}
	if string(data) != `{"d":null}` {
		t.Errorf("Marshal zero = %s", data)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"d":"2026-05-04"}`), &w); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if w.D.String() != "2026-05-04" {
		t.Errorf("Unmarshal = %s", w.D)
	}

	if err := json.Unmarshal([]byte(`{"d":"May 4"}`), &w); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     interface{}
		want    string
		wantErr bool
	}{
		{"nil", nil, "", false},
		{"string", "2026-01-02", "2026-01-02", false},
		{"bytes", []byte("2026-01-02"), "2026-01-02", false},
		{"timestamp string", "2026-01-02 00:00:00+00:00", "2026-01-02", false},
		{"time", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), "2026-01-02", false},
		{"int", 42, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tt.src)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if d.String() != tt.want {
				t.Errorf("Scan() = %q, want %q", d.String(), tt.want)
			}
		})
	}
}

func TestDate_Value(t *testing.T) {
	v, err := Date{}.Value()
	if err != nil || v != nil {
		t.Errorf("zero Value() = %v, %v; want nil, nil", v, err)
	}

	v, err = NewDate(2026, time.June, 30).Value()
	if err != nil {
		t.Fatalf("Value(): %v", err)
	}
	if v != "2026-06-30" {
		t.Errorf("Value() = %v, want 2026-06-30", v)
	}
}
