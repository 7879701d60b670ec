// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	logger := zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel)
	h := NewSlogHandler(logger)

	tests := []struct {
		level slog.Level
		want  bool
	}{
		{slog.LevelDebug, false},
		{slog.LevelInfo, false},
		{slog.LevelWarn, true},
		{slog.LevelError, true},
	}

	for _, tt := range tests {
		if got := h.Enabled(context.Background(), tt.level); got != tt.want {
			t.Errorf("Enabled(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     slog.Level
		wantLevel string
	}{
		{"info", slog.LevelInfo, `"level":"info"`},
		{"warn", slog.LevelWarn, `"level":"warn"`},
		{"error", slog.LevelError, `"level":"error"`},
		{"between info and warn", slog.LevelInfo + 2, `"level":"info"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := NewSlogHandler(zerolog.New(&buf).Level(zerolog.TraceLevel))
			slog.New(h).Log(context.Background(), tt.level, "service event")

			output := buf.String()
			if !strings.Contains(output, tt.wantLevel) {
				t.Errorf("expected %s, got: %s", tt.wantLevel, output)
			}
			if !strings.Contains(output, "service event") {
				t.Errorf("expected message, got: %s", output)
			}
		})
	}
}

func TestSlogHandler_Attributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := NewSlogHandler(zerolog.New(&buf))
	logger := slog.New(h).With("supervisor", "wardrobe")

	logger.Info("service restarted",
		"service", "http-server",
		"attempt", 3,
		"backoff", 2*time.Second,
		"healthy", false,
		"ratio", 0.5,
	)

	output := buf.String()
	for _, want := range []string{
		`"supervisor":"wardrobe"`,
		`"service":"http-server"`,
		`"attempt":3`,
		`"healthy":false`,
		`"ratio":0.5`,
		`"backoff":`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestSlogHandler_Groups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := NewSlogHandler(zerolog.New(&buf))
	logger := slog.New(h).WithGroup("tree").WithGroup("child")

	logger.Info("nested", "name", "events", slog.Group("breaker", slog.String("state", "open")))

	output := buf.String()
	if !strings.Contains(output, `"tree.child.name":"events"`) {
		t.Errorf("expected group-prefixed key, got: %s", output)
	}
	if !strings.Contains(output, `"tree.child.breaker.state":"open"`) {
		t.Errorf("expected nested group key, got: %s", output)
	}
}

func TestSlogHandler_WithGroupEmpty(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.Nop())
	if h.WithGroup("") != h {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewSlogLogger_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	defer SetLogger(original)
	SetLogger(NewTestLogger(&buf))

	NewSlogLogger("supervisor").Warn("service restarted", "service", "cache-invalidator")

	output := buf.String()
	for _, want := range []string{`"component":"supervisor"`, `"service":"cache-invalidator"`, `"level":"warn"`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s, got: %s", want, output)
		}
	}
}
