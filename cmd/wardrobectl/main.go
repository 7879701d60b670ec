// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Command wardrobectl records worn outfits and prints recommendations
// against a local wardrobe database, without a running server.
//
//	wardrobectl worn 3 --date 2026-03-01
//	wardrobectl recommend --preset freshness-first --season winter
//	wardrobectl history --month 2026-03
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx, newApp(), os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
