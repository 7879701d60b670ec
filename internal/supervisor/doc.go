// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
Package supervisor runs the long-lived parts of the wardrobe server under a
suture v4 supervisor tree.

# Overview

Services are grouped into three layers so a failure in one layer restarts
only that layer:

	RootSupervisor ("wardrobe")
	├── DataSupervisor ("data-layer")
	│   └── CheckpointService (periodic WAL checkpoint)
	├── MessagingSupervisor ("messaging-layer")
	│   └── eventprocessor.Invalidator (clears the recommendation cache)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashing invalidator leaves the API serving; recommendations then fall
back to the cache TTL for freshness.

# Logging

Supervisor events (restarts, backoff, timeouts) are logged through
sutureslog, using the slog adapter from the logging package so they end up
in the same zerolog stream as the rest of the server.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewCheckpointService(db, 5*time.Minute, logger))
	tree.AddMessagingService(invalidator)
	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)
*/
package supervisor
