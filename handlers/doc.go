// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Ippon Board server.

# Handler Types

Each handler is a struct wrapping a judging store:

  - SessionHandler: Display status and round reset
  - VotingHandler: Vote toggles and YO events
  - PageHandler: Display and judge pages, embedded scripts

Handlers are created via constructor functions that accept *sql.DB. The
page handler also takes Config for the configured judge names:

	votingHandler := handlers.NewVotingHandler(db)
	pageHandler := handlers.NewPageHandler(db, cfg)

# Errors

Store errors are mapped in one place:

	invalid judge number      → 400
	no active session / judge → 404
	anything else             → 500, cause logged

All error bodies have the shape {"error": "..."}.
*/
package handlers
