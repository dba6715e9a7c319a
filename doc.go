// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Ippon Board server.

Ippon Board is a live-event judging display. Five judges tap IPPON or YO on
their phones; a shared display polls the server and lights up once three
judges agree.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Or against PostgreSQL:

	go run . -t postgres -d "postgres://..."

# Configuration

Settings are read from flags, then environment variables, then a .env file:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:ippon.db for sqlite)
  - JUDGE_NAMES (-judges): Five comma separated display names
  - CORS_ORIGINS (-cors): Allowed origins for /api, any when empty
  - -env: Path of the .env file (default: .env)

# Architecture

  - handlers: HTTP request handlers (status, reset, vote, yo, pages)
  - judging: Rounds, votes, yo events and the ippon tally
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - db: Connection, schema creation, judge seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
