// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open picks the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

PostgreSQL uses github.com/lib/pq. SQLite uses modernc.org/sqlite, with
foreign keys and a busy timeout turned on and the pool capped at one
connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
SeedJudges then inserts the five judges, skipping numbers that already exist.

# Tables

  - judges: the five judge seats (judge_number 1-5)
  - sessions: one row per round; at most one has is_active set
  - round_pointer: single row holding the current round number
  - votes: one row per (session, judge), toggled on repeat taps
  - yo_events: append-only attention signals

# Relationships

	sessions 1──* votes
	sessions 1──* yo_events
	judges   1──* votes
	judges   1──* yo_events
	round_pointer 1──1 sessions

# Indexes

  - sessions.is_active (unique, partial: only active rows)
  - votes.(session_id, judge_id) (unique)
  - votes.session_id
  - yo_events.created_at

# Errors

IsUniqueViolation recognizes unique constraint failures from either driver
(SQLSTATE 23505 on PostgreSQL, SQLITE_CONSTRAINT_UNIQUE on SQLite).
*/
package db
