// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/ippon-board/cliparse"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	idColumn := "BIGSERIAL PRIMARY KEY"
	if dbType == cliparse.DatabaseSQLite {
		idColumn = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	_, err := db.Exec(strings.ReplaceAll(schema, "{{id}}", idColumn))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SeedJudges inserts one judge per name, numbered from 1 in slice order.
// Existing judges are left untouched so names set by an operator survive restarts.
func SeedJudges(db *sql.DB, names []string) error {
	now := time.Now().UTC()
	for i, name := range names {
		_, err := db.Exec(`
			INSERT INTO judges (judge_number, name, created_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (judge_number) DO NOTHING
		`, i+1, name, now)
		if err != nil {
			return fmt.Errorf("failed to seed judge %d: %w", i+1, err)
		}
	}

	return nil
}

const schema = `
-- Judges
CREATE TABLE IF NOT EXISTS judges (
    id {{id}},
    judge_number INTEGER NOT NULL UNIQUE CHECK (judge_number >= 1 AND judge_number <= 5),
    name TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Sessions (one per round)
CREATE TABLE IF NOT EXISTS sessions (
    id {{id}},
    round_number INTEGER NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_sessions_single_active ON sessions(is_active) WHERE is_active;

-- Round pointer: a single row serializing resets
CREATE TABLE IF NOT EXISTS round_pointer (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    round_number INTEGER NOT NULL,
    session_id BIGINT REFERENCES sessions(id)
);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    id {{id}},
    session_id BIGINT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    judge_id BIGINT NOT NULL REFERENCES judges(id) ON DELETE CASCADE,
    voted BOOLEAN NOT NULL DEFAULT TRUE,
    voted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (session_id, judge_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_session_id ON votes(session_id);

-- Yo events
CREATE TABLE IF NOT EXISTS yo_events (
    id {{id}},
    session_id BIGINT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    judge_id BIGINT NOT NULL REFERENCES judges(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_yo_events_created_at ON yo_events(created_at);
`
