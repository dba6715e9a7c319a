// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package judging

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/ippon-board/db"
	"github.com/danielhkuo/ippon-board/models"
)

// ActiveSession returns the active session with the highest id.
func (s *Store) ActiveSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	err := s.db.QueryRowContext(ctx, `
		SELECT id, round_number, is_active, created_at
		FROM sessions
		WHERE is_active
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&session.ID, &session.RoundNumber, &session.IsActive, &session.CreatedAt)

	if err == sql.ErrNoRows {
		return models.Session{}, ErrNoActiveSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to query active session: %w", err)
	}

	return session, nil
}

// ResetRound deactivates the current session and starts the next round.
//
// The round pointer row is bumped first, inside the transaction. That write
// takes the row lock on PostgreSQL (and the database write lock on SQLite), so
// concurrent resets queue behind each other instead of computing the same
// round number.
func (s *Store) ResetRound(ctx context.Context) (models.Session, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var round int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO round_pointer (id, round_number)
		VALUES (1, (SELECT COALESCE(MAX(round_number), 0) + 1 FROM sessions))
		ON CONFLICT (id) DO UPDATE SET round_number = round_pointer.round_number + 1
		RETURNING round_number
	`).Scan(&round)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to advance round pointer: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE sessions SET is_active = FALSE WHERE is_active`); err != nil {
		return models.Session{}, fmt.Errorf("failed to deactivate session: %w", err)
	}

	session := models.Session{
		RoundNumber: round,
		IsActive:    true,
		CreatedAt:   s.timestamp(),
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO sessions (round_number, is_active, created_at)
		VALUES ($1, TRUE, $2)
		RETURNING id
	`, session.RoundNumber, session.CreatedAt).Scan(&session.ID)
	if db.IsUniqueViolation(err) {
		return models.Session{}, fmt.Errorf("%w: round %d", ErrRoundConflict, round)
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE round_pointer SET session_id = $1 WHERE id = 1`, session.ID); err != nil {
		return models.Session{}, fmt.Errorf("failed to update round pointer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Session{}, fmt.Errorf("failed to commit reset: %w", err)
	}

	return session, nil
}

// Sessions lists every round, newest first.
func (s *Store) Sessions(ctx context.Context) ([]models.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, round_number, is_active, created_at
		FROM sessions
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []models.Session{}
	for rows.Next() {
		var session models.Session
		if err := rows.Scan(&session.ID, &session.RoundNumber, &session.IsActive, &session.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, nil
}
