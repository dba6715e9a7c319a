// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package judging

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/ippon-board/models"
)

// Store runs every judging operation directly against the database.
// It holds no state of its own.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ValidateJudgeNumber reports whether n names one of the judge seats.
func ValidateJudgeNumber(n int) error {
	if n < models.MinJudgeNumber || n > models.MaxJudgeNumber {
		return fmt.Errorf("%w: %d", ErrInvalidJudgeNumber, n)
	}
	return nil
}

// Judges returns all judges ordered by judge number.
func (s *Store) Judges(ctx context.Context) ([]models.Judge, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, judge_number, name
		FROM judges
		ORDER BY judge_number
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query judges: %w", err)
	}
	defer rows.Close()

	judges := []models.Judge{}
	for rows.Next() {
		var j models.Judge
		if err := rows.Scan(&j.ID, &j.JudgeNumber, &j.Name); err != nil {
			return nil, fmt.Errorf("failed to scan judge: %w", err)
		}
		judges = append(judges, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate judges: %w", err)
	}

	return judges, nil
}

// JudgeByNumber looks up a judge seat. The number is validated first so an
// out-of-range value never reaches the database.
func (s *Store) JudgeByNumber(ctx context.Context, judgeNumber int) (models.Judge, error) {
	if err := ValidateJudgeNumber(judgeNumber); err != nil {
		return models.Judge{}, err
	}
	return judgeByNumber(ctx, s.db, judgeNumber)
}

func judgeByNumber(ctx context.Context, q queryer, judgeNumber int) (models.Judge, error) {
	var j models.Judge
	err := q.QueryRowContext(ctx, `
		SELECT id, judge_number, name FROM judges WHERE judge_number = $1
	`, judgeNumber).Scan(&j.ID, &j.JudgeNumber, &j.Name)

	if err == sql.ErrNoRows {
		return models.Judge{}, fmt.Errorf("%w: %d", ErrJudgeNotFound, judgeNumber)
	}
	if err != nil {
		return models.Judge{}, fmt.Errorf("failed to query judge %d: %w", judgeNumber, err)
	}

	return j, nil
}

// resolve validates the judge number and loads the active session and judge
// that a vote or yo event is recorded against.
func (s *Store) resolve(ctx context.Context, judgeNumber int) (models.Session, models.Judge, error) {
	if err := ValidateJudgeNumber(judgeNumber); err != nil {
		return models.Session{}, models.Judge{}, err
	}

	session, err := s.ActiveSession(ctx)
	if err != nil {
		return models.Session{}, models.Judge{}, err
	}

	judge, err := judgeByNumber(ctx, s.db, judgeNumber)
	if err != nil {
		return models.Session{}, models.Judge{}, err
	}

	return session, judge, nil
}

// timestamp returns the current time as stored: UTC, microsecond precision
// (the finest PostgreSQL keeps).
func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}
