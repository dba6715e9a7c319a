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

// RecordYo appends a yo event for the judge in the active session.
// Every call appends; there is no toggle and no dedup.
func (s *Store) RecordYo(ctx context.Context, judgeNumber int) (time.Time, error) {
	session, judge, err := s.resolve(ctx, judgeNumber)
	if err != nil {
		return time.Time{}, err
	}

	createdAt := s.timestamp()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO yo_events (session_id, judge_id, created_at)
		VALUES ($1, $2, $3)
	`, session.ID, judge.ID, createdAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to record yo event: %w", err)
	}

	return createdAt, nil
}

// LatestYo returns the newest yo event across all sessions, not only the
// active one. ok is false when nothing has been recorded yet.
func (s *Store) LatestYo(ctx context.Context) (event models.YoEvent, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT ye.id, ye.session_id, j.judge_number, j.name, ye.created_at
		FROM yo_events ye
		JOIN judges j ON ye.judge_id = j.id
		ORDER BY ye.created_at DESC, ye.id DESC
		LIMIT 1
	`).Scan(&event.ID, &event.SessionID, &event.JudgeNumber, &event.JudgeName, &event.CreatedAt)

	if err == sql.ErrNoRows {
		return models.YoEvent{}, false, nil
	}
	if err != nil {
		return models.YoEvent{}, false, fmt.Errorf("failed to query latest yo event: %w", err)
	}

	return event, true, nil
}
