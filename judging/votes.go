// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package judging

import (
	"context"
	"fmt"

	"github.com/danielhkuo/ippon-board/models"
)

// SubmitVote toggles the judge's vote in the active session and returns the
// new state. The first tap inserts a voted row; each later tap flips it.
//
// The flip is one upsert statement against the (session_id, judge_id) unique
// constraint, so two taps racing each other still leave exactly one row.
func (s *Store) SubmitVote(ctx context.Context, judgeNumber int) (bool, error) {
	session, judge, err := s.resolve(ctx, judgeNumber)
	if err != nil {
		return false, err
	}

	var voted bool
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO votes (session_id, judge_id, voted, voted_at)
		VALUES ($1, $2, TRUE, $3)
		ON CONFLICT (session_id, judge_id) DO UPDATE
		SET voted = NOT votes.voted, voted_at = excluded.voted_at
		RETURNING voted
	`, session.ID, judge.ID, s.timestamp()).Scan(&voted)
	if err != nil {
		return false, fmt.Errorf("failed to toggle vote: %w", err)
	}

	return voted, nil
}

// Votes returns the vote rows of a session joined to judge numbers.
func (s *Store) Votes(ctx context.Context, sessionID int64) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.session_id, v.judge_id, j.judge_number, v.voted, v.voted_at
		FROM votes v
		JOIN judges j ON v.judge_id = j.id
		WHERE v.session_id = $1
		ORDER BY j.judge_number
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.SessionID, &v.JudgeID, &v.JudgeNumber, &v.Voted, &v.VotedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate votes: %w", err)
	}

	return votes, nil
}
