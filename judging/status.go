// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package judging

import (
	"context"
	"time"

	"github.com/danielhkuo/ippon-board/models"
)

// Snapshot is the display state of the active round.
type Snapshot struct {
	Session    models.Session
	Judges     []models.Judge
	Votes      map[int]bool // judge_number -> voted; judges without a row are absent
	VoteCount  int
	IsIppon    bool
	CapturedAt time.Time
}

// Status builds a snapshot of the active round. It only reads.
func (s *Store) Status(ctx context.Context) (Snapshot, error) {
	session, err := s.ActiveSession(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	judges, err := s.Judges(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	votes, err := s.Votes(ctx, session.ID)
	if err != nil {
		return Snapshot{}, err
	}

	tally, count := Tally(votes)
	return Snapshot{
		Session:    session,
		Judges:     judges,
		Votes:      tally,
		VoteCount:  count,
		IsIppon:    IsIppon(count),
		CapturedAt: s.now(),
	}, nil
}

// Tally maps judge numbers to vote state and counts the votes that are set.
func Tally(votes []models.Vote) (map[int]bool, int) {
	tally := make(map[int]bool, len(votes))
	count := 0
	for _, v := range votes {
		tally[v.JudgeNumber] = v.Voted
		if v.Voted {
			count++
		}
	}
	return tally, count
}

// IsIppon reports whether count reaches the quorum.
func IsIppon(count int) bool {
	return count >= models.IpponQuorum
}
