// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/ippon-board/models"
	"github.com/danielhkuo/ippon-board/testutil"
)

// TestConcurrentVotesFromAllJudges verifies that every judge tapping at the
// same moment ends with one row per judge and an ippon.
func TestConcurrentVotesFromAllJudges(t *testing.T) {
	db := testutil.SetupTestDB(t)

	votingHandler := NewVotingHandler(db)
	sessionHandler := NewSessionHandler(db)
	sessionID := testutil.CreateTestSession(t, db, 1, true)

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for judge := models.MinJudgeNumber; judge <= models.MaxJudgeNumber; judge++ {
		wg.Add(1)
		go func(judgeNumber int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/vote", models.JudgeActionRequest{JudgeNumber: judgeNumber}, nil)
			w := httptest.NewRecorder()
			votingHandler.SubmitVote(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}(judge)
	}

	wg.Wait()

	if successCount.Load() != models.MaxJudgeNumber {
		t.Errorf("Expected %d successful votes, got %d", models.MaxJudgeNumber, successCount.Load())
	}

	var rows int
	err := db.QueryRow("SELECT COUNT(*) FROM votes WHERE session_id = $1", sessionID).Scan(&rows)
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if rows != models.MaxJudgeNumber {
		t.Errorf("Expected %d vote rows, got %d", models.MaxJudgeNumber, rows)
	}

	req := testutil.MakeRequest("GET", "/api/status", nil, nil)
	w := httptest.NewRecorder()
	sessionHandler.GetStatus(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var status models.StatusResponse
	testutil.AssertJSON(t, w, &status)
	if status.VoteCount != models.MaxJudgeNumber || !status.IsIppon {
		t.Errorf("Expected %d votes and ippon, got %d (ippon=%v)", models.MaxJudgeNumber, status.VoteCount, status.IsIppon)
	}
}

// TestConcurrentTapsSameJudge verifies that an even number of simultaneous
// taps from one judge leaves the vote retracted, with a single row.
func TestConcurrentTapsSameJudge(t *testing.T) {
	db := testutil.SetupTestDB(t)

	votingHandler := NewVotingHandler(db)
	sessionID := testutil.CreateTestSession(t, db, 1, true)

	numTaps := 6
	var wg sync.WaitGroup

	for i := 0; i < numTaps; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/vote", models.JudgeActionRequest{JudgeNumber: 3}, nil)
			w := httptest.NewRecorder()
			votingHandler.SubmitVote(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Tap failed: %d - %s", w.Code, w.Body.String())
			}
		}()
	}

	wg.Wait()

	var rows int
	var voted bool
	err := db.QueryRow(`
		SELECT COUNT(*), COALESCE(MAX(voted), FALSE)
		FROM votes WHERE session_id = $1
	`, sessionID).Scan(&rows, &voted)
	if err != nil {
		t.Fatalf("Failed to read votes: %v", err)
	}

	if rows != 1 {
		t.Errorf("Expected 1 vote row, got %d", rows)
	}
	if voted {
		t.Error("Expected vote to be retracted after an even number of taps")
	}
}

// TestConcurrentResets verifies that simultaneous resets each get their own
// round number and leave exactly one active session.
func TestConcurrentResets(t *testing.T) {
	db := testutil.SetupTestDB(t)

	sessionHandler := NewSessionHandler(db)

	numResets := 8
	rounds := make([]int, numResets)
	var wg sync.WaitGroup

	for i := 0; i < numResets; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/reset", nil, nil)
			w := httptest.NewRecorder()
			sessionHandler.Reset(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Reset failed: %d - %s", w.Code, w.Body.String())
				return
			}

			var resp models.ResetResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Errorf("Failed to decode reset response: %v", err)
				return
			}
			rounds[idx] = resp.RoundNumber
		}(i)
	}

	wg.Wait()

	seen := make(map[int]bool, numResets)
	for _, round := range rounds {
		if seen[round] {
			t.Errorf("Round number %d handed out twice", round)
		}
		seen[round] = true
	}
	for want := 1; want <= numResets; want++ {
		if !seen[want] {
			t.Errorf("Round number %d never handed out", want)
		}
	}

	var active, maxRound int
	err := db.QueryRow("SELECT COUNT(*) FROM sessions WHERE is_active").Scan(&active)
	if err != nil {
		t.Fatalf("Failed to count active sessions: %v", err)
	}
	if active != 1 {
		t.Errorf("Expected 1 active session, got %d", active)
	}

	err = db.QueryRow("SELECT round_number FROM sessions WHERE is_active").Scan(&maxRound)
	if err != nil {
		t.Fatalf("Failed to read active round: %v", err)
	}
	if maxRound != numResets {
		t.Errorf("Expected active round %d, got %d", numResets, maxRound)
	}
}
