// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/ippon-board/models"
	"github.com/danielhkuo/ippon-board/testutil"
)

// TestFullRoundWorkflow tests a complete evening at the board:
// 1. Status before any round exists
// 2. Reset opens round 1
// 3. Three judges vote, ippon is shown
// 4. One judge retracts
// 5. A judge sends YO
// 6. Reset opens round 2 with a clean slate
// 7. Latest YO still reports the earlier round's event
func TestFullRoundWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)

	sessionHandler := NewSessionHandler(db)
	votingHandler := NewVotingHandler(db)

	getStatus := func() (*httptest.ResponseRecorder, models.StatusResponse) {
		req := testutil.MakeRequest("GET", "/api/status", nil, nil)
		w := httptest.NewRecorder()
		sessionHandler.GetStatus(w, req)

		var status models.StatusResponse
		if w.Code == http.StatusOK {
			testutil.AssertJSON(t, w, &status)
		}
		return w, status
	}

	vote := func(judgeNumber int) {
		req := testutil.MakeRequest("POST", "/api/vote", models.JudgeActionRequest{JudgeNumber: judgeNumber}, nil)
		w := httptest.NewRecorder()
		votingHandler.SubmitVote(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Vote by judge %d failed: %d - %s", judgeNumber, w.Code, w.Body.String())
		}
	}

	reset := func() int {
		req := testutil.MakeRequest("POST", "/api/reset", nil, nil)
		w := httptest.NewRecorder()
		sessionHandler.Reset(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Reset failed: %d - %s", w.Code, w.Body.String())
		}
		var resp models.ResetResponse
		testutil.AssertJSON(t, w, &resp)
		return resp.RoundNumber
	}

	// Step 1: No round yet
	w, _ := getStatus()
	if w.Code != http.StatusNotFound {
		t.Fatalf("Step 1 - Expected 404 before first reset, got %d", w.Code)
	}

	// Step 2: Open round 1
	if round := reset(); round != 1 {
		t.Fatalf("Step 2 - Expected round 1, got %d", round)
	}
	w, status := getStatus()
	if w.Code != http.StatusOK {
		t.Fatalf("Step 2 - Status failed: %d - %s", w.Code, w.Body.String())
	}
	if status.RoundNumber != 1 || status.VoteCount != 0 || status.IsIppon {
		t.Fatalf("Step 2 - Unexpected fresh status: %+v", status)
	}
	t.Logf("Step 2 - Opened session %d", status.SessionID)

	// Step 3: Judges 1, 2 and 3 vote
	for _, judge := range []int{1, 2, 3} {
		vote(judge)
	}
	_, status = getStatus()
	if status.VoteCount != 3 || !status.IsIppon {
		t.Fatalf("Step 3 - Expected 3 votes and ippon, got %d (ippon=%v)", status.VoteCount, status.IsIppon)
	}
	t.Logf("Step 3 - Ippon with votes %v", status.Votes)

	// Step 4: Judge 2 taps again
	vote(2)
	_, status = getStatus()
	if status.VoteCount != 2 || status.IsIppon {
		t.Fatalf("Step 4 - Expected 2 votes and no ippon, got %d (ippon=%v)", status.VoteCount, status.IsIppon)
	}
	if voted, ok := status.Votes[2]; !ok || voted {
		t.Fatalf("Step 4 - Expected judge 2 present and false, got %v (present=%v)", voted, ok)
	}

	// Step 5: Judge 5 sends YO
	req := testutil.MakeRequest("POST", "/api/yo", models.JudgeActionRequest{JudgeNumber: 5}, nil)
	w = httptest.NewRecorder()
	votingHandler.RecordYo(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 5 - YO failed: %d - %s", w.Code, w.Body.String())
	}
	var yoResp models.YoResponse
	testutil.AssertJSON(t, w, &yoResp)

	// Step 6: Open round 2
	if round := reset(); round != 2 {
		t.Fatalf("Step 6 - Expected round 2, got %d", round)
	}
	_, status = getStatus()
	if status.RoundNumber != 2 || status.VoteCount != 0 || len(status.Votes) != 0 {
		t.Fatalf("Step 6 - Expected clean round 2, got %+v", status)
	}

	// Round 1 history is kept
	if n := testutil.CountRows(t, db, "votes"); n != 3 {
		t.Errorf("Step 6 - Expected round 1 votes to be kept, got %d rows", n)
	}

	// Step 7: Latest YO spans rounds
	req = testutil.MakeRequest("GET", "/api/yo/latest", nil, nil)
	w = httptest.NewRecorder()
	votingHandler.GetLatestYo(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 7 - Latest YO failed: %d - %s", w.Code, w.Body.String())
	}
	var latest models.LatestYoResponse
	testutil.AssertJSON(t, w, &latest)
	if !latest.HasYo || latest.JudgeNumber != 5 {
		t.Fatalf("Step 7 - Expected YO from judge 5, got %+v", latest)
	}
	if latest.Timestamp != yoResp.Timestamp {
		t.Errorf("Step 7 - Expected timestamp %d, got %d", yoResp.Timestamp, latest.Timestamp)
	}

	t.Log("Full round workflow completed successfully")
}
