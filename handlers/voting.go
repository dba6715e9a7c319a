// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ippon-board/judging"
	"github.com/danielhkuo/ippon-board/middleware"
	"github.com/danielhkuo/ippon-board/models"
)

type VotingHandler struct {
	store *judging.Store
}

func NewVotingHandler(db *sql.DB) *VotingHandler {
	return &VotingHandler{store: judging.NewStore(db)}
}

// SubmitVote handles POST /api/vote
// A repeat tap from the same judge retracts the vote.
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.JudgeActionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	voted, err := h.store.SubmitVote(r.Context(), req.JudgeNumber)
	if err != nil {
		writeJudgingError(w, err, "Failed to submit vote")
		return
	}

	slog.Info("vote toggled", "judge_number", req.JudgeNumber, "voted", voted)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// RecordYo handles POST /api/yo
func (h *VotingHandler) RecordYo(w http.ResponseWriter, r *http.Request) {
	var req models.JudgeActionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	at, err := h.store.RecordYo(r.Context(), req.JudgeNumber)
	if err != nil {
		writeJudgingError(w, err, "Failed to record YO")
		return
	}

	slog.Info("yo recorded", "judge_number", req.JudgeNumber)

	middleware.JSONResponse(w, http.StatusOK, models.YoResponse{
		Success:   true,
		Timestamp: at.UnixMilli(),
	})
}

// GetLatestYo handles GET /api/yo/latest
// Looks across all rounds, not only the active one.
func (h *VotingHandler) GetLatestYo(w http.ResponseWriter, r *http.Request) {
	event, ok, err := h.store.LatestYo(r.Context())
	if err != nil {
		writeJudgingError(w, err, "Failed to get YO")
		return
	}

	if !ok {
		middleware.JSONResponse(w, http.StatusOK, models.LatestYoResponse{HasYo: false})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LatestYoResponse{
		HasYo:       true,
		JudgeNumber: event.JudgeNumber,
		JudgeName:   event.JudgeName,
		Timestamp:   event.CreatedAt.UnixMilli(),
	})
}
