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

type SessionHandler struct {
	store *judging.Store
}

func NewSessionHandler(db *sql.DB) *SessionHandler {
	return &SessionHandler{store: judging.NewStore(db)}
}

// GetStatus handles GET /api/status
// Polled by the display; read-only.
func (h *SessionHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Status(r.Context())
	if err != nil {
		writeJudgingError(w, err, "Failed to get status")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		SessionID:   snap.Session.ID,
		RoundNumber: snap.Session.RoundNumber,
		Judges:      snap.Judges,
		Votes:       snap.Votes,
		VoteCount:   snap.VoteCount,
		IsIppon:     snap.IsIppon,
		Timestamp:   snap.CapturedAt.UnixMilli(),
	})
}

// Reset handles POST /api/reset
// Closes the current round and opens the next one.
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.ResetRound(r.Context())
	if err != nil {
		writeJudgingError(w, err, "Failed to reset session")
		return
	}

	slog.Info("round reset", "session_id", session.ID, "round_number", session.RoundNumber)

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		Success:     true,
		RoundNumber: session.RoundNumber,
	})
}
