// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/ippon-board/judging"
	"github.com/danielhkuo/ippon-board/models"
	"github.com/danielhkuo/ippon-board/testutil"
)

func TestWriteJudgingError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"invalid judge", fmt.Errorf("%w: 7", judging.ErrInvalidJudgeNumber), http.StatusBadRequest, "Invalid judge number"},
		{"no session", judging.ErrNoActiveSession, http.StatusNotFound, "No active session"},
		{"no judge", fmt.Errorf("%w: 2", judging.ErrJudgeNotFound), http.StatusNotFound, "Judge not found"},
		{"round conflict", judging.ErrRoundConflict, http.StatusConflict, judging.ErrRoundConflict.Error()},
		{"store failure", errors.New("disk I/O error"), http.StatusInternalServerError, "Failed to do thing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeJudgingError(w, tt.err, "Failed to do thing")

			testutil.AssertStatus(t, w, tt.wantStatus)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Error != tt.wantError {
				t.Errorf("Expected error %q, got %q", tt.wantError, resp.Error)
			}
		})
	}
}
