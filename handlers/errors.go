// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ippon-board/judging"
	"github.com/danielhkuo/ippon-board/middleware"
)

// writeJudgingError maps a judging error to a response. Validation errors are
// 400, missing resources 404, conflicts 409. Anything else is logged and reported as a 500
// with the generic failure message.
func writeJudgingError(w http.ResponseWriter, err error, failure string) {
	switch {
	case errors.Is(err, judging.ErrInvalidJudgeNumber):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid judge number")
	case errors.Is(err, judging.ErrNoActiveSession):
		middleware.ErrorResponse(w, http.StatusNotFound, "No active session")
	case errors.Is(err, judging.ErrJudgeNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Judge not found")
	case errors.Is(err, judging.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, judging.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, judging.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	default:
		slog.Error(failure, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, failure)
	}
}
