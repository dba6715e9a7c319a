// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package judging

import (
	"errors"
	"fmt"
)

// Error classes. Handlers map them with errors.Is: ErrValidation → 400,
// ErrNotFound → 404, ErrConflict → 409, anything else → 500.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrInvalidJudgeNumber = fmt.Errorf("%w: invalid judge number", ErrValidation)
	ErrNoActiveSession    = fmt.Errorf("%w: no active session", ErrNotFound)
	ErrJudgeNotFound      = fmt.Errorf("%w: judge not found", ErrNotFound)
	ErrRoundConflict      = fmt.Errorf("%w: another round is already active", ErrConflict)
)
