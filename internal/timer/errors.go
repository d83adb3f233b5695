package timer

import "errors"

// Transition preconditions. These are caller-misuse rejections, never
// retried; a rejected transition leaves the timer untouched.
var (
	// ErrAlreadyActive means Start was called while a session is open.
	ErrAlreadyActive = errors.New("a session is already active")

	// ErrNotRunning means Pause was called from Idle or Paused.
	ErrNotRunning = errors.New("no running session to pause")

	// ErrNotPaused means Resume was called from Idle or Running.
	ErrNotPaused = errors.New("session is not paused")

	// ErrNotActive means End was called with no open session.
	ErrNotActive = errors.New("no active session to end")
)
