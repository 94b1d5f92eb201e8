package prompt

import "errors"

// Sentinel errors.
var (
	// ErrInterrupted is returned when the user aborts a prompt (Ctrl+C, Esc)
	// or input ends before an answer is read.
	ErrInterrupted = errors.New("prompt interrupted")
)
