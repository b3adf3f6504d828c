package glint

import "time"

// Backend abstracts the terminal device. A host implements it to target
// a new platform or to substitute a recording backend for tests.
//
// All operations are synchronous. Every operation may fail with an I/O
// error except that "no input available" is never an error: PollEvent
// reports it as an Event with Type EventNone.
type Backend interface {
	// EnterRawMode disables canonical input, echo and signal handling,
	// giving the application byte-level control of input. Idempotent.
	EnterRawMode() error

	// ExitRawMode restores the terminal settings captured before raw
	// mode was entered. Idempotent.
	ExitRawMode() error

	// EnableAlternateScreen switches to the alternate display buffer,
	// clears it and homes the cursor. Idempotent.
	EnableAlternateScreen() error

	// DisableAlternateScreen switches back to the normal display
	// buffer. Idempotent.
	DisableAlternateScreen() error

	// ClearScreen clears the display and homes the cursor.
	ClearScreen() error

	// Write queues bytes for output. Nothing reaches the device until
	// Flush is called.
	Write(p []byte) (int, error)

	// Flush writes all queued bytes to the device in a single bulk
	// write.
	Flush() error

	// Size returns the terminal dimensions in cells.
	Size() (width, height int, err error)

	// PollEvent waits up to timeout for an input event and decodes it.
	// A zero timeout performs a single non-blocking attempt. When no
	// input is available the returned event has Type EventNone.
	PollEvent(timeout time.Duration) (Event, error)

	// HideCursor makes the cursor invisible.
	HideCursor() error

	// ShowCursor makes the cursor visible.
	ShowCursor() error

	// SetCursor moves the cursor to the given position (0-indexed).
	SetCursor(x, y int) error
}
