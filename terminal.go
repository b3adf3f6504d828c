package glint

import (
	"bytes"
	"fmt"
	"os"
	"time"
)

// FlushStats holds statistics from the most recent flush.
type FlushStats struct {
	Updates int // cell updates emitted
	Bytes   int // escape-stream bytes written
}

// debugFlush enables flush statistics on stderr via GLINT_DEBUG_FLUSH.
var debugFlush = os.Getenv("GLINT_DEBUG_FLUSH") != ""

// Terminal owns the current/next buffer pair and drives the
// draw, diff, emit, swap cycle against a Backend.
//
// A Terminal is not safe for concurrent use; the host must serialize
// access.
type Terminal struct {
	backend Backend

	current *Buffer // what the device is showing
	next    *Buffer // what the upcoming frame draws into

	cursorHidden bool
	stats        FlushStats
}

// NewTerminal initializes the terminal: it queries the backend size,
// allocates the buffer pair, enters raw mode, enables the alternate
// screen and clears it. If any step fails the previous steps are
// unwound, so no terminal-mode side effect is left dangling.
func NewTerminal(backend Backend) (*Terminal, error) {
	width, height, err := backend.Size()
	if err != nil {
		return nil, fmt.Errorf("query size: %w", err)
	}

	t := &Terminal{
		backend: backend,
		current: NewBuffer(width, height),
		next:    NewBuffer(width, height),
	}

	if err := backend.EnterRawMode(); err != nil {
		return nil, err
	}
	if err := backend.EnableAlternateScreen(); err != nil {
		backend.ExitRawMode()
		return nil, err
	}
	if err := backend.ClearScreen(); err != nil {
		backend.DisableAlternateScreen()
		backend.ExitRawMode()
		return nil, err
	}
	return t, nil
}

// Backend returns the backend the terminal was created with.
func (t *Terminal) Backend() Backend {
	return t.backend
}

// Size returns the dimensions of the buffer pair.
func (t *Terminal) Size() (width, height int) {
	return t.current.Size()
}

// Draw renders one frame: it clears the next buffer, invokes the render
// callback against it, then flushes the difference to the backend. The
// callback is the single extension point where host code runs; it must
// complete before Draw proceeds.
func (t *Terminal) Draw(render func(*Buffer) error) error {
	t.next.Clear()
	if err := render(t.next); err != nil {
		return err
	}
	return t.flush()
}

// flush computes the diff between the buffer pair, builds the complete
// escape stream in memory, hands it to the backend in one write, and
// swaps the buffers. Building the full stream before writing means a
// mid-construction failure leaves the device untouched.
func (t *Terminal) flush() error {
	updates := t.current.Diff(t.next)

	var buf bytes.Buffer
	var scratch [32]byte
	for _, u := range updates {
		// Absolute position, 1-indexed.
		s := scratch[:0]
		s = append(s, "\x1b["...)
		s = appendInt(s, u.Y+1)
		s = append(s, ';')
		s = appendInt(s, u.X+1)
		s = append(s, 'H')
		buf.Write(s)

		if !u.Cell.Style.FG.IsReset() {
			writeColor(&buf, u.Cell.Style.FG, true)
		}
		if !u.Cell.Style.BG.IsReset() {
			writeColor(&buf, u.Cell.Style.BG, false)
		}
		// TODO: emit SGR attribute codes for the cell's Attr bits.
		buf.WriteRune(u.Cell.Rune)

		// Reset after every cell. Coalescing runs of identically
		// styled cells would shrink the stream but is not done here.
		buf.WriteString(escStyleReset)
	}

	if buf.Len() > 0 {
		if _, err := t.backend.Write(buf.Bytes()); err != nil {
			return err
		}
		if err := t.backend.Flush(); err != nil {
			return err
		}
	}

	t.stats = FlushStats{Updates: len(updates), Bytes: buf.Len()}
	if debugFlush {
		fmt.Fprintf(os.Stderr, "flush: %d updates, %d bytes\n",
			t.stats.Updates, t.stats.Bytes)
	}

	// Swap by pointer; no cell copy.
	t.current, t.next = t.next, t.current
	return nil
}

// writeColor appends the SGR sequence for a color. Named colors use the
// fixed 30-37/90-97 (40-47/100-107) codes, palette colors 38;5;n and
// true colors 38;2;r;g;b.
func writeColor(buf *bytes.Buffer, c Color, fg bool) {
	var scratch [24]byte
	s := scratch[:0]
	s = append(s, "\x1b["...)
	switch c.Mode {
	case Color16:
		base := 30
		if !fg {
			base = 40
		}
		if c.Index >= 8 {
			s = appendInt(s, base+60+int(c.Index-8))
		} else {
			s = appendInt(s, base+int(c.Index))
		}
	case Color256:
		if fg {
			s = append(s, "38;5;"...)
		} else {
			s = append(s, "48;5;"...)
		}
		s = appendInt(s, int(c.Index))
	case ColorRGB:
		if fg {
			s = append(s, "38;2;"...)
		} else {
			s = append(s, "48;2;"...)
		}
		s = appendInt(s, int(c.R))
		s = append(s, ';')
		s = appendInt(s, int(c.G))
		s = append(s, ';')
		s = appendInt(s, int(c.B))
	}
	s = append(s, 'm')
	buf.Write(s)
}

// Clear resets both buffers to empty cells and clears the device
// directly, bypassing the diff path.
func (t *Terminal) Clear() error {
	t.current.Clear()
	t.next.Clear()
	return t.backend.ClearScreen()
}

// Resize resizes both buffers, preserving the top-left overlap. Call
// this when the host observes a resize event.
func (t *Terminal) Resize(width, height int) {
	t.current.Resize(width, height)
	t.next.Resize(width, height)
}

// HideCursor hides the terminal cursor.
func (t *Terminal) HideCursor() error {
	if err := t.backend.HideCursor(); err != nil {
		return err
	}
	t.cursorHidden = true
	return nil
}

// ShowCursor shows the terminal cursor.
func (t *Terminal) ShowCursor() error {
	if err := t.backend.ShowCursor(); err != nil {
		return err
	}
	t.cursorHidden = false
	return nil
}

// SetCursor moves the cursor to the given position (0-indexed).
func (t *Terminal) SetCursor(x, y int) error {
	return t.backend.SetCursor(x, y)
}

// PollEvent polls the backend for input.
func (t *Terminal) PollEvent(timeout time.Duration) (Event, error) {
	return t.backend.PollEvent(timeout)
}

// LastFlushStats returns statistics from the most recent flush.
func (t *Terminal) LastFlushStats() FlushStats {
	return t.stats
}

// Close tears the terminal down: alternate screen off, raw mode off,
// cursor restored if hidden. Every step is best-effort; leaving the
// terminal half-restored is worse than an unreported cleanup error.
func (t *Terminal) Close() {
	t.backend.DisableAlternateScreen()
	t.backend.ExitRawMode()
	if t.cursorHidden {
		t.backend.ShowCursor()
		t.cursorHidden = false
	}
}
