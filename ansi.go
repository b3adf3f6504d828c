package glint

import (
	"bytes"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Escape sequences emitted by the ANSI backend.
const (
	escAltScreenOn  = "\x1b[?1049h"
	escAltScreenOff = "\x1b[?1049l"
	escClearScreen  = "\x1b[2J"
	escCursorHome   = "\x1b[H"
	escCursorShow   = "\x1b[?25h"
	escCursorHide   = "\x1b[?25l"
	escStyleReset   = "\x1b[0m"
)

// Fallback dimensions used when the terminal size cannot be determined.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// ANSIBackend is a Backend over a POSIX-like terminal device. Output is
// accumulated in memory and reaches the device in one bulk write per
// Flush, batching many small escape-sequence writes into one syscall.
type ANSIBackend struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	buf bytes.Buffer

	origTermios *unix.Termios
	rawMode     bool
	altScreen   bool
}

// NewANSIBackend creates a backend over stdin/stdout. The terminal's
// original settings are captured once here; on a non-terminal device
// the capture fails silently and EnterRawMode reports the error.
func NewANSIBackend() *ANSIBackend {
	return NewANSIBackendFiles(os.Stdin, os.Stdout)
}

// NewANSIBackendFiles creates a backend over the given input and output
// files.
func NewANSIBackendFiles(in, out *os.File) *ANSIBackend {
	b := &ANSIBackend{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
	if t, err := unix.IoctlGetTermios(b.inFd, ioctlGetTermios); err == nil {
		b.origTermios = t
	}
	return b
}

// EnterRawMode puts the terminal into raw mode: no canonical buffering,
// no echo, no signal characters, no input translation, no output post
// processing, 8-bit characters, and reads that return immediately with
// whatever is available. Entering twice is a no-op.
func (b *ANSIBackend) EnterRawMode() error {
	if b.rawMode {
		return nil
	}
	if b.origTermios == nil {
		return fmt.Errorf("enter raw mode: input is not a terminal")
	}

	raw := *b.origTermios
	// Input flags: disable break, CR to NL, parity, strip, flow control
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output flags: disable post processing
	raw.Oflag &^= unix.OPOST
	// Control flags: set 8 bit chars
	raw.Cflag |= unix.CS8
	// Local flags: disable echo, canonical mode, signals, extended input
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	// Control chars: return immediately, zero required bytes
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(b.inFd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	b.rawMode = true
	return nil
}

// ExitRawMode restores the settings captured at construction. Exiting
// twice is a no-op.
func (b *ANSIBackend) ExitRawMode() error {
	if !b.rawMode {
		return nil
	}
	if err := unix.IoctlSetTermios(b.inFd, ioctlSetTermios, b.origTermios); err != nil {
		return fmt.Errorf("exit raw mode: %w", err)
	}
	b.rawMode = false
	return nil
}

// EnableAlternateScreen switches to the alternate buffer, clears it and
// homes the cursor. Enabling twice is a no-op.
func (b *ANSIBackend) EnableAlternateScreen() error {
	if b.altScreen {
		return nil
	}
	if err := b.control(escAltScreenOn + escClearScreen + escCursorHome); err != nil {
		return err
	}
	b.altScreen = true
	return nil
}

// DisableAlternateScreen switches back to the normal buffer. Disabling
// twice is a no-op.
func (b *ANSIBackend) DisableAlternateScreen() error {
	if !b.altScreen {
		return nil
	}
	if err := b.control(escAltScreenOff); err != nil {
		return err
	}
	b.altScreen = false
	return nil
}

// ClearScreen clears the display and homes the cursor.
func (b *ANSIBackend) ClearScreen() error {
	return b.control(escClearScreen + escCursorHome)
}

// Write queues bytes for output. Nothing reaches the device until Flush.
func (b *ANSIBackend) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

// Flush writes all queued bytes to the device in a single write and
// clears the queue.
func (b *ANSIBackend) Flush() error {
	if b.buf.Len() == 0 {
		return nil
	}
	_, err := b.out.Write(b.buf.Bytes())
	b.buf.Reset()
	if err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Size returns the terminal dimensions. On a non-terminal device, a
// failing size query or a reported zero dimension it returns 80x24
// rather than an error, so the engine stays usable with redirected
// output.
func (b *ANSIBackend) Size() (int, int, error) {
	if !term.IsTerminal(b.outFd) {
		return fallbackWidth, fallbackHeight, nil
	}
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return fallbackWidth, fallbackHeight, nil
	}
	return int(ws.Col), int(ws.Row), nil
}

// PollEvent waits up to timeout for input readiness, performs one read
// and decodes whatever that read returned. No input decodes to an event
// with Type EventNone, never an error.
func (b *ANSIBackend) PollEvent(timeout time.Duration) (Event, error) {
	if timeout > 0 {
		fds := []unix.PollFd{{Fd: int32(b.inFd), Events: unix.POLLIN}}
		for {
			n, err := unix.Poll(fds, int(timeout.Milliseconds()))
			if err == unix.EINTR {
				continue
			}
			if err != nil {
				return Event{}, fmt.Errorf("poll input: %w", err)
			}
			if n == 0 {
				return Event{}, nil
			}
			break
		}
	}

	var raw [64]byte
	n, err := unix.Read(b.inFd, raw[:])
	if err != nil {
		if err == unix.EAGAIN || err == unix.EINTR {
			return Event{}, nil
		}
		return Event{}, fmt.Errorf("read input: %w", err)
	}
	return parseEvent(raw[:n]), nil
}

// HideCursor makes the cursor invisible.
func (b *ANSIBackend) HideCursor() error {
	return b.control(escCursorHide)
}

// ShowCursor makes the cursor visible.
func (b *ANSIBackend) ShowCursor() error {
	return b.control(escCursorShow)
}

// SetCursor moves the cursor to the given position (0-indexed).
func (b *ANSIBackend) SetCursor(x, y int) error {
	var scratch [32]byte
	s := scratch[:0]
	s = append(s, "\x1b["...)
	s = appendInt(s, y+1)
	s = append(s, ';')
	s = appendInt(s, x+1)
	s = append(s, 'H')
	b.buf.Write(s)
	return b.Flush()
}

// control queues an escape string and flushes immediately, so mode and
// cursor changes take effect right away.
func (b *ANSIBackend) control(s string) error {
	b.buf.WriteString(s)
	return b.Flush()
}

// parseEvent decodes the bytes returned by a single read into an event.
// Only a safe subset of the VT100/xterm input grammar is recognized;
// anything else decodes to the none event and is silently dropped.
func parseEvent(data []byte) Event {
	if len(data) == 0 {
		return Event{}
	}

	if data[0] == 0x1b {
		if len(data) == 1 {
			return KeyEvent(KeyEscape, ModNone)
		}
		if data[1] == '[' && len(data) >= 3 {
			switch data[2] {
			case 'A':
				return KeyEvent(KeyUp, ModNone)
			case 'B':
				return KeyEvent(KeyDown, ModNone)
			case 'C':
				return KeyEvent(KeyRight, ModNone)
			case 'D':
				return KeyEvent(KeyLeft, ModNone)
			case 'H':
				return KeyEvent(KeyHome, ModNone)
			case 'F':
				return KeyEvent(KeyEnd, ModNone)
			case '3', '5', '6':
				if len(data) >= 4 && data[3] == '~' {
					switch data[2] {
					case '3':
						return KeyEvent(KeyDelete, ModNone)
					case '5':
						return KeyEvent(KeyPageUp, ModNone)
					case '6':
						return KeyEvent(KeyPageDown, ModNone)
					}
				}
			}
		}
		return Event{}
	}

	if len(data) == 1 {
		c := data[0]
		switch c {
		case '\r', '\n':
			return KeyEvent(KeyEnter, ModNone)
		case '\t':
			return KeyEvent(KeyTab, ModNone)
		case 0x7f:
			return KeyEvent(KeyBackspace, ModNone)
		}
		// Control characters map to Ctrl+letter. Tab, LF and CR are
		// excluded above because they have dedicated meanings.
		if c >= 1 && c <= 26 {
			return RuneEvent(rune('a'+c-1), ModCtrl)
		}
		return RuneEvent(rune(c), ModNone)
	}

	r, _ := utf8.DecodeRune(data)
	if r == utf8.RuneError {
		return Event{}
	}
	return RuneEvent(r, ModNone)
}

// appendInt appends an integer to a byte slice without allocation.
func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	if n < 0 {
		b = append(b, '-')
		n = -n
	}
	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	return append(b, scratch[i:]...)
}
