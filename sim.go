package glint

import (
	"bytes"
	"time"
)

// SimBackend is an in-memory Backend for tests. It records every
// flushed byte and every mode transition, serves scripted events, and
// can be told to fail a specific operation to exercise error paths.
type SimBackend struct {
	// Dimensions reported by Size.
	W, H int

	// Out receives everything Flush writes.
	Out bytes.Buffer

	// Scripted events served by PollEvent in order.
	Events []Event

	// FailOn, when non-empty, names the operation that should return
	// an error: "raw", "alt", "clear", "flush".
	FailOn string

	buf bytes.Buffer

	RawMode       bool
	AltScreen     bool
	CursorVisible bool
	ClearCount    int
}

// NewSimBackend creates a simulation backend with the given size.
func NewSimBackend(width, height int) *SimBackend {
	return &SimBackend{W: width, H: height, CursorVisible: true}
}

func (s *SimBackend) fail(op string) error {
	if s.FailOn == op {
		return errSim{op}
	}
	return nil
}

type errSim struct{ op string }

func (e errSim) Error() string { return "sim: forced failure in " + e.op }

func (s *SimBackend) EnterRawMode() error {
	if err := s.fail("raw"); err != nil {
		return err
	}
	s.RawMode = true
	return nil
}

func (s *SimBackend) ExitRawMode() error {
	s.RawMode = false
	return nil
}

func (s *SimBackend) EnableAlternateScreen() error {
	if err := s.fail("alt"); err != nil {
		return err
	}
	s.AltScreen = true
	return nil
}

func (s *SimBackend) DisableAlternateScreen() error {
	s.AltScreen = false
	return nil
}

func (s *SimBackend) ClearScreen() error {
	if err := s.fail("clear"); err != nil {
		return err
	}
	s.ClearCount++
	return nil
}

func (s *SimBackend) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

func (s *SimBackend) Flush() error {
	if err := s.fail("flush"); err != nil {
		return err
	}
	s.Out.Write(s.buf.Bytes())
	s.buf.Reset()
	return nil
}

func (s *SimBackend) Size() (int, int, error) {
	return s.W, s.H, nil
}

// PollEvent serves the next scripted event, or the none event when the
// script is exhausted. The timeout is ignored.
func (s *SimBackend) PollEvent(time.Duration) (Event, error) {
	if len(s.Events) == 0 {
		return Event{}, nil
	}
	ev := s.Events[0]
	s.Events = s.Events[1:]
	return ev, nil
}

func (s *SimBackend) HideCursor() error {
	s.CursorVisible = false
	return nil
}

func (s *SimBackend) ShowCursor() error {
	s.CursorVisible = true
	return nil
}

func (s *SimBackend) SetCursor(x, y int) error {
	return nil
}
