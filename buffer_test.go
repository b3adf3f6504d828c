package glint

import "testing"

func TestBuffer(t *testing.T) {
	t.Run("NewBuffer", func(t *testing.T) {
		buf := NewBuffer(80, 24)
		if buf.Width() != 80 || buf.Height() != 24 {
			t.Errorf("expected 80x24, got %dx%d", buf.Width(), buf.Height())
		}
		if len(buf.cells) != 80*24 {
			t.Errorf("expected %d cells, got %d", 80*24, len(buf.cells))
		}
		for y := 0; y < buf.Height(); y++ {
			for x := 0; x < buf.Width(); x++ {
				if c := buf.Get(x, y); c != EmptyCell() {
					t.Fatalf("expected empty cell at (%d,%d), got %+v", x, y, c)
				}
			}
		}
	})

	t.Run("InBounds", func(t *testing.T) {
		buf := NewBuffer(10, 10)

		tests := []struct {
			x, y   int
			expect bool
		}{
			{0, 0, true},
			{9, 9, true},
			{-1, 0, false},
			{0, -1, false},
			{10, 0, false},
			{0, 10, false},
		}

		for _, tt := range tests {
			if got := buf.InBounds(tt.x, tt.y); got != tt.expect {
				t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		}
	})

	t.Run("SetGet", func(t *testing.T) {
		buf := NewBuffer(10, 10)
		cell := NewCell('X', DefaultStyle().Foreground(Red))

		buf.Set(5, 5, cell)
		if got := buf.Get(5, 5); !got.Equal(cell) {
			t.Errorf("got %+v, want %+v", got, cell)
		}

		// All other cells remain default
		for y := 0; y < 10; y++ {
			for x := 0; x < 10; x++ {
				if x == 5 && y == 5 {
					continue
				}
				if c := buf.Get(x, y); c != EmptyCell() {
					t.Fatalf("cell (%d,%d) unexpectedly changed: %+v", x, y, c)
				}
			}
		}

		// Out of bounds: Get returns empty, Set is a no-op
		if oob := buf.Get(-1, -1); oob != EmptyCell() {
			t.Error("expected empty cell for out of bounds")
		}
		buf.Set(10, 10, cell)
		buf.SetRune(-1, 5, 'Z', DefaultStyle())
	})

	t.Run("WriteString", func(t *testing.T) {
		buf := NewBuffer(10, 3)

		n := buf.WriteString(0, 0, "hello", DefaultStyle())
		if n != 5 {
			t.Errorf("expected 5 cells written, got %d", n)
		}
		if got := buf.GetLine(0); got != "hello" {
			t.Errorf("line 0: got %q, want %q", got, "hello")
		}

		// Stops at the right edge
		n = buf.WriteString(7, 1, "world", DefaultStyle())
		if n != 3 {
			t.Errorf("expected 3 cells written at edge, got %d", n)
		}
		if got := buf.GetLine(1); got != "       wor" {
			t.Errorf("line 1: got %q", got)
		}

		// One column per codepoint, including multi-byte runes
		n = buf.WriteString(0, 2, "日本語", DefaultStyle())
		if n != 3 {
			t.Errorf("expected 3 columns for 3 codepoints, got %d", n)
		}
		if buf.Get(1, 2).Rune != '本' {
			t.Errorf("expected '本' in column 1, got %q", buf.Get(1, 2).Rune)
		}
	})

	t.Run("WriteStringTruncated", func(t *testing.T) {
		buf := NewBuffer(20, 2)

		n := buf.WriteStringTruncated(0, 0, "hello world", 5, DefaultStyle())
		if n != 5 {
			t.Errorf("expected 5 cells written, got %d", n)
		}
		if got := buf.GetLine(0); got != "hell…" {
			t.Errorf("got %q, want %q", got, "hell…")
		}

		// No truncation marker when the string fits
		buf.WriteStringTruncated(0, 1, "hi", 5, DefaultStyle())
		if got := buf.GetLine(1); got != "hi" {
			t.Errorf("got %q, want %q", got, "hi")
		}
	})

	t.Run("FillArea", func(t *testing.T) {
		buf := NewBuffer(10, 10)
		style := DefaultStyle().Background(Blue)

		// Partially out of bounds: only the intersection is written
		buf.FillArea(Rect{X: 8, Y: 8, Width: 5, Height: 5}, '#', style)
		if buf.Get(8, 8).Rune != '#' || buf.Get(9, 9).Rune != '#' {
			t.Error("expected fill inside the intersection")
		}
		if buf.Get(7, 7).Rune != ' ' {
			t.Error("fill leaked outside the rect")
		}
	})

	t.Run("Resize", func(t *testing.T) {
		buf := NewBuffer(10, 10)
		buf.WriteString(0, 0, "keep", DefaultStyle())
		buf.Set(9, 9, NewCell('X', DefaultStyle()))

		// Same size is a no-op: content bit-identical
		before := buf.String()
		buf.Resize(10, 10)
		if buf.String() != before {
			t.Error("same-size resize changed content")
		}

		// Shrink keeps the top-left region
		buf.Resize(5, 5)
		if len(buf.cells) != 25 {
			t.Errorf("expected 25 cells after shrink, got %d", len(buf.cells))
		}
		if got := buf.GetLine(0); got != "keep" {
			t.Errorf("expected top-left preserved, got %q", got)
		}

		// Grow default-fills the new area
		buf.Resize(8, 8)
		if len(buf.cells) != 64 {
			t.Errorf("expected 64 cells after grow, got %d", len(buf.cells))
		}
		if got := buf.GetLine(0); got != "keep" {
			t.Errorf("expected content preserved after grow, got %q", got)
		}
		if c := buf.Get(7, 7); c != EmptyCell() {
			t.Errorf("expected default fill in grown area, got %+v", c)
		}
	})
}

func TestDiff(t *testing.T) {
	t.Run("minimal update set", func(t *testing.T) {
		prev := NewBuffer(10, 5)
		next := NewBuffer(10, 5)

		next.Set(3, 1, NewCell('A', DefaultStyle()))
		next.Set(7, 4, NewCell('B', DefaultStyle().Foreground(Red)))

		updates := prev.Diff(next)
		if len(updates) != 2 {
			t.Fatalf("expected 2 updates, got %d", len(updates))
		}
		if updates[0].X != 3 || updates[0].Y != 1 || updates[0].Cell.Rune != 'A' {
			t.Errorf("unexpected first update: %+v", updates[0])
		}
		if updates[1].X != 7 || updates[1].Y != 4 || updates[1].Cell.Rune != 'B' {
			t.Errorf("unexpected second update: %+v", updates[1])
		}
	})

	t.Run("style-only change is a change", func(t *testing.T) {
		prev := NewBuffer(4, 1)
		next := NewBuffer(4, 1)
		next.Set(0, 0, NewCell(' ', DefaultStyle().Background(Green)))

		if updates := prev.Diff(next); len(updates) != 1 {
			t.Fatalf("expected 1 update for style-only change, got %d", len(updates))
		}
	})

	t.Run("identical buffers produce nothing", func(t *testing.T) {
		prev := NewBuffer(10, 5)
		next := NewBuffer(10, 5)
		prev.WriteString(0, 0, "same", DefaultStyle())
		next.WriteString(0, 0, "same", DefaultStyle())

		if updates := prev.Diff(next); len(updates) != 0 {
			t.Errorf("expected no updates, got %d", len(updates))
		}
	})

	t.Run("round trip", func(t *testing.T) {
		prev := NewBuffer(8, 4)
		next := NewBuffer(8, 4)
		prev.WriteString(0, 0, "before", DefaultStyle())
		next.WriteString(1, 2, "after", DefaultStyle().Bold())
		next.Set(7, 3, NewCell('!', DefaultStyle().Foreground(Cyan)))

		applied := NewBuffer(8, 4)
		applied.WriteString(0, 0, "before", DefaultStyle())
		for _, u := range prev.Diff(next) {
			applied.Set(u.X, u.Y, u.Cell)
		}

		for y := 0; y < 4; y++ {
			for x := 0; x < 8; x++ {
				if applied.Get(x, y) != next.Get(x, y) {
					t.Fatalf("cell (%d,%d) differs after applying diff", x, y)
				}
			}
		}
	})

	t.Run("dimension mismatch repaints fully", func(t *testing.T) {
		prev := NewBuffer(10, 5)
		next := NewBuffer(6, 3)

		updates := prev.Diff(next)
		if len(updates) != 6*3 {
			t.Fatalf("expected %d updates, got %d", 6*3, len(updates))
		}
		// Row-major order, one per cell of next
		for i, u := range updates {
			if u.X != i%6 || u.Y != i/6 {
				t.Fatalf("update %d out of order: %+v", i, u)
			}
		}
	})
}
