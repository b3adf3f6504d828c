package widget

import (
	"strings"
	"testing"

	"glint"
)

func TestBlock(t *testing.T) {
	t.Run("border and title", func(t *testing.T) {
		buf := glint.NewBuffer(10, 4)
		b := NewBlock("Hi")
		b.Render(glint.Rect{Width: 10, Height: 4}, buf)

		want := strings.Join([]string{
			"┌─Hi─────┐",
			"│        │",
			"│        │",
			"└────────┘",
		}, "\n")
		if got := buf.String(); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("long title truncates", func(t *testing.T) {
		buf := glint.NewBuffer(8, 3)
		b := NewBlock("abcdefgh")
		b.Render(glint.Rect{Width: 8, Height: 3}, buf)

		if got := buf.GetLine(0); got != "┌─abc…─┐" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("inner insets by one", func(t *testing.T) {
		b := NewBlock("")
		got := b.Inner(glint.Rect{X: 2, Y: 3, Width: 10, Height: 5})
		want := glint.Rect{X: 3, Y: 4, Width: 8, Height: 3}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}

		// Without a border the region passes through untouched
		b.Border = false
		if got := b.Inner(want); got != want {
			t.Errorf("borderless inner changed the rect: %+v", got)
		}
	})

	t.Run("degenerate regions draw nothing", func(t *testing.T) {
		buf := glint.NewBuffer(10, 4)
		NewBlock("x").Render(glint.Rect{Width: 1, Height: 1}, buf)
		if buf.GetLine(0) != "" {
			t.Error("expected no output for a 1x1 region")
		}
	})
}

func TestParagraph(t *testing.T) {
	t.Run("lines clip to the region", func(t *testing.T) {
		buf := glint.NewBuffer(12, 4)
		p := Paragraph{Text: "first\nsecond line that is long\nthird"}
		p.Render(glint.Rect{Width: 8, Height: 2}, buf)

		if got := buf.GetLine(0); got != "first" {
			t.Errorf("line 0: %q", got)
		}
		if got := buf.GetLine(1); got != "second …" {
			t.Errorf("line 1: %q", got)
		}
		if got := buf.GetLine(2); got != "" {
			t.Errorf("line 2 should be outside the region: %q", got)
		}
	})

	t.Run("wrap breaks at the region edge", func(t *testing.T) {
		buf := glint.NewBuffer(10, 4)
		p := Paragraph{Text: "abcdefgh", Wrap: true}
		p.Render(glint.Rect{Width: 4, Height: 3}, buf)

		if got := buf.GetLine(0); got != "abcd" {
			t.Errorf("line 0: %q", got)
		}
		if got := buf.GetLine(1); got != "efgh" {
			t.Errorf("line 1: %q", got)
		}
	})
}

func TestList(t *testing.T) {
	items := []string{"alpha", "beta", "gamma", "delta"}

	t.Run("renders visible window", func(t *testing.T) {
		buf := glint.NewBuffer(10, 2)
		l := List{Items: items, Selected: -1, Offset: 1}
		l.Render(glint.Rect{Width: 10, Height: 2}, buf)

		if got := buf.GetLine(0); got != "beta" {
			t.Errorf("line 0: %q", got)
		}
		if got := buf.GetLine(1); got != "gamma" {
			t.Errorf("line 1: %q", got)
		}
	})

	t.Run("selection styles the full row", func(t *testing.T) {
		buf := glint.NewBuffer(8, 4)
		l := List{
			Items:         items,
			Selected:      1,
			SelectedStyle: glint.DefaultStyle().Background(glint.Blue),
		}
		l.Render(glint.Rect{Width: 8, Height: 4}, buf)

		if got := buf.Get(7, 1).Style.BG; got != glint.Blue {
			t.Errorf("expected highlight across the row, got %+v", got)
		}
		if got := buf.Get(0, 0).Style.BG; got != glint.ResetColor() {
			t.Error("unselected row should not be highlighted")
		}
	})

	t.Run("VisibleOffset follows the selection", func(t *testing.T) {
		l := List{Items: items, Selected: 3, Offset: 0}
		if got := l.VisibleOffset(2); got != 2 {
			t.Errorf("expected offset 2, got %d", got)
		}
		l = List{Items: items, Selected: 0, Offset: 3}
		if got := l.VisibleOffset(2); got != 0 {
			t.Errorf("expected offset 0, got %d", got)
		}
	})
}

func TestGauge(t *testing.T) {
	t.Run("fills by ratio", func(t *testing.T) {
		buf := glint.NewBuffer(10, 1)
		g := Gauge{
			Ratio:       0.5,
			FilledStyle: glint.DefaultStyle().Background(glint.Green),
		}
		g.Render(glint.Rect{Width: 10, Height: 1}, buf)

		for x := 0; x < 5; x++ {
			if buf.Get(x, 0).Style.BG != glint.Green {
				t.Fatalf("column %d should be filled", x)
			}
		}
		for x := 5; x < 10; x++ {
			if buf.Get(x, 0).Style.BG == glint.Green {
				t.Fatalf("column %d should not be filled", x)
			}
		}
	})

	t.Run("ratio clamps", func(t *testing.T) {
		buf := glint.NewBuffer(4, 1)
		g := Gauge{Ratio: 1.7, FilledStyle: glint.DefaultStyle().Background(glint.Red)}
		g.Render(glint.Rect{Width: 4, Height: 1}, buf)
		if buf.Get(3, 0).Style.BG != glint.Red {
			t.Error("expected full fill for ratio above 1")
		}
	})

	t.Run("label centers", func(t *testing.T) {
		buf := glint.NewBuffer(10, 1)
		g := Gauge{Ratio: 0, Label: "50%"}
		g.Render(glint.Rect{Width: 10, Height: 1}, buf)

		if got := buf.GetLine(0); got != "   50%" {
			t.Errorf("got %q", got)
		}
	})
}

func TestTable(t *testing.T) {
	t.Run("columns follow constraints", func(t *testing.T) {
		buf := glint.NewBuffer(20, 4)
		tbl := Table{
			Header: []string{"NAME", "SIZE"},
			Rows: [][]string{
				{"alpha", "10"},
				{"beta", "200"},
			},
			Widths: []glint.Constraint{glint.Fixed(10), glint.Fixed(6)},
		}
		tbl.Render(glint.Rect{Width: 20, Height: 4}, buf)

		if got := buf.GetLine(0); got != "NAME      SIZE" {
			t.Errorf("header: %q", got)
		}
		if got := buf.GetLine(1); got != "alpha     10" {
			t.Errorf("row 1: %q", got)
		}
		if got := buf.GetLine(2); got != "beta      200" {
			t.Errorf("row 2: %q", got)
		}
	})

	t.Run("rows clip to the region height", func(t *testing.T) {
		buf := glint.NewBuffer(10, 5)
		tbl := Table{
			Header: []string{"H"},
			Rows:   [][]string{{"1"}, {"2"}, {"3"}},
			Widths: []glint.Constraint{glint.Fixed(5)},
		}
		tbl.Render(glint.Rect{Width: 10, Height: 2}, buf)

		if got := buf.GetLine(1); got != "1" {
			t.Errorf("row 1: %q", got)
		}
		if got := buf.GetLine(2); got != "" {
			t.Errorf("row beyond the region rendered: %q", got)
		}
	})
}
