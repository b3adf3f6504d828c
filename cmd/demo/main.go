// Command demo renders a small dashboard with the glint engine.
// Quit with q, Esc or Ctrl+C.
package main

import (
	"fmt"
	"os"
	"time"

	"glint"
	"glint/widget"
)

func main() {
	backend := glint.NewANSIBackend()
	term, err := glint.NewTerminal(backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
	defer term.Close()
	term.HideCursor()

	items := []string{
		"alpha", "bravo", "charlie", "delta", "echo",
		"foxtrot", "golf", "hotel", "india", "juliett",
	}
	selected := 0
	progress := 0.0
	frame := 0

	for {
		frame++
		progress += 0.01
		if progress > 1 {
			progress = 0
		}

		// The ANSI backend has no resize events of its own, so track
		// the device size across frames.
		if w, h, err := backend.Size(); err == nil {
			if cw, ch := term.Size(); w != cw || h != ch {
				term.Resize(w, h)
			}
		}

		err := term.Draw(func(buf *glint.Buffer) error {
			w, h := buf.Size()
			rows := glint.Split(glint.Rect{Width: w, Height: h}, glint.Vertical,
				glint.MarginNone, []glint.Constraint{
					glint.Fixed(3),
					glint.Percentage(100),
					glint.Fixed(3),
				})
			cols := glint.Split(rows[1], glint.Horizontal, glint.MarginNone,
				[]glint.Constraint{
					glint.Percentage(30),
					glint.Percentage(70),
				})

			header := widget.NewBlock("glint demo")
			header.BorderSet = widget.BorderRounded
			header.Render(rows[0], buf)
			widget.Paragraph{
				Text:  fmt.Sprintf("frame %d — arrows move, q quits", frame),
				Style: glint.DefaultStyle().Foreground(glint.BrightCyan),
			}.Render(header.Inner(rows[0]), buf)

			listBlock := widget.NewBlock("items")
			listBlock.Render(cols[0], buf)
			inner := listBlock.Inner(cols[0])
			list := widget.List{
				Items:         items,
				Selected:      selected,
				SelectedStyle: glint.DefaultStyle().Background(glint.Blue).Foreground(glint.White),
			}
			list.Offset = list.VisibleOffset(inner.Height)
			list.Render(inner, buf)

			tableBlock := widget.NewBlock("details")
			tableBlock.Render(cols[1], buf)
			widget.Table{
				Header: []string{"NAME", "LEN", "FIRST"},
				Rows: [][]string{
					{items[selected], fmt.Sprint(len(items[selected])), items[selected][:1]},
				},
				Widths: []glint.Constraint{
					glint.Percentage(50), glint.Fixed(6), glint.Fixed(8),
				},
				HeaderStyle: glint.DefaultStyle().Bold(),
			}.Render(tableBlock.Inner(cols[1]), buf)

			widget.Gauge{
				Ratio:       progress,
				Label:       fmt.Sprintf("%d%%", int(progress*100)),
				Style:       glint.DefaultStyle().Background(glint.BrightBlack),
				FilledStyle: glint.DefaultStyle().Background(glint.Green).Foreground(glint.Black),
			}.Render(glint.MarginOne.Apply(rows[2]), buf)
			return nil
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "demo:", err)
			return
		}

		ev, err := term.PollEvent(50 * time.Millisecond)
		if err != nil {
			fmt.Fprintln(os.Stderr, "demo:", err)
			return
		}
		switch ev.Type {
		case glint.EventKey:
			switch {
			case ev.Key == glint.KeyEscape,
				ev.Key == glint.KeyRune && ev.Rune == 'q',
				ev.Key == glint.KeyRune && ev.Rune == 'c' && ev.Modifiers.Has(glint.ModCtrl):
				return
			case ev.Key == glint.KeyUp:
				if selected > 0 {
					selected--
				}
			case ev.Key == glint.KeyDown:
				if selected < len(items)-1 {
					selected++
				}
			}
		case glint.EventResize:
			term.Resize(ev.Width, ev.Height)
		}
	}
}
