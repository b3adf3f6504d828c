package widget

import "glint"

// Paragraph renders multi-line text into a region. Lines are split on
// newlines; with Wrap set, lines longer than the region width continue
// on the next row, broken at column boundaries (one column per
// codepoint, like the rest of the engine).
type Paragraph struct {
	Text  string
	Style glint.Style
	Wrap  bool
}

// Render draws the paragraph into the region.
func (p Paragraph) Render(r glint.Rect, buf *glint.Buffer) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}

	row := 0
	for _, line := range splitLines(p.Text) {
		if row >= r.Height {
			return
		}
		if !p.Wrap {
			buf.WriteStringTruncated(r.X, r.Y+row, line, r.Width, p.Style)
			row++
			continue
		}

		col := 0
		for _, ch := range line {
			if col >= r.Width {
				col = 0
				row++
				if row >= r.Height {
					return
				}
			}
			buf.SetRune(r.X+col, r.Y+row, ch, p.Style)
			col++
		}
		row++
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
