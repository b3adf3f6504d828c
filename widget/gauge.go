package widget

import "glint"

// Gauge renders a horizontal progress bar with a centered label.
// Ratio is clamped to 0..1.
type Gauge struct {
	Ratio       float64
	Label       string
	Style       glint.Style // unfilled portion
	FilledStyle glint.Style
}

// Render draws the gauge into the region's first row span.
func (g Gauge) Render(r glint.Rect, buf *glint.Buffer) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}

	ratio := g.Ratio
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(float64(r.Width) * ratio)

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			style := g.Style
			if x < filled {
				style = g.FilledStyle
			}
			buf.SetRune(r.X+x, r.Y+y, ' ', style)
		}
	}

	if g.Label == "" {
		return
	}
	labelRow := r.Y + r.Height/2
	labelX := r.X + (r.Width-len([]rune(g.Label)))/2
	if labelX < r.X {
		labelX = r.X
	}
	// Re-draw the label cell by cell so each keeps the fill style
	// beneath it.
	col := labelX
	for _, ch := range g.Label {
		if col >= r.X+r.Width {
			break
		}
		style := g.Style
		if col-r.X < filled {
			style = g.FilledStyle
		}
		buf.SetRune(col, labelRow, ch, style)
		col++
	}
}
