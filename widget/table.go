package widget

import "glint"

// Table renders a header row plus data rows. Column widths are resolved
// by splitting the region with the given constraints, one per column.
type Table struct {
	Header      []string
	Rows        [][]string
	Widths      []glint.Constraint
	Style       glint.Style
	HeaderStyle glint.Style
}

// Render draws the table into the region.
func (t Table) Render(r glint.Rect, buf *glint.Buffer) {
	if r.Width <= 0 || r.Height <= 0 || len(t.Widths) == 0 {
		return
	}

	cols := glint.Split(r, glint.Horizontal, glint.MarginNone, t.Widths)

	row := 0
	if len(t.Header) > 0 {
		t.renderRow(cols, r.Y, t.Header, t.HeaderStyle, buf)
		row++
	}
	for _, cells := range t.Rows {
		if row >= r.Height {
			break
		}
		t.renderRow(cols, r.Y+row, cells, t.Style, buf)
		row++
	}
}

func (t Table) renderRow(cols []glint.Rect, y int, cells []string, style glint.Style, buf *glint.Buffer) {
	for i, col := range cols {
		if i >= len(cells) || col.Width <= 0 {
			continue
		}
		buf.WriteStringTruncated(col.X, y, cells[i], col.Width, style)
	}
}
