package widget

import "glint"

// List renders a scrollable list of items with an optional selection
// highlight. Offset is the index of the first visible item; the caller
// owns scroll state between frames.
type List struct {
	Items         []string
	Selected      int // -1 for no selection
	Offset        int
	Style         glint.Style
	SelectedStyle glint.Style
}

// Render draws the visible window of items into the region.
func (l List) Render(r glint.Rect, buf *glint.Buffer) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	offset := l.Offset
	if offset < 0 {
		offset = 0
	}
	for row := 0; row < r.Height; row++ {
		i := offset + row
		if i >= len(l.Items) {
			break
		}
		style := l.Style
		if i == l.Selected {
			style = l.Style.Merge(l.SelectedStyle)
			// Highlight the full row, not just the text.
			buf.FillArea(glint.Rect{X: r.X, Y: r.Y + row, Width: r.Width, Height: 1}, ' ', style)
		}
		buf.WriteStringTruncated(r.X, r.Y+row, l.Items[i], r.Width, style)
	}
}

// VisibleOffset returns an offset adjusted so the selected item falls
// inside a window of the given height. Helper for hosts that track
// scroll position across frames.
func (l List) VisibleOffset(height int) int {
	if height <= 0 || l.Selected < 0 {
		return l.Offset
	}
	offset := l.Offset
	if l.Selected < offset {
		offset = l.Selected
	}
	if l.Selected >= offset+height {
		offset = l.Selected - height + 1
	}
	return offset
}
