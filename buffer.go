package glint

// Cell represents a single character cell: one codepoint plus a fully
// resolved style.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a cell with a space and default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Style: DefaultStyle()}
}

// NewCell creates a cell with the given rune and style.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}

// Equal returns true if two cells are equal: same codepoint, same
// colors, same attribute bits.
func (c Cell) Equal(other Cell) bool {
	return c == other
}

// ellipsis marks a truncated write.
const ellipsis = '…'

// Buffer is a 2D grid of cells representing one frame's intended state.
// The backing slice always holds exactly width*height cells.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a new buffer with the given dimensions, filled with
// empty cells.
func NewBuffer(width, height int) *Buffer {
	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}
	return &Buffer{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Width returns the buffer width.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// InBounds returns true if the given coordinates are within the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// index converts x,y coordinates to a slice index.
func (b *Buffer) index(x, y int) int {
	return y*b.width + x
}

// Get returns the cell at the given coordinates.
// Returns an empty cell if out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[b.index(x, y)]
}

// Set sets the cell at the given coordinates.
// Does nothing if out of bounds.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)] = c
}

// SetRune sets the cell at the given coordinates to the given rune and
// style. Does nothing if out of bounds.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	b.Set(x, y, NewCell(r, style))
}

// Fill fills the entire buffer with the given cell.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Clear clears the buffer to empty cells with default style.
func (b *Buffer) Clear() {
	b.Fill(EmptyCell())
}

// FillArea writes the given rune and style to every cell in the
// intersection of r and the buffer.
func (b *Buffer) FillArea(r Rect, ch rune, style Style) {
	area := r.Intersect(Rect{Width: b.width, Height: b.height})
	c := NewCell(ch, style)
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			b.cells[b.index(x, y)] = c
		}
	}
}

// WriteString writes a string at the given coordinates, one column per
// codepoint, stopping at the buffer's right edge. It is not display-width
// aware: every codepoint advances exactly one column.
// Returns the number of cells written.
func (b *Buffer) WriteString(x, y int, s string, style Style) int {
	written := 0
	for _, r := range s {
		if !b.InBounds(x, y) {
			break
		}
		b.Set(x, y, NewCell(r, style))
		x++
		written++
	}
	return written
}

// WriteStringTruncated writes a string like WriteString but stops after
// maxWidth columns. If the string was cut short, the last written column
// is overwritten with an ellipsis.
// Returns the number of cells written.
func (b *Buffer) WriteStringTruncated(x, y int, s string, maxWidth int, style Style) int {
	written := 0
	truncated := false
	for _, r := range s {
		if written >= maxWidth {
			truncated = true
			break
		}
		if !b.InBounds(x, y) {
			break
		}
		b.Set(x, y, NewCell(r, style))
		x++
		written++
	}
	if truncated && written > 0 {
		b.Set(x-1, y, NewCell(ellipsis, style))
	}
	return written
}

// Resize resizes the buffer to new dimensions. A resize to the current
// dimensions is a no-op. Otherwise the backing slice is reallocated, the
// top-left overlapping region is preserved and the remainder is filled
// with empty cells. Any previously obtained cell values are stale after
// a resize.
func (b *Buffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}

	newCells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range newCells {
		newCells[i] = empty
	}

	minWidth := b.width
	if width < minWidth {
		minWidth = width
	}
	minHeight := b.height
	if height < minHeight {
		minHeight = height
	}

	for y := 0; y < minHeight; y++ {
		for x := 0; x < minWidth; x++ {
			newCells[y*width+x] = b.cells[y*b.width+x]
		}
	}

	b.cells = newCells
	b.width = width
	b.height = height
}

// Update is a single cell change produced by Diff: the new cell and the
// position it belongs at.
type Update struct {
	X, Y int
	Cell Cell
}

// Diff computes the ordered update list that turns this buffer's content
// into next's. When dimensions match, it emits exactly one update per
// differing cell, in row-major order. When they differ it degrades to a
// full repaint: one update per cell of next, row-major.
func (b *Buffer) Diff(next *Buffer) []Update {
	if b.width != next.width || b.height != next.height {
		updates := make([]Update, 0, len(next.cells))
		for i, c := range next.cells {
			updates = append(updates, Update{
				X:    i % next.width,
				Y:    i / next.width,
				Cell: c,
			})
		}
		return updates
	}

	var updates []Update
	for i := range next.cells {
		if b.cells[i] == next.cells[i] {
			continue
		}
		updates = append(updates, Update{
			X:    i % b.width,
			Y:    i / b.width,
			Cell: next.cells[i],
		})
	}
	return updates
}

// GetLine returns the content of a single line as a string with trailing
// spaces removed. Intended for tests and debugging.
func (b *Buffer) GetLine(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var line []byte
	lastNonSpace := -1
	for x := 0; x < b.width; x++ {
		r := b.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		line = append(line, string(r)...)
		if r != ' ' {
			lastNonSpace = len(line)
		}
	}
	if lastNonSpace >= 0 {
		return string(line[:lastNonSpace])
	}
	return ""
}

// String returns the buffer contents as a string, rows separated by
// newlines. Trailing spaces are preserved.
func (b *Buffer) String() string {
	var result []byte
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			r := b.Get(x, y).Rune
			if r == 0 {
				r = ' '
			}
			result = append(result, string(r)...)
		}
		if y < b.height-1 {
			result = append(result, '\n')
		}
	}
	return string(result)
}
