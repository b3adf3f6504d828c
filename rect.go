package glint

// Rect is a rectangular region in cell units.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Area returns the number of cells covered by the rectangle.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Contains reports whether the point lies inside the rectangle.
// Bounds are half-open: the right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersect returns the overlap of two rectangles. A zero-size rect at
// r's origin is returned when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.X+r.Width, other.X+other.Width)
	y2 := min(r.Y+r.Height, other.Y+other.Height)
	if x2 <= x1 || y2 <= y1 {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Margin describes independent insets on the four sides of a rectangle.
type Margin struct {
	Left, Top, Right, Bottom int
}

// Convenience presets of equal insets on all four sides.
var (
	MarginNone = Margin{}
	MarginOne  = Margin{Left: 1, Top: 1, Right: 1, Bottom: 1}
	MarginTwo  = Margin{Left: 2, Top: 2, Right: 2, Bottom: 2}
)

// MarginAll returns a margin with the same inset on all four sides.
func MarginAll(n int) Margin {
	return Margin{Left: n, Top: n, Right: n, Bottom: n}
}

// Apply insets the rectangle by the margin. If the horizontal or
// vertical inset sum exceeds the corresponding dimension, the result is
// a zero-size rectangle at the original origin.
func (m Margin) Apply(r Rect) Rect {
	if m.Left+m.Right > r.Width || m.Top+m.Bottom > r.Height {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{
		X:      r.X + m.Left,
		Y:      r.Y + m.Top,
		Width:  r.Width - m.Left - m.Right,
		Height: r.Height - m.Top - m.Bottom,
	}
}
