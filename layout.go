package glint

// Direction selects the axis a rectangle is split along.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

// ConstraintKind tags the variant held by a Constraint.
type ConstraintKind uint8

const (
	ConstraintFixed ConstraintKind = iota
	ConstraintMin
	ConstraintMax
	ConstraintPercentage
	ConstraintRatio
	ConstraintLength
)

// Constraint is a sizing rule along one axis.
type Constraint struct {
	Kind ConstraintKind
	N    int // Fixed, Min, Max, Length: cells; Percentage: 0-100
	Num  int // Ratio numerator
	Den  int // Ratio denominator
}

// Fixed requests exactly n cells.
func Fixed(n int) Constraint {
	return Constraint{Kind: ConstraintFixed, N: n}
}

// Min requests at least n cells.
func Min(n int) Constraint {
	return Constraint{Kind: ConstraintMin, N: n}
}

// Max requests at most n cells out of the shared flexible space.
func Max(n int) Constraint {
	return Constraint{Kind: ConstraintMax, N: n}
}

// Percentage requests p percent of the flexible space, p in 0-100.
func Percentage(p int) Constraint {
	return Constraint{Kind: ConstraintPercentage, N: p}
}

// Ratio requests num/den of the flexible space.
func Ratio(num, den int) Constraint {
	return Constraint{Kind: ConstraintRatio, Num: num, Den: den}
}

// Length requests n cells.
func Length(n int) Constraint {
	return Constraint{Kind: ConstraintLength, N: n}
}

// Split partitions a rectangle along the given axis into one
// sub-rectangle per constraint, in input order. The margin is applied
// first; fixed-style constraints reserve space up front, and the
// remainder is shared among the flexible kinds. Once the running offset
// reaches the available extent, remaining constraints receive zero-size
// rectangles positioned at the end of the extent, so the result always
// has len(constraints) entries.
func Split(r Rect, dir Direction, margin Margin, constraints []Constraint) []Rect {
	inner := margin.Apply(r)

	available := inner.Width
	if dir == Vertical {
		available = inner.Height
	}

	// First pass: reserve space for fixed-style constraints and count
	// the flexible ones.
	reserved := 0
	flexCount := 0
	for _, c := range constraints {
		switch c.Kind {
		case ConstraintFixed, ConstraintMin:
			reserved += c.N
		case ConstraintPercentage, ConstraintRatio, ConstraintLength, ConstraintMax:
			flexCount++
		}
	}
	remaining := available - reserved
	if remaining < 0 {
		remaining = 0
	}
	if flexCount == 0 {
		flexCount = 1
	}

	// Second pass: allocate in input order.
	out := make([]Rect, 0, len(constraints))
	offset := 0
	for _, c := range constraints {
		if offset >= available {
			out = append(out, splitRect(inner, dir, available, 0))
			continue
		}

		free := available - offset
		size := 0
		switch c.Kind {
		case ConstraintFixed, ConstraintMin, ConstraintLength:
			size = c.N
		case ConstraintMax:
			// Max constraints share the flexible space equally rather
			// than each independently claiming up to its cap.
			size = remaining / flexCount
			if c.N < size {
				size = c.N
			}
		case ConstraintPercentage:
			p := c.N
			if p < 0 {
				p = 0
			}
			if p > 100 {
				p = 100
			}
			size = remaining * p / 100
		case ConstraintRatio:
			if c.Den != 0 {
				size = remaining * c.Num / c.Den
			}
		}
		if size > free {
			size = free
		}
		if size < 0 {
			size = 0
		}

		out = append(out, splitRect(inner, dir, offset, size))
		offset += size
	}
	return out
}

// splitRect builds one output rectangle: the split axis gets the given
// offset and size, the other axis keeps the inner rectangle's extent.
func splitRect(inner Rect, dir Direction, offset, size int) Rect {
	if dir == Horizontal {
		return Rect{
			X:      inner.X + offset,
			Y:      inner.Y,
			Width:  size,
			Height: inner.Height,
		}
	}
	return Rect{
		X:      inner.X,
		Y:      inner.Y + offset,
		Width:  inner.Width,
		Height: size,
	}
}
