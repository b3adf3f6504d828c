// Package widget provides stateless visual components over the glint
// core. Each widget maps a declarative description plus a target region
// to cell writes against a Buffer.
package widget

import "glint"

// BorderSet defines the runes used for drawing a border.
type BorderSet struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// Standard border sets.
var (
	BorderSingle = BorderSet{
		Horizontal:  '─',
		Vertical:    '│',
		TopLeft:     '┌',
		TopRight:    '┐',
		BottomLeft:  '└',
		BottomRight: '┘',
	}
	BorderRounded = BorderSet{
		Horizontal:  '─',
		Vertical:    '│',
		TopLeft:     '╭',
		TopRight:    '╮',
		BottomLeft:  '╰',
		BottomRight: '╯',
	}
	BorderDouble = BorderSet{
		Horizontal:  '═',
		Vertical:    '║',
		TopLeft:     '╔',
		TopRight:    '╗',
		BottomLeft:  '╚',
		BottomRight: '╝',
	}
)

// Block is a bordered container with an optional title. Other widgets
// typically render into its Inner region.
type Block struct {
	Title       string
	Border      bool
	BorderSet   BorderSet
	BorderStyle glint.Style
	TitleStyle  glint.Style
}

// NewBlock returns a bordered block with the single-line border set.
func NewBlock(title string) Block {
	return Block{Title: title, Border: true, BorderSet: BorderSingle}
}

// Inner returns the drawable region inside the block's border.
func (b Block) Inner(r glint.Rect) glint.Rect {
	if !b.Border {
		return r
	}
	return glint.MarginOne.Apply(r)
}

// Render draws the border and title into the region.
func (b Block) Render(r glint.Rect, buf *glint.Buffer) {
	if !b.Border || r.Width < 2 || r.Height < 2 {
		return
	}
	set := b.BorderSet
	if set == (BorderSet{}) {
		set = BorderSingle
	}

	buf.SetRune(r.X, r.Y, set.TopLeft, b.BorderStyle)
	buf.SetRune(r.X+r.Width-1, r.Y, set.TopRight, b.BorderStyle)
	buf.SetRune(r.X, r.Y+r.Height-1, set.BottomLeft, b.BorderStyle)
	buf.SetRune(r.X+r.Width-1, r.Y+r.Height-1, set.BottomRight, b.BorderStyle)

	for i := 1; i < r.Width-1; i++ {
		buf.SetRune(r.X+i, r.Y, set.Horizontal, b.BorderStyle)
		buf.SetRune(r.X+i, r.Y+r.Height-1, set.Horizontal, b.BorderStyle)
	}
	for i := 1; i < r.Height-1; i++ {
		buf.SetRune(r.X, r.Y+i, set.Vertical, b.BorderStyle)
		buf.SetRune(r.X+r.Width-1, r.Y+i, set.Vertical, b.BorderStyle)
	}

	if b.Title != "" && r.Width > 4 {
		buf.WriteStringTruncated(r.X+2, r.Y, b.Title, r.Width-4, b.TitleStyle)
	}
}
