// Package glint is a terminal grid rendering engine. It turns a logical
// description of a full-screen character grid into a minimal stream of
// terminal control sequences, abstracting the underlying device behind
// the Backend interface.
//
// Column accounting is one column per codepoint; the engine is not
// display-width aware.
package glint

// Attribute represents text styling attributes that can be combined.
type Attribute uint16

const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrSlowBlink
	AttrRapidBlink
	AttrReverse
	AttrHidden
	AttrStrikethrough
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// Merge returns the union of two attribute sets. Merging is strictly
// additive: it never clears a bit.
func (a Attribute) Merge(other Attribute) Attribute {
	return a | other
}

// ColorMode tags the variant held by a Color value.
type ColorMode uint8

const (
	ColorReset ColorMode = iota // Terminal default; also means "not set" in Style
	Color16                     // Basic 16 colors (0-15)
	Color256                    // 256 color palette (0-255)
	ColorRGB                    // 24-bit true color
)

// Color represents a terminal color. The zero value is the reset color.
type Color struct {
	Mode    ColorMode
	R, G, B uint8 // For RGB mode
	Index   uint8 // For 16/256 mode
}

// ResetColor returns the terminal's default color.
func ResetColor() Color {
	return Color{Mode: ColorReset}
}

// BasicColor returns one of the 16 basic terminal colors.
func BasicColor(index uint8) Color {
	return Color{Mode: Color16, Index: index}
}

// PaletteColor returns one of the 256 palette colors.
func PaletteColor(index uint8) Color {
	return Color{Mode: Color256, Index: index}
}

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// Hex returns a 24-bit true color from a hex value (e.g., 0xFF5500).
func Hex(hex uint32) Color {
	return Color{
		Mode: ColorRGB,
		R:    uint8((hex >> 16) & 0xFF),
		G:    uint8((hex >> 8) & 0xFF),
		B:    uint8(hex & 0xFF),
	}
}

// Standard basic colors for convenience.
var (
	Black   = BasicColor(0)
	Red     = BasicColor(1)
	Green   = BasicColor(2)
	Yellow  = BasicColor(3)
	Blue    = BasicColor(4)
	Magenta = BasicColor(5)
	Cyan    = BasicColor(6)
	White   = BasicColor(7)

	// Bright variants
	BrightBlack   = BasicColor(8)
	BrightRed     = BasicColor(9)
	BrightGreen   = BasicColor(10)
	BrightYellow  = BasicColor(11)
	BrightBlue    = BasicColor(12)
	BrightMagenta = BasicColor(13)
	BrightCyan    = BasicColor(14)
	BrightWhite   = BasicColor(15)
)

// Equal returns true if two colors are equal. Equality is structural:
// same variant and same payload.
func (c Color) Equal(other Color) bool {
	return c == other
}

// IsReset returns true if the color is the reset/default color.
func (c Color) IsReset() bool {
	return c.Mode == ColorReset
}

// Style combines foreground, background colors and attributes.
// A reset FG or BG acts as "unset" for Merge purposes.
type Style struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// DefaultStyle returns a style with reset colors and no attributes.
func DefaultStyle() Style {
	return Style{}
}

// Foreground returns a new style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

// Background returns a new style with the given background color.
func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

// Bold returns a new style with bold enabled.
func (s Style) Bold() Style {
	s.Attr = s.Attr.With(AttrBold)
	return s
}

// Dim returns a new style with dim enabled.
func (s Style) Dim() Style {
	s.Attr = s.Attr.With(AttrDim)
	return s
}

// Italic returns a new style with italic enabled.
func (s Style) Italic() Style {
	s.Attr = s.Attr.With(AttrItalic)
	return s
}

// Underline returns a new style with underline enabled.
func (s Style) Underline() Style {
	s.Attr = s.Attr.With(AttrUnderline)
	return s
}

// Reverse returns a new style with reverse video enabled.
func (s Style) Reverse() Style {
	s.Attr = s.Attr.With(AttrReverse)
	return s
}

// Hidden returns a new style with hidden enabled.
func (s Style) Hidden() Style {
	s.Attr = s.Attr.With(AttrHidden)
	return s
}

// Strikethrough returns a new style with strikethrough enabled.
func (s Style) Strikethrough() Style {
	s.Attr = s.Attr.With(AttrStrikethrough)
	return s
}

// Merge combines this style with an overlay. Overlay colors fully
// override when set; a reset overlay color keeps the base color.
// Attributes accumulate and are never cleared.
func (s Style) Merge(overlay Style) Style {
	out := s
	if !overlay.FG.IsReset() {
		out.FG = overlay.FG
	}
	if !overlay.BG.IsReset() {
		out.BG = overlay.BG
	}
	out.Attr = s.Attr.Merge(overlay.Attr)
	return out
}

// Equal returns true if two styles are equal.
func (s Style) Equal(other Style) bool {
	return s == other
}
