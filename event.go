package glint

// EventType distinguishes input event categories.
type EventType uint8

const (
	// EventNone means no event is currently available. It is the zero
	// value and is distinct from an error.
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventFocusGained
	EventFocusLost
	EventPaste
)

// Key identifies a non-printable key, or KeyRune for a printable one.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // Printable character, check Event.Rune

	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeyDelete
	KeyInsert

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Modifier is a bitmask of modifier keys held during an event.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << iota
	ModAlt
	ModShift
)

// Has returns true if the modifier set contains the given modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// MouseButton identifies the button involved in a mouse event.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
	MouseWheelUp
	MouseWheelDown
)

// MouseAction identifies what the mouse did.
type MouseAction uint8

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
)

// Event is a terminal input event. Type selects which fields are
// meaningful; the zero value is the "no event" value.
type Event struct {
	Type EventType

	// EventKey
	Key       Key
	Rune      rune
	Modifiers Modifier

	// EventResize
	Width  int
	Height int

	// EventMouse
	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction

	// EventPaste
	Paste string
}

// KeyEvent builds a key event for the given key code.
func KeyEvent(k Key, mods Modifier) Event {
	return Event{Type: EventKey, Key: k, Modifiers: mods}
}

// RuneEvent builds a key event for a printable character.
func RuneEvent(r rune, mods Modifier) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r, Modifiers: mods}
}

// ResizeEvent builds a resize event.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}
