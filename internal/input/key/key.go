package key

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
)

// Code represents a keyboard key as numbered by the host.
type Code int

const (
	// None represents no key.
	None Code = iota

	// Function keys
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24

	// Punctuation
	Tilde
	Minus
	Equals
	LBracket
	RBracket
	Slash
	Semicolon
	Quote
	Comma
	Period
	Backslash

	// Modifiers
	LShift
	RShift
	LCtrl
	RCtrl
	LAlt
	RAlt
	LWin
	RWin

	// Arrow keys
	Up
	Down
	Left
	Right

	// Digits
	Num0
	Num1
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9

	// Navigation
	Insert
	Delete
	Home
	End
	PageUp
	PageDown
	Menu

	// Letters
	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z

	// Other special keys
	Enter
	Escape
	Space
	Backspace
	Tab
	CapsLock
	ScrollLock
	NumLock
	PrintScreen
	Pause

	// Keypad keys
	KP0
	KP1
	KP2
	KP3
	KP4
	KP5
	KP6
	KP7
	KP8
	KP9
	KPDivide
	KPMultiply
	KPSubtract
	KPAdd
	KPDecimal
	KPEnter

	// Count is the number of key codes. It is not a key.
	Count
)

// Conversion errors.
var (
	// ErrOutOfRange is returned when a raw key code does not fit the host's
	// unsigned 32-bit key field.
	ErrOutOfRange = errors.New("key code out of range")

	// ErrInvalidRune is returned when a raw key press is not a valid code point.
	ErrInvalidRune = errors.New("invalid key press code point")
)

// FromRaw converts a raw host key code. Codes past the end of this table
// (extra mouse buttons and the like) are returned as is; Valid reports false
// for them.
func FromRaw(raw int) (Code, error) {
	if raw < 0 || uint64(raw) > math.MaxUint32 {
		return None, fmt.Errorf("%w: %d", ErrOutOfRange, raw)
	}
	return Code(raw), nil
}

// RuneFromRaw converts the raw code point carried by a host key press.
func RuneFromRaw(raw int) (rune, error) {
	if raw < 0 || raw > utf8.MaxRune || !utf8.ValidRune(rune(raw)) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRune, raw)
	}
	return rune(raw), nil
}

// Valid reports whether c is a key in this table.
func (c Code) Valid() bool {
	return c >= None && c < Count
}

// IsLetter reports whether c is one of A through Z.
func (c Code) IsLetter() bool {
	return c >= A && c <= Z
}

// IsDigit reports whether c is one of the main-row digits.
func (c Code) IsDigit() bool {
	return c >= Num0 && c <= Num9
}

// IsFunction reports whether c is a function key.
func (c Code) IsFunction() bool {
	return c >= F1 && c <= F24
}

// IsModifier reports whether c is a shift, control, alt or system key.
func (c Code) IsModifier() bool {
	return c >= LShift && c <= RWin
}

var names = map[Code]string{
	None:        "None",
	Tilde:       "Tilde",
	Minus:       "Minus",
	Equals:      "Equals",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	Slash:       "Slash",
	Semicolon:   "Semicolon",
	Quote:       "Quote",
	Comma:       "Comma",
	Period:      "Period",
	Backslash:   "Backslash",
	LShift:      "LShift",
	RShift:      "RShift",
	LCtrl:       "LCtrl",
	RCtrl:       "RCtrl",
	LAlt:        "LAlt",
	RAlt:        "RAlt",
	LWin:        "LWin",
	RWin:        "RWin",
	Up:          "Up",
	Down:        "Down",
	Left:        "Left",
	Right:       "Right",
	Insert:      "Insert",
	Delete:      "Delete",
	Home:        "Home",
	End:         "End",
	PageUp:      "PageUp",
	PageDown:    "PageDown",
	Menu:        "Menu",
	Enter:       "Enter",
	Escape:      "Escape",
	Space:       "Space",
	Backspace:   "Backspace",
	Tab:         "Tab",
	CapsLock:    "CapsLock",
	ScrollLock:  "ScrollLock",
	NumLock:     "NumLock",
	PrintScreen: "PrintScreen",
	Pause:       "Pause",
	KPDivide:    "KPDivide",
	KPMultiply:  "KPMultiply",
	KPSubtract:  "KPSubtract",
	KPAdd:       "KPAdd",
	KPDecimal:   "KPDecimal",
	KPEnter:     "KPEnter",
}

// String returns a human-readable name for the key.
func (c Code) String() string {
	switch {
	case c.IsFunction():
		return fmt.Sprintf("F%d", int(c-F1)+1)
	case c.IsDigit():
		return string(rune('0' + int(c-Num0)))
	case c.IsLetter():
		return string(rune('A' + int(c-A)))
	case c >= KP0 && c <= KP9:
		return fmt.Sprintf("KP%d", int(c-KP0))
	}
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(c))
}
