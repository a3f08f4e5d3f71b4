package sim

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/chatsounds/internal/input/key"
)

var specialKeys = map[tcell.Key]key.Code{
	tcell.KeyEscape:     key.Escape,
	tcell.KeyEnter:      key.Enter,
	tcell.KeyTab:        key.Tab,
	tcell.KeyBackspace:  key.Backspace,
	tcell.KeyBackspace2: key.Backspace,
	tcell.KeyDelete:     key.Delete,
	tcell.KeyInsert:     key.Insert,
	tcell.KeyHome:       key.Home,
	tcell.KeyEnd:        key.End,
	tcell.KeyPgUp:       key.PageUp,
	tcell.KeyPgDn:       key.PageDown,
	tcell.KeyUp:         key.Up,
	tcell.KeyDown:       key.Down,
	tcell.KeyLeft:       key.Left,
	tcell.KeyRight:      key.Right,
	tcell.KeyF1:         key.F1,
	tcell.KeyF2:         key.F2,
	tcell.KeyF3:         key.F3,
	tcell.KeyF4:         key.F4,
	tcell.KeyF5:         key.F5,
	tcell.KeyF6:         key.F6,
	tcell.KeyF7:         key.F7,
	tcell.KeyF8:         key.F8,
	tcell.KeyF9:         key.F9,
	tcell.KeyF10:        key.F10,
	tcell.KeyF11:        key.F11,
	tcell.KeyF12:        key.F12,
}

var punctuation = map[rune]key.Code{
	' ':  key.Space,
	'/':  key.Slash,
	'?':  key.Slash,
	'-':  key.Minus,
	'_':  key.Minus,
	'=':  key.Equals,
	'+':  key.Equals,
	'[':  key.LBracket,
	'{':  key.LBracket,
	']':  key.RBracket,
	'}':  key.RBracket,
	';':  key.Semicolon,
	':':  key.Semicolon,
	'\'': key.Quote,
	'"':  key.Quote,
	',':  key.Comma,
	'<':  key.Comma,
	'.':  key.Period,
	'>':  key.Period,
	'\\': key.Backslash,
	'|':  key.Backslash,
	'`':  key.Tilde,
	'~':  key.Tilde,
}

// KeyFromEvent translates a terminal key event into the key the host would
// report and, for typed characters, the character itself. ok is false when
// the event has no host key; ch may still be set.
func KeyFromEvent(ev *tcell.EventKey) (code key.Code, ch rune, ok bool) {
	if ev.Key() != tcell.KeyRune {
		code, ok = specialKeys[ev.Key()]
		return code, 0, ok
	}

	ch = ev.Rune()
	switch {
	case ch >= 'a' && ch <= 'z':
		return key.A + key.Code(ch-'a'), ch, true
	case ch >= 'A' && ch <= 'Z':
		return key.A + key.Code(ch-'A'), ch, true
	case ch >= '0' && ch <= '9':
		return key.Num0 + key.Code(ch-'0'), ch, true
	}
	code, ok = punctuation[ch]
	return code, ch, ok
}
