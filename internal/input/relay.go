// Package input forwards the host's keyboard events to the chat box.
package input

import (
	"github.com/dshills/chatsounds/internal/input/key"
)

// CompletionKey asks for tab completion while the chat box is open.
const CompletionKey = key.Tab

// CompletionNotice is printed in place of tab completion, which is not
// implemented.
const CompletionNotice = "chatsounds: tab completion is not available yet"

// ChatUI is the chat box the relay feeds.
type ChatUI interface {
	HandleKeyDown(k key.Code, repeat bool)
	HandleKeyPress(r rune)
	IsOpen() bool
}

// Notifier shows a line to the user.
type Notifier interface {
	Print(line string)
}

// Relay passes key events through to a ChatUI.
type Relay struct {
	ui     ChatUI
	notify Notifier
}

// NewRelay creates a relay. notify may be nil.
func NewRelay(ui ChatUI, notify Notifier) *Relay {
	return &Relay{ui: ui, notify: notify}
}

// KeyDown forwards a key-down event.
func (r *Relay) KeyDown(k key.Code, repeat bool) {
	r.ui.HandleKeyDown(k, repeat)

	if k == CompletionKey && r.ui.IsOpen() && r.notify != nil {
		r.notify.Print(CompletionNotice)
	}
}

// KeyPress forwards a typed character.
func (r *Relay) KeyPress(ch rune) {
	r.ui.HandleKeyPress(ch)
}
