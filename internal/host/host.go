package host

import (
	"time"

	"github.com/dshills/chatsounds/internal/detour"
)

// ScheduledTask is the argument the client passes to each scheduled tick.
type ScheduledTask struct {
	// Interval is the nominal time between ticks.
	Interval time.Duration

	// Accumulator is the time owed to the task since its last run.
	Accumulator time.Duration

	// Frame counts ticks since the client started.
	Frame uint64
}

// TickFunc is the client's per-frame scheduled entry point.
type TickFunc func(task *ScheduledTask)

// ChatHandler receives one chat line and its raw message classification.
type ChatHandler func(text string, msgType int)

// KeyDownHandler receives a raw key code and whether the press is an
// auto-repeat.
type KeyDownHandler func(key int, repeat bool)

// KeyPressHandler receives the raw code point of a typed character.
type KeyPressHandler func(ch int)

// Subscription is a registered event handler.
type Subscription interface {
	// Unsubscribe removes the handler. Calling it again does nothing.
	Unsubscribe()
}

// Events is the client's event subsystem.
type Events interface {
	SubscribeChat(h ChatHandler) Subscription
	SubscribeKeyDown(h KeyDownHandler) Subscription
	SubscribeKeyPress(h KeyPressHandler) Subscription
}

// CommandFunc runs a client-side command with its arguments.
type CommandFunc func(args []string)

// CommandRegistrar is the client's command table.
type CommandRegistrar interface {
	Register(name, help string, fn CommandFunc) error
	Unregister(name string)
}

// Host is everything the plugin touches in the client.
type Host interface {
	Events

	// TickSlot is the cell holding the scheduled-task tick. Its Load may
	// return nil when the client has no tick to hook.
	TickSlot() detour.Slot[TickFunc]

	// Commands returns the client's command table.
	Commands() CommandRegistrar

	// AddChat shows a line in the client's chat. Only call it from the
	// client's frame thread.
	AddChat(line string)
}
