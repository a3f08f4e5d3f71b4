package host

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/chatsounds/internal/detour"
)

// TickInterval is how often Local's scheduled task is meant to run.
const TickInterval = 50 * time.Millisecond

// DefaultChatLimit is the number of chat lines Local keeps.
const DefaultChatLimit = 200

// Message types Local delivers. They match the client's numbering.
const (
	msgNormal = 0
	msgStatus = 1
)

// Local is an in-process game client.
type Local struct {
	chat     registry[ChatHandler]
	keyDown  registry[KeyDownHandler]
	keyPress registry[KeyPressHandler]

	tick  *detour.AtomicSlot[TickFunc]
	task  ScheduledTask
	tasks sync.Mutex // serializes Tick

	cmdMu    sync.RWMutex
	commands map[string]command

	logMu     sync.Mutex
	chatLog   []string
	chatLimit int

	player string
	logger *zap.Logger
}

type command struct {
	help string
	fn   CommandFunc
}

// LocalOption configures a Local.
type LocalOption func(*Local)

// WithPlayerName sets the name shown on lines the local player sends.
func WithPlayerName(name string) LocalOption {
	return func(l *Local) {
		if name != "" {
			l.player = name
		}
	}
}

// WithChatLimit sets how many chat lines are kept.
func WithChatLimit(n int) LocalOption {
	return func(l *Local) {
		if n > 0 {
			l.chatLimit = n
		}
	}
}

// WithLogger sets the host logger.
func WithLogger(logger *zap.Logger) LocalOption {
	return func(l *Local) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLocal creates a client whose scheduled tick only advances its frame
// counter.
func NewLocal(opts ...LocalOption) *Local {
	l := &Local{
		task:      ScheduledTask{Interval: TickInterval},
		commands:  make(map[string]command),
		chatLimit: DefaultChatLimit,
		player:    "Player",
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.tick = detour.NewAtomicSlot[TickFunc](l.serverTick)
	return l
}

// SubscribeChat implements Events.
func (l *Local) SubscribeChat(h ChatHandler) Subscription { return l.chat.add(h) }

// SubscribeKeyDown implements Events.
func (l *Local) SubscribeKeyDown(h KeyDownHandler) Subscription { return l.keyDown.add(h) }

// SubscribeKeyPress implements Events.
func (l *Local) SubscribeKeyPress(h KeyPressHandler) Subscription { return l.keyPress.add(h) }

// Subscribers returns the number of chat, key-down and key-press handlers.
func (l *Local) Subscribers() (chat, keyDown, keyPress int) {
	return l.chat.len(), l.keyDown.len(), l.keyPress.len()
}

// TickSlot implements Host.
func (l *Local) TickSlot() detour.Slot[TickFunc] { return l.tick }

// Commands implements Host.
func (l *Local) Commands() CommandRegistrar { return l }

// Register implements CommandRegistrar. Names are case-insensitive.
func (l *Local) Register(name, help string, fn CommandFunc) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || fn == nil {
		return ErrInvalidCommand
	}

	l.cmdMu.Lock()
	defer l.cmdMu.Unlock()

	if _, exists := l.commands[name]; exists {
		return fmt.Errorf("%w: %s", ErrCommandExists, name)
	}
	l.commands[name] = command{help: help, fn: fn}
	l.logger.Debug("command registered", zap.String("name", name))
	return nil
}

// Unregister implements CommandRegistrar.
func (l *Local) Unregister(name string) {
	l.cmdMu.Lock()
	defer l.cmdMu.Unlock()
	delete(l.commands, strings.ToLower(strings.TrimSpace(name)))
}

// CommandNames returns the registered command names, sorted.
func (l *Local) CommandNames() []string {
	l.cmdMu.RLock()
	defer l.cmdMu.RUnlock()

	names := make([]string, 0, len(l.commands))
	for name := range l.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunCommand runs a registered command. It reports false when no command
// has that name.
func (l *Local) RunCommand(name string, args []string) bool {
	l.cmdMu.RLock()
	cmd, ok := l.commands[strings.ToLower(name)]
	l.cmdMu.RUnlock()

	if !ok {
		return false
	}
	cmd.fn(args)
	return true
}

// AddChat implements Host.
func (l *Local) AddChat(line string) {
	l.logMu.Lock()
	defer l.logMu.Unlock()

	l.chatLog = append(l.chatLog, line)
	if over := len(l.chatLog) - l.chatLimit; over > 0 {
		l.chatLog = append(l.chatLog[:0:0], l.chatLog[over:]...)
	}
}

// ChatLog returns a copy of the kept chat lines, oldest first.
func (l *Local) ChatLog() []string {
	l.logMu.Lock()
	defer l.logMu.Unlock()
	return append([]string(nil), l.chatLog...)
}

// RaiseChat delivers one raw chat line to every chat subscriber. Normal
// lines are also added to the chat log.
func (l *Local) RaiseChat(text string, msgType int) {
	if msgType == msgNormal {
		l.AddChat(text)
	}
	for _, h := range l.chat.snapshot() {
		h(text, msgType)
	}
}

// RaiseStatus delivers a status-line message.
func (l *Local) RaiseStatus(text string) {
	l.RaiseChat(text, msgStatus)
}

// ReceiveServerMessage wraps msg at LineWidth and delivers each resulting
// line as normal chat, as the server would.
func (l *Local) ReceiveServerMessage(msg string) {
	for _, line := range SplitServerLine(msg, LineWidth) {
		l.RaiseChat(line, msgNormal)
	}
}

// RaiseKeyDown delivers a raw key-down event.
func (l *Local) RaiseKeyDown(key int, repeat bool) {
	for _, h := range l.keyDown.snapshot() {
		h(key, repeat)
	}
}

// RaiseKeyPress delivers a raw typed character.
func (l *Local) RaiseKeyPress(ch int) {
	for _, h := range l.keyPress.snapshot() {
		h(ch)
	}
}

// Submit handles a line the local player entered. "/client <name> args..."
// runs a client command; anything else is sent to the server, which echoes
// it back as the player's chat.
func (l *Local) Submit(text string) {
	if rest, ok := strings.CutPrefix(text, "/client"); ok {
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			l.AddChat("&eAvailable commands: &f" + strings.Join(l.CommandNames(), ", "))
			return
		}
		if !l.RunCommand(fields[0], fields[1:]) {
			l.logger.Debug("unknown command", zap.String("name", fields[0]))
			l.AddChat("&cUnknown command: &f" + fields[0])
		}
		return
	}
	l.ReceiveServerMessage(fmt.Sprintf("&e%s: &f%s", l.player, text))
}

// Tick runs the scheduled task through whatever function the tick slot
// currently holds.
func (l *Local) Tick(elapsed time.Duration) {
	l.tasks.Lock()
	defer l.tasks.Unlock()

	fn := l.tick.Load()
	if fn == nil {
		return
	}
	l.task.Accumulator += elapsed
	(*fn)(&l.task)
}

// Frame returns the number of ticks the client's own task has run.
func (l *Local) Frame() uint64 {
	l.tasks.Lock()
	defer l.tasks.Unlock()
	return l.task.Frame
}

func (l *Local) serverTick(task *ScheduledTask) {
	task.Frame++
	task.Accumulator = 0
}
