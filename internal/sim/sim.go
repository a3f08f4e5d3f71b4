package sim

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/dshills/chatsounds/internal/host"
	"github.com/dshills/chatsounds/internal/logging"
)

// ChatBox is the chat input state drawn on the bottom row.
type ChatBox interface {
	IsOpen() bool
	Input() string
}

// Option configures a Sim.
type Option func(*Sim)

// WithTickRate sets how often the client's scheduled task runs.
func WithTickRate(d time.Duration) Option {
	return func(s *Sim) {
		if d > 0 {
			s.tickRate = d
		}
	}
}

// WithScript replays lines as server messages.
func WithScript(lines []ScriptLine) Option {
	return func(s *Sim) {
		s.script = append([]ScriptLine(nil), lines...)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Sim) {
		s.logger = logging.OrNop(logger).Named("sim")
	}
}

// Sim drives a host.Local from a terminal screen.
type Sim struct {
	screen tcell.Screen
	client *host.Local
	chat   ChatBox

	tickRate time.Duration
	script   []ScriptLine
	next     int
	due      time.Time

	logger *zap.Logger
}

// New creates a simulator. The screen is initialized by Init and released
// by Close.
func New(screen tcell.Screen, client *host.Local, chat ChatBox, opts ...Option) (*Sim, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	s := &Sim{
		screen:   screen,
		client:   client,
		chat:     chat,
		tickRate: host.TickInterval,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewTerminal creates a simulator on the process terminal.
func NewTerminal(client *host.Local, chat ChatBox, opts ...Option) (*Sim, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return New(screen, client, chat, opts...)
}

// Init prepares the screen.
func (s *Sim) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.screen.EnablePaste()
	s.screen.Clear()
	return nil
}

// Close releases the screen.
func (s *Sim) Close() {
	s.screen.Fini()
}

// Run processes terminal events and ticks until ctx is done or the user
// presses Ctrl-C. All host events are raised from the calling goroutine.
func (s *Sim) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	polled := make(chan struct{})
	go s.poll(events, quit, polled)
	defer func() {
		close(quit)
		// Posting wakes PollEvent so the poller can see quit.
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-polled
	}()

	ticker := time.NewTicker(s.tickRate)
	defer ticker.Stop()

	last := time.Now()
	s.due = last
	if s.next < len(s.script) {
		s.due = last.Add(s.script[s.next].After)
	}
	s.draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if s.handle(ev) {
				return nil
			}
			s.draw()
		case now := <-ticker.C:
			s.client.Tick(now.Sub(last))
			last = now
			s.replay(now)
			s.draw()
		}
	}
}

func (s *Sim) poll(events chan<- tcell.Event, quit <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-quit:
			return
		default:
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// handle raises a terminal event on the client and reports whether the
// simulator should stop.
func (s *Sim) handle(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if isInterrupt(e) {
			return true
		}
		code, ch, ok := KeyFromEvent(e)
		if ok {
			s.client.RaiseKeyDown(int(code), false)
		}
		if ch != 0 {
			s.client.RaiseKeyPress(int(ch))
		}
		if !ok && ch == 0 {
			s.logger.Debug("unmapped key", zap.String("key", e.Name()))
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return false
}

func isInterrupt(e *tcell.EventKey) bool {
	if e.Key() == tcell.KeyCtrlC {
		return true
	}
	return e.Key() == tcell.KeyRune && e.Modifiers()&tcell.ModCtrl != 0 && (e.Rune() == 'c' || e.Rune() == 'C')
}

// replay delivers every script line that is due.
func (s *Sim) replay(now time.Time) {
	for s.next < len(s.script) && !now.Before(s.due) {
		line := s.script[s.next]
		s.logger.Debug("server message", zap.String("text", line.Text))
		s.client.ReceiveServerMessage(line.Text)
		s.next++
		if s.next < len(s.script) {
			s.due = s.due.Add(s.script[s.next].After)
		}
	}
}

// Pending returns the number of script lines not yet replayed.
func (s *Sim) Pending() int {
	return len(s.script) - s.next
}

func (s *Sim) draw() {
	s.screen.Clear()
	width, height := s.screen.Size()
	if width <= 0 || height < 2 {
		s.screen.Show()
		return
	}

	title := "&echatsounds-sim &7frame " + strconv.FormatUint(s.client.Frame(), 10) + " &8(Ctrl-C to quit)"
	drawText(s.screen, 0, 0, width, title)

	rows := height - 2
	log := s.client.ChatLog()
	if len(log) > rows {
		log = log[len(log)-rows:]
	}
	for i, line := range log {
		drawText(s.screen, 0, 1+i, width, line)
	}

	bottom := height - 1
	if s.chat != nil && s.chat.IsOpen() {
		n := drawText(s.screen, 0, bottom, width, "&f> "+s.chat.Input())
		s.screen.ShowCursor(min(n, width-1), bottom)
	} else {
		drawText(s.screen, 0, bottom, width, "&8press T to chat")
		s.screen.HideCursor()
	}
	s.screen.Show()
}

// drawText writes text with color codes at row y and returns the column
// after the last cell written.
func drawText(screen tcell.Screen, x, y, width int, text string) int {
	style := tcell.StyleDefault.Foreground(palette[15])
	runes := []rune(text)
	for i := 0; i < len(runes) && x < width; i++ {
		if runes[i] == ColorCode && i+1 < len(runes) {
			if idx, ok := colorIndex(runes[i+1]); ok {
				style = style.Foreground(palette[idx])
				i++
				continue
			}
		}
		screen.SetContent(x, y, runes[i], nil, style)
		x++
	}
	return x
}
