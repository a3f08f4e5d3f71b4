package plugin

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/chatsounds/internal/chat"
	"github.com/dshills/chatsounds/internal/chatui"
	"github.com/dshills/chatsounds/internal/command"
	"github.com/dshills/chatsounds/internal/detour"
	"github.com/dshills/chatsounds/internal/host"
	"github.com/dshills/chatsounds/internal/input"
	"github.com/dshills/chatsounds/internal/logging"
	"github.com/dshills/chatsounds/internal/printer"
	"github.com/dshills/chatsounds/internal/sound"
)

// DefaultShutdownTimeout bounds how long Deactivate waits for queued
// triggers to drain.
const DefaultShutdownTimeout = 2 * time.Second

// Loader is a collaborator loaded once during Activate.
type Loader interface {
	Load() error
}

// Unloader is implemented by loaders that undo their Load on Deactivate.
type Unloader interface {
	Unload()
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func() error

// Load implements Loader.
func (f LoaderFunc) Load() error { return f() }

// Config wires a Plugin to its host and collaborators. Only Host is required.
type Config struct {
	// Host is the client the plugin runs inside.
	Host host.Host

	// Printer buffers output until the next tick. Defaults to a printer
	// writing to Host.
	Printer *printer.Printer

	// ChatUI receives key events. Defaults to a chat box with no submit
	// handler.
	ChatUI input.ChatUI

	// Commands registers client commands. Defaults to the chatsounds
	// command table.
	Commands Loader

	// Options loads settings. Defaults to nothing.
	Options Loader

	// Engine builds the sound engine once options are loaded. When nil or
	// failing, triggers are silently ignored.
	Engine func() (sound.Engine, error)

	// DispatcherOptions are read once options are loaded.
	DispatcherOptions func() []sound.DispatcherOption

	// ShutdownTimeout bounds the dispatcher drain in Deactivate.
	ShutdownTimeout time.Duration

	// Logger defaults to a no-op logger.
	Logger *zap.Logger

	// Abort is called on unrecoverable host inconsistencies. Defaults to
	// logging at fatal level, which exits the process.
	Abort func(error)
}

// Plugin is the chatsounds lifecycle manager.
type Plugin struct {
	once sync.Once

	mu         sync.Mutex // guards registered and subs
	registered bool
	subs       []host.Subscription
	activated  atomic.Bool

	host        host.Host
	tick        *detour.Hook[host.TickFunc]
	reassembler *chat.Reassembler
	relay       *input.Relay
	printer     *printer.Printer
	guard       *sound.Guard
	dispatcher  atomic.Pointer[sound.Dispatcher]

	commands        Loader
	options         Loader
	engine          func() (sound.Engine, error)
	dispatchOpts    func() []sound.DispatcherOption
	shutdownTimeout time.Duration

	logger *zap.Logger
	abort  func(error)
}

// New creates an inactive plugin.
func New(cfg Config) (*Plugin, error) {
	if cfg.Host == nil {
		return nil, ErrNilHost
	}

	logger := logging.OrNop(cfg.Logger).Named("plugin")

	p := &Plugin{
		host:            cfg.Host,
		tick:            detour.New[host.TickFunc]("scheduled tick"),
		reassembler:     chat.NewReassembler(),
		printer:         cfg.Printer,
		guard:           sound.NewGuard(),
		commands:        cfg.Commands,
		options:         cfg.Options,
		engine:          cfg.Engine,
		dispatchOpts:    cfg.DispatcherOptions,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
		abort:           cfg.Abort,
	}

	if p.printer == nil {
		p.printer = printer.New(cfg.Host)
	}
	ui := cfg.ChatUI
	if ui == nil {
		ui = chatui.New(nil)
	}
	p.relay = input.NewRelay(ui, p.printer)

	if p.commands == nil {
		p.commands = command.New(cfg.Host.Commands(), p.printer, p.guard, p, cfg.Logger)
	}
	if p.options == nil {
		p.options = LoaderFunc(func() error { return nil })
	}
	if p.shutdownTimeout <= 0 {
		p.shutdownTimeout = DefaultShutdownTimeout
	}
	if p.abort == nil {
		p.abort = func(err error) {
			logger.Fatal("host state is inconsistent, aborting", zap.Error(err))
		}
	}
	return p, nil
}

// Activate installs the plugin. Only the first call does anything.
func (p *Plugin) Activate() {
	p.once.Do(p.activate)
}

func (p *Plugin) activate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.activated.Store(true)

	p.subs = append(p.subs,
		p.host.SubscribeChat(p.onChat),
		p.host.SubscribeKeyDown(p.onKeyDown),
		p.host.SubscribeKeyPress(p.onKeyPress),
	)

	if err := p.commands.Load(); err != nil {
		p.logger.Warn("commands not loaded", zap.Error(err))
	}
	if err := p.options.Load(); err != nil {
		p.logger.Warn("options not loaded, using defaults", zap.Error(err))
	}

	p.registered = true

	if slot := p.host.TickSlot(); slot != nil && slot.Load() != nil {
		if err := p.tick.Install(slot, p.onTick); err != nil {
			p.abort(err)
			return
		}
		if err := p.tick.Enable(); err != nil {
			p.abort(err)
			return
		}
	} else {
		p.logger.Warn("host has no scheduled tick, output will not be flushed")
	}

	p.loadSounds()
	p.logger.Info("activated")
}

// Deactivate removes the plugin. It is safe to call at any time and any
// number of times.
func (p *Plugin) Deactivate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.registered {
		for _, sub := range p.subs {
			sub.Unsubscribe()
		}
		p.subs = nil
		if u, ok := p.commands.(Unloader); ok {
			u.Unload()
		}
	}

	if p.tick.State().IsInstalled() {
		if err := p.tick.Disable(); err != nil {
			p.abort(err)
			return
		}
	}

	wasRegistered := p.registered
	p.registered = false
	p.unloadSounds()

	if wasRegistered {
		p.logger.Info("deactivated")
	}
}

// State returns the plugin lifecycle state.
func (p *Plugin) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case p.registered:
		return StateActive
	case p.activated.Load():
		return StateDeactivated
	default:
		return StateInactive
	}
}

// Registered reports whether event handlers are currently installed.
func (p *Plugin) Registered() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.registered
}

// Printer returns the plugin's output buffer.
func (p *Plugin) Printer() *printer.Printer {
	return p.printer
}

// Sounds returns the guard holding the sound engine.
func (p *Plugin) Sounds() *sound.Guard {
	return p.guard
}

// Stats returns dispatcher counters. They are zero while no dispatcher runs.
func (p *Plugin) Stats() sound.Stats {
	if d := p.dispatcher.Load(); d != nil {
		return d.Stats()
	}
	return sound.Stats{}
}

func (p *Plugin) loadSounds() {
	var opts []sound.DispatcherOption
	if p.dispatchOpts != nil {
		opts = p.dispatchOpts()
	}
	opts = append(opts, sound.WithLogger(p.logger.Named("dispatch")))

	d, err := sound.NewDispatcher(p.guard, opts...)
	if err != nil {
		p.logger.Error("dispatcher not created", zap.Error(err))
		return
	}
	if err := d.Start(); err != nil {
		p.logger.Error("dispatcher not started", zap.Error(err))
		return
	}
	p.dispatcher.Store(d)

	if p.engine == nil {
		return
	}
	engine, err := p.engine()
	if err != nil {
		p.logger.Warn("sound engine unavailable", zap.Error(err))
		return
	}
	if engine != nil {
		p.guard.Load(engine)
	}
}

// unloadSounds empties the guard before stopping the dispatcher, so queued
// triggers drain as no-ops.
func (p *Plugin) unloadSounds() {
	p.guard.Unload()

	d := p.dispatcher.Swap(nil)
	if d == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), p.shutdownTimeout)
	defer cancel()
	if err := d.Stop(ctx); err != nil {
		p.logger.Debug("dispatcher did not drain", zap.Error(err))
	}
}
