package sound

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Dispatcher resolves triggers against the guarded engine on a worker pool.
type Dispatcher struct {
	// Configuration
	guard       *Guard
	queueSize   int
	workerCount int
	pick        func(n int) int
	logger      *zap.Logger

	// State
	mu      sync.Mutex // protects queue creation/destruction and sends
	queue   chan string
	running atomic.Bool
	wg      sync.WaitGroup

	// Stats
	submitted   atomic.Uint64
	processed   atomic.Uint64
	overflowed  atomic.Uint64
	stopped     atomic.Uint64
	played      atomic.Uint64
	unmatched   atomic.Uint64
	unavailable atomic.Uint64
	panicked    atomic.Uint64
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithQueueSize sets the trigger queue size.
func WithQueueSize(size int) DispatcherOption {
	return func(d *Dispatcher) {
		if size > 0 {
			d.queueSize = size
		}
	}
}

// WithWorkerCount sets the number of worker goroutines.
func WithWorkerCount(count int) DispatcherOption {
	return func(d *Dispatcher) {
		if count > 0 {
			d.workerCount = count
		}
	}
}

// WithPicker replaces the random choice among matches.
// pick receives the number of matches and returns an index in [0, n).
func WithPicker(pick func(n int) int) DispatcherOption {
	return func(d *Dispatcher) {
		if pick != nil {
			d.pick = pick
		}
	}
}

// WithLogger sets the dispatcher logger.
func WithLogger(l *zap.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDispatcher creates a stopped dispatcher serving guard.
func NewDispatcher(guard *Guard, opts ...DispatcherOption) (*Dispatcher, error) {
	if guard == nil {
		return nil, ErrNilGuard
	}
	d := &Dispatcher{
		guard:       guard,
		queueSize:   64,
		workerCount: 4,
		pick:        rand.Intn,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Start starts the worker pool.
func (d *Dispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running.Load() {
		return ErrAlreadyRunning
	}

	d.queue = make(chan string, d.queueSize)
	d.running.Store(true)

	for i := 0; i < d.workerCount; i++ {
		d.wg.Add(1)
		go d.worker(d.queue)
	}

	d.logger.Debug("dispatcher started",
		zap.Int("workers", d.workerCount),
		zap.Int("queue_size", d.queueSize))
	return nil
}

// Stop closes the queue and waits for the workers and any overflow
// goroutines to finish, or for ctx to end. Tasks already running are never
// interrupted.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.running.Load() {
		d.mu.Unlock()
		return ErrNotRunning
	}
	d.running.Store(false)
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Debug("dispatcher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Submit queues trigger for background resolution and returns immediately.
// When the queue is full the trigger gets a goroutine of its own, so no
// trigger is ever lost. It reports false only when the dispatcher is stopped.
func (d *Dispatcher) Submit(trigger string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running.Load() {
		return false
	}
	d.submitted.Add(1)

	select {
	case d.queue <- trigger:
	default:
		d.overflowed.Add(1)
		d.logger.Debug("queue full, processing on overflow goroutine", zap.String("trigger", trigger))
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.process(trigger)
		}()
	}
	return true
}

// IsRunning returns true if the dispatcher is running.
func (d *Dispatcher) IsRunning() bool {
	return d.running.Load()
}

func (d *Dispatcher) worker(queue <-chan string) {
	defer d.wg.Done()

	for trigger := range queue {
		d.process(trigger)
	}
}

// process resolves one trigger. Panics from the engine are logged and
// swallowed so one bad sound cannot take a worker down.
func (d *Dispatcher) process(trigger string) {
	d.processed.Add(1)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			d.panicked.Add(1)
			d.logger.Error("engine panicked",
				zap.String("trigger", trigger),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()

	ok := d.guard.With(func(e Engine) {
		if Normalize(trigger) == StopToken {
			e.StopAll()
			d.stopped.Add(1)
			return
		}

		matches := e.Find(strings.TrimSpace(trigger))
		if len(matches) == 0 {
			d.unmatched.Add(1)
			return
		}

		h := matches[d.pick(len(matches))]
		e.Play(h)
		d.played.Add(1)
		d.logger.Debug("playing",
			zap.String("name", h.Name),
			zap.Int("choices", len(matches)),
			zap.Duration("elapsed", time.Since(start)))
	})
	if !ok {
		d.unavailable.Add(1)
	}
}

// Stats returns dispatcher statistics.
func (d *Dispatcher) Stats() Stats {
	var depth int
	d.mu.Lock()
	if d.running.Load() {
		depth = len(d.queue)
	}
	d.mu.Unlock()

	return Stats{
		Submitted:   d.submitted.Load(),
		Processed:   d.processed.Load(),
		Overflowed:  d.overflowed.Load(),
		Stopped:     d.stopped.Load(),
		Played:      d.played.Load(),
		Unmatched:   d.unmatched.Load(),
		Unavailable: d.unavailable.Load(),
		Panicked:    d.panicked.Load(),
		QueueDepth:  depth,
	}
}

// Stats contains statistics for a dispatcher.
type Stats struct {
	// Submitted is the number of triggers accepted.
	Submitted uint64

	// Processed is the number of triggers resolved or being resolved.
	Processed uint64

	// Overflowed is the number of triggers that found the queue full and
	// were processed on a goroutine of their own.
	Overflowed uint64

	// Stopped is the number of stop requests forwarded to the engine.
	Stopped uint64

	// Played is the number of sounds started.
	Played uint64

	// Unmatched is the number of triggers with no matching sound.
	Unmatched uint64

	// Unavailable is the number of triggers processed while no engine was loaded.
	Unavailable uint64

	// Panicked is the number of triggers whose engine call panicked.
	Panicked uint64

	// QueueDepth is the current number of triggers waiting.
	QueueDepth int
}
