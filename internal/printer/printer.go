// Package printer buffers chat output until the host's main loop can take it.
//
// Other goroutines may not touch the host's chat directly. They Print into
// the buffer and the tick hook calls Flush once per frame on the host's own
// thread.
package printer

import (
	"fmt"
	"sync"
)

// Sink receives flushed lines.
type Sink interface {
	AddChat(line string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(line string)

// AddChat implements Sink.
func (f SinkFunc) AddChat(line string) { f(line) }

// Printer is a line buffer in front of a Sink.
type Printer struct {
	mu      sync.Mutex
	pending []string
	sink    Sink
	flushes uint64
}

// New creates a printer writing to sink.
func New(sink Sink) *Printer {
	return &Printer{sink: sink}
}

// Print queues a line.
func (p *Printer) Print(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = append(p.pending, line)
}

// Printf queues a formatted line.
func (p *Printer) Printf(format string, args ...any) {
	p.Print(fmt.Sprintf(format, args...))
}

// Pending returns the number of queued lines.
func (p *Printer) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// Flush hands every queued line to the sink in order.
// It is cheap when nothing is queued.
func (p *Printer) Flush() {
	p.mu.Lock()
	lines := p.pending
	p.pending = nil
	p.flushes++
	p.mu.Unlock()

	if p.sink == nil {
		return
	}
	for _, line := range lines {
		p.sink.AddChat(line)
	}
}

// Flushes returns how many times Flush has been called.
func (p *Printer) Flushes() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.flushes
}
