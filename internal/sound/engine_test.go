package sound

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeEngine records calls and detects overlapping access.
type fakeEngine struct {
	inFlight atomic.Int32
	overlap  atomic.Bool
	delay    time.Duration

	mu      sync.Mutex
	sets    map[string][]Handle
	finds   []string
	played  []Handle
	stops   int
	blockOn chan struct{}
	started chan struct{}
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{sets: make(map[string][]Handle)}
}

func (e *fakeEngine) enter() func() {
	if e.inFlight.Add(1) > 1 {
		e.overlap.Store(true)
	}
	if e.delay > 0 {
		time.Sleep(e.delay)
	}
	return func() { e.inFlight.Add(-1) }
}

func (e *fakeEngine) Find(query string) []Handle {
	defer e.enter()()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.finds = append(e.finds, query)
	return e.sets[query]
}

func (e *fakeEngine) Play(h Handle) {
	defer e.enter()()
	if e.started != nil {
		e.started <- struct{}{}
	}
	if e.blockOn != nil {
		<-e.blockOn
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.played = append(e.played, h)
}

func (e *fakeEngine) StopAll() {
	defer e.enter()()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stops++
}

func (e *fakeEngine) add(name string, n int) {
	for i := 0; i < n; i++ {
		e.sets[name] = append(e.sets[name], Handle{Name: name, Source: fmt.Sprintf("%s/%d.ogg", name, i)})
	}
}

func (e *fakeEngine) snapshot() (finds []string, played []Handle, stops int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.finds...), append([]Handle(nil), e.played...), e.stops
}

func TestGuard_Empty(t *testing.T) {
	g := NewGuard()
	assert.False(t, g.Loaded())

	called := false
	assert.False(t, g.With(func(Engine) { called = true }))
	assert.False(t, called)
	assert.Nil(t, g.Unload())
}

func TestGuard_LoadUnload(t *testing.T) {
	g := NewGuard()
	e := newFakeEngine()

	assert.Nil(t, g.Load(e))
	assert.True(t, g.Loaded())

	var got Engine
	assert.True(t, g.With(func(en Engine) { got = en }))
	assert.Same(t, e, got)

	assert.Same(t, e, g.Unload())
	assert.False(t, g.Loaded())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, StopToken, Normalize(" SH "))
	assert.Equal(t, "hello there", Normalize("\tHello There\n"))
	assert.True(t, IsStop("Sh"))
	assert.False(t, IsStop("shh"))
	assert.False(t, IsStop(strings.Repeat(" ", 3)))
}
