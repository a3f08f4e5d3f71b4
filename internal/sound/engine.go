package sound

import "sync"

// Handle identifies one playable sound.
type Handle struct {
	// Name is the phrase that triggers the sound.
	Name string

	// Source locates the audio data (usually a file path).
	Source string
}

// Engine finds and plays sounds. Implementations need not be safe for
// concurrent use; Guard serializes access.
type Engine interface {
	// Find returns every sound matching query. The result may be empty.
	Find(query string) []Handle

	// Play starts playback of h.
	Play(h Handle)

	// StopAll halts every sound currently playing.
	StopAll()
}

// Guard holds an optional Engine behind a mutex.
type Guard struct {
	mu     sync.Mutex
	engine Engine
}

// NewGuard creates an empty guard.
func NewGuard() *Guard {
	return &Guard{}
}

// Load installs e and returns the engine it replaced, if any.
func (g *Guard) Load(e Engine) Engine {
	g.mu.Lock()
	defer g.mu.Unlock()
	prev := g.engine
	g.engine = e
	return prev
}

// Unload empties the guard and returns the engine it held, if any.
// Callers already inside With finish first.
func (g *Guard) Unload() Engine {
	return g.Load(nil)
}

// Loaded reports whether the guard currently holds an engine.
func (g *Guard) Loaded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.engine != nil
}

// With runs fn with exclusive access to the engine.
// It returns false without calling fn when the guard is empty.
func (g *Guard) With(fn func(Engine)) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.engine == nil {
		return false
	}
	fn(g.engine)
	return true
}
