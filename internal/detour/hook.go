package detour

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
)

// Slot is a host-owned cell holding a function pointer.
// Identity is by pointer: two loads return the same *F until someone stores.
type Slot[F any] interface {
	Load() *F
	Store(fn *F)
}

// AtomicSlot is a Slot backed by an atomic pointer.
// The zero value is an empty slot.
type AtomicSlot[F any] struct {
	p atomic.Pointer[F]
}

// NewAtomicSlot returns a slot initially holding fn.
func NewAtomicSlot[F any](fn F) *AtomicSlot[F] {
	s := &AtomicSlot[F]{}
	s.p.Store(&fn)
	return s
}

// Load implements Slot.
func (s *AtomicSlot[F]) Load() *F { return s.p.Load() }

// Store implements Slot.
func (s *AtomicSlot[F]) Store(fn *F) { s.p.Store(fn) }

// Hook redirects one Slot to a replacement function.
type Hook[F any] struct {
	mu sync.Mutex

	name        string
	state       State
	slot        Slot[F]
	original    *F
	replacement *F

	enables atomic.Uint64
}

// New creates an uninstalled hook. The name is used in error messages.
func New[F any](name string) *Hook[F] {
	return &Hook[F]{name: name}
}

// Name returns the hook name.
func (h *Hook[F]) Name() string {
	return h.name
}

// State returns the current hook state.
func (h *Hook[F]) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Enables returns how many times the replacement has been made live.
func (h *Hook[F]) Enables() uint64 {
	return h.enables.Load()
}

// Install captures the function currently in slot and prepares replacement.
// The slot is not modified until Enable.
func (h *Hook[F]) Install(slot Slot[F], replacement F) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != StateUninstalled {
		return h.wrap("install", ErrAlreadyInstalled)
	}
	if slot == nil {
		return h.wrap("install", ErrNilTarget)
	}
	original := slot.Load()
	if original == nil {
		return h.wrap("install", ErrNilTarget)
	}
	if isNilFunc(replacement) {
		return h.wrap("install", ErrNilReplacement)
	}

	h.slot = slot
	h.original = original
	h.replacement = &replacement
	h.state = StateInstalled
	return nil
}

// Enable makes the replacement live. Enabling an enabled hook does nothing.
func (h *Hook[F]) Enable() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch h.state {
	case StateUninstalled:
		return h.wrap("enable", ErrNotInstalled)
	case StateEnabled:
		return nil
	}

	if h.slot.Load() != h.original {
		return h.wrap("enable", ErrTargetMismatch)
	}
	h.slot.Store(h.replacement)
	h.state = StateEnabled
	h.enables.Add(1)
	return nil
}

// Disable restores the original. Disabling a hook that is not live does nothing.
func (h *Hook[F]) Disable() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch h.state {
	case StateUninstalled:
		return h.wrap("disable", ErrNotInstalled)
	case StateInstalled, StateDisabled:
		return nil
	}

	if h.slot.Load() != h.replacement {
		return h.wrap("disable", ErrTargetMismatch)
	}
	h.slot.Store(h.original)
	h.state = StateDisabled
	return nil
}

// Original returns the captured original function for pass-through calls.
// The second result is false before Install.
func (h *Hook[F]) Original() (F, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var zero F
	if h.original == nil {
		return zero, false
	}
	return *h.original, true
}

func (h *Hook[F]) wrap(op string, err error) error {
	return fmt.Errorf("%s %s: %w", op, h.name, err)
}

// isNilFunc reports whether fn is a nil func value.
func isNilFunc[F any](fn F) bool {
	v := reflect.ValueOf(fn)
	if !v.IsValid() {
		return true
	}
	return v.Kind() == reflect.Func && v.IsNil()
}
