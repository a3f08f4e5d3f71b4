package host

import "sync"

// registry keeps handlers in registration order.
type registry[H any] struct {
	mu      sync.RWMutex
	nextID  uint64
	entries []entry[H]
}

type entry[H any] struct {
	id      uint64
	handler H
}

// add registers h and returns a subscription that removes it.
func (r *registry[H]) add(h H) Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.entries = append(r.entries, entry[H]{id: id, handler: h})
	return &subscription{cancel: func() { r.remove(id) }}
}

func (r *registry[H]) remove(id uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot returns a copy so handlers can run without holding the lock.
func (r *registry[H]) snapshot() []H {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.entries) == 0 {
		return nil
	}
	out := make([]H, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.handler
	}
	return out
}

func (r *registry[H]) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

type subscription struct {
	once   sync.Once
	cancel func()
}

func (s *subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}
