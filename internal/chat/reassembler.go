package chat

import (
	"strings"
	"sync"
)

// ContinuationPrefix starts every line the server split off a longer message.
const ContinuationPrefix = "> &f"

// Reassembler merges continuation lines with the message they belong to.
// It is safe for concurrent use; calls are applied in the order they
// acquire the lock.
type Reassembler struct {
	mu   sync.Mutex
	last *string
}

// NewReassembler creates a reassembler with no remembered line.
func NewReassembler() *Reassembler {
	return &Reassembler{}
}

// IsContinuation reports whether line was split off a previous message.
func IsContinuation(line string) bool {
	return strings.HasPrefix(line, ContinuationPrefix)
}

// Reassemble returns the logical message for line.
//
// A top-level line is remembered and returned unchanged. A continuation is
// appended to the remembered line with a single space, because the server
// trims the whitespace at the split point; this is a best guess, not a
// faithful reconstruction. A continuation with nothing remembered is
// returned without its prefix.
func (r *Reassembler) Reassemble(line string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !IsContinuation(line) {
		stored := strings.Clone(line)
		r.last = &stored
		return line
	}

	payload := line[len(ContinuationPrefix):]
	if r.last == nil {
		return payload
	}
	return *r.last + " " + payload
}

// Last returns the remembered top-level line.
func (r *Reassembler) Last() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.last == nil {
		return "", false
	}
	return *r.last, true
}

// Reset forgets the remembered line.
func (r *Reassembler) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = nil
}
