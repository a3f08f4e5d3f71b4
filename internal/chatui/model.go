// Package chatui holds the state of the in-game chat input box.
package chatui

import (
	"sync"
	"unicode"

	"github.com/dshills/chatsounds/internal/input/key"
)

// SubmitFunc receives a line the user entered.
type SubmitFunc func(text string)

// Model is the chat input box. All methods are safe for concurrent use.
type Model struct {
	mu       sync.Mutex
	open     bool
	input    []rune
	suppress bool // swallow the press that follows the opening key
	submit   SubmitFunc
}

// New creates a closed chat box that hands entered lines to submit.
func New(submit SubmitFunc) *Model {
	return &Model{submit: submit}
}

// IsOpen reports whether the chat box is accepting input.
func (m *Model) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Input returns the text typed so far.
func (m *Model) Input() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.input)
}

// HandleKeyDown reacts to a key being pushed.
func (m *Model) HandleKeyDown(k key.Code, repeat bool) {
	var submitted string

	m.mu.Lock()
	if !m.open {
		if repeat {
			m.mu.Unlock()
			return
		}
		switch k {
		case key.T, key.Enter:
			m.open = true
			m.suppress = k == key.T
		case key.Slash:
			m.open = true
			m.input = append(m.input[:0], '/')
			m.suppress = true
		}
		m.mu.Unlock()
		return
	}

	switch k {
	case key.Escape:
		m.close()
	case key.Enter, key.KPEnter:
		submitted = string(m.input)
		m.close()
	case key.Backspace:
		if n := len(m.input); n > 0 {
			m.input = m.input[:n-1]
		}
	}
	submit := m.submit
	m.mu.Unlock()

	if submitted != "" && submit != nil {
		submit(submitted)
	}
}

// HandleKeyPress appends a typed character while the box is open.
func (m *Model) HandleKeyPress(r rune) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.open {
		return
	}
	if m.suppress {
		m.suppress = false
		return
	}
	if unicode.IsPrint(r) {
		m.input = append(m.input, r)
	}
}

func (m *Model) close() {
	m.open = false
	m.suppress = false
	m.input = m.input[:0]
}
