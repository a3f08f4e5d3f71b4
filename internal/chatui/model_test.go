package chatui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/chatsounds/internal/input/key"
)

func typeText(m *Model, s string) {
	for _, r := range s {
		m.HandleKeyPress(r)
	}
}

func TestModel_OpenTypeSubmit(t *testing.T) {
	var got []string
	m := New(func(text string) { got = append(got, text) })

	typeText(m, "ignored")
	assert.False(t, m.IsOpen())
	assert.Empty(t, m.Input())

	m.HandleKeyDown(key.T, false)
	assert.True(t, m.IsOpen())
	m.HandleKeyPress('t')
	assert.Empty(t, m.Input(), "opening key press is swallowed")

	typeText(m, "helloo")
	m.HandleKeyDown(key.Backspace, false)
	assert.Equal(t, "hello", m.Input())

	m.HandleKeyDown(key.Enter, false)
	assert.False(t, m.IsOpen())
	assert.Equal(t, []string{"hello"}, got)
	assert.Empty(t, m.Input())
}

func TestModel_SlashOpensCommand(t *testing.T) {
	var got string
	m := New(func(text string) { got = text })

	m.HandleKeyDown(key.Slash, false)
	m.HandleKeyPress('/')
	typeText(m, "client chatsounds stop")
	m.HandleKeyDown(key.KPEnter, false)

	assert.Equal(t, "/client chatsounds stop", got)
}

func TestModel_EscapeDiscards(t *testing.T) {
	called := false
	m := New(func(string) { called = true })

	m.HandleKeyDown(key.Enter, false)
	typeText(m, "draft\x07")
	assert.Equal(t, "draft", m.Input(), "non-printable runes are ignored")

	m.HandleKeyDown(key.Escape, false)
	assert.False(t, m.IsOpen())
	assert.False(t, called)
}

func TestModel_EmptyEnterDoesNotSubmit(t *testing.T) {
	called := false
	m := New(func(string) { called = true })

	m.HandleKeyDown(key.Enter, false)
	m.HandleKeyDown(key.Enter, false)
	assert.False(t, called)
	assert.False(t, m.IsOpen())
}

func TestModel_RepeatDoesNotOpen(t *testing.T) {
	m := New(nil)
	m.HandleKeyDown(key.T, true)
	assert.False(t, m.IsOpen())

	m.HandleKeyDown(key.T, false)
	m.HandleKeyPress('t')
	typeText(m, "ab")
	m.HandleKeyDown(key.Backspace, true)
	m.HandleKeyDown(key.Backspace, true)
	m.HandleKeyDown(key.Backspace, true)
	assert.Empty(t, m.Input())
	m.HandleKeyDown(key.Enter, false)
}
