package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/chatsounds/internal/input/key"
)

type keyDown struct {
	k      key.Code
	repeat bool
}

type fakeUI struct {
	open    bool
	downs   []keyDown
	presses []rune
}

func (f *fakeUI) HandleKeyDown(k key.Code, repeat bool) {
	f.downs = append(f.downs, keyDown{k, repeat})
}
func (f *fakeUI) HandleKeyPress(r rune) { f.presses = append(f.presses, r) }
func (f *fakeUI) IsOpen() bool          { return f.open }

type lines []string

func (l *lines) Print(line string) { *l = append(*l, line) }

func TestRelay_ForwardsKeys(t *testing.T) {
	ui := &fakeUI{}
	var out lines
	r := NewRelay(ui, &out)

	r.KeyDown(key.A, false)
	r.KeyDown(key.A, true)
	r.KeyPress('a')

	assert.Equal(t, []keyDown{{key.A, false}, {key.A, true}}, ui.downs)
	assert.Equal(t, []rune{'a'}, ui.presses)
	assert.Empty(t, out)
}

func TestRelay_CompletionNotice(t *testing.T) {
	ui := &fakeUI{}
	var out lines
	r := NewRelay(ui, &out)

	r.KeyDown(key.Tab, false)
	assert.Empty(t, out, "closed chat gets no notice")

	ui.open = true
	r.KeyDown(key.Tab, false)
	r.KeyDown(key.Enter, false)
	assert.Equal(t, lines{CompletionNotice}, out)
	assert.Len(t, ui.downs, 3, "tab is still forwarded")
}

func TestRelay_NilNotifier(t *testing.T) {
	ui := &fakeUI{open: true}
	r := NewRelay(ui, nil)
	r.KeyDown(key.Tab, false)
	assert.Len(t, ui.downs, 1)
}
