package command

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/chatsounds/internal/host"
	"github.com/dshills/chatsounds/internal/sound"
)

type lines []string

func (l *lines) Print(line string) { *l = append(*l, line) }

type countingPlayer struct{ stops int }

func (p *countingPlayer) Play(sound.Handle) {}
func (p *countingPlayer) StopAll()          { p.stops++ }

type fixedStats sound.Stats

func (f fixedStats) Stats() sound.Stats { return sound.Stats(f) }

func newTable(t *testing.T, handles []sound.Handle) (*Table, *host.Local, *lines, *countingPlayer) {
	t.Helper()
	l := host.NewLocal()
	out := &lines{}
	player := &countingPlayer{}
	guard := sound.NewGuard()
	guard.Load(sound.NewCatalog(handles, player))

	tbl := New(l, out, guard, fixedStats{Submitted: 3, Played: 2}, nil)
	require.NoError(t, tbl.Load())
	return tbl, l, out, player
}

func TestTable_Register(t *testing.T) {
	tbl, l, _, _ := newTable(t, nil)
	assert.Equal(t, []string{Name}, l.CommandNames())
	assert.ErrorIs(t, tbl.Load(), host.ErrCommandExists)

	tbl.Unload()
	assert.Empty(t, l.CommandNames())
}

func TestTable_Stop(t *testing.T) {
	_, l, out, player := newTable(t, nil)

	l.Submit("/client chatsounds stop")
	assert.Equal(t, 1, player.stops)
	assert.Equal(t, lines{"&eStopped all sounds"}, *out)
}

func TestTable_Search(t *testing.T) {
	var handles []sound.Handle
	for i := 0; i < maxListed+2; i++ {
		handles = append(handles, sound.Handle{Name: "oof", Source: fmt.Sprintf("oof/%d.ogg", i)})
	}
	tbl, _, out, _ := newTable(t, handles)

	require.NoError(t, tbl.Execute([]string{"search", "OOF"}))
	require.Len(t, *out, maxListed+2)
	assert.Equal(t, "&e10 sound(s) for &fOOF", (*out)[0])
	assert.Equal(t, "&7- oof/0.ogg", (*out)[1])
	assert.Equal(t, "&7... and 2 more", (*out)[maxListed+1])
}

func TestTable_Stats(t *testing.T) {
	tbl, _, out, _ := newTable(t, nil)

	require.NoError(t, tbl.Execute([]string{"stats"}))
	require.Len(t, *out, 1)
	assert.Contains(t, (*out)[0], "queued 3, played 2")
}

func TestTable_Errors(t *testing.T) {
	tbl, l, out, _ := newTable(t, nil)

	assert.Error(t, tbl.Execute([]string{"search"}))
	assert.Error(t, tbl.Execute([]string{"bogus"}))

	*out = nil
	l.Submit("/client chatsounds stop extra")
	require.Len(t, *out, 1)
	assert.Contains(t, (*out)[0], "&c")
}

func TestTable_NoEngine(t *testing.T) {
	out := &lines{}
	tbl := New(host.NewLocal(), out, sound.NewGuard(), nil, nil)

	assert.ErrorIs(t, tbl.Execute([]string{"stop"}), errNoEngine)
	assert.ErrorIs(t, tbl.Execute([]string{"search", "x"}), errNoEngine)
	assert.ErrorIs(t, tbl.Execute([]string{"stats"}), errNoEngine)
}

func TestTable_HelpGoesToPrinter(t *testing.T) {
	tbl, _, out, _ := newTable(t, nil)

	require.NoError(t, tbl.Execute(nil))
	assert.NotEmpty(t, *out)
	assert.Contains(t, fmt.Sprint(*out), "search")
}
