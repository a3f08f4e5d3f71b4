package sound

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPlayer struct {
	mu     sync.Mutex
	played []Handle
	stops  int
}

func (p *recordingPlayer) Play(h Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played = append(p.played, h)
}

func (p *recordingPlayer) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stops++
}

const manifest = `
sounds:
  - name: Hello There
    file: hello/1.ogg
  - name: hello there
    file: hello/2.ogg
  - name: oof
    file: /abs/oof.ogg
`

func TestParseCatalog(t *testing.T) {
	p := &recordingPlayer{}
	c, err := ParseCatalog([]byte(manifest), "/sounds", p)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	got := c.Find("HELLO THERE")
	require.Len(t, got, 2)
	assert.Equal(t, filepath.Join("/sounds", "hello/1.ogg"), got[0].Source)
	assert.Equal(t, "/abs/oof.ogg", c.Find(" oof ")[0].Source)
	assert.Empty(t, c.Find("missing"))

	c.Play(got[1])
	c.StopAll()
	assert.Equal(t, []Handle{got[1]}, p.played)
	assert.Equal(t, 1, p.stops)
}

func TestParseCatalog_Invalid(t *testing.T) {
	_, err := ParseCatalog([]byte("sounds: ["), "", nil)
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	_, err = ParseCatalog([]byte("sounds:\n  - file: x.ogg\n"), "", nil)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sounds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	c, err := LoadCatalog(path, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hello/2.ogg"), c.Find("hello there")[1].Source)

	c.Play(Handle{Name: "noop"})
	c.StopAll()

	_, err = LoadCatalog(filepath.Join(dir, "missing.yaml"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCatalog_FindReturnsCopy(t *testing.T) {
	c := NewCatalog([]Handle{{Name: "a", Source: "1"}, {Name: " ", Source: "skip"}}, nil)
	assert.Equal(t, 1, c.Len())

	got := c.Find("a")
	got[0].Source = "mutated"
	assert.Equal(t, "1", c.Find("a")[0].Source)
}
