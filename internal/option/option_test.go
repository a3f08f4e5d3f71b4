package option

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func TestParse_OverridesDefaults(t *testing.T) {
	opts, err := Parse([]byte("sounds:\n  workers: 2\nlogging:\n  file: logs/out.log\n"), "/etc/cs")
	require.NoError(t, err)

	assert.Equal(t, 2, opts.Sounds.Workers)
	assert.Equal(t, 64, opts.Sounds.QueueSize)
	assert.Equal(t, filepath.Join("/etc/cs", "sounds.yaml"), opts.Sounds.Catalog)
	assert.Equal(t, filepath.Join("/etc/cs", "logs/out.log"), opts.Logging.File)
	assert.Equal(t, "info", opts.Logging.Level)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("sounds: [1, 2"), "")
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = Parse([]byte("sounds:\n  workers: 0\n"), "")
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = Parse([]byte("sounds:\n  queue_size: -1\n"), "")
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestStore_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sounds:\n  catalog: /abs/sounds.yaml\n  queue_size: 8\n"), 0o644))

	s := NewStore(path)
	s.lookupFn = noEnv
	assert.False(t, s.Loaded())
	assert.Equal(t, Default(), s.Options())

	require.NoError(t, s.Load())
	assert.True(t, s.Loaded())
	assert.Equal(t, "/abs/sounds.yaml", s.Options().Sounds.Catalog)
	assert.Equal(t, 8, s.Options().Sounds.QueueSize)
	assert.Equal(t, path, s.Path())
}

func TestStore_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(filepath.Join(dir, "absent.yaml"))
	s.lookupFn = noEnv

	require.NoError(t, s.Load())
	assert.Equal(t, filepath.Join(dir, "sounds.yaml"), s.Options().Sounds.Catalog)
	assert.Equal(t, 4, s.Options().Sounds.Workers)
}

func TestStore_BadFileKeepsPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sounds:\n  workers: -3\n"), 0o644))

	s := NewStore(path)
	s.lookupFn = noEnv
	assert.ErrorIs(t, s.Load(), ErrInvalidOptions)
	assert.False(t, s.Loaded())
	assert.Equal(t, Default(), s.Options())
}

func TestStore_EnvOverrides(t *testing.T) {
	env := map[string]string{
		EnvCatalog:  "/env/sounds.yaml",
		EnvLogLevel: "debug",
	}
	s := NewStore("")
	s.lookupFn = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	require.NoError(t, s.Load())
	assert.Equal(t, "/env/sounds.yaml", s.Options().Sounds.Catalog)
	assert.Equal(t, "debug", s.Options().Logging.Level)
}
