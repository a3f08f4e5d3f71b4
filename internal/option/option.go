// Package option loads the chatsounds options file.
//
// The file is YAML:
//
//	sounds:
//	  catalog: sounds.yaml
//	  workers: 4
//	  queue_size: 64
//	logging:
//	  level: info
//	  file: chatsounds.log
//
// A missing file leaves the defaults in place. Relative paths are resolved
// against the directory holding the options file. CHATSOUNDS_CATALOG and
// CHATSOUNDS_LOG_LEVEL override the file.
package option

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvCatalog  = "CHATSOUNDS_CATALOG"
	EnvLogLevel = "CHATSOUNDS_LOG_LEVEL"
)

// ErrInvalidOptions is returned when the options file holds unusable values.
var ErrInvalidOptions = errors.New("invalid options")

// Options holds every chatsounds setting.
type Options struct {
	Sounds  SoundOptions   `yaml:"sounds"`
	Logging LoggingOptions `yaml:"logging"`
}

// SoundOptions configures sound lookup and dispatch.
type SoundOptions struct {
	Catalog   string `yaml:"catalog"`
	Workers   int    `yaml:"workers"`
	QueueSize int    `yaml:"queue_size"`
}

// LoggingOptions configures logging.
type LoggingOptions struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in options.
func Default() Options {
	return Options{
		Sounds: SoundOptions{
			Catalog:   "sounds.yaml",
			Workers:   4,
			QueueSize: 64,
		},
		Logging: LoggingOptions{
			Level: "info",
		},
	}
}

// Validate checks that numeric settings are usable.
func (o Options) Validate() error {
	if o.Sounds.Workers < 1 {
		return fmt.Errorf("%w: sounds.workers must be at least 1, got %d", ErrInvalidOptions, o.Sounds.Workers)
	}
	if o.Sounds.QueueSize < 1 {
		return fmt.Errorf("%w: sounds.queue_size must be at least 1, got %d", ErrInvalidOptions, o.Sounds.QueueSize)
	}
	return nil
}

// Parse decodes YAML over the defaults and resolves relative paths against
// baseDir.
func Parse(data []byte, baseDir string) (Options, error) {
	opts := Default()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	opts.Sounds.Catalog = resolve(baseDir, opts.Sounds.Catalog)
	opts.Logging.File = resolve(baseDir, opts.Logging.File)
	return opts, nil
}

func resolve(baseDir, path string) string {
	if path == "" || baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// Store holds the loaded options. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	path     string
	opts     Options
	loaded   bool
	lookupFn func(string) (string, bool)
}

// NewStore creates a store for the file at path. Until Load, Options
// returns the defaults.
func NewStore(path string) *Store {
	return &Store{
		path:     path,
		opts:     Default(),
		lookupFn: os.LookupEnv,
	}
}

// Path returns the options file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the options file and applies environment overrides.
func (s *Store) Load() error {
	opts := Default()
	opts.Sounds.Catalog = resolve(filepath.Dir(s.path), opts.Sounds.Catalog)

	if s.path != "" {
		data, err := os.ReadFile(s.path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return fmt.Errorf("read options: %w", err)
		default:
			parsed, err := Parse(data, filepath.Dir(s.path))
			if err != nil {
				return err
			}
			opts = parsed
		}
	}

	if v, ok := s.lookupFn(EnvCatalog); ok && v != "" {
		opts.Sounds.Catalog = v
	}
	if v, ok := s.lookupFn(EnvLogLevel); ok && v != "" {
		opts.Logging.Level = v
	}

	s.mu.Lock()
	s.opts = opts
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Loaded reports whether Load has succeeded.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Options returns the current options.
func (s *Store) Options() Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts
}
