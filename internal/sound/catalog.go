package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Player performs the actual audio output for a Catalog.
type Player interface {
	Play(h Handle)
	StopAll()
}

// Catalog is an Engine over a fixed list of named sounds.
// Several sounds may share a name; Find returns all of them.
type Catalog struct {
	byName map[string][]Handle
	count  int
	player Player
}

// catalogFile is the on-disk manifest layout.
type catalogFile struct {
	Sounds []struct {
		Name string `yaml:"name"`
		File string `yaml:"file"`
	} `yaml:"sounds"`
}

// NewCatalog creates a catalog from handles.
func NewCatalog(handles []Handle, player Player) *Catalog {
	c := &Catalog{
		byName: make(map[string][]Handle),
		player: player,
	}
	for _, h := range handles {
		key := catalogKey(h.Name)
		if key == "" {
			continue
		}
		c.byName[key] = append(c.byName[key], h)
		c.count++
	}
	return c
}

// ParseCatalog reads a YAML manifest. Relative file paths are resolved
// against baseDir.
func ParseCatalog(data []byte, baseDir string, player Player) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	handles := make([]Handle, 0, len(file.Sounds))
	for i, s := range file.Sounds {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidCatalog, i)
		}
		src := s.File
		if src != "" && !filepath.IsAbs(src) && baseDir != "" {
			src = filepath.Join(baseDir, src)
		}
		handles = append(handles, Handle{Name: strings.TrimSpace(s.Name), Source: src})
	}
	return NewCatalog(handles, player), nil
}

// LoadCatalog reads the manifest at path.
func LoadCatalog(path string, player Player) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data, filepath.Dir(path), player)
}

// Len returns the number of sounds in the catalog.
func (c *Catalog) Len() int {
	return c.count
}

// Find implements Engine. Names match case-insensitively.
func (c *Catalog) Find(query string) []Handle {
	matches := c.byName[catalogKey(query)]
	if len(matches) == 0 {
		return nil
	}
	out := make([]Handle, len(matches))
	copy(out, matches)
	return out
}

// Play implements Engine.
func (c *Catalog) Play(h Handle) {
	if c.player != nil {
		c.player.Play(h)
	}
}

// StopAll implements Engine.
func (c *Catalog) StopAll() {
	if c.player != nil {
		c.player.StopAll()
	}
}

func catalogKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
