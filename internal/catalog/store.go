// Package catalog holds the editable reference data used when pricing a
// trip: hotels per city, airlines and airports grouped by country. Each
// collection lives in its own JSON file and falls back to a bundled default
// list until it is first changed.
package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

//go:embed defaults/*.json
var defaultsFS embed.FS

// Store reads and writes catalog files under a single directory.
type Store struct {
	dir string
	log *zap.Logger
}

// NewStore returns a store rooted at dir. A nil logger discards diagnostics.
func NewStore(dir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{dir: dir, log: log.Named("catalog")}
}

// Dir returns the directory holding the catalog files.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// load decodes the named file into v. A missing file decodes the bundled
// default of the same name instead.
func (s *Store) load(name string, v any) error {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		s.log.Debug("using bundled defaults", zap.String("file", name))
		return loadDefault(name, v)
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

func (s *Store) save(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	s.log.Debug("writing catalog file", zap.String("file", name))
	return os.WriteFile(s.path(name), data, 0644)
}

// reset removes the named file so the bundled default applies again.
func (s *Store) reset(name string) error {
	err := os.Remove(s.path(name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func loadDefault(name string, v any) error {
	data, err := defaultsFS.ReadFile("defaults/" + name)
	if err != nil {
		return fmt.Errorf("bundled %s: %w", name, err)
	}
	return json.Unmarshal(data, v)
}
