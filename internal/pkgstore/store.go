// Package pkgstore saves priced trip packages and the last generated plan.
// Each package is one JSON file named after its id.
package pkgstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Arshadjaved786/umrah-calculator/internal/config"
	"github.com/Arshadjaved786/umrah-calculator/internal/pricing"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const idPrefix = "pkg_"

// Package is a saved quote: who it is from, the plan it prices, what went
// into the price and the resulting totals.
type Package struct {
	ID        string         `json:"id"`
	Title     string         `json:"title,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Agency    *config.Agency `json:"agency,omitempty"`
	Itinerary *Plan          `json:"itinerary,omitempty"`
	Input     pricing.Input  `json:"input"`
	Quote     pricing.Quote  `json:"quote"`
}

// Store keeps packages under a directory.
type Store struct {
	dir string
	now func() time.Time
	log *zap.Logger
}

// NewStore returns a store rooted at dir. A nil logger discards diagnostics.
func NewStore(dir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{dir: dir, now: time.Now, log: log.Named("pkgstore")}
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func validID(id string) bool {
	return strings.HasPrefix(id, idPrefix) && !strings.ContainsAny(id, `/\`) && id != idPrefix
}

// Save stores p. A package without an id gets a new one and a creation
// time; an existing id is overwritten. UpdatedAt is always refreshed.
func (s *Store) Save(p Package) (Package, error) {
	now := s.now().UTC()
	if p.ID == "" {
		p.ID = idPrefix + uuid.NewString()
		p.CreatedAt = now
	} else if !validID(p.ID) {
		return Package{}, fmt.Errorf("invalid package id '%s'", p.ID)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return Package{}, err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return Package{}, err
	}
	if err := os.WriteFile(s.path(p.ID), data, 0644); err != nil {
		return Package{}, err
	}
	s.log.Debug("package saved", zap.String("id", p.ID))
	return p, nil
}

// Replace overwrites an existing package. The package must carry an id.
func (s *Store) Replace(p Package) (Package, error) {
	if p.ID == "" {
		return Package{}, fmt.Errorf("package id is required")
	}
	return s.Save(p)
}

// Load reads a package by id.
func (s *Store) Load(id string) (Package, error) {
	if !validID(id) {
		return Package{}, fmt.Errorf("package '%s' not found", id)
	}
	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return Package{}, fmt.Errorf("package '%s' not found", id)
	}
	if err != nil {
		return Package{}, err
	}

	var p Package
	if err := json.Unmarshal(data, &p); err != nil {
		return Package{}, fmt.Errorf("parsing package '%s': %w", id, err)
	}
	return p, nil
}

// List returns every package, most recently created first. Unreadable
// files are skipped.
func (s *Store) List() ([]Package, error) {
	files, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []Package
	for _, f := range files {
		name := f.Name()
		if f.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		p, err := s.Load(strings.TrimSuffix(name, ".json"))
		if err != nil {
			s.log.Warn("skipping unreadable package", zap.String("file", name), zap.Error(err))
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a package and reports whether it existed.
func (s *Store) Delete(id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	err := os.Remove(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Find resolves a full id or a unique prefix of one. The "pkg_" prefix may
// be omitted.
func (s *Store) Find(ref string) (Package, error) {
	if !strings.HasPrefix(ref, idPrefix) {
		ref = idPrefix + ref
	}
	if p, err := s.Load(ref); err == nil {
		return p, nil
	}

	all, err := s.List()
	if err != nil {
		return Package{}, err
	}
	var matches []Package
	for _, p := range all {
		if strings.HasPrefix(p.ID, ref) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return Package{}, fmt.Errorf("package '%s' not found", strings.TrimPrefix(ref, idPrefix))
	case 1:
		return matches[0], nil
	}
	return Package{}, fmt.Errorf("package '%s' is ambiguous (%d matches)", strings.TrimPrefix(ref, idPrefix), len(matches))
}
