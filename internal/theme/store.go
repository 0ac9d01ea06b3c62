// Package theme owns the dark/light preference and persists it as YAML.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Name is a theme identifier.
type Name string

const (
	Dark  Name = "dark"
	Light Name = "light"
)

// ErrUnknownTheme is returned by Set and Parse for anything but dark or light.
var ErrUnknownTheme = errors.New("unknown theme")

// Parse validates a theme name.
func Parse(s string) (Name, error) {
	switch Name(s) {
	case Dark, Light:
		return Name(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

type file struct {
	Theme string `yaml:"theme"`
}

// Store holds the current theme. It is safe for concurrent use.
type Store struct {
	path string

	mu    sync.RWMutex
	theme Name
}

// Open loads the preference stored at path. A missing file means dark, and
// only the value "light" selects the light theme.
func Open(path string) (*Store, error) {
	s := &Store{path: path, theme: Dark}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read theme: %w", err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}
	if Name(f.Theme) == Light {
		s.theme = Light
	}
	return s, nil
}

// IsDark reports whether the dark theme is active.
func (s *Store) IsDark() bool {
	return s.Theme() == Dark
}

// Theme returns the active theme.
func (s *Store) Theme() Name {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Set switches to n and saves it.
func (s *Store) Set(n Name) error {
	if _, err := Parse(string(n)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(n); err != nil {
		return err
	}
	s.theme = n
	return nil
}

// Toggle flips between dark and light, saves, and returns the new theme.
func (s *Store) Toggle() (Name, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := Light
	if s.theme == Light {
		next = Dark
	}
	if err := s.save(next); err != nil {
		return s.theme, err
	}
	s.theme = next
	log.Debug().Str("theme", string(next)).Str("path", s.path).Msg("theme saved")
	return next, nil
}

// save writes n through a temp file and rename. Caller holds mu.
func (s *Store) save(n Name) error {
	data, err := yaml.Marshal(file{Theme: string(n)})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".theme-*")
	if err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("save theme: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
