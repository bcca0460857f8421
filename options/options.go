// SPDX-License-Identifier: MIT
// Package: zenmesh/options

package options

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileName is the base name of the options file.
const FileName = "ZenTools.json"

var (
	// ErrBadValue indicates an option value that is not a bool, number or
	// string.
	ErrBadValue = errors.New("options: unsupported value type")

	// ErrCorrupt indicates an options file that is not a JSON object of
	// objects.
	ErrCorrupt = errors.New("options: corrupt options file")
)

// Store holds tool options as {tool: {option: value}} backed by a JSON
// file. The file is read on first access; every Set and Sets writes it back.
// Values are bool, float64 or string. Store is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	path   string
	loaded bool
	tools  map[string]map[string]any
}

// New returns a store backed by the file at path. The file need not exist.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns FileName inside the user's configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "zentools", FileName), nil
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// loadLocked reads the file once. A missing file is an empty store.
func (s *Store) loadLocked() error {
	if s.loaded {
		return nil
	}
	tools := make(map[string]map[string]any)
	raw, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return err
	default:
		if err = json.Unmarshal(raw, &tools); err != nil {
			return fmt.Errorf("%s: %v: %w", s.path, err, ErrCorrupt)
		}
	}
	if tools == nil {
		tools = make(map[string]map[string]any)
	}
	for tool, opts := range tools {
		if opts == nil {
			tools[tool] = make(map[string]any)
		}
	}
	s.tools = tools
	s.loaded = true
	tracer().Debugf("options: loaded %d tools from %s", len(tools), s.path)
	return nil
}

// Gets returns a copy of all options of tool.
func (s *Store) Gets(tool string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return nil, err
	}
	out := make(map[string]any, len(s.tools[tool]))
	for k, v := range s.tools[tool] {
		out[k] = v
	}
	return out, nil
}

// Get returns one option of tool, or def when it is unset.
func (s *Store) Get(tool, option string, def any) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return nil, err
	}
	if v, ok := s.tools[tool][option]; ok {
		return v, nil
	}
	return def, nil
}

// Bool returns a bool option, or def when it is unset or of another type.
func (s *Store) Bool(tool, option string, def bool) (bool, error) {
	v, err := s.Get(tool, option, def)
	if b, ok := v.(bool); ok {
		return b, err
	}
	return def, err
}

// Float returns a numeric option, or def when it is unset or of another
// type.
func (s *Store) Float(tool, option string, def float64) (float64, error) {
	v, err := s.Get(tool, option, def)
	if f, ok := v.(float64); ok {
		return f, err
	}
	return def, err
}

// String returns a string option, or def when it is unset or of another
// type.
func (s *Store) String(tool, option, def string) (string, error) {
	v, err := s.Get(tool, option, def)
	if str, ok := v.(string); ok {
		return str, err
	}
	return def, err
}

// Set stores one option of tool and saves the file.
func (s *Store) Set(tool, option string, value any) error {
	v, err := normalize(value)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", tool, option, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.loadLocked(); err != nil {
		return err
	}
	if s.tools[tool] == nil {
		s.tools[tool] = make(map[string]any)
	}
	s.tools[tool][option] = v
	return s.saveLocked()
}

// Sets replaces all options of tool and saves the file.
func (s *Store) Sets(tool string, values map[string]any) error {
	opts := make(map[string]any, len(values))
	for k, value := range values {
		v, err := normalize(value)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", tool, k, err)
		}
		opts[k] = v
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return err
	}
	s.tools[tool] = opts
	return s.saveLocked()
}

// Save writes all options to the file, creating its directory if needed.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return err
	}
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	raw, err := json.MarshalIndent(s.tools, "", "    ")
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// normalize maps supported Go values onto their JSON decoded form, so a
// value reads back the same before and after a reload.
func normalize(v any) (any, error) {
	switch x := v.(type) {
	case bool, string, float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	}
	return nil, fmt.Errorf("%T: %w", v, ErrBadValue)
}
