// Package store is a small JSON file store rooted at a data directory. The
// player-catalog cache and the name-override file live in it.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

type JSONStore struct {
	Root string
}

func NewJSONStore(root string) *JSONStore {
	return &JSONStore{Root: root}
}

func (s *JSONStore) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

func (s *JSONStore) Exists(rel string) bool {
	_, err := os.Stat(s.Path(rel))
	return err == nil
}

// Read decodes the file at rel into v. A missing file is reported as
// os.ErrNotExist so callers can treat it as "no cache yet".
func (s *JSONStore) Read(rel string, v any) error {
	b, err := os.ReadFile(s.Path(rel))
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// Write encodes v as indented JSON at rel, creating parent directories.
func (s *JSONStore) Write(rel string, v any) error {
	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(path, b, 0o644)
}

// IsNotExist reports whether err means the file was simply absent.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
