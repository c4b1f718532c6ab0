package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"whisper/internal/domain"
)

// File is a Store persisted as one JSON document on disk. Every Put
// rewrites the file, so state survives daemon restarts; the state is small
// (profiles, group metadata, counters) and message bodies never land here.
type File struct {
	path string
	m    map[string]json.RawMessage
}

// OpenFile loads the store at path, creating parent directories as needed.
// A missing file is an empty store.
func OpenFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("open state file %s: %w", path, err)
	}
	s := &File{path: path, m: make(map[string]json.RawMessage)}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open state file %s: %w", path, err)
	}
	if err := json.Unmarshal(b, &s.m); err != nil {
		return nil, fmt.Errorf("parse state file %s: %w", path, err)
	}
	return s, nil
}

// Get unmarshals the value at key into out, reporting presence.
func (s *File) Get(key string, out any) (bool, error) {
	raw, ok := s.m[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

// Put stores v under key and flushes the document to disk.
func (s *File) Put(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.m[key] = raw
	return s.flush()
}

func (s *File) flush() error {
	b, err := json.MarshalIndent(s.m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o600)
}

// Compile-time assertion that File implements domain.Store.
var _ domain.Store = (*File)(nil)
