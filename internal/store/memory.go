package store

import (
	"encoding/json"

	"whisper/internal/domain"
)

// Memory is a map-backed Store. Callers serialize access through the host;
// Memory does no locking of its own.
type Memory struct {
	m map[string]json.RawMessage
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]json.RawMessage)}
}

// Get unmarshals the value at key into out, reporting presence.
func (s *Memory) Get(key string, out any) (bool, error) {
	raw, ok := s.m[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

// Put stores v as JSON under key, replacing any previous value.
func (s *Memory) Put(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.m[key] = raw
	return nil
}

// Compile-time assertion that Memory implements domain.Store.
var _ domain.Store = (*Memory)(nil)
