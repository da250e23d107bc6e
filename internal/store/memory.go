package store

import (
	"errors"
	"sync"
)

// Memory is a map-backed KV used in tests and for ephemeral runs.
type Memory struct {
	mu   sync.Mutex
	data map[string]string

	// FailWrites makes Set return ErrWriteFailed, simulating a full or
	// broken backend in tests.
	FailWrites bool
}

// ErrWriteFailed is returned by a Memory store with FailWrites set.
var ErrWriteFailed = errors.New("write failed")

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get returns the value for key, or ErrNotFound.
func (m *Memory) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set writes value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites {
		return ErrWriteFailed
	}
	m.data[key] = value
	return nil
}

// Delete removes key.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}
