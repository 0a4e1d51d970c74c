package store

import (
	"context"
	"errors"
	"sync"
)

var _ KV = (*Memory)(nil)

// errWriteFailed is the driver-level error surfaced when FailWrites is set.
var errWriteFailed = errors.New("simulated write failure")

// Memory is an in-process KV for tests and ephemeral runs.
// It copies bytes on the way in and out so callers can't alias stored state.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWrites makes every WriteAll fail when set, so tests can
	// exercise the storage-write failure path without filling a disk.
	FailWrites bool
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Seed stores raw bytes under key without going through WriteAll, letting
// tests plant corrupt payloads.
func (m *Memory) Seed(key string, raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), raw...)
}

func (m *Memory) ReadAll(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), raw...), nil
}

func (m *Memory) WriteAll(_ context.Context, key string, raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites {
		return errWriteFailed
	}
	m.data[key] = append([]byte(nil), raw...)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
