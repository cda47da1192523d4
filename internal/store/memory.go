package store

import (
	"context"
	"sync"
)

// Memory is a non-durable SnapshotStore for tests and throwaway runs.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

var _ SnapshotStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, playerID string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[playerID]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]byte, len(doc))
	copy(out, doc)

	return out, nil
}

func (m *Memory) Save(_ context.Context, playerID string, doc []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(doc))
	copy(stored, doc)
	m.docs[playerID] = stored

	return nil
}

func (m *Memory) Delete(_ context.Context, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.docs, playerID)

	return nil
}

func (m *Memory) Close() error { return nil }
