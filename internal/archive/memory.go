package archive

import (
	"fmt"
	"sync"
)

// MemoryStore implements Store in memory (not persistent)
type MemoryStore struct {
	runs map[string][]byte
	mu   sync.RWMutex
}

// NewMemoryStore creates an empty in-memory archive
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string][]byte)}
}

// Save stores an encoded copy of run, so later changes to run are not seen
func (m *MemoryStore) Save(run *Run) error {
	data, err := encodeRun(run)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs[run.ID] = data
	return nil
}

// Get decodes a fresh copy of one run
func (m *MemoryStore) Get(id string) (*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.runs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return decodeRun(data)
}

// List decodes every run, newest first
func (m *MemoryStore) List() ([]*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := make([]*Run, 0, len(m.runs))
	for _, data := range m.runs {
		run, err := decodeRun(data)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	sortNewestFirst(runs)
	return runs, nil
}

// Close is a no-op for the memory store
func (m *MemoryStore) Close() error {
	return nil
}
