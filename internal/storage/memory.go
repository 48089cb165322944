package storage

import (
	"sync"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Memory is an in-process BestStore used when no database is available and
// in tests. Safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	best    map[string]int
	results map[string][]int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		best:    make(map[string]int),
		results: make(map[string][]int),
	}
}

// LoadBest implements core.BestStore.
func (m *Memory) LoadBest(key string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.best[key]
	return v, ok, nil
}

// SaveBest implements core.BestStore.
func (m *Memory) SaveBest(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best[key] = value
	return nil
}

// RecordResult implements core.ResultRecorder.
func (m *Memory) RecordResult(gameID string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[gameID] = append(m.results[gameID], value)
	return nil
}

// Results returns the recorded results for a game in insertion order.
func (m *Memory) Results(gameID string) []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.results[gameID]...)
}

var (
	_ core.BestStore      = (*Memory)(nil)
	_ core.ResultRecorder = (*Memory)(nil)
)
