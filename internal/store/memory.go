package store

import (
	"context"
	"sync"

	"kharcha/internal/core"
)

// Memory keeps the collection in process memory. Used by tests and as the
// zero-configuration dev backend.
type Memory struct {
	mu    sync.Mutex
	items []core.Expense
}

func NewMemory() *Memory {
	return &Memory{}
}

func (s *Memory) Load(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Expense, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *Memory) Save(_ context.Context, items []core.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]core.Expense, len(items))
	copy(s.items, items)
	return nil
}

func (s *Memory) Close() error { return nil }
