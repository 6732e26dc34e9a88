// internal/store/memory.go
//
// In-memory keyed store for server-side state (assistant sessions, games).
//
// Characteristics:
//   - Generic over the stored value; values are kept by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - Get returns ErrNotFound for missing IDs.

package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get and Delete for unknown IDs.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for server-side state.
type Store[T any] interface {
	// Save persists or replaces the value under id.
	Save(ctx context.Context, id string, v T) error

	// Get retrieves the value stored under id.
	Get(ctx context.Context, id string) (T, error)

	// Delete removes the value stored under id.
	Delete(ctx context.Context, id string) error

	// Len reports how many values are stored.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore[T any]() Store[T] {
	return &memory[T]{items: make(map[string]T)}
}

func (m *memory[T]) Save(_ context.Context, id string, v T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id] = v
	return nil
}

func (m *memory[T]) Get(_ context.Context, id string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.items[id]; ok {
		return v, nil
	}
	var zero T
	return zero, ErrNotFound
}

func (m *memory[T]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
