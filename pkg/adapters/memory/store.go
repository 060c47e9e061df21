package memory

import (
	"context"
	"sync"

	"github.com/aretw0/cellgrid/pkg/domain"
)

// Store implements ports.SessionStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.State
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.State),
	}
}

// Save persists the state in memory.
func (s *Store) Save(ctx context.Context, path string, state *domain.State) error {
	// Deep copy to ensure isolation, similar to serialization
	copied := state.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[path] = copied
	return nil
}

// Load retrieves the state from memory.
func (s *Store) Load(ctx context.Context, path string) (*domain.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.data[path]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	// Copy on read so caller can't mutate store state through the pointer
	return state.Clone(), nil
}

// Delete removes the state.
func (s *Store) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, path)
	return nil
}

// List returns the notebook paths with stored sessions.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.data))
	for p := range s.data {
		paths = append(paths, p)
	}
	return paths, nil
}
