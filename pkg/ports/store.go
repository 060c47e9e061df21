package ports

import (
	"context"

	"github.com/aretw0/cellgrid/pkg/domain"
)

// SessionStore defines the interface for persisting session state, keyed
// by notebook path. This allows selection, viewport and history to survive
// process restarts or be shared between processes.
type SessionStore interface {
	// Save persists the state for a given notebook path.
	Save(ctx context.Context, path string, state *domain.State) error

	// Load retrieves the state for a given notebook path.
	// Returns domain.ErrSessionNotFound if no session exists.
	Load(ctx context.Context, path string) (*domain.State, error)

	// Delete removes the state for a given notebook path.
	Delete(ctx context.Context, path string) error

	// List returns the notebook paths with stored sessions.
	List(ctx context.Context) ([]string, error)
}
