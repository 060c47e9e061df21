package ports

import (
	"context"

	"github.com/aretw0/cellgrid/pkg/domain"
)

// NotebookLoader defines how the engine retrieves notebook content.
// This decouples the engine from notebook persistence (ipynb files,
// in-memory fixtures, a remote host).
type NotebookLoader interface {
	// Load returns the ordered cells of the notebook at path together
	// with a parallel slice of live cell states. The states slice may be
	// shorter than the cells slice; missing entries mean "no live state".
	Load(ctx context.Context, path string) ([]domain.Cell, []domain.CellState, error)
}

// Watchable is implemented by loaders that can notify about backend
// changes, signaling only that a wholesale graph rebuild is required.
type Watchable interface {
	Watch(ctx context.Context) (<-chan struct{}, error)
}
