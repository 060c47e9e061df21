package memory

import (
	"context"
	"sync"

	"github.com/aretw0/cellgrid/pkg/domain"
)

// Loader implements ports.NotebookLoader from an in-memory cell list.
// Useful for tests and for hosts that push notebook content directly.
type Loader struct {
	mu     sync.RWMutex
	cells  map[string][]domain.Cell
	states map[string][]domain.CellState
	notify []chan struct{}
}

// NewLoader creates an empty in-memory loader.
func NewLoader() *Loader {
	return &Loader{
		cells:  make(map[string][]domain.Cell),
		states: make(map[string][]domain.CellState),
	}
}

// SetNotebook replaces the content for path and signals watchers.
func (l *Loader) SetNotebook(path string, cells []domain.Cell, states []domain.CellState) {
	l.mu.Lock()
	l.cells[path] = append([]domain.Cell(nil), cells...)
	l.states[path] = append([]domain.CellState(nil), states...)
	watchers := append([]chan struct{}(nil), l.notify...)
	l.mu.Unlock()

	for _, ch := range watchers {
		select {
		case ch <- struct{}{}:
		default: // watcher not draining; a rebuild is already pending
		}
	}
}

// Load returns the cells and live states for path.
func (l *Loader) Load(ctx context.Context, path string) ([]domain.Cell, []domain.CellState, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	cells, ok := l.cells[path]
	if !ok {
		return nil, nil, domain.ErrNotebookNotFound
	}
	return append([]domain.Cell(nil), cells...),
		append([]domain.CellState(nil), l.states[path]...),
		nil
}

// Watch returns a channel that receives a signal on every SetNotebook.
func (l *Loader) Watch(ctx context.Context) (<-chan struct{}, error) {
	ch := make(chan struct{}, 1)
	l.mu.Lock()
	l.notify = append(l.notify, ch)
	l.mu.Unlock()
	return ch, nil
}
