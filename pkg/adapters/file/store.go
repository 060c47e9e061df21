// Package file persists notebook sessions as JSON files on disk, giving
// the CLI durable sessions without any external service.
package file

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/cellgrid/pkg/domain"
)

// Store implements ports.SessionStore using the local filesystem.
// Notebook paths are not valid file names, so each session file is named
// by the url-safe base64 of its path.
type Store struct {
	BasePath string
}

// NewStore creates a file store rooted at basePath.
// If basePath is empty, it defaults to ".cellgrid/sessions".
func NewStore(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".cellgrid", "sessions")
	}
	return &Store{BasePath: basePath}
}

func (f *Store) file(path string) string {
	name := base64.RawURLEncoding.EncodeToString([]byte(path))
	return filepath.Join(f.BasePath, name+".json")
}

// Save persists the session state to a JSON file.
func (f *Store) Save(ctx context.Context, path string, state *domain.State) error {
	if path == "" {
		return fmt.Errorf("notebook path cannot be empty")
	}

	if err := os.MkdirAll(f.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure session directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(f.file(path), data, 0o644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Load retrieves the session state from its JSON file.
func (f *Store) Load(ctx context.Context, path string) (*domain.State, error) {
	if path == "" {
		return nil, fmt.Errorf("notebook path cannot be empty")
	}

	data, err := os.ReadFile(f.file(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var state domain.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session state: %w", err)
	}
	if state.Running == nil {
		state.Running = make(map[int]bool)
	}
	if state.Overrides == nil {
		state.Overrides = make(map[int]domain.Position)
	}
	return &state, nil
}

// Delete removes the session file. Deleting a missing session is a no-op.
func (f *Store) Delete(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("notebook path cannot be empty")
	}

	err := os.Remove(f.file(path))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete session file: %w", err)
	}
	return nil
}

// List returns the notebook paths with stored sessions.
func (f *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		name := entry.Name()
		decoded, err := base64.RawURLEncoding.DecodeString(name[:len(name)-len(".json")])
		if err != nil {
			continue // foreign file in the session directory
		}
		paths = append(paths, string(decoded))
	}
	return paths, nil
}
