package middleware_test

import (
	"context"
	"testing"

	"github.com/aretw0/cellgrid/pkg/domain"
	"github.com/aretw0/cellgrid/pkg/persistence/middleware"
)

func TestRedactionMiddleware_MasksHistoryOnSave(t *testing.T) {
	underlyingStore := NewMockStore()
	mw := middleware.NewRedactionMiddleware([]string{`(?i)token \S+`, `hunter2`})
	store := mw(underlyingStore)

	ctx := context.Background()
	path := "nb.ipynb"
	state := domain.NewState(path)
	state.PushHistory(domain.CommandHistoryEntry{
		ID:      "h1",
		Command: "add a note saying token abc123",
		Message: "Added note cell: password is hunter2",
	})

	if err := store.Save(ctx, path, state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	stored, err := underlyingStore.Load(ctx, path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := stored.History[0].Command; got != "add a note saying ***" {
		t.Errorf("Command not redacted: %q", got)
	}
	if got := stored.History[0].Message; got != "Added note cell: password is ***" {
		t.Errorf("Message not redacted: %q", got)
	}

	// The engine's live state is untouched.
	if state.History[0].Command != "add a note saying token abc123" {
		t.Errorf("In-memory state was mutated: %q", state.History[0].Command)
	}
}

func TestRedactionMiddleware_BadPatternPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic for invalid pattern")
		}
	}()
	middleware.NewRedactionMiddleware([]string{`(`})
}
