package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/cellgrid/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSessionStoreContract runs a suite of tests verifying that a
// SessionStore implementation adheres to the interface contract.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	path := "contract-" + time.Now().Format("20060102150405") + ".ipynb"

	t.Run("Save and Load", func(t *testing.T) {
		state := domain.NewState(path)
		state.SelectedIndex = 2
		state.Running[1] = true
		state.Overrides[0] = domain.Position{X: 12, Y: 34}
		state.Viewport.Scale = 1.2
		state.PushHistory(domain.CommandHistoryEntry{
			ID:        "e1",
			Command:   "run cell 2",
			Outcome:   domain.OutcomeSuccess,
			Timestamp: time.Now().UTC(),
		})

		err := store.Save(ctx, path, state)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, path)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, 2, loaded.SelectedIndex)
		assert.True(t, loaded.Running[1])
		assert.Equal(t, domain.Position{X: 12, Y: 34}, loaded.Overrides[0])
		assert.InDelta(t, 1.2, loaded.Viewport.Scale, 1e-9)
		require.Len(t, loaded.History, 1)
		assert.Equal(t, "e1", loaded.History[0].ID)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+path)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Isolation", func(t *testing.T) {
		state := domain.NewState(path)
		require.NoError(t, store.Save(ctx, path, state))

		loaded, err := store.Load(ctx, path)
		require.NoError(t, err)
		loaded.Running[9] = true

		again, err := store.Load(ctx, path)
		require.NoError(t, err)
		assert.False(t, again.Running[9], "mutating a loaded state must not leak into the store")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, path, domain.NewState(path)))
		require.NoError(t, store.Delete(ctx, path))

		_, err := store.Load(ctx, path)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		p1 := path + "-1"
		p2 := path + "-2"
		_ = store.Save(ctx, p1, domain.NewState(p1))
		_ = store.Save(ctx, p2, domain.NewState(p2))
		defer func() {
			_ = store.Delete(ctx, p1)
			_ = store.Delete(ctx, p2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, p1)
		assert.Contains(t, sessions, p2)
	})
}
