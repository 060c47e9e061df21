package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/cellgrid/pkg/adapters/redis"
	"github.com/aretw0/cellgrid/pkg/domain"
	"github.com/aretw0/cellgrid/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	return backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisStore_Contract(t *testing.T) {
	store := redis.NewFromClient(newTestClient(t))
	ports.RunSessionStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()
	path := "ttl.ipynb"

	state := domain.NewState(path)
	state.SelectedIndex = 1
	require.NoError(t, store.Save(ctx, path, state))

	sessions, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, sessions, path)

	// Expire the key inside miniredis.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, path)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Index pruning uses time.Now() scores, so real time must pass the TTL
	// before List drops the entry.
	time.Sleep(1200 * time.Millisecond)

	sessions, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()
	path := "prefixed.ipynb"

	require.NoError(t, store.Save(ctx, path, domain.NewState(path)))

	assert.True(t, mr.Exists("custom:app:prefixed.ipynb"), "expected key with custom prefix")
	assert.True(t, mr.Exists("custom:app:index"), "expected index with custom prefix")

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, list, path)
}

func TestRedisStore_LoadRestoresMaps(t *testing.T) {
	store := redis.NewFromClient(newTestClient(t))
	ctx := context.Background()
	path := "maps.ipynb"

	// A fresh state round-trips with empty (not nil) maps so callers can
	// write into them immediately.
	require.NoError(t, store.Save(ctx, path, domain.NewState(path)))

	loaded, err := store.Load(ctx, path)
	require.NoError(t, err)
	require.NotNil(t, loaded.Running)
	require.NotNil(t, loaded.Overrides)
	loaded.Running[0] = true
	loaded.Overrides[1] = domain.Position{X: 5, Y: 6}
}
