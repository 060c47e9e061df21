package file_test

import (
	"context"
	"testing"

	"github.com/aretw0/cellgrid/pkg/adapters/file"
	"github.com/aretw0/cellgrid/pkg/domain"
	"github.com/aretw0/cellgrid/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.NewStore(t.TempDir())
	ports.RunSessionStoreContract(t, store)
}

func TestFileStore_PathsWithSeparators(t *testing.T) {
	store := file.NewStore(t.TempDir())
	ctx := context.Background()
	path := "projects/analysis/q3.ipynb"

	require.NoError(t, store.Save(ctx, path, domain.NewState(path)))

	loaded, err := store.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, path, loaded.FilePath)

	paths, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, paths, path, "List round-trips the original path")
}

func TestFileStore_EmptyPathRejected(t *testing.T) {
	store := file.NewStore(t.TempDir())
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "", domain.NewState("")))
	_, err := store.Load(ctx, "")
	assert.Error(t, err)
}
