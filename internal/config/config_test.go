package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cellgrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  max_per_row: 6\nlog_level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Layout.MaxPerRow)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, Default().Layout.ColumnSpacing, cfg.Layout.ColumnSpacing, "unset fields keep defaults")
	assert.Equal(t, Default().Zoom.Max, cfg.Zoom.Max)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
