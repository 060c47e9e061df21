package ipynb_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/cellgrid/pkg/adapters/ipynb"
	"github.com/aretw0/cellgrid/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNotebook = `{
  "nbformat": 4,
  "nbformat_minor": 5,
  "cells": [
    {
      "cell_type": "code",
      "source": ["import pandas as pd\n", "df = pd.read_csv('data.csv')"],
      "outputs": []
    },
    {
      "cell_type": "markdown",
      "source": "# Analysis"
    },
    {
      "cell_type": "code",
      "source": "df.describe()",
      "outputs": [
        {"output_type": "stream", "name": "stdout", "text": ["count  3\n"]},
        {"output_type": "error", "ename": "ValueError"}
      ]
    },
    {
      "cell_type": "raw",
      "source": "not code"
    }
  ]
}`

func writeNotebook(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.ipynb")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	loader := ipynb.NewLoader()
	cells, states, err := loader.Load(context.Background(), writeNotebook(t, sampleNotebook))
	require.NoError(t, err)
	require.Len(t, cells, 4)
	require.Len(t, states, 4)

	assert.Equal(t, domain.CellTypeCode, cells[0].Type)
	assert.Equal(t, "import pandas as pd\ndf = pd.read_csv('data.csv')", cells[0].Source, "list sources are joined verbatim")

	assert.Equal(t, domain.CellTypeMarkdown, cells[1].Type)
	assert.Equal(t, "# Analysis", cells[1].Source, "string sources pass through")

	assert.True(t, states[2].HasError, "error output marks the cell failed")
	assert.Equal(t, "count  3\n", states[2].Output)

	assert.Equal(t, domain.CellTypeMarkdown, cells[3].Type, "raw cells map to markdown to keep indices aligned")
}

func TestLoader_Missing(t *testing.T) {
	loader := ipynb.NewLoader()
	_, _, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "nope.ipynb"))
	assert.ErrorIs(t, err, domain.ErrNotebookNotFound)
}

func TestLoader_Malformed(t *testing.T) {
	loader := ipynb.NewLoader()
	_, _, err := loader.Load(context.Background(), writeNotebook(t, "{not json"))
	assert.Error(t, err)
}

func TestLoader_StderrMarksError(t *testing.T) {
	nb := `{"cells":[{"cell_type":"code","source":"x","outputs":[{"output_type":"stream","name":"stderr","text":"warning"}]}]}`
	loader := ipynb.NewLoader()
	_, states, err := loader.Load(context.Background(), writeNotebook(t, nb))
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.True(t, states[0].HasError)
	assert.Equal(t, "warning", states[0].Output)
}
