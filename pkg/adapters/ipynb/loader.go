// Package ipynb loads notebook cells from Jupyter .ipynb files
// (nbformat 4).
package ipynb

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/cellgrid/pkg/domain"
)

// Loader implements ports.NotebookLoader for .ipynb files on disk.
type Loader struct{}

// NewLoader creates a file-backed notebook loader.
func NewLoader() *Loader {
	return &Loader{}
}

// notebook mirrors the subset of nbformat 4 we consume.
type notebook struct {
	Cells []rawCell `json:"cells"`
}

type rawCell struct {
	CellType string          `json:"cell_type"`
	Source   json.RawMessage `json:"source"`
	Outputs  []rawOutput     `json:"outputs"`
}

type rawOutput struct {
	OutputType string          `json:"output_type"`
	Name       string          `json:"name"`
	Text       json.RawMessage `json:"text"`
}

// Load parses the notebook at path. Raw cells and other non-code,
// non-markdown types are mapped to markdown so indices stay aligned with
// the file.
func (l *Loader) Load(ctx context.Context, path string) ([]domain.Cell, []domain.CellState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrNotebookNotFound, path)
		}
		return nil, nil, fmt.Errorf("reading notebook %s: %w", path, err)
	}

	var nb notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, nil, fmt.Errorf("parsing notebook %s: %w", path, err)
	}

	cells := make([]domain.Cell, 0, len(nb.Cells))
	states := make([]domain.CellState, 0, len(nb.Cells))
	for _, rc := range nb.Cells {
		cellType := domain.CellTypeMarkdown
		if rc.CellType == "code" {
			cellType = domain.CellTypeCode
		}
		cells = append(cells, domain.Cell{
			Type:   cellType,
			Source: joinSource(rc.Source),
		})
		states = append(states, stateFromOutputs(rc.Outputs))
	}
	return cells, states, nil
}

// joinSource handles nbformat's two source encodings: a single string or
// a list of line strings.
func joinSource(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}
	var lines []string
	if err := json.Unmarshal(raw, &lines); err == nil {
		return strings.Join(lines, "")
	}
	return ""
}

func stateFromOutputs(outputs []rawOutput) domain.CellState {
	var st domain.CellState
	var parts []string
	for _, out := range outputs {
		switch out.OutputType {
		case "error":
			st.HasError = true
		case "stream":
			if out.Name == "stderr" {
				st.HasError = true
			}
			if text := joinSource(out.Text); text != "" {
				parts = append(parts, text)
			}
		}
	}
	st.Output = strings.Join(parts, "")
	return st
}
