package domain

// CellType distinguishes notebook cell kinds.
type CellType string

const (
	CellTypeCode     CellType = "code"
	CellTypeMarkdown CellType = "markdown"
)

// Cell is one unit of notebook content. Cells carry no identifier of their
// own: a cell is identified solely by its 0-based position in the sequence.
type Cell struct {
	Type   CellType `json:"type" yaml:"type"`
	Source string   `json:"source" yaml:"source"`
}

// CellState is the live execution state of a cell, supplied in a slice
// parallel to the cell sequence. Code and Output, when non-empty, override
// the persisted cell content for analysis and display.
type CellState struct {
	// Code is the live editor content, if it diverges from Cell.Source.
	Code string `json:"code,omitempty" yaml:"code,omitempty"`

	// Output is the most recent execution output.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// HasError reports whether the last execution produced an error output.
	HasError bool `json:"has_error,omitempty" yaml:"has_error,omitempty"`
}

// EffectiveSource returns the text that should be analyzed for cell i:
// the live code override when present, else the persisted source.
func EffectiveSource(cell Cell, state CellState) string {
	if state.Code != "" {
		return state.Code
	}
	return cell.Source
}
