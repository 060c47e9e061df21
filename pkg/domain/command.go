package domain

// CommandKind identifies one variant of the parsed-command union.
type CommandKind string

const (
	CommandRunCell        CommandKind = "run-cell"
	CommandRunRange       CommandKind = "run-range"
	CommandRunSelected    CommandKind = "run-selected"
	CommandRunAll         CommandKind = "run-all"
	CommandStopCell       CommandKind = "stop-cell"
	CommandOpenCell       CommandKind = "open-cell"
	CommandSelectCell     CommandKind = "select-cell"
	CommandClearSelection CommandKind = "clear-selection"
	CommandAddCell        CommandKind = "add-cell"
	CommandZoom           CommandKind = "zoom"
	CommandHelp           CommandKind = "help"
	CommandUnknown        CommandKind = "unknown"
)

// StopScope narrows a stop-cell command.
type StopScope string

const (
	StopScopeSelected StopScope = "selected"
	StopScopeIndex    StopScope = "index"
	StopScopeAll      StopScope = "all"
)

// ZoomDirection narrows a zoom command.
type ZoomDirection string

const (
	ZoomIn    ZoomDirection = "in"
	ZoomOut   ZoomDirection = "out"
	ZoomReset ZoomDirection = "reset"
)

// Command is the tagged union produced by the interpreter. Exactly one
// variant results from any input string; interpretation never fails,
// CommandUnknown being the catch-all. Only the fields relevant to Kind
// are populated.
type Command struct {
	Kind CommandKind `json:"kind"`

	// Index is the 0-based cell index for run-cell, stop-cell(index),
	// open-cell and select-cell.
	Index int `json:"index,omitempty"`

	// Start and End delimit a run-range, 0-based inclusive. Consumers
	// must swap them when Start > End.
	Start int `json:"start,omitempty"`
	End   int `json:"end,omitempty"`

	// Scope narrows stop-cell.
	Scope StopScope `json:"scope,omitempty"`

	// Direction narrows zoom.
	Direction ZoomDirection `json:"direction,omitempty"`

	// CellType and Content describe an add-cell. Content preserves the
	// casing and punctuation of the original user text.
	CellType CellType `json:"cell_type,omitempty"`
	Content  string   `json:"content,omitempty"`

	// Reason explains an unknown command.
	Reason string `json:"reason,omitempty"`
}

// Outcome classifies the result of applying a command.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
	OutcomeInfo    Outcome = "info"
)

// Result is the user-facing consequence of one interpreted command.
type Result struct {
	Command Command `json:"command"`
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message"`
}
