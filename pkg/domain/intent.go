package domain

// IntentRequest represents a side-effect the engine requests an external
// collaborator to perform. Intents are fire-and-forget: the engine does
// not wait for the collaborator, and each payload carries enough data to
// be replayed independently.
type IntentRequest struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Standard intent types.
const (
	// IntentRunCell asks the executor to run one cell.
	// Payload: RunPayload.
	IntentRunCell = "RUN_CELL"

	// IntentStopCell asks the executor to stop one cell.
	// Payload: RunPayload.
	IntentStopCell = "STOP_CELL"

	// IntentAddCell asks the persistence collaborator to insert a cell.
	// Payload: AddPayload.
	IntentAddCell = "ADD_CELL"
)

// RunPayload addresses a single cell of a single notebook.
type RunPayload struct {
	FilePath  string `json:"file_path" mapstructure:"file_path"`
	CellIndex int    `json:"cell_index" mapstructure:"cell_index"`
}

// AddPayload describes a cell insertion request.
type AddPayload struct {
	FilePath string   `json:"file_path" mapstructure:"file_path"`
	CellType CellType `json:"cell_type" mapstructure:"cell_type"`
	Content  string   `json:"content" mapstructure:"content"`

	// InsertAfter is the index to insert after, or nil to append.
	InsertAfter *int `json:"insert_after,omitempty" mapstructure:"insert_after"`
}

// AckKind classifies an executor acknowledgement.
type AckKind string

const (
	// AckCompleted signals a cell finished executing.
	AckCompleted AckKind = "completed"
	// AckStopped signals a cell was stopped on request.
	AckStopped AckKind = "stopped"
)

// AckSignal is the executor's asynchronous acknowledgement for one cell.
// Receiving an ack for an index that is not tracked is a no-op, tolerating
// races between a stop intent and an in-flight completion.
type AckSignal struct {
	FilePath  string  `json:"file_path" mapstructure:"file_path"`
	CellIndex int     `json:"cell_index" mapstructure:"cell_index"`
	Kind      AckKind `json:"kind" mapstructure:"kind"`
}
