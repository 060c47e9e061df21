package domain

import (
	"context"
	"time"
)

// CommandEvent describes one interpreted command and its outcome.
type CommandEvent struct {
	Timestamp time.Time `json:"timestamp"`
	FilePath  string    `json:"file_path"`
	Kind      CommandKind
	Outcome   Outcome
	Message   string
}

// IntentEvent describes one emitted intent.
type IntentEvent struct {
	Timestamp time.Time `json:"timestamp"`
	FilePath  string    `json:"file_path"`
	Type      string    `json:"type"`
	CellIndex int       `json:"cell_index"`
}

// GraphEvent describes one wholesale graph rebuild.
type GraphEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	FilePath  string        `json:"file_path"`
	Nodes     int           `json:"nodes"`
	Edges     int           `json:"edges"`
	Duration  time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for engine observability. Any field may
// be nil. Hooks run synchronously on the engine goroutine and must return
// promptly.
type LifecycleHooks struct {
	OnCommand    func(context.Context, *CommandEvent)
	OnIntent     func(context.Context, *IntentEvent)
	OnAck        func(context.Context, *AckSignal)
	OnGraphBuild func(context.Context, *GraphEvent)
}
