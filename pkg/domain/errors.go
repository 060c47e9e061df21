package domain

import "errors"

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrNotebookNotFound is returned when a loader has no notebook at the
// requested path.
var ErrNotebookNotFound = errors.New("notebook not found")

// ErrIndexOutOfRange is returned when a command references a cell index
// outside [0, n-1].
var ErrIndexOutOfRange = errors.New("cell index out of range")

// ErrMarkdownCell is returned when a run operation targets a markdown cell.
var ErrMarkdownCell = errors.New("markdown cells cannot be run")

// ErrNoSelection is returned when a selection-scoped command is applied
// with nothing selected.
var ErrNoSelection = errors.New("no cell is selected")
