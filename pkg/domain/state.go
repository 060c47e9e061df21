package domain

import "time"

// NoSelection is the SelectedIndex value meaning nothing is selected.
const NoSelection = -1

// HistoryCapacity is the number of command history entries retained.
const HistoryCapacity = 5

// Position is a user-drag override for one node, keyed by node index and
// layered over the computed layout at read time.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Viewport is the pan/zoom state of the hosting canvas.
type Viewport struct {
	TranslateX float64 `json:"translate_x"`
	TranslateY float64 `json:"translate_y"`
	Scale      float64 `json:"scale"`
}

// CommandHistoryEntry records one interpreted command and its outcome.
type CommandHistoryEntry struct {
	ID        string    `json:"id"`
	Command   string    `json:"command"`
	Message   string    `json:"message"`
	Outcome   Outcome   `json:"outcome"`
	Timestamp time.Time `json:"timestamp"`
}

// State is the transient session state for one open notebook. It is owned
// exclusively by the engine and mutated only by command handlers and by
// executor acknowledgements; the graph builder never touches it.
type State struct {
	// FilePath identifies the notebook this session belongs to. Intents
	// and acknowledgements are scoped by it so multiple open notebooks do
	// not cross-pollinate.
	FilePath string `json:"file_path"`

	// SelectedIndex is the selected cell index, or NoSelection.
	SelectedIndex int `json:"selected_index"`

	// Running tracks indices with an unacknowledged run intent.
	Running map[int]bool `json:"running"`

	// Overrides holds user-drag positions keyed by node index.
	Overrides map[int]Position `json:"overrides"`

	Viewport Viewport `json:"viewport"`

	// History holds the most recent interpreted commands, newest first,
	// bounded by HistoryCapacity. Cleared only by session end.
	History []CommandHistoryEntry `json:"history"`
}

// NewState creates a clean session for the given notebook path.
func NewState(filePath string) *State {
	return &State{
		FilePath:      filePath,
		SelectedIndex: NoSelection,
		Running:       make(map[int]bool),
		Overrides:     make(map[int]Position),
		Viewport:      Viewport{Scale: 1.0},
	}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Running = make(map[int]bool, len(s.Running))
	for k, v := range s.Running {
		c.Running[k] = v
	}
	c.Overrides = make(map[int]Position, len(s.Overrides))
	for k, v := range s.Overrides {
		c.Overrides[k] = v
	}
	c.History = append([]CommandHistoryEntry(nil), s.History...)
	return &c
}

// RunningIndices returns the tracked running indices in ascending order.
func (s *State) RunningIndices() []int {
	out := make([]int, 0, len(s.Running))
	for i := range s.Running {
		out = append(out, i)
	}
	for a := 1; a < len(out); a++ {
		for b := a; b > 0 && out[b] < out[b-1]; b-- {
			out[b], out[b-1] = out[b-1], out[b]
		}
	}
	return out
}

// PushHistory prepends an entry, evicting the oldest beyond capacity.
func (s *State) PushHistory(entry CommandHistoryEntry) {
	s.History = append([]CommandHistoryEntry{entry}, s.History...)
	if len(s.History) > HistoryCapacity {
		s.History = s.History[:HistoryCapacity]
	}
}
