package domain

// EdgeKind distinguishes how a dependency between two cells was established.
type EdgeKind string

const (
	// EdgeKindData marks a dependency through a shared variable name
	// (producer cell -> consumer cell).
	EdgeKindData EdgeKind = "data"

	// EdgeKindResource marks a dependency through a shared file path
	// (writer cell -> reader cell).
	EdgeKindResource EdgeKind = "resource"
)

// Node is the graph representation of one cell. Index is the stable
// identity; there is exactly one node per cell and index values are
// contiguous 0..n-1.
type Node struct {
	Index int `json:"index"`

	// Layout output. A user-drag override (State.Overrides) takes
	// precedence over these at render time; the computed values are never
	// mutated in place.
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// InputVars holds the names this node consumes that are satisfied by
	// an earlier node (resolved inputs, derived from inbound data edges).
	InputVars []string `json:"input_vars"`

	// OutputVars holds the names this node defines.
	OutputVars []string `json:"output_vars"`

	ResourceReads  []string `json:"resource_reads"`
	ResourceWrites []string `json:"resource_writes"`

	HasError   bool   `json:"has_error"`
	IsMarkdown bool   `json:"is_markdown"`
	Summary    string `json:"summary"`
}

// Edge is a directed dependency between two nodes. Invariant: Source <
// Target always; edges are never constructed backward or self-referential,
// so the graph is acyclic by construction.
type Edge struct {
	Source int      `json:"source"`
	Target int      `json:"target"`
	Kind   EdgeKind `json:"kind"`

	// Vars holds the variable names (data edges) or normalized resource
	// paths (resource edges) justifying the edge, deduplicated.
	Vars []string `json:"vars"`
}

// Graph is the full dependency graph of a notebook: one node per cell plus
// the data and resource edges between them.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeCount returns the number of nodes (equal to the cell count).
func (g *Graph) NodeCount() int {
	return len(g.Nodes)
}

// EdgesInto returns the edges whose target is index, preserving order.
func (g *Graph) EdgesInto(index int) []Edge {
	var in []Edge
	for _, e := range g.Edges {
		if e.Target == index {
			in = append(in, e)
		}
	}
	return in
}
