package layout

import "github.com/aretw0/cellgrid/pkg/domain"

// Config holds the spacing constants of the layout grid.
type Config struct {
	// MaxPerRow is the column capacity of one row within a level.
	MaxPerRow int `yaml:"max_per_row"`

	BaseX float64 `yaml:"base_x"`
	BaseY float64 `yaml:"base_y"`

	// ColumnSpacing separates consecutive levels horizontally.
	ColumnSpacing float64 `yaml:"column_spacing"`
	// SiblingSpacing separates columns within one level.
	SiblingSpacing float64 `yaml:"sibling_spacing"`
	// LevelSpacing separates consecutive levels vertically.
	LevelSpacing float64 `yaml:"level_spacing"`
	// RowSpacing separates wrapped rows within one level.
	RowSpacing float64 `yaml:"row_spacing"`

	NodeWidth  float64 `yaml:"node_width"`
	NodeHeight float64 `yaml:"node_height"`
}

// DefaultConfig returns the spacing constants used when no configuration
// is supplied.
func DefaultConfig() Config {
	return Config{
		MaxPerRow:      4,
		BaseX:          80,
		BaseY:          80,
		ColumnSpacing:  260,
		SiblingSpacing: 240,
		LevelSpacing:   180,
		RowSpacing:     150,
		NodeWidth:      220,
		NodeHeight:     120,
	}
}

// Apply computes a level for every node from the graph's data edges and
// writes x/y/width/height in place. It is deterministic and side-effect
// free with respect to everything but the passed graph.
func Apply(graph *domain.Graph, cfg Config) {
	if cfg.MaxPerRow <= 0 {
		cfg.MaxPerRow = DefaultConfig().MaxPerRow
	}

	levels := Levels(graph)

	// Pack nodes per level in index order: fill columns left to right,
	// wrap into a new row at the column capacity.
	position := make(map[int]int, len(graph.Nodes)) // index -> slot within level
	counts := make(map[int]int)
	for i := range graph.Nodes {
		lvl := levels[i]
		position[i] = counts[lvl]
		counts[lvl]++
	}

	for i := range graph.Nodes {
		lvl := levels[i]
		col := position[i] % cfg.MaxPerRow
		row := position[i] / cfg.MaxPerRow

		node := &graph.Nodes[i]
		node.X = cfg.BaseX + float64(lvl)*cfg.ColumnSpacing + float64(col)*cfg.SiblingSpacing
		node.Y = cfg.BaseY + float64(lvl)*cfg.LevelSpacing + float64(row)*cfg.RowSpacing
		node.Width = cfg.NodeWidth
		node.Height = cfg.NodeHeight
	}
}

// Levels returns each node's topological depth: 0 for nodes with no
// inbound data edge, else one more than the deepest data-edge source.
// Resource edges do not contribute to depth.
func Levels(graph *domain.Graph) []int {
	levels := make([]int, len(graph.Nodes))

	// Edges always point forward, so a single pass in index order sees
	// every source level before its targets.
	incoming := make(map[int][]int, len(graph.Nodes))
	for _, e := range graph.Edges {
		if e.Kind == domain.EdgeKindData {
			incoming[e.Target] = append(incoming[e.Target], e.Source)
		}
	}

	for i := range graph.Nodes {
		level := 0
		for _, src := range incoming[i] {
			if levels[src]+1 > level {
				level = levels[src] + 1
			}
		}
		levels[i] = level
	}
	return levels
}

// Resolve returns the effective position of a node: the user-drag
// override when present, else the computed layout position.
func Resolve(node domain.Node, overrides map[int]domain.Position) (float64, float64) {
	if pos, ok := overrides[node.Index]; ok {
		return pos.X, pos.Y
	}
	return node.X, node.Y
}
