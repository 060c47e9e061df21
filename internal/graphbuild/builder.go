package graphbuild

import (
	"context"
	"log/slog"
	"sort"

	"github.com/aretw0/cellgrid/internal/logging"
	"github.com/aretw0/cellgrid/pkg/domain"
	"github.com/aretw0/cellgrid/pkg/ports"
)

// Builder constructs dependency graphs from cell sequences. It is
// stateless between builds; the running maps live only for one Build call.
type Builder struct {
	extractor ports.SymbolExtractor
	logger    *slog.Logger
}

// Option configures the Builder.
type Option func(*Builder)

// WithLogger sets the builder's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// New creates a Builder using the given symbol extractor.
func New(extractor ports.SymbolExtractor, opts ...Option) *Builder {
	b := &Builder{
		extractor: extractor,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build produces the dependency graph for the given cells and their live
// states. The states slice may be shorter than cells; missing entries mean
// "no live state". Build is pure: identical inputs yield identical output.
func (b *Builder) Build(ctx context.Context, cells []domain.Cell, states []domain.CellState) *domain.Graph {
	graph := &domain.Graph{
		Nodes: make([]domain.Node, 0, len(cells)),
	}

	lastProducer := make(map[string]int)   // name -> producing index
	resourceWriter := make(map[string]int) // canonical path -> writing index

	for i, cell := range cells {
		state := stateAt(states, i)

		var ext domain.Extraction
		if cell.Type == domain.CellTypeCode {
			ext = b.extractor.Extract(domain.EffectiveSource(cell, state))
		}

		node := domain.Node{
			Index:          i,
			OutputVars:     ext.Outputs,
			ResourceReads:  ext.ResourceReads,
			ResourceWrites: ext.ResourceWrites,
			HasError:       state.HasError,
			IsMarkdown:     cell.Type == domain.CellTypeMarkdown,
			Summary:        Summarize(cell, state),
		}

		// Data edges: group resolved inputs by their producing node so all
		// names flowing from one source form a single edge.
		byProducer := make(map[int][]string)
		for _, name := range ext.Inputs {
			if j, ok := lastProducer[name]; ok && j < i {
				byProducer[j] = append(byProducer[j], name)
			}
		}
		for _, j := range sortedKeys(byProducer) {
			vars := dedup(byProducer[j])
			graph.Edges = append(graph.Edges, domain.Edge{
				Source: j,
				Target: i,
				Kind:   domain.EdgeKindData,
				Vars:   vars,
			})
			node.InputVars = append(node.InputVars, vars...)
		}
		node.InputVars = dedup(node.InputVars)

		// Resource edges: one edge per (writer, reader) pair, accumulating
		// every matching path.
		byWriter := make(map[int][]string)
		for _, path := range ext.ResourceReads {
			if j, ok := resourceWriter[path]; ok && j != i {
				byWriter[j] = append(byWriter[j], path)
			}
		}
		for _, j := range sortedKeys(byWriter) {
			graph.Edges = append(graph.Edges, domain.Edge{
				Source: j,
				Target: i,
				Kind:   domain.EdgeKindResource,
				Vars:   dedup(byWriter[j]),
			})
		}

		// Only now does this node become visible as a producer, so no
		// later lookup can ever point at itself or forward.
		for _, name := range ext.Outputs {
			lastProducer[name] = i
		}
		for _, path := range ext.ResourceWrites {
			resourceWriter[path] = i
		}

		graph.Nodes = append(graph.Nodes, node)
	}

	b.logger.DebugContext(ctx, "graph built",
		"nodes", len(graph.Nodes),
		"edges", len(graph.Edges),
	)
	return graph
}

func stateAt(states []domain.CellState, i int) domain.CellState {
	if i < len(states) {
		return states[i]
	}
	return domain.CellState{}
}

func sortedKeys(m map[int][]string) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func dedup(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
