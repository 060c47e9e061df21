// Package graph renders the dependency graph as Mermaid flowchart text.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/cellgrid/pkg/domain"
)

// Overlay contains dynamic session state to visualize on the graph.
type Overlay struct {
	RunningIndices []int
	SelectedIndex  int
	ErrorIndices   []int
}

// GenerateMermaid produces Mermaid flowchart syntax for a built graph.
// Shapes carry cell semantics:
// - Markdown: ([Stadium])
// - Code: [Rectangle]
// Data edges are solid and labelled with the variables they carry;
// resource edges are dotted and labelled with the file path.
func GenerateMermaid(g *domain.Graph, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range g.Nodes {
		opener, closer := "[", "]"
		if node.IsMarkdown {
			opener, closer = "([", "])"
		}

		label := escapeLabel(node.Summary)
		if label == "" {
			label = fmt.Sprintf("cell %d", node.Index+1)
		}
		sb.WriteString(fmt.Sprintf("    c%d%s\"%d: %s\"%s\n", node.Index, opener, node.Index+1, label, closer))
	}

	for _, e := range g.Edges {
		arrow := "-->"
		text := strings.Join(e.Vars, ", ")
		if e.Kind == domain.EdgeKindResource {
			arrow = "-.->"
		}
		if text != "" {
			if e.Kind == domain.EdgeKindResource {
				arrow = fmt.Sprintf("-. \"%s\" .->", escapeLabel(text))
			} else {
				arrow = fmt.Sprintf("-- \"%s\" -->", escapeLabel(text))
			}
		}
		sb.WriteString(fmt.Sprintf("    c%d %s c%d\n", e.Source, arrow, e.Target))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for contrast regardless of renderer theme.
		sb.WriteString("    classDef running fill:#fff7cc,stroke:#f59e0b,stroke-width:3px,color:#000;\n")
		sb.WriteString("    classDef selected fill:#e0e7ff,stroke:#4338ca,stroke-width:3px,color:#000;\n")
		sb.WriteString("    classDef failed fill:#fee2e2,stroke:#b91c1c,stroke-width:2px,color:#000;\n")

		for _, i := range overlay.ErrorIndices {
			sb.WriteString(fmt.Sprintf("    class c%d failed;\n", i))
		}
		for _, i := range overlay.RunningIndices {
			sb.WriteString(fmt.Sprintf("    class c%d running;\n", i))
		}
		if overlay.SelectedIndex != domain.NoSelection {
			sb.WriteString(fmt.Sprintf("    class c%d selected;\n", overlay.SelectedIndex))
		}
	}

	return sb.String()
}

// OverlayFromState builds the overlay for a session snapshot.
func OverlayFromState(st *domain.State, g *domain.Graph) *Overlay {
	ov := &Overlay{SelectedIndex: domain.NoSelection}
	if st == nil {
		return ov
	}
	ov.RunningIndices = st.RunningIndices()
	ov.SelectedIndex = st.SelectedIndex
	if g != nil {
		for _, n := range g.Nodes {
			if n.HasError {
				ov.ErrorIndices = append(ov.ErrorIndices, n.Index)
			}
		}
	}
	return ov
}

func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
