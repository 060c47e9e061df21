package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/cellgrid/internal/presentation/graph"
	"github.com/aretw0/cellgrid/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		graph    *domain.Graph
		overlay  *graph.Overlay
		contains []string
	}{
		{
			name: "Code And Markdown Shapes",
			graph: &domain.Graph{
				Nodes: []domain.Node{
					{Index: 0, Summary: "df = load()"},
					{Index: 1, IsMarkdown: true, Summary: "Results"},
				},
			},
			contains: []string{
				`c0["1: df = load()"]`,
				`c1(["2: Results"])`,
			},
		},
		{
			name: "Data Edge With Vars",
			graph: &domain.Graph{
				Nodes: []domain.Node{{Index: 0}, {Index: 1}},
				Edges: []domain.Edge{
					{Source: 0, Target: 1, Kind: domain.EdgeKindData, Vars: []string{"df", "n"}},
				},
			},
			contains: []string{`c0 -- "df, n" --> c1`},
		},
		{
			name: "Resource Edge Is Dotted",
			graph: &domain.Graph{
				Nodes: []domain.Node{{Index: 0}, {Index: 1}},
				Edges: []domain.Edge{
					{Source: 0, Target: 1, Kind: domain.EdgeKindResource, Vars: []string{"out.csv"}},
				},
			},
			contains: []string{`c0 -. "out.csv" .-> c1`},
		},
		{
			name: "Label Escaping",
			graph: &domain.Graph{
				Nodes: []domain.Node{{Index: 0, Summary: `print("hi")`}},
			},
			contains: []string{`c0["1: print('hi')"]`},
		},
		{
			name: "Empty Summary Falls Back To Cell Number",
			graph: &domain.Graph{
				Nodes: []domain.Node{{Index: 2}},
			},
			contains: []string{`c2["3: cell 3"]`},
		},
		{
			name: "Overlay Classes",
			graph: &domain.Graph{
				Nodes: []domain.Node{{Index: 0}, {Index: 1}, {Index: 2}},
			},
			overlay: &graph.Overlay{
				RunningIndices: []int{1},
				SelectedIndex:  2,
				ErrorIndices:   []int{0},
			},
			contains: []string{
				"class c0 failed;",
				"class c1 running;",
				"class c2 selected;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.graph, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
		})
	}
}

func TestOverlayFromState(t *testing.T) {
	st := domain.NewState("demo.ipynb")
	st.SelectedIndex = 1
	st.Running[3] = true
	st.Running[0] = true

	g := &domain.Graph{Nodes: []domain.Node{{Index: 0}, {Index: 1, HasError: true}}}

	ov := graph.OverlayFromState(st, g)
	if got, want := len(ov.RunningIndices), 2; got != want {
		t.Fatalf("running count = %d, want %d", got, want)
	}
	if ov.RunningIndices[0] != 0 || ov.RunningIndices[1] != 3 {
		t.Errorf("running = %v, want [0 3]", ov.RunningIndices)
	}
	if ov.SelectedIndex != 1 {
		t.Errorf("selected = %d, want 1", ov.SelectedIndex)
	}
	if len(ov.ErrorIndices) != 1 || ov.ErrorIndices[0] != 1 {
		t.Errorf("errors = %v, want [1]", ov.ErrorIndices)
	}
}

func TestOverlayFromState_Nil(t *testing.T) {
	ov := graph.OverlayFromState(nil, nil)
	if ov.SelectedIndex != domain.NoSelection {
		t.Errorf("selected = %d, want NoSelection", ov.SelectedIndex)
	}
}
