package parser

import (
	"testing"

	"github.com/scriptlens/scriptlens/internal/types"
)

func TestParseTopology(t *testing.T) {
	result := ParseTopology(`{"vertices":[{"id":"a"}],"edges":[{"from":"a","to":"b"}]}`)
	if result.Kind != types.KindTopology {
		t.Fatalf("Kind = %s, want %s", result.Kind, types.KindTopology)
	}
	if len(result.Topology.Vertices) != 1 || len(result.Topology.Edges) != 1 {
		t.Fatalf("vertices/edges = %d/%d, want 1/1", len(result.Topology.Vertices), len(result.Topology.Edges))
	}
	if result.Summary.Errors != 0 || result.Summary.Warnings != 0 {
		t.Errorf("summary = %+v, want no issues", result.Summary)
	}
	if result.Topology.Vertices[0].ID != "a" {
		t.Errorf("vertex id = %q, want a", result.Topology.Vertices[0].ID)
	}
	edge := result.Topology.Edges[0]
	if edge.From != "a" || edge.To != "b" {
		t.Errorf("edge = %q->%q, want a->b", edge.From, edge.To)
	}
}

func TestParseTopologyMissingVertices(t *testing.T) {
	result := ParseTopology(`{"edges":[{"to":"b"}]}`)
	if len(result.UnparsedLines) != 1 {
		t.Fatalf("unparsed = %+v, want one entry for missing vertices", result.UnparsedLines)
	}
	if result.UnparsedLines[0].Reason != "missing vertices key" {
		t.Errorf("reason = %q", result.UnparsedLines[0].Reason)
	}
	if len(result.Topology.Edges) != 1 {
		t.Fatalf("edges = %d, want 1", len(result.Topology.Edges))
	}
	issues := result.Topology.Edges[0].Issues
	if len(issues) != 1 || issues[0].Severity != types.SeverityError || issues[0].Field != "from" {
		t.Errorf("edge issues = %+v, want one error on from", issues)
	}
}

func TestParseTopologyVertexIdentity(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantID     string
		wantErrors int
	}{
		{
			name:   "id preferred",
			input:  `{"vertices":[{"id":"a","name":"Alpha"}],"edges":[]}`,
			wantID: "a",
		},
		{
			name:   "name fallback",
			input:  `{"vertices":[{"name":"Alpha"}],"edges":[]}`,
			wantID: "Alpha",
		},
		{
			name:       "neither id nor name",
			input:      `{"vertices":[{"type":"host"}],"edges":[]}`,
			wantID:     "unknown",
			wantErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseTopology(tt.input)
			if len(result.Topology.Vertices) != 1 {
				t.Fatalf("vertices = %d, want 1", len(result.Topology.Vertices))
			}
			if got := result.Topology.Vertices[0].ID; got != tt.wantID {
				t.Errorf("ID = %q, want %q", got, tt.wantID)
			}
			if result.Summary.Errors != tt.wantErrors {
				t.Errorf("summary errors = %d, want %d", result.Summary.Errors, tt.wantErrors)
			}
		})
	}
}

func TestParseTopologyEdgeAttributes(t *testing.T) {
	result := ParseTopology(`{"vertices":[],"edges":[{"from":"a","to":"b","type":"uses","weight":3,"instance":"eth0"}]}`)
	edge := result.Topology.Edges[0]
	if edge.Type != "uses" {
		t.Errorf("type = %q, want uses", edge.Type)
	}
	if edge.Attributes["weight"] != float64(3) || edge.Attributes["instance"] != "eth0" {
		t.Errorf("attributes = %+v", edge.Attributes)
	}
}

func TestParseTopologyEdgeMissingBothEndpoints(t *testing.T) {
	result := ParseTopology(`{"vertices":[],"edges":[{"type":"uses"}]}`)
	issues := result.Topology.Edges[0].Issues
	if len(issues) != 2 {
		t.Fatalf("issues = %+v, want two errors (from and to)", issues)
	}
}

func TestParseTopologyInvalidJSON(t *testing.T) {
	result := ParseTopology("not json at all")
	if result.Kind != types.KindTopology {
		t.Fatalf("Kind = %s, want %s", result.Kind, types.KindTopology)
	}
	if len(result.Topology.Vertices) != 0 || len(result.Topology.Edges) != 0 {
		t.Error("expected empty topology for invalid JSON")
	}
	if len(result.UnparsedLines) != 1 {
		t.Fatalf("unparsed = %+v, want one entry", result.UnparsedLines)
	}
	if result.UnparsedLines[0].Reason == "" {
		t.Error("expected the JSON error message as the unparsed reason")
	}
	want := types.ParseSummary{}
	if result.Summary != want {
		t.Errorf("Summary = %+v, want zero values", result.Summary)
	}
}
