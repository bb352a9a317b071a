package parser

import (
	"encoding/json"
	"strings"

	"github.com/scriptlens/scriptlens/internal/types"
	"github.com/scriptlens/scriptlens/internal/validate"
)

// ParseTopology parses topology output, a single JSON document shaped
// {"vertices": [...], "edges": [...]}. A document that is not valid JSON
// degrades to one unparsed line carrying the decoder's message; missing
// top-level keys degrade to unparsed lines as well. Neither is fatal.
func ParseTopology(output string) *types.ParseResult {
	result := &types.ParseResult{
		Kind: types.KindTopology,
		Topology: &types.TopologyResult{
			Vertices: []types.TopologyVertex{},
			Edges:    []types.TopologyEdge{},
		},
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(output), &doc); err != nil {
		result.UnparsedLines = append(result.UnparsedLines, types.UnparsedLine{
			LineNumber: 1,
			Content:    strings.TrimSpace(output),
			Reason:     err.Error(),
		})
		return finish(result)
	}

	if raw, present := doc["vertices"]; !present {
		result.UnparsedLines = append(result.UnparsedLines, types.UnparsedLine{
			LineNumber: 1,
			Content:    "vertices",
			Reason:     "missing vertices key",
		})
	} else if vertices, ok := raw.([]any); !ok {
		result.UnparsedLines = append(result.UnparsedLines, types.UnparsedLine{
			LineNumber: 1,
			Content:    "vertices",
			Reason:     "vertices is not an array",
		})
	} else {
		for _, item := range vertices {
			obj, ok := item.(map[string]any)
			if !ok {
				result.UnparsedLines = append(result.UnparsedLines, types.UnparsedLine{
					LineNumber: 1,
					Content:    anyString(item),
					Reason:     "vertex is not an object",
				})
				continue
			}
			result.Topology.Vertices = append(result.Topology.Vertices, parseVertex(obj))
		}
	}

	if raw, present := doc["edges"]; !present {
		result.UnparsedLines = append(result.UnparsedLines, types.UnparsedLine{
			LineNumber: 1,
			Content:    "edges",
			Reason:     "missing edges key",
		})
	} else if edges, ok := raw.([]any); !ok {
		result.UnparsedLines = append(result.UnparsedLines, types.UnparsedLine{
			LineNumber: 1,
			Content:    "edges",
			Reason:     "edges is not an array",
		})
	} else {
		for _, item := range edges {
			obj, ok := item.(map[string]any)
			if !ok {
				result.UnparsedLines = append(result.UnparsedLines, types.UnparsedLine{
					LineNumber: 1,
					Content:    anyString(item),
					Reason:     "edge is not an object",
				})
				continue
			}
			result.Topology.Edges = append(result.Topology.Edges, parseEdge(obj))
		}
	}

	return finish(result)
}

func parseVertex(obj map[string]any) types.TopologyVertex {
	issues := []types.ValidationIssue{}

	id := anyString(obj["id"])
	name := anyString(obj["name"])
	if id == "" && name == "" {
		issues = append(issues, validate.Errorf(1, "id", "vertex requires an id or name"))
	}

	resolved := id
	if resolved == "" {
		resolved = name
	}
	if resolved == "" {
		resolved = "unknown"
	}

	vertex := types.TopologyVertex{
		ID:     resolved,
		Name:   name,
		Type:   anyString(obj["type"]),
		Issues: issues,
	}
	if props, ok := obj["properties"].(map[string]any); ok {
		vertex.Properties = props
	}
	return vertex
}

// parseEdge validates the from/to endpoints and passes every other field
// through uninterpreted as edge attributes.
func parseEdge(obj map[string]any) types.TopologyEdge {
	issues := []types.ValidationIssue{}

	edge := types.TopologyEdge{
		From: anyString(obj["from"]),
		To:   anyString(obj["to"]),
		Type: anyString(obj["type"]),
	}
	if edge.From == "" {
		issues = append(issues, validate.Errorf(1, "from", "edge requires a from vertex"))
	}
	if edge.To == "" {
		issues = append(issues, validate.Errorf(1, "to", "edge requires a to vertex"))
	}

	for key, value := range obj {
		switch key {
		case "from", "to", "type":
			continue
		}
		if edge.Attributes == nil {
			edge.Attributes = make(map[string]any)
		}
		edge.Attributes[key] = value
	}

	edge.Issues = issues
	return edge
}
