package parser

import (
	"strings"
	"testing"

	"github.com/scriptlens/scriptlens/internal/types"
)

func issuesBySeverity(issues []types.ValidationIssue, severity types.Severity) []types.ValidationIssue {
	var out []types.ValidationIssue
	for _, issue := range issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

func TestParseAD(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantInstances int
		wantUnparsed  int
		wantErrors    int
		wantWarnings  int
	}{
		{
			name:          "id and name",
			input:         "abc##Router1",
			wantInstances: 1,
		},
		{
			name:          "id name description",
			input:         "abc##Router1##core switch",
			wantInstances: 1,
		},
		{
			name:          "properties",
			input:         "abc##Router1####location=dc1&owner=netops",
			wantInstances: 1,
		},
		{
			name:          "space in id",
			input:         "bad id##x",
			wantInstances: 1,
			wantErrors:    1,
		},
		{
			name:          "missing delimiter",
			input:         "loneid",
			wantUnparsed:  1,
		},
		{
			name:          "comment lines",
			input:         "# header comment\n// another\nabc##x",
			wantInstances: 1,
			wantUnparsed:  2,
		},
		{
			name:          "invalid property fragment",
			input:         "abc##x####novalue",
			wantInstances: 1,
			wantErrors:    1,
		},
		{
			name:          "long name warns",
			input:         "abc##" + strings.Repeat("n", 300),
			wantInstances: 1,
			wantWarnings:  1,
		},
		{
			name:          "blank lines skipped",
			input:         "\n\nabc##x\n\n",
			wantInstances: 1,
		},
		{
			name:          "extra positional fields ignored",
			input:         "abc##name##desc##extra##more",
			wantInstances: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseAD(tt.input)
			if result.Kind != types.KindAD {
				t.Fatalf("Kind = %s, want %s", result.Kind, types.KindAD)
			}
			if got := len(result.AD.Instances); got != tt.wantInstances {
				t.Errorf("instances = %d, want %d", got, tt.wantInstances)
			}
			if got := len(result.UnparsedLines); got != tt.wantUnparsed {
				t.Errorf("unparsed = %d, want %d", got, tt.wantUnparsed)
			}
			if result.Summary.Errors != tt.wantErrors {
				t.Errorf("summary errors = %d, want %d", result.Summary.Errors, tt.wantErrors)
			}
			if result.Summary.Warnings != tt.wantWarnings {
				t.Errorf("summary warnings = %d, want %d", result.Summary.Warnings, tt.wantWarnings)
			}
		})
	}
}

func TestParseADFields(t *testing.T) {
	result := ParseAD("abc##Router1##edge router####location=dc1&rack=r12")
	if len(result.AD.Instances) != 1 {
		t.Fatalf("instances = %d, want 1", len(result.AD.Instances))
	}
	instance := result.AD.Instances[0]
	if instance.ID != "abc" || instance.Name != "Router1" || instance.Description != "edge router" {
		t.Errorf("fields = %q/%q/%q", instance.ID, instance.Name, instance.Description)
	}
	if instance.Properties["location"] != "dc1" || instance.Properties["rack"] != "r12" {
		t.Errorf("properties = %+v", instance.Properties)
	}
	if instance.LineNumber != 1 {
		t.Errorf("lineNumber = %d, want 1", instance.LineNumber)
	}
	if len(instance.Issues) != 0 {
		t.Errorf("issues = %+v, want none", instance.Issues)
	}
}

func TestParseADInvalidIDField(t *testing.T) {
	result := ParseAD("bad id##x")
	instance := result.AD.Instances[0]
	errors := issuesBySeverity(instance.Issues, types.SeverityError)
	if len(errors) != 1 {
		t.Fatalf("error issues = %+v, want exactly one", instance.Issues)
	}
	if errors[0].Field != "id" {
		t.Errorf("field = %q, want id", errors[0].Field)
	}
}

func TestParseADIDLengthBoundary(t *testing.T) {
	atLimit := strings.Repeat("a", 1024)
	result := ParseAD(atLimit + "##x")
	if result.Summary.Errors != 0 {
		t.Errorf("1024-char id should pass, got %d errors", result.Summary.Errors)
	}

	overLimit := strings.Repeat("a", 1025)
	result = ParseAD(overLimit + "##x")
	if result.Summary.Errors != 1 {
		t.Errorf("1025-char id should fail, got %d errors", result.Summary.Errors)
	}
}

func TestParseADUnparsedReasons(t *testing.T) {
	result := ParseAD("# comment\nplain")
	if len(result.UnparsedLines) != 2 {
		t.Fatalf("unparsed = %+v, want 2 entries", result.UnparsedLines)
	}
	if result.UnparsedLines[0].Reason != "Comment line" {
		t.Errorf("reason = %q, want Comment line", result.UnparsedLines[0].Reason)
	}
	if result.UnparsedLines[1].Reason != "missing ## delimiter" {
		t.Errorf("reason = %q, want missing ## delimiter", result.UnparsedLines[1].Reason)
	}
}
