package parser

import (
	"strings"

	"github.com/scriptlens/scriptlens/internal/types"
	"github.com/scriptlens/scriptlens/internal/validate"
)

// ParseProperty parses propertysource output, one name=value pair per line.
// A line without an = separator is unparsed; an empty name is an error on the
// entry itself. Re-defining a name flags the second and later occurrences.
func ParseProperty(output string) *types.ParseResult {
	result := &types.ParseResult{
		Kind:     types.KindProperty,
		Property: &types.PropertyResult{Properties: []types.PropertyEntry{}},
	}

	seen := make(map[string]bool)
	for i, line := range splitLines(output) {
		n := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}
		idx := strings.Index(line, "=")
		if idx < 0 {
			result.UnparsedLines = append(result.UnparsedLines, types.UnparsedLine{
				LineNumber: n,
				Content:    line,
				Reason:     "missing = separator",
			})
			continue
		}

		entry := types.PropertyEntry{
			Name:       strings.TrimSpace(line[:idx]),
			Value:      strings.TrimSpace(line[idx+1:]),
			LineNumber: n,
			RawLine:    line,
		}

		issues := []types.ValidationIssue{}
		issues = append(issues, validate.PropertyName(entry.Name, n)...)
		if entry.Name != "" {
			if seen[entry.Name] {
				issues = append(issues, validate.Warnf(n, "name", "duplicate property %q", entry.Name))
			}
			seen[entry.Name] = true
		}

		entry.Issues = issues
		result.Property.Properties = append(result.Property.Properties, entry)
	}

	return finish(result)
}
