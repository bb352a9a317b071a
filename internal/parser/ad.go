package parser

import (
	"strings"

	"github.com/scriptlens/scriptlens/internal/types"
	"github.com/scriptlens/scriptlens/internal/validate"
)

// ParseAD parses active-discovery output. Each non-empty, non-comment line is
// id[##name[##description]][####key=value[&key2=value2...]]. Lines that carry
// no ## delimiter at all are kept as unparsed lines rather than dropped.
func ParseAD(output string) *types.ParseResult {
	result := &types.ParseResult{
		Kind: types.KindAD,
		AD:   &types.ADResult{Instances: []types.ADInstance{}},
	}

	for i, line := range splitLines(output) {
		n := i + 1
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") {
			result.UnparsedLines = append(result.UnparsedLines, types.UnparsedLine{
				LineNumber: n,
				Content:    line,
				Reason:     "Comment line",
			})
			continue
		}
		if !strings.Contains(trimmed, "##") {
			result.UnparsedLines = append(result.UnparsedLines, types.UnparsedLine{
				LineNumber: n,
				Content:    line,
				Reason:     "missing ## delimiter",
			})
			continue
		}
		result.AD.Instances = append(result.AD.Instances, parseADLine(trimmed, line, n))
	}

	return finish(result)
}

// parseADLine splits one instance line: #### separates the positional fields
// from the property list, ## separates the positional fields themselves.
func parseADLine(trimmed, raw string, lineNumber int) types.ADInstance {
	issues := []types.ValidationIssue{}

	main := trimmed
	propsPart := ""
	if idx := strings.Index(trimmed, "####"); idx >= 0 {
		main = trimmed[:idx]
		propsPart = trimmed[idx+len("####"):]
	}

	// Up to three positional fields; anything beyond the description is ignored
	fields := strings.Split(main, "##")
	instance := types.ADInstance{
		ID:         fields[0],
		LineNumber: lineNumber,
		RawLine:    raw,
	}
	if len(fields) > 1 {
		instance.Name = fields[1]
	}
	if len(fields) > 2 {
		instance.Description = fields[2]
	}

	if propsPart != "" {
		props, propIssues := parseADProperties(propsPart, lineNumber)
		instance.Properties = props
		issues = append(issues, propIssues...)
	}

	issues = append(issues, validate.InstanceID(instance.ID, lineNumber)...)
	issues = append(issues, validate.InstanceName(instance.Name, lineNumber)...)
	instance.Issues = issues
	return instance
}

// parseADProperties parses the &-separated key=value list after ####.
// Fragments that are blank or all-# separator noise are skipped; a fragment
// whose first = is missing or at position zero is malformed.
func parseADProperties(propsPart string, lineNumber int) (map[string]string, []types.ValidationIssue) {
	var props map[string]string
	var issues []types.ValidationIssue

	for _, fragment := range strings.Split(propsPart, "&") {
		if strings.TrimSpace(fragment) == "" || strings.Trim(fragment, "#") == "" {
			continue
		}
		idx := strings.Index(fragment, "=")
		if idx <= 0 {
			issues = append(issues, validate.Errorf(lineNumber, "properties", "Invalid property format: %q", fragment))
			continue
		}
		key := fragment[:idx]
		value := fragment[idx+1:]
		if strings.TrimSpace(key) == "" {
			issues = append(issues, validate.Errorf(lineNumber, "properties", "property has an empty key"))
			continue
		}
		if props == nil {
			props = make(map[string]string)
		}
		props[key] = value
	}
	return props, issues
}
