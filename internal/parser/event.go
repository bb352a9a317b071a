package parser

import (
	"encoding/json"
	"strings"

	"github.com/scriptlens/scriptlens/internal/types"
	"github.com/scriptlens/scriptlens/internal/validate"
)

// knownEventSeverities are the severity values event consumers understand
var knownEventSeverities = map[string]bool{
	"critical": true,
	"error":    true,
	"warn":     true,
	"info":     true,
	"debug":    true,
}

// ParseEvent parses eventsource output: a JSON array of event objects, or an
// object with an "events" array. Invalid JSON degrades to an unparsed line.
func ParseEvent(output string) *types.ParseResult {
	result := &types.ParseResult{
		Kind:  types.KindEvent,
		Event: &types.EventResult{Events: []types.EventEntry{}},
	}

	entries, errReason := decodeEventDocument(output)
	if errReason != "" {
		result.UnparsedLines = append(result.UnparsedLines, types.UnparsedLine{
			LineNumber: 1,
			Content:    strings.TrimSpace(output),
			Reason:     errReason,
		})
		return finish(result)
	}

	for i, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			result.UnparsedLines = append(result.UnparsedLines, types.UnparsedLine{
				LineNumber: i + 1,
				Content:    anyString(entry),
				Reason:     "event is not an object",
			})
			continue
		}
		result.Event.Events = append(result.Event.Events, parseEventEntry(obj, i+1))
	}

	return finish(result)
}

// decodeEventDocument accepts either a bare array or {"events": [...]}
func decodeEventDocument(output string) ([]any, string) {
	data := []byte(output)

	var entries []any
	if err := json.Unmarshal(data, &entries); err == nil {
		return entries, ""
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err.Error()
	}
	if events, ok := doc["events"].([]any); ok {
		return events, ""
	}
	return nil, "missing events array"
}

func parseEventEntry(obj map[string]any, lineNumber int) types.EventEntry {
	issues := []types.ValidationIssue{}

	event := types.EventEntry{
		HappenedOn: anyString(obj["happenedOn"]),
		Severity:   anyString(obj["severity"]),
		Message:    anyString(obj["message"]),
		Source:     anyString(obj["source"]),
	}

	if event.Message == "" && event.HappenedOn == "" {
		issues = append(issues, validate.Warnf(lineNumber, "message", "event requires a message or happenedOn"))
	}
	if event.Severity != "" && !knownEventSeverities[strings.ToLower(event.Severity)] {
		issues = append(issues, validate.Warnf(lineNumber, "severity", "unrecognized severity %q", event.Severity))
	}

	for key, value := range obj {
		switch key {
		case "happenedOn", "severity", "message", "source":
			continue
		}
		if event.Properties == nil {
			event.Properties = make(map[string]any)
		}
		event.Properties[key] = value
	}

	event.Issues = issues
	return event
}
