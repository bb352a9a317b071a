package parser

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/scriptlens/scriptlens/internal/types"
	"github.com/scriptlens/scriptlens/internal/validate"
)

// leadingTimestampPattern splits an optional ISO-8601-like timestamp off the
// front of a plain-text log line
var leadingTimestampPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:\.\d+)?Z?)\s*(.*)$`)

// timestampLayouts are the accepted forms for JSON log timestamps
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// ParseLog parses logsource output. JSON is tried first: a bare array, or an
// object with a "logs" or "entries" array. When the output is not JSON at all
// the parser falls back to plain-text mode, one entry per non-blank line.
func ParseLog(output string) *types.ParseResult {
	result := &types.ParseResult{
		Kind: types.KindLog,
		Log:  &types.LogResult{Entries: []types.LogEntry{}},
	}

	if entries, ok := decodeLogDocument(output); ok {
		for i, entry := range entries {
			result.Log.Entries = append(result.Log.Entries, parseJSONLogEntry(entry, i+1))
		}
		return finish(result)
	}

	for i, line := range splitLines(output) {
		n := i + 1
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		entry := types.LogEntry{Message: trimmed, LineNumber: n, Issues: []types.ValidationIssue{}}
		if m := leadingTimestampPattern.FindStringSubmatch(trimmed); m != nil {
			entry.Timestamp = m[1]
			entry.Message = m[2]
		}
		result.Log.Entries = append(result.Log.Entries, entry)
	}

	return finish(result)
}

// decodeLogDocument returns the JSON log entries, or ok=false when the output
// is not a recognizable JSON document and plain-text mode should run
func decodeLogDocument(output string) ([]any, bool) {
	data := []byte(output)

	var entries []any
	if err := json.Unmarshal(data, &entries); err == nil {
		return entries, true
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false
	}
	if logs, ok := doc["logs"].([]any); ok {
		return logs, true
	}
	if logs, ok := doc["entries"].([]any); ok {
		return logs, true
	}
	// A lone JSON object is treated as a single entry
	return []any{doc}, true
}

func parseJSONLogEntry(entry any, lineNumber int) types.LogEntry {
	issues := []types.ValidationIssue{}

	if s, ok := entry.(string); ok {
		return types.LogEntry{Message: s, LineNumber: lineNumber, Issues: issues}
	}

	obj, ok := entry.(map[string]any)
	if !ok {
		return types.LogEntry{Message: anyString(entry), LineNumber: lineNumber, Issues: issues}
	}

	message := anyString(obj["message"])
	if message == "" {
		message = anyString(obj["msg"])
	}
	if message == "" {
		message = anyString(obj)
	}

	log := types.LogEntry{Message: message, LineNumber: lineNumber}

	tsRaw, present := obj["timestamp"]
	if !present {
		tsRaw, present = obj["time"]
	}
	if present {
		log.Timestamp = anyString(tsRaw)
		if !parseableTimestamp(log.Timestamp) {
			issues = append(issues, validate.Warnf(lineNumber, "timestamp", "unparseable timestamp %q", log.Timestamp))
		}
	}

	log.Issues = issues
	return log
}

func parseableTimestamp(value string) bool {
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}
