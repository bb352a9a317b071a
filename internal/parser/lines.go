package parser

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// splitLines splits output into lines, tolerating CRLF endings
func splitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// anyString renders a decoded JSON scalar as text. Objects and arrays
// render as compact JSON, nil renders as the empty string.
func anyString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}

// sortedKeys returns the keys of m in lexical order so results derived from
// JSON objects come out in a stable record order
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
