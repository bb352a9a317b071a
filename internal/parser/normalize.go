package parser

import (
	"regexp"
	"strings"
)

var (
	returnsLinePattern     = regexp.MustCompile(`(?i)^returns\s+\d+$`)
	outputLabelLinePattern = regexp.MustCompile(`(?i)^output:$`)
)

// Normalize strips the execution-harness header from the start of raw script
// output: [Warning: ...] lines, blank lines, an exit-code line ("returns 0"),
// and an "output:" label. The strip is a single left-to-right scan; once a
// line matches none of the header patterns everything after it passes through
// unchanged, even lines that would otherwise look like headers.
func Normalize(output string) string {
	lines := splitLines(output)
	kept := make([]string, 0, len(lines))
	inHeader := true
	for _, line := range lines {
		if inHeader {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" ||
				strings.HasPrefix(trimmed, "[Warning:") ||
				returnsLinePattern.MatchString(trimmed) ||
				outputLabelLinePattern.MatchString(trimmed) {
				continue
			}
			inHeader = false
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
