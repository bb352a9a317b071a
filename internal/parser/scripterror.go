package parser

import (
	"regexp"
	"strings"

	"github.com/scriptlens/scriptlens/internal/types"
	"github.com/scriptlens/scriptlens/internal/validate"
)

// execErrorPattern recognizes the executor's failure banner. The message runs
// up to an optional "output:" marker line; everything after that marker is the
// captured script output.
var execErrorPattern = regexp.MustCompile(`(?is)error when executing the script\s*[-–—]\s*(.*?)(?:\n\s*output:\s*\n(.*))?\s*$`)

// DetectScriptError recognizes "the script failed to execute" responses in
// raw, un-normalized output. It must run before Normalize because the failure
// message itself may contain lines that look like harness headers. Returns
// nil when the output does not describe an execution failure.
func DetectScriptError(output string) *types.ParseResult {
	if m := execErrorPattern.FindStringSubmatch(output); m != nil {
		message := strings.TrimSpace(m[1])
		if message == "" {
			message = "Unknown error"
		}
		return scriptErrorResult(message, strings.TrimSpace(m[2]))
	}

	trimmed := strings.TrimSpace(output)
	for _, prefix := range []string{"Error:", "ERROR:"} {
		if strings.HasPrefix(trimmed, prefix) {
			message := strings.TrimPrefix(trimmed, prefix)
			if idx := strings.IndexByte(message, '\n'); idx >= 0 {
				message = message[:idx]
			}
			return scriptErrorResult(strings.TrimSpace(message), trimmed)
		}
	}
	return nil
}

func scriptErrorResult(message, output string) *types.ParseResult {
	result := &types.ParseResult{
		Kind: types.KindScriptError,
		ScriptError: &types.ScriptErrorResult{
			ErrorMessage: message,
			Output:       output,
			Issues: []types.ValidationIssue{
				validate.Issue(types.SeverityError, message, 1, ""),
			},
		},
	}
	result.Summary = summarize(result.IssueLists())
	return result
}
