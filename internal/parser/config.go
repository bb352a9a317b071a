package parser

import (
	"strings"

	"github.com/scriptlens/scriptlens/internal/types"
	"github.com/scriptlens/scriptlens/internal/validate"
)

// ParseConfig parses configsource output. The document passes through whole;
// the only check is that the script produced anything at all.
func ParseConfig(output string) *types.ParseResult {
	issues := []types.ValidationIssue{}
	if strings.TrimSpace(output) == "" {
		issues = append(issues, validate.Warnf(1, "content", "configuration output is empty"))
	}

	result := &types.ParseResult{
		Kind: types.KindConfig,
		Config: &types.ConfigResult{
			Content: output,
			Issues:  issues,
		},
	}
	return finish(result)
}
