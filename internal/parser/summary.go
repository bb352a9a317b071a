package parser

import "github.com/scriptlens/scriptlens/internal/types"

// summarize folds per-record issue lists into totals. Every parser finishes
// with the same fold: errors and warnings count individual issues, valid
// counts records that carry no error-severity issue.
func summarize(lists [][]types.ValidationIssue) types.ParseSummary {
	summary := types.ParseSummary{Total: len(lists)}
	for _, issues := range lists {
		hasError := false
		for _, issue := range issues {
			switch issue.Severity {
			case types.SeverityError:
				summary.Errors++
				hasError = true
			case types.SeverityWarning:
				summary.Warnings++
			}
		}
		if !hasError {
			summary.Valid++
		}
	}
	return summary
}

// finish computes the summary on a fully-populated result
func finish(result *types.ParseResult) *types.ParseResult {
	result.Summary = summarize(result.IssueLists())
	return result
}
