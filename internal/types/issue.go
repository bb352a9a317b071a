package types

// Severity classifies how bad a validation issue is
type Severity string

const (
	// SeverityError marks a record as invalid
	SeverityError Severity = "error"
	// SeverityWarning marks a record as usable but suspicious
	SeverityWarning Severity = "warning"
	// SeverityInfo is reserved for informational annotations
	SeverityInfo Severity = "info"
)

// Implement Stringer for Severity
func (s Severity) String() string {
	return string(s)
}

// ValidationIssue describes a single problem found while validating a record.
// Issues are purely descriptive; parsers never fail because of them.
type ValidationIssue struct {
	// Severity of the issue (error, warning, info)
	Severity Severity `json:"severity" yaml:"severity"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// LineNumber is the 1-based line the issue was found on
	LineNumber int `json:"lineNumber" yaml:"lineNumber"`
	// Field names the record field the issue applies to, if any
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
}

// UnparsedLine records input that no grammar rule consumed
type UnparsedLine struct {
	// LineNumber is the 1-based position of the line in the normalized output
	LineNumber int `json:"lineNumber" yaml:"lineNumber"`
	// Content is the raw line text
	Content string `json:"content" yaml:"content"`
	// Reason explains why the line could not be parsed
	Reason string `json:"reason" yaml:"reason"`
}

// ParseSummary aggregates issue counts across all records in a result
type ParseSummary struct {
	// Total is the number of records in the result (1 for whole-document kinds)
	Total int `json:"total" yaml:"total"`
	// Valid is the number of records with zero error-severity issues
	Valid int `json:"valid" yaml:"valid"`
	// Errors is the number of error-severity issues across all records
	Errors int `json:"errors" yaml:"errors"`
	// Warnings is the number of warning-severity issues across all records
	Warnings int `json:"warnings" yaml:"warnings"`
}
