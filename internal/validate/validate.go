// Package validate provides the reusable validation predicates and issue
// builders shared by all output parsers.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/scriptlens/scriptlens/internal/types"
)

const (
	// MaxInstanceIDLength is the longest accepted instance id or wildvalue
	MaxInstanceIDLength = 1024
	// MaxInstanceNameLength is the longest instance name before a warning
	MaxInstanceNameLength = 255
)

// strictIDChars are disallowed in instance ids and batch values-wildvalues
const strictIDChars = "=:\\#"

// looseIDChars are disallowed in batch configuration-wildvalues. The '='
// character is intentionally allowed here; the two downstream consumers
// accept different key alphabets.
const looseIDChars = ":#\\"

var (
	datapointNamePattern = regexp.MustCompile(`^[\w.-]+$`)
	propertyNamePattern  = regexp.MustCompile(`^[a-zA-Z_][\w.-]*$`)
)

// containsWhitespace reports whether s contains any unicode whitespace
func containsWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// Issue builds a ValidationIssue
func Issue(severity types.Severity, message string, lineNumber int, field string) types.ValidationIssue {
	return types.ValidationIssue{
		Severity:   severity,
		Message:    message,
		LineNumber: lineNumber,
		Field:      field,
	}
}

// Errorf builds an error-severity issue with a formatted message
func Errorf(lineNumber int, field, format string, args ...any) types.ValidationIssue {
	return Issue(types.SeverityError, fmt.Sprintf(format, args...), lineNumber, field)
}

// Warnf builds a warning-severity issue with a formatted message
func Warnf(lineNumber int, field, format string, args ...any) types.ValidationIssue {
	return Issue(types.SeverityWarning, fmt.Sprintf(format, args...), lineNumber, field)
}

// identifier checks an id-like value against a disallowed character set and
// the shared length limit
func identifier(value, field string, lineNumber int, disallowed string) []types.ValidationIssue {
	var issues []types.ValidationIssue
	if value == "" {
		issues = append(issues, Errorf(lineNumber, field, "%s is required", field))
		return issues
	}
	if len(value) > MaxInstanceIDLength {
		issues = append(issues, Errorf(lineNumber, field, "%s exceeds %d characters", field, MaxInstanceIDLength))
	}
	if strings.ContainsAny(value, disallowed) || containsWhitespace(value) {
		issues = append(issues, Errorf(lineNumber, field, "%s contains invalid characters", field))
	}
	return issues
}

// InstanceID validates an active-discovery instance id
func InstanceID(id string, lineNumber int) []types.ValidationIssue {
	return identifier(id, "id", lineNumber, strictIDChars)
}

// Wildvalue validates a batch wildvalue attached to metric values
func Wildvalue(value string, lineNumber int) []types.ValidationIssue {
	return identifier(value, "wildvalue", lineNumber, strictIDChars)
}

// ConfigWildvalue validates a batch wildvalue attached to a configuration
// blob, which accepts '=' unlike Wildvalue
func ConfigWildvalue(value string, lineNumber int) []types.ValidationIssue {
	return identifier(value, "wildvalue", lineNumber, looseIDChars)
}

// InstanceName validates an active-discovery instance name
func InstanceName(name string, lineNumber int) []types.ValidationIssue {
	if len(name) > MaxInstanceNameLength {
		return []types.ValidationIssue{
			Warnf(lineNumber, "name", "name exceeds %d characters", MaxInstanceNameLength),
		}
	}
	return nil
}

// DatapointName validates a collection datapoint name
func DatapointName(name string, lineNumber int) []types.ValidationIssue {
	if !datapointNamePattern.MatchString(name) {
		return []types.ValidationIssue{
			Warnf(lineNumber, "name", "datapoint name %q contains unexpected characters", name),
		}
	}
	return nil
}

// PropertyName validates a property entry name. An empty name is an error,
// an unconventional name is a warning.
func PropertyName(name string, lineNumber int) []types.ValidationIssue {
	if name == "" {
		return []types.ValidationIssue{
			Errorf(lineNumber, "name", "property name is required"),
		}
	}
	if !propertyNamePattern.MatchString(name) {
		return []types.ValidationIssue{
			Warnf(lineNumber, "name", "property name %q contains unexpected characters", name),
		}
	}
	return nil
}
