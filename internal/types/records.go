package types

// ADInstance is a single discovered instance from active discovery output
type ADInstance struct {
	// ID is the instance identifier (first ## field)
	ID string `json:"id" yaml:"id"`
	// Name is the optional display name (second ## field)
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Description is the optional third ## field
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Properties holds instance-level key=value pairs (after ####)
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
	// LineNumber is the 1-based source line of this instance
	LineNumber int `json:"lineNumber" yaml:"lineNumber"`
	// RawLine is the original line text
	RawLine string `json:"rawLine" yaml:"rawLine"`
	// Issues found while validating this instance
	Issues []ValidationIssue `json:"issues" yaml:"issues"`
}

// CollectionDatapoint is a single metric value from collection output
type CollectionDatapoint struct {
	// Name is the datapoint name
	Name string `json:"name" yaml:"name"`
	// Value is the numeric value, nil when coercion failed
	Value *float64 `json:"value" yaml:"value"`
	// RawValue is the uncoerced value text
	RawValue string `json:"rawValue" yaml:"rawValue"`
	// Wildvalue attributes the datapoint to a discovered instance (batch mode)
	Wildvalue string `json:"wildvalue,omitempty" yaml:"wildvalue,omitempty"`
	// LineNumber is the 1-based source line, 1 for JSON-derived datapoints
	LineNumber int `json:"lineNumber" yaml:"lineNumber"`
	// RawLine is the original line text, empty for JSON-derived datapoints
	RawLine string `json:"rawLine,omitempty" yaml:"rawLine,omitempty"`
	// Issues found while validating this datapoint
	Issues []ValidationIssue `json:"issues" yaml:"issues"`
}

// TopologyVertex is a node in topology output
type TopologyVertex struct {
	ID         string            `json:"id" yaml:"id"`
	Name       string            `json:"name,omitempty" yaml:"name,omitempty"`
	Type       string            `json:"type,omitempty" yaml:"type,omitempty"`
	Properties map[string]any    `json:"properties,omitempty" yaml:"properties,omitempty"`
	Issues     []ValidationIssue `json:"issues" yaml:"issues"`
}

// TopologyEdge is a connection between two vertices in topology output.
// Attributes carries any extra edge fields through uninterpreted.
type TopologyEdge struct {
	From       string            `json:"from" yaml:"from"`
	To         string            `json:"to" yaml:"to"`
	Type       string            `json:"type,omitempty" yaml:"type,omitempty"`
	Attributes map[string]any    `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Issues     []ValidationIssue `json:"issues" yaml:"issues"`
}

// EventEntry is a single event from eventsource output
type EventEntry struct {
	HappenedOn string            `json:"happenedOn,omitempty" yaml:"happenedOn,omitempty"`
	Severity   string            `json:"severity,omitempty" yaml:"severity,omitempty"`
	Message    string            `json:"message,omitempty" yaml:"message,omitempty"`
	Source     string            `json:"source,omitempty" yaml:"source,omitempty"`
	Properties map[string]any    `json:"properties,omitempty" yaml:"properties,omitempty"`
	Issues     []ValidationIssue `json:"issues" yaml:"issues"`
}

// PropertyEntry is a single name=value pair from propertysource output
type PropertyEntry struct {
	Name       string            `json:"name" yaml:"name"`
	Value      string            `json:"value" yaml:"value"`
	LineNumber int               `json:"lineNumber" yaml:"lineNumber"`
	RawLine    string            `json:"rawLine" yaml:"rawLine"`
	Issues     []ValidationIssue `json:"issues" yaml:"issues"`
}

// LogEntry is a single log line or JSON log record from logsource output
type LogEntry struct {
	// Timestamp is the entry timestamp as text, empty when absent
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	// Message is the log message
	Message    string            `json:"message" yaml:"message"`
	LineNumber int               `json:"lineNumber" yaml:"lineNumber"`
	Issues     []ValidationIssue `json:"issues" yaml:"issues"`
}
