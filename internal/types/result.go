package types

// ResultKind identifies which variant of ParseResult is populated
type ResultKind string

const (
	// KindAD is the active-discovery variant
	KindAD ResultKind = "ad"
	// KindCollection is the non-batch collection variant
	KindCollection ResultKind = "collection"
	// KindBatchCollection is the batch collection variant
	KindBatchCollection ResultKind = "batchcollection"
	// KindTopology is the topology variant
	KindTopology ResultKind = "topology"
	// KindEvent is the event variant
	KindEvent ResultKind = "event"
	// KindProperty is the property variant
	KindProperty ResultKind = "property"
	// KindLog is the log variant
	KindLog ResultKind = "log"
	// KindConfig is the whole-document config variant
	KindConfig ResultKind = "config"
	// KindScriptError is the whole-document script-failure variant
	KindScriptError ResultKind = "script_error"
)

// Implement Stringer for ResultKind
func (k ResultKind) String() string {
	return string(k)
}

// ADResult holds active-discovery instances
type ADResult struct {
	Instances []ADInstance `json:"instances" yaml:"instances"`
}

// CollectionResult holds collection datapoints (batch or non-batch,
// distinguished by the enclosing result kind)
type CollectionResult struct {
	Datapoints []CollectionDatapoint `json:"datapoints" yaml:"datapoints"`
}

// TopologyResult holds topology vertices and edges
type TopologyResult struct {
	Vertices []TopologyVertex `json:"vertices" yaml:"vertices"`
	Edges    []TopologyEdge   `json:"edges" yaml:"edges"`
}

// EventResult holds event entries
type EventResult struct {
	Events []EventEntry `json:"events" yaml:"events"`
}

// PropertyResult holds property entries
type PropertyResult struct {
	Properties []PropertyEntry `json:"properties" yaml:"properties"`
}

// LogResult holds log entries
type LogResult struct {
	Entries []LogEntry `json:"entries" yaml:"entries"`
}

// ConfigResult is the whole-document config variant
type ConfigResult struct {
	// Content is the entire normalized output, passed through unmodified
	Content string            `json:"content" yaml:"content"`
	Issues  []ValidationIssue `json:"issues" yaml:"issues"`
}

// ScriptErrorResult reports that the script itself failed to execute
type ScriptErrorResult struct {
	// ErrorMessage is the extracted failure message
	ErrorMessage string `json:"errorMessage" yaml:"errorMessage"`
	// Output is any script output captured alongside the failure
	Output string            `json:"output" yaml:"output"`
	Issues []ValidationIssue `json:"issues" yaml:"issues"`
}

// ParseResult is the outcome of parsing one script output. It is a closed
// tagged union: Kind names the variant and exactly one variant pointer is
// non-nil. UnparsedLines is empty for the two whole-document kinds.
type ParseResult struct {
	Kind ResultKind `json:"kind" yaml:"kind"`

	AD          *ADResult          `json:"ad,omitempty" yaml:"ad,omitempty"`
	Collection  *CollectionResult  `json:"collection,omitempty" yaml:"collection,omitempty"`
	Topology    *TopologyResult    `json:"topology,omitempty" yaml:"topology,omitempty"`
	Event       *EventResult       `json:"event,omitempty" yaml:"event,omitempty"`
	Property    *PropertyResult    `json:"property,omitempty" yaml:"property,omitempty"`
	Log         *LogResult         `json:"log,omitempty" yaml:"log,omitempty"`
	Config      *ConfigResult      `json:"config,omitempty" yaml:"config,omitempty"`
	ScriptError *ScriptErrorResult `json:"scriptError,omitempty" yaml:"scriptError,omitempty"`

	UnparsedLines []UnparsedLine `json:"unparsedLines,omitempty" yaml:"unparsedLines,omitempty"`
	Summary       ParseSummary   `json:"summary" yaml:"summary"`
}

// IssueLists returns the per-record issue slices of the populated variant,
// one slice per record, in record order. Whole-document kinds contribute a
// single slice.
func (r *ParseResult) IssueLists() [][]ValidationIssue {
	var lists [][]ValidationIssue
	switch {
	case r.AD != nil:
		for i := range r.AD.Instances {
			lists = append(lists, r.AD.Instances[i].Issues)
		}
	case r.Collection != nil:
		for i := range r.Collection.Datapoints {
			lists = append(lists, r.Collection.Datapoints[i].Issues)
		}
	case r.Topology != nil:
		for i := range r.Topology.Vertices {
			lists = append(lists, r.Topology.Vertices[i].Issues)
		}
		for i := range r.Topology.Edges {
			lists = append(lists, r.Topology.Edges[i].Issues)
		}
	case r.Event != nil:
		for i := range r.Event.Events {
			lists = append(lists, r.Event.Events[i].Issues)
		}
	case r.Property != nil:
		for i := range r.Property.Properties {
			lists = append(lists, r.Property.Properties[i].Issues)
		}
	case r.Log != nil:
		for i := range r.Log.Entries {
			lists = append(lists, r.Log.Entries[i].Issues)
		}
	case r.Config != nil:
		lists = append(lists, r.Config.Issues)
	case r.ScriptError != nil:
		lists = append(lists, r.ScriptError.Issues)
	}
	return lists
}
