// Package parser turns the raw text a script printed to stdout into a
// structured, severity-annotated ParseResult. Parsing is synchronous and
// side-effect free; malformed input degrades to issues and unparsed lines
// rather than errors.
package parser

import (
	"fmt"

	"github.com/scriptlens/scriptlens/internal/types"
)

// Mode selects the top-level output grammar
type Mode string

const (
	// ModeFreeform disables parsing entirely
	ModeFreeform Mode = "freeform"
	// ModeAD parses active-discovery instance output
	ModeAD Mode = "ad"
	// ModeCollection parses collection output, dispatched by module type
	ModeCollection Mode = "collection"
	// ModeBatchCollection parses batch collection output
	ModeBatchCollection Mode = "batchcollection"
)

// ModuleType selects the grammar for non-batch collection mode
type ModuleType string

const (
	ModuleDatasource       ModuleType = "datasource"
	ModuleConfigsource     ModuleType = "configsource"
	ModuleTopologysource   ModuleType = "topologysource"
	ModulePropertysource   ModuleType = "propertysource"
	ModuleLogsource        ModuleType = "logsource"
	ModuleEventsource      ModuleType = "eventsource"
	ModuleDiagnosticsource ModuleType = "diagnosticsource"
)

// ScriptType distinguishes discovery scripts from collection scripts
type ScriptType string

const (
	ScriptTypeAD         ScriptType = "ad"
	ScriptTypeCollection ScriptType = "collection"
)

// Options selects which format parser runs
type Options struct {
	// Mode is required
	Mode Mode
	// ModuleType refines dispatch in collection mode
	ModuleType ModuleType
	// ScriptType must be "collection" for ModuleType to take effect
	ScriptType ScriptType
}

// Error types for parse operations
var (
	ErrMissingMode = fmt.Errorf("parse options require a mode")
)

// Parse is the engine's entry point. It returns nil (and no error) for
// freeform mode, a script-error result when the raw output reports an
// execution failure, and otherwise the result of exactly one format parser
// run over the normalized output. The only error condition is an unusable
// Options value; malformed script output never produces an error.
func Parse(output string, opts Options) (*types.ParseResult, error) {
	switch opts.Mode {
	case "":
		return nil, ErrMissingMode
	case ModeFreeform:
		return nil, nil
	case ModeAD, ModeCollection, ModeBatchCollection:
	default:
		return nil, fmt.Errorf("unknown mode: %s", opts.Mode)
	}

	// Execution failures are detected on the raw text: the failure message
	// may itself contain lines that look like harness headers.
	if result := DetectScriptError(output); result != nil {
		return result, nil
	}

	normalized := Normalize(output)

	switch opts.Mode {
	case ModeAD:
		return ParseAD(normalized), nil
	case ModeBatchCollection:
		return ParseCollection(normalized, true), nil
	default:
		if opts.ScriptType == ScriptTypeCollection && opts.ModuleType != "" {
			switch opts.ModuleType {
			case ModuleTopologysource:
				return ParseTopology(normalized), nil
			case ModuleEventsource:
				return ParseEvent(normalized), nil
			case ModulePropertysource:
				return ParseProperty(normalized), nil
			case ModuleLogsource:
				return ParseLog(normalized), nil
			case ModuleConfigsource:
				return ParseConfig(normalized), nil
			}
		}
		return ParseCollection(normalized, false), nil
	}
}

// ParseMode parses with a bare mode string and no module/script type.
//
// Deprecated: use Parse with an Options value.
func ParseMode(output string, mode string) (*types.ParseResult, error) {
	return Parse(output, Options{Mode: Mode(mode)})
}
