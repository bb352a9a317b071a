package formatter

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/scriptlens/scriptlens/internal/types"
)

// Formatter defines the interface for formatting parse results
type Formatter interface {
	Format(result *types.ParseResult) (string, error)
}

// Type represents the type of formatter
type Type string

const (
	// TypeJSON formats results as JSON
	TypeJSON Type = "json"
	// TypeYAML formats results as YAML
	TypeYAML Type = "yaml"
	// TypeTable formats results as tables
	TypeTable Type = "table"
)

// JSON implements JSON formatting
type JSON struct{}

// YAML implements YAML formatting
type YAML struct{}

// Format formats a parse result as JSON
func (j *JSON) Format(result *types.ParseResult) (string, error) {
	bytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting as JSON: %w", err)
	}
	return string(bytes), nil
}

// Format formats a parse result as YAML
func (y *YAML) Format(result *types.ParseResult) (string, error) {
	bytes, err := yaml.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("error formatting as YAML: %w", err)
	}
	return string(bytes), nil
}

// ParseType converts a string to a Type
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeJSON, TypeYAML, TypeTable:
		return Type(s), nil
	default:
		return "", fmt.Errorf("unknown formatter type: %s", s)
	}
}

// NewFormatter creates a new formatter of the specified type
func NewFormatter(t Type) (Formatter, error) {
	switch t {
	case TypeJSON:
		return &JSON{}, nil
	case TypeYAML:
		return &YAML{}, nil
	case TypeTable:
		return &Table{}, nil
	default:
		return nil, fmt.Errorf("unknown formatter type: %s", t)
	}
}
