package parser

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/scriptlens/scriptlens/internal/types"
	"github.com/scriptlens/scriptlens/internal/validate"
)

// ParseCollection parses collection output. Non-batch output is name=value
// per line. Batch output is tried as the JSON form first and falls back to
// wildvalue.name=value line parsing when the document is not usable JSON.
func ParseCollection(output string, batch bool) *types.ParseResult {
	kind := types.KindCollection
	if batch {
		kind = types.KindBatchCollection
	}
	result := &types.ParseResult{
		Kind:       kind,
		Collection: &types.CollectionResult{Datapoints: []types.CollectionDatapoint{}},
	}

	if batch && strings.HasPrefix(strings.TrimSpace(output), "{") {
		if parseBatchJSON(output, result) {
			return finish(result)
		}
		// Not the JSON form after all; fall through to line parsing
	}

	for i, line := range splitLines(output) {
		n := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}
		idx := strings.Index(line, "=")
		if idx <= 0 {
			result.UnparsedLines = append(result.UnparsedLines, types.UnparsedLine{
				LineNumber: n,
				Content:    line,
				Reason:     "missing = separator",
			})
			continue
		}
		key := strings.TrimSpace(line[:idx])
		rawValue := strings.TrimSpace(line[idx+1:])
		result.Collection.Datapoints = append(result.Collection.Datapoints,
			parseDatapointLine(key, rawValue, line, n, batch))
	}

	return finish(result)
}

// parseDatapointLine builds one datapoint from a key=value line. In batch
// mode the key must carry a wildvalue prefix; the wildvalue is everything up
// to the last dot so dotted instance keys like 10.0.0.1 stay intact.
func parseDatapointLine(key, rawValue, raw string, lineNumber int, batch bool) types.CollectionDatapoint {
	issues := []types.ValidationIssue{}

	dp := types.CollectionDatapoint{
		Name:       key,
		RawValue:   rawValue,
		LineNumber: lineNumber,
		RawLine:    raw,
	}

	if batch {
		if dot := strings.LastIndex(key, "."); dot >= 0 {
			dp.Wildvalue = key[:dot]
			dp.Name = key[dot+1:]
			issues = append(issues, validate.Wildvalue(dp.Wildvalue, lineNumber)...)
		} else {
			issues = append(issues, validate.Errorf(lineNumber, "wildvalue", "datapoint %q requires wildvalue prefix", key))
		}
	}

	issues = append(issues, validate.DatapointName(dp.Name, lineNumber)...)

	if issue, ok := coerceValue(&dp, rawValue, lineNumber); !ok {
		issues = append(issues, issue)
	}

	dp.Issues = issues
	return dp
}

// coerceValue sets the datapoint's numeric value from its raw text. Values
// that coerce to a non-finite float are rejected like non-numeric ones:
// results must round-trip through JSON, which has no encoding for them.
func coerceValue(dp *types.CollectionDatapoint, rawValue string, lineNumber int) (types.ValidationIssue, bool) {
	value, ok := validate.ParseNumber(rawValue)
	if !ok {
		return validate.Errorf(lineNumber, "value", "value %q is not numeric", rawValue), false
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return validate.Errorf(lineNumber, "value", "value %q is not a finite number", rawValue), false
	}
	dp.Value = &value
	return types.ValidationIssue{}, true
}

// parseBatchJSON parses the batch JSON form:
//
//	{"data": {"<wildvalue>": {"values": {"metric": 42}}}}
//	{"data": {"<wildvalue>": {"configuration": "..."}}}
//
// Returns false when the document is not valid JSON or has no data object,
// in which case the caller falls back to line parsing.
func parseBatchJSON(output string, result *types.ParseResult) bool {
	var doc map[string]any
	if err := json.Unmarshal([]byte(output), &doc); err != nil {
		return false
	}
	data, ok := doc["data"].(map[string]any)
	if !ok {
		return false
	}

	for _, wildvalue := range sortedKeys(data) {
		instance, ok := data[wildvalue].(map[string]any)
		if !ok {
			result.UnparsedLines = append(result.UnparsedLines, types.UnparsedLine{
				LineNumber: 1,
				Content:    wildvalue,
				Reason:     "instance payload is not an object",
			})
			continue
		}

		if values, ok := instance["values"].(map[string]any); ok {
			for _, metric := range sortedKeys(values) {
				result.Collection.Datapoints = append(result.Collection.Datapoints,
					batchValueDatapoint(wildvalue, metric, values[metric]))
			}
			continue
		}

		if configuration, ok := instance["configuration"].(string); ok {
			result.Collection.Datapoints = append(result.Collection.Datapoints,
				batchConfigurationDatapoint(wildvalue, configuration))
			continue
		}

		result.UnparsedLines = append(result.UnparsedLines, types.UnparsedLine{
			LineNumber: 1,
			Content:    wildvalue,
			Reason:     "instance has no values or configuration",
		})
	}
	return true
}

func batchValueDatapoint(wildvalue, metric string, raw any) types.CollectionDatapoint {
	issues := []types.ValidationIssue{}
	issues = append(issues, validate.Wildvalue(wildvalue, 1)...)
	issues = append(issues, validate.DatapointName(metric, 1)...)

	dp := types.CollectionDatapoint{
		Name:       metric,
		Wildvalue:  wildvalue,
		RawValue:   anyString(raw),
		LineNumber: 1,
	}

	switch v := raw.(type) {
	case float64:
		dp.Value = &v
	case string:
		if issue, ok := coerceValue(&dp, v, 1); !ok {
			issues = append(issues, issue)
		}
	default:
		issues = append(issues, validate.Errorf(1, "value", "value %q is not numeric", dp.RawValue))
	}

	dp.Issues = issues
	return dp
}

// batchConfigurationDatapoint handles the configuration shape. Its wildvalue
// alphabet is looser than the values shape, and an empty configuration blob
// is flagged but still usable.
func batchConfigurationDatapoint(wildvalue, configuration string) types.CollectionDatapoint {
	issues := []types.ValidationIssue{}
	issues = append(issues, validate.ConfigWildvalue(wildvalue, 1)...)
	if strings.TrimSpace(configuration) == "" {
		issues = append(issues, validate.Warnf(1, "value", "configuration is empty"))
	}

	return types.CollectionDatapoint{
		Name:       "configuration",
		Wildvalue:  wildvalue,
		RawValue:   configuration,
		LineNumber: 1,
		Issues:     issues,
	}
}
