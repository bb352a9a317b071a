package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/scriptlens/scriptlens/internal/types"
)

// Table implements table formatting
type Table struct{}

// newTableWriter creates a writer with the house style
func newTableWriter(title string) table.Writer {
	w := table.NewWriter()
	w.SetOutputMirror(nil)
	w.SetStyle(table.StyleLight)
	w.Style().Options.SeparateColumns = true
	w.SetTitle(title)
	return w
}

// Format formats a parse result as a set of tables: one summary table, one
// records table per populated variant, and issue/unparsed tables when present
func (t *Table) Format(result *types.ParseResult) (string, error) {
	if result == nil {
		return "", fmt.Errorf("nil parse result")
	}

	sections := []string{summaryTable(result)}

	switch {
	case result.AD != nil:
		sections = append(sections, adTable(result.AD))
	case result.Collection != nil:
		sections = append(sections, collectionTable(result.Collection))
	case result.Topology != nil:
		sections = append(sections, vertexTable(result.Topology), edgeTable(result.Topology))
	case result.Event != nil:
		sections = append(sections, eventTable(result.Event))
	case result.Property != nil:
		sections = append(sections, propertyTable(result.Property))
	case result.Log != nil:
		sections = append(sections, logTable(result.Log))
	case result.Config != nil:
		sections = append(sections, configTable(result.Config))
	case result.ScriptError != nil:
		sections = append(sections, scriptErrorTable(result.ScriptError))
	}

	if issues := issueTable(result); issues != "" {
		sections = append(sections, issues)
	}
	if unparsed := unparsedTable(result); unparsed != "" {
		sections = append(sections, unparsed)
	}

	return strings.Join(sections, "\n\n") + "\n", nil
}

func summaryTable(result *types.ParseResult) string {
	w := newTableWriter("PARSE SUMMARY")
	w.AppendHeader(table.Row{"KIND", "TOTAL", "VALID", "ERRORS", "WARNINGS"})
	w.AppendRow(table.Row{
		result.Kind.String(),
		result.Summary.Total,
		result.Summary.Valid,
		result.Summary.Errors,
		result.Summary.Warnings,
	})
	return w.Render()
}

func adTable(ad *types.ADResult) string {
	w := newTableWriter("DISCOVERED INSTANCES")
	w.AppendHeader(table.Row{"LINE", "ID", "NAME", "DESCRIPTION", "PROPERTIES", "ISSUES"})
	for _, instance := range ad.Instances {
		props := make([]string, 0, len(instance.Properties))
		for key, value := range instance.Properties {
			props = append(props, key+"="+value)
		}
		sort.Strings(props)
		w.AppendRow(table.Row{
			instance.LineNumber,
			instance.ID,
			instance.Name,
			instance.Description,
			strings.Join(props, ","),
			len(instance.Issues),
		})
	}
	w.SortBy([]table.SortBy{{Name: "LINE", Mode: table.AscNumeric}})
	return w.Render()
}

func collectionTable(collection *types.CollectionResult) string {
	w := newTableWriter("DATAPOINTS")
	w.AppendHeader(table.Row{"LINE", "WILDVALUE", "NAME", "VALUE", "RAW VALUE", "ISSUES"})
	for _, dp := range collection.Datapoints {
		value := ""
		if dp.Value != nil {
			value = strconv.FormatFloat(*dp.Value, 'g', -1, 64)
		}
		w.AppendRow(table.Row{dp.LineNumber, dp.Wildvalue, dp.Name, value, dp.RawValue, len(dp.Issues)})
	}
	return w.Render()
}

func vertexTable(topology *types.TopologyResult) string {
	w := newTableWriter("VERTICES")
	w.AppendHeader(table.Row{"ID", "NAME", "TYPE", "ISSUES"})
	for _, vertex := range topology.Vertices {
		w.AppendRow(table.Row{vertex.ID, vertex.Name, vertex.Type, len(vertex.Issues)})
	}
	return w.Render()
}

func edgeTable(topology *types.TopologyResult) string {
	w := newTableWriter("EDGES")
	w.AppendHeader(table.Row{"FROM", "TO", "TYPE", "ISSUES"})
	for _, edge := range topology.Edges {
		w.AppendRow(table.Row{edge.From, edge.To, edge.Type, len(edge.Issues)})
	}
	return w.Render()
}

func eventTable(event *types.EventResult) string {
	w := newTableWriter("EVENTS")
	w.AppendHeader(table.Row{"HAPPENED ON", "SEVERITY", "SOURCE", "MESSAGE", "ISSUES"})
	for _, entry := range event.Events {
		w.AppendRow(table.Row{entry.HappenedOn, entry.Severity, entry.Source, entry.Message, len(entry.Issues)})
	}
	return w.Render()
}

func propertyTable(property *types.PropertyResult) string {
	w := newTableWriter("PROPERTIES")
	w.AppendHeader(table.Row{"LINE", "NAME", "VALUE", "ISSUES"})
	for _, entry := range property.Properties {
		w.AppendRow(table.Row{entry.LineNumber, entry.Name, entry.Value, len(entry.Issues)})
	}
	return w.Render()
}

func logTable(log *types.LogResult) string {
	w := newTableWriter("LOG ENTRIES")
	w.AppendHeader(table.Row{"LINE", "TIMESTAMP", "MESSAGE", "ISSUES"})
	for _, entry := range log.Entries {
		w.AppendRow(table.Row{entry.LineNumber, entry.Timestamp, entry.Message, len(entry.Issues)})
	}
	return w.Render()
}

func configTable(config *types.ConfigResult) string {
	w := newTableWriter("CONFIGURATION")
	w.AppendHeader(table.Row{"BYTES", "LINES"})
	w.AppendRow(table.Row{len(config.Content), len(strings.Split(config.Content, "\n"))})
	return w.Render()
}

func scriptErrorTable(scriptError *types.ScriptErrorResult) string {
	w := newTableWriter("SCRIPT EXECUTION FAILED")
	w.AppendHeader(table.Row{"ERROR", "OUTPUT"})
	w.AppendRow(table.Row{scriptError.ErrorMessage, scriptError.Output})
	return w.Render()
}

func issueTable(result *types.ParseResult) string {
	var rows []table.Row
	for _, issues := range result.IssueLists() {
		for _, issue := range issues {
			rows = append(rows, table.Row{issue.LineNumber, issue.Severity.String(), issue.Field, issue.Message})
		}
	}
	if len(rows) == 0 {
		return ""
	}

	w := newTableWriter("VALIDATION ISSUES")
	w.AppendHeader(table.Row{"LINE", "SEVERITY", "FIELD", "MESSAGE"})
	w.AppendRows(rows)
	w.SortBy([]table.SortBy{{Name: "LINE", Mode: table.AscNumeric}})
	return w.Render()
}

func unparsedTable(result *types.ParseResult) string {
	if len(result.UnparsedLines) == 0 {
		return ""
	}

	w := newTableWriter("UNPARSED LINES")
	w.AppendHeader(table.Row{"LINE", "REASON", "CONTENT"})
	for _, line := range result.UnparsedLines {
		w.AppendRow(table.Row{line.LineNumber, line.Reason, line.Content})
	}
	return w.Render()
}
