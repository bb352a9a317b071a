package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scriptlens/scriptlens/internal/formatter"
	"github.com/scriptlens/scriptlens/internal/parser"
	"github.com/scriptlens/scriptlens/internal/source"
)

var (
	parseMode       string
	parseModuleType string
	parseScriptType string
	parseOutputFmt  string
)

var parseCmd = &cobra.Command{
	Use:   "parse [source]",
	Short: "Parse and validate captured script output",
	Long: `Parse the stdout a script produced and report per-record validation
issues. The source is a file path, "-" for stdin, or an http(s) URL.

Examples:
  # Parse active-discovery output from a file
  scriptlens parse discovery.txt --mode ad

  # Parse batch collection output from stdin
  cat output.txt | scriptlens parse - --mode batchcollection

  # Parse topology output fetched from a collector
  scriptlens parse http://collector:8080/last-run.txt --mode collection \
    --script-type collection --module-type topologysource -o json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := source.Factory(args[0])
		if err != nil {
			return fmt.Errorf("invalid source: %w", err)
		}

		output, meta, err := src.Resolve(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to resolve source: %w", err)
		}

		mode := parseMode
		if mode == "" {
			mode = cfg.Parser.DefaultMode
		}
		moduleType := parseModuleType
		if moduleType == "" {
			moduleType = cfg.Parser.DefaultModuleType
		}

		result, err := parser.Parse(output, parser.Options{
			Mode:       parser.Mode(mode),
			ModuleType: parser.ModuleType(moduleType),
			ScriptType: parser.ScriptType(parseScriptType),
		})
		if err != nil {
			return fmt.Errorf("parse failed: %w", err)
		}
		if result == nil {
			fmt.Printf("freeform mode: nothing to parse (%d bytes from %s)\n", len(output), meta.Path)
			return nil
		}

		formatType, err := formatter.ParseType(parseOutputFmt)
		if err != nil {
			return err
		}
		f, err := formatter.NewFormatter(formatType)
		if err != nil {
			return err
		}
		rendered, err := f.Format(result)
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}

		// Validation errors are the product, not a command failure
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	flags := parseCmd.Flags()
	flags.StringVarP(&parseMode, "mode", "m", "",
		"execution mode (freeform, ad, collection, batchcollection)")
	flags.StringVarP(&parseModuleType, "module-type", "t", "",
		"module type for collection mode (datasource, configsource, topologysource, propertysource, logsource, eventsource, diagnosticsource)")
	flags.StringVarP(&parseScriptType, "script-type", "s", "",
		"script type (ad, collection)")
	flags.StringVarP(&parseOutputFmt, "output", "o", "table", "output format (table, json, yaml)")
}
