package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scriptlens/scriptlens/internal/config"
	"github.com/scriptlens/scriptlens/internal/logger"
)

var (
	configPath string
	debug      bool
)

var cfg = &config.Config{}

var rootCmd = &cobra.Command{
	Use:   "scriptlens",
	Short: "ScriptLens - a script output parser and validator",
	Long: `ScriptLens parses the output a collection script printed to stdout and
turns it into a structured, per-record, severity-annotated result: which
lines are valid, which are malformed, and why - without re-running anything.`,
	SilenceErrors: true, // We'll handle error printing ourselves
	SilenceUsage:  true, // We'll handle usage printing ourselves
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		// Load configuration from file or environment variable
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("error loading configuration: %w", err)
		}

		// flags override config due to highest precedence
		if debug {
			cfg.Debug = true
		}

		// Initialize logger
		logger.Init(cfg)

		// Print configuration source
		if configPath != "" || os.Getenv(config.ScriptLensConfigPathEnvVar) != "" {
			logger.Debug().Msgf("Using config file: %s", configPath)
		} else {
			logger.Debug().Msg("Using default configuration")
		}

		return nil
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: config.yml in current directory)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging and additional debug information")

	// Add commands
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
