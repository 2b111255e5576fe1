// Package cli wires the carbonfocus command tree: the interactive
// calculator, snapshot management, exports, and factor-dataset tooling.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/carbonfocus/internal/config"
	"github.com/rshade/carbonfocus/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root cobra command for the carbonfocus CLI.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "carbonfocus",
		Short:   "GHG emissions calculator",
		Long:    "CarbonFocus: calculate Scope 1/2/3 greenhouse-gas emissions from activity data and emission factors",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd)
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("factors", "", "path to an emission-factors dataset (overrides config and the embedded default)")
	cmd.PersistentFlags().String("org", "", "organization name for report headers (overrides config)")

	cmd.AddCommand(NewCalcCmd(), newSnapshotCmd(), newExportCmd(), newFactorsCmd())
	return cmd
}

const rootCmdExample = `  # Launch the interactive calculator
  carbonfocus calc

  # Use a custom emission-factors dataset
  carbonfocus calc --factors ./defra-2025.json

  # List saved calculations
  carbonfocus snapshot list

  # Export a saved calculation as a PDF report
  carbonfocus export pdf --snapshot 01JG3QZJ8PV2 --out report.pdf

  # Validate a factors dataset before distributing it
  carbonfocus factors validate ./defra-2025.json`

// setupLogging builds the logger from config plus the --debug flag and
// attaches it to the command context.
func setupLogging(cmd *cobra.Command) {
	cfg := config.New()
	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logCfg.Level = "debug"
		logCfg.Format = "console"
		logCfg.File = ""
	}

	// Piped stderr gets machine-readable output regardless of config.
	if logCfg.Format == "console" && !isTerminal(os.Stderr) {
		logCfg.Format = "json"
	}

	base := logging.New(logCfg)
	logger = logging.ComponentLogger(base, "cli")
	cmd.SetContext(logger.WithContext(cmd.Context()))

	logger.Debug().Str("command", cmd.Name()).Msg("command started")
}

// resolveConfig loads the configuration and applies persistent flag
// overrides.
func resolveConfig(cmd *cobra.Command) *config.Config {
	cfg := config.New()
	if v, _ := cmd.Flags().GetString("factors"); v != "" {
		cfg.Factors.Path = v
	}
	if v, _ := cmd.Flags().GetString("org"); v != "" {
		cfg.Organization = v
	}
	return cfg
}
