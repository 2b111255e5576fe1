package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/calc"
	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/snapshot"
	"github.com/rshade/carbonfocus/internal/tui"
)

// NewCalcCmd creates the "calc" subcommand that launches the interactive
// calculator.
func NewCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Launch the interactive emissions calculator",
		Long: `Launch the interactive calculator: three scope tabs over independent entry
lists, with live totals, equivalencies, and CSV/PDF export.

The emission-factors dataset is loaded before the calculator starts. If
loading fails, the command exits with an error instead of presenting an
empty calculator.`,
		RunE: runCalc,
	}
	cmd.Flags().String("export-dir", ".", "directory where CSV/PDF exports are written")
	return cmd
}

func runCalc(cmd *cobra.Command, _ []string) error {
	cfg := resolveConfig(cmd)

	// The one-shot factors fetch of the session. A failure here is blocking:
	// the calculator never renders input controls over a missing dataset.
	dataset, err := factors.Load(cfg.Factors.Path)
	if err != nil {
		return fmt.Errorf("loading emission factors: %w", err)
	}
	logger.Debug().Str("path", cfg.Factors.Path).Msg("emission factors loaded")

	// Snapshot saving is a soft feature: if the store cannot be created the
	// session still runs, and saves report failure in the status line.
	var store *snapshot.Store
	if storeErr := cfg.EnsureSnapshotDir(); storeErr != nil {
		logger.Warn().Err(storeErr).Msg("snapshot directory unavailable, saving disabled")
	} else if store, storeErr = snapshot.NewStore(cfg.Snapshots.Directory); storeErr != nil {
		logger.Warn().Err(storeErr).Msg("snapshot store unavailable, saving disabled")
		store = nil
	}

	exportDir, _ := cmd.Flags().GetString("export-dir")
	model := tui.NewModel(calc.New(dataset), store, cfg.Organization, exportDir)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running calculator: %w", err)
	}
	return nil
}
