package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/export"
)

// exportFormat distinguishes the two export renderers.
type exportFormat int

const (
	formatCSV exportFormat = iota
	formatPDF
)

// newExportCmd creates the export command group, rendering saved
// calculations without the TUI.
func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "export", Short: "Export a saved calculation"}
	cmd.AddCommand(newExportFileCmd(formatCSV), newExportFileCmd(formatPDF))
	return cmd
}

func newExportFileCmd(format exportFormat) *cobra.Command {
	use, short := "csv", "Export a saved calculation as CSV"
	if format == formatPDF {
		use, short = "pdf", "Export a saved calculation as a PDF report"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, format)
		},
	}
	cmd.Flags().String("snapshot", "", "id of the saved calculation to export")
	cmd.Flags().String("out", "", "output file path (defaults to the standard export name in the current directory)")
	_ = cmd.MarkFlagRequired("snapshot")
	return cmd
}

func runExport(cmd *cobra.Command, format exportFormat) error {
	cfg := resolveConfig(cmd)

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	id, _ := cmd.Flags().GetString("snapshot")
	sc, err := store.Load(id)
	if err != nil {
		return err
	}

	report := export.FromSnapshot(cfg.Organization, sc)
	if report.Totals.Total == 0 {
		return fmt.Errorf("snapshot %s has a zero total, nothing to export", id)
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		if format == formatPDF {
			out = export.PDFFileName(report.Date)
		} else {
			out = export.CSVFileName(report.Date)
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if format == formatPDF {
		err = export.WritePDF(f, report)
	} else {
		err = export.WriteCSV(f, report)
	}
	if err != nil {
		// Never leave a partial file behind.
		f.Close()
		_ = os.Remove(out)
		return err
	}

	logger.Info().Str("snapshot", id).Str("path", out).Msg("export written")
	cmd.Printf("Exported %s\n", out)
	return nil
}
