package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/equivalency"
	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/snapshot"
)

// newSnapshotCmd creates the snapshot command group.
func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "snapshot", Short: "Manage saved calculations"}
	cmd.AddCommand(newSnapshotListCmd(), newSnapshotShowCmd(), newSnapshotDeleteCmd())
	return cmd
}

// openStore builds the snapshot store from configuration.
func openStore(cmd *cobra.Command) (*snapshot.Store, error) {
	cfg := resolveConfig(cmd)
	store, err := snapshot.NewStore(cfg.Snapshots.Directory)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot store: %w", err)
	}
	return store, nil
}

func newSnapshotListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved calculations, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			snapshots, err := store.List()
			if err != nil {
				return err
			}
			if len(snapshots) == 0 {
				cmd.Println("No saved calculations.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDATE\tTOTAL (kg CO2e)")
			for _, sc := range snapshots {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					sc.ID, sc.Name, sc.Date.Format("2006-01-02 15:04"),
					equivalency.FormatKg(sc.Totals.Total))
			}
			return w.Flush()
		},
	}
}

func newSnapshotShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved calculation's breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			sc, err := store.Load(args[0])
			if err != nil {
				return err
			}

			cmd.Printf("%s — saved %s\n\n", sc.Name, sc.Date.Format("2006-01-02 15:04"))
			for _, scope := range factors.Scopes {
				entries := sc.EntriesFor(scope)
				cmd.Printf("%s:\n", scope.Label())
				if len(entries) == 0 {
					cmd.Println("  (no entries)")
					continue
				}
				for _, e := range entries {
					if e.Source == "" {
						continue
					}
					cmd.Printf("  %-20s %-20s %10g %-14s = %s kg CO2e\n",
						e.Category, e.Source, e.ActivityData, e.ActivityUnit(),
						equivalency.FormatKg(e.Emissions()))
				}
			}

			cmd.Printf("\nScope 1: %s  Scope 2: %s  Scope 3: %s\nTotal:   %s kg CO2e\n",
				equivalency.FormatKg(sc.Totals.Scope1),
				equivalency.FormatKg(sc.Totals.Scope2),
				equivalency.FormatKg(sc.Totals.Scope3),
				equivalency.FormatKg(sc.Totals.Total))

			if lines := equivalency.Describe(sc.Equivalencies.Rounded()); lines != nil {
				cmd.Printf("\nEquivalent to: %s\n", strings.Join(lines, " · "))
			}
			return nil
		},
	}
}

func newSnapshotDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved calculation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			if err := store.Delete(args[0]); err != nil {
				return err
			}
			cmd.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}
