package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/factors"
)

// newFactorsCmd creates the factors command group for inspecting and
// validating emission-factor datasets.
func newFactorsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "factors", Short: "Inspect and validate emission-factor datasets"}
	cmd.AddCommand(newFactorsListCmd(), newFactorsValidateCmd())
	return cmd
}

func newFactorsListCmd() *cobra.Command {
	var scopeFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the emission factors in the active dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := resolveConfig(cmd)
			dataset, err := factors.Load(cfg.Factors.Path)
			if err != nil {
				return fmt.Errorf("loading emission factors: %w", err)
			}

			scopes := factors.Scopes
			if scopeFlag != "" {
				s := factors.Scope(scopeFlag)
				if !s.Valid() {
					return fmt.Errorf("%w: %q (expected scope1, scope2, or scope3)", factors.ErrUnknownScope, scopeFlag)
				}
				scopes = []factors.Scope{s}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SCOPE\tCATEGORY\tSOURCE\tFACTOR\tUNIT")
			for _, scope := range scopes {
				for _, cat := range dataset.CategoriesFor(scope) {
					for _, key := range dataset.Sources(scope, cat.ID) {
						f, _ := dataset.Resolve(scope, cat.ID, key)
						fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%s\n",
							scope.Label(), cat.Label, key, f.Factor, f.Unit)
					}
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&scopeFlag, "scope", "", "restrict output to one scope (scope1, scope2, scope3)")
	return cmd
}

func newFactorsValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate an emission-factors dataset",
		Long: `Validate a dataset the same way the calculator does at startup: every
category must map to factor data, every factor must be a finite non-negative
number, and equivalency conversion factors must be present. Without a path,
the dataset from config (or the embedded default) is validated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				path = resolveConfig(cmd).Factors.Path
			}

			dataset, err := factors.Load(path)
			if err != nil {
				return err
			}

			sources := 0
			for _, scope := range factors.Scopes {
				for _, cat := range dataset.CategoriesFor(scope) {
					sources += len(dataset.Sources(scope, cat.ID))
				}
			}
			cmd.Printf("Dataset is valid: %d emission sources across %d scopes.\n",
				sources, len(factors.Scopes))
			return nil
		},
	}
}
