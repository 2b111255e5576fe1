// Command carbonfocus is a terminal GHG emissions calculator: activity data
// times emission factors, aggregated across the three GHG Protocol scopes,
// with equivalency conversions, snapshots, and CSV/PDF export.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/carbonfocus/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
