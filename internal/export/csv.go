package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvColumns is the deterministic column order for entry rows.
//
//nolint:gochecknoglobals // Fixed header row.
var csvColumns = []string{
	"Scope", "Category", "Source", "Activity Data", "Unit", "Emission Factor", "Emissions (kg CO2e)",
}

// WriteCSV serializes the report as comma-separated text: one row per entry
// with a selected source, then a summary section with per-scope and grand
// totals. Numeric values use two decimal places so exported files carry no
// floating-point noise.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, section := range r.Sections {
		for _, e := range section.Entries {
			if e.Source == "" {
				continue
			}
			row := []string{
				section.Scope.Label(),
				e.Category,
				e.Source,
				formatFixed(e.ActivityData),
				e.Unit,
				formatFixed(e.EmissionFactor),
				formatFixed(e.Emissions()),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing CSV row: %w", err)
			}
		}
	}

	summary := [][2]string{
		{"Scope 1 Total", formatFixed(r.Totals.Scope1)},
		{"Scope 2 Total", formatFixed(r.Totals.Scope2)},
		{"Scope 3 Total", formatFixed(r.Totals.Scope3)},
		{"Grand Total", formatFixed(r.Totals.Total)},
	}

	if err := cw.Write(blankRow()); err != nil {
		return fmt.Errorf("writing CSV separator: %w", err)
	}
	for _, line := range summary {
		row := blankRow()
		row[0] = line[0]
		row[len(row)-1] = line[1]
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV summary: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatFixed renders a number with exactly two decimal places.
func formatFixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// blankRow returns an empty row with the standard column count, keeping the
// file rectangular for strict CSV readers.
func blankRow() []string {
	return make([]string, len(csvColumns))
}
