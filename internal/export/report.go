// Package export serializes a calculation into downloadable artifacts: a
// CSV file of entries and totals, and a PDF report with a per-scope
// breakdown and equivalencies.
//
// Exporters are read-only transformations: they never mutate the entries or
// totals they are given.
package export

import (
	"fmt"
	"time"

	"github.com/rshade/carbonfocus/internal/calc"
	"github.com/rshade/carbonfocus/internal/equivalency"
	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/snapshot"
)

// Report is the exporter input: entries grouped by scope plus the derived
// totals and equivalencies, with the organization name for the PDF header.
type Report struct {
	Organization  string
	Date          time.Time
	Sections      []ScopeSection
	Totals        calc.ScopeTotals
	Equivalencies equivalency.Equivalencies
}

// ScopeSection groups one scope's entries for rendering.
type ScopeSection struct {
	Scope   factors.Scope
	Entries []*calc.Entry
}

// Build assembles a report from live calculation state.
func Build(organization string, c *calc.Calculation, eq equivalency.Equivalencies) Report {
	return Report{
		Organization:  organization,
		Date:          time.Now().UTC(),
		Sections:      sections(c.Entries(factors.Scope1), c.Entries(factors.Scope2), c.Entries(factors.Scope3)),
		Totals:        c.Totals(),
		Equivalencies: eq,
	}
}

// FromSnapshot assembles a report from a saved calculation, preserving the
// totals recorded at save time.
func FromSnapshot(organization string, sc *snapshot.SavedCalculation) Report {
	return Report{
		Organization:  organization,
		Date:          sc.Date,
		Sections:      sections(sc.Scope1Entries, sc.Scope2Entries, sc.Scope3Entries),
		Totals:        sc.Totals,
		Equivalencies: sc.Equivalencies,
	}
}

func sections(s1, s2, s3 []*calc.Entry) []ScopeSection {
	return []ScopeSection{
		{Scope: factors.Scope1, Entries: s1},
		{Scope: factors.Scope2, Entries: s2},
		{Scope: factors.Scope3, Entries: s3},
	}
}

// CSVFileName returns the download name for a CSV export,
// "ghg-emissions-<ISO-date>.csv".
func CSVFileName(t time.Time) string {
	return fmt.Sprintf("ghg-emissions-%s.csv", t.Format("2006-01-02"))
}

// PDFFileName returns the download name for a PDF export,
// "ghg-emissions-report-<ISO-date>.pdf".
func PDFFileName(t time.Time) string {
	return fmt.Sprintf("ghg-emissions-report-%s.pdf", t.Format("2006-01-02"))
}
