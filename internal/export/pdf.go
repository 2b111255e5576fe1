package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/rshade/carbonfocus/internal/equivalency"
)

// Page layout constants in millimeters.
const (
	colCategoryWidth = 34.0
	colSourceWidth   = 36.0
	colActivityWidth = 28.0
	colUnitWidth     = 36.0
	colEmissionWidth = 32.0
	rowHeight        = 7.0
	sectionSpacing   = 4.0
)

// methodologyNote is printed under the report title.
const methodologyNote = "Emissions are calculated as activity data multiplied by published " +
	"emission factors, following the GHG Protocol Corporate Standard. Scope 1 covers direct " +
	"emissions, Scope 2 purchased energy, and Scope 3 other indirect value-chain emissions. " +
	"Figures are estimates intended for screening, not compliance reporting."

// WritePDF renders the report as a PDF document. The document is generated
// into memory first and copied to w only on success, so a generation
// failure never leaves a partial file behind.
func WritePDF(w io.Writer, r Report) error {
	var buf bytes.Buffer
	if err := renderPDF(&buf, r); err != nil {
		return err
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing PDF output: %w", err)
	}
	return nil
}

func renderPDF(buf *bytes.Buffer, r Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("GHG Emissions Report", false)
	pdf.AddPage()

	// Title and organization.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "GHG Emissions Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	org := r.Organization
	if org == "" {
		org = "Unnamed organization"
	}
	pdf.CellFormat(0, 6, org, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, r.Date.Format("2006-01-02"), "", 1, "L", false, 0, "")
	pdf.Ln(sectionSpacing)

	// Methodology note.
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 4.5, methodologyNote, "", "L", false)
	pdf.Ln(sectionSpacing)

	// Per-scope breakdown tables.
	for _, section := range r.Sections {
		writeScopeTable(pdf, section)
	}

	// Totals.
	pdf.Ln(sectionSpacing)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, rowHeight,
		fmt.Sprintf("Total emissions: %s kg CO2e", equivalency.FormatKg(r.Totals.Total)),
		"", 1, "L", false, 0, "")

	// Equivalencies section, omitted entirely when there is nothing to show.
	if lines := equivalency.Describe(r.Equivalencies.Rounded()); lines != nil {
		pdf.Ln(sectionSpacing)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, rowHeight, "This is equivalent to:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, line := range lines {
			pdf.CellFormat(0, 6, "- "+line, "", 1, "L", false, 0, "")
		}
	}

	if err := pdf.Output(buf); err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}
	return nil
}

func writeScopeTable(pdf *fpdf.Fpdf, section ScopeSection) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, rowHeight, section.Scope.Label(), "", 1, "L", false, 0, "")

	rows := 0
	pdf.SetFont("Helvetica", "", 9)
	for _, e := range section.Entries {
		if e.Source == "" {
			continue
		}
		if rows == 0 {
			writeTableHeader(pdf)
		}
		pdf.CellFormat(colCategoryWidth, rowHeight, e.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colSourceWidth, rowHeight, e.Source, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colActivityWidth, rowHeight, equivalency.FormatKg(e.ActivityData), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colUnitWidth, rowHeight, e.ActivityUnit(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colEmissionWidth, rowHeight, equivalency.FormatKg(e.Emissions()), "1", 1, "R", false, 0, "")
		rows++
	}

	if rows == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 6, "No entries.", "", 1, "L", false, 0, "")
	} else {
		pdf.SetFont("Helvetica", "B", 9)
		subtotal := 0.0
		for _, e := range section.Entries {
			subtotal += e.Emissions()
		}
		label := fmt.Sprintf("%s subtotal: %s kg CO2e", section.Scope.Label(), equivalency.FormatKg(subtotal))
		pdf.CellFormat(0, rowHeight, label, "", 1, "R", false, 0, "")
	}
	pdf.Ln(sectionSpacing / 2)
}

func writeTableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colCategoryWidth, rowHeight, "Category", "1", 0, "L", false, 0, "")
	pdf.CellFormat(colSourceWidth, rowHeight, "Source", "1", 0, "L", false, 0, "")
	pdf.CellFormat(colActivityWidth, rowHeight, "Activity", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colUnitWidth, rowHeight, "Unit", "1", 0, "L", false, 0, "")
	pdf.CellFormat(colEmissionWidth, rowHeight, "kg CO2e", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
}
