package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfocus/internal/equivalency"
)

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	report := testReport()
	report.Equivalencies = equivalency.Equivalencies{
		Cars: 1, Trees: 12, Homes: 1, Smartphones: 90000, FlightMiles: 3900,
	}

	require.NoError(t, WritePDF(&buf, report))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output must be a PDF document")
	assert.Greater(t, buf.Len(), 1000, "report should contain rendered content")
}

func TestWritePDFWithoutEquivalencies(t *testing.T) {
	// A zero equivalency set omits the section but still renders a document.
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, testReport()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWritePDFDoesNotMutateReport(t *testing.T) {
	report := testReport()
	before := *report.Sections[0].Entries[0]
	beforeTotals := report.Totals

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, report))

	assert.Equal(t, before, *report.Sections[0].Entries[0])
	assert.Equal(t, beforeTotals, report.Totals)
}
