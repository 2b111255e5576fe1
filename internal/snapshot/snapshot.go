// Package snapshot persists named calculation snapshots as JSON files in a
// local directory. Snapshots are immutable once written and never expire;
// save failures are soft errors the UI reports without losing session state.
package snapshot

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/carbonfocus/internal/calc"
	"github.com/rshade/carbonfocus/internal/equivalency"
	"github.com/rshade/carbonfocus/internal/factors"
)

// SavedCalculation is one snapshot: the full entry set plus the derived
// totals and equivalencies at save time.
type SavedCalculation struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`

	Scope1Entries []*calc.Entry `json:"scope1Entries"`
	Scope2Entries []*calc.Entry `json:"scope2Entries"`
	Scope3Entries []*calc.Entry `json:"scope3Entries"`

	Totals        calc.ScopeTotals          `json:"totals"`
	Equivalencies equivalency.Equivalencies `json:"equivalencies"`
}

// Capture builds a snapshot of the current calculation state. Derived data
// is recorded as-is so a loaded snapshot reproduces the totals at save time
// exactly.
func Capture(name string, c *calc.Calculation, eq equivalency.Equivalencies) *SavedCalculation {
	totals := c.Totals()
	return &SavedCalculation{
		ID:            ulid.Make().String(),
		Name:          name,
		Date:          time.Now().UTC(),
		Scope1Entries: c.Entries(factors.Scope1),
		Scope2Entries: c.Entries(factors.Scope2),
		Scope3Entries: c.Entries(factors.Scope3),
		Totals:        totals,
		Equivalencies: eq,
	}
}

// EntriesFor returns the snapshot's entry list for a scope.
func (s *SavedCalculation) EntriesFor(scope factors.Scope) []*calc.Entry {
	switch scope {
	case factors.Scope1:
		return s.Scope1Entries
	case factors.Scope2:
		return s.Scope2Entries
	case factors.Scope3:
		return s.Scope3Entries
	default:
		return nil
	}
}
