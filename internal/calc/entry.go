// Package calc implements the GHG calculation core: the entry model, the
// per-scope aggregator, the calculation state container, and the chart-data
// shaper.
//
// Everything here is a pure, synchronous transformation. Totals are never
// cached; they are recomputed from the entry lists on every read, so there
// is no invalidation state to get wrong.
package calc

import (
	"math"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/carbonfocus/internal/factors"
)

// Entry is the atomic unit of user input: one activity row within a scope.
//
// Invariant: EmissionFactor and Unit always mirror the factor data of the
// current Source. SetSource re-derives both in the same update; a factor
// paired with a different source is a correctness bug.
type Entry struct {
	// ID is a ULID assigned at creation.
	ID string `json:"id"`

	// Category is the category identifier within the scope ("electricity").
	Category string `json:"category"`

	// Source is the selected factor key within the category. Empty until
	// the user chooses one; an entry without a source contributes nothing.
	Source string `json:"source"`

	// ActivityData is the user-supplied quantity. Values below zero are
	// clamped at the aggregation boundary.
	ActivityData float64 `json:"activityData"`

	// EmissionFactor is snapshotted from the dataset when Source is set.
	EmissionFactor float64 `json:"emissionFactor"`

	// Unit is the snapshotted display unit ("kg CO2e per liter").
	Unit string `json:"unit"`
}

// NewEntry creates an empty entry for a category. The source is unset; the
// entry contributes nothing until one is chosen.
func NewEntry(categoryID string) *Entry {
	return &Entry{
		ID:       ulid.Make().String(),
		Category: categoryID,
	}
}

// SetSource records a source selection, snapshotting the factor and unit in
// the same update so the entry never carries a stale pairing.
func (e *Entry) SetSource(sourceKey string, f factors.EmissionFactor) {
	e.Source = sourceKey
	e.EmissionFactor = f.Factor
	e.Unit = f.Unit
}

// ClearSource marks the entry's selection incomplete again.
func (e *Entry) ClearSource() {
	e.Source = ""
	e.EmissionFactor = 0
	e.Unit = ""
}

// Emissions returns the entry's contribution in kg CO2e. Entries without a
// source contribute exactly 0; invalid activity data is clamped to 0.
func (e *Entry) Emissions() float64 {
	if e.Source == "" {
		return 0
	}
	return ClampActivity(e.ActivityData) * e.EmissionFactor
}

// ActivityUnit returns the activity portion of the snapshotted unit string
// ("liter" for "kg CO2e per liter").
func (e *Entry) ActivityUnit() string {
	return factors.EmissionFactor{Unit: e.Unit}.ActivityUnit()
}

// ClampActivity applies the defensive clamp at the aggregation boundary:
// negative, NaN, or infinite quantities count as 0 rather than propagating
// into totals.
func ClampActivity(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseActivityData converts raw user input to an activity quantity.
// Unparsable or negative input yields 0 rather than an error.
func ParseActivityData(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return ClampActivity(v)
}
