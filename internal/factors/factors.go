// Package factors provides the emission-factor dataset: a hierarchical,
// read-only lookup table mapping scope, category, and source to a numeric
// emission factor and its activity unit.
//
// The dataset is loaded once at session start, either from the embedded
// default or from a user-supplied JSON file, and validated eagerly so that a
// broken category mapping fails fast instead of silently yielding empty
// source lists.
package factors

import (
	"sort"
	"strings"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Dataset validation and lookup errors.
var (
	// ErrUnknownScope indicates a scope outside scope1/scope2/scope3.
	ErrUnknownScope = constError("unknown emission scope")

	// ErrMissingCategoryData indicates a category whose dataKey has no entry
	// in the factor table.
	ErrMissingCategoryData = constError("category has no factor data")

	// ErrNoEquivalencyFactors indicates a dataset without equivalency
	// conversion factors.
	ErrNoEquivalencyFactors = constError("equivalency factors missing or non-positive")

	// ErrInvalidFactor indicates a negative or non-finite emission factor.
	ErrInvalidFactor = constError("emission factor must be a non-negative number")
)

// Scope identifies one of the three GHG Protocol emission scopes.
type Scope string

// The three GHG Protocol scopes.
const (
	Scope1 Scope = "scope1"
	Scope2 Scope = "scope2"
	Scope3 Scope = "scope3"
)

// Scopes lists all scopes in protocol order.
//
//nolint:gochecknoglobals // Fixed enumeration of the three GHG scopes.
var Scopes = []Scope{Scope1, Scope2, Scope3}

// Label returns the display name for the scope ("Scope 1" etc.).
func (s Scope) Label() string {
	switch s {
	case Scope1:
		return "Scope 1"
	case Scope2:
		return "Scope 2"
	case Scope3:
		return "Scope 3"
	default:
		return string(s)
	}
}

// Valid reports whether s is one of the three known scopes.
func (s Scope) Valid() bool {
	return s == Scope1 || s == Scope2 || s == Scope3
}

// EmissionFactor is one row of the lookup table: a multiplier converting an
// activity quantity into kg CO2e, plus display metadata.
type EmissionFactor struct {
	// Factor is the emissions per unit of activity, in kg CO2e.
	Factor float64 `json:"factor"`

	// Unit is the composite unit string, e.g. "kg CO2e per liter". The
	// portion after "per" is the activity unit shown to the user.
	Unit string `json:"unit"`

	// Description and Source are optional human-readable metadata.
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"`
}

// ActivityUnit returns the activity portion of the unit string, i.e. the
// text after "per" ("liter" for "kg CO2e per liter"). Returns the full unit
// when no "per" separator is present.
func (f EmissionFactor) ActivityUnit() string {
	const sep = " per "
	if i := strings.Index(f.Unit, sep); i >= 0 {
		return strings.TrimSpace(f.Unit[i+len(sep):])
	}
	return f.Unit
}

// Category describes one emission category within a scope.
type Category struct {
	// ID is the stable identifier used by entries ("stationary").
	ID string `json:"id"`

	// Label is the display name ("Stationary Combustion").
	Label string `json:"label"`

	// DataKey indexes the factor table for this category
	// ("stationary_combustion"). Validated against the table at load time.
	DataKey string `json:"dataKey"`
}

// EquivalencyFactors are the fixed conversion factors applied to a total
// emissions quantity to derive relatable comparisons. Each field is the
// per-kg-CO2e multiplier for its metric.
type EquivalencyFactors struct {
	Cars        float64 `json:"cars"`
	Trees       float64 `json:"trees"`
	Homes       float64 `json:"homes"`
	Smartphones float64 `json:"smartphones"`
	FlightMiles float64 `json:"flightMiles"`
}

// Dataset is the full emission-factors resource. It is immutable for the
// lifetime of a calculation session.
type Dataset struct {
	// Categories lists the categories available per scope, in display order.
	Categories map[Scope][]Category `json:"categories"`

	// Factors maps scope -> category dataKey -> source key -> factor.
	Factors map[Scope]map[string]map[string]EmissionFactor `json:"emissionFactors"`

	// Equivalencies carries the conversion factors for the equivalency
	// converter.
	Equivalencies struct {
		Factors EquivalencyFactors `json:"factors"`
	} `json:"equivalencies"`
}

// CategoriesFor returns the categories defined for a scope, in dataset order.
func (d *Dataset) CategoriesFor(scope Scope) []Category {
	return d.Categories[scope]
}

// Category returns the category with the given ID within a scope.
func (d *Dataset) Category(scope Scope, categoryID string) (Category, bool) {
	for _, c := range d.Categories[scope] {
		if c.ID == categoryID {
			return c, true
		}
	}
	return Category{}, false
}

// Resolve looks up the emission factor for (scope, categoryID, sourceKey).
// The second return value reports presence; callers treat an absent factor
// as an incomplete selection that contributes nothing to totals.
func (d *Dataset) Resolve(scope Scope, categoryID, sourceKey string) (EmissionFactor, bool) {
	cat, ok := d.Category(scope, categoryID)
	if !ok {
		return EmissionFactor{}, false
	}
	sources, ok := d.Factors[scope][cat.DataKey]
	if !ok {
		return EmissionFactor{}, false
	}
	f, ok := sources[sourceKey]
	return f, ok
}

// Sources returns the source keys available for a category, sorted for a
// stable presentation order.
func (d *Dataset) Sources(scope Scope, categoryID string) []string {
	cat, ok := d.Category(scope, categoryID)
	if !ok {
		return nil
	}
	sources := d.Factors[scope][cat.DataKey]
	keys := make([]string, 0, len(sources))
	for k := range sources {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EquivalencyFactors returns the dataset's equivalency conversion factors.
func (d *Dataset) EquivalencyFactors() EquivalencyFactors {
	return d.Equivalencies.Factors
}
