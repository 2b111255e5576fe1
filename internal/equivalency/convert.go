// Package equivalency converts a total emissions quantity into relatable
// real-world comparisons: cars driven for a year, tree-years of carbon
// sequestration, home-energy years, smartphone charges, and flight miles.
//
// Conversion factors come from the factors dataset, not from code, so a
// methodology update never requires a rebuild.
package equivalency

import (
	"math"

	"github.com/rshade/carbonfocus/internal/factors"
)

// Equivalencies holds the converted metrics for a total emissions value.
// Values are the raw linear products total × factor; use Rounded for
// display and export.
type Equivalencies struct {
	Cars        float64 `json:"cars"`
	Trees       float64 `json:"trees"`
	Homes       float64 `json:"homes"`
	Smartphones float64 `json:"smartphones"`
	FlightMiles float64 `json:"flightMiles"`
}

// Convert maps a total in kg CO2e to equivalencies using the supplied
// factors. Each field scales linearly with the input. A zero, negative, or
// non-finite total short-circuits to the zero value, which callers treat as
// "nothing to display", not an error.
func Convert(totalKgCO2e float64, f factors.EquivalencyFactors) Equivalencies {
	if totalKgCO2e <= 0 || math.IsNaN(totalKgCO2e) || math.IsInf(totalKgCO2e, 0) {
		return Equivalencies{}
	}
	return Equivalencies{
		Cars:        totalKgCO2e * f.Cars,
		Trees:       totalKgCO2e * f.Trees,
		Homes:       totalKgCO2e * f.Homes,
		Smartphones: totalKgCO2e * f.Smartphones,
		FlightMiles: totalKgCO2e * f.FlightMiles,
	}
}

// IsZero reports whether there is nothing to display.
func (e Equivalencies) IsZero() bool {
	return e.Cars == 0 && e.Trees == 0 && e.Homes == 0 &&
		e.Smartphones == 0 && e.FlightMiles == 0
}

// Rounded returns a copy with every metric rounded to the nearest whole
// unit, the form shown to users and written to exports.
func (e Equivalencies) Rounded() Equivalencies {
	return Equivalencies{
		Cars:        math.Round(e.Cars),
		Trees:       math.Round(e.Trees),
		Homes:       math.Round(e.Homes),
		Smartphones: math.Round(e.Smartphones),
		FlightMiles: math.Round(e.FlightMiles),
	}
}
