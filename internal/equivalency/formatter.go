package equivalency

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display thresholds for abbreviated large-number formatting.
const (
	// LargeNumberThreshold is where counts switch to "~X.X million" format.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold is where counts switch to "~X.X billion" format.
	BillionThreshold = 1_000_000_000
)

// printer is the locale-aware message printer for number formatting.
// English locale gives consistent thousands separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatCount formats an equivalency count for display: rounded to the
// nearest whole unit with thousands separators, abbreviated above a
// million. Example: FormatCount(18248.18) returns "18,248".
func FormatCount(v float64) string {
	if v >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", v/BillionThreshold)
	}
	if v >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", v/LargeNumberThreshold)
	}
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// FormatKg formats an emissions quantity in kg CO2e with two decimal places
// and thousands separators.
func FormatKg(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Describe renders the equivalencies as labeled display lines in a fixed
// order. Returns nil for a zero value, which the caller omits entirely.
func Describe(e Equivalencies) []string {
	if e.IsZero() {
		return nil
	}
	return []string{
		fmt.Sprintf("%s cars driven for a year", FormatCount(e.Cars)),
		fmt.Sprintf("%s tree-years of carbon sequestration", FormatCount(e.Trees)),
		fmt.Sprintf("%s homes' energy use for a year", FormatCount(e.Homes)),
		fmt.Sprintf("%s smartphone charges", FormatCount(e.Smartphones)),
		fmt.Sprintf("%s flight miles", FormatCount(e.FlightMiles)),
	}
}
