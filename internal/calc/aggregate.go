package calc

// ScopeTotals holds the per-scope and grand-total emissions in kg CO2e.
// Always derived from the entry lists, never stored independently.
type ScopeTotals struct {
	Scope1 float64 `json:"scope1"`
	Scope2 float64 `json:"scope2"`
	Scope3 float64 `json:"scope3"`
	Total  float64 `json:"total"`
}

// Aggregate sums activityData × emissionFactor over the entries. Entries
// missing a source contribute 0, and invalid activity data is clamped, so
// the result is always finite and non-negative.
//
// Pure and idempotent: safe to call on every keystroke.
func Aggregate(entries []*Entry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.Emissions()
	}
	return sum
}

// AggregateAll applies Aggregate per scope and sums the grand total. The
// three lists are independent; Total is exactly Scope1 + Scope2 + Scope3.
func AggregateAll(scope1, scope2, scope3 []*Entry) ScopeTotals {
	t := ScopeTotals{
		Scope1: Aggregate(scope1),
		Scope2: Aggregate(scope2),
		Scope3: Aggregate(scope3),
	}
	t.Total = t.Scope1 + t.Scope2 + t.Scope3
	return t
}
