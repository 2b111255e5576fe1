package calc

import "github.com/rshade/carbonfocus/internal/factors"

// ChartPoint is one element of a generic {name, value} series consumed by
// chart renderers.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ToChartSeries shapes scope totals into a fixed-length series: exactly
// three points in Scope 1/2/3 order, zeros included. Consumers rely on the
// stable length and ordering.
func ToChartSeries(totals ScopeTotals) []ChartPoint {
	return []ChartPoint{
		{Name: factors.Scope1.Label(), Value: totals.Scope1},
		{Name: factors.Scope2.Label(), Value: totals.Scope2},
		{Name: factors.Scope3.Label(), Value: totals.Scope3},
	}
}
