package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		entries []*Entry
		want    float64
	}{
		{
			name:    "no entries",
			entries: nil,
			want:    0,
		},
		{
			name: "single entry",
			entries: []*Entry{
				{ID: "a", Source: "diesel", ActivityData: 100, EmissionFactor: 2.5},
			},
			want: 250,
		},
		{
			name: "entry without source contributes zero",
			entries: []*Entry{
				{ID: "a", Source: "", ActivityData: 100, EmissionFactor: 2.5},
				{ID: "b", Source: "petrol", ActivityData: 10, EmissionFactor: 2.0},
			},
			want: 20,
		},
		{
			name: "negative activity clamps to zero",
			entries: []*Entry{
				{ID: "a", Source: "diesel", ActivityData: -50, EmissionFactor: 2.5},
			},
			want: 0,
		},
		{
			name: "NaN activity clamps to zero",
			entries: []*Entry{
				{ID: "a", Source: "diesel", ActivityData: math.NaN(), EmissionFactor: 2.5},
			},
			want: 0,
		},
		{
			name: "mixed valid and invalid",
			entries: []*Entry{
				{ID: "a", Source: "diesel", ActivityData: 10, EmissionFactor: 5},
				{ID: "b", Source: "", ActivityData: 999, EmissionFactor: 99},
				{ID: "c", Source: "petrol", ActivityData: -1, EmissionFactor: 3},
			},
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.entries)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0, "totals must never be negative")

			// Idempotence: a second pass over the same list is identical.
			assert.Equal(t, got, Aggregate(tt.entries))
		})
	}
}

func TestAggregateAll(t *testing.T) {
	scope1 := []*Entry{{ID: "a", Source: "diesel", ActivityData: 10, EmissionFactor: 5}}
	scope2 := []*Entry{{ID: "b", Source: "grid", ActivityData: 4, EmissionFactor: 12.5}}
	var scope3 []*Entry

	totals := AggregateAll(scope1, scope2, scope3)

	assert.InDelta(t, 50.0, totals.Scope1, 1e-9)
	assert.InDelta(t, 50.0, totals.Scope2, 1e-9)
	assert.Zero(t, totals.Scope3)
	assert.InDelta(t, 100.0, totals.Total, 1e-9)
}

func TestAggregateAllAdditivity(t *testing.T) {
	tests := []struct {
		name                   string
		scope1, scope2, scope3 []*Entry
	}{
		{name: "all empty"},
		{
			name:   "one scope populated",
			scope1: []*Entry{{ID: "a", Source: "gas", ActivityData: 100, EmissionFactor: 2.5}},
		},
		{
			name:   "all scopes populated",
			scope1: []*Entry{{ID: "a", Source: "gas", ActivityData: 3, EmissionFactor: 7}},
			scope2: []*Entry{{ID: "b", Source: "grid", ActivityData: 11, EmissionFactor: 0.38}},
			scope3: []*Entry{{ID: "c", Source: "rail", ActivityData: 250, EmissionFactor: 0.035}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := AggregateAll(tt.scope1, tt.scope2, tt.scope3)
			assert.Equal(t, totals.Scope1+totals.Scope2+totals.Scope3, totals.Total,
				"total must be exactly the sum of the three scopes")
		})
	}
}

func TestAggregateAllEmptyScenario(t *testing.T) {
	totals := AggregateAll(nil, nil, nil)
	assert.Equal(t, ScopeTotals{}, totals)
}
