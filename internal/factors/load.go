package factors

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// defaultDataset is the dataset compiled into the binary so the calculator
// works without any external files. A user dataset (factors.path in the
// config, or --factors) replaces it wholesale.
//
//go:embed data/emission_factors.json
var defaultDataset []byte

// Load reads and validates an emission-factors dataset. An empty path loads
// the embedded default.
//
// Loading is the one-shot fetch of the session: if it fails, the calculator
// must not start, so callers treat any error as blocking.
func Load(path string) (*Dataset, error) {
	data := defaultDataset
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading factors dataset %s: %w", path, err)
		}
	}
	return Parse(data)
}

// Parse decodes and validates a dataset from raw JSON.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing factors dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("validating factors dataset: %w", err)
	}
	return &ds, nil
}

// Validate checks dataset integrity eagerly so a broken category mapping
// fails at load time with a clear error.
//
// Rules: every category scope must be a known scope, every category dataKey
// must have a non-empty entry in the factor table, every factor must be a
// finite non-negative number, and the equivalency factors must be positive.
func (d *Dataset) Validate() error {
	if len(d.Categories) == 0 {
		return fmt.Errorf("no categories defined")
	}

	for scope, cats := range d.Categories {
		if !scope.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownScope, scope)
		}
		for _, cat := range cats {
			if cat.ID == "" || cat.DataKey == "" {
				return fmt.Errorf("scope %s: category %q missing id or dataKey", scope, cat.Label)
			}
			sources, ok := d.Factors[scope][cat.DataKey]
			if !ok || len(sources) == 0 {
				return fmt.Errorf("%w: scope %s category %q (dataKey %q)",
					ErrMissingCategoryData, scope, cat.ID, cat.DataKey)
			}
			for key, f := range sources {
				if f.Factor < 0 || math.IsNaN(f.Factor) || math.IsInf(f.Factor, 0) {
					return fmt.Errorf("%w: scope %s source %q has factor %v",
						ErrInvalidFactor, scope, key, f.Factor)
				}
				if f.Unit == "" {
					return fmt.Errorf("scope %s source %q has empty unit", scope, key)
				}
			}
		}
	}

	for scope := range d.Factors {
		if !scope.Valid() {
			return fmt.Errorf("%w: %q in factor table", ErrUnknownScope, scope)
		}
	}

	eq := d.Equivalencies.Factors
	if eq.Cars <= 0 || eq.Trees <= 0 || eq.Homes <= 0 || eq.Smartphones <= 0 || eq.FlightMiles <= 0 {
		return ErrNoEquivalencyFactors
	}

	return nil
}
