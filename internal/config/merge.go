package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyOrganization = "organization"
	keyLogging      = "logging"
	keyFactors      = "factors"
	keySnapshots    = "snapshots"
)

// knownTopLevelKeys lists the YAML keys that correspond to exported Config
// fields. Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyOrganization: true,
	keyLogging:      true,
	keyFactors:      true,
	keySnapshots:    true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto the
// target Config. Keys present in the overlay replace entire sections in the
// target. Keys absent in the overlay are left unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]interface{}
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	var parsed Config
	if err = yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}
		switch key {
		case keyOrganization:
			target.Organization = parsed.Organization
		case keyLogging:
			target.Logging = parsed.Logging
		case keyFactors:
			target.Factors = parsed.Factors
		case keySnapshots:
			target.Snapshots = parsed.Snapshots
		}
	}

	return nil
}
