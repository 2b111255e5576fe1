// Package config loads carbonfocus configuration.
//
// Precedence, lowest to highest: built-in defaults, the YAML file at
// ~/.carbonfocus/config.yaml, CARBONFOCUS_* environment variables, and
// finally any CLI flags applied by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// configDirName is the per-user directory holding config and snapshots.
const configDirName = ".carbonfocus"

// Config is the root configuration structure.
type Config struct {
	// Organization is the name printed on exported reports.
	Organization string `yaml:"organization"`

	Logging   LoggingConfig   `yaml:"logging"`
	Factors   FactorsConfig   `yaml:"factors"`
	Snapshots SnapshotsConfig `yaml:"snapshots"`
}

// LoggingConfig mirrors logging.Config in YAML form.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// FactorsConfig points at the emission-factors dataset.
type FactorsConfig struct {
	// Path overrides the embedded default dataset with a user-supplied JSON
	// file. Empty means use the embedded dataset.
	Path string `yaml:"path"`
}

// SnapshotsConfig controls local snapshot persistence.
type SnapshotsConfig struct {
	// Directory holds saved calculations. Defaults to
	// ~/.carbonfocus/snapshots.
	Directory string `yaml:"directory"`
}

// New returns a Config populated from defaults, the user config file, and
// environment variables. A missing config file is not an error; a malformed
// one is reported by Load callers via the returned error from LoadFile.
func New() *Config {
	cfg := Defaults()

	if path, err := FilePath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			// Best effort: a broken config file falls back to defaults. The
			// CLI surfaces parse errors through `carbonfocus config` tooling
			// rather than refusing to start.
			_ = ShallowMergeYAML(cfg, path)
		}
	}

	applyEnvOverrides(cfg)
	return cfg
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	cfg := &Config{
		Organization: "",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
	if dir, err := Dir(); err == nil {
		cfg.Snapshots.Directory = filepath.Join(dir, "snapshots")
	}
	return cfg
}

// applyEnvOverrides applies CARBONFOCUS_* environment variables on top of cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CARBONFOCUS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("CARBONFOCUS_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("CARBONFOCUS_FACTORS"); v != "" {
		cfg.Factors.Path = v
	}
	if v := os.Getenv("CARBONFOCUS_ORG"); v != "" {
		cfg.Organization = v
	}
	if v := os.Getenv("CARBONFOCUS_SNAPSHOT_DIR"); v != "" {
		cfg.Snapshots.Directory = v
	}
}

// Dir returns the path to the carbonfocus configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// FilePath returns the path to the user config file.
func FilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// EnsureDir creates the configuration directory if it does not exist.
func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// EnsureSnapshotDir creates the snapshot directory if it does not exist.
func (c *Config) EnsureSnapshotDir() error {
	if c.Snapshots.Directory == "" {
		return fmt.Errorf("snapshot directory is not configured")
	}
	return os.MkdirAll(c.Snapshots.Directory, 0700)
}
