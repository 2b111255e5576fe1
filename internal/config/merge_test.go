package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML(t *testing.T) {
	t.Run("overlay replaces whole sections", func(t *testing.T) {
		target := Defaults()
		path := writeOverlay(t, `
organization: Acme Corp
logging:
  level: debug
`)

		require.NoError(t, ShallowMergeYAML(target, path))

		assert.Equal(t, "Acme Corp", target.Organization)
		assert.Equal(t, "debug", target.Logging.Level)
		// The logging section was replaced wholesale, not patched field by
		// field.
		assert.Empty(t, target.Logging.Format)
	})

	t.Run("absent keys leave target untouched", func(t *testing.T) {
		target := Defaults()
		wantSnapshots := target.Snapshots
		path := writeOverlay(t, "organization: Acme Corp\n")

		require.NoError(t, ShallowMergeYAML(target, path))

		assert.Equal(t, wantSnapshots, target.Snapshots)
		assert.Equal(t, "info", target.Logging.Level)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		target := Defaults()
		path := writeOverlay(t, "telemetry: true\norganization: Acme Corp\n")

		require.NoError(t, ShallowMergeYAML(target, path))
		assert.Equal(t, "Acme Corp", target.Organization)
	})

	t.Run("empty file is a no-op", func(t *testing.T) {
		target := Defaults()
		path := writeOverlay(t, "# comments only\n")

		require.NoError(t, ShallowMergeYAML(target, path))
		assert.Equal(t, "info", target.Logging.Level)
	})

	t.Run("malformed YAML errors", func(t *testing.T) {
		path := writeOverlay(t, "organization: [unclosed\n")
		assert.Error(t, ShallowMergeYAML(Defaults(), path))
	})

	t.Run("nil target errors", func(t *testing.T) {
		assert.Error(t, ShallowMergeYAML(nil, "ignored"))
	})

	t.Run("missing file errors", func(t *testing.T) {
		assert.Error(t, ShallowMergeYAML(Defaults(), filepath.Join(t.TempDir(), "absent.yaml")))
	})
}
