package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfocus/internal/calc"
	"github.com/rshade/carbonfocus/internal/equivalency"
	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/snapshot"
)

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// seedSnapshot writes one saved calculation into dir and returns its id.
func seedSnapshot(t *testing.T, dir, name string) string {
	t.Helper()

	ds, err := factors.Load("")
	require.NoError(t, err)

	c := calc.New(ds)
	e := c.AddEntry(factors.Scope1, "mobile")
	require.True(t, c.SetSource(factors.Scope1, e.ID, "diesel"))
	c.SetActivityData(factors.Scope1, e.ID, "100")

	store, err := snapshot.NewStore(dir)
	require.NoError(t, err)

	sc := snapshot.Capture(name, c, equivalency.Convert(
		c.Totals().Total, ds.EquivalencyFactors()))
	require.NoError(t, store.Save(sc))
	return sc.ID
}

func TestFactorsValidateEmbedded(t *testing.T) {
	out, err := execute(t, "factors", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Dataset is valid")
}

func TestFactorsValidateRejectsBrokenDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"categories":{"scope9":[]}}`), 0600))

	_, err := execute(t, "factors", "validate", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, factors.ErrUnknownScope)
}

func TestFactorsList(t *testing.T) {
	out, err := execute(t, "factors", "list", "--scope", "scope1")
	require.NoError(t, err)

	assert.Contains(t, out, "diesel")
	assert.Contains(t, out, "Mobile Combustion")
	assert.NotContains(t, out, "grid_average", "scope filter must exclude other scopes")
}

func TestFactorsListUnknownScope(t *testing.T) {
	_, err := execute(t, "factors", "list", "--scope", "scope9")
	assert.ErrorIs(t, err, factors.ErrUnknownScope)
}

func TestSnapshotListEmpty(t *testing.T) {
	t.Setenv("CARBONFOCUS_SNAPSHOT_DIR", t.TempDir())

	out, err := execute(t, "snapshot", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved calculations.")
}

func TestSnapshotListAndShow(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CARBONFOCUS_SNAPSHOT_DIR", dir)
	id := seedSnapshot(t, dir, "march baseline")

	out, err := execute(t, "snapshot", "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "march baseline")
	assert.Contains(t, out, "268.00")

	out, err = execute(t, "snapshot", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "diesel")
	assert.Contains(t, out, "Total:   268.00 kg CO2e")
}

func TestSnapshotShowMissing(t *testing.T) {
	t.Setenv("CARBONFOCUS_SNAPSHOT_DIR", t.TempDir())

	_, err := execute(t, "snapshot", "show", "absent")
	assert.ErrorIs(t, err, snapshot.ErrSnapshotNotFound)
}

func TestSnapshotDelete(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CARBONFOCUS_SNAPSHOT_DIR", dir)
	id := seedSnapshot(t, dir, "goner")

	out, err := execute(t, "snapshot", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted")

	_, err = execute(t, "snapshot", "show", id)
	assert.ErrorIs(t, err, snapshot.ErrSnapshotNotFound)
}

func TestExportCSVFromSnapshot(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CARBONFOCUS_SNAPSHOT_DIR", dir)
	id := seedSnapshot(t, dir, "export me")

	outPath := filepath.Join(t.TempDir(), "report.csv")
	out, err := execute(t, "export", "csv", "--snapshot", id, "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "diesel")
	assert.Contains(t, string(data), "Grand Total")
}

func TestExportPDFFromSnapshot(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CARBONFOCUS_SNAPSHOT_DIR", dir)
	id := seedSnapshot(t, dir, "export me")

	outPath := filepath.Join(t.TempDir(), "report.pdf")
	_, err := execute(t, "export", "pdf", "--snapshot", id, "--out", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportRequiresSnapshotFlag(t *testing.T) {
	_, err := execute(t, "export", "csv")
	require.Error(t, err)
}

func TestExportMissingSnapshot(t *testing.T) {
	t.Setenv("CARBONFOCUS_SNAPSHOT_DIR", t.TempDir())

	_, err := execute(t, "export", "csv", "--snapshot", "absent")
	assert.ErrorIs(t, err, snapshot.ErrSnapshotNotFound)
}
