package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfocus/internal/calc"
	"github.com/rshade/carbonfocus/internal/equivalency"
)

func testSnapshot(id, name string, total float64) *SavedCalculation {
	return &SavedCalculation{
		ID:   id,
		Name: name,
		Date: time.Now().UTC(),
		Scope1Entries: []*calc.Entry{
			{ID: "e1", Category: "mobile", Source: "diesel", ActivityData: total / 2.5, EmissionFactor: 2.5, Unit: "kg CO2e per liter"},
		},
		Totals:        calc.ScopeTotals{Scope1: total, Total: total},
		Equivalencies: equivalency.Equivalencies{Cars: total * 0.000216},
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	saved := testSnapshot("01TESTSNAPSHOT", "march baseline", 250)
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load(saved.ID)
	require.NoError(t, err)

	assert.Equal(t, saved.Name, loaded.Name)
	assert.Equal(t, saved.Totals.Total, loaded.Totals.Total,
		"loaded totals must match the value at save time exactly")
	require.Len(t, loaded.Scope1Entries, 1)
	assert.Equal(t, saved.Scope1Entries[0].Source, loaded.Scope1Entries[0].Source)
	assert.Equal(t, saved.Equivalencies, loaded.Equivalencies)
}

func TestStoreSnapshotsAreImmutable(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(testSnapshot("01DUPLICATE", "first", 100)))
	err = store.Save(testSnapshot("01DUPLICATE", "second", 999))
	assert.ErrorIs(t, err, ErrSnapshotExists)

	// The original write is untouched.
	loaded, loadErr := store.Load("01DUPLICATE")
	require.NoError(t, loadErr)
	assert.Equal(t, "first", loaded.Name)
}

func TestStoreLoadMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("absent")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestStoreInvalidID(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, store.Save(&SavedCalculation{}), ErrInvalidID)
	_, err = store.Load("")
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, store.Delete(""), ErrInvalidID)
}

func TestStoreListNewestFirst(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	older := testSnapshot("01OLDER", "older", 10)
	older.Date = time.Now().UTC().Add(-time.Hour)
	newer := testSnapshot("01NEWER", "newer", 20)

	require.NoError(t, store.Save(older))
	require.NoError(t, store.Save(newer))

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "newer", list[0].Name)
	assert.Equal(t, "older", list[1].Name)
}

func TestStoreDelete(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	sc := testSnapshot("01DELETE", "goner", 5)
	require.NoError(t, store.Save(sc))
	require.NoError(t, store.Delete(sc.ID))

	_, err = store.Load(sc.ID)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	// Idempotent: deleting again is a no-op.
	assert.NoError(t, store.Delete(sc.ID))
}

func TestStoreIDSanitization(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	sc := testSnapshot("a/b:c", "tricky id", 1)
	require.NoError(t, store.Save(sc))

	loaded, err := store.Load("a/b:c")
	require.NoError(t, err)
	assert.Equal(t, "tricky id", loaded.Name)
}
