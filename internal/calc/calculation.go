package calc

import (
	"github.com/rshade/carbonfocus/internal/factors"
)

// Calculation is the explicit state container for one calculator session:
// three independent entry lists plus the read-only dataset used to resolve
// factor selections.
//
// All mutations go through reducer-style methods so the recompute contract
// (entries in, totals out) stays testable without any UI attached. There is
// exactly one logical writer per session, so no locking is needed.
type Calculation struct {
	dataset *factors.Dataset
	entries map[factors.Scope][]*Entry
}

// New creates an empty calculation over the given dataset.
func New(dataset *factors.Dataset) *Calculation {
	return &Calculation{
		dataset: dataset,
		entries: map[factors.Scope][]*Entry{
			factors.Scope1: {},
			factors.Scope2: {},
			factors.Scope3: {},
		},
	}
}

// Dataset returns the dataset backing this calculation.
func (c *Calculation) Dataset() *factors.Dataset {
	return c.dataset
}

// Entries returns the entry list for a scope. The returned slice is the live
// list; callers mutate entries only through Calculation methods.
func (c *Calculation) Entries(scope factors.Scope) []*Entry {
	return c.entries[scope]
}

// AddEntry appends an empty entry for the category and returns it.
func (c *Calculation) AddEntry(scope factors.Scope, categoryID string) *Entry {
	e := NewEntry(categoryID)
	c.entries[scope] = append(c.entries[scope], e)
	return e
}

// RemoveEntry deletes the entry with the given id from a scope. Removing an
// unknown id is a no-op.
func (c *Calculation) RemoveEntry(scope factors.Scope, id string) {
	list := c.entries[scope]
	for i, e := range list {
		if e.ID == id {
			c.entries[scope] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// SetCategory moves an entry to a different category within its scope. The
// source selection is cleared because source keys are scoped to a category;
// keeping the old factor would break the entry invariant. Returns false
// when the entry does not exist.
func (c *Calculation) SetCategory(scope factors.Scope, id, categoryID string) bool {
	e := c.find(scope, id)
	if e == nil {
		return false
	}
	if e.Category != categoryID {
		e.Category = categoryID
		e.ClearSource()
	}
	return true
}

// SetSource selects a source for an entry, re-deriving the snapshotted
// factor and unit from the dataset in the same update. An unknown source
// key clears the selection so a stale factor is never summed. Returns false
// when the entry does not exist.
func (c *Calculation) SetSource(scope factors.Scope, id, sourceKey string) bool {
	e := c.find(scope, id)
	if e == nil {
		return false
	}
	f, ok := c.dataset.Resolve(scope, e.Category, sourceKey)
	if !ok {
		e.ClearSource()
		return true
	}
	e.SetSource(sourceKey, f)
	return true
}

// SetActivityData updates an entry's quantity from raw user input, applying
// the parse-and-clamp rule. Returns false when the entry does not exist.
func (c *Calculation) SetActivityData(scope factors.Scope, id, raw string) bool {
	e := c.find(scope, id)
	if e == nil {
		return false
	}
	e.ActivityData = ParseActivityData(raw)
	return true
}

// Totals recomputes the scope totals from the current entry lists.
func (c *Calculation) Totals() ScopeTotals {
	return AggregateAll(
		c.entries[factors.Scope1],
		c.entries[factors.Scope2],
		c.entries[factors.Scope3],
	)
}

// EntryCount returns the total number of entries across all scopes.
func (c *Calculation) EntryCount() int {
	return len(c.entries[factors.Scope1]) +
		len(c.entries[factors.Scope2]) +
		len(c.entries[factors.Scope3])
}

func (c *Calculation) find(scope factors.Scope, id string) *Entry {
	for _, e := range c.entries[scope] {
		if e.ID == id {
			return e
		}
	}
	return nil
}
