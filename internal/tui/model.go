// Package tui implements the interactive calculator shell: scope tabs over
// three entry lists, a totals panel with scope shares, an equivalency line,
// and save/export actions.
//
// The shell owns no computation. Every mutation goes through the calc state
// container, and totals, chart data, and equivalencies are re-derived from
// scratch on each render, keeping the core pipeline framework-free.
package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/carbonfocus/internal/calc"
	"github.com/rshade/carbonfocus/internal/equivalency"
	"github.com/rshade/carbonfocus/internal/export"
	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/snapshot"
)

// inputMode tracks what keyboard input currently controls.
type inputMode int

const (
	// modeNavigate is the default mode: keys move the cursor and trigger actions.
	modeNavigate inputMode = iota

	// modeEditActivity routes keys to the activity-data text input.
	modeEditActivity

	// modeNameSnapshot routes keys to the snapshot-name text input.
	modeNameSnapshot
)

// defaultViewWidth is used before the first WindowSizeMsg arrives.
const defaultViewWidth = 80

// Model is the bubbletea model for the calculator shell.
type Model struct {
	calculation  *calc.Calculation
	store        *snapshot.Store
	organization string
	exportDir    string

	scopeIdx int // index into factors.Scopes
	cursor   int // selected entry row within the active scope
	mode     inputMode
	input    textinput.Model
	status   string
	statusIsErr bool
	width    int
}

// NewModel creates the calculator shell over an empty calculation.
// The store may be nil, in which case saving reports a soft failure.
func NewModel(c *calc.Calculation, store *snapshot.Store, organization, exportDir string) Model {
	ti := textinput.New()
	ti.CharLimit = 64
	if exportDir == "" {
		exportDir = "."
	}
	return Model{
		calculation:  c,
		store:        store,
		organization: organization,
		exportDir:    exportDir,
		input:        ti,
		width:        defaultViewWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// activeScope returns the scope shown by the current tab.
func (m Model) activeScope() factors.Scope {
	return factors.Scopes[m.scopeIdx]
}

// activeEntries returns the entry list for the current tab.
func (m Model) activeEntries() []*calc.Entry {
	return m.calculation.Entries(m.activeScope())
}

// selectedEntry returns the entry under the cursor, or nil.
func (m Model) selectedEntry() *calc.Entry {
	entries := m.activeEntries()
	if m.cursor < 0 || m.cursor >= len(entries) {
		return nil
	}
	return entries[m.cursor]
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeEditActivity:
			return m.updateActivityInput(msg)
		case modeNameSnapshot:
			return m.updateSnapshotInput(msg)
		case modeNavigate:
			return m.updateNavigate(msg)
		}
	}
	return m, nil
}

//nolint:gocognit // Key dispatch is a flat switch; splitting it would obscure the keymap.
func (m Model) updateNavigate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.statusIsErr = false

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		if m.scopeIdx > 0 {
			m.scopeIdx--
			m.clampCursor()
		}
	case "right", "l":
		if m.scopeIdx < len(factors.Scopes)-1 {
			m.scopeIdx++
			m.clampCursor()
		}
	case "1", "2", "3":
		m.scopeIdx = int(msg.String()[0] - '1')
		m.clampCursor()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.activeEntries())-1 {
			m.cursor++
		}

	case "a":
		m.addEntry()
	case "d":
		if e := m.selectedEntry(); e != nil {
			m.calculation.RemoveEntry(m.activeScope(), e.ID)
			m.clampCursor()
		}
	case "c":
		m.cycleCategory()
	case "s":
		m.cycleSource()

	case "enter":
		if e := m.selectedEntry(); e != nil {
			m.mode = modeEditActivity
			m.input.Placeholder = "activity data"
			m.input.SetValue(trimZero(e.ActivityData))
			m.input.Focus()
			return m, textinput.Blink
		}

	case "w":
		m.mode = modeNameSnapshot
		m.input.Placeholder = "snapshot name"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "e":
		m.exportReport(false)
	case "p":
		m.exportReport(true)
	}

	return m, nil
}

func (m Model) updateActivityInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if e := m.selectedEntry(); e != nil {
			m.calculation.SetActivityData(m.activeScope(), e.ID, m.input.Value())
		}
		m.mode = modeNavigate
		m.input.Blur()
		return m, nil
	case "esc":
		m.mode = modeNavigate
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateSnapshotInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.saveSnapshot(m.input.Value())
		m.mode = modeNavigate
		m.input.Blur()
		return m, nil
	case "esc":
		m.mode = modeNavigate
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// addEntry creates an empty entry in the active scope's first category and
// moves the cursor to it.
func (m *Model) addEntry() {
	cats := m.calculation.Dataset().CategoriesFor(m.activeScope())
	if len(cats) == 0 {
		return
	}
	m.calculation.AddEntry(m.activeScope(), cats[0].ID)
	m.cursor = len(m.activeEntries()) - 1
}

// cycleCategory advances the selected entry to the next category in the
// scope, clearing its source selection.
func (m *Model) cycleCategory() {
	e := m.selectedEntry()
	if e == nil {
		return
	}
	cats := m.calculation.Dataset().CategoriesFor(m.activeScope())
	for i, c := range cats {
		if c.ID == e.Category {
			next := cats[(i+1)%len(cats)]
			m.calculation.SetCategory(m.activeScope(), e.ID, next.ID)
			return
		}
	}
	if len(cats) > 0 {
		m.calculation.SetCategory(m.activeScope(), e.ID, cats[0].ID)
	}
}

// cycleSource advances the selected entry to the next source within its
// category, snapshotting the new factor and unit.
func (m *Model) cycleSource() {
	e := m.selectedEntry()
	if e == nil {
		return
	}
	sources := m.calculation.Dataset().Sources(m.activeScope(), e.Category)
	if len(sources) == 0 {
		return
	}
	next := sources[0]
	for i, s := range sources {
		if s == e.Source {
			next = sources[(i+1)%len(sources)]
			break
		}
	}
	m.calculation.SetSource(m.activeScope(), e.ID, next)
}

// saveSnapshot captures the current state under a name. Failures are soft:
// the session continues and the error shows in the status line.
func (m *Model) saveSnapshot(name string) {
	if name == "" {
		name = "untitled"
	}
	if m.store == nil {
		m.setError("save failed: no snapshot store configured")
		return
	}
	sc := snapshot.Capture(name, m.calculation, m.equivalencies())
	if err := m.store.Save(sc); err != nil {
		m.setError(fmt.Sprintf("save failed: %v", err))
		return
	}
	m.setStatus(fmt.Sprintf("saved snapshot %s (%s)", sc.ID, name))
}

// exportReport writes a CSV or PDF export of the current state. Export is
// disabled while the total is zero, and failures are soft.
func (m *Model) exportReport(asPDF bool) {
	report := export.Build(m.organization, m.calculation, m.equivalencies())
	if report.Totals.Total == 0 {
		m.setError("nothing to export: total is zero")
		return
	}

	name := export.CSVFileName(report.Date)
	if asPDF {
		name = export.PDFFileName(report.Date)
	}
	path := filepath.Join(m.exportDir, name)

	f, err := os.Create(path)
	if err != nil {
		m.setError(fmt.Sprintf("export failed: %v", err))
		return
	}
	defer f.Close()

	if asPDF {
		err = export.WritePDF(f, report)
	} else {
		err = export.WriteCSV(f, report)
	}
	if err != nil {
		// Remove the partial file so a corrupt export is never left behind.
		_ = os.Remove(path)
		m.setError(fmt.Sprintf("export failed: %v", err))
		return
	}
	m.setStatus("exported " + path)
}

// equivalencies derives the equivalency metrics for the current total.
func (m Model) equivalencies() equivalency.Equivalencies {
	return equivalency.Convert(
		m.calculation.Totals().Total,
		m.calculation.Dataset().EquivalencyFactors(),
	)
}

func (m *Model) clampCursor() {
	if n := len(m.activeEntries()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusIsErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusIsErr = true
}

// trimZero renders an activity value for editing, with "" for zero so the
// placeholder shows instead.
func trimZero(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%g", v)
}
