package tui

import (
	"fmt"
	"strings"

	"github.com/rshade/carbonfocus/internal/calc"
	"github.com/rshade/carbonfocus/internal/equivalency"
	"github.com/rshade/carbonfocus/internal/factors"
)

// shareBarWidth is the character width of the per-scope share bars.
const shareBarWidth = 20

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("CarbonFocus — GHG Emissions Calculator"))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderEntries())
	b.WriteString("\n")
	b.WriteString(m.renderTotals())
	b.WriteString("\n")

	if m.status != "" {
		style := InfoStyle
		if m.statusIsErr {
			style = ErrorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(SubtleStyle.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, 3)
	totals := m.calculation.Totals()
	for i, point := range calc.ToChartSeries(totals) {
		label := fmt.Sprintf("%s (%d)", point.Name, len(m.calculation.Entries(factors.Scopes[i])))
		if i == m.scopeIdx {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, TabStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderEntries() string {
	entries := m.activeEntries()
	if len(entries) == 0 {
		return SubtleStyle.Render("  No entries yet. Press 'a' to add an emission source.") + "\n"
	}

	var b strings.Builder
	for i, e := range entries {
		line := m.renderEntryRow(e, i)
		if i == m.cursor {
			line = SelectedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderEntryRow(e *calc.Entry, idx int) string {
	category := e.Category
	if cat, ok := m.calculation.Dataset().Category(m.activeScope(), e.Category); ok {
		category = cat.Label
	}

	source := e.Source
	if source == "" {
		source = "(choose source with 's')"
	}

	activity := fmt.Sprintf("%g %s", e.ActivityData, e.ActivityUnit())
	if e.Source == "" {
		activity = "—"
	}
	if m.mode == modeEditActivity && idx == m.cursor {
		activity = m.input.View()
	}

	return fmt.Sprintf("%-26s %-26s %-18s = %s kg CO2e",
		category, source, activity, equivalency.FormatKg(e.Emissions()))
}

func (m Model) renderTotals() string {
	totals := m.calculation.Totals()
	series := calc.ToChartSeries(totals)

	var b strings.Builder
	for _, point := range series {
		share := 0.0
		if totals.Total > 0 {
			share = point.Value / totals.Total
		}
		bar := strings.Repeat("█", int(share*shareBarWidth))
		b.WriteString(fmt.Sprintf("%-8s %10s kg CO2e  %-*s %4.0f%%\n",
			point.Name, equivalency.FormatKg(point.Value), shareBarWidth, bar, share*100))
	}
	b.WriteString(TotalStyle.Render(
		fmt.Sprintf("Total    %10s kg CO2e", equivalency.FormatKg(totals.Total))))

	if lines := equivalency.Describe(m.equivalencies().Rounded()); lines != nil {
		b.WriteString("\n\n")
		b.WriteString(SubtleStyle.Render("Equivalent to: " + strings.Join(lines, " · ")))
	}

	if m.mode == modeNameSnapshot {
		b.WriteString("\n\n")
		b.WriteString("Save as: " + m.input.View())
	}

	return BoxStyle.Width(m.width - 4).Render(b.String())
}

func (m Model) helpLine() string {
	switch m.mode {
	case modeEditActivity:
		return "enter: apply · esc: cancel"
	case modeNameSnapshot:
		return "enter: save snapshot · esc: cancel"
	default:
		return "←/→ scope · ↑/↓ select · a add · d delete · c category · s source · " +
			"enter activity · w save · e csv · p pdf · q quit"
	}
}
