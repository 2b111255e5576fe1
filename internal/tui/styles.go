package tui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for the calculator views.
//
//nolint:gochecknoglobals // Style definitions are package-level by convention.
var (
	// TitleStyle renders the application header.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

	// ActiveTabStyle highlights the selected scope tab.
	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("28")).
			Padding(0, 1)

	// TabStyle renders inactive scope tabs.
	TabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	// SelectedRowStyle highlights the entry under the cursor.
	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("236"))

	// SubtleStyle renders secondary text like help lines and empty states.
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// InfoStyle renders status messages.
	InfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	// ErrorStyle renders soft-failure messages (export/save errors).
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	// TotalStyle renders the grand total line.
	TotalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

	// BoxStyle frames the totals panel.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("28")).
			Padding(0, 1)
)
