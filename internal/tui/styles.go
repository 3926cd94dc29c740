package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary   = lipgloss.Color("#0d47a1")
	highlight = lipgloss.Color("#1565c0")
	muted     = lipgloss.Color("#3d3d3d")
	failure   = lipgloss.Color("#e53935")
	success   = lipgloss.Color("#8BC34A")
)

// Styles groups every style the shell renders with.
type Styles struct {
	Banner       lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Table        lipgloss.Style
	StatusOK     lipgloss.Style
	StatusError  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(primary).
			Padding(0, 2).
			MarginBottom(1),
		Label:        lipgloss.NewStyle().Width(11),
		FocusedLabel: lipgloss.NewStyle().Width(11).Bold(true).Foreground(highlight),
		Table: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(muted),
		StatusOK:    lipgloss.NewStyle().Foreground(success),
		StatusError: lipgloss.NewStyle().Foreground(failure),
	}
}
