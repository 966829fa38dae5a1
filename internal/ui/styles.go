package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Base styles
	BaseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	// Data styles
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// Table styles
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true).
				Align(lipgloss.Left)

	SelectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("240")).
				Foreground(lipgloss.Color("230")).
				Bold(true)
)

// reportStyles are bound to the writer the report goes to, so output that
// is not a terminal stays free of escape sequences.
type reportStyles struct {
	header    lipgloss.Style
	separator lipgloss.Style
}

func newReportStyles(r *lipgloss.Renderer) reportStyles {
	return reportStyles{
		header:    r.NewStyle().Inherit(TableHeaderStyle),
		separator: r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
