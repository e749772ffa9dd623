package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/evolt-dev/evolt/models"
)

// styles holds the lipgloss styles for the active theme.
type styles struct {
	app     lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	help    lipgloss.Style
	overlay lipgloss.Style
}

func newStyles(theme models.Theme) styles {
	accent := lipgloss.Color("28") // green, matches the brand color
	text := lipgloss.Color("235")
	faint := lipgloss.Color("243")
	if theme == models.ThemeDark {
		text = lipgloss.Color("252")
		faint = lipgloss.Color("245")
	}

	return styles{
		app:     lipgloss.NewStyle().Padding(1, 2).Foreground(text),
		title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		label:   lipgloss.NewStyle().Foreground(text),
		help:    lipgloss.NewStyle().Faint(true).Foreground(faint),
		overlay: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}
