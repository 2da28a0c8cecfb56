package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles of the menu.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
}

// DefaultTheme returns the built-in styles.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")),
	}
}
