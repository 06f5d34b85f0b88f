package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/coinsim/internal/ui"
)

// Style variables for the dashboard, rebuilt from the ui theme by
// initTUIStyles.
var (
	panelStyle         lipgloss.Style
	titleStyle         lipgloss.Style
	dimStyle           lipgloss.Style
	labelStyle         lipgloss.Style
	valueStyle         lipgloss.Style
	sparklineStyle     lipgloss.Style
	statusRunningStyle lipgloss.Style
	statusDoneStyle    lipgloss.Style
	statusErrorStyle   lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Border)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Border).
		Width(22)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	sparklineStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	statusRunningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("82")).
		Bold(true)

	statusDoneStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	statusErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	if !t.Colored() {
		statusRunningStyle = lipgloss.NewStyle().Bold(true)
		statusErrorStyle = lipgloss.NewStyle().Bold(true)
	}
}
