package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel renders a titled block of lines inside a rounded border drawn with
// the active theme. With colors disabled the border is still drawn but no
// escape codes are emitted.
func Panel(title string, lines []string) string {
	theme := GetCurrentTheme()
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	titleStyle := lipgloss.NewStyle().Bold(theme.Colored()).Foreground(theme.Accent)

	body := strings.Join(lines, "\n")
	if title != "" {
		body = titleStyle.Render(title) + "\n" + body
	}
	return style.Render(body)
}
