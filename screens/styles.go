package screens

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorAccent  lipgloss.Color = "#94e2d5"
	colorPink    lipgloss.Color = "#f5c2e7"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorDanger  lipgloss.Color = "#f38ba8"
	colorWarn    lipgloss.Color = "#fab387"
	colorGold    lipgloss.Color = "#f9e2af"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(colorPink).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorAccent)
	textStyle     = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	dangerStyle   = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(colorWarn)
	goldStyle     = lipgloss.NewStyle().Foreground(colorGold).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	bigNumberStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorDanger).
			Padding(0, 3)
	selectedStyle = lipgloss.NewStyle().Foreground(colorPink).Bold(true)
)

// centered places each line of s in the middle of width columns.
func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(max(1, width), lipgloss.Center, s)
}

// wrap soft-wraps s to width for card bodies.
func wrap(width int, s string) string {
	return lipgloss.NewStyle().Width(max(1, width)).Render(s)
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n")
}
