package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	headerTitleStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Background(colorMantle)

	premiumBadgeStyle = lipgloss.NewStyle().
				Foreground(colorMantle).
				Background(colorPink).
				Bold(true).
				Padding(0, 1)
	trialBadgeStyle = lipgloss.NewStyle().
			Foreground(colorMantle).
			Background(colorAccent).
			Padding(0, 1)
	voiceOnStyle  = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorMantle)
	voiceOffStyle = lipgloss.NewStyle().Foreground(colorBorder).Background(colorMantle)
	flashStyle    = lipgloss.NewStyle().Foreground(colorWarn).Background(colorMantle).Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)
