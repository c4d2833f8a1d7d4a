package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/sheild/internal/entitlement"
	"github.com/jask/sheild/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Stay safe.\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	available := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if available < 0 {
		available = 0
	}
	bodyHeight := available
	var body string
	if m.screen != nil && bodyHeight > 0 {
		body = m.screen.View(max(1, m.width-2), bodyHeight)
	}
	if top := m.overlays.Top(); top != nil && bodyHeight > 0 {
		body = widgets.RenderPopup(body, top.View(max(20, m.width-12), max(8, m.height-8)), m.width-2, bodyHeight)
	}
	body = fitHeight(body, bodyHeight)
	main := strings.TrimSuffix(strings.Join([]string{header, status, body}, "\n"), "\n")
	main = fitHeight(main, lipgloss.Height(header)+lipgloss.Height(status)+available)
	view := strings.Join([]string{main, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render(m.appName)
	if m.screen != nil {
		left += headerTitleStyle.Render("  " + m.screen.Title())
	}

	right := make([]string, 0, 3)
	if m.flash != "" {
		right = append(right, flashStyle.Render(m.flash))
	}
	if m.voice.recognizer != nil {
		if m.voice.listening {
			right = append(right, voiceOnStyle.Render("mic on"))
		} else {
			right = append(right, voiceOffStyle.Render("mic off"))
		}
	}
	switch m.session.Tier() {
	case entitlement.TierPremium:
		right = append(right, premiumBadgeStyle.Render("P+"))
	case entitlement.TierTrial:
		right = append(right, trialBadgeStyle.Render("Trial"))
	}
	rightLine := strings.Join(right, headerBarStyle.Render(" "))
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(rightLine)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderHeaderBar(headerBarStyle, max(1, m.width), left+headerBarStyle.Render(strings.Repeat(" ", gap))+rightLine)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
