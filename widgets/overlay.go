package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var popupStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#f5c2e7")).
	Padding(1, 2)

// RenderPopup centres popup in a bordered card over base. Base rows outside
// the card are kept.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := splitToLines(base, height)
	for i := range canvas {
		canvas[i] = padRightANSI(canvas[i], width)
	}
	card := strings.Split(popupStyle.Render(popup), "\n")
	cardWidth := 0
	for _, l := range card {
		cardWidth = max(cardWidth, ansi.StringWidth(l))
	}
	if cardWidth == 0 {
		return strings.Join(canvas, "\n")
	}
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(card))/2)
	for i, line := range card {
		row := y + i
		if row >= height {
			break
		}
		left := ansi.Truncate(canvas[row], x, "")
		line = padRightANSI(line, cardWidth)
		right := dropColumns(canvas[row], x+cardWidth)
		canvas[row] = padRightANSI(left+line+right, width)
	}
	return strings.Join(canvas, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func clipLines(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], width, "")
	}
	return strings.Join(lines, "\n")
}
