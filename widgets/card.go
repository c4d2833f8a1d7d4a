package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Card is a rounded box with the title set into the top border.
type Card struct {
	Title   string
	Content string
	Accent  lipgloss.Color
	Height  int
}

func (c Card) Render(width, height int) string {
	if width < 4 || height < 3 {
		return ""
	}
	h := c.Height
	if h <= 0 {
		h = len(strings.Split(c.Content, "\n")) + 2
	}
	h = min(max(h, 3), height)

	accent := c.Accent
	if accent == "" {
		accent = lipgloss.Color("#585b70")
	}
	border := lipgloss.NewStyle().Foreground(accent)
	title := lipgloss.NewStyle().Foreground(accent).Bold(true)

	inner := width - 2
	contentWidth := inner - 2
	titleText := ""
	if c.Title != "" {
		titleText = " " + ansi.Truncate(c.Title, max(1, inner-3), "") + " "
	}
	dashes := max(0, inner-ansi.StringWidth(titleText)-1)

	rows := make([]string, 0, h)
	top := border.Render("╭─") + title.Render(titleText) + border.Render(strings.Repeat("─", dashes)+"╮")
	if titleText == "" {
		top = border.Render("╭" + strings.Repeat("─", inner) + "╮")
	}
	rows = append(rows, top)

	lines := strings.Split(c.Content, "\n")
	v := border.Render("│")
	for i := 0; i < h-2; i++ {
		line := ""
		if i < len(lines) {
			line = ansi.Truncate(lines[i], contentWidth, "")
		}
		rows = append(rows, v+" "+padRightANSI(line, contentWidth)+" "+v)
	}
	rows = append(rows, border.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return strings.Join(rows, "\n")
}
