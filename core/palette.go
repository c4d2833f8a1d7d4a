package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ScopeCommandPalette = "overlay:commands"

var (
	paletteCursorStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	paletteDisabledStyle = lipgloss.NewStyle().Foreground(colorBorder)
	paletteMetaStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	paletteSectionStyle  = lipgloss.NewStyle().Foreground(colorPink).Bold(true)
)

// commandPalette lists the registry's commands for the mounted screen.
// Selecting one executes it through the same path voice commands use.
type commandPalette struct {
	picker *Picker
	keys   *KeyRegistry
}

func newCommandPalette(results []CommandResult, keys *KeyRegistry) *commandPalette {
	items := make([]PickerItem, 0, len(results))
	for _, r := range results {
		meta := r.Desc
		if r.Disabled {
			meta = r.Reason
		}
		items = append(items, PickerItem{
			ID:       r.CommandID,
			Label:    r.Name,
			Section:  r.Group,
			Meta:     meta,
			Search:   r.Name + " " + r.CommandID + " " + r.Desc,
			Disabled: r.Disabled,
		})
	}
	return &commandPalette{picker: NewPicker(items), keys: keys}
}

func (p *commandPalette) Title() string { return "Commands" }
func (p *commandPalette) Scope() string { return ScopeCommandPalette }

func (p *commandPalette) Update(msg tea.Msg) (Overlay, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil, false
	}
	var result PickerResult
	switch name := normalizeKey(keyMsg.String()); {
	case p.keys.IsAction(keyMsg, "close", ScopeCommandPalette):
		result.Action = PickerActionCancelled
	case p.keys.IsAction(keyMsg, "run-command", ScopeCommandPalette):
		if item, ok := p.picker.CurrentItem(); ok && !item.Disabled {
			result = PickerResult{Action: PickerActionSelected, Item: item}
		}
	case name == "enter" || name == "esc":
		// rebound elsewhere
	default:
		result = p.picker.HandleKey(name)
	}
	switch result.Action {
	case PickerActionCancelled:
		return p, nil, true
	case PickerActionSelected:
		id := result.Item.ID
		return p, func() tea.Msg { return CommandExecuteMsg{CommandID: id} }, true
	}
	return p, nil, false
}

func (p *commandPalette) View(width, height int) string {
	q := p.picker.Query()
	if q == "" {
		q = paletteMetaStyle.Render("type to filter")
	}
	lines := []string{"> " + q, ""}
	items := p.picker.Items()
	if len(items) == 0 {
		lines = append(lines, paletteMetaStyle.Render("  no matching commands"))
	}
	section := ""
	for i, item := range items {
		if item.Section != section {
			section = item.Section
			lines = append(lines, paletteSectionStyle.Render(section))
		}
		label := item.Label
		switch {
		case item.Disabled:
			label = paletteDisabledStyle.Render(label)
		case i == p.picker.Cursor():
			label = paletteCursorStyle.Render(label)
		}
		prefix := "  "
		if i == p.picker.Cursor() {
			prefix = paletteCursorStyle.Render("> ")
		}
		lines = append(lines, prefix+label+"  "+paletteMetaStyle.Render(item.Meta))
	}
	lines = append(lines, "", paletteMetaStyle.Render(p.keyFor("run-command")+" run  "+p.keyFor("close")+" close"))

	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, max(10, width), "…")
	}
	return strings.Join(lines, "\n")
}

func (p *commandPalette) keyFor(action string) string {
	for _, b := range p.keys.BindingsForScope(ScopeCommandPalette) {
		if b.Action == action && len(b.Keys) > 0 {
			return b.Keys[0]
		}
	}
	return "?"
}
