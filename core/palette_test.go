package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeText(m Model, text string) Model {
	for _, r := range text {
		if r == ' ' {
			m, _ = update(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m, _ = update(m, runes(string(r)))
	}
	return m
}

func TestCommandPaletteRunsTransition(t *testing.T) {
	h := newHarness()
	m := NewModel(Options{Start: Dashboard, Factories: h.factories()})
	screen := h.last(Dashboard)

	m, _ = update(m, runes(":"))
	if m.ActiveScope() != ScopeCommandPalette {
		t.Fatalf("scope = %q, want palette", m.ActiveScope())
	}
	m = typeText(m, "panic")
	if len(screen.keys) != 0 {
		t.Fatalf("palette leaked keys to the screen: %v", screen.keys)
	}
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Overlays() != 0 {
		t.Fatal("palette stayed open after selecting")
	}
	m = drain(t, m, cmd)
	if m.Current() != Alert {
		t.Fatalf("current = %s, want alert", m.Current())
	}
}

func TestCommandPaletteSkipsDisabled(t *testing.T) {
	h := newHarness()
	m := NewModel(Options{Factories: h.factories()})
	m, _ = update(m, runes(":"))
	m = typeText(m, "press panic")

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("disabled command produced a command")
	}
	if m.Overlays() != 1 || m.Current() != Welcome {
		t.Fatalf("overlays=%d current=%s", m.Overlays(), m.Current())
	}
	if view := m.View(); !strings.Contains(view, "Not available from welcome") {
		t.Fatalf("disabled reason missing from view:\n%s", view)
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Overlays() != 0 {
		t.Fatal("esc did not close the palette")
	}
}

func TestPickerFiltersAndRanks(t *testing.T) {
	p := NewPicker([]PickerItem{
		{ID: "a", Label: "open safe route", Section: "navigate"},
		{ID: "b", Label: "press panic", Section: "navigate"},
		{ID: "c", Label: "start trial", Section: "session"},
	})
	if p.Len() != 3 {
		t.Fatalf("unfiltered len = %d", p.Len())
	}
	p.SetQuery("pp")
	items := p.Items()
	if len(items) != 1 || items[0].ID != "b" {
		t.Fatalf("items = %+v", items)
	}

	p.SetQuery("s")
	items = p.Items()
	if len(items) != 3 {
		t.Fatalf("items for %q = %+v", "s", items)
	}
	if items[0].Section != "navigate" || items[2].Section != "session" {
		t.Fatalf("sections reordered: %+v", items)
	}

	p.SetQuery("zzz")
	if _, ok := p.CurrentItem(); ok {
		t.Fatal("empty result reported a current item")
	}
	if res := p.HandleKey("enter"); res.Action != PickerActionNone {
		t.Fatalf("enter on empty = %v", res.Action)
	}
}

func TestPickerKeys(t *testing.T) {
	p := NewPicker([]PickerItem{{ID: "a", Label: "alpha"}, {ID: "b", Label: "beta", Disabled: true}})
	if res := p.HandleKey("down"); res.Action != PickerActionMoved || p.Cursor() != 1 {
		t.Fatalf("down: %v cursor=%d", res.Action, p.Cursor())
	}
	if res := p.HandleKey("down"); res.Action != PickerActionNone {
		t.Fatal("moved past the last row")
	}
	if res := p.HandleKey("enter"); res.Action != PickerActionNone {
		t.Fatal("selected a disabled row")
	}
	p.HandleKey("up")
	if res := p.HandleKey("enter"); res.Action != PickerActionSelected || res.Item.ID != "a" {
		t.Fatalf("enter = %+v", res)
	}
	p.HandleKey("a")
	p.HandleKey("l")
	p.HandleKey("backspace")
	if p.Query() != "a" {
		t.Fatalf("query = %q", p.Query())
	}
	if res := p.HandleKey("esc"); res.Action != PickerActionCancelled {
		t.Fatal("esc did not cancel")
	}
}

func TestCommandPaletteHonoursReboundKeys(t *testing.T) {
	h := newHarness()
	bindings := ApplyActionKeybindings(DefaultKeyBindings(), map[string][]string{
		"run-command": {"ctrl+o"},
		"close":       {"ctrl+g"},
	})
	m := NewModel(Options{Start: Dashboard, Factories: h.factories(), Keys: NewKeyRegistry(bindings)})

	m, _ = update(m, runes(":"))
	if view := m.View(); !strings.Contains(view, "ctrl+o run") {
		t.Fatalf("hint does not show the rebound key:\n%s", view)
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Overlays() != 1 {
		t.Fatal("esc closed the palette after close was rebound")
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyCtrlG})
	if m.Overlays() != 0 {
		t.Fatal("ctrl+g did not close the palette")
	}

	m, _ = update(m, runes(":"))
	m = typeText(m, "panic")
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.Overlays() != 1 {
		t.Fatal("enter still ran a command after run-command was rebound")
	}
	m, cmd = update(m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if m.Overlays() != 0 {
		t.Fatal("ctrl+o did not run the command")
	}
	m = drain(t, m, cmd)
	if m.Current() != Alert {
		t.Fatalf("current = %s, want alert", m.Current())
	}
}
