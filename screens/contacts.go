package screens

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheild/core"
	"github.com/jask/sheild/internal/demo"
	"github.com/jask/sheild/widgets"
)

const (
	timerNotify    = "notify"
	notifyInterval = 800 * time.Millisecond
)

type contactsScreen struct {
	base
	contacts []demo.Contact
	notified int
}

func newContacts(deps Deps, timers *core.TimerScope) *contactsScreen {
	return &contactsScreen{
		base:     newBase(core.Contacts, "Contacts Notified", deps, timers),
		contacts: deps.Data.Contacts,
	}
}

func (s *contactsScreen) Init() tea.Cmd {
	return s.timers.Schedule(timerNotify, notifyInterval)
}

func (s *contactsScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case core.TimerMsg:
		if msg.Name != timerNotify || s.notified >= len(s.contacts) {
			return s, nil
		}
		s.notified++
		if s.notified == len(s.contacts) {
			return s, core.StatusCmd(fmt.Sprintf("%d contacts notified", s.notified))
		}
		return s, s.timers.Schedule(timerNotify, notifyInterval)
	case tea.KeyMsg:
		if s.is(msg, "continue") {
			return s, core.NavigateWithFeedback(core.FeedbackMedium, core.AdvanceFromContacts)
		}
	}
	return s, nil
}

func (s *contactsScreen) View(width, height int) string {
	rows := make([]string, 0, len(s.contacts))
	for i, c := range s.contacts {
		state := warnStyle.Render("sending...")
		if i < s.notified {
			state = successStyle.Render("✓ " + c.Status + " · " + c.Time)
		}
		rows = append(rows, fmt.Sprintf("%s  %s  %s", textStyle.Render(c.Name), mutedStyle.Render(c.Number), state))
	}
	list := widgets.Card{Title: "Emergency Network", Content: lines(rows...), Accent: colorDanger}.Render(width, len(rows)+2)
	return widgets.Text(lines(
		centered(width, dangerStyle.Render("📞 Alert Sent")),
		centered(width, mutedStyle.Render("Your location and a live audio link went to your contacts")),
		"",
		list,
		"",
		centered(width, hintStyle.Render("enter continue to deterrent")),
	)).Render(width, height)
}
