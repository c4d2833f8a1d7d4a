package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheild/core"
	"github.com/jask/sheild/internal/demo"
	"github.com/jask/sheild/widgets"
)

type confirmationScreen struct {
	base
	contacts []demo.Contact
}

func newConfirmation(deps Deps, timers *core.TimerScope) *confirmationScreen {
	return &confirmationScreen{
		base:     newBase(core.Confirmation, "Help Is Coming", deps, timers),
		contacts: deps.Data.Contacts,
	}
}

func (s *confirmationScreen) Init() tea.Cmd { return nil }

func (s *confirmationScreen) VoiceCommands() map[string]string {
	return map[string]string{"go home": core.ReturnHome.String()}
}

func (s *confirmationScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && s.is(km, "home") {
		return s, core.NavigateWithFeedback(core.FeedbackLight, core.ReturnHome)
	}
	return s, nil
}

func (s *confirmationScreen) View(width, height int) string {
	rows := make([]string, 0, len(s.contacts)*2)
	for _, c := range s.contacts {
		rows = append(rows,
			fmt.Sprintf("%s %s", textStyle.Render(c.Name), mutedStyle.Render(c.Responded)),
			"  "+successStyle.Render("“"+c.Response+"”"),
		)
	}
	responses := widgets.Card{Title: "Responses", Content: lines(rows...), Accent: colorSuccess}.Render(width, len(rows)+2)
	return widgets.Text(lines(
		centered(width, successStyle.Render("✓ Help is on the way")),
		centered(width, mutedStyle.Render("Stay where you are if it is safe. Keep your device with you.")),
		"",
		responses,
		"",
		centered(width, hintStyle.Render("enter return home")),
	)).Render(width, height)
}
