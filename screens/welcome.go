package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheild/core"
	"github.com/jask/sheild/widgets"
)

type welcomeScreen struct {
	base
}

func newWelcome(deps Deps, timers *core.TimerScope) *welcomeScreen {
	return &welcomeScreen{base: newBase(core.Welcome, "Welcome", deps, timers)}
}

func (s *welcomeScreen) Init() tea.Cmd { return nil }

func (s *welcomeScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && s.is(km, "get-started") {
		return s, core.NavigateWithFeedback(core.FeedbackMedium, core.CompleteWelcome)
	}
	return s, nil
}

func (s *welcomeScreen) View(width, height int) string {
	logo := lines(
		titleStyle.Render("🛡  SHEild"),
		subtitleStyle.Render("Your Personal Safety Companion"),
	)
	features := widgets.Checklist([]string{
		"Smart wearable protection",
		"Instant emergency alerts",
		"Trusted contact network",
	}, func(int) bool { return true })
	body := lines(
		"",
		centered(width, logo),
		"",
		centered(width, mutedStyle.Render("Stay safe, stay connected. Protection that goes wherever you go.")),
		"",
		centered(width, successStyle.Render(features)),
		"",
		centered(width, hintStyle.Render("press enter to get started")),
	)
	return widgets.Text(body).Render(width, height)
}
