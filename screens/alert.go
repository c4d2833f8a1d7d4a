package screens

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheild/core"
	"github.com/jask/sheild/widgets"
)

const timerCountdown = "countdown"

type alertScreen struct {
	base
	deps      Deps
	total     int
	remaining int
	decided   bool
}

func newAlert(deps Deps, timers *core.TimerScope) *alertScreen {
	secs := max(1, int(deps.Timers.AlertCountdown/time.Second))
	return &alertScreen{
		base:      newBase(core.Alert, "Emergency Alert", deps, timers),
		deps:      deps,
		total:     secs,
		remaining: secs,
	}
}

func (s *alertScreen) Init() tea.Cmd {
	return tea.Batch(
		core.Feedback(core.FeedbackHeavy),
		s.timers.Schedule(timerCountdown, s.deps.Tick),
	)
}

func (s *alertScreen) VoiceCommands() map[string]string {
	return map[string]string{
		"emergency": core.ConfirmAlert.String(),
		"cancel":    core.CancelAlert.String(),
	}
}

func (s *alertScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case core.TimerMsg:
		if msg.Name != timerCountdown || s.decided {
			return s, nil
		}
		s.remaining--
		if s.remaining <= 0 {
			return s, s.confirm()
		}
		return s, s.timers.Schedule(timerCountdown, s.deps.Tick)
	case tea.KeyMsg:
		if s.decided {
			return s, nil
		}
		switch {
		case s.is(msg, "confirm"):
			return s, s.confirm()
		case s.is(msg, "cancel"):
			s.decided = true
			s.timers.Cancel(timerCountdown)
			return s, core.NavigateWithFeedback(core.FeedbackMedium, core.CancelAlert)
		}
	}
	return s, nil
}

// confirm is shared by the key and countdown expiry so both leave the same
// way.
func (s *alertScreen) confirm() tea.Cmd {
	s.decided = true
	s.remaining = 0
	s.timers.Cancel(timerCountdown)
	return core.NavigateWithFeedback(core.FeedbackHeavy, core.ConfirmAlert)
}

func (s *alertScreen) View(width, height int) string {
	loc := s.deps.Data.Location
	elapsed := float64(s.total-s.remaining) / float64(s.total)
	share := widgets.Card{
		Title: "Will be shared",
		Content: lines(
			textStyle.Render("📍 "+loc.Address+", "+loc.City),
			mutedStyle.Render(fmt.Sprintf("%.4f, %.4f · %s", loc.Lat, loc.Lng, loc.Accuracy)),
			mutedStyle.Render(fmt.Sprintf("%d emergency contacts · live audio", len(s.deps.Data.Contacts))),
		),
		Accent: colorDanger,
	}.Render(width, 5)
	return widgets.Text(lines(
		centered(width, dangerStyle.Render("⚠ EMERGENCY ALERT")),
		centered(width, mutedStyle.Render("Sending alert in")),
		"",
		centered(width, bigNumberStyle.Render(fmt.Sprintf("%d", s.remaining))),
		"",
		centered(width, widgets.ProgressBar(elapsed, min(width, 40))),
		"",
		share,
		"",
		centered(width, dangerStyle.Render("enter send now")+"    "+successStyle.Render("x I'm safe, cancel")),
	)).Render(width, height)
}
