package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/sheild/core"
	"github.com/jask/sheild/internal/entitlement"
	"github.com/jask/sheild/internal/sim"
	"github.com/jask/sheild/widgets"
)

const (
	timerSensors = "sensors"
	heartHistory = 24
)

type dashboardScreen struct {
	base
	deps   Deps
	silent bool
	bpm    int
	beats  []widgets.TrendPoint
	fix    sim.Fix
}

func newDashboard(deps Deps, timers *core.TimerScope) *dashboardScreen {
	s := &dashboardScreen{
		base: newBase(core.Dashboard, "Dashboard", deps, timers),
		deps: deps,
	}
	s.readSensors()
	return s
}

func (s *dashboardScreen) Init() tea.Cmd {
	return s.timers.Schedule(timerSensors, s.deps.Timers.SensorRefresh)
}

func (s *dashboardScreen) VoiceCommands() map[string]string {
	return map[string]string{
		"emergency": core.PressPanic.String(),
		"help me":   core.PressPanic.String(),
	}
}

func (s *dashboardScreen) readSensors() {
	s.bpm = s.deps.Heart.Read()
	s.fix = s.deps.Locator.Read()
	s.beats = append(s.beats, widgets.TrendPoint{At: s.deps.Now(), Value: float64(s.bpm)})
	if len(s.beats) > heartHistory {
		s.beats = s.beats[len(s.beats)-heartHistory:]
	}
}

func (s *dashboardScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case core.TimerMsg:
		if msg.Name == timerSensors {
			s.readSensors()
			return s, s.timers.Schedule(timerSensors, s.deps.Timers.SensorRefresh)
		}
	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *dashboardScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	protected := s.deps.Session.HasPremiumAccess()
	switch {
	case s.is(msg, "panic"):
		return core.NavigateWithFeedback(core.FeedbackHeavy, core.PressPanic)
	case s.is(msg, "safe-route"):
		return core.NavigateWithFeedback(core.FeedbackLight, core.OpenSafeRoute)
	case s.is(msg, "fake-call"):
		return core.NavigateWithFeedback(core.FeedbackLight, core.OpenFakeCall)
	case s.is(msg, "silent-mode"):
		s.silent = !s.silent
		if s.silent {
			return tea.Batch(core.Feedback(core.FeedbackLight), core.StatusCmd("Silent mode on: alerts will not sound"))
		}
		return tea.Batch(core.Feedback(core.FeedbackLight), core.StatusCmd("Silent mode off"))
	case s.is(msg, "upgrade") && !protected:
		return core.NavigateWithFeedback(core.FeedbackLight, core.OpenPremiumUpgrade)
	case s.is(msg, "subscription") && protected:
		return core.NavigateWithFeedback(core.FeedbackLight, core.OpenSubscriptionStatus)
	}
	return nil
}

func (s *dashboardScreen) View(width, height int) string {
	mode := successStyle.Render("🔊 Loud mode")
	if s.silent {
		mode = warnStyle.Render("🔇 Silent mode")
	}
	status := lines(
		titleStyle.Render("You're protected"),
		mutedStyle.Render("All systems active · ")+mode,
	)

	dev := s.deps.Data.Device
	wearable := widgets.Card{
		Title:   "Wearable",
		Content: lines(textStyle.Render(dev.Name), successStyle.Render("● Connected"), mutedStyle.Render(fmt.Sprintf("Battery %d%% · %s", dev.Battery, dev.Signal))),
		Accent:  colorAccent,
	}
	heart := widgets.Card{
		Title:   "Heart Rate",
		Content: lines(dangerStyle.Render(fmt.Sprintf("♥ %d bpm", s.bpm)), widgets.Sparkline(s.beatValues(), max(4, width/2-6)), mutedStyle.Render("Normal")),
		Accent:  colorDanger,
	}
	loc := widgets.Card{
		Title: "Location",
		Content: lines(
			textStyle.Render(s.fix.Address),
			mutedStyle.Render(fmt.Sprintf("%.4f, %.4f", s.fix.Lat, s.fix.Lng)),
			mutedStyle.Render("Accuracy "+s.fix.Accuracy),
		),
		Accent: colorAccent,
	}
	contacts := widgets.Card{
		Title:   "Emergency Contacts",
		Content: lines(textStyle.Render(fmt.Sprintf("%d contacts ready", len(s.deps.Data.Contacts))), mutedStyle.Render("Notified instantly on alert")),
		Accent:  colorPink,
	}

	cards := widgets.VStack{Widgets: []widgets.Widget{
		widgets.HStack{Widgets: []widgets.Widget{wearable, heart}, Gap: 1},
		widgets.HStack{Widgets: []widgets.Widget{loc, contacts}, Ratios: []float64{3, 2}, Gap: 1},
	}}.Render(width, 10)

	panicButton := centered(width, bigNumberStyle.Render("PANIC  [p]"))
	body := lines(status, "", panicButton, "", cards)
	if room := height - lipgloss.Height(body) - 3; room >= 6 {
		trend := widgets.Trend{Points: s.beats, Min: 55, Max: 95, Color: colorDanger}
		body = lines(body, trend.Render(width, min(room, 10)))
	}
	return widgets.Text(lines(body, "", s.premiumLine())).Render(width, height)
}

func (s *dashboardScreen) beatValues() []float64 {
	out := make([]float64, len(s.beats))
	for i, b := range s.beats {
		out[i] = b.Value
	}
	return out
}

func (s *dashboardScreen) premiumLine() string {
	snap := s.deps.Session.Snapshot()
	switch snap.Tier() {
	case entitlement.TierPremium:
		return goldStyle.Render("★ Premium active") + mutedStyle.Render("  · s subscription")
	case entitlement.TierTrial:
		return goldStyle.Render(fmt.Sprintf("★ Trial · %d days left", snap.TrialDaysLeft)) + mutedStyle.Render("  · s subscription")
	}
	return hintStyle.Render("Unlock fake calls and the virtual guardian · u go premium")
}
