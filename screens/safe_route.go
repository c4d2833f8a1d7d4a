package screens

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheild/core"
	"github.com/jask/sheild/widgets"
)

const (
	timerRouteProgress  = "route-progress"
	timerIdleCheck      = "idle-check"
	timerDeviation      = "deviation"
	timerDeviationClear = "deviation-clear"
)

type safeRouteScreen struct {
	base
	deps         Deps
	progress     int
	offRoute     bool
	lastActivity time.Time
	idleOpen     bool
}

func newSafeRoute(deps Deps, timers *core.TimerScope) *safeRouteScreen {
	return &safeRouteScreen{
		base:         newBase(core.SafeRoute, "Safe Route", deps, timers),
		deps:         deps,
		lastActivity: deps.Now(),
	}
}

func (s *safeRouteScreen) Init() tea.Cmd {
	t := s.deps.Timers
	return tea.Batch(
		s.timers.Schedule(timerRouteProgress, t.RouteProgress),
		s.timers.Schedule(timerIdleCheck, t.IdleCheck),
		s.timers.Schedule(timerDeviation, t.DeviationAfter),
	)
}

func (s *safeRouteScreen) VoiceCommands() map[string]string {
	return map[string]string{
		"emergency": core.PressPanic.String(),
		"help me":   core.PressPanic.String(),
	}
}

func (s *safeRouteScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case core.TimerMsg:
		return s, s.handleTimer(msg.Name)
	case idleAnsweredMsg:
		s.idleOpen = false
		s.lastActivity = s.deps.Now()
		if msg.safe {
			return s, core.StatusCmd("Glad you're safe. Monitoring continues.")
		}
		return s, nil
	case tea.KeyMsg:
		s.lastActivity = s.deps.Now()
		switch {
		case s.is(msg, "panic"):
			return s, core.NavigateWithFeedback(core.FeedbackHeavy, core.PressPanic)
		case s.is(msg, "back"):
			return s, core.NavigateWithFeedback(core.FeedbackLight, core.CloseSafeRoute)
		case s.is(msg, "back-on-route") && s.offRoute:
			s.offRoute = false
			s.timers.Cancel(timerDeviationClear)
			return s, core.StatusCmd("Back on route")
		}
	}
	return s, nil
}

func (s *safeRouteScreen) handleTimer(name string) tea.Cmd {
	t := s.deps.Timers
	switch name {
	case timerRouteProgress:
		s.progress = min(s.progress+1, 100)
		return s.timers.Schedule(timerRouteProgress, t.RouteProgress)
	case timerIdleCheck:
		next := s.timers.Schedule(timerIdleCheck, t.IdleCheck)
		if s.idleOpen || s.deps.Now().Sub(s.lastActivity) <= t.IdleTimeout {
			return next
		}
		s.idleOpen = true
		return tea.Batch(next, core.Feedback(core.FeedbackMedium), core.PushOverlay(newIdleCheck(s.deps)))
	case timerDeviation:
		if !s.deps.Route.Deviated() {
			return nil
		}
		s.offRoute = true
		return tea.Batch(
			s.timers.Schedule(timerDeviationClear, t.DeviationClear),
			core.Feedback(core.FeedbackError),
			core.StatusCmd("Route deviation detected"),
		)
	case timerDeviationClear:
		s.offRoute = false
	}
	return nil
}

func (s *safeRouteScreen) View(width, height int) string {
	route := s.deps.Data.Route
	summary := widgets.Card{
		Title: "Route",
		Content: lines(
			textStyle.Render(route.Destination),
			mutedStyle.Render(fmt.Sprintf("%s · %s · safety %s", route.EstimatedTime, route.Distance, route.SafetyScore)),
			widgets.ProgressBar(float64(s.progress)/100, max(10, width-4)),
		),
		Accent: colorAccent,
	}.Render(width, 5)

	cps := make([]string, len(route.Checkpoints))
	for i, cp := range route.Checkpoints {
		mark := mutedStyle.Render("○")
		switch cp.Status {
		case "passed":
			mark = successStyle.Render("✓")
		case "current":
			mark = selectedStyle.Render("●")
		}
		cps[i] = fmt.Sprintf("%s %s %s", mark, textStyle.Render(cp.Name), mutedStyle.Render(cp.Distance))
	}
	checkpoints := widgets.Card{Title: "Safe Checkpoints", Content: lines(cps...), Accent: colorSuccess}.Render(width, len(cps)+2)

	alert := successStyle.Render("✓ On route")
	if s.offRoute {
		alert = dangerStyle.Render("⚠ Route deviation detected") + mutedStyle.Render("  · b back on route · p panic")
	}
	return widgets.Text(lines(summary, checkpoints, "", alert)).Render(width, height)
}
