package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheild/core"
	"github.com/jask/sheild/internal/demo"
	"github.com/jask/sheild/internal/entitlement"
	"github.com/jask/sheild/widgets"
)

const (
	timerCallTick = "call-tick"
	timerHangup   = "hangup"
)

type callPhase int

const (
	callIdle callPhase = iota
	callCountdown
	callIncoming
	callAnswered
)

type fakeCallScreen struct {
	base
	deps      Deps
	callers   []demo.Caller
	delays    []int
	caller    int
	delay     int
	name      textinput.Model
	editing   bool
	phase     callPhase
	countdown int
}

func newFakeCall(deps Deps, timers *core.TimerScope) *fakeCallScreen {
	in := textinput.New()
	in.Placeholder = "Caller name"
	in.Prompt = "name> "
	in.CharLimit = 24
	return &fakeCallScreen{
		base:    newBase(core.FakeCall, "Fake Call", deps, timers),
		deps:    deps,
		callers: deps.Data.FakeCall.Callers,
		delays:  deps.Data.FakeCall.Delays,
		name:    in,
	}
}

func (s *fakeCallScreen) Init() tea.Cmd { return nil }

func (s *fakeCallScreen) CapturingInput() bool { return s.editing }

func (s *fakeCallScreen) VoiceCommands() map[string]string {
	return map[string]string{"emergency": core.PressPanic.String()}
}

// callerName resolves the display name, falling back to "Unknown" for an
// empty custom name.
func (s *fakeCallScreen) callerName() string {
	c := s.callers[s.caller]
	if !c.Custom {
		return c.Name
	}
	if n := strings.TrimSpace(s.name.Value()); n != "" {
		return n
	}
	return "Unknown"
}

func (s *fakeCallScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case core.TimerMsg:
		return s, s.handleTimer(msg.Name)
	case tea.KeyMsg:
		if s.editing {
			return s, s.updateName(msg)
		}
		return s, s.handleKey(msg)
	}
	if s.editing {
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *fakeCallScreen) updateName(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc":
		s.editing = false
		s.name.Blur()
		return nil
	}
	var cmd tea.Cmd
	s.name, cmd = s.name.Update(msg)
	return cmd
}

func (s *fakeCallScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case s.is(msg, "panic"):
		return core.NavigateWithFeedback(core.FeedbackHeavy, core.PressPanic)
	case s.is(msg, "back"):
		return core.NavigateWithFeedback(core.FeedbackLight, core.CloseFakeCall)
	case s.is(msg, "upgrade") && !s.deps.Session.HasPremiumAccess():
		return core.NavigateWithFeedback(core.FeedbackLight, core.OpenPremiumUpgrade)
	}

	switch s.phase {
	case callIdle:
		switch {
		case s.is(msg, "caller-prev"):
			s.caller = (s.caller + len(s.callers) - 1) % len(s.callers)
		case s.is(msg, "caller-next"):
			s.caller = (s.caller + 1) % len(s.callers)
		case s.is(msg, "delay-prev"):
			s.delay = max(0, s.delay-1)
		case s.is(msg, "delay-next"):
			s.delay = min(len(s.delays)-1, s.delay+1)
		case s.is(msg, "edit-name") && s.callers[s.caller].Custom:
			s.editing = true
			return s.name.Focus()
		case s.is(msg, "start-call"):
			return s.start()
		}
	case callCountdown:
		if s.is(msg, "cancel-call") {
			return s.reset("Fake call cancelled")
		}
	case callIncoming:
		switch {
		case s.is(msg, "answer"):
			s.phase = callAnswered
			return tea.Batch(core.Feedback(core.FeedbackMedium), s.timers.Schedule(timerHangup, s.deps.Timers.AnswerHangup))
		case s.is(msg, "decline"):
			return s.reset("Call declined")
		}
	}
	return nil
}

// start begins the countdown, or opens the paywall when the generator is
// locked.
func (s *fakeCallScreen) start() tea.Cmd {
	if !s.deps.Session.CheckFeatureAccess(entitlement.FeatureFakeCallGenerator) {
		return tea.Batch(
			core.Feedback(core.FeedbackError),
			core.PushOverlay(newPaywall(s.deps, entitlement.FeatureFakeCallGenerator)),
		)
	}
	s.phase = callCountdown
	s.countdown = s.delays[s.delay]
	return tea.Batch(
		core.Feedback(core.FeedbackMedium),
		s.timers.Schedule(timerCallTick, s.deps.Tick),
		core.StatusCmd(fmt.Sprintf("Fake call from %s in %s", s.callerName(), delayLabel(s.countdown))),
	)
}

func (s *fakeCallScreen) reset(status string) tea.Cmd {
	s.phase = callIdle
	s.countdown = 0
	s.timers.Cancel(timerCallTick)
	s.timers.Cancel(timerHangup)
	return core.StatusCmd(status)
}

func (s *fakeCallScreen) handleTimer(name string) tea.Cmd {
	switch name {
	case timerCallTick:
		if s.phase != callCountdown {
			return nil
		}
		s.countdown--
		if s.countdown > 0 {
			return s.timers.Schedule(timerCallTick, s.deps.Tick)
		}
		s.phase = callIncoming
		return core.Feedback(core.FeedbackHeavy)
	case timerHangup:
		if s.phase == callAnswered {
			return s.reset("Call ended")
		}
	}
	return nil
}

func delayLabel(secs int) string {
	switch {
	case secs >= 60 && secs%60 == 0:
		if secs == 60 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", secs/60)
	case secs == 1:
		return "1 second"
	}
	return fmt.Sprintf("%d seconds", secs)
}

func (s *fakeCallScreen) View(width, height int) string {
	c := s.callers[s.caller]
	switch s.phase {
	case callIncoming:
		return widgets.Text(lines(
			"",
			centered(width, mutedStyle.Render("Incoming call...")),
			"",
			centered(width, c.Emoji),
			centered(width, titleStyle.Render(s.callerName())),
			centered(width, mutedStyle.Render("mobile")),
			"",
			centered(width, successStyle.Render("[a] answer")+"    "+dangerStyle.Render("[d] decline")),
		)).Render(width, height)
	case callAnswered:
		return widgets.Text(lines(
			"",
			centered(width, successStyle.Render("● Call connected")),
			centered(width, titleStyle.Render(s.callerName())),
			"",
			centered(width, hintStyle.Render("hanging up shortly...")),
		)).Render(width, height)
	case callCountdown:
		return widgets.Text(lines(
			"",
			centered(width, mutedStyle.Render("Call from "+s.callerName()+" in")),
			"",
			centered(width, bigNumberStyle.Render(fmt.Sprintf("%d", s.countdown))),
			"",
			centered(width, hintStyle.Render("c cancel call")),
		)).Render(width, height)
	}

	callerRows := make([]string, len(s.callers))
	for i, cl := range s.callers {
		row := fmt.Sprintf("%s %s", cl.Emoji, cl.Name)
		if i == s.caller {
			row = selectedStyle.Render("› " + row)
		} else {
			row = mutedStyle.Render("  " + row)
		}
		callerRows[i] = row
	}
	if c.Custom {
		callerRows = append(callerRows, "", s.name.View())
	}
	delays := make([]string, len(s.delays))
	for i, d := range s.delays {
		label := delayLabel(d)
		if i == s.delay {
			label = selectedStyle.Render("[" + label + "]")
		} else {
			label = mutedStyle.Render(label)
		}
		delays[i] = label
	}

	lock := ""
	if !s.deps.Session.CheckFeatureAccess(entitlement.FeatureFakeCallGenerator) {
		lock = goldStyle.Render("★ Premium feature") + mutedStyle.Render(" · start a free trial to use it")
	}
	callers := widgets.Card{Title: "Caller", Content: lines(callerRows...), Accent: colorPink}.Render(width, len(callerRows)+2)
	timing := widgets.Card{Title: "Call in", Content: strings.Join(delays, "  "), Accent: colorAccent}.Render(width, 3)
	return widgets.Text(lines(callers, timing, "", lock, hintStyle.Render("enter start fake call"))).Render(width, height)
}
