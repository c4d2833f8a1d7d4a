package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheild/core"
	"github.com/jask/sheild/internal/demo"
	"github.com/jask/sheild/widgets"
)

const timerPairing = "pairing"

type setupScreen struct {
	base
	steps      []demo.SetupStep
	device     demo.Device
	step       int
	connecting bool
	connected  bool
	deps       Deps
}

func newSetup(deps Deps, timers *core.TimerScope) *setupScreen {
	return &setupScreen{
		base:   newBase(core.Setup, "Setup", deps, timers),
		steps:  deps.Data.Setup,
		device: deps.Data.Device,
		deps:   deps,
	}
}

func (s *setupScreen) Init() tea.Cmd { return nil }

func (s *setupScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case core.TimerMsg:
		if msg.Name == timerPairing && s.connecting {
			s.connecting = false
			s.connected = true
			return s, tea.Batch(core.Feedback(core.FeedbackLight), core.StatusCmd(s.device.Name+" connected"))
		}
	case tea.KeyMsg:
		if s.is(msg, "continue") {
			return s, s.advance()
		}
	}
	return s, nil
}

// advance moves to the next step. The device step pairs first.
func (s *setupScreen) advance() tea.Cmd {
	if s.connecting {
		return nil
	}
	if s.steps[s.step].Kind == "device" && !s.connected {
		s.connecting = true
		return tea.Batch(
			s.timers.Schedule(timerPairing, s.deps.Timers.SetupPairing),
			core.StatusCmd("Searching for "+s.device.Name+"..."),
		)
	}
	if s.step == len(s.steps)-1 {
		return core.NavigateWithFeedback(core.FeedbackMedium, core.CompleteSetup)
	}
	s.step++
	return core.Feedback(core.FeedbackLight)
}

func (s *setupScreen) View(width, height int) string {
	titles := make([]string, len(s.steps))
	for i, st := range s.steps {
		titles[i] = st.Title
	}
	progress := widgets.ProgressBar(float64(s.step)/float64(len(s.steps)), min(width, 40))
	checklist := widgets.Checklist(titles, func(i int) bool { return i < s.step })

	cur := s.steps[s.step]
	var detail string
	switch {
	case cur.Kind == "device" && s.connecting:
		detail = warnStyle.Render("Pairing with " + s.device.Name + "...")
	case cur.Kind == "device" && s.connected:
		detail = successStyle.Render(fmt.Sprintf("%s connected · battery %d%% · signal %s", s.device.Name, s.device.Battery, s.device.Signal))
	case cur.Kind == "device":
		detail = hintStyle.Render("press enter to pair your device")
	case cur.Kind == "contacts":
		detail = mutedStyle.Render(fmt.Sprintf("%d trusted contacts ready", len(s.deps.Data.Contacts)))
	case cur.Kind == "location":
		detail = mutedStyle.Render("Location access granted · " + s.deps.Data.Location.Accuracy)
	default:
		detail = successStyle.Render("All systems ready")
	}

	card := widgets.Card{
		Title:   fmt.Sprintf("Step %d of %d · %s", s.step+1, len(s.steps), cur.Title),
		Content: lines(mutedStyle.Render(cur.Description), "", detail),
		Accent:  colorAccent,
	}.Render(width, 6)

	body := lines(progress, "", checklist, "", card)
	return widgets.Text(body).Render(width, height)
}
