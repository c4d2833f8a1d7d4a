package screens

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheild/core"
)

const (
	timerPlay    = "play"
	timerAdvance = "advance"
	playInterval = 3 * time.Second
)

type deterrentScreen struct {
	base
	deps     Deps
	playing  bool
	plays    int
	advanced bool
}

func newDeterrent(deps Deps, timers *core.TimerScope) *deterrentScreen {
	return &deterrentScreen{
		base:    newBase(core.Deterrent, "Deterrent Active", deps, timers),
		deps:    deps,
		playing: true,
		plays:   1,
	}
}

func (s *deterrentScreen) Init() tea.Cmd {
	return tea.Batch(
		s.timers.Schedule(timerPlay, playInterval),
		s.timers.Schedule(timerAdvance, s.deps.Timers.DeterrentAdvance),
	)
}

func (s *deterrentScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case core.TimerMsg:
		switch msg.Name {
		case timerPlay:
			if s.playing {
				s.plays++
			}
			return s, s.timers.Schedule(timerPlay, playInterval)
		case timerAdvance:
			return s, s.advance()
		}
	case tea.KeyMsg:
		switch {
		case s.is(msg, "toggle-audio"):
			s.playing = !s.playing
			if s.playing {
				return s, core.StatusCmd("Deterrent audio resumed")
			}
			return s, core.StatusCmd("Deterrent audio stopped")
		case s.is(msg, "continue"):
			return s, s.advance()
		}
	}
	return s, nil
}

// advance is shared by the key and the timeout.
func (s *deterrentScreen) advance() tea.Cmd {
	if s.advanced {
		return nil
	}
	s.advanced = true
	s.timers.Cancel(timerAdvance)
	return core.NavigateWithFeedback(core.FeedbackMedium, core.AdvanceFromDeterrent)
}

func (s *deterrentScreen) View(width, height int) string {
	audio := warnStyle.Render("🔊 120dB alarm playing")
	if !s.playing {
		audio = mutedStyle.Render("🔇 audio stopped")
	}
	return lines(
		"",
		centered(width, warnStyle.Render("🚨 DETERRENT ACTIVE")),
		"",
		centered(width, bigNumberStyle.Render(s.deps.Data.Deterrent.Message)),
		"",
		centered(width, audio),
		centered(width, mutedStyle.Render(fmt.Sprintf("played %d times · LED strobe on", s.plays))),
		"",
		centered(width, hintStyle.Render("space stop/resume audio · enter continue")),
	)
}
