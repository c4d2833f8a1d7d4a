package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheild/core"
	"github.com/jask/sheild/internal/demo"
	"github.com/jask/sheild/widgets"
)

type onboardingScreen struct {
	base
	slides []demo.Slide
	index  int
}

func newOnboarding(deps Deps, timers *core.TimerScope) *onboardingScreen {
	return &onboardingScreen{
		base:   newBase(core.Onboarding, "Getting Started", deps, timers),
		slides: deps.Data.Onboarding,
	}
}

func (s *onboardingScreen) Init() tea.Cmd { return nil }

func (s *onboardingScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case s.is(km, "prev"):
		if s.index > 0 {
			s.index--
			return s, core.Feedback(core.FeedbackLight)
		}
	case s.is(km, "next"):
		if s.index < len(s.slides)-1 {
			s.index++
			return s, core.Feedback(core.FeedbackLight)
		}
		return s, core.NavigateWithFeedback(core.FeedbackMedium, core.CompleteOnboarding)
	}
	return s, nil
}

func (s *onboardingScreen) View(width, height int) string {
	if len(s.slides) == 0 {
		return ""
	}
	slide := s.slides[s.index]
	inner := max(10, width-4)
	content := lines(
		subtitleStyle.Render(slide.Subtitle),
		"",
		wrap(inner, textStyle.Render(slide.Description)),
		"",
		successStyle.Render(widgets.Checklist(slide.Features, func(int) bool { return true })),
	)
	card := widgets.Card{
		Title:   slide.Title,
		Content: content,
		Accent:  colorPink,
	}.Render(width, max(3, height-3))

	next := "next →"
	if s.index == len(s.slides)-1 {
		next = "get set up →"
	}
	nav := centered(width, widgets.Dots(s.index, len(s.slides))+"   "+hintStyle.Render(next))
	return strings.Join([]string{card, "", nav}, "\n")
}
