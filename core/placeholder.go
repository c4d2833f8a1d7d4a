package core

import tea "github.com/charmbracelet/bubbletea"

// placeholderScreen stands in when no factory is registered, so the model
// always has something mounted.
type placeholderScreen struct {
	id     ScreenID
	timers *TimerScope
}

func newPlaceholderScreen(id ScreenID, timers *TimerScope) *placeholderScreen {
	return &placeholderScreen{id: id.Normalize(), timers: timers}
}

func (s *placeholderScreen) ID() ScreenID                     { return s.id }
func (s *placeholderScreen) Title() string                    { return s.id.String() }
func (s *placeholderScreen) Scope() string                    { return s.id.Scope() }
func (s *placeholderScreen) Init() tea.Cmd                    { return nil }
func (s *placeholderScreen) Update(tea.Msg) (Screen, tea.Cmd) { return s, nil }
func (s *placeholderScreen) View(int, int) string             { return s.id.String() }
func (s *placeholderScreen) Timers() *TimerScope              { return s.timers }
