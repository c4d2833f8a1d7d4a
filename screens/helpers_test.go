package screens

import (
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheild/core"
	"github.com/jask/sheild/internal/config"
	"github.com/jask/sheild/internal/demo"
	"github.com/jask/sheild/internal/entitlement"
	"github.com/jask/sheild/internal/sim"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// testDeps uses millisecond timers so any tick a test executes returns at
// once.
func testDeps(t *testing.T, deviation float64) (Deps, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	src := sim.NewSource(42)
	data := demo.Default()
	ms := time.Millisecond
	return Deps{
		Session: entitlement.NewSession(),
		Keys:    core.NewKeyRegistry(core.DefaultKeyBindings()),
		Data:    data,
		Timers: config.TimersConfig{
			AlertCountdown:   10 * time.Second,
			DeterrentAdvance: ms,
			SetupPairing:     ms,
			AnswerHangup:     ms,
			SensorRefresh:    ms,
			RouteProgress:    ms,
			IdleTimeout:      2 * time.Minute,
			IdleCheck:        ms,
			DeviationAfter:   ms,
			DeviationClear:   ms,
		},
		Locator: sim.NewLocator(src, data.Location),
		Heart:   sim.NewHeartRateMonitor(src),
		Route:   sim.NewRouteMonitor(src, deviation),
		Now:     clock.Now,
		Tick:    ms,
	}, clock
}

func build(t *testing.T, deps Deps, id core.ScreenID) core.Screen {
	t.Helper()
	f, ok := Factories(deps)[id]
	if !ok {
		t.Fatalf("no factory for %s", id)
	}
	return f(core.NewTimerScope())
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick(s core.Screen, name string) core.TimerMsg {
	return core.TimerMsg{Scope: s.Timers().ID(), Name: name, At: time.Now()}
}

var cmdType = reflect.TypeOf(tea.Cmd(nil))

// collect runs cmd and flattens batches and sequences into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	// tea.Sequence yields an unexported slice of commands.
	if v := reflect.ValueOf(msg); v.IsValid() && v.Kind() == reflect.Slice && v.Type().Elem() == cmdType {
		var out []tea.Msg
		for i := 0; i < v.Len(); i++ {
			c, _ := v.Index(i).Interface().(tea.Cmd)
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func navigations(cmd tea.Cmd) []core.Transition {
	var out []core.Transition
	for _, msg := range collect(cmd) {
		if nav, ok := msg.(core.NavigateMsg); ok {
			out = append(out, nav.Transition)
		}
	}
	return out
}

func wantNavigation(t *testing.T, cmd tea.Cmd, want core.Transition) {
	t.Helper()
	got := navigations(cmd)
	if len(got) != 1 || got[0] != want {
		t.Fatalf("navigations = %v, want [%s]", got, want)
	}
}

func overlayFrom(t *testing.T, cmd tea.Cmd) core.Overlay {
	t.Helper()
	for _, msg := range collect(cmd) {
		if push, ok := msg.(core.PushOverlayMsg); ok {
			return push.Overlay
		}
	}
	t.Fatal("no overlay pushed")
	return nil
}
