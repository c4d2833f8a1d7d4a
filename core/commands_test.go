package core

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheild/internal/entitlement"
)

func TestSearchFiltersByScopeAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Scopes: []string{Dashboard.Scope()}},
		{ID: "b", Name: "Beta", Scopes: []string{Alert.Scope()}, Disabled: func(m *Model) (bool, string) { return true, "blocked" }},
	})
	m := NewModel(Options{Commands: reg})
	resA := reg.Search("", Dashboard.Scope(), &m)
	if len(resA) != 1 || resA[0].CommandID != "a" {
		t.Fatalf("expected only command a on dashboard, got %+v", resA)
	}
	resB := reg.Search("", Alert.Scope(), &m)
	if len(resB) != 1 || !resB[0].Disabled || resB[0].Reason != "blocked" {
		t.Fatalf("expected disabled command on alert, got %+v", resB)
	}
}

func TestTransitionCommandsFollowTable(t *testing.T) {
	h := newHarness()
	m := NewModel(Options{Start: Dashboard, Factories: h.factories()})
	reg := m.CommandRegistry()

	cmd := reg.Execute(PressPanic.String(), &m)
	if got := collectMsgs(cmd); len(got) != 2 || got[0] != (FeedbackMsg{Kind: FeedbackHeavy}) || got[1] != (NavigateMsg{Transition: PressPanic}) {
		t.Fatalf("press-panic produced %+v, want heavy feedback then navigation", got)
	}
	msg := reg.Execute(ConfirmAlert.String(), &m)()
	if status, ok := msg.(StatusMsg); !ok || status.Text != "Not available from dashboard" {
		t.Fatalf("confirm-alert on dashboard produced %+v", msg)
	}
	if status, ok := reg.Execute("nope", &m)().(StatusMsg); !ok || !status.IsErr || status.Text != `unknown command "nope"` {
		t.Fatalf("unknown command produced %+v", status)
	}
}

func TestSessionCommands(t *testing.T) {
	session := entitlement.NewSession()
	m := NewModel(Options{Session: session})
	reg := m.CommandRegistry()

	if reg.Execute("start-trial", &m) == nil {
		t.Fatal("start-trial returned no command")
	}
	if !session.IsTrialActive() {
		t.Fatal("start-trial did not start the trial")
	}
	reg.Execute("upgrade-premium", &m)
	if !session.IsPremium() || session.IsTrialActive() {
		t.Fatalf("after upgrade: %+v", session.Snapshot())
	}
	msg := reg.Execute("start-trial", &m)()
	if status, ok := msg.(StatusMsg); !ok || status.Text != "Premium already active" {
		t.Fatalf("start-trial while premium produced %+v", msg)
	}
}

// collectMsgs runs cmd and flattens batches and sequences, in order.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	if v := reflect.ValueOf(msg); v.IsValid() && v.Kind() == reflect.Slice && v.Type().Elem() == reflect.TypeOf(tea.Cmd(nil)) {
		var out []tea.Msg
		for i := 0; i < v.Len(); i++ {
			c, _ := v.Index(i).Interface().(tea.Cmd)
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestTransitionCommandsCarryKeyPathFeedback(t *testing.T) {
	tests := []struct {
		start ScreenID
		t     Transition
		want  FeedbackKind
	}{
		{Dashboard, PressPanic, FeedbackHeavy},
		{Alert, ConfirmAlert, FeedbackHeavy},
		{Alert, CancelAlert, FeedbackMedium},
		{Dashboard, OpenSafeRoute, FeedbackLight},
	}
	for _, tt := range tests {
		t.Run(tt.t.String(), func(t *testing.T) {
			h := newHarness()
			m := NewModel(Options{Start: tt.start, Factories: h.factories()})
			got := collectMsgs(m.CommandRegistry().Execute(tt.t.String(), &m))
			if len(got) != 2 || got[0] != (FeedbackMsg{Kind: tt.want}) {
				t.Fatalf("%s produced %+v, want %s feedback first", tt.t, got, tt.want)
			}
		})
	}
}
