package screens

import (
	"testing"
	"time"

	"github.com/jask/sheild/core"
)

func TestAlertExplicitConfirmMatchesCountdownExpiry(t *testing.T) {
	deps, _ := testDeps(t, 0)

	explicit := build(t, deps, core.Alert)
	_, cmd := explicit.Update(key("enter"))
	wantNavigation(t, cmd, core.ConfirmAlert)

	timed := build(t, deps, core.Alert)
	a := timed.(*alertScreen)
	var last []core.Transition
	for i := 0; i < a.total; i++ {
		_, cmd := timed.Update(tick(timed, timerCountdown))
		if i < a.total-1 {
			if n := navigations(cmd); len(n) != 0 {
				t.Fatalf("tick %d navigated early: %v", i, n)
			}
			continue
		}
		last = navigations(cmd)
	}
	if len(last) != 1 || last[0] != core.ConfirmAlert {
		t.Fatalf("countdown expiry navigations = %v", last)
	}
	if a.remaining != 0 || !a.decided {
		t.Fatalf("after expiry remaining=%d decided=%v", a.remaining, a.decided)
	}
}

func TestAlertDecidesOnce(t *testing.T) {
	deps, _ := testDeps(t, 0)
	s := build(t, deps, core.Alert)
	_, cmd := s.Update(key("x"))
	wantNavigation(t, cmd, core.CancelAlert)

	if _, cmd := s.Update(key("enter")); cmd != nil {
		t.Fatal("confirm after cancel produced a command")
	}
	if _, cmd := s.Update(tick(s, timerCountdown)); cmd != nil {
		t.Fatal("countdown tick after cancel produced a command")
	}
}

func TestDeterrentExplicitContinueMatchesTimeout(t *testing.T) {
	deps, _ := testDeps(t, 0)

	explicit := build(t, deps, core.Deterrent)
	_, cmd := explicit.Update(key("enter"))
	wantNavigation(t, cmd, core.AdvanceFromDeterrent)

	timed := build(t, deps, core.Deterrent)
	_, cmd = timed.Update(tick(timed, timerAdvance))
	wantNavigation(t, cmd, core.AdvanceFromDeterrent)

	if _, cmd := timed.Update(key("enter")); cmd != nil {
		t.Fatal("second advance produced a command")
	}
}

func TestDeterrentPlayCounter(t *testing.T) {
	deps, _ := testDeps(t, 0)
	s := build(t, deps, core.Deterrent)
	d := s.(*deterrentScreen)

	s.Update(tick(s, timerPlay))
	if d.plays != 2 {
		t.Fatalf("plays = %d, want 2", d.plays)
	}
	s.Update(key("space"))
	if d.playing {
		t.Fatal("space did not stop the audio")
	}
	s.Update(tick(s, timerPlay))
	if d.plays != 2 {
		t.Fatalf("counter advanced while stopped: %d", d.plays)
	}
}

func TestContactsRevealAndContinue(t *testing.T) {
	deps, _ := testDeps(t, 0)
	s := build(t, deps, core.Contacts)
	c := s.(*contactsScreen)
	for range deps.Data.Contacts {
		s.Update(tick(s, timerNotify))
	}
	if c.notified != len(deps.Data.Contacts) {
		t.Fatalf("notified = %d", c.notified)
	}
	if _, cmd := s.Update(tick(s, timerNotify)); cmd != nil {
		t.Fatal("extra notify tick produced a command")
	}
	_, cmd := s.Update(key("enter"))
	wantNavigation(t, cmd, core.AdvanceFromContacts)
}

func TestConfirmationReturnsHome(t *testing.T) {
	deps, _ := testDeps(t, 0)
	s := build(t, deps, core.Confirmation)
	_, cmd := s.Update(key("h"))
	wantNavigation(t, cmd, core.ReturnHome)
}

func TestAlertCountdownUsesConfiguredTick(t *testing.T) {
	deps, _ := testDeps(t, 0)
	s := build(t, deps, core.Alert)

	_, cmd := s.Update(tick(s, timerCountdown))
	if cmd == nil {
		t.Fatal("countdown tick did not re-arm")
	}
	start := time.Now()
	if msg := cmd(); msg == nil {
		t.Fatal("re-armed tick fired nothing")
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("re-armed tick took %s with a %s interval", elapsed, deps.Tick)
	}

	if d := (Deps{}).withDefaults(); d.Tick != time.Second {
		t.Fatalf("default tick = %s", d.Tick)
	}
}
