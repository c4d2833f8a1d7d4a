package core

import (
	"reflect"
	"slices"
	"testing"
)

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		t    Transition
		from []ScreenID
		to   ScreenID
	}{
		{CompleteWelcome, []ScreenID{Welcome}, Onboarding},
		{CompleteOnboarding, []ScreenID{Onboarding}, Setup},
		{CompleteSetup, []ScreenID{Setup}, Dashboard},
		{PressPanic, []ScreenID{Dashboard, SafeRoute, FakeCall}, Alert},
		{OpenSafeRoute, []ScreenID{Dashboard}, SafeRoute},
		{CloseSafeRoute, []ScreenID{SafeRoute}, Dashboard},
		{OpenFakeCall, []ScreenID{Dashboard}, FakeCall},
		{CloseFakeCall, []ScreenID{FakeCall}, Dashboard},
		{OpenPremiumUpgrade, []ScreenID{Dashboard, FakeCall, SubscriptionStatus}, PremiumUpgrade},
		{OpenSubscriptionStatus, []ScreenID{Dashboard}, SubscriptionStatus},
		{CancelAlert, []ScreenID{Alert}, Dashboard},
		{ConfirmAlert, []ScreenID{Alert}, Contacts},
		{AdvanceFromContacts, []ScreenID{Contacts}, Deterrent},
		{AdvanceFromDeterrent, []ScreenID{Deterrent}, Confirmation},
		{ReturnHome, []ScreenID{Confirmation, PremiumUpgrade, SubscriptionStatus}, Dashboard},
	}
	if len(tests) != len(AllTransitions()) {
		t.Fatalf("table covers %d transitions, want %d", len(tests), len(AllTransitions()))
	}
	for _, tt := range tests {
		for _, s := range AllScreens() {
			got, ok := Next(s, tt.t)
			if slices.Contains(tt.from, s) {
				if !ok || got != tt.to {
					t.Errorf("Next(%s, %s) = %s, %v; want %s, true", s, tt.t, got, ok, tt.to)
				}
				continue
			}
			if ok || got != s {
				t.Errorf("Next(%s, %s) = %s, %v; want unchanged", s, tt.t, got, ok)
			}
		}
	}
}

func TestNextIsTotal(t *testing.T) {
	for _, s := range append(AllScreens(), ScreenID(-1), ScreenID(99)) {
		for _, tr := range append(AllTransitions(), Transition(99)) {
			got, ok := Next(s, tr)
			if !got.Valid() {
				t.Fatalf("Next(%d, %d) left the screen set: %d", s, tr, got)
			}
			if !ok && got != s.Normalize() {
				t.Fatalf("unapplied Next(%s, %s) moved to %s", s, tr, got)
			}
		}
	}
}

func TestOnlyCompleteWelcomeLeavesWelcome(t *testing.T) {
	n := NewNavigator()
	if n.Current() != Welcome {
		t.Fatalf("start = %s, want welcome", n.Current())
	}
	got := TransitionsFrom(Welcome)
	if len(got) != 1 || got[0] != CompleteWelcome {
		t.Fatalf("transitions from welcome = %v", got)
	}
}

func TestNavigatorDuplicateConfirmIsNoop(t *testing.T) {
	n := NewNavigator()
	n.Restore(Alert)
	if to, ok := n.Apply(ConfirmAlert); !ok || to != Contacts {
		t.Fatalf("first confirm = %s, %v", to, ok)
	}
	if to, ok := n.Apply(ConfirmAlert); ok || to != Contacts {
		t.Fatalf("duplicate confirm = %s, %v; want contacts, false", to, ok)
	}
	n.Reset()
	if n.Current() != Welcome {
		t.Fatalf("after reset current=%s", n.Current())
	}
}

func TestNavigatorLongSessionKeepsOnlyCurrent(t *testing.T) {
	n := NewNavigator()
	n.Restore(Dashboard)
	for i := 0; i < 10000; i++ {
		n.Apply(OpenSafeRoute)
		n.Apply(CloseSafeRoute)
	}
	if n.Current() != Dashboard {
		t.Fatalf("current = %s", n.Current())
	}
	if fields := reflect.TypeOf(Navigator{}).NumField(); fields != 1 {
		t.Fatalf("navigator carries %d fields, want only the current screen", fields)
	}
}

func TestUnknownScreensReadAsWelcome(t *testing.T) {
	if ScreenID(42).Normalize() != Welcome {
		t.Fatal("out-of-range id did not normalize to welcome")
	}
	n := NewNavigator()
	n.Restore(ScreenID(-3))
	if n.Current() != Welcome {
		t.Fatalf("restore of bad id = %s", n.Current())
	}
	if ParseScreenID("safe-route") != SafeRoute {
		t.Fatal("safe-route did not parse")
	}
	if ParseScreenID(" Dashboard ") != Dashboard {
		t.Fatal("parse is not case and space tolerant")
	}
	if ParseScreenID("lobby") != Welcome {
		t.Fatal("unknown name did not fall back to welcome")
	}
	for _, s := range AllScreens() {
		if ParseScreenID(s.String()) != s {
			t.Fatalf("round trip failed for %s", s)
		}
	}
}
