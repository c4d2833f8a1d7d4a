package screens

import (
	"testing"

	"github.com/jask/sheild/core"
	"github.com/jask/sheild/internal/entitlement"
)

func TestFakeCallLockedOpensPaywall(t *testing.T) {
	deps, _ := testDeps(t, 0)
	s := build(t, deps, core.FakeCall)
	fc := s.(*fakeCallScreen)

	_, cmd := s.Update(key("enter"))
	overlay := overlayFrom(t, cmd)
	if overlay.Scope() != core.ScopePaywall {
		t.Fatalf("overlay scope = %q", overlay.Scope())
	}
	if fc.phase != callIdle {
		t.Fatal("countdown started without access")
	}

	_, cmd, pop := overlay.Update(key("t"))
	if !pop {
		t.Fatal("start trial did not close the paywall")
	}
	if !deps.Session.IsTrialActive() {
		t.Fatal("paywall did not start the trial")
	}
	var changed bool
	for _, msg := range collect(cmd) {
		if _, ok := msg.(core.EntitlementChangedMsg); ok {
			changed = true
		}
	}
	if !changed {
		t.Fatal("paywall did not broadcast the entitlement change")
	}

	s.Update(key("enter"))
	if fc.phase != callCountdown || fc.countdown != deps.Data.FakeCall.Delays[0] {
		t.Fatalf("phase=%v countdown=%d after unlocking", fc.phase, fc.countdown)
	}
}

func TestPaywallOtherExits(t *testing.T) {
	deps, _ := testDeps(t, 0)
	p := newPaywall(deps, entitlement.FeatureFakeCallGenerator)

	_, cmd, pop := p.Update(key("u"))
	if !pop {
		t.Fatal("see plans did not close the paywall")
	}
	wantNavigation(t, cmd, core.OpenPremiumUpgrade)

	_, cmd, pop = p.Update(key("esc"))
	if !pop || cmd != nil {
		t.Fatalf("maybe later: pop=%v cmd=%v", pop, cmd != nil)
	}
	if deps.Session.HasPremiumAccess() {
		t.Fatal("closing the paywall granted access")
	}

	if _, _, pop := p.Update(key("z")); pop {
		t.Fatal("unbound key closed the paywall")
	}
}

func TestFakeCallFullCycle(t *testing.T) {
	deps, _ := testDeps(t, 0)
	deps.Session.UpgradeToPremium()
	s := build(t, deps, core.FakeCall)
	fc := s.(*fakeCallScreen)

	s.Update(key("right"))
	s.Update(key("left"))
	s.Update(key("enter"))
	for i := 0; i < fc.delays[0]; i++ {
		s.Update(tick(s, timerCallTick))
	}
	if fc.phase != callIncoming {
		t.Fatalf("phase = %v, want incoming", fc.phase)
	}
	s.Update(key("a"))
	if fc.phase != callAnswered {
		t.Fatalf("phase = %v, want answered", fc.phase)
	}
	s.Update(tick(s, timerHangup))
	if fc.phase != callIdle {
		t.Fatalf("phase = %v, want idle after hangup", fc.phase)
	}
}

func TestFakeCallCancelAndDecline(t *testing.T) {
	deps, _ := testDeps(t, 0)
	deps.Session.StartTrial()
	s := build(t, deps, core.FakeCall)
	fc := s.(*fakeCallScreen)

	s.Update(key("enter"))
	s.Update(key("c"))
	if fc.phase != callIdle || fc.countdown != 0 {
		t.Fatalf("cancel left phase=%v countdown=%d", fc.phase, fc.countdown)
	}
	if _, cmd := s.Update(tick(s, timerCallTick)); cmd != nil {
		t.Fatal("tick after cancel produced a command")
	}

	s.Update(key("enter"))
	fc.countdown = 1
	s.Update(tick(s, timerCallTick))
	s.Update(key("d"))
	if fc.phase != callIdle {
		t.Fatalf("decline left phase=%v", fc.phase)
	}
}

func TestFakeCallCustomName(t *testing.T) {
	deps, _ := testDeps(t, 0)
	s := build(t, deps, core.FakeCall)
	fc := s.(*fakeCallScreen)

	s.Update(key("k"))
	if !fc.callers[fc.caller].Custom {
		t.Fatalf("caller-prev from first caller landed on %q", fc.callers[fc.caller].Name)
	}
	if fc.callerName() != "Unknown" {
		t.Fatalf("empty custom name = %q", fc.callerName())
	}
	s.Update(key("n"))
	if !fc.CapturingInput() {
		t.Fatal("edit-name did not capture input")
	}
	for _, r := range "Ana" {
		s.Update(key(string(r)))
	}
	s.Update(key("enter"))
	if fc.CapturingInput() {
		t.Fatal("enter did not end editing")
	}
	if fc.callerName() != "Ana" {
		t.Fatalf("caller name = %q", fc.callerName())
	}
}

func TestFakeCallNavigation(t *testing.T) {
	deps, _ := testDeps(t, 0)
	s := build(t, deps, core.FakeCall)
	_, cmd := s.Update(key("esc"))
	wantNavigation(t, cmd, core.CloseFakeCall)
	_, cmd = s.Update(key("u"))
	wantNavigation(t, cmd, core.OpenPremiumUpgrade)
	_, cmd = s.Update(key("p"))
	wantNavigation(t, cmd, core.PressPanic)
}

func TestPremiumUpgradeStartsTrialAndGoesHome(t *testing.T) {
	deps, _ := testDeps(t, 0)
	s := build(t, deps, core.PremiumUpgrade)

	s.Update(key("y"))
	if !s.(*premiumUpgradeScreen).yearly {
		t.Fatal("y did not switch to yearly billing")
	}
	_, cmd := s.Update(key("t"))
	wantNavigation(t, cmd, core.ReturnHome)
	snap := deps.Session.Snapshot()
	if !snap.IsTrialActive || snap.TrialDaysLeft != entitlement.TrialDays {
		t.Fatalf("snapshot = %+v", snap)
	}

	if _, cmd := s.Update(key("t")); len(navigations(cmd)) != 0 {
		t.Fatal("second trial start navigated")
	}
}

func TestSubscriptionUpgradeNow(t *testing.T) {
	deps, _ := testDeps(t, 0)
	deps.Session.StartTrial()
	s := build(t, deps, core.SubscriptionStatus)

	_, cmd := s.Update(key("p"))
	wantNavigation(t, cmd, core.OpenPremiumUpgrade)

	_, cmd = s.Update(key("u"))
	wantNavigation(t, cmd, core.ReturnHome)
	if !deps.Session.IsPremium() || deps.Session.IsTrialActive() {
		t.Fatalf("after upgrade: %+v", deps.Session.Snapshot())
	}
	if _, cmd := s.Update(key("u")); len(navigations(cmd)) != 0 {
		t.Fatal("upgrade while premium navigated")
	}
}

func TestSavings(t *testing.T) {
	deps, _ := testDeps(t, 0)
	if got := savings(deps.Data.Pricing); got != 40 {
		t.Fatalf("savings = %d, want 40", got)
	}
}
