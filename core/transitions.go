package core

// Transition names a navigation event raised by a screen or a timer.
type Transition int

const (
	CompleteWelcome Transition = iota
	CompleteOnboarding
	CompleteSetup
	PressPanic
	OpenSafeRoute
	CloseSafeRoute
	OpenFakeCall
	CloseFakeCall
	OpenPremiumUpgrade
	OpenSubscriptionStatus
	CancelAlert
	ConfirmAlert
	AdvanceFromContacts
	AdvanceFromDeterrent
	ReturnHome

	transitionCount
)

type edge struct {
	name string
	from []ScreenID
	to   ScreenID
}

var transitionTable = [transitionCount]edge{
	CompleteWelcome:        {"complete-welcome", []ScreenID{Welcome}, Onboarding},
	CompleteOnboarding:     {"complete-onboarding", []ScreenID{Onboarding}, Setup},
	CompleteSetup:          {"complete-setup", []ScreenID{Setup}, Dashboard},
	PressPanic:             {"press-panic", []ScreenID{Dashboard, SafeRoute, FakeCall}, Alert},
	OpenSafeRoute:          {"open-safe-route", []ScreenID{Dashboard}, SafeRoute},
	CloseSafeRoute:         {"close-safe-route", []ScreenID{SafeRoute}, Dashboard},
	OpenFakeCall:           {"open-fake-call", []ScreenID{Dashboard}, FakeCall},
	CloseFakeCall:          {"close-fake-call", []ScreenID{FakeCall}, Dashboard},
	OpenPremiumUpgrade:     {"open-premium-upgrade", []ScreenID{Dashboard, FakeCall, SubscriptionStatus}, PremiumUpgrade},
	OpenSubscriptionStatus: {"open-subscription-status", []ScreenID{Dashboard}, SubscriptionStatus},
	CancelAlert:            {"cancel-alert", []ScreenID{Alert}, Dashboard},
	ConfirmAlert:           {"confirm-alert", []ScreenID{Alert}, Contacts},
	AdvanceFromContacts:    {"advance-from-contacts", []ScreenID{Contacts}, Deterrent},
	AdvanceFromDeterrent:   {"advance-from-deterrent", []ScreenID{Deterrent}, Confirmation},
	ReturnHome:             {"return-home", []ScreenID{Confirmation, PremiumUpgrade, SubscriptionStatus}, Dashboard},
}

// AllTransitions returns every transition in declaration order.
func AllTransitions() []Transition {
	out := make([]Transition, 0, transitionCount)
	for t := CompleteWelcome; t < transitionCount; t++ {
		out = append(out, t)
	}
	return out
}

func (t Transition) Valid() bool {
	return t >= CompleteWelcome && t < transitionCount
}

func (t Transition) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return transitionTable[t].name
}

// Target is the screen t leads to.
func (t Transition) Target() ScreenID {
	if !t.Valid() {
		return Welcome
	}
	return transitionTable[t].to
}

// Feedback is the haptic pulse that accompanies t, whichever path requested it.
func (t Transition) Feedback() FeedbackKind {
	switch t {
	case PressPanic, ConfirmAlert:
		return FeedbackHeavy
	case CompleteWelcome, CompleteOnboarding, CompleteSetup, CancelAlert, AdvanceFromContacts, AdvanceFromDeterrent:
		return FeedbackMedium
	}
	return FeedbackLight
}

// AllowedFrom reports whether t is defined for screen s.
func (t Transition) AllowedFrom(s ScreenID) bool {
	if !t.Valid() {
		return false
	}
	s = s.Normalize()
	for _, from := range transitionTable[t].from {
		if from == s {
			return true
		}
	}
	return false
}

// Next is the transition function. It is total: a transition that is not
// defined for from leaves the screen unchanged and reports false.
func Next(from ScreenID, t Transition) (ScreenID, bool) {
	from = from.Normalize()
	if !t.AllowedFrom(from) {
		return from, false
	}
	return transitionTable[t].to, true
}

// TransitionsFrom lists the transitions defined for s.
func TransitionsFrom(s ScreenID) []Transition {
	var out []Transition
	for _, t := range AllTransitions() {
		if t.AllowedFrom(s) {
			out = append(out, t)
		}
	}
	return out
}
