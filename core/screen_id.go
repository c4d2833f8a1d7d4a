package core

import "strings"

// ScreenID identifies one full-page view in the navigation state machine.
// The zero value is Welcome.
type ScreenID int

const (
	Welcome ScreenID = iota
	Onboarding
	Setup
	Dashboard
	SafeRoute
	FakeCall
	PremiumUpgrade
	SubscriptionStatus
	Alert
	Contacts
	Deterrent
	Confirmation

	screenCount
)

var screenNames = [screenCount]string{
	Welcome:            "welcome",
	Onboarding:         "onboarding",
	Setup:              "setup",
	Dashboard:          "dashboard",
	SafeRoute:          "safe-route",
	FakeCall:           "fake-call",
	PremiumUpgrade:     "premium-upgrade",
	SubscriptionStatus: "subscription-status",
	Alert:              "alert",
	Contacts:           "contacts",
	Deterrent:          "deterrent",
	Confirmation:       "confirmation",
}

// AllScreens returns every screen in declaration order.
func AllScreens() []ScreenID {
	out := make([]ScreenID, 0, screenCount)
	for s := Welcome; s < screenCount; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is a member of the closed screen set.
func (s ScreenID) Valid() bool {
	return s >= Welcome && s < screenCount
}

// Normalize maps any value outside the screen set to Welcome.
func (s ScreenID) Normalize() ScreenID {
	if !s.Valid() {
		return Welcome
	}
	return s
}

func (s ScreenID) String() string {
	return screenNames[s.Normalize()]
}

// Scope is the key-binding scope used while s is mounted.
func (s ScreenID) Scope() string {
	return "screen:" + s.String()
}

// ParseScreenID resolves a screen name. Unknown names resolve to Welcome.
func ParseScreenID(name string) ScreenID {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range screenNames {
		if candidate == n {
			return ScreenID(i)
		}
	}
	return Welcome
}
