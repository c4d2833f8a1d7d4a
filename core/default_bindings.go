package core

const (
	ScopePaywall   = "overlay:paywall"
	ScopeIdleCheck = "overlay:idle-check"
)

func DefaultKeyBindings() []KeyBinding {
	welcome := []string{Welcome.Scope()}
	onboarding := []string{Onboarding.Scope()}
	setup := []string{Setup.Scope()}
	dashboard := []string{Dashboard.Scope()}
	safeRoute := []string{SafeRoute.Scope()}
	fakeCall := []string{FakeCall.Scope()}
	subscription := []string{SubscriptionStatus.Scope()}
	alert := []string{Alert.Scope()}
	contacts := []string{Contacts.Scope()}
	deterrent := []string{Deterrent.Scope()}
	confirmation := []string{Confirmation.Scope()}

	return []KeyBinding{
		{Keys: []string{"enter"}, Action: "get-started", Description: "get started", Scopes: welcome},

		{Keys: []string{"left", "h"}, Action: "prev", Description: "back", Scopes: onboarding},
		{Keys: []string{"right", "l", "enter"}, Action: "next", Description: "next", Scopes: onboarding},

		{Keys: []string{"enter"}, Action: "continue", Description: "continue", Scopes: setup},

		{Keys: []string{"p"}, Action: "panic", Description: "PANIC", Scopes: []string{Dashboard.Scope(), SafeRoute.Scope(), FakeCall.Scope()}},
		{Keys: []string{"r"}, Action: "safe-route", Description: "safe route", Scopes: dashboard},
		{Keys: []string{"f"}, Action: "fake-call", Description: "fake call", Scopes: dashboard},
		{Keys: []string{"m"}, Action: "silent-mode", Description: "silent mode", Scopes: dashboard},
		{Keys: []string{"u"}, Action: "upgrade", Description: "go premium", Scopes: []string{Dashboard.Scope(), FakeCall.Scope()}},
		{Keys: []string{"s"}, Action: "subscription", Description: "subscription", Scopes: dashboard},

		{Keys: []string{"b"}, Action: "back-on-route", Description: "back on route", Scopes: safeRoute},

		{Keys: []string{"k", "up"}, Action: "caller-prev", Description: "caller", Scopes: fakeCall},
		{Keys: []string{"j", "down"}, Action: "caller-next", Description: "caller", Scopes: fakeCall, Hidden: true},
		{Keys: []string{"left"}, Action: "delay-prev", Description: "delay", Scopes: fakeCall},
		{Keys: []string{"right"}, Action: "delay-next", Description: "delay", Scopes: fakeCall, Hidden: true},
		{Keys: []string{"n"}, Action: "edit-name", Description: "custom name", Scopes: fakeCall},
		{Keys: []string{"enter"}, Action: "start-call", Description: "start", Scopes: fakeCall},
		{Keys: []string{"a"}, Action: "answer", Description: "answer", Scopes: fakeCall, Hidden: true},
		{Keys: []string{"d"}, Action: "decline", Description: "decline", Scopes: fakeCall, Hidden: true},
		{Keys: []string{"c"}, Action: "cancel-call", Description: "cancel call", Scopes: fakeCall},

		{Keys: []string{"t"}, Action: "start-trial", Description: "start free trial", Scopes: []string{PremiumUpgrade.Scope(), ScopePaywall}},
		{Keys: []string{"y"}, Action: "toggle-billing", Description: "monthly/yearly", Scopes: []string{PremiumUpgrade.Scope(), SubscriptionStatus.Scope()}},
		{Keys: []string{"u"}, Action: "upgrade-now", Description: "upgrade now", Scopes: subscription},
		{Keys: []string{"p"}, Action: "plans", Description: "plans", Scopes: subscription},
		{Keys: []string{"u"}, Action: "see-plans", Description: "see plans", Scopes: []string{ScopePaywall}},
		{Keys: []string{"esc"}, Action: "back", Description: "back", Scopes: []string{SafeRoute.Scope(), FakeCall.Scope(), PremiumUpgrade.Scope(), SubscriptionStatus.Scope()}},
		{Keys: []string{"esc"}, Action: "close", Description: "maybe later", Scopes: []string{ScopePaywall}},

		{Keys: []string{"y"}, Action: "safe", Description: "I'm safe", Scopes: []string{ScopeIdleCheck}},
		{Keys: []string{"n"}, Action: "need-help", Description: "need help", Scopes: []string{ScopeIdleCheck}},

		{Keys: []string{"enter", "c"}, Action: "confirm", Description: "send alert now", Scopes: alert},
		{Keys: []string{"x", "esc"}, Action: "cancel", Description: "I'm safe, cancel", Scopes: alert},

		{Keys: []string{"enter"}, Action: "continue", Description: "continue to deterrent", Scopes: contacts},

		{Keys: []string{"space"}, Action: "toggle-audio", Description: "stop/resume audio", Scopes: deterrent},
		{Keys: []string{"enter"}, Action: "continue", Description: "continue to status", Scopes: deterrent},

		{Keys: []string{"enter", "h"}, Action: "home", Description: "return home", Scopes: confirmation},

		{Keys: []string{"enter"}, Action: "run-command", Description: "run", Scopes: []string{ScopeCommandPalette}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopeCommandPalette}},

		{Keys: []string{":"}, Action: "command-palette", Description: "commands", Scopes: []string{"*"}},
		{Keys: []string{"v"}, Action: "toggle-voice", Description: "voice", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+r"}, Action: "reset", Description: "restart demo", Scopes: []string{"*"}, Hidden: true},
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"*"}},
	}
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys. Used for user overrides from config.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
			Hidden:      b.Hidden,
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
