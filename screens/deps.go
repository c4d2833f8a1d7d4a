package screens

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheild/core"
	"github.com/jask/sheild/internal/config"
	"github.com/jask/sheild/internal/demo"
	"github.com/jask/sheild/internal/entitlement"
	"github.com/jask/sheild/internal/sim"
)

// Deps is everything a screen may be handed at construction. Screens never
// reach for globals.
type Deps struct {
	Session *entitlement.Session
	Keys    *core.KeyRegistry
	Data    demo.Data
	Timers  config.TimersConfig
	Locator *sim.Locator
	Heart   *sim.HeartRateMonitor
	Route   *sim.RouteMonitor
	Now     func() time.Time
	// Tick paces the once-a-second countdowns (alert, call timer).
	Tick    time.Duration
}

func (d Deps) withDefaults() Deps {
	if d.Session == nil {
		d.Session = entitlement.NewSession()
	}
	if d.Keys == nil {
		d.Keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	if len(d.Data.Onboarding) == 0 {
		d.Data = demo.Default()
	}
	d.Timers = fillTimers(d.Timers)
	if d.Locator == nil || d.Heart == nil || d.Route == nil {
		src := sim.NewSource(0)
		if d.Locator == nil {
			d.Locator = sim.NewLocator(src, d.Data.Location)
		}
		if d.Heart == nil {
			d.Heart = sim.NewHeartRateMonitor(src)
		}
		if d.Route == nil {
			d.Route = sim.NewRouteMonitor(src, 0.3)
		}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Tick <= 0 {
		d.Tick = time.Second
	}
	return d
}

func fillTimers(t config.TimersConfig) config.TimersConfig {
	or := func(d *time.Duration, def time.Duration) {
		if *d <= 0 {
			*d = def
		}
	}
	or(&t.AlertCountdown, 10*time.Second)
	or(&t.DeterrentAdvance, 15*time.Second)
	or(&t.SetupPairing, 3*time.Second)
	or(&t.AnswerHangup, 2*time.Second)
	or(&t.SensorRefresh, 2*time.Second)
	or(&t.RouteProgress, 2*time.Second)
	or(&t.IdleTimeout, 2*time.Minute)
	or(&t.IdleCheck, 30*time.Second)
	or(&t.DeviationAfter, 15*time.Second)
	or(&t.DeviationClear, 10*time.Second)
	return t
}

// Register adds a factory for every screen to factories.
func Register(factories map[core.ScreenID]core.Factory, deps Deps) {
	deps = deps.withDefaults()
	factories[core.Welcome] = func(t *core.TimerScope) core.Screen { return newWelcome(deps, t) }
	factories[core.Onboarding] = func(t *core.TimerScope) core.Screen { return newOnboarding(deps, t) }
	factories[core.Setup] = func(t *core.TimerScope) core.Screen { return newSetup(deps, t) }
	factories[core.Dashboard] = func(t *core.TimerScope) core.Screen { return newDashboard(deps, t) }
	factories[core.SafeRoute] = func(t *core.TimerScope) core.Screen { return newSafeRoute(deps, t) }
	factories[core.FakeCall] = func(t *core.TimerScope) core.Screen { return newFakeCall(deps, t) }
	factories[core.PremiumUpgrade] = func(t *core.TimerScope) core.Screen { return newPremiumUpgrade(deps, t) }
	factories[core.SubscriptionStatus] = func(t *core.TimerScope) core.Screen { return newSubscription(deps, t) }
	factories[core.Alert] = func(t *core.TimerScope) core.Screen { return newAlert(deps, t) }
	factories[core.Contacts] = func(t *core.TimerScope) core.Screen { return newContacts(deps, t) }
	factories[core.Deterrent] = func(t *core.TimerScope) core.Screen { return newDeterrent(deps, t) }
	factories[core.Confirmation] = func(t *core.TimerScope) core.Screen { return newConfirmation(deps, t) }
}

func Factories(deps Deps) map[core.ScreenID]core.Factory {
	out := make(map[core.ScreenID]core.Factory, len(core.AllScreens()))
	Register(out, deps)
	return out
}

// base carries the fields every screen shares.
type base struct {
	id     core.ScreenID
	title  string
	timers *core.TimerScope
	keys   *core.KeyRegistry
}

func newBase(id core.ScreenID, title string, deps Deps, timers *core.TimerScope) base {
	return base{id: id, title: title, timers: timers, keys: deps.Keys}
}

func (b *base) ID() core.ScreenID        { return b.id }
func (b *base) Title() string            { return b.title }
func (b *base) Scope() string            { return b.id.Scope() }
func (b *base) Timers() *core.TimerScope { return b.timers }

func (b *base) is(msg tea.KeyMsg, action string) bool {
	return b.keys.IsAction(msg, action, b.Scope())
}
