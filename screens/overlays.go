package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheild/core"
	"github.com/jask/sheild/internal/entitlement"
	"github.com/jask/sheild/widgets"
)

// paywallOverlay is shown when a locked premium feature is used.
type paywallOverlay struct {
	keys    *core.KeyRegistry
	session *entitlement.Session
	feature string
}

func newPaywall(deps Deps, feature string) *paywallOverlay {
	return &paywallOverlay{keys: deps.Keys, session: deps.Session, feature: feature}
}

func (p *paywallOverlay) Title() string { return "Premium Feature" }
func (p *paywallOverlay) Scope() string { return core.ScopePaywall }

func (p *paywallOverlay) Update(msg tea.Msg) (core.Overlay, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil, false
	}
	switch {
	case p.keys.IsAction(km, "start-trial", p.Scope()):
		p.session.StartTrial()
		return p, tea.Batch(
			core.Feedback(core.FeedbackMedium),
			core.EntitlementChanged(),
			core.StatusCmd("Free trial started: 7 days of premium"),
		), true
	case p.keys.IsAction(km, "see-plans", p.Scope()):
		return p, core.Navigate(core.OpenPremiumUpgrade), true
	case p.keys.IsAction(km, "close", p.Scope()):
		return p, nil, true
	}
	return p, nil, false
}

func (p *paywallOverlay) View(width, height int) string {
	name := p.feature
	for _, f := range featureTitles {
		if f.id == p.feature {
			name = f.title
		}
	}
	body := lines(
		goldStyle.Render("★ "+name),
		"",
		wrap(min(width, 44), mutedStyle.Render("This is a SHEild Premium feature. Start your free 7-day trial to unlock it now.")),
		"",
		textStyle.Render("t start free trial   u see plans   esc maybe later"),
	)
	return widgets.Text(body).Render(width, height)
}

var featureTitles = []struct{ id, title string }{
	{entitlement.FeatureFakeCallGenerator, "Fake Call Generator"},
	{entitlement.FeatureAdvancedRoutePrediction, "Advanced Route Prediction"},
	{entitlement.FeatureVirtualGuardian, "24/7 Virtual Guardian"},
	{entitlement.FeatureCloudStorage, "Cloud Storage"},
}

// idleAnsweredMsg tells the safe-route screen the user responded to the
// idle check.
type idleAnsweredMsg struct {
	safe bool
}

// idleCheckOverlay asks whether the user is still okay after a stretch with
// no input.
type idleCheckOverlay struct {
	keys *core.KeyRegistry
}

func newIdleCheck(deps Deps) *idleCheckOverlay {
	return &idleCheckOverlay{keys: deps.Keys}
}

func (o *idleCheckOverlay) Title() string { return "Are you okay?" }
func (o *idleCheckOverlay) Scope() string { return core.ScopeIdleCheck }

func (o *idleCheckOverlay) Update(msg tea.Msg) (core.Overlay, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil, false
	}
	switch {
	case o.keys.IsAction(km, "safe", o.Scope()):
		return o, func() tea.Msg { return idleAnsweredMsg{safe: true} }, true
	case o.keys.IsAction(km, "need-help", o.Scope()):
		return o, tea.Batch(
			func() tea.Msg { return idleAnsweredMsg{safe: false} },
			core.NavigateWithFeedback(core.FeedbackHeavy, core.PressPanic),
		), true
	}
	return o, nil, false
}

func (o *idleCheckOverlay) View(width, height int) string {
	body := lines(
		warnStyle.Render("Are you okay?"),
		"",
		wrap(min(width, 44), mutedStyle.Render("We haven't detected any activity for a while. Let us know you're safe.")),
		"",
		textStyle.Render("y I'm safe   n I need help"),
	)
	return widgets.Text(body).Render(width, height)
}
