package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheild/core"
	"github.com/jask/sheild/internal/entitlement"
	"github.com/jask/sheild/widgets"
)

type subscriptionScreen struct {
	base
	deps   Deps
	yearly bool
}

func newSubscription(deps Deps, timers *core.TimerScope) *subscriptionScreen {
	return &subscriptionScreen{
		base: newBase(core.SubscriptionStatus, "Subscription", deps, timers),
		deps: deps,
	}
}

func (s *subscriptionScreen) Init() tea.Cmd { return nil }

func (s *subscriptionScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case s.is(km, "toggle-billing"):
		s.yearly = !s.yearly
		return s, core.Feedback(core.FeedbackLight)
	case s.is(km, "upgrade-now"):
		if s.deps.Session.IsPremium() {
			return s, core.StatusCmd("Premium already active")
		}
		s.deps.Session.UpgradeToPremium()
		return s, tea.Batch(
			core.EntitlementChanged(),
			core.StatusCmd("Welcome to SHEild Premium"),
			core.NavigateWithFeedback(core.FeedbackMedium, core.ReturnHome),
		)
	case s.is(km, "plans"):
		return s, core.NavigateWithFeedback(core.FeedbackLight, core.OpenPremiumUpgrade)
	case s.is(km, "back"):
		return s, core.NavigateWithFeedback(core.FeedbackLight, core.ReturnHome)
	}
	return s, nil
}

func (s *subscriptionScreen) statusCard(width int) string {
	snap := s.deps.Session.Snapshot()
	var content string
	accent := colorMuted
	switch {
	case snap.IsPremium:
		accent = colorGold
		content = lines(goldStyle.Render("★ Premium"), mutedStyle.Render("All features unlocked. Thank you for staying safe with us."))
	case snap.IsTrialActive:
		accent = colorAccent
		content = lines(
			subtitleStyle.Render(fmt.Sprintf("Free trial · %d days left", snap.TrialDaysLeft)),
			widgets.ProgressBar(s.deps.Session.TrialProgress(), max(10, width-4)),
			mutedStyle.Render("Upgrade before your trial ends to keep premium protection."),
		)
	case snap.HasTrialExpired:
		accent = colorDanger
		content = lines(dangerStyle.Render("Trial expired"), mutedStyle.Render("Premium features are locked again."))
	default:
		content = lines(textStyle.Render("Free plan"), mutedStyle.Render("Core safety features only."))
	}
	return widgets.Card{Title: "Status", Content: content, Accent: accent}.Render(width, 5)
}

func (s *subscriptionScreen) View(width, height int) string {
	body := []string{
		s.statusCard(width),
		renderFeatures(s.deps.Data.PremiumFeatures, s.deps.Session, width),
	}
	if s.deps.Session.Tier() != entitlement.TierPremium {
		body = append(body, "", renderPricing(s.deps.Data.Pricing, s.yearly, width), centered(width, textStyle.Render("u upgrade now")))
	}
	return widgets.Text(lines(body...)).Render(width, height)
}
