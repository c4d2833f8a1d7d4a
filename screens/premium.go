package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheild/core"
	"github.com/jask/sheild/internal/demo"
	"github.com/jask/sheild/internal/entitlement"
	"github.com/jask/sheild/widgets"
)

type premiumUpgradeScreen struct {
	base
	deps   Deps
	yearly bool
}

func newPremiumUpgrade(deps Deps, timers *core.TimerScope) *premiumUpgradeScreen {
	return &premiumUpgradeScreen{
		base: newBase(core.PremiumUpgrade, "SHEild Premium", deps, timers),
		deps: deps,
	}
}

func (s *premiumUpgradeScreen) Init() tea.Cmd { return nil }

func (s *premiumUpgradeScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case s.is(km, "toggle-billing"):
		s.yearly = !s.yearly
		return s, core.Feedback(core.FeedbackLight)
	case s.is(km, "start-trial"):
		if s.deps.Session.HasPremiumAccess() {
			return s, core.StatusCmd("You're already protected")
		}
		s.deps.Session.StartTrial()
		return s, tea.Batch(
			core.EntitlementChanged(),
			core.StatusCmd("Free trial started: 7 days of premium"),
			core.NavigateWithFeedback(core.FeedbackMedium, core.ReturnHome),
		)
	case s.is(km, "back"):
		return s, core.NavigateWithFeedback(core.FeedbackLight, core.ReturnHome)
	}
	return s, nil
}

func (s *premiumUpgradeScreen) View(width, height int) string {
	features := renderFeatures(s.deps.Data.PremiumFeatures, s.deps.Session, width)
	if s.deps.Session.HasPremiumAccess() {
		return widgets.Text(lines(
			centered(width, goldStyle.Render("★ You're Protected")),
			centered(width, mutedStyle.Render("All premium features are unlocked.")),
			"",
			features,
		)).Render(width, height)
	}
	return widgets.Text(lines(
		centered(width, titleStyle.Render("Upgrade to SHEild Premium")),
		centered(width, mutedStyle.Render("Advanced protection when it matters most")),
		"",
		features,
		"",
		renderPricing(s.deps.Data.Pricing, s.yearly, width),
		"",
		centered(width, textStyle.Render("t start 7-day free trial")+mutedStyle.Render(" · cancel anytime")),
	)).Render(width, height)
}

// renderFeatures lists the premium features with their lock state.
func renderFeatures(features []demo.PremiumFeature, session *entitlement.Session, width int) string {
	rows := make([]string, 0, len(features)*2)
	for _, f := range features {
		mark := mutedStyle.Render("🔒")
		if session.CheckFeatureAccess(f.ID) {
			mark = successStyle.Render("✓ ")
		}
		rows = append(rows, mark+" "+textStyle.Render(f.Title), "   "+mutedStyle.Render(f.Description))
	}
	return widgets.Card{Title: "Premium Features", Content: lines(rows...), Accent: colorGold}.Render(width, len(rows)+2)
}

func renderPricing(p demo.Pricing, yearly bool, width int) string {
	monthly := fmt.Sprintf("Monthly $%.2f/mo", p.Monthly)
	annual := fmt.Sprintf("Yearly $%.2f/yr ($%.2f/mo, save %d%%)", p.Yearly, p.YearlyPerMonth, savings(p))
	if yearly {
		annual = selectedStyle.Render("[" + annual + "]")
		monthly = mutedStyle.Render(monthly)
	} else {
		monthly = selectedStyle.Render("[" + monthly + "]")
		annual = mutedStyle.Render(annual)
	}
	return centered(width, monthly+"  "+annual+hintStyle.Render("  y switch"))
}

func savings(p demo.Pricing) int {
	if p.Monthly <= 0 {
		return 0
	}
	return int((1 - p.YearlyPerMonth/p.Monthly) * 100)
}
