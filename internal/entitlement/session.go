// Package entitlement tracks premium and trial access for one running
// session and answers feature-gating queries.
package entitlement

import (
	"sync"

	"github.com/google/uuid"
)

// TrialDays is the length of a free trial.
const TrialDays = 7

// Feature identifiers that require premium or an active trial.
const (
	FeatureFakeCallGenerator       = "fake-call-generator"
	FeatureAdvancedRoutePrediction = "advanced-route-prediction"
	FeatureVirtualGuardian         = "virtual-guardian"
	FeatureCloudStorage            = "cloud-storage"
)

var gatedFeatures = map[string]struct{}{
	FeatureFakeCallGenerator:       {},
	FeatureAdvancedRoutePrediction: {},
	FeatureVirtualGuardian:         {},
	FeatureCloudStorage:            {},
}

// GatedFeatures lists the features behind the paywall.
func GatedFeatures() []string {
	return []string{
		FeatureFakeCallGenerator,
		FeatureAdvancedRoutePrediction,
		FeatureVirtualGuardian,
		FeatureCloudStorage,
	}
}

// IsGated reports whether feature requires premium or trial access.
func IsGated(feature string) bool {
	_, ok := gatedFeatures[feature]
	return ok
}

// Tier is the effective access level. Premium outranks trial.
type Tier string

const (
	TierFree    Tier = "free"
	TierTrial   Tier = "trial"
	TierPremium Tier = "premium"
)

// Snapshot is a point-in-time copy of the session flags.
type Snapshot struct {
	IsPremium       bool
	IsTrialActive   bool
	TrialDaysLeft   int
	HasTrialExpired bool
}

func (s Snapshot) Tier() Tier {
	switch {
	case s.IsPremium:
		return TierPremium
	case s.IsTrialActive:
		return TierTrial
	default:
		return TierFree
	}
}

// Session holds entitlement state for the life of the process. It is only
// mutated through StartTrial and UpgradeToPremium.
type Session struct {
	mu    sync.RWMutex
	id    uuid.UUID
	state Snapshot
}

func NewSession() *Session {
	return &Session{
		id:    uuid.New(),
		state: Snapshot{TrialDaysLeft: TrialDays},
	}
}

func (s *Session) ID() uuid.UUID { return s.id }

// StartTrial activates a trial and resets the countdown. Calling it again
// restarts the same trial; trials do not stack.
func (s *Session) StartTrial() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsTrialActive = true
	s.state.TrialDaysLeft = TrialDays
	s.state.HasTrialExpired = false
}

// UpgradeToPremium grants permanent premium and ends any trial. There is no
// downgrade.
func (s *Session) UpgradeToPremium() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsPremium = true
	s.state.IsTrialActive = false
	s.state.HasTrialExpired = false
}

// CheckFeatureAccess is true for every ungated feature, and for gated ones
// while premium or a trial is active.
func (s *Session) CheckFeatureAccess(feature string) bool {
	if !IsGated(feature) {
		return true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsPremium || s.state.IsTrialActive
}

func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) IsPremium() bool       { return s.Snapshot().IsPremium }
func (s *Session) IsTrialActive() bool   { return s.Snapshot().IsTrialActive }
func (s *Session) TrialDaysLeft() int    { return s.Snapshot().TrialDaysLeft }
func (s *Session) HasTrialExpired() bool { return s.Snapshot().HasTrialExpired }
func (s *Session) Tier() Tier            { return s.Snapshot().Tier() }

// HasPremiumAccess is the premium-or-trial check screens use to decide
// whether to show upsell affordances.
func (s *Session) HasPremiumAccess() bool {
	snap := s.Snapshot()
	return snap.IsPremium || snap.IsTrialActive
}

// TrialProgress is the consumed fraction of the trial, in [0, 1].
func (s *Session) TrialProgress() float64 {
	days := s.TrialDaysLeft()
	if days < 0 {
		days = 0
	}
	if days > TrialDays {
		days = TrialDays
	}
	return float64(TrialDays-days) / float64(TrialDays)
}
