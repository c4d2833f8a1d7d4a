// Package demo loads the hardcoded mock content the screens display.
package demo

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed data.toml
var defaultData []byte

type Device struct {
	Name    string `toml:"name"`
	Battery int    `toml:"battery"`
	Signal  string `toml:"signal"`
}

type Location struct {
	Address  string   `toml:"address"`
	City     string   `toml:"city"`
	State    string   `toml:"state"`
	Zip      string   `toml:"zip"`
	Lat      float64  `toml:"lat"`
	Lng      float64  `toml:"lng"`
	Accuracy string   `toml:"accuracy"`
	Nearby   []string `toml:"nearby"`
}

type Checkpoint struct {
	Name     string `toml:"name"`
	Distance string `toml:"distance"`
	Status   string `toml:"status"` // passed, current, upcoming
}

type Route struct {
	Destination   string       `toml:"destination"`
	EstimatedTime string       `toml:"estimated_time"`
	Distance      string       `toml:"distance"`
	SafetyScore   string       `toml:"safety_score"`
	Checkpoints   []Checkpoint `toml:"checkpoints"`
}

type Contact struct {
	Name      string `toml:"name"`
	Number    string `toml:"number"`
	Status    string `toml:"status"` // notified, delivered
	Time      string `toml:"time"`
	Response  string `toml:"response"`
	Responded string `toml:"responded"`
}

type Caller struct {
	Name  string `toml:"name"`
	Emoji string `toml:"emoji"`
	// Custom callers take their display name from user input.
	Custom bool `toml:"custom"`
}

type FakeCall struct {
	Callers []Caller `toml:"callers"`
	Delays  []int    `toml:"delays"` // seconds
}

type Slide struct {
	Title       string   `toml:"title"`
	Subtitle    string   `toml:"subtitle"`
	Description string   `toml:"description"`
	Features    []string `toml:"features"`
}

type SetupStep struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Kind        string `toml:"kind"`
}

type PremiumFeature struct {
	ID          string `toml:"id"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

type Pricing struct {
	Monthly        float64 `toml:"monthly"`
	Yearly         float64 `toml:"yearly"`
	YearlyPerMonth float64 `toml:"yearly_per_month"`
}

type Deterrent struct {
	Message string `toml:"message"`
}

// Data is the whole mock content set.
type Data struct {
	Device          Device           `toml:"device"`
	Location        Location         `toml:"location"`
	Route           Route            `toml:"route"`
	Contacts        []Contact        `toml:"contacts"`
	FakeCall        FakeCall         `toml:"fake_call"`
	Onboarding      []Slide          `toml:"onboarding"`
	Setup           []SetupStep      `toml:"setup"`
	PremiumFeatures []PremiumFeature `toml:"premium_features"`
	Pricing         Pricing          `toml:"pricing"`
	Deterrent       Deterrent        `toml:"deterrent"`
}

// Parse decodes a TOML content set and checks the lists screens index into.
func Parse(raw []byte) (Data, error) {
	var d Data
	if _, err := toml.Decode(string(raw), &d); err != nil {
		return Data{}, fmt.Errorf("decode demo data: %w", err)
	}
	switch {
	case len(d.Onboarding) == 0:
		return Data{}, fmt.Errorf("demo data: no onboarding slides")
	case len(d.Setup) == 0:
		return Data{}, fmt.Errorf("demo data: no setup steps")
	case len(d.FakeCall.Callers) == 0 || len(d.FakeCall.Delays) == 0:
		return Data{}, fmt.Errorf("demo data: fake call needs callers and delays")
	}
	return d, nil
}

var (
	defaultOnce sync.Once
	defaultSet  Data
)

// Default returns the embedded content set. The embedded file is part of the
// build, so a decode failure is a programming error.
func Default() Data {
	defaultOnce.Do(func() {
		d, err := Parse(defaultData)
		if err != nil {
			panic(err)
		}
		defaultSet = d
	})
	return defaultSet
}
