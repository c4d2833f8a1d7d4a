package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "sheild.toml")
	t.Setenv("SHEILD_CONFIG", path)
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timers.AlertCountdown != 10*time.Second {
		t.Fatalf("alert countdown = %s, want 10s", cfg.Timers.AlertCountdown)
	}
	if cfg.Timers.DeterrentAdvance != 15*time.Second {
		t.Fatalf("deterrent advance = %s, want 15s", cfg.Timers.DeterrentAdvance)
	}
	if cfg.Timers.IdleTimeout != 2*time.Minute {
		t.Fatalf("idle timeout = %s, want 2m", cfg.Timers.IdleTimeout)
	}
	if cfg.Simulation.VoiceProbability != 0.02 {
		t.Fatalf("voice probability = %g, want 0.02", cfg.Simulation.VoiceProbability)
	}
	if cfg.UI.AppName != "SHEild" {
		t.Fatalf("app name = %q", cfg.UI.AppName)
	}
	if Exists() {
		t.Fatal("Exists reported a file that was never written")
	}
}

func TestLoadReadsFileAndKeys(t *testing.T) {
	path := isolate(t)
	body := `
[timers]
alert_countdown = "5s"

[simulation]
seed = 42
voice_enabled = true

[keys]
panic = ["p", "!"]
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timers.AlertCountdown != 5*time.Second {
		t.Fatalf("alert countdown = %s, want 5s", cfg.Timers.AlertCountdown)
	}
	if cfg.Timers.SetupPairing != 3*time.Second {
		t.Fatalf("setup pairing default lost: %s", cfg.Timers.SetupPairing)
	}
	if cfg.Simulation.Seed != 42 || !cfg.Simulation.VoiceEnabled {
		t.Fatalf("simulation = %+v", cfg.Simulation)
	}
	if got := cfg.Keys["panic"]; len(got) != 2 || got[1] != "!" {
		t.Fatalf("keys.panic = %v", got)
	}
}

func TestEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SHEILD_UI_APP_NAME", "Guard")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.AppName != "Guard" {
		t.Fatalf("app name = %q, want env override", cfg.UI.AppName)
	}
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	path := isolate(t)
	body := "[simulation]\nvoice_probability = 1.5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "voice_probability") {
		t.Fatalf("expected voice_probability error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	isolate(t)
	base, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero idle check", func(c *Config) { c.Timers.IdleCheck = 0 }, "timers.idle_check"},
		{"sub-second countdown", func(c *Config) { c.Timers.AlertCountdown = 500 * time.Millisecond }, "alert_countdown"},
		{"negative deviation", func(c *Config) { c.Simulation.RouteDeviation = -0.1 }, "route_deviation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Timers.AlertCountdown = 7 * time.Second
	cfg.UI.AppName = "Shield Demo"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Timers.AlertCountdown != 7*time.Second || got.UI.AppName != "Shield Demo" {
		t.Fatalf("reloaded %+v / %+v", got.Timers, got.UI)
	}
}
