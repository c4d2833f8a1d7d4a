package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Timers     TimersConfig
	Simulation SimulationConfig
	UI         UIConfig
	Log        LogConfig
	// Keys maps an action name to replacement keys, e.g. panic = ["p", "!"].
	Keys map[string][]string
}

// TimersConfig holds the demo's screen timings.
type TimersConfig struct {
	AlertCountdown   time.Duration `mapstructure:"alert_countdown"`
	DeterrentAdvance time.Duration `mapstructure:"deterrent_advance"`
	SetupPairing     time.Duration `mapstructure:"setup_pairing"`
	AnswerHangup     time.Duration `mapstructure:"answer_hangup"`
	SensorRefresh    time.Duration `mapstructure:"sensor_refresh"`
	RouteProgress    time.Duration `mapstructure:"route_progress"`
	IdleTimeout      time.Duration `mapstructure:"idle_timeout"`
	IdleCheck        time.Duration `mapstructure:"idle_check"`
	DeviationAfter   time.Duration `mapstructure:"deviation_after"`
	DeviationClear   time.Duration `mapstructure:"deviation_clear"`
}

// SimulationConfig tunes the fake device providers.
type SimulationConfig struct {
	Seed             uint64
	VoiceEnabled     bool          `mapstructure:"voice_enabled"`
	VoiceTick        time.Duration `mapstructure:"voice_tick"`
	VoiceProbability float64       `mapstructure:"voice_probability"`
	VoiceDelay       time.Duration `mapstructure:"voice_delay"`
	RouteDeviation   float64       `mapstructure:"route_deviation"`
	Haptics          bool
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AppName string `mapstructure:"app_name"`
}

type LogConfig struct {
	Path string
}

// Path returns the config file location: $SHEILD_CONFIG or
// ~/.config/sheild/config.toml.
func Path() string {
	if p := os.Getenv("SHEILD_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "sheild", "config.toml")
}

// Exists reports whether a config file is present at Path.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("timers.alert_countdown", 10*time.Second)
	v.SetDefault("timers.deterrent_advance", 15*time.Second)
	v.SetDefault("timers.setup_pairing", 3*time.Second)
	v.SetDefault("timers.answer_hangup", 2*time.Second)
	v.SetDefault("timers.sensor_refresh", 2*time.Second)
	v.SetDefault("timers.route_progress", 2*time.Second)
	v.SetDefault("timers.idle_timeout", 2*time.Minute)
	v.SetDefault("timers.idle_check", 30*time.Second)
	v.SetDefault("timers.deviation_after", 15*time.Second)
	v.SetDefault("timers.deviation_clear", 10*time.Second)

	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.voice_enabled", false)
	v.SetDefault("simulation.voice_tick", 100*time.Millisecond)
	v.SetDefault("simulation.voice_probability", 0.02)
	v.SetDefault("simulation.voice_delay", 1500*time.Millisecond)
	v.SetDefault("simulation.route_deviation", 0.3)
	v.SetDefault("simulation.haptics", true)

	v.SetDefault("ui.app_name", "SHEild")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "sheild", "sheild.log"))
}

// Load reads configuration from file and env. Env var overrides use prefix SHEILD_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SHEILD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "sheild"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHEILD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the screens cannot run with.
func (c Config) Validate() error {
	durations := map[string]time.Duration{
		"timers.alert_countdown":   c.Timers.AlertCountdown,
		"timers.deterrent_advance": c.Timers.DeterrentAdvance,
		"timers.setup_pairing":     c.Timers.SetupPairing,
		"timers.answer_hangup":     c.Timers.AnswerHangup,
		"timers.sensor_refresh":    c.Timers.SensorRefresh,
		"timers.route_progress":    c.Timers.RouteProgress,
		"timers.idle_timeout":      c.Timers.IdleTimeout,
		"timers.idle_check":        c.Timers.IdleCheck,
		"timers.deviation_after":   c.Timers.DeviationAfter,
		"timers.deviation_clear":   c.Timers.DeviationClear,
		"simulation.voice_tick":    c.Simulation.VoiceTick,
		"simulation.voice_delay":   c.Simulation.VoiceDelay,
	}
	for key, d := range durations {
		if d <= 0 {
			return fmt.Errorf("config %s: must be positive, got %s", key, d)
		}
	}
	if c.Timers.AlertCountdown < time.Second {
		return fmt.Errorf("config timers.alert_countdown: must be at least 1s, got %s", c.Timers.AlertCountdown)
	}
	if p := c.Simulation.VoiceProbability; p < 0 || p > 1 {
		return fmt.Errorf("config simulation.voice_probability: must be within [0, 1], got %g", p)
	}
	if p := c.Simulation.RouteDeviation; p < 0 || p > 1 {
		return fmt.Errorf("config simulation.route_deviation: must be within [0, 1], got %g", p)
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// The binary calls it on first run so the defaults are visible for editing.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("timers.alert_countdown", cfg.Timers.AlertCountdown.String())
	v.Set("timers.deterrent_advance", cfg.Timers.DeterrentAdvance.String())
	v.Set("timers.setup_pairing", cfg.Timers.SetupPairing.String())
	v.Set("timers.answer_hangup", cfg.Timers.AnswerHangup.String())
	v.Set("timers.sensor_refresh", cfg.Timers.SensorRefresh.String())
	v.Set("timers.route_progress", cfg.Timers.RouteProgress.String())
	v.Set("timers.idle_timeout", cfg.Timers.IdleTimeout.String())
	v.Set("timers.idle_check", cfg.Timers.IdleCheck.String())
	v.Set("timers.deviation_after", cfg.Timers.DeviationAfter.String())
	v.Set("timers.deviation_clear", cfg.Timers.DeviationClear.String())
	v.Set("simulation.seed", cfg.Simulation.Seed)
	v.Set("simulation.voice_enabled", cfg.Simulation.VoiceEnabled)
	v.Set("simulation.voice_tick", cfg.Simulation.VoiceTick.String())
	v.Set("simulation.voice_probability", cfg.Simulation.VoiceProbability)
	v.Set("simulation.voice_delay", cfg.Simulation.VoiceDelay.String())
	v.Set("simulation.route_deviation", cfg.Simulation.RouteDeviation)
	v.Set("simulation.haptics", cfg.Simulation.Haptics)
	v.Set("ui.app_name", cfg.UI.AppName)
	v.Set("log.path", cfg.Log.Path)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
