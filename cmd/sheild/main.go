package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheild/core"
	"github.com/jask/sheild/internal/config"
	"github.com/jask/sheild/internal/demo"
	"github.com/jask/sheild/internal/entitlement"
	"github.com/jask/sheild/internal/sim"
	"github.com/jask/sheild/screens"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if !config.Exists() {
		if err := config.Save(cfg); err != nil {
			log.Printf("warn: could not write default config: %v", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
		log.Fatalf("mkdir log dir: %v", err)
	}
	logFile, err := tea.LogToFile(cfg.Log.Path, "")
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer logFile.Close()

	data := demo.Default()
	session := entitlement.NewSession()
	src := sim.NewSource(cfg.Simulation.Seed)

	bindings := core.DefaultKeyBindings()
	if len(cfg.Keys) > 0 {
		bindings = core.ApplyActionKeybindings(bindings, cfg.Keys)
	}
	keys := core.NewKeyRegistry(bindings)

	factories := screens.Factories(screens.Deps{
		Session: session,
		Keys:    keys,
		Data:    data,
		Timers:  cfg.Timers,
		Locator: sim.NewLocator(src, data.Location),
		Heart:   sim.NewHeartRateMonitor(src),
		Route:   sim.NewRouteMonitor(src, cfg.Simulation.RouteDeviation),
	})

	log.Printf("sheild: session=%s starting", session.ID())
	p := tea.NewProgram(core.NewModel(core.Options{
		AppName:    cfg.UI.AppName,
		Start:      core.Welcome,
		Factories:  factories,
		Keys:       keys,
		Session:    session,
		Haptics:    sim.Haptics{Enabled: cfg.Simulation.Haptics},
		Voice:      sim.NewVoiceRecognizer(src, cfg.Simulation.VoiceProbability),
		VoiceOn:    cfg.Simulation.VoiceEnabled,
		VoiceTick:  cfg.Simulation.VoiceTick,
		VoiceDelay: cfg.Simulation.VoiceDelay,
	}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
