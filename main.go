package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/game"
	"github.com/iburimskiy/fireworks/internal/logging"
	"github.com/iburimskiy/fireworks/internal/settings"
	"github.com/iburimskiy/fireworks/internal/sim"
	"github.com/iburimskiy/fireworks/internal/sound"
	"github.com/ncruces/zenity"
)

var (
	configFlag   = flag.String("config", "", "Path to a YAML config file (defaults are used when empty)")
	seedFlag     = flag.Uint64("seed", 0, "Random seed (0 picks one from the clock)")
	logLevelFlag = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides the config file)")
	muteFlag     = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fireworks:", err)
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle))
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level := cfg.Log.Level
	if *logLevelFlag != "" {
		level = *logLevelFlag
	}
	logger, err := logging.New(level, os.Stderr)
	if err != nil {
		return err
	}
	logger = logger.With("session", uuid.NewString())
	slog.SetDefault(logger)

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	prefs := settings.Open(logger)
	player := startAudio(cfg, seed, logger)

	g, err := game.New(game.Options{
		Config:   cfg,
		Seed:     seed,
		Player:   player,
		Settings: prefs,
		Logger:   logger,
		Muted:    *muteFlag,
	})
	if err != nil {
		return err
	}

	logger.Info("Firework Simulation started", "seed", seed, "width", cfg.Display.Width, "height", cfg.Display.Height)
	logger.Info("Press SPACE to launch a firework, or ESC/Q to quit.")
	return g.Run()
}

// startAudio returns nil when audio is disabled or the device cannot be
// opened; the display then runs silently. The game sets volume and mute.
func startAudio(cfg config.Config, seed uint64, logger *slog.Logger) *sound.Player {
	if !cfg.Audio.Enabled {
		return nil
	}

	p := sound.NewPlayer(cfg.Audio, sim.NewRand(seed+1), logger)

	if err := p.Start(); err != nil {
		logger.Warn("audio unavailable, running silent", "err", err)
		return nil
	}
	return p
}
