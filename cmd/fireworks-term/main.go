// Command fireworks-term runs the firework display inside a terminal.
//
// Usage:
//
//	go run ./cmd/fireworks-term [flags]
//
// Flags:
//
//	-config <path>    YAML config file
//	-seed <n>         Random seed (0 picks one from the clock)
//	-log-file <path>  Write logs to a file instead of discarding them
//
// Controls:
//
//	Space     - Launch a firework
//	Esc/Q     - Quit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/logging"
	"github.com/iburimskiy/fireworks/internal/sim"
)

var (
	configFlag  = flag.String("config", "", "Path to a YAML config file")
	seedFlag    = flag.Uint64("seed", 0, "Random seed (0 picks one from the clock)")
	logFileFlag = flag.String("log-file", "", "Write logs to this file")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fireworks-term:", err)
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

	logger := logging.Discard()
	if *logFileFlag != "" {
		f, err := os.OpenFile(*logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()

		logger, err = logging.New(cfg.Log.Level, f)
		if err != nil {
			return err
		}
	}
	logger = logger.With("session", uuid.NewString())

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s, err := sim.New(cfg, sim.NewRand(seed))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	logger.Info("terminal display started", "seed", seed)
	loop(screen, s, cfg, logger)
	logger.Info("terminal display stopped", "launched", s.Launched(), "frames", s.Frame())
	return nil
}

func loop(screen tcell.Screen, s *sim.Simulation, cfg config.Config, logger *slog.Logger) {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Display.FPS))
	defer ticker.Stop()

	launch := false
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
					return
				case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
					return
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					launch = true
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			s.AdvanceFrame(launch)
			if launch {
				logger.Debug("firework launched", "total", s.Launched())
				launch = false
			}
			draw(screen, s, cfg)
		}
	}
}

func draw(screen tcell.Screen, s *sim.Simulation, cfg config.Config) {
	screen.Clear()
	cols, rows := screen.Size()
	// Last row is the status line.
	view := newViewport(cfg.Display.Width, cfg.Display.Height, cols, rows-1)

	for _, f := range s.Fireworks() {
		if f.State() == sim.Ascending {
			if x, y, ok := view.cell(f.X, f.Y); ok {
				screen.SetContent(x, y, rocketGlyph, nil, styleFor(sim.TrailColor))
			}
			continue
		}
		for _, p := range f.Particles() {
			if x, y, ok := view.cell(p.X, p.Y); ok {
				screen.SetContent(x, y, particleGlyph(p.Opacity()), nil, styleFor(fade(p.Color, p.Opacity())))
			}
		}
	}

	status := fmt.Sprintf(" SPACE: Launch | ESC/Q: Quit | active %d | particles %d ", len(s.Fireworks()), s.ParticleCount())
	if s.Launched() == 0 {
		status = " Welcome to Firework Simulation! Press SPACE to launch. "
	}
	drawText(screen, 0, rows-1, status, tcell.StyleDefault.Reverse(true))
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func styleFor(c config.RGB) tcell.Style {
	return tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
