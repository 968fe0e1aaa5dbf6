// Package game is the ebiten frontend: it feeds keyboard input into the
// simulation each tick and draws rockets, bursts and the footer HUD.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/settings"
	"github.com/iburimskiy/fireworks/internal/sim"
	"github.com/iburimskiy/fireworks/internal/sound"
	"github.com/ncruces/zenity"
)

const (
	volumeStep = 0.5

	buttonLabel     = "Load Show"
	burstMarkerRays = 8
)

// Options wires the game to its collaborators. Player and Settings may be nil.
type Options struct {
	Config   config.Config
	Seed     uint64
	Player   *sound.Player
	Settings *settings.Manager
	Logger   *slog.Logger
	// Muted starts the session silent without touching saved settings.
	Muted bool
}

type Game struct {
	cfg    config.Config
	seed   uint64
	sim    *sim.Simulation
	player *sound.Player
	prefs  *settings.Manager
	logger *slog.Logger
	// set by -mute, cleared once the user unmutes
	forceMute bool

	// HUD
	frames          uint64
	waitingForInput bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	lastErr error
}

func New(o Options) (*Game, error) {
	g := &Game{
		seed:            o.Seed,
		player:          o.Player,
		prefs:           o.Settings,
		logger:          o.Logger,
		forceMute:       o.Muted,
		waitingForInput: true,
		prevKey:         map[ebiten.Key]bool{},
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if err := g.reset(o.Config, o.Seed); err != nil {
		return nil, err
	}
	g.applyAudio(o.Config)
	return g, nil
}

// Run opens the window and blocks until the user quits.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.cfg.Display.Width, g.cfg.Display.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(g.cfg.Display.FPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// reset rebuilds the simulation for cfg, dropping every active firework.
func (g *Game) reset(cfg config.Config, seed uint64) error {
	var opts []sim.Option
	if g.player != nil {
		opts = append(opts, sim.WithObserver(g.player))
	}

	s, err := sim.New(cfg, sim.NewRand(seed), opts...)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.seed = seed
	g.sim = s
	return nil
}

// apply swaps in a reloaded config. The new run is reseeded so it does not
// replay the previous launch sequence.
func (g *Game) apply(cfg config.Config) error {
	if err := g.reset(cfg, g.seed+g.frames+1); err != nil {
		return err
	}
	g.applyAudio(cfg)
	g.waitingForInput = true
	return nil
}

// applyAudio sets the player from the config base volume, the saved trim and
// the mute state. Audio disabled in cfg mutes an already running player.
func (g *Game) applyAudio(cfg config.Config) {
	if g.player == nil {
		return
	}
	prefs := settings.Default()
	if g.prefs != nil {
		prefs = g.prefs.Get()
	}
	g.player.SetVolume(cfg.Audio.Volume + prefs.Volume)
	g.player.SetMuted(g.forceMute || !cfg.Audio.Enabled || !prefs.SoundEnabled)
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	// Handle button interactions
	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.openConfigDialog()
		}
		g.buttonPressed = false
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyO) {
		g.openConfigDialog()
	}
	if justPressed(ebiten.KeyM) {
		g.toggleMute()
	}
	if justPressed(ebiten.KeyEqual) || justPressed(ebiten.KeyKPAdd) {
		g.adjustVolume(volumeStep)
	}
	if justPressed(ebiten.KeyMinus) || justPressed(ebiten.KeyKPSubtract) {
		g.adjustVolume(-volumeStep)
	}

	launch := justPressed(ebiten.KeySpace)
	g.sim.AdvanceFrame(launch)
	g.frames++

	if launch {
		g.waitingForInput = false
		g.logger.Info("firework launched", "total", g.sim.Launched(), "active", len(g.sim.Fireworks()))
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	for _, f := range g.sim.Fireworks() {
		drawFirework(screen, f)
	}

	w, h := g.cfg.Display.Width, g.cfg.Display.Height
	if g.waitingForInput && len(g.sim.Fireworks()) == 0 {
		msg := "Welcome to Firework Simulation!"
		ebitenutil.DebugPrintAt(screen, msg, (w-len(msg)*6)/2, h/2-20)
	}

	g.drawButton(screen)
	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), config.ButtonX+config.ButtonWidth+12, config.ButtonY+6)
	}

	g.drawFooter(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Display.Width, g.cfg.Display.Height
}

func drawFirework(screen *ebiten.Image, f *sim.Firework) {
	if f.State() == sim.Ascending {
		trail := rgba(sim.TrailColor, 255)
		vector.DrawFilledCircle(screen, float32(f.X), float32(f.Y), config.RocketRadius, trail, true)
		vector.DrawFilledCircle(screen, float32(f.X), float32(f.Y+config.TrailOffset), config.TrailRadius, trail, true)
		return
	}

	for _, p := range f.Particles() {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), rgba(p.Color, p.Opacity()), true)
	}
}

func (g *Game) drawFooter(screen *ebiten.Image) {
	w, h := g.cfg.Display.Width, g.cfg.Display.Height
	top := h - config.FooterHeight
	textY := top + config.FooterHeight/2 - 8

	vector.DrawFilledRect(screen, 0, float32(top), float32(w), config.FooterHeight, color.NRGBA{A: config.FooterAlpha}, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), 10, textY)

	controls := "SPACE: Launch  |  M: Mute  |  O: Load Show  |  ESC/Q: Quit"
	ebitenutil.DebugPrintAt(screen, controls, (w-len(controls)*6)/2, textY)

	elapsed := formatElapsed(g.frames, g.cfg.Display.FPS)
	ebitenutil.DebugPrintAt(screen, elapsed, w-len(elapsed)*6-10, textY)

	g.drawMeter(screen, w-len(elapsed)*6-20-config.MeterWidth, top+(config.FooterHeight-config.MeterHeight)/2)
}

// drawMeter shows the current audio level, green when quiet and red when loud.
func (g *Game) drawMeter(screen *ebiten.Image, x, y int) {
	if g.player == nil {
		return
	}

	vector.StrokeRect(screen, float32(x), float32(y), config.MeterWidth, config.MeterHeight, 1, color.RGBA{R: 100, G: 110, B: 130, A: 255}, false)
	if g.player.Muted() {
		ebitenutil.DebugPrintAt(screen, "muted", x+config.MeterWidth/2-15, y-4)
		return
	}

	fill := clamp01(g.player.Level() * 4)
	if fill == 0 {
		return
	}
	r, gv, b := hsvToRgb(120-120*fill, 0.8, 0.9)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(fill*config.MeterWidth), config.MeterHeight, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
}

// drawButton draws the "Load Show" button tinted with the first palette
// color, with a small burst marker on its left edge.
func (g *Game) drawButton(screen *ebiten.Image) {
	accent := g.cfg.Palette[0]
	fill := buttonFill(accent, g.buttonHovered, g.buttonPressed)

	x, y := float32(config.ButtonX), float32(config.ButtonY)
	vector.DrawFilledRect(screen, x, y, config.ButtonWidth, config.ButtonHeight, rgba(fill, 255), false)
	vector.StrokeRect(screen, x, y, config.ButtonWidth, config.ButtonHeight, 1, rgba(accent, 255), false)

	// burst marker
	cx, cy := x+config.ButtonHeight/2, y+config.ButtonHeight/2
	for i, c := range g.cfg.Palette {
		if i == burstMarkerRays {
			break
		}
		angle := 2 * math.Pi * float64(i) / burstMarkerRays
		dx, dy := float32(6*math.Cos(angle)), float32(6*math.Sin(angle))
		vector.DrawFilledCircle(screen, cx+dx, cy+dy, 1.5, rgba(c, 255), true)
	}
	vector.DrawFilledCircle(screen, cx, cy, 2, rgba(sim.TrailColor, 255), true)

	textX := config.ButtonX + config.ButtonHeight
	textY := config.ButtonY + (config.ButtonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, buttonLabel, textX, textY)
}

func (g *Game) openConfigDialog() {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Firework Config"),
		zenity.FileFilters{{
			Name:     "YAML",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.lastErr = err
		}
		return
	}

	if err := g.loadConfig(filename); err != nil {
		g.lastErr = err
		g.logger.Warn("config rejected", "path", filename, "err", err)
		return
	}
	g.lastErr = nil
	g.logger.Info("config loaded", "path", filename)
}

func (g *Game) loadConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := g.apply(cfg); err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetTPS(cfg.Display.FPS)
	g.logger.Info("simulation reset", "seed", g.seed)
	return nil
}

func (g *Game) toggleMute() {
	if g.player == nil {
		return
	}
	muted := !g.player.Muted()
	g.forceMute = false
	g.player.SetMuted(muted)

	if g.prefs != nil {
		g.prefs.SetSoundEnabled(!muted)
		g.savePrefs()
	}
	g.logger.Debug("sound toggled", "muted", muted)
}

// adjustVolume moves the user's volume trim, which sits on top of the
// configured base volume.
func (g *Game) adjustVolume(delta float64) {
	if g.player == nil || g.prefs == nil {
		return
	}
	g.prefs.SetVolume(g.prefs.Get().Volume + delta)
	g.player.SetVolume(g.cfg.Audio.Volume + g.prefs.Get().Volume)
	g.savePrefs()
}

func (g *Game) savePrefs() {
	if err := g.prefs.Save(); err != nil {
		g.logger.Warn("failed to save settings", "err", err)
	}
}

func rgba(c config.RGB, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}
