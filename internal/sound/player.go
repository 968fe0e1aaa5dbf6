// Package sound synthesizes and plays the launch and explosion effects.
package sound

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/sim"
)

// Player plays one effect per launch and explosion. The chain is
// mixer -> volume -> tap -> speaker.
type Player struct {
	sampleRate beep.SampleRate
	launch     *beep.Buffer
	explosion  *beep.Buffer

	mixer  *beep.Mixer
	volume *effects.Volume
	tap    *Tap

	mu      sync.Mutex
	started bool
	logger  *slog.Logger
}

var _ sim.Observer = (*Player)(nil)

// NewPlayer pre-renders both effects at the configured sample rate. Nothing
// reaches the audio device until Start.
func NewPlayer(cfg config.AudioConfig, noise Noise, logger *slog.Logger) *Player {
	sr := beep.SampleRate(cfg.SampleRate)
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}

	mixer := &beep.Mixer{}
	volume := &effects.Volume{Streamer: mixer, Base: 2, Volume: cfg.Volume}

	return &Player{
		sampleRate: sr,
		launch:     render(format, launchSamples(sr)),
		explosion:  render(format, explosionSamples(sr, noise)),
		mixer:      mixer,
		volume:     volume,
		tap:        NewTap(volume, config.VisualRingSize),
		logger:     logger,
	}
}

// Start opens the speaker and begins streaming the mix.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.tap)
	p.started = true
	p.logger.Debug("speaker started", "sampleRate", int(p.sampleRate))
	return nil
}

// Launched plays the whoosh.
func (p *Player) Launched(*sim.Firework) { p.play(p.launch) }

// Exploded plays the bang.
func (p *Player) Exploded(*sim.Firework) { p.play(p.explosion) }

func (p *Player) SetMuted(muted bool) {
	p.withLock(func() { p.volume.Silent = muted })
}

func (p *Player) Muted() bool {
	var muted bool
	p.withLock(func() { muted = p.volume.Silent })
	return muted
}

// SetVolume sets the base-2 volume exponent.
func (p *Player) SetVolume(v float64) {
	p.withLock(func() { p.volume.Volume = v })
}

// Volume returns the base-2 volume exponent in effect.
func (p *Player) Volume() float64 {
	var v float64
	p.withLock(func() { v = p.volume.Volume })
	return v
}

// Level returns the loudness of the most recent audio for the HUD meter.
func (p *Player) Level() float64 {
	return p.tap.Level(config.LevelWindow)
}

func (p *Player) play(buf *beep.Buffer) {
	p.withLock(func() { p.mixer.Add(buf.Streamer(0, buf.Len())) })
}

// withLock guards the mix against the speaker goroutine once it is running.
func (p *Player) withLock(fn func()) {
	p.mu.Lock()
	started := p.started
	p.mu.Unlock()

	if started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}
