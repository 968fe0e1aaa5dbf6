package sim

import "github.com/iburimskiy/fireworks/internal/config"

// State is the phase of a firework.
type State int

const (
	Ascending State = iota
	Exploded
)

func (s State) String() string {
	switch s {
	case Ascending:
		return "ascending"
	case Exploded:
		return "exploded"
	}
	return "unknown"
}

// TrailColor is the yellowish white of a rising rocket.
var TrailColor = config.RGB{R: 255, G: 255, B: 200}

// Firework is a rocket that rises until it crosses its trigger height and
// then bursts into particles. It owns its particles exclusively.
type Firework struct {
	X, Y     float64
	Velocity float64
	TriggerY float64
	Color    config.RGB

	state     State
	particles []Particle
	burst     config.ParticleConfig
	rng       Rand
}

// NewFirework places a rocket at (x, y). The trigger height is drawn from
// the configured band as a fraction of the display height.
//
// cfg is expected to have passed config.Validate; New does that. An empty
// palette falls back to TrailColor.
func NewFirework(x, y float64, cfg config.Config, r Rand) *Firework {
	band := cfg.Launch.Trigger
	height := float64(cfg.Display.Height)

	c := TrailColor
	if len(cfg.Palette) > 0 {
		c = cfg.Palette[r.IntN(len(cfg.Palette))]
	}

	return &Firework{
		X:        x,
		Y:        y,
		Velocity: cfg.Launch.Velocity,
		TriggerY: height * uniform(r, band.Min, band.Max),
		Color:    c,
		state:    Ascending,
		burst:    cfg.Particle,
		rng:      r,
	}
}

// State returns the current phase.
func (f *Firework) State() State { return f.state }

// Particles returns the live particles. The slice is owned by the firework
// and is only valid until the next Advance.
func (f *Firework) Particles() []Particle { return f.particles }

// Advance runs one frame and reports whether the rocket exploded during it.
// A fresh burst is not advanced in the frame it is spawned.
func (f *Firework) Advance() bool {
	if f.state == Ascending {
		f.Y -= f.Velocity
		if f.Y <= f.TriggerY {
			f.explode()
			return true
		}
		return false
	}

	alive := f.particles[:0]
	for i := range f.particles {
		p := f.particles[i]
		p.Advance()
		if !p.IsDead() {
			alive = append(alive, p)
		}
	}
	clear(f.particles[len(alive):])
	f.particles = alive

	return false
}

// IsFinished reports whether the firework exploded and every particle faded.
func (f *Firework) IsFinished() bool {
	return f.state == Exploded && len(f.particles) == 0
}

func (f *Firework) explode() {
	f.state = Exploded

	n := intBetween(f.rng, f.burst.Count.Min, f.burst.Count.Max)
	f.particles = make([]Particle, 0, n)
	for range n {
		f.particles = append(f.particles, NewParticle(f.X, f.Y, f.Color, f.burst, f.rng))
	}
}
