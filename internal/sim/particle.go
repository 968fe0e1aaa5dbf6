package sim

import (
	"math"

	"github.com/iburimskiy/fireworks/internal/config"
)

// Particle is a single fading point of a burst.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  config.RGB

	// Alpha is the remaining opacity. It only decreases and never drops below 0.
	Alpha    float64
	FadeRate float64
	Size     int

	gravity float64
	damping float64
}

// NewParticle spawns a particle at (x, y) flying in a uniformly random
// direction with a speed, fade rate and size drawn from p.
func NewParticle(x, y float64, c config.RGB, p config.ParticleConfig, r Rand) Particle {
	angle := uniform(r, 0, 2*math.Pi)
	speed := uniform(r, p.Speed.Min, p.Speed.Max)

	return Particle{
		X:        x,
		Y:        y,
		VX:       math.Cos(angle) * speed,
		VY:       math.Sin(angle) * speed,
		Color:    c,
		Alpha:    p.Alpha,
		FadeRate: uniform(r, p.FadeRate.Min, p.FadeRate.Max),
		Size:     intBetween(r, p.Size.Min, p.Size.Max),
		gravity:  p.Gravity,
		damping:  p.Damping,
	}
}

// Advance moves the particle one frame: position by velocity, gravity into
// VY, damping on VX, then fade. Alpha is clamped at 0.
func (p *Particle) Advance() {
	p.X += p.VX
	p.Y += p.VY
	p.VY += p.gravity
	p.VX *= p.damping

	p.Alpha -= p.FadeRate
	if p.Alpha < 0 {
		p.Alpha = 0
	}
}

// IsDead reports whether the particle has fully faded.
func (p *Particle) IsDead() bool {
	return p.Alpha <= 0
}

// Opacity returns Alpha as an 8-bit channel value.
func (p *Particle) Opacity() uint8 {
	switch {
	case p.Alpha <= 0:
		return 0
	case p.Alpha >= 255:
		return 255
	}
	return uint8(p.Alpha)
}
