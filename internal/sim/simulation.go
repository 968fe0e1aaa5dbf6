package sim

import (
	"errors"
	"fmt"

	"github.com/iburimskiy/fireworks/internal/config"
)

//go:generate go tool mockgen -destination=./mocks/observer_mock.go -package=mocks . Observer

// Observer is told about launches and explosions after each frame's update.
// Implementations must not mutate the fireworks they receive.
type Observer interface {
	Launched(f *Firework)
	Exploded(f *Firework)
}

// Option customizes a Simulation.
type Option func(*Simulation)

// WithObserver adds an observer. Observers are notified in the order added.
func WithObserver(o Observer) Option {
	return func(s *Simulation) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

type eventKind int

const (
	eventLaunched eventKind = iota
	eventExploded
)

type event struct {
	kind     eventKind
	firework *Firework
}

// Simulation owns the active fireworks and advances them once per frame.
// It is not safe for concurrent use.
type Simulation struct {
	cfg       config.Config
	rng       Rand
	fireworks []*Firework
	observers []Observer
	pending   []event

	frame    uint64
	launched uint64
}

// New validates cfg and returns an empty simulation drawing from rng.
func New(cfg config.Config, rng Rand, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	if rng == nil {
		return nil, errors.New("new simulation: nil random source")
	}

	s := &Simulation{cfg: cfg, rng: rng}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// AdvanceFrame runs one frame. When triggerLaunch is set a new rocket is
// appended first, then every firework advances once and finished ones are
// dropped in a single pass. Observers run last.
func (s *Simulation) AdvanceFrame(triggerLaunch bool) {
	s.frame++

	if triggerLaunch {
		f := s.launch()
		s.pending = append(s.pending, event{kind: eventLaunched, firework: f})
	}

	for _, f := range s.fireworks {
		if f.Advance() {
			s.pending = append(s.pending, event{kind: eventExploded, firework: f})
		}
	}

	active := s.fireworks[:0]
	for _, f := range s.fireworks {
		if !f.IsFinished() {
			active = append(active, f)
		}
	}
	clear(s.fireworks[len(active):])
	s.fireworks = active

	s.notify()
	clear(s.pending)
	s.pending = s.pending[:0]
}

// Fireworks returns the active fireworks in launch order. The slice is only
// valid until the next AdvanceFrame.
func (s *Simulation) Fireworks() []*Firework { return s.fireworks }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.Config { return s.cfg }

// Frame returns the number of frames advanced so far.
func (s *Simulation) Frame() uint64 { return s.frame }

// Launched returns the number of rockets launched so far.
func (s *Simulation) Launched() uint64 { return s.launched }

// ParticleCount returns the number of live particles across all fireworks.
func (s *Simulation) ParticleCount() int {
	n := 0
	for _, f := range s.fireworks {
		n += len(f.particles)
	}
	return n
}

func (s *Simulation) launch() *Firework {
	width := float64(s.cfg.Display.Width)
	x := width * uniform(s.rng, s.cfg.Launch.Center.Min, s.cfg.Launch.Center.Max)

	f := NewFirework(x, float64(s.cfg.Display.Height), s.cfg, s.rng)
	s.fireworks = append(s.fireworks, f)
	s.launched++
	return f
}

func (s *Simulation) notify() {
	if len(s.observers) == 0 {
		return
	}
	for _, e := range s.pending {
		for _, o := range s.observers {
			switch e.kind {
			case eventLaunched:
				o.Launched(e.firework)
			case eventExploded:
				o.Exploded(e.firework)
			}
		}
	}
}
