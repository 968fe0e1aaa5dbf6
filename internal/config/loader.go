package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Load reads a YAML config file on top of Default and validates the result.
//
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML config bytes on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects configurations that would make the simulation degenerate,
// such as inverted ranges or particles that never fade.
func (c Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return invalid("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.FPS <= 0 || c.Display.FPS > MaxFPS {
		return invalid("display fps must be in [1, %d], got %d", MaxFPS, c.Display.FPS)
	}

	if !(c.Launch.Velocity > 0) || math.IsInf(c.Launch.Velocity, 0) {
		return invalid("launch velocity must be positive, got %v", c.Launch.Velocity)
	}
	if err := checkFraction("launch.center", c.Launch.Center); err != nil {
		return err
	}
	if err := checkFraction("launch.trigger", c.Launch.Trigger); err != nil {
		return err
	}
	if c.Launch.Trigger.Max >= 1 {
		return invalid("launch.trigger max must be below 1 so rockets rise before exploding, got %v", c.Launch.Trigger.Max)
	}

	p := c.Particle
	if p.Count.Min < 0 || p.Count.Min > p.Count.Max {
		return invalid("particle.count range invalid: min(%d) max(%d)", p.Count.Min, p.Count.Max)
	}
	if err := checkRange("particle.speed", p.Speed); err != nil {
		return err
	}
	if p.Speed.Min < 0 {
		return invalid("particle.speed min must not be negative, got %v", p.Speed.Min)
	}
	if err := checkRange("particle.fadeRate", p.FadeRate); err != nil {
		return err
	}
	if !(p.FadeRate.Min > 0) {
		return invalid("particle.fadeRate min must be positive, got %v", p.FadeRate.Min)
	}
	if p.Size.Min < 1 || p.Size.Min > p.Size.Max {
		return invalid("particle.size range invalid: min(%d) max(%d)", p.Size.Min, p.Size.Max)
	}
	if !(p.Gravity >= 0) || math.IsInf(p.Gravity, 0) {
		return invalid("particle.gravity must be a non-negative number, got %v", p.Gravity)
	}
	if !(p.Damping > 0 && p.Damping <= 1) {
		return invalid("particle.damping must be in (0, 1], got %v", p.Damping)
	}
	if !(p.Alpha > 0) || math.IsInf(p.Alpha, 0) {
		return invalid("particle.alpha must be positive, got %v", p.Alpha)
	}

	if len(c.Palette) == 0 {
		return invalid("palette must contain at least one color")
	}

	if c.Audio.SampleRate <= 0 {
		return invalid("audio.sampleRate must be positive, got %d", c.Audio.SampleRate)
	}
	if !(c.Audio.Volume >= MinVolume && c.Audio.Volume <= MaxVolume) {
		return invalid("audio.volume must be in [%v, %v], got %v", MinVolume, MaxVolume, c.Audio.Volume)
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return invalid("unknown log.level %q", c.Log.Level)
	}

	return nil
}

func checkRange(name string, r FloatRange) error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return invalid("%s range must be finite", name)
	}
	if r.Min > r.Max {
		return invalid("%s range invalid: min(%v) > max(%v)", name, r.Min, r.Max)
	}
	return nil
}

func checkFraction(name string, r FloatRange) error {
	if err := checkRange(name, r); err != nil {
		return err
	}
	if r.Min < 0 || r.Max > 1 {
		return invalid("%s must lie within [0, 1], got [%v, %v]", name, r.Min, r.Max)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
