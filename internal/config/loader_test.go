package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 800, cfg.Display.Width)
	assert.Equal(t, 600, cfg.Display.Height)
	assert.Equal(t, 12.0, cfg.Launch.Velocity)
	assert.Equal(t, IntRange{Min: 80, Max: 120}, cfg.Particle.Count)
	assert.Len(t, cfg.Palette, 8)
}

func TestLoadShippedFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "data", "fireworks.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fw.yaml")
	data := []byte("display:\n  width: 1024\nparticle:\n  count: {min: 10, max: 20}\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Display.Width)
	assert.Equal(t, 600, cfg.Display.Height)
	assert.Equal(t, IntRange{Min: 10, Max: 20}, cfg.Particle.Count)
	assert.Equal(t, 0.98, cfg.Particle.Damping)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("display: [1, 2"))
	require.Error(t, err)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	_, err := Parse([]byte("particle:\n  count: {min: -5, max: 10}\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero width", func(c *Config) { c.Display.Width = 0 }},
		{"negative height", func(c *Config) { c.Display.Height = -1 }},
		{"zero fps", func(c *Config) { c.Display.FPS = 0 }},
		{"fps too high", func(c *Config) { c.Display.FPS = 2_000_000_000 }},
		{"zero velocity", func(c *Config) { c.Launch.Velocity = 0 }},
		{"infinite velocity", func(c *Config) { c.Launch.Velocity = math.Inf(1) }},
		{"center inverted", func(c *Config) { c.Launch.Center = FloatRange{Min: 0.8, Max: 0.2} }},
		{"center outside", func(c *Config) { c.Launch.Center = FloatRange{Min: -0.1, Max: 0.5} }},
		{"trigger at bottom", func(c *Config) { c.Launch.Trigger = FloatRange{Min: 0.5, Max: 1} }},
		{"negative count", func(c *Config) { c.Particle.Count = IntRange{Min: -1, Max: 10} }},
		{"count inverted", func(c *Config) { c.Particle.Count = IntRange{Min: 120, Max: 80} }},
		{"negative speed", func(c *Config) { c.Particle.Speed = FloatRange{Min: -1, Max: 2} }},
		{"zero fade", func(c *Config) { c.Particle.FadeRate = FloatRange{Min: 0, Max: 2} }},
		{"fade inverted", func(c *Config) { c.Particle.FadeRate = FloatRange{Min: 4, Max: 2} }},
		{"zero size", func(c *Config) { c.Particle.Size = IntRange{Min: 0, Max: 2} }},
		{"negative gravity", func(c *Config) { c.Particle.Gravity = -0.1 }},
		{"damping above one", func(c *Config) { c.Particle.Damping = 1.5 }},
		{"zero damping", func(c *Config) { c.Particle.Damping = 0 }},
		{"zero alpha", func(c *Config) { c.Particle.Alpha = 0 }},
		{"empty palette", func(c *Config) { c.Palette = nil }},
		{"zero sample rate", func(c *Config) { c.Audio.SampleRate = 0 }},
		{"loud volume", func(c *Config) { c.Audio.Volume = 5 }},
		{"nan volume", func(c *Config) { c.Audio.Volume = math.NaN() }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestValidateAcceptsDegenerateBands(t *testing.T) {
	cfg := Default()
	cfg.Launch.Trigger = FloatRange{Min: 0.2, Max: 0.2}
	cfg.Particle.Count = IntRange{Min: 0, Max: 0}
	cfg.Particle.FadeRate = FloatRange{Min: 3, Max: 3}
	require.NoError(t, cfg.Validate())
}
