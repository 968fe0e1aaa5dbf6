package config

const (
	WindowTitle = "Firework Simulation"

	// Tick rates above this turn the frame interval into zero.
	MaxFPS = 1000

	// Bounds of the base-2 volume exponent.
	MinVolume = -10
	MaxVolume = 2

	VisualRingSize = 4096
	LevelWindow    = 1024

	// Footer
	FooterHeight = 40
	FooterAlpha  = 180

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 28
	ButtonX      = 12
	ButtonY      = 12

	// Rocket rendering
	RocketRadius = 3
	TrailRadius  = 2
	TrailOffset  = 5

	// Level meter
	MeterWidth  = 120
	MeterHeight = 8
)

// RGB is a color triple as written in config files.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// FloatRange is an inclusive [Min, Max] band used for random draws.
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// IntRange is an inclusive [Min, Max] band used for random draws.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Config holds every tunable of the simulation and its frontends.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Launch   LaunchConfig   `yaml:"launch"`
	Particle ParticleConfig `yaml:"particle"`
	Palette  []RGB          `yaml:"palette"`
	Audio    AudioConfig    `yaml:"audio"`
	Log      LogConfig      `yaml:"log"`
}

type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// LaunchConfig describes the rocket phase.
type LaunchConfig struct {
	// Velocity is the upward speed in pixels per frame.
	Velocity float64 `yaml:"velocity"`

	// Center is the horizontal launch band as fractions of the display width.
	Center FloatRange `yaml:"center"`

	// Trigger is the explosion band as fractions of the display height,
	// measured from the top.
	Trigger FloatRange `yaml:"trigger"`
}

// ParticleConfig describes the burst spawned when a rocket explodes.
type ParticleConfig struct {
	Count    IntRange   `yaml:"count"`
	Speed    FloatRange `yaml:"speed"`
	FadeRate FloatRange `yaml:"fadeRate"`
	Size     IntRange   `yaml:"size"`
	Gravity  float64    `yaml:"gravity"`
	Damping  float64    `yaml:"damping"`
	Alpha    float64    `yaml:"alpha"`
}

type AudioConfig struct {
	Enabled    bool `yaml:"enabled"`
	SampleRate int  `yaml:"sampleRate"`
	// Volume is a beep effects.Volume exponent (base 2); 0 leaves samples unchanged.
	Volume float64 `yaml:"volume"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the stock display: 800x600 at 60 FPS with 80-120 particle bursts.
func Default() Config {
	return Config{
		Display: DisplayConfig{Width: 800, Height: 600, FPS: 60},
		Launch: LaunchConfig{
			Velocity: 12,
			Center:   FloatRange{Min: 0.125, Max: 0.875},
			Trigger:  FloatRange{Min: 0.10, Max: 0.25},
		},
		Particle: ParticleConfig{
			Count:    IntRange{Min: 80, Max: 120},
			Speed:    FloatRange{Min: 2, Max: 8},
			FadeRate: FloatRange{Min: 2, Max: 4},
			Size:     IntRange{Min: 2, Max: 4},
			Gravity:  0.15,
			Damping:  0.98,
			Alpha:    255,
		},
		Palette: DefaultPalette(),
		Audio:   AudioConfig{Enabled: true, SampleRate: 22050, Volume: 0},
		Log:     LogConfig{Level: "info"},
	}
}

// DefaultPalette lists the vivid explosion colors.
func DefaultPalette() []RGB {
	return []RGB{
		{255, 50, 50},  // Red
		{50, 255, 50},  // Green
		{50, 50, 255},  // Blue
		{255, 255, 50}, // Yellow
		{255, 50, 255}, // Magenta
		{50, 255, 255}, // Cyan
		{255, 150, 50}, // Orange
		{150, 50, 255}, // Purple
	}
}
