package game

import (
	"testing"

	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		h       float64
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{120, 0, 255, 0},
		{240, 0, 0, 255},
		{360, 255, 0, 0},
		{-120, 0, 0, 255},
	}
	for _, tt := range tests {
		r, g, b := hsvToRgb(tt.h, 1, 1)
		assert.Equal(t, [3]uint8{tt.r, tt.g, tt.b}, [3]uint8{r, g, b}, "hue %v", tt.h)
	}
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.5))
	assert.Equal(t, 0.25, clamp01(0.25))
	assert.Equal(t, 1.0, clamp01(3))
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		frames uint64
		fps    int
		want   string
	}{
		{0, 60, "00:00"},
		{59 * 60, 60, "00:59"},
		{125*60 + 24, 60, "02:05"},
		{3725 * 30, 30, "1:02:05"},
		{100, 0, "00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatElapsed(tt.frames, tt.fps), "frames %d at %d fps", tt.frames, tt.fps)
	}
}

func TestButtonFill(t *testing.T) {
	accent := config.RGB{R: 200, G: 100, B: 40}

	rest := buttonFill(accent, false, false)
	hover := buttonFill(accent, true, false)
	held := buttonFill(accent, true, true)

	assert.Equal(t, config.RGB{R: 70, G: 35, B: 14}, rest)
	assert.Equal(t, config.RGB{R: 100, G: 50, B: 20}, hover)
	assert.Equal(t, config.RGB{R: 50, G: 25, B: 10}, held)
}
