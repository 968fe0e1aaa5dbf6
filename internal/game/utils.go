package game

import (
	"fmt"
	"math"

	"github.com/iburimskiy/fireworks/internal/config"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

func clamp01(v float64) float64 { return max(0, min(1, v)) }

// buttonFill dims the accent color: most at rest, less when hovered and
// least while held, so the button reads as lit up under the cursor.
func buttonFill(accent config.RGB, hovered, pressed bool) config.RGB {
	pct := uint16(35)
	switch {
	case pressed:
		pct = 25
	case hovered:
		pct = 50
	}
	scale := func(v uint8) uint8 { return uint8(uint16(v) * pct / 100) }
	return config.RGB{R: scale(accent.R), G: scale(accent.G), B: scale(accent.B)}
}

// formatElapsed turns a frame count into show time, MM:SS under an hour and
// H:MM:SS after.
func formatElapsed(frames uint64, fps int) string {
	if fps <= 0 {
		return "00:00"
	}
	secs := frames / uint64(fps)
	h, m, s := secs/3600, secs/60%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
