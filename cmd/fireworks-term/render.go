package main

import "github.com/iburimskiy/fireworks/internal/config"

const rocketGlyph = '^'

// viewport scales simulation pixels onto terminal cells.
type viewport struct {
	scaleX, scaleY float64
	cols, rows     int
}

func newViewport(width, height, cols, rows int) viewport {
	v := viewport{cols: cols, rows: rows}
	if width > 0 && height > 0 {
		v.scaleX = float64(cols) / float64(width)
		v.scaleY = float64(rows) / float64(height)
	}
	return v
}

// cell returns the terminal cell for a simulation point, or false when the
// point falls outside the visible area.
func (v viewport) cell(x, y float64) (int, int, bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	cx := int(x * v.scaleX)
	cy := int(y * v.scaleY)
	if cx >= v.cols || cy >= v.rows {
		return 0, 0, false
	}
	return cx, cy, true
}

// particleGlyph picks a lighter glyph as the particle fades.
func particleGlyph(opacity uint8) rune {
	switch {
	case opacity > 170:
		return '*'
	case opacity > 85:
		return '+'
	}
	return '.'
}

// fade darkens c by opacity since terminals have no alpha channel.
func fade(c config.RGB, opacity uint8) config.RGB {
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(opacity) / 255) }
	return config.RGB{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
}
