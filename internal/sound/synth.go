package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	launchDuration    = 300 * time.Millisecond
	launchFreqStart   = 200.0
	launchFreqEnd     = 800.0
	launchDecay       = 3.0
	explosionDuration = 500 * time.Millisecond
	explosionRumbleHz = 80.0
	explosionDecay    = 5.0
	explosionGain     = 0.6
)

// Noise supplies white noise draws in [0, 1).
type Noise interface {
	Float64() float64
}

// launchSamples renders the rocket whoosh: a 200 to 800 Hz sweep under an
// exponential decay.
func launchSamples(sr beep.SampleRate) [][2]float64 {
	n := sr.N(launchDuration)
	out := make([][2]float64, n)
	dur := launchDuration.Seconds()

	for i := range out {
		frac := position(i, n)
		t := frac * dur
		freq := launchFreqStart + (launchFreqEnd-launchFreqStart)*frac
		v := math.Sin(2*math.Pi*freq*t) * math.Exp(-launchDecay*t)
		out[i] = [2]float64{v, v}
	}
	return out
}

// explosionSamples renders the bang: white noise over an 80 Hz rumble with a
// fast decay, slightly attenuated.
func explosionSamples(sr beep.SampleRate, noise Noise) [][2]float64 {
	n := sr.N(explosionDuration)
	out := make([][2]float64, n)
	dur := explosionDuration.Seconds()

	for i := range out {
		t := position(i, n) * dur
		white := noise.Float64()*2 - 1
		v := 0.7*white + 0.3*math.Sin(2*math.Pi*explosionRumbleHz*t)
		v *= math.Exp(-explosionDecay*t) * explosionGain
		out[i] = [2]float64{v, v}
	}
	return out
}

// position maps sample i of n onto [0, 1] with both ends included.
func position(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// render copies samples into a beep.Buffer so they can be replayed cheaply.
func render(format beep.Format, samples [][2]float64) *beep.Buffer {
	buf := beep.NewBuffer(format)
	pos := 0
	buf.Append(beep.StreamerFunc(func(dst [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := copy(dst, samples[pos:])
		pos += n
		return n, true
	}))
	return buf
}
