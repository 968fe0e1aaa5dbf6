package sound

import (
	"math"
	"testing"

	"github.com/faiface/beep"
	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/logging"
	"github.com/iburimskiy/fireworks/internal/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(22050)

func TestLaunchSamples(t *testing.T) {
	s := launchSamples(testRate)

	require.Len(t, s, testRate.N(launchDuration))
	assert.Equal(t, 0.0, s[0][0])
	for i, v := range s {
		require.LessOrEqual(t, math.Abs(v[0]), 1.0, "sample %d", i)
		require.Equal(t, v[0], v[1], "sample %d not mono", i)
	}

	// The envelope decays: the tail is quieter than the head.
	assert.Less(t, peak(s[len(s)-500:]), peak(s[:500]))
}

func TestExplosionSamples(t *testing.T) {
	s := explosionSamples(testRate, sim.NewRand(5))

	require.Len(t, s, testRate.N(explosionDuration))
	for i, v := range s {
		require.LessOrEqual(t, math.Abs(v[0]), explosionGain, "sample %d", i)
	}
	assert.Less(t, peak(s[len(s)-500:]), peak(s[:500]))
}

func TestExplosionSamplesDeterministicForSeed(t *testing.T) {
	a := explosionSamples(testRate, sim.NewRand(11))
	b := explosionSamples(testRate, sim.NewRand(11))
	assert.Equal(t, a, b)
}

func TestRenderKeepsLength(t *testing.T) {
	format := beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2}
	samples := launchSamples(testRate)

	buf := render(format, samples)
	assert.Equal(t, len(samples), buf.Len())
}

func TestTapSnapshotOrder(t *testing.T) {
	src := beep.StreamerFunc(counter())
	tap := NewTap(src, 4)

	out := make([][2]float64, 3)
	_, ok := tap.Stream(out)
	require.True(t, ok)
	assert.Equal(t, [][2]float64{{1, 1}, {2, 2}, {3, 3}}, tap.Snapshot(10))

	_, _ = tap.Stream(out)
	assert.Equal(t, [][2]float64{{3, 3}, {4, 4}, {5, 5}, {6, 6}}, tap.Snapshot(10))
	assert.Equal(t, [][2]float64{{5, 5}, {6, 6}}, tap.Snapshot(2))
}

func TestTapLevel(t *testing.T) {
	tap := NewTap(beep.Silence(-1), 16)
	assert.Equal(t, 0.0, tap.Level(16))

	_, _ = tap.Stream(make([][2]float64, 16))
	assert.Equal(t, 0.0, tap.Level(16))

	loud := NewTap(beep.StreamerFunc(func(s [][2]float64) (int, bool) {
		for i := range s {
			s[i] = [2]float64{0.5, 0.5}
		}
		return len(s), true
	}), 16)
	_, _ = loud.Stream(make([][2]float64, 16))
	assert.InDelta(t, 0.5, loud.Level(16), 1e-12)
}

func TestPlayerMixesWithoutSpeaker(t *testing.T) {
	p := NewPlayer(config.Default().Audio, sim.NewRand(1), logging.Discard())
	assert.Equal(t, 0.0, p.Level())

	p.Launched(nil)
	p.Exploded(nil)
	assert.Equal(t, 2, p.mixer.Len())

	_, _ = p.tap.Stream(make([][2]float64, config.LevelWindow))
	assert.Greater(t, p.Level(), 0.0)
}

func TestPlayerMute(t *testing.T) {
	p := NewPlayer(config.Default().Audio, sim.NewRand(1), logging.Discard())
	require.False(t, p.Muted())

	p.SetMuted(true)
	assert.True(t, p.Muted())

	p.Exploded(nil)
	_, _ = p.tap.Stream(make([][2]float64, config.LevelWindow))
	assert.Equal(t, 0.0, p.Level())

	p.SetMuted(false)
	assert.False(t, p.Muted())
}

func counter() func([][2]float64) (int, bool) {
	next := 0.0
	return func(s [][2]float64) (int, bool) {
		for i := range s {
			next++
			s[i] = [2]float64{next, next}
		}
		return len(s), true
	}
}

func peak(s [][2]float64) float64 {
	m := 0.0
	for _, v := range s {
		m = math.Max(m, math.Abs(v[0]))
	}
	return m
}
