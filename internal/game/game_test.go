package game

import (
	"testing"

	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/logging"
	"github.com/iburimskiy/fireworks/internal/settings"
	"github.com/iburimskiy/fireworks/internal/sim"
	"github.com/iburimskiy/fireworks/internal/sound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, muted bool) (*Game, *sound.Player, *settings.Manager) {
	t.Helper()

	cfg := config.Default()
	player := sound.NewPlayer(cfg.Audio, sim.NewRand(1), logging.Discard())
	prefs := settings.NewManager(nil, logging.Discard())
	prefs.SetVolume(1)

	g, err := New(Options{
		Config:   cfg,
		Seed:     7,
		Player:   player,
		Settings: prefs,
		Logger:   logging.Discard(),
		Muted:    muted,
	})
	require.NoError(t, err)
	return g, player, prefs
}

func TestNewAppliesSavedVolumeTrim(t *testing.T) {
	_, player, _ := newTestGame(t, false)

	assert.Equal(t, config.Default().Audio.Volume+1, player.Volume())
	assert.False(t, player.Muted())
}

func TestApplyUsesReloadedAudioVolume(t *testing.T) {
	g, player, _ := newTestGame(t, false)

	next := config.Default()
	next.Audio.Volume = -4
	require.NoError(t, g.apply(next))

	assert.Equal(t, -3.0, player.Volume())
	assert.False(t, player.Muted())

	g.adjustVolume(volumeStep)
	assert.Equal(t, -2.5, player.Volume())
}

func TestApplyMutesWhenAudioDisabled(t *testing.T) {
	g, player, _ := newTestGame(t, false)

	next := config.Default()
	next.Audio.Enabled = false
	require.NoError(t, g.apply(next))
	assert.True(t, player.Muted())

	require.NoError(t, g.apply(config.Default()))
	assert.False(t, player.Muted())
}

func TestMuteFlagSurvivesReloadUntilToggled(t *testing.T) {
	g, player, prefs := newTestGame(t, true)
	require.True(t, player.Muted())

	require.NoError(t, g.apply(config.Default()))
	assert.True(t, player.Muted())

	g.toggleMute()
	assert.False(t, player.Muted())
	assert.True(t, prefs.Get().SoundEnabled)

	require.NoError(t, g.apply(config.Default()))
	assert.False(t, player.Muted())
}

func TestApplyRejectsInvalidConfig(t *testing.T) {
	g, player, _ := newTestGame(t, false)
	before := g.sim

	bad := config.Default()
	bad.Palette = nil
	bad.Audio.Volume = -8
	require.ErrorIs(t, g.apply(bad), config.ErrInvalidConfig)

	assert.Same(t, before, g.sim)
	assert.Equal(t, config.Default().Audio.Volume+1, player.Volume())
}

func TestApplyReseedsSimulation(t *testing.T) {
	launchX := func(g *Game) float64 {
		g.sim.AdvanceFrame(true)
		return g.sim.Fireworks()[len(g.sim.Fireworks())-1].X
	}

	g, _, _ := newTestGame(t, false)
	first := launchX(g)
	seed := g.seed

	g.frames = 120
	require.NoError(t, g.apply(config.Default()))
	assert.Equal(t, seed+121, g.seed)
	assert.NotEqual(t, first, launchX(g))
	assert.True(t, g.waitingForInput)
}
