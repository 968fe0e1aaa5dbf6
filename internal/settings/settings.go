// Package settings persists the user's sound preferences between runs.
package settings

import (
	"fmt"
	"log/slog"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "fireworks"

	settingsObject   = "settings"
	settingsProperty = "global"

	minVolume = -10.0
	maxVolume = 2.0
)

// Settings are the user-adjustable preferences.
type Settings struct {
	SoundEnabled bool `yaml:"soundEnabled"`
	// Volume is a base-2 exponent applied to every sound; 0 is unchanged.
	Volume float64 `yaml:"volume"`
}

// Default returns sound on at unchanged volume.
func Default() Settings {
	return Settings{SoundEnabled: true, Volume: 0}
}

// Manager loads and saves Settings through gdata. A nil gdata manager keeps
// settings in memory only.
type Manager struct {
	store    *gdata.Manager
	settings Settings
	logger   *slog.Logger
}

// Open creates a gdata store for the application and loads saved settings.
// If the store cannot be opened the manager falls back to memory-only mode.
func Open(logger *slog.Logger) *Manager {
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		logger.Warn("settings storage unavailable, using defaults", "err", err)
		store = nil
	}
	return NewManager(store, logger)
}

// NewManager wraps store and loads whatever was saved before. Load failures
// are logged and leave the defaults in place.
func NewManager(store *gdata.Manager, logger *slog.Logger) *Manager {
	m := &Manager{store: store, settings: Default(), logger: logger}
	if err := m.Load(); err != nil {
		logger.Warn("failed to load settings, using defaults", "err", err)
	}
	return m
}

// Load replaces the in-memory settings with the saved ones.
func (m *Manager) Load() error {
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = Default()
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = Default()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		m.settings = Default()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.Volume = clampVolume(loaded.Volume)

	m.settings = loaded
	m.logger.Debug("settings loaded", "sound", loaded.SoundEnabled, "volume", loaded.Volume)
	return nil
}

// Save writes the current settings. It is a no-op in memory-only mode.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (m *Manager) Get() Settings { return m.settings }

// Persistent reports whether settings survive a restart.
func (m *Manager) Persistent() bool { return m.store != nil }

func (m *Manager) SetSoundEnabled(enabled bool) {
	m.settings.SoundEnabled = enabled
}

// SetVolume stores volume clamped to [-10, 2].
func (m *Manager) SetVolume(volume float64) {
	m.settings.Volume = clampVolume(volume)
}

func clampVolume(v float64) float64 {
	if v < minVolume {
		return minVolume
	}
	if v > maxVolume {
		return maxVolume
	}
	return v
}
