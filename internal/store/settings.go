// Package store persists user preferences between runs.
package store

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory.
const AppName = "love_bloom"

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Settings are the preferences remembered across runs.
type Settings struct {
	MusicPath string  `yaml:"musicPath"`
	Volume    float64 `yaml:"volume"`
	Muted     bool    `yaml:"muted"`
}

// DefaultSettings returns the settings used on first launch.
func DefaultSettings(volume float64) Settings {
	return Settings{Volume: volume}
}

// Manager loads and saves Settings through gdata. A nil gdata manager puts it
// in memory-only mode: nothing is persisted and nothing fails.
type Manager struct {
	data     *gdata.Manager
	defaults Settings
	settings Settings
}

// Open creates the gdata storage for AppName. Errors are logged and a
// memory-only Manager is returned.
func Open(defaults Settings) *Manager {
	data, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[Settings] Warning: storage unavailable: %v (settings will not persist)", err)
		data = nil
	}
	return NewManager(data, defaults)
}

// NewManager wraps data and loads any saved settings. Load failures fall back
// to defaults.
func NewManager(data *gdata.Manager, defaults Settings) *Manager {
	m := &Manager{data: data, defaults: defaults, settings: defaults}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] Warning: %v (using defaults)", err)
	}
	return m
}

// Load reads saved settings, keeping defaults when none exist.
func (m *Manager) Load() error {
	m.settings = m.defaults
	if m.data == nil || !m.data.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	raw, err := m.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := m.defaults
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if loaded.Volume < 0 || loaded.Volume > 1 {
		loaded.Volume = m.defaults.Volume
	}
	m.settings = loaded
	return nil
}

// Save writes the current settings. It is a no-op in memory-only mode.
func (m *Manager) Save() error {
	if m.data == nil {
		return nil
	}

	raw, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.data.SaveObjectProp(settingsObject, settingsProperty, raw); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Settings returns a copy of the current settings.
func (m *Manager) Settings() Settings {
	return m.settings
}

// SetMusicPath records the last chosen track.
func (m *Manager) SetMusicPath(path string) {
	m.settings.MusicPath = path
}

// SetMuted records the mute toggle.
func (m *Manager) SetMuted(muted bool) {
	m.settings.Muted = muted
}

// SetVolume records the volume, clamped to [0,1].
func (m *Manager) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	m.settings.Volume = v
}

// Persistent reports whether settings survive a restart.
func (m *Manager) Persistent() bool {
	return m.data != nil
}
