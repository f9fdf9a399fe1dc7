package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SceneConfig is the optional YAML file layered over the built-in defaults.
// Generation constants live in this package as constants and are not part of
// the file.
type SceneConfig struct {
	Window WindowConfig `yaml:"window"`
	Text   TextConfig   `yaml:"text"`
	Audio  AudioConfig  `yaml:"audio"`
}

// WindowConfig controls the host window.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// TextConfig holds every line of copy drawn by the scene.
type TextConfig struct {
	Title     string `yaml:"title"`
	Subtitle  string `yaml:"subtitle"`
	Button    string `yaml:"button"`
	Hint      string `yaml:"hint"`
	Eyebrow   string `yaml:"eyebrow"`
	Message   string `yaml:"message"`
	Signature string `yaml:"signature"`
	Garden    string `yaml:"garden"`
	Footer    string `yaml:"footer"`
}

// AudioConfig selects the track played when the scene blooms. Volume is nil
// unless the file sets it, in which case it wins over the saved volume.
type AudioConfig struct {
	Music  string   `yaml:"music"`
	Volume *float64 `yaml:"volume"`
	Muted  bool     `yaml:"muted"`
}

// VolumeOr returns the configured volume, or fallback when the file leaves it
// unset.
func (a AudioConfig) VolumeOr(fallback float64) float64 {
	if a.Volume == nil {
		return fallback
	}
	return *a.Volume
}

// Default returns the configuration used when no file is given.
func Default() *SceneConfig {
	return &SceneConfig{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Happy Love Day",
		},
		Text: TextConfig{
			Title:     "Happy Love Day",
			Subtitle:  "CELEBRATING THE BEAUTY OF LOVE",
			Button:    "Let Love Bloom",
			Hint:      "tap to reveal something special",
			Eyebrow:   "A MESSAGE FOR YOU",
			Message:   "Happy Love Day - may this moment remind you that you are valued, cherished, and deeply worthy of love, not just today but in every season of your life.",
			Signature: "With all the love in the world",
			Garden:    "THESE FLOWERS ARE FOR YOU",
			Footer:    "FROM WELL | MADE WITH LOVE",
		},
	}
}

// LoadSceneConfig reads path and merges it over Default. Fields missing from
// the file keep their default values.
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges that would otherwise produce an unusable window or
// audio chain.
func (c *SceneConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if v := c.Audio.Volume; v != nil && (*v < 0 || *v > 1) {
		return fmt.Errorf("audio volume must be in [0,1], got %v", *v)
	}
	if c.Text.Button == "" {
		return errors.New("button text must not be empty")
	}
	return nil
}
