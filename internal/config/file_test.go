package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadSceneConfigMergesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1024
text:
  title: "For You"
audio:
  volume: 0.25
`)

	cfg, err := LoadSceneConfig(path)
	if err != nil {
		t.Fatalf("LoadSceneConfig: %v", err)
	}
	if cfg.Window.Width != 1024 {
		t.Errorf("Width = %d, want 1024", cfg.Window.Width)
	}
	if cfg.Window.Height != WindowHeight {
		t.Errorf("Height = %d, want default %d", cfg.Window.Height, WindowHeight)
	}
	if cfg.Text.Title != "For You" {
		t.Errorf("Title = %q, want %q", cfg.Text.Title, "For You")
	}
	if cfg.Text.Button != Default().Text.Button {
		t.Errorf("Button = %q, want default", cfg.Text.Button)
	}
	if got := cfg.Audio.VolumeOr(DefaultVolume); got != 0.25 {
		t.Errorf("Volume = %v, want 0.25", got)
	}
}

func TestVolumeUnsetFallsBack(t *testing.T) {
	cfg, err := LoadSceneConfig(writeConfig(t, "audio:\n  music: song.mp3\n"))
	if err != nil {
		t.Fatalf("LoadSceneConfig: %v", err)
	}
	if cfg.Audio.Volume != nil {
		t.Fatalf("Volume = %v, want unset", *cfg.Audio.Volume)
	}
	if got := cfg.Audio.VolumeOr(0.4); got != 0.4 {
		t.Errorf("VolumeOr(0.4) = %v, want 0.4", got)
	}
	if got := Default().Audio.VolumeOr(DefaultVolume); got != DefaultVolume {
		t.Errorf("default volume = %v, want %v", got, DefaultVolume)
	}
}

func TestLoadSceneConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"zero width", "window:\n  width: 0\n", "window size"},
		{"negative height", "window:\n  height: -5\n", "window size"},
		{"loud volume", "audio:\n  volume: 1.5\n", "volume"},
		{"negative volume", "audio:\n  volume: -0.1\n", "volume"},
		{"empty button", "text:\n  button: \"\"\n", "button"},
		{"bad yaml", "window: [", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSceneConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadSceneConfigMissingFile(t *testing.T) {
	if _, err := LoadSceneConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPaletteSize(t *testing.T) {
	if len(ConfettiPalette) != 8 {
		t.Errorf("palette size = %d, want 8", len(ConfettiPalette))
	}
}
