package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// openTestData creates a throwaway gdata manager, or nil when the platform
// offers no data directory.
func openTestData(t *testing.T) *gdata.Manager {
	t.Helper()
	appName := fmt.Sprintf("love_bloom_test_%d", time.Now().UnixNano())
	data, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return data
}

func TestMemoryOnlyMode(t *testing.T) {
	m := NewManager(nil, DefaultSettings(0.7))

	if m.Persistent() {
		t.Error("nil storage should not be persistent")
	}
	if got := m.Settings().Volume; got != 0.7 {
		t.Errorf("Volume = %v, want 0.7", got)
	}

	m.SetMuted(true)
	m.SetMusicPath("/tmp/song.mp3")
	if err := m.Save(); err != nil {
		t.Fatalf("Save in memory-only mode: %v", err)
	}
	if s := m.Settings(); !s.Muted || s.MusicPath != "/tmp/song.mp3" {
		t.Errorf("settings = %+v", s)
	}
}

func TestSetVolumeClamps(t *testing.T) {
	m := NewManager(nil, DefaultSettings(0.5))

	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0.3, 0.3},
		{4, 1},
	}
	for _, tt := range tests {
		m.SetVolume(tt.in)
		if got := m.Settings().Volume; got != tt.want {
			t.Errorf("SetVolume(%v) -> %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	data := openTestData(t)
	if data == nil {
		t.Skip("gdata storage unavailable")
	}

	m := NewManager(data, DefaultSettings(0.7))
	m.SetMusicPath("/music/bloom.flac")
	m.SetVolume(0.4)
	m.SetMuted(true)
	if err := m.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded := NewManager(data, DefaultSettings(0.7))
	want := Settings{MusicPath: "/music/bloom.flac", Volume: 0.4, Muted: true}
	if got := reloaded.Settings(); got != want {
		t.Errorf("reloaded = %+v, want %+v", got, want)
	}
}

func TestCorruptSettingsFallBack(t *testing.T) {
	data := openTestData(t)
	if data == nil {
		t.Skip("gdata storage unavailable")
	}
	if err := data.SaveObjectProp(settingsObject, settingsProperty, []byte("volume: [")); err != nil {
		t.Fatalf("seed corrupt data: %v", err)
	}

	m := NewManager(data, DefaultSettings(0.7))
	if got := m.Settings(); got != DefaultSettings(0.7) {
		t.Errorf("settings = %+v, want defaults", got)
	}
}
