package game

import (
	"math"
	"testing"
)

// constStreamer yields n frames of a fixed sample.
type constStreamer struct {
	value float64
	left  int
}

func (s *constStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.left == 0 {
		return 0, false
	}
	n := min(len(samples), s.left)
	for i := range samples[:n] {
		samples[i] = [2]float64{s.value, s.value}
	}
	s.left -= n
	return n, true
}

func (s *constStreamer) Err() error { return nil }

func TestLevelTapSilence(t *testing.T) {
	tap := newLevelTap(&constStreamer{value: 0, left: 100}, 64)
	if got := tap.level(); got != 0 {
		t.Errorf("level before streaming = %v, want 0", got)
	}
	buf := make([][2]float64, 32)
	tap.Stream(buf)
	if got := tap.level(); got != 0 {
		t.Errorf("level of silence = %v, want 0", got)
	}
}

func TestLevelTapConstantSignal(t *testing.T) {
	tap := newLevelTap(&constStreamer{value: 0.5, left: 1000}, 64)
	buf := make([][2]float64, 50)
	for i := 0; i < 10; i++ {
		tap.Stream(buf)
	}

	want := math.Pow(0.5, 0.3)
	if got := tap.level(); math.Abs(got-want) > 1e-9 {
		t.Errorf("level = %v, want %v", got, want)
	}
}

func TestLevelTapPassesSamplesThrough(t *testing.T) {
	tap := newLevelTap(&constStreamer{value: 0.25, left: 3}, 8)
	buf := make([][2]float64, 4)
	n, ok := tap.Stream(buf)
	if n != 3 || !ok {
		t.Fatalf("Stream = (%d, %v), want (3, true)", n, ok)
	}
	if buf[2] != [2]float64{0.25, 0.25} {
		t.Errorf("sample = %v, want [0.25 0.25]", buf[2])
	}
}
