package game

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelTap passes audio through unchanged and keeps the energy of the last
// window samples, so the draw loop can read the loudness without touching
// the speaker goroutine's buffers.
type levelTap struct {
	Source beep.Streamer

	mu     sync.RWMutex
	energy []float64 // squared mono samples, ring ordered
	next   int
	filled int
	sum    float64
}

func newLevelTap(src beep.Streamer, window int) *levelTap {
	return &levelTap{
		Source: src,
		energy: make([]float64, window),
	}
}

func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n == 0 {
		return n, ok
	}

	t.mu.Lock()
	for _, s := range samples[:n] {
		mono := (s[0] + s[1]) * 0.5
		e := mono * mono
		t.sum += e - t.energy[t.next]
		t.energy[t.next] = e
		t.next++
		if t.next == len(t.energy) {
			t.next = 0
			// Resum once per lap so subtraction error cannot build up.
			t.sum = 0
			for _, v := range t.energy {
				t.sum += v
			}
		}
		if t.filled < len(t.energy) {
			t.filled++
		}
	}
	t.mu.Unlock()
	return n, ok
}

func (t *levelTap) Err() error { return t.Source.Err() }

// level returns the compressed RMS loudness of the window, in [0,1].
func (t *levelTap) level() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.filled == 0 || t.sum <= 0 {
		return 0
	}
	rms := math.Sqrt(t.sum / float64(t.filled))
	return clamp01(math.Pow(rms, 0.3))
}
