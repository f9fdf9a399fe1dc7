package effects

import (
	"math"
	"testing"

	"github.com/iburimskiy/love-bloom/internal/config"
)

var testViewport = Viewport{Width: 800, Height: 600}

func TestConfettiBatch(t *testing.T) {
	batch := NewConfetti(NewRand(1), config.ConfettiCount, testViewport)
	if len(batch) != 80 {
		t.Fatalf("batch size = %d, want 80", len(batch))
	}

	seen := make(map[int]bool)
	for i, c := range batch {
		if seen[c.ID] {
			t.Errorf("duplicate id %d", c.ID)
		}
		seen[c.ID] = true

		if c.StartX < 0 || c.StartX > testViewport.Width {
			t.Errorf("[%d] StartX = %v, want in [0,800]", i, c.StartX)
		}
		if d := c.EndX - c.StartX; d < -200 || d > 200 {
			t.Errorf("[%d] drift = %v, want in [-200,200]", i, d)
		}
		if !confettiSize.Contains(c.Size) {
			t.Errorf("[%d] Size = %v, want in [4,14]", i, c.Size)
		}
		if !confettiDuration.Contains(c.Duration) {
			t.Errorf("[%d] Duration = %v, want in [3,6]", i, c.Duration)
		}
		if !confettiDelay.Contains(c.Delay) {
			t.Errorf("[%d] Delay = %v, want in [0,1.5]", i, c.Delay)
		}
		if !confettiRotation.Contains(c.Rotation) {
			t.Errorf("[%d] Rotation = %v, want in [-360,360]", i, c.Rotation)
		}
	}
}

func TestConfettiCyclingIgnoresRandomness(t *testing.T) {
	a := NewConfetti(NewRand(1), 24, testViewport)
	b := NewConfetti(NewRand(99), 24, testViewport)
	for i := range a {
		want := config.ConfettiPalette[i%8]
		if a[i].Color != want || b[i].Color != want {
			t.Errorf("[%d] color = %v / %v, want %v", i, a[i].Color, b[i].Color, want)
		}
		if a[i].Shape != Shapes[i%3] || b[i].Shape != Shapes[i%3] {
			t.Errorf("[%d] shape = %v / %v, want %v", i, a[i].Shape, b[i].Shape, Shapes[i%3])
		}
	}
}

func TestConfettiHeight(t *testing.T) {
	c := Confetti{Size: 10, Shape: ShapeCircle}
	if c.Height() != 10 {
		t.Errorf("circle height = %v, want 10", c.Height())
	}
	c.Shape = ShapeSquare
	if c.Height() != 5 {
		t.Errorf("strip height = %v, want 5", c.Height())
	}
}

func TestConfettiFalls(t *testing.T) {
	c := Confetti{StartX: 100, EndX: 300, Duration: 4, Delay: 1, Rotation: 180}

	if c.Sample(0.5, testViewport).Visible {
		t.Error("piece visible before its delay")
	}

	start := c.Sample(1, testViewport)
	if !start.Visible || start.Y != config.ConfettiStartY || start.X != 100 || start.Alpha != 1 {
		t.Errorf("start pose = %+v", start)
	}

	mid := c.Sample(3, testViewport)
	// The whole fall eases in, so halfway through in time is a quarter of
	// the way across and round.
	if math.Abs(mid.X-150) > 0.01 {
		t.Errorf("mid X = %v, want 150", mid.X)
	}
	if math.Abs(mid.Rotation-45) > 0.01 {
		t.Errorf("mid rotation = %v, want 45", mid.Rotation)
	}
	linearY := (config.ConfettiStartY + testViewport.Height + config.ConfettiOvershoot) / 2
	if mid.Y >= linearY {
		t.Errorf("mid Y = %v, want ease-in below linear %v", mid.Y, linearY)
	}

	late := c.Sample(4.9, testViewport)
	if late.Alpha >= 0.8 {
		t.Errorf("late alpha = %v, want fading", late.Alpha)
	}

	if c.Sample(5, testViewport).Visible {
		t.Error("piece visible after landing")
	}
}

func TestBurstRing(t *testing.T) {
	b := NewBurst(NewRand(7), 1, 100, 200)
	if b.Origin != (BurstPoint{ID: 1, X: 100, Y: 200}) {
		t.Errorf("origin = %+v", b.Origin)
	}
	if len(b.Sparkles) != 6 {
		t.Fatalf("ring size = %d, want 6", len(b.Sparkles))
	}
	for i, s := range b.Sparkles {
		wantAngle := float64(i) / 6 * 2 * math.Pi
		if math.Abs(s.Angle-wantAngle) > 1e-9 {
			t.Errorf("[%d] angle = %v, want %v", i, s.Angle, wantAngle)
		}
		if !burstDistance.Contains(s.Distance) {
			t.Errorf("[%d] distance = %v, want in [60,100]", i, s.Distance)
		}
		if math.Abs(s.Delay-float64(i)*0.05) > 1e-9 {
			t.Errorf("[%d] delay = %v, want %v", i, s.Delay, float64(i)*0.05)
		}
	}
}

func TestSparkleFlight(t *testing.T) {
	o := BurstPoint{X: 100, Y: 200}
	s := Sparkle{Angle: 0, Distance: 80}

	peak := s.Sample(config.BurstDuration/2, o)
	if math.Abs(peak.X-140) > 0.01 || math.Abs(peak.Y-200) > 0.01 {
		t.Errorf("peak position = (%v, %v), want (140, 200)", peak.X, peak.Y)
	}
	if math.Abs(peak.Scale-config.BurstPeakScale) > 0.01 {
		t.Errorf("peak scale = %v, want %v", peak.Scale, config.BurstPeakScale)
	}
	if s.Sample(config.BurstDuration, o).Visible {
		t.Error("sparkle visible after its flight")
	}

	b := Burst{Origin: o, Sparkles: make([]Sparkle, 6)}
	if b.Finished(1.0) {
		t.Error("burst finished before last sparkle landed")
	}
	if !b.Finished(1.1) {
		t.Error("burst should be finished")
	}
}

func TestHeartsBatch(t *testing.T) {
	hearts := NewHearts(NewRand(3), config.HeartCount)
	if len(hearts) != 10 {
		t.Fatalf("hearts = %d, want 10", len(hearts))
	}
	for i, h := range hearts {
		if h.ID != i {
			t.Errorf("[%d] id = %d", i, h.ID)
		}
		if !heartX.Contains(h.XPercent) {
			t.Errorf("[%d] x = %v, want in [5,95]", i, h.XPercent)
		}
		if !heartSize.Contains(h.Size) {
			t.Errorf("[%d] size = %v, want in [14,32]", i, h.Size)
		}
		if !heartDuration.Contains(h.Duration) {
			t.Errorf("[%d] duration = %v, want in [12,20]", i, h.Duration)
		}
		if !heartOpacity.Contains(h.Opacity) {
			t.Errorf("[%d] opacity = %v, want in [0.15,0.35]", i, h.Opacity)
		}
		if math.Abs(h.Delay-float64(i)*0.8) > 1e-9 {
			t.Errorf("[%d] delay = %v, want %v", i, h.Delay, float64(i)*0.8)
		}
	}
}

func TestHeartLoops(t *testing.T) {
	h := Heart{XPercent: 50, Duration: 10, Delay: 2, Opacity: 0.3}

	if h.Sample(1, testViewport).Visible {
		t.Error("heart visible before its delay")
	}

	first := h.Sample(2+2.5, testViewport)
	again := h.Sample(2+2.5+10*5, testViewport)
	if math.Abs(first.Y-again.Y) > 1e-6 || math.Abs(first.Alpha-again.Alpha) > 1e-6 {
		t.Errorf("loop mismatch: %+v vs %+v", first, again)
	}

	if first.Alpha > h.Opacity+1e-9 {
		t.Errorf("alpha = %v exceeds peak %v", first.Alpha, h.Opacity)
	}
	mid := h.Sample(2+5, testViewport)
	if math.Abs(mid.Alpha-0.3) > 1e-6 {
		t.Errorf("mid-loop alpha = %v, want 0.3", mid.Alpha)
	}
	if mid.Y >= testViewport.Height || mid.Y <= config.HeartAbove {
		t.Errorf("mid-loop Y = %v, want inside travel", mid.Y)
	}
	if math.Abs(mid.X-400) > config.HeartSway {
		t.Errorf("mid-loop X = %v, want within sway of 400", mid.X)
	}
}

func TestGardenIsFixed(t *testing.T) {
	if len(Garden) != 5 {
		t.Errorf("flowers = %d, want 5", len(Garden))
	}
	if len(Butterflies) != 2 {
		t.Errorf("butterflies = %d, want 2", len(Butterflies))
	}
	if Butterflies[1].Left != 70 || Butterflies[1].Duration != 10 || Butterflies[1].Delay != 2.5 {
		t.Errorf("second butterfly = %+v", Butterflies[1])
	}
}

func TestFlowerGrows(t *testing.T) {
	f := Garden[2]
	before := f.Sample(0)
	if before.Rise != 0 || before.Head != 0 || before.HeadRotation != -180 {
		t.Errorf("before = %+v, want ungrown", before)
	}
	after := f.Sample(5)
	if math.Abs(after.Rise-1) > 1e-3 || math.Abs(after.Head-1) > 1e-3 || math.Abs(after.HeadRotation) > 1e-3 {
		t.Errorf("after = %+v, want fully grown", after)
	}
}

func TestButterflyReturnsHome(t *testing.T) {
	b := Butterflies[0]
	dx, dy := b.Offset(b.Delay + b.Duration*3)
	if math.Abs(dx) > 1e-6 || math.Abs(dy) > 1e-6 {
		t.Errorf("offset after full loops = (%v, %v), want (0, 0)", dx, dy)
	}
}
