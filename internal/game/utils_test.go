package game

import (
	"image/color"
	"math"
	"testing"
)

func TestFadePremultiplies(t *testing.T) {
	got := fade(color.RGBA{R: 200, G: 100, B: 50, A: 255}, 0.5)
	want := color.RGBA{R: 100, G: 50, B: 25, A: 127}
	if got != want {
		t.Errorf("fade = %v, want %v", got, want)
	}
	if got := fade(color.RGBA{R: 10, A: 255}, 2); got.A != 255 {
		t.Errorf("alpha above 1 not clamped: %v", got)
	}
}

func TestLerpColor(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{200, 100, 50, 255}
	if got := lerpColor(a, b, 0.5); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("lerpColor = %v", got)
	}
	if got := lerpColor(a, b, 3); got != b {
		t.Errorf("lerpColor past end = %v, want %v", got, b)
	}
}

func TestRotate(t *testing.T) {
	x, y := rotate(1, 0, 90)
	if math.Abs(x) > 1e-9 || math.Abs(y-1) > 1e-9 {
		t.Errorf("rotate(1,0,90) = (%v, %v), want (0, 1)", x, y)
	}
}
