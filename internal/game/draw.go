package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas owns the shared white texture and vertex buffers used to fill
// shapes.
type canvas struct {
	white    *ebiten.Image
	whiteSub *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
}

func newCanvas() *canvas {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &canvas{
		white:    white,
		whiteSub: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// fillPath fills path with c at the given opacity.
func (cv *canvas) fillPath(dst *ebiten.Image, path *vector.Path, c color.RGBA, alpha float64) {
	alpha = clamp01(alpha)
	if alpha == 0 {
		return
	}
	cv.vs, cv.is = path.AppendVerticesAndIndicesForFilling(cv.vs[:0], cv.is[:0])
	for i := range cv.vs {
		cv.vs[i].SrcX = 1
		cv.vs[i].SrcY = 1
		cv.vs[i].ColorR = float32(c.R) / 255
		cv.vs[i].ColorG = float32(c.G) / 255
		cv.vs[i].ColorB = float32(c.B) / 255
		cv.vs[i].ColorA = float32(c.A) / 255 * float32(alpha)
	}
	dst.DrawTriangles(cv.vs, cv.is, cv.whiteSub, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// fillPolygon fills the closed outline pts.
func (cv *canvas) fillPolygon(dst *ebiten.Image, pts [][2]float64, c color.RGBA, alpha float64) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		path.LineTo(float32(p[0]), float32(p[1]))
	}
	path.Close()
	cv.fillPath(dst, &path, c, alpha)
}

// fillRect draws a w x h rectangle centred on (cx, cy) and turned by rot
// degrees.
func (cv *canvas) fillRect(dst *ebiten.Image, cx, cy, w, h, rot float64, c color.RGBA, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(rot * math.Pi / 180)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	dst.DrawImage(cv.whiteSub, op)
}

// fillCircle draws a filled circle.
func fillCircle(dst *ebiten.Image, cx, cy, r float64, c color.RGBA, alpha float64) {
	if r <= 0 || alpha <= 0 {
		return
	}
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), fade(c, alpha), true)
}

// ellipse returns the outline of an ellipse centred on (cx, cy) with radii
// rx, ry, turned by rot degrees.
func ellipse(cx, cy, rx, ry, rot float64) [][2]float64 {
	const segments = 24
	pts := make([][2]float64, segments)
	for i := range pts {
		a := float64(i) / segments * 2 * math.Pi
		x, y := rotate(math.Cos(a)*rx, math.Sin(a)*ry, rot)
		pts[i] = [2]float64{cx + x, cy + y}
	}
	return pts
}

// roundedRect returns the outline of a w x h rectangle with corner radius r,
// centred on (cx, cy) and turned by rot degrees.
func roundedRect(cx, cy, w, h, r, rot float64) [][2]float64 {
	r = math.Min(r, math.Min(w, h)/2)
	const steps = 6
	corners := [4][3]float64{
		{w/2 - r, -h/2 + r, -math.Pi / 2},
		{w/2 - r, h/2 - r, 0},
		{-w/2 + r, h/2 - r, math.Pi / 2},
		{-w/2 + r, -h/2 + r, math.Pi},
	}
	pts := make([][2]float64, 0, 4*(steps+1))
	for _, c := range corners {
		for i := 0; i <= steps; i++ {
			a := c[2] + float64(i)/steps*math.Pi/2
			x, y := rotate(c[0]+math.Cos(a)*r, c[1]+math.Sin(a)*r, rot)
			pts = append(pts, [2]float64{cx + x, cy + y})
		}
	}
	return pts
}

// heartPath builds a heart of the given size centred on (cx, cy), turned by
// rot degrees.
func heartPath(cx, cy, size, rot float64) *vector.Path {
	pt := func(x, y float64) (float32, float32) {
		rx, ry := rotate(x*size, y*size, rot)
		return float32(cx + rx), float32(cy + ry)
	}
	cubic := func(path *vector.Path, x1, y1, x2, y2, x3, y3 float64) {
		ax, ay := pt(x1, y1)
		bx, by := pt(x2, y2)
		ex, ey := pt(x3, y3)
		path.CubicTo(ax, ay, bx, by, ex, ey)
	}

	var path vector.Path
	path.MoveTo(pt(0, 0.45))
	cubic(&path, -0.35, 0.2, -0.5, 0, -0.5, -0.15)
	cubic(&path, -0.5, -0.4, -0.15, -0.5, 0, -0.25)
	cubic(&path, 0.15, -0.5, 0.5, -0.4, 0.5, -0.15)
	cubic(&path, 0.5, 0, 0.35, 0.2, 0, 0.45)
	path.Close()
	return &path
}

// star returns a four-pointed sparkle outline.
func star(cx, cy, outer, inner, rot float64) [][2]float64 {
	pts := make([][2]float64, 8)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)/8*2*math.Pi - math.Pi/2
		x, y := rotate(math.Cos(a)*r, math.Sin(a)*r, rot)
		pts[i] = [2]float64{cx + x, cy + y}
	}
	return pts
}

// drawText draws s with its anchor at (x, y); align controls the horizontal
// anchor and the vertical anchor is the line's centre.
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, align text.Align, c color.RGBA, alpha float64) {
	if alpha <= 0 || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
