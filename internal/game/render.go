package game

import (
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/love-bloom/internal/anim"
	"github.com/iburimskiy/love-bloom/internal/config"
	"github.com/iburimskiy/love-bloom/internal/effects"
	"github.com/iburimskiy/love-bloom/internal/scene"
)

var whiteRGBA = color.RGBA{0xff, 0xff, 0xff, 0xff}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawHearts(screen)
	g.drawShimmer(screen)
	g.drawHeader(screen)

	if g.scene.Phase().Revealed() {
		g.drawPanel(screen)
		g.drawGarden(screen)
	}
	if g.reveal.buttonAlpha > 0 || !g.scene.Phase().Revealed() {
		g.drawButton(screen)
	}

	g.drawConfetti(screen)
	g.drawBursts(screen)

	vp := g.scene.Viewport()
	drawText(screen, g.cfg.Text.Footer, g.fonts.smallCaps, vp.Width/2, vp.Height-24,
		text.AlignCenter, config.RoseLight, 0.6*g.intro.footerAlpha)

	g.drawStatus(screen)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.background == nil || g.background.Bounds().Dx() != w || g.background.Bounds().Dy() != h {
		if g.background != nil {
			g.background.Deallocate()
		}
		g.background = ebiten.NewImage(w, h)
		for y := 0; y < h; y++ {
			c := lerpColor(config.BackgroundTop, config.BackgroundBottom, float64(y)/float64(h))
			vector.DrawFilledRect(g.background, 0, float32(y), float32(w), 1, c, false)
		}
		// Soft glow behind the title.
		for i := 6; i > 0; i-- {
			r := float64(w) * 0.08 * float64(i)
			fillCircle(g.background, float64(w)/2, float64(h)*0.3, r, config.Rose, 0.012)
		}
	}
	screen.DrawImage(g.background, nil)
}

func (g *Game) drawHearts(screen *ebiten.Image) {
	vp := g.scene.Viewport()
	for _, h := range g.scene.Hearts() {
		pose := h.Sample(g.scene.Clock(), vp)
		if !pose.Visible {
			continue
		}
		path := heartPath(pose.X, pose.Y, h.Size, pose.Rotation)
		g.canvas.fillPath(screen, path, config.HeartColor, pose.Alpha)
	}
}

// drawShimmer sweeps a pink and orange band along the top edge.
func (g *Game) drawShimmer(screen *ebiten.Image) {
	vp := g.scene.Viewport()
	const step = 6.0
	phase := math.Mod(g.scene.Clock(), config.ShimmerPeriod) / config.ShimmerPeriod
	for x := 0.0; x < vp.Width; x += step {
		u := math.Mod(x/vp.Width-2*phase+2, 1)
		// transparent -> pink -> orange -> pink -> transparent
		alpha := math.Sin(u * math.Pi)
		c := lerpColor(config.ShimmerColor, config.ShimmerAccent, 1-math.Abs(2*u-1))
		vector.DrawFilledRect(screen, float32(x), 0, step, 4, fade(c, alpha), false)
	}
}

func (g *Game) drawHeader(screen *ebiten.Image) {
	vp := g.scene.Viewport()
	cx := vp.Width / 2
	t := g.scene.Clock()
	in := g.intro

	// Sparkle badge rocking gently.
	tilt := anim.Track{Keys: []float64{0, 10, -10, 0}}
	p, _ := anim.LoopProgress(t, 0, 4)
	badge := star(cx, vp.Height*0.07, 16*in.badgeScale, 5*in.badgeScale, tilt.At(p))
	g.canvas.fillPolygon(screen, badge, config.RoseLight, in.badgeScale)

	drawText(screen, g.cfg.Text.Title, g.fonts.title, cx, vp.Height*0.16+in.titleY,
		text.AlignCenter, config.RoseText, in.titleAlpha)
	drawText(screen, g.cfg.Text.Subtitle, g.fonts.italic, cx, vp.Height*0.25,
		text.AlignCenter, config.RoseLight, in.subtitleAlpha)

	lineW := 96 * in.lineScale
	g.canvas.fillRect(screen, cx, vp.Height*0.29, lineW, 1, 0, config.RoseLight, 1)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	alpha := g.intro.buttonAlpha
	scale := g.button.scale()
	if g.scene.Phase().Revealed() {
		alpha *= g.reveal.buttonAlpha
		scale *= g.reveal.buttonScale
	}
	if alpha <= 0 {
		return
	}

	cx, cy := g.button.rect.Center()
	cy += g.intro.buttonY
	t := g.scene.Clock()
	w, h := g.button.rect.W*scale, g.button.rect.H*scale

	// Breathing glow, lifted by the music when it plays.
	pulse := anim.Pulse(t, config.GlowPeriod)
	glow := 1 + 0.15*pulse + 0.2*g.player.level
	glowAlpha := (0.3 + 0.2*pulse) * alpha
	g.canvas.fillPolygon(screen, roundedRect(cx, cy, (w+24)*glow, (h+24)*glow, h, 0), config.RoseLight, glowAlpha*0.5)

	g.canvas.fillPolygon(screen, roundedRect(cx, cy+6, w, h, h/2, 0), config.RoseDeep, 0.25*alpha)
	g.canvas.fillPolygon(screen, roundedRect(cx, cy, w, h, h/2, 0), config.Rose, alpha)
	drawText(screen, g.cfg.Text.Button, g.fonts.button, cx, cy, text.AlignCenter, whiteRGBA, alpha)

	// Blossoms either side of the label, out of phase.
	off := w/2 - 28
	for i, side := range []float64{-1, 1} {
		bp, _ := anim.LoopProgress(t, float64(i)*1.2, 2.5)
		bScale := anim.Keys(1, 1.3, 1).At(bp)
		bRot := anim.Keys(0, 10*side, -10*side, 0).At(bp)
		g.drawBlossom(screen, cx+side*off, cy, 9*bScale*scale, bRot, alpha)
	}

	if !g.scene.Phase().Revealed() {
		drawText(screen, g.cfg.Text.Hint, g.fonts.small, cx, cy+h/2+40,
			text.AlignCenter, config.RoseLight, 0.6*g.intro.hintAlpha)
	}
}

func (g *Game) drawBlossom(screen *ebiten.Image, cx, cy, r, rot, alpha float64) {
	for i := 0; i < 5; i++ {
		a := rot + float64(i)*72
		dx, dy := rotate(0, -r*0.6, a)
		g.canvas.fillPolygon(screen, ellipse(cx+dx, cy+dy, r*0.45, r*0.65, a), effects.Garden[0].Color, alpha)
	}
	fillCircle(screen, cx, cy, r*0.3, effects.Garden[0].CenterColor, alpha)
}

// contentLayout places the message panel and garden side by side on wide
// surfaces and stacked otherwise.
func (g *Game) contentLayout() (panel, garden scene.Rect) {
	vp := g.scene.Viewport()
	top := vp.Height * config.PanelTop
	if vp.Width >= config.PanelWidth+config.GardenWidth+80 {
		panel = scene.Rect{X: vp.Width/2 - config.PanelWidth - 20, Y: top, W: config.PanelWidth, H: config.PanelHeight}
		garden = scene.Rect{X: vp.Width/2 + 20, Y: top + config.PanelHeight - config.GardenHeight, W: config.GardenWidth, H: config.GardenHeight}
		return panel, garden
	}
	panel = scene.Rect{X: (vp.Width - config.PanelWidth) / 2, Y: top, W: config.PanelWidth, H: config.PanelHeight}
	garden = scene.Rect{X: (vp.Width - config.GardenWidth) / 2, Y: top + config.PanelHeight + 30, W: config.GardenWidth, H: config.GardenHeight}
	return panel, garden
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	panel, _ := g.contentLayout()
	rv := g.reveal
	cx, cy := panel.Center()
	cx += rv.panelX

	g.canvas.fillPolygon(screen, roundedRect(cx, cy, panel.W+2, panel.H+2, 18, 0), config.RoseLight, rv.panelAlpha)
	g.canvas.fillPolygon(screen, roundedRect(cx, cy, panel.W, panel.H, 16, 0), config.PanelColor, rv.panelAlpha)
	g.canvas.fillPath(screen, heartPath(cx+panel.W/2-44, panel.Y+44, 56, 0), config.Rose, 0.1*rv.panelAlpha)

	left := cx - panel.W/2 + 32
	y := panel.Y + 40
	drawText(screen, g.cfg.Text.Eyebrow, g.fonts.smallCaps, left, y, text.AlignStart, config.Rose, 0.6*rv.eyebrowAlpha)
	g.canvas.fillRect(screen, left+24, y+18, 48, 1, 0, config.RoseLight, rv.eyebrowAlpha)

	lines := wrap(g.cfg.Text.Message, g.fonts.body, panel.W-64)
	op := &text.DrawOptions{}
	op.GeoM.Translate(left, y+44+rv.messageY)
	op.ColorScale.ScaleWithColor(config.TextGray)
	op.ColorScale.ScaleAlpha(float32(rv.messageAlpha))
	op.LineSpacing = g.fonts.body.Size * 1.5
	text.Draw(screen, strings.Join(lines, "\n"), g.fonts.body, op)

	beatY := panel.Y + panel.H - 64
	beat := 1 + 0.2*anim.Pulse(g.scene.Clock(), config.HeartbeatPeriod)
	g.canvas.fillRect(screen, left+16, beatY, 32, 1, 0, config.RoseLight, rv.heartAlpha)
	g.canvas.fillPath(screen, heartPath(left+48, beatY, 20*beat, 0), config.Rose, rv.heartAlpha)
	g.canvas.fillRect(screen, left+80, beatY, 32, 1, 0, config.RoseLight, rv.heartAlpha)

	drawText(screen, g.cfg.Text.Signature, g.fonts.italic, left, beatY+32, text.AlignStart, config.RoseLight, rv.signatureAlpha)
}

func (g *Game) drawGarden(screen *ebiten.Image) {
	_, garden := g.contentLayout()
	rv := g.reveal
	t := g.scene.SinceTrigger()
	gx := garden.X + rv.gardenX

	drawText(screen, g.cfg.Text.Garden, g.fonts.smallCaps, gx+garden.W/2, garden.Y-16,
		text.AlignCenter, config.Rose, 0.6*rv.gardenTitle)

	ground := ellipse(gx+garden.W/2, garden.Y+garden.H, garden.W*0.45, 10, 0)
	g.canvas.fillPolygon(screen, ground, config.StemColor, 0.2*rv.gardenAlpha)

	for _, f := range effects.Garden {
		g.drawFlower(screen, f, f.Sample(t), gx+garden.W*f.Position/100, garden.Y+garden.H, rv.gardenAlpha)
	}

	for i, b := range effects.Butterflies {
		dx, dy := b.Offset(t)
		x := gx + garden.W*b.Left/100 + dx
		y := garden.Y + b.Top + dy
		flap := 0.35 + 0.65*math.Abs(math.Sin(t*10+float64(i)))
		g.canvas.fillPolygon(screen, ellipse(x-5*flap, y, 6*flap, 8, -20), config.ButterflyColor, 0.8*rv.gardenAlpha)
		g.canvas.fillPolygon(screen, ellipse(x+5*flap, y, 6*flap, 8, 20), config.ButterflyColor, 0.8*rv.gardenAlpha)
		g.canvas.fillRect(screen, x, y, 1.5, 10, 0, config.TextGray, rv.gardenAlpha)
	}
}

// drawFlower draws f growing out of (baseX, baseY).
func (g *Game) drawFlower(screen *ebiten.Image, f effects.Flower, fp effects.FlowerPose, baseX, baseY, alpha float64) {
	s := f.Scale
	alpha *= clamp01(fp.Rise)
	if alpha <= 0 {
		return
	}
	baseY += (1 - fp.Rise) * 100

	stemH := 100 * s * fp.Stem
	g.canvas.fillRect(screen, baseX, baseY-stemH/2, 4*s, stemH, 0, config.StemColor, alpha)

	leafW, leafH := 12*s, 7*s
	if fp.LeftLeaf > 0 {
		g.canvas.fillPolygon(screen, ellipse(baseX-12*s, baseY-60*s, leafW*fp.LeftLeaf, leafH*fp.LeftLeaf, -30), config.StemColor, alpha)
	}
	if fp.RightLeaf > 0 {
		g.canvas.fillPolygon(screen, ellipse(baseX+12*s, baseY-40*s, leafW*fp.RightLeaf, leafH*fp.RightLeaf, 30), config.LeafColor, alpha)
	}

	if fp.Head <= 0 {
		return
	}
	hx, hy := baseX, baseY-100*s
	for i := 0; i < 5; i++ {
		a := fp.HeadRotation + float64(i)*72
		dx, dy := rotate(0, -24*s*fp.Head, a)
		petal := ellipse(hx+dx, hy+dy, 16*s*fp.Head, 24*s*fp.Head, a)
		g.canvas.fillPolygon(screen, petal, f.Color, 0.95*alpha)
	}
	fillCircle(screen, hx, hy, 10*s*fp.Head, f.CenterColor, alpha)
}

func (g *Game) drawConfetti(screen *ebiten.Image) {
	vp := g.scene.Viewport()
	if !g.scene.Phase().EffectActive() {
		return
	}
	t := g.scene.SinceTrigger()
	for _, c := range g.scene.Confetti() {
		pose := c.Sample(t, vp)
		if !pose.Visible {
			continue
		}
		switch c.Shape {
		case effects.ShapeCircle:
			fillCircle(screen, pose.X, pose.Y, c.Size/2, c.Color, pose.Alpha)
		case effects.ShapeRounded:
			pts := roundedRect(pose.X, pose.Y, c.Size, c.Height(), c.Height()/3, pose.Rotation)
			g.canvas.fillPolygon(screen, pts, c.Color, pose.Alpha)
		default:
			g.canvas.fillRect(screen, pose.X, pose.Y, c.Size, c.Height(), pose.Rotation, c.Color, pose.Alpha)
		}
	}
}

func (g *Game) drawBursts(screen *ebiten.Image) {
	t := g.scene.SinceTrigger()
	for _, b := range g.scene.Bursts() {
		for _, s := range b.Sparkles {
			pose := s.Sample(t, b.Origin)
			if !pose.Visible {
				continue
			}
			fillCircle(screen, pose.X, pose.Y, config.SparkleRadius*pose.Scale, config.SparkleColor, pose.Alpha)
		}
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	var parts []string
	if g.player.muted {
		parts = append(parts, "Muted - M to unmute")
	}
	err := g.lastErr
	if err == nil {
		err = g.player.lastErr
	}
	if err != nil {
		parts = append(parts, "Error: "+err.Error())
	} else if g.scene.Phase().Revealed() && !g.player.playing() && g.player.path == "" {
		parts = append(parts, "O to pick music")
	}
	if len(parts) == 0 {
		return
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(parts, " | "), 12, screen.Bounds().Dy()-20)
}
