package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/love-bloom/internal/anim"
	"github.com/iburimskiy/love-bloom/internal/config"
	"github.com/iburimskiy/love-bloom/internal/effects"
	"github.com/iburimskiy/love-bloom/internal/event"
	"github.com/iburimskiy/love-bloom/internal/scene"
	"github.com/iburimskiy/love-bloom/internal/store"
	"github.com/tanema/gween/ease"
)

// Options configures a Game.
type Options struct {
	Config   *config.SceneConfig
	Settings *store.Manager
	// Music overrides the track from the config file and settings.
	Music string
	// Mute starts the game muted for this run without touching the saved
	// settings.
	Mute bool
	// Seed fixes the random source; zero picks a random seed.
	Seed uint64
}

// introState holds the values animated when the window opens.
type introState struct {
	badgeScale    float64
	titleY        float64
	titleAlpha    float64
	subtitleAlpha float64
	lineScale     float64
	buttonY       float64
	buttonAlpha   float64
	hintAlpha     float64
	footerAlpha   float64
}

// revealState holds the values animated after the bloom.
type revealState struct {
	buttonAlpha    float64
	buttonScale    float64
	panelX         float64
	panelAlpha     float64
	gardenX        float64
	gardenAlpha    float64
	eyebrowAlpha   float64
	messageY       float64
	messageAlpha   float64
	heartAlpha     float64
	signatureAlpha float64
	gardenTitle    float64
}

// Game is the ebiten.Game for the greeting.
type Game struct {
	cfg      *config.SceneConfig
	settings *store.Manager
	events   *event.Dispatcher
	scene    *scene.Scene
	player   *player
	fonts    *fonts
	canvas   *canvas
	button   button

	width, height int
	background    *ebiten.Image

	intro    introState
	reveal   revealState
	introTL  anim.Timeline
	revealTL anim.Timeline

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
	closed  bool
}

// New builds the game. The returned Game must be closed after ebiten.RunGame
// returns.
func New(opts Options) (*Game, error) {
	f, err := loadFonts()
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	g := newGame(opts)
	g.fonts = f
	g.canvas = newCanvas()
	return g, nil
}

// newGame wires everything except the GPU resources.
func newGame(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	settings := opts.Settings
	if settings == nil {
		settings = store.NewManager(nil, store.DefaultSettings(config.DefaultVolume))
	}

	// Flag beats config beats saved settings. Only the saved values are
	// written back.
	prefs := settings.Settings()
	music := opts.Music
	if music == "" {
		music = cfg.Audio.Music
	}
	if music == "" {
		music = prefs.MusicPath
	}
	gain := cfg.Audio.VolumeOr(prefs.Volume)
	muted := opts.Mute || cfg.Audio.Muted || prefs.Muted

	events := event.NewDispatcher()
	g := &Game{
		cfg:      cfg,
		settings: settings,
		events:   events,
		scene:    scene.New(effects.NewRand(opts.Seed), events, cfg.Window.Width, cfg.Window.Height),
		player:   newPlayer(music, gain, muted),
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		prevKey:  map[ebiten.Key]bool{},
	}
	g.button.layout(g.width, g.height)
	events.Subscribe(event.Bloomed, g.player)
	g.startIntro()
	return g
}

func (g *Game) startIntro() {
	in := &g.intro
	g.introTL.Add(anim.NewGroup(0).Add(&in.badgeScale, 0, 1, 0.6, ease.OutBack))
	g.introTL.Add(anim.NewGroup(0).
		Add(&in.titleY, -40, 0, 1, ease.OutQuad).
		Add(&in.titleAlpha, 0, 1, 1, ease.OutQuad))
	g.introTL.Add(anim.NewGroup(0.3).Add(&in.subtitleAlpha, 0, 1, 0.8, ease.Linear))
	g.introTL.Add(anim.NewGroup(0.5).Add(&in.lineScale, 0, 1, 0.8, ease.OutQuad))
	g.introTL.Add(anim.NewGroup(0.6).
		Add(&in.buttonY, 30, 0, 0.6, ease.OutQuad).
		Add(&in.buttonAlpha, 0, 1, 0.6, ease.Linear))
	g.introTL.Add(anim.NewGroup(1.5).Add(&in.hintAlpha, 0, 1, 0.5, ease.Linear))
	g.introTL.Add(anim.NewGroup(2).Add(&in.footerAlpha, 0, 1, 0.5, ease.Linear))
}

func (g *Game) startReveal() {
	rv := &g.reveal
	g.revealTL.Add(anim.NewGroup(0).
		Add(&rv.buttonAlpha, 1, 0, 0.4, ease.Linear).
		Add(&rv.buttonScale, 1, 0.9, 0.4, ease.OutQuad))
	g.revealTL.Add(anim.NewGroup(0).
		Add(&rv.panelX, -config.PanelSlide, 0, config.PanelDuration, ease.OutQuad).
		Add(&rv.panelAlpha, 0, 1, config.PanelDuration, ease.OutQuad).
		Add(&rv.gardenX, config.PanelSlide, 0, config.PanelDuration, ease.OutQuad).
		Add(&rv.gardenAlpha, 0, 1, config.PanelDuration, ease.OutQuad))
	g.revealTL.Add(anim.NewGroup(0.3).Add(&rv.gardenTitle, 0, 1, 0.5, ease.Linear))
	g.revealTL.Add(anim.NewGroup(0.4).Add(&rv.eyebrowAlpha, 0, 1, 0.5, ease.Linear))
	g.revealTL.Add(anim.NewGroup(0.6).
		Add(&rv.messageY, 20, 0, 0.5, ease.OutQuad).
		Add(&rv.messageAlpha, 0, 1, 0.5, ease.Linear))
	g.revealTL.Add(anim.NewGroup(1).Add(&rv.heartAlpha, 0, 1, 0.5, ease.Linear))
	g.revealTL.Add(anim.NewGroup(1.2).Add(&rv.signatureAlpha, 0, 1, 0.5, ease.Linear))
}

func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}
	enter := justPressed(ebiten.KeyEnter)
	space := justPressed(ebiten.KeySpace)
	mute := justPressed(ebiten.KeyM)
	louder := justPressed(ebiten.KeyArrowUp)
	quieter := justPressed(ebiten.KeyArrowDown)
	open := justPressed(ebiten.KeyO)
	quit := justPressed(ebiten.KeyEscape)
	q := justPressed(ebiten.KeyQ)

	if quit || q {
		return ebiten.Termination
	}

	if g.scene.Phase() == scene.Idle {
		mouseX, mouseY := ebiten.CursorPosition()
		clicked := g.button.update(float64(mouseX), float64(mouseY),
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
			inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))
		if clicked || enter || space {
			g.bloom()
		}
	}

	if mute {
		g.toggleMute()
	}
	if louder {
		g.changeVolume(config.VolumeStep)
	}
	if quieter {
		g.changeVolume(-config.VolumeStep)
	}
	if open {
		g.chooseMusic()
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.scene.Update(dt)
	g.introTL.Update(float32(dt))
	g.revealTL.Update(float32(dt))
	g.player.update()
	return nil
}

func (g *Game) bloom() {
	if !g.scene.Trigger(g.button.rect) {
		return
	}
	g.startReveal()
}

// toggleMute flips what the player is actually doing and records the result.
func (g *Game) toggleMute() {
	muted := !g.player.muted
	g.player.setMuted(muted)
	g.settings.SetMuted(muted)
	g.saveSettings()
}

func (g *Game) changeVolume(delta float64) {
	g.player.setGain(clamp01(g.player.gain + delta))
	g.settings.SetVolume(g.player.gain)
	g.saveSettings()
}

func (g *Game) chooseMusic() {
	path, err := pickMusic()
	if err != nil {
		g.lastErr = err
		log.Printf("[Game] Warning: file dialog: %v", err)
		return
	}
	if path == "" {
		return
	}

	g.player.path = path
	g.settings.SetMusicPath(path)
	g.saveSettings()

	if g.scene.Phase().Revealed() {
		if err := g.player.loadAndPlay(path); err != nil {
			g.lastErr = err
			log.Printf("[Audio] Warning: %v", err)
		}
	}
}

func (g *Game) saveSettings() {
	if err := g.settings.Save(); err != nil {
		g.lastErr = err
		log.Printf("[Settings] Warning: %v", err)
	}
}

// Layout reports the outside size unchanged and forwards size changes to the
// scene.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.button.layout(g.width, g.height)
		g.events.Dispatch(event.Event{
			Type: event.Resized,
			Data: event.Size{Width: outsideWidth, Height: outsideHeight},
		})
	}
	return outsideWidth, outsideHeight
}

// Close releases the scene, its listeners and the audio device. It is safe to
// call more than once.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.scene.Close()
	g.events.Unsubscribe(event.Bloomed, g.player)
	g.player.Close()
	g.saveSettings()
}
