package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/love-bloom/internal/config"
	"github.com/iburimskiy/love-bloom/internal/game"
	"github.com/iburimskiy/love-bloom/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML scene config")
	music := flag.String("music", "", "audio file (wav, mp3, flac) to play when the flowers bloom")
	mute := flag.Bool("mute", false, "start muted for this run")
	seed := flag.Uint64("seed", 0, "random seed for confetti and hearts (0 = random)")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadSceneConfig(*configPath)
		if err != nil {
			log.Fatalf("[Main] %v", err)
		}
		cfg = loaded
		log.Printf("[Main] Loaded scene config from %s", *configPath)
	}

	settings := store.Open(store.DefaultSettings(config.DefaultVolume))

	g, err := game.New(game.Options{
		Config:   cfg,
		Settings: settings,
		Music:    *music,
		Mute:     *mute,
		Seed:     *seed,
	})
	if err != nil {
		log.Fatalf("[Main] Failed to create game: %v", err)
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen || cfg.Window.Fullscreen)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		g.Close()
		log.Fatalf("[Main] %v", err)
	}
}
