package game

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	beepfx "github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/iburimskiy/love-bloom/internal/config"
	"github.com/iburimskiy/love-bloom/internal/event"
)

var errUnsupportedAudio = errors.New("unsupported file type")

// player plays the bloom track. The chain is streamer -> loop -> tap -> volume
// -> ctrl, so the level meter sees the signal before gain and mute.
type player struct {
	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	volume      *beepfx.Volume
	tap         *levelTap

	path     string
	gain     float64
	muted    bool
	level    float64
	initDone bool
	lastErr  error
}

func newPlayer(path string, gain float64, muted bool) *player {
	return &player{path: path, gain: gain, muted: muted}
}

// OnEvent starts the track when the scene blooms.
func (p *player) OnEvent(e event.Event) {
	if e.Type != event.Bloomed || p.path == "" {
		return
	}
	if err := p.loadAndPlay(p.path); err != nil {
		p.lastErr = err
		log.Printf("[Audio] Warning: %v", err)
	}
}

func decode(path string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("%w: %s", errUnsupportedAudio, filepath.Ext(path))
}

func (p *player) loadAndPlay(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open track: %w", err)
	}

	streamer, format, err := decode(path, f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	t := newLevelTap(beep.Loop(-1, streamer), config.LevelWindow)
	vol := &beepfx.Volume{Streamer: t, Base: 2}
	ctrl := &beep.Ctrl{Streamer: vol, Paused: false}

	// (Re)initialize speaker if needed
	bufferSize := format.SampleRate.N(time.Second / 20)
	if !p.initDone || p.format.SampleRate != format.SampleRate {
		if p.initDone {
			speaker.Clear()
		}
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		p.initDone = true
	} else {
		speaker.Clear()
	}
	p.closeCurrent()

	speaker.Lock()
	p.currentFile = f
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.volume = vol
	p.tap = t
	p.path = path
	p.applyGain()
	speaker.Unlock()

	speaker.Play(ctrl)
	log.Printf("[Audio] Playing %s", filepath.Base(path))
	return nil
}

// applyGain maps the linear gain onto beep's exponential volume. Callers hold
// the speaker lock once playback has started.
func (p *player) applyGain() {
	if p.volume == nil {
		return
	}
	p.volume.Silent = p.muted || p.gain <= 0
	if p.gain > 0 {
		p.volume.Volume = math.Log2(p.gain)
	}
}

func (p *player) setMuted(muted bool) {
	if p.volume == nil {
		p.muted = muted
		return
	}
	speaker.Lock()
	p.muted = muted
	p.applyGain()
	speaker.Unlock()
}

// setGain changes the linear volume, in [0,1].
func (p *player) setGain(gain float64) {
	if p.volume == nil {
		p.gain = gain
		return
	}
	speaker.Lock()
	p.gain = gain
	p.applyGain()
	speaker.Unlock()
}

// update smooths the loudness reading once per tick.
func (p *player) update() {
	if p.tap == nil || p.muted {
		p.level *= config.SmoothingFactor
		return
	}
	p.level = config.SmoothingFactor*p.level + (1-config.SmoothingFactor)*p.tap.level()
}

func (p *player) playing() bool {
	return p.ctrl != nil
}

func (p *player) closeCurrent() {
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.currentFile != nil {
		_ = p.currentFile.Close()
		p.currentFile = nil
	}
}

// Close stops playback and releases the open track.
func (p *player) Close() {
	if p.initDone {
		speaker.Clear()
	}
	p.closeCurrent()
	p.ctrl = nil
	p.tap = nil
}
