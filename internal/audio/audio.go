// Package audio plays short synthesized tones for game events.
package audio

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/ugaemi/zombiedash/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// tone is a single sine blip.
type tone struct {
	freq   float64 // Hz
	dur    time.Duration
	volume float64 // base-2 gain, 0 is unchanged
}

var tones = map[game.Event]tone{
	game.EventCitizenSaved:    {freq: 880, dur: 120 * time.Millisecond},
	game.EventGoodiePickup:    {freq: 1320, dur: 60 * time.Millisecond, volume: -1},
	game.EventLandmineExplode: {freq: 70, dur: 400 * time.Millisecond, volume: 0.5},
	game.EventPlayerFire:      {freq: 180, dur: 90 * time.Millisecond, volume: -1},
	game.EventPlayerDie:       {freq: 110, dur: 600 * time.Millisecond},
	game.EventZombieVomit:     {freq: 140, dur: 150 * time.Millisecond, volume: -1},
	game.EventLevelFinished:   {freq: 660, dur: 500 * time.Millisecond},
	game.EventCitizenInfected: {freq: 300, dur: 200 * time.Millisecond, volume: -1},
	game.EventZombieBorn:      {freq: 95, dur: 300 * time.Millisecond},
	game.EventCitizenDie:      {freq: 220, dur: 250 * time.Millisecond, volume: -1},
	game.EventZombieDie:       {freq: 160, dur: 200 * time.Millisecond, volume: -1},
}

// Sink turns game events into tones. It implements game.EventSink.
type Sink struct {
	play   func(beep.Streamer)
	close  func()
	logger *slog.Logger
}

// New opens the default audio device and starts its mixer.
func New(logger *slog.Logger) (*Sink, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)

	return &Sink{
		play: func(s beep.Streamer) {
			speaker.Lock()
			mixer.Add(s)
			speaker.Unlock()
		},
		close:  speaker.Close,
		logger: logger,
	}, nil
}

// NewWithPlayer returns a Sink that hands each tone to play instead of a device.
func NewWithPlayer(play func(beep.Streamer), logger *slog.Logger) *Sink {
	return &Sink{play: play, close: func() {}, logger: logger}
}

// Emit implements game.EventSink.
func (s *Sink) Emit(e game.Event) {
	st, err := streamerFor(e)
	if err != nil {
		s.logger.Warn("no sound for event", "event", e.String(), "error", err)
		return
	}
	s.play(st)
}

// Close releases the audio device.
func (s *Sink) Close() {
	s.close()
}

func streamerFor(e game.Event) (beep.Streamer, error) {
	t, ok := tones[e]
	if !ok {
		return nil, fmt.Errorf("unmapped event %d", int(e))
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil, fmt.Errorf("sine %v Hz: %w", t.freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.dur), sine),
		Base:     2,
		Volume:   t.volume,
	}, nil
}
