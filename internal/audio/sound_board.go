package audio

import (
	"sync"
	"time"

	"go-fps-factory/internal/event"
	"go-fps-factory/pkg/logger"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue is one short synthesized sound.
type Cue int

const (
	CueShot Cue = iota
	CueHit
	CueCritical
	CueDeath
	CueShieldBreak
	CueHurt
	CueUnlock
	CueEmpty
)

type toneSpec struct {
	freq     float64
	duration time.Duration
	square   bool
	volume   float64
}

var tones = map[Cue]toneSpec{
	CueShot:        {freq: 220, duration: 40 * time.Millisecond, square: true, volume: -2},
	CueHit:         {freq: 660, duration: 50 * time.Millisecond, volume: -1},
	CueCritical:    {freq: 990, duration: 80 * time.Millisecond, volume: -0.5},
	CueDeath:       {freq: 110, duration: 200 * time.Millisecond, square: true, volume: -1},
	CueShieldBreak: {freq: 440, duration: 150 * time.Millisecond, square: true, volume: -1},
	CueHurt:        {freq: 90, duration: 120 * time.Millisecond, square: true, volume: -0.5},
	CueUnlock:      {freq: 1320, duration: 300 * time.Millisecond, volume: -1},
	CueEmpty:       {freq: 150, duration: 60 * time.Millisecond, volume: -2},
}

// CueFor maps a game event to its sound, if it has one.
func CueFor(e event.Event) (Cue, bool) {
	switch e.Type {
	case event.ShotFired:
		data, ok := e.Data.(event.ShotFiredData)
		switch {
		case !ok || !data.Hit:
			return CueShot, true
		case data.Critical:
			return CueCritical, true
		}
		return CueHit, true
	case event.ActorDied:
		return CueDeath, true
	case event.ShieldBroken:
		return CueShieldBreak, true
	case event.PlayerDamaged:
		return CueHurt, true
	case event.UnlockAcquired:
		return CueUnlock, true
	case event.AmmoEmpty:
		return CueEmpty, true
	}
	return 0, false
}

// Tone builds the finite streamer for a cue.
func Tone(c Cue) (beep.Streamer, error) {
	spec, ok := tones[c]
	if !ok {
		spec = tones[CueShot]
	}
	var (
		osc beep.Streamer
		err error
	)
	if spec.square {
		osc, err = generators.SquareTone(sampleRate, spec.freq)
	} else {
		osc, err = generators.SineTone(sampleRate, spec.freq)
	}
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(spec.duration), &effects.Volume{
		Streamer: osc,
		Base:     2,
		Volume:   spec.volume,
	}), nil
}

// SoundBoard plays a cue for each interesting game event. Without an audio
// device it stays silent and the game runs as usual.
type SoundBoard struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
	log         *logger.Logger
}

func NewSoundBoard(log *logger.Logger) *SoundBoard {
	return &SoundBoard{log: log}
}

// Initialize opens the audio device.
func (s *SoundBoard) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

// Cleanup stops everything still playing.
func (s *SoundBoard) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		speaker.Clear()
	}
}

// SetMuted silences or restores cues.
func (s *SoundBoard) SetMuted(muted bool) {
	s.mu.Lock()
	s.muted = muted
	s.mu.Unlock()
}

func (s *SoundBoard) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Subscribe registers the board for every event type it has a cue for.
func (s *SoundBoard) Subscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{event.ShotFired, event.ActorDied, event.ShieldBroken, event.PlayerDamaged, event.UnlockAcquired, event.AmmoEmpty} {
		d.Subscribe(t, s)
	}
}

func (s *SoundBoard) OnEvent(e event.Event) {
	if cue, ok := CueFor(e); ok {
		s.Play(cue)
	}
}

// Play starts a cue on the speaker.
func (s *SoundBoard) Play(c Cue) {
	s.mu.Lock()
	ready := s.initialized && !s.muted
	s.mu.Unlock()
	if !ready {
		return
	}
	streamer, err := Tone(c)
	if err != nil {
		s.log.Warn("tone %d: %v", c, err)
		return
	}
	speaker.Play(streamer)
}
