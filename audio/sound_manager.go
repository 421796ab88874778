package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"gesture-snake/game"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays the game's short effects. Every Play method is a no-op
// until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still queued
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) add(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayCollision plays a low buzz for a crash
func (sm *SoundManager) PlayCollision() {
	sm.add(beep.Take(sampleRate.N(time.Millisecond*250), NewBuzzGenerator(sampleRate, 110)))
}

// PlayPickup plays a short rising blip
func (sm *SoundManager) PlayPickup() {
	sm.add(NewToneGenerator(sampleRate, 660, 990, time.Millisecond*80))
}

// PlayHighScore plays a brighter blip than a regular pickup
func (sm *SoundManager) PlayHighScore() {
	sm.add(beep.Seq(
		NewToneGenerator(sampleRate, 660, 990, time.Millisecond*60),
		NewToneGenerator(sampleRate, 990, 1320, time.Millisecond*90),
	))
}

// OnFrame is a game.FrameHandler
func (sm *SoundManager) OnFrame(f game.Frame) {
	switch {
	case f.Terminated:
		sm.PlayCollision()
	case f.NewHighScore:
		sm.PlayHighScore()
	case f.Ate:
		sm.PlayPickup()
	}
}

// BuzzGenerator generates a harsh low tone. It never ends on its own.
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// ToneGenerator sweeps a sine from one frequency to another over a fixed
// duration, with a linear fade out.
type ToneGenerator struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	samples  int
}

func NewToneGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(d),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		sample := 0.25 * (1 - progress) * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
