package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sink consumes cues. The terminal model feeds it after every transition.
type Sink interface {
	Play(cues []Cue)
}

// NopSink discards cues.
type NopSink struct{}

// Play does nothing.
func (NopSink) Play([]Cue) {}

// Player plays cues on the system speaker through a shared mixer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player with the given master volume in [0, 1].
// Call Init before Play; an uninitialized player is silent.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: min(1, max(0, volume)),
	}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the cues on the mixer. It never blocks on playback.
func (p *Player) Play(cues []Cue) {
	if len(cues) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	streams := make([]beep.Streamer, 0, len(cues))
	for _, c := range cues {
		streams = append(streams, Synth(c, sampleRate, p.volume))
	}

	speaker.Lock()
	p.mixer.Add(streams...)
	speaker.Unlock()
}

// Close stops all sounds and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Recorder is a Sink that remembers what it was asked to play.
// Used by the headless simulator to count cues.
type Recorder struct {
	mu     sync.Mutex
	counts map[CueKind]int
}

// Play records the cues.
func (r *Recorder) Play(cues []Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.counts == nil {
		r.counts = make(map[CueKind]int)
	}
	for _, c := range cues {
		r.counts[c.Kind]++
	}
}

// Count returns how many cues of kind were played.
func (r *Recorder) Count(kind CueKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[kind]
}
