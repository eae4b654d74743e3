package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/invoker/internal/invoker"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tick pitches per piece color: C5, E5, G5, C6.
var tickPitch = map[invoker.Color]float64{
	invoker.ColorRed:    523.25,
	invoker.ColorGreen:  659.25,
	invoker.ColorYellow: 783.99,
	invoker.ColorBlue:   1046.50,
}

const (
	tickDuration   = 60 * time.Millisecond
	chimeNote      = 110 * time.Millisecond
	buzzDuration   = 180 * time.Millisecond
	glitchDuration = 240 * time.Millisecond
	attack         = 5 * time.Millisecond
)

// NewOscillator returns a fixed-length raw wave. Sine, square and saw come
// from beep's generators; a frequency the rate cannot carry yields silence.
// Noise is seeded from the frequency so identical cues sound identical.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	n := rate.N(duration)

	var (
		gen beep.Streamer
		err error
	)
	switch wave {
	case WaveSine:
		gen, err = generators.SineTone(rate, freq)
	case WaveSquare:
		gen, err = generators.SquareTone(rate, freq)
	case WaveSaw:
		gen, err = generators.SawtoothTone(rate, freq)
	default:
		gen = &noise{rng: rand.New(rand.NewPCG(uint64(freq), uint64(wave)))}
	}
	if err != nil {
		return beep.Silence(n)
	}
	return beep.Take(n, gen)
}

// noise streams endless white noise.
type noise struct {
	rng *rand.Rand
}

func (w *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := w.rng.Float64()*2 - 1
		samples[i][0] = val
		samples[i][1] = val
	}
	return len(samples), true
}

func (w *noise) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	total        int
}

// NewEnvelope shapes s over duration with the given attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		releaseStart: max(0, total-rate.N(release)),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.total > e.releaseStart {
			vol = float64(e.total-e.position) / float64(e.total-e.releaseStart)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, d/2, rate)
}

// Synth builds the streamer for a cue at the given sample rate and volume.
// The result is finite.
func Synth(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c.Kind {
	case CueTick:
		pitch, ok := tickPitch[c.Color]
		if !ok {
			pitch = tickPitch[invoker.ColorRed]
		}
		s = tone(pitch, tickDuration, WaveSine, rate)

	case CueChime:
		// Rising arpeggio with a sine bell layered on the last note.
		arp := beep.Seq(
			tone(659.25, chimeNote, WaveSquare, rate),
			tone(783.99, chimeNote, WaveSquare, rate),
			tone(1318.51, 2*chimeNote, WaveSquare, rate),
		)
		bell := beep.Seq(
			silence(rate, 2*chimeNote),
			NewEnvelope(NewOscillator(1318.51, 2*chimeNote, WaveSine, rate), 2*chimeNote, attack, 2*chimeNote, rate),
		)
		s = beep.Mix(newVolume(arp, 0.35), newVolume(bell, 0.5))

	case CueBuzz:
		s = beep.Mix(
			tone(110, buzzDuration, WaveSaw, rate),
			newVolume(tone(116, buzzDuration, WaveSaw, rate), 0.6),
		)

	case CueGlitch:
		s = beep.Seq(
			tone(0, glitchDuration/3, WaveNoise, rate),
			tone(1800, glitchDuration/6, WaveSquare, rate),
			tone(0, glitchDuration/2, WaveNoise, rate),
		)

	default:
		return silence(rate, 0)
	}
	return newVolume(s, volume)
}

func silence(rate beep.SampleRate, d time.Duration) beep.Streamer {
	return beep.Silence(rate.N(d))
}
