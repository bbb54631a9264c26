// Package audio synthesizes short sound cues for game events and plays
// them through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/block-arcade/internal/core"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator creates a tone of the given frequency and length.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack samples and out over release
// samples at the end of its length.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := range n {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = min(vol, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// volume scales s linearly; 0 or less is silent.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// note is one step of a cue.
type note struct {
	freq float64
	dur  time.Duration
}

// tone builds an enveloped note.
func tone(n note, wave Wave, rate beep.SampleRate) beep.Streamer {
	attack := min(5*time.Millisecond, n.dur/4)
	release := n.dur / 3
	return NewEnvelope(NewOscillator(n.freq, n.dur, wave, rate), n.dur, attack, release, rate)
}

// phrase plays notes back to back.
func phrase(wave Wave, rate beep.SampleRate, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = tone(n, wave, rate)
	}
	return beep.Seq(parts...)
}

// cue describes the sound for one event.
type cue struct {
	wave  Wave
	gain  float64
	notes []note
}

var cues = map[core.Event]cue{
	core.EventMove:      {WaveSquare, 0.15, []note{{220, 15 * time.Millisecond}}},
	core.EventRotate:    {WaveSine, 0.3, []note{{330, 30 * time.Millisecond}}},
	core.EventLock:      {WaveSaw, 0.35, []note{{110, 60 * time.Millisecond}}},
	core.EventLineClear: {WaveSine, 0.5, []note{{660, 60 * time.Millisecond}, {880, 90 * time.Millisecond}}},
	core.EventTetris: {WaveSquare, 0.4, []note{
		{523.25, 70 * time.Millisecond},
		{659.25, 70 * time.Millisecond},
		{783.99, 70 * time.Millisecond},
		{1046.5, 160 * time.Millisecond},
	}},
	core.EventBounce:   {WaveSquare, 0.25, []note{{440, 25 * time.Millisecond}}},
	core.EventBrickHit: {WaveSquare, 0.35, []note{{880, 40 * time.Millisecond}}},
	core.EventWin: {WaveSine, 0.5, []note{
		{783.99, 90 * time.Millisecond},
		{987.77, 90 * time.Millisecond},
		{1318.5, 220 * time.Millisecond},
	}},
	core.EventGameOver: {WaveSaw, 0.4, []note{
		{392, 120 * time.Millisecond},
		{311.13, 120 * time.Millisecond},
		{261.63, 260 * time.Millisecond},
	}},
}

// Cue returns the sound for e at the given master volume, or nil when the
// event has no sound.
func Cue(e core.Event, master float64, rate beep.SampleRate) beep.Streamer {
	c, ok := cues[e]
	if !ok {
		return nil
	}
	return volume(phrase(c.wave, rate, c.notes...), c.gain*master)
}

// CueDuration returns how long the cue for e plays.
func CueDuration(e core.Event) time.Duration {
	var d time.Duration
	for _, n := range cues[e].notes {
		d += n.dur
	}
	return d
}
