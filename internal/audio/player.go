package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/block-arcade/internal/core"
)

// SampleRate is the output rate for all cues.
const SampleRate = beep.SampleRate(44100)

// Player plays event cues on the speaker. It implements core.EventSink.
// A nil or closed Player is silent.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	live   bool
}

// NewPlayer opens the speaker and starts the mixer. volume is in [0, 1].
func NewPlayer(volume float64) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	p := &Player{
		mixer:  &beep.Mixer{},
		volume: core.Clamp(volume, 0, 1),
		live:   true,
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues the cue for e. It never blocks on audio output.
func (p *Player) Play(e core.Event) {
	if p == nil {
		return
	}

	p.mu.Lock()
	live := p.live
	vol := p.volume
	p.mu.Unlock()
	if !live {
		return
	}

	s := Cue(e, vol, SampleRate)
	if s == nil {
		return
	}

	// The mixer is read by the speaker goroutine under the speaker lock
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences the player and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.live {
		return
	}
	p.live = false

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
