package core

import (
	"time"

	"github.com/kamstrup/intmap"
)

// Default key repeat timing for hosts that only see key up/down state.
const (
	DefaultRepeatDelay    = 500 * time.Millisecond
	DefaultRepeatInterval = 120 * time.Millisecond
)

// held tracks one pressed action.
type held struct {
	elapsed time.Duration // Time since the press
	next    time.Duration // Elapsed time at which the next repeat fires
}

// Repeater turns held keys into repeated actions: an action fires on the
// press, once more after Delay, then every Interval while still held.
type Repeater struct {
	Delay    time.Duration
	Interval time.Duration

	keys *intmap.Map[Action, held]
}

// NewRepeater creates a repeater with the given timing.
func NewRepeater(delay, interval time.Duration) *Repeater {
	return &Repeater{
		Delay:    delay,
		Interval: interval,
		keys:     intmap.New[Action, held](8),
	}
}

// Update advances the repeater by dt for one action and reports whether
// the action fires this tick. down is whether the key is currently held.
func (r *Repeater) Update(a Action, down bool, dt time.Duration) bool {
	if !down {
		r.keys.Del(a)
		return false
	}

	h, ok := r.keys.Get(a)
	if !ok {
		r.keys.Put(a, held{next: r.Delay})
		return true
	}

	h.elapsed += dt
	fire := false
	if h.elapsed >= h.next {
		fire = true
		h.next += max(r.Interval, dt)
	}
	r.keys.Put(a, h)
	return fire
}

// Reset forgets all held keys.
func (r *Repeater) Reset() {
	r.keys.Clear()
}
