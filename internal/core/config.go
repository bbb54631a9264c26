package core

import "time"

// RuntimeConfig is what a host tells a game on Reset: the screen it draws
// into, how fast it is stepped and the seed for its RNG (0 lets the host pick).
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultTickRate is used when TickRate is unset.
const DefaultTickRate = 60

// Tick returns the simulated duration of one tick.
func (c RuntimeConfig) Tick() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
