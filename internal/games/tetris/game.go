package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/block-arcade/internal/config"
	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/registry"
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a State to the platform Game contract: it turns input
// frames into controller calls and applies gravity on the simulated clock.
type Game struct {
	st *State

	state       string
	tickCount   int
	dropCounter time.Duration // Simulated time since the last drop
	lastClear   int           // Rows cleared by the most recent lock, for the HUD
	clearTicks  int           // Ticks left to show lastClear

	runtime    core.RuntimeConfig
	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager

	layout         layout
	screenTooSmall bool
}

// New creates a new Tetris game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tetris"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return "Stack falling pieces and clear full rows"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.layout, g.screenTooSmall = computeLayout(runtime.ScreenW, runtime.ScreenH)

	g.st = NewState(rand.New(rand.NewSource(runtime.Seed))) //#nosec G404 -- gameplay RNG, determinism wanted
	g.state = StatePlaying
	g.tickCount = 0
	g.dropCounter = 0
	g.lastClear = 0
	g.clearTicks = 0
}

// Resize picks a new layout for the screen. The board and score are kept.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.layout, g.screenTooSmall = computeLayout(w, h)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	if g.clearTicks > 0 {
		g.clearTicks--
	}

	var events []core.Event

	if in.Has(core.ActionLeft) && g.st.Move(-1) {
		events = append(events, core.EventMove)
	}
	if in.Has(core.ActionRight) && g.st.Move(1) {
		events = append(events, core.EventMove)
	}
	if in.Has(core.ActionUp) && g.st.RotateCW() {
		events = append(events, core.EventRotate)
	}
	if in.Has(core.ActionRotateCCW) && g.st.RotateCCW() {
		events = append(events, core.EventRotate)
	}

	// Any drop, manual or timed, restarts the gravity clock
	switch {
	case in.Has(core.ActionHardDrop) || in.Has(core.ActionJump):
		events = g.onDrop(g.st.HardDrop(), events)
		g.dropCounter = 0
	case in.Has(core.ActionDown):
		events = g.onDrop(g.st.SoftDropStep(), events)
		g.dropCounter = 0
	default:
		g.dropCounter += g.runtime.Tick()
		if g.dropCounter > time.Duration(g.DropInterval())*time.Millisecond {
			events = g.onDrop(g.st.SoftDropStep(), events)
			g.dropCounter = 0
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// onDrop converts a drop outcome into events and state changes.
func (g *Game) onDrop(res LockResult, events []core.Event) []core.Event {
	if !res.Locked {
		return events
	}

	events = append(events, core.EventLock)
	switch {
	case res.Cleared >= 4:
		events = append(events, core.EventTetris)
	case res.Cleared > 0:
		events = append(events, core.EventLineClear)
	}
	if res.Cleared > 0 {
		g.lastClear = res.Cleared
		g.clearTicks = g.runtime.TickRate
	}

	if res.GameOver {
		g.state = StateGameOver
		events = append(events, core.EventGameOver)
	}
	return events
}

// DropInterval returns the current gravity interval in milliseconds.
func (g *Game) DropInterval() int {
	return g.difficulty.Interval(
		g.cfg.Gravity.DropIntervalMs,
		g.cfg.Gravity.MinIntervalMs,
		g.st.Score(),
		g.tickCount,
	)
}

// Controller exposes the underlying game state for hosts and tests.
func (g *Game) Controller() *State {
	return g.st
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.st.Score(),
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}
