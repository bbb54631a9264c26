// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/block-arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no UI dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "tetris").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Tetris").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Describer is implemented by games that provide a one-line description
// for menus and the leaderboard API.
type Describer interface {
	Description() string
}

// Resizer is implemented by games that can follow a screen resize without
// restarting. Hosts reset games that do not implement it.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game factory under id, usually from the game package's
// init. The factory is called once to read the title and description.
// Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	entries[id] = entry{factory: f, info: info}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Info returns metadata for a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create returns a fresh instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}
