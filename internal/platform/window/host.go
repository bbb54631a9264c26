// Package window runs a game in a desktop window using Ebiten. It draws the
// same screen buffer the terminal host renders, one rectangle per cell.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/platform/raster"
	"github.com/vovakirdan/block-arcade/internal/registry"
	"github.com/vovakirdan/block-arcade/internal/storage"
)

// Cell size in pixels. Two columns make a square Tetris block.
const (
	CellW = 10
	CellH = 20
)

// Default grid in cells; fits the full Tetris layout and Breakout.
const (
	DefaultCols = 60
	DefaultRows = 28
)

// Debug font glyph offset inside a cell.
const (
	textOffsetX = 2
	textOffsetY = 2
)

// repeatKeys lists actions that auto-repeat while held.
var repeatKeys = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
}

// pressKeys lists actions that fire once per press.
var pressKeys = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionRotateCCW, []ebiten.Key{ebiten.KeyZ}},
	{core.ActionHardDrop, []ebiten.Key{ebiten.KeyX}},
	{core.ActionJump, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}},
}

// Host adapts a registry.Game to ebiten.Game.
type Host struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	sink     core.EventSink
	logger   *log.Logger
	config   core.RuntimeConfig
	repeater *core.Repeater
	frame    core.InputFrame
	state    core.GameState
	saved    bool
}

// NewHost creates a host for game. store and sink may be nil.
func NewHost(game registry.Game, store *storage.Store, sink core.EventSink, logger *log.Logger, cfg core.RuntimeConfig) *Host {
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = DefaultCols, DefaultRows
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	h := &Host{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    store,
		sink:     sink,
		logger:   logger,
		config:   cfg,
		repeater: core.NewRepeater(core.DefaultRepeatDelay, core.DefaultRepeatInterval),
		frame:    core.NewInputFrame(),
	}
	game.Reset(cfg)
	h.state = game.State()
	return h
}

// Update reads the keyboard and advances the game one tick.
func (h *Host) Update() error {
	h.frame.Clear()
	dt := h.config.Tick()

	for _, k := range repeatKeys {
		if h.repeater.Update(k.action, anyPressed(k.keys), dt) {
			h.frame.Set(k.action)
		}
	}
	for _, k := range pressKeys {
		if anyJustPressed(k.keys) {
			h.frame.Set(k.action)
		}
	}

	if h.frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if h.frame.Has(core.ActionRestart) && h.state.GameOver {
		h.config.Seed = time.Now().UnixNano()
		h.game.Reset(h.config)
		h.state = h.game.State()
		h.saved = false
		h.repeater.Reset()
		return nil
	}

	result := h.game.Step(h.frame)
	h.state = result.State

	if h.sink != nil {
		for _, e := range result.Events {
			h.sink.Play(e)
		}
	}

	if h.state.GameOver && !h.saved {
		h.saved = true
		h.logger.Info("game over", "game", h.game.ID(), "score", h.state.Score)
		if h.store != nil && h.state.Score > 0 {
			if _, err := h.store.SaveScore(h.game.ID(), h.state.Score); err != nil {
				h.logger.Warn("could not save score", "error", err)
			}
		}
	}
	return nil
}

// Draw renders the game's screen buffer as pixels.
func (h *Host) Draw(dst *ebiten.Image) {
	dst.Fill(raster.Background)
	h.game.Render(h.screen)

	for y := range h.screen.Height() {
		for x := range h.screen.Width() {
			drawCell(dst, h.screen.GetCell(x, y), x, y)
		}
	}
}

// drawCell draws one cell at grid position (x, y).
func drawCell(dst *ebiten.Image, c core.Cell, x, y int) {
	ox, oy := float32(x*CellW), float32(y*CellH)

	shapes, ok := raster.Shapes(c)
	if !ok {
		if r := raster.Text(c.Rune); r != 0 {
			ebitenutil.DebugPrintAt(dst, string(r), x*CellW+textOffsetX, y*CellH+textOffsetY)
		}
		return
	}

	for _, s := range shapes {
		clr := raster.RGBA(s.Color)
		sx, sy := ox+s.X*CellW, oy+s.Y*CellH
		sw, sh := s.W*CellW, s.H*CellH

		switch s.Kind {
		case raster.Fill:
			vector.DrawFilledRect(dst, sx, sy, sw, sh, clr, false)
		case raster.Outline:
			vector.StrokeRect(dst, sx, sy, sw, sh, 1, clr, false)
		case raster.Dot:
			vector.DrawFilledCircle(dst, sx+sw/2, sy+sh/2, min(sw, sh)/2, clr, true)
		}
	}
}

// Layout fixes the logical resolution to the cell grid.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.screen.Width() * CellW, h.screen.Height() * CellH
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Run opens a window and plays game until the window closes or the player
// quits.
func Run(game registry.Game, store *storage.Store, sink core.EventSink, logger *log.Logger, cfg core.RuntimeConfig) error {
	cfg.ScreenW, cfg.ScreenH = DefaultCols, DefaultRows
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	h := NewHost(game, store, sink, logger, cfg)

	ebiten.SetWindowSize(cfg.ScreenW*CellW, cfg.ScreenH*CellH)
	ebiten.SetWindowTitle(fmt.Sprintf("Block Arcade - %s", game.Title()))
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
