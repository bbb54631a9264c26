package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/storage"
)

// scriptGame records its inputs and ends when told to.
type scriptGame struct {
	inputs  []core.InputFrame
	events  []core.Event
	state   core.GameState
	resets  int
	endAt   int
	endWith int
}

func (g *scriptGame) ID() string    { return "script" }
func (g *scriptGame) Title() string { return "Script" }

func (g *scriptGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.inputs = nil
	g.state = core.GameState{}
}

func (g *scriptGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if g.endAt > 0 && len(g.inputs) >= g.endAt {
		g.state = core.GameState{Score: g.endWith, GameOver: true}
	}
	return core.StepResult{State: g.state, Events: g.events}
}

func (g *scriptGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "script")
}

func (g *scriptGame) State() core.GameState { return g.state }

type recordingSink struct {
	played []core.Event
}

func (s *recordingSink) Play(e core.Event) {
	s.played = append(s.played, e)
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func newScriptModel(g *scriptGame, store *storage.Store, sink core.EventSink) Model {
	m := NewModel(g, store, sink, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1})
	m.Init()
	return m
}

func TestModelForwardsKeysOnNextTick(t *testing.T) {
	g := &scriptGame{}
	m := newScriptModel(g, nil, nil)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = step(t, m, runeKey('z'))
	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})

	if len(g.inputs) != 2 {
		t.Fatalf("Step called %d times, expected 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) || !g.inputs[0].Has(core.ActionRotateCCW) {
		t.Error("first tick should carry Left and RotateCCW")
	}
	if g.inputs[1].Len() != 0 {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelForwardsEventsToSink(t *testing.T) {
	g := &scriptGame{events: []core.Event{core.EventLock, core.EventLineClear}}
	sink := &recordingSink{}
	m := newScriptModel(g, nil, sink)

	step(t, m, TickMsg{})

	if len(sink.played) != 2 || sink.played[0] != core.EventLock || sink.played[1] != core.EventLineClear {
		t.Errorf("sink played %v, expected [Lock LineClear]", sink.played)
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &scriptGame{endAt: 1, endWith: 700}
	m := newScriptModel(g, store, nil)

	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})

	scores, err := store.AllScores("script")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 700 {
		t.Errorf("stored scores = %v, expected one 700", scores)
	}
	if m.rank != 1 {
		t.Errorf("rank = %d, expected 1", m.rank)
	}
	if !strings.Contains(m.View(), "ranks #1") {
		t.Error("View should announce the rank")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &scriptGame{endAt: 1}
	m := newScriptModel(g, nil, nil)

	m = step(t, m, TickMsg{})
	if !m.gameState.GameOver {
		t.Fatal("game should be over")
	}

	m = step(t, m, runeKey('r'))
	m = step(t, m, TickMsg{})

	if g.resets != 2 {
		t.Errorf("Reset called %d times, expected 2", g.resets)
	}
	if m.gameState.GameOver || m.scoreSaved {
		t.Error("restart should clear game over and score state")
	}
}

func TestModelBack(t *testing.T) {
	g := &scriptGame{endAt: 1}

	standalone := newScriptModel(g, nil, nil)
	standalone = step(t, standalone, TickMsg{})
	standalone = step(t, standalone, tea.KeyMsg{Type: tea.KeyEsc})
	if !standalone.IsQuitting() {
		t.Error("standalone model should quit on back after game over")
	}

	g2 := &scriptGame{endAt: 1}
	inSession := newScriptModel(g2, nil, nil)
	inSession.standalone = false
	inSession = step(t, inSession, TickMsg{})
	inSession = step(t, inSession, tea.KeyMsg{Type: tea.KeyEsc})
	if inSession.IsQuitting() || !inSession.BackToMenu() {
		t.Error("session model should return to menu on back after game over")
	}
}

func TestModelBackIgnoredWhilePlaying(t *testing.T) {
	m := newScriptModel(&scriptGame{}, nil, nil)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.IsQuitting() || m.BackToMenu() {
		t.Error("back should do nothing mid-game")
	}
}

func TestModelQuit(t *testing.T) {
	m := newScriptModel(&scriptGame{}, nil, nil)
	m = step(t, m, runeKey('q'))

	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

// resizingGame follows screen resizes instead of restarting.
type resizingGame struct {
	scriptGame
	sizes [][2]int
}

func (g *resizingGame) Resize(w, h int) {
	g.sizes = append(g.sizes, [2]int{w, h})
}

func TestModelResizeRestartsGame(t *testing.T) {
	g := &scriptGame{}
	m := newScriptModel(g, nil, nil)

	m = step(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if g.resets != 2 {
		t.Errorf("resets = %d, expected a restart on resize", g.resets)
	}
	if m.screen.Width() != 40 || m.screen.Height() != 12 {
		t.Errorf("screen = %dx%d, expected 40x12", m.screen.Width(), m.screen.Height())
	}
}

func TestModelResizeKeepsResizer(t *testing.T) {
	g := &resizingGame{}
	m := NewModel(g, nil, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1})
	m.Init()

	m = step(t, m, TickMsg{})
	m = step(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})

	if g.resets != 1 {
		t.Errorf("resets = %d, expected only the initial reset", g.resets)
	}
	if len(g.sizes) != 1 || g.sizes[0] != [2]int{40, 12} {
		t.Errorf("Resize calls = %v, expected [[40 12]]", g.sizes)
	}
	if len(g.inputs) != 1 {
		t.Errorf("inputs = %d, expected the game to keep its history", len(g.inputs))
	}
	if m.config.ScreenW != 40 || m.config.ScreenH != 12 {
		t.Errorf("config size = %dx%d, expected 40x12", m.config.ScreenW, m.config.ScreenH)
	}
}
