package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/registry"
	"github.com/vovakirdan/block-arcade/internal/storage"
)

// logger is shared by the terminal hosts. It discards output until the CLI
// installs one, since stdout belongs to the TUI.
var logger = log.New(io.Discard)

// SetLogger sets the logger used by the terminal hosts.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Model is the Bubble Tea model that runs one game. Standalone models quit
// on back; models inside a session hand control back to the menu instead.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sink       core.EventSink
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
	rank       int  // Leaderboard position of the last saved score
}

// NewModel creates a new Bubble Tea model for the given game.
// store and sink may be nil.
func NewModel(game registry.Game, store *storage.Store, sink core.EventSink, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sink:       sink,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		standalone: true,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))

	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only when nothing is in progress
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games without a resize hook lay out for one size, so a live one restarts
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.rank = 0
		m.inputFrame.Clear()
		return m, tickCmd(m.config)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.sink != nil {
		for _, e := range result.Events {
			m.sink.Play(e)
		}
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config)
}

// saveScore records a finished game's score. Failures are logged and the
// game continues.
func (m *Model) saveScore() {
	score := m.gameState.Score
	logger.Info("game over", "game", m.game.ID(), "score", score)

	if m.store == nil || score <= 0 {
		return
	}

	rank, err := m.store.Rank(m.game.ID(), score)
	if err != nil {
		logger.Warn("could not rank score", "error", err)
	}
	if _, err := m.store.SaveScore(m.game.ID(), score); err != nil {
		logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	m.rank = rank
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		logger.Warn("screenshot failed", "error", err)
		return
	}
	logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.rank > 0 && m.gameState.GameOver {
		m.screen.DrawTextCenteredColor(m.screen.Height()-1,
			fmt.Sprintf("New score ranks #%d", m.rank), core.ColorBrightYellow)
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, sink core.EventSink, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sink, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
