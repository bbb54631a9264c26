package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/registry"
	"github.com/vovakirdan/block-arcade/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every session.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer wraps a Wish SSH server for the arcade.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// store is shared by all sessions and may be nil; the caller owns it.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("ssh: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("ssh: cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	return NewSessionModel(s.store, cfg), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// Serve runs the SSH server until ctx is cancelled, then shuts it down.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("ssh: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen is the part of the session flow currently shown.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenScores
	screenGame
)

// SessionModel drives one SSH session: menu, scoreboard and games all run
// inside a single program, and leaving a game or the scoreboard returns to
// the menu.
type SessionModel struct {
	store  *storage.Store
	config core.RuntimeConfig
	screen sessionScreen

	menu   MenuModel
	scores ScoreboardModel
	game   *Model

	quitting bool
}

// NewSessionModel creates a session that starts at the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update implements tea.Model. Child models signal they are done with
// tea.Quit; the session swallows those and switches screens instead.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.game = nil
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		id := m.menu.Selected().GameID
		game, err := registry.Create(id)
		if err != nil {
			logger.Warn("cannot start game", "game", id, "error", err)
			return m.toMenu()
		}

		m.config = m.menu.Config()
		m.config.Seed = time.Now().UnixNano()

		gm := NewModel(game, m.store, nil, m.config)
		gm.standalone = false
		m.game = &gm
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scores = sm
	}

	if m.scores.IsGoingBack() {
		return m.toMenu()
	}
	if m.scores.quitting {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}

	if m.game.BackToMenu() {
		return m.toMenu()
	}
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// View implements tea.Model.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}
