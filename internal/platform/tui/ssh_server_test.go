package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-arcade/internal/core"
)

func sessionKey(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected SessionModel", next)
	}
	return sm
}

func newTestSession() SessionModel {
	return NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := sessionKey(t, newTestSession(), tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen after tab = %d, expected scoreboard", m.screen)
	}

	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen after esc = %d, expected menu", m.screen)
	}
	if m.quitting {
		t.Error("leaving the scoreboard should not end the session")
	}
}

func TestSessionStartsGame(t *testing.T) {
	m := sessionKey(t, newTestSession(), tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game == nil {
		t.Fatalf("screen after enter = %d, expected game", m.screen)
	}
	if m.game.standalone {
		t.Error("session games must return to the menu, not exit")
	}
	if got := m.game.game.ID(); got != m.menu.items[0].GameID {
		t.Errorf("game ID = %q, expected %q", got, m.menu.items[0].GameID)
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m := sessionKey(t, newTestSession(), tea.KeyMsg{Type: tea.KeyEnter})
	m = sessionKey(t, m, runeKey('q'))

	if !m.quitting {
		t.Error("q in a game should end the session")
	}
	if m.View() != "" {
		t.Error("View() should be empty once quitting")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	m := sessionKey(t, newTestSession(), tea.WindowSizeMsg{Width: 120, Height: 40})
	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyTab})

	if m.scores.width != 120 || m.scores.height != 40 {
		t.Errorf("scoreboard size = %dx%d, expected 120x40", m.scores.width, m.scores.height)
	}
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, nil, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}
}
