// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/block-arcade/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next simulation tick.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.Tick(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
