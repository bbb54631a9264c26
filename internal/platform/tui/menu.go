package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/registry"
	"github.com/vovakirdan/block-arcade/internal/storage"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int // Stored high score, 0 if none
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const menuLabelWidth = 20

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		item := MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
		}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Digits pick a game directly
	if r := msg.Runes; len(r) == 1 && r[0] >= '1' && r[0] <= '9' {
		if i := int(r[0] - '1'); i < len(m.items) {
			m.cursor = i
			return m.choose()
		}
		return m, nil
	}

	n := len(m.items)
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}
	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case MenuActionSelect:
		return m.choose()
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// choose selects the item under the cursor and leaves the menu.
func (m MenuModel) choose() (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	selected := m.items[m.cursor]
	m.selected = &selected
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	rows := make([]string, 0, len(m.items))
	for i, item := range m.items {
		best := menuDimStyle.Render("no score yet")
		if item.Best > 0 {
			best = numbers.Sprintf("best %d", item.Best)
		}
		label := fmt.Sprintf("%d  %s", i+1, item.Title)
		if i == m.cursor {
			label = menuCursorStyle.Render("▸ " + label)
		} else {
			label = "  " + label
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(menuLabelWidth).Render(label), best))
	}

	list := "No games registered"
	if len(rows) > 0 {
		list = strings.Join(rows, "\n")
	}
	panel := panelStyle.Padding(1, 2).Render(list)

	desc := ""
	if len(m.items) > 0 {
		desc = truncate(m.items[m.cursor].Description, max(10, m.width-4))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		menuTitleStyle.Render("B L O C K   A R C A D E"),
		"",
		panel,
		menuDimStyle.Render(desc),
		"",
		menuDimStyle.Render("↑/↓ move · enter/1-9 play · tab scores · q quit"),
	)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Width is measured in
// terminal cells, ignoring any ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// truncate shortens text to fit width terminal cells.
func truncate(text string, width int) string {
	return runewidth.Truncate(text, width, ".")
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}

	return result, nil
}
