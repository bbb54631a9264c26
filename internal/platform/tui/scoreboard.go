package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/block-arcade/internal/registry"
	"github.com/vovakirdan/block-arcade/internal/storage"
)

// numbers groups digits in scores and stats.
var numbers = message.NewPrinter(language.English)

const (
	boardScores     = 50 // rows loaded per game
	statsPanelWidth = 22
	statsPanelMinW  = 70 // below this the stats panel moves under the table
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// scoreboardKeys are the scoreboard bindings. They double as the help view.
type scoreboardKeys struct {
	Scroll key.Binding
	Game   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Game, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var boardKeys = scoreboardKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
	Game:   key.NewBinding(key.WithKeys("left", "h", "right", "l", "tab", "shift+tab"), key.WithHelp("←/→", "game")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ScoreboardModel shows the top scores and score statistics per game.
type ScoreboardModel struct {
	store  *storage.Store
	games  []registry.GameInfo
	cursor int

	scores []storage.ScoreEntry
	stats  *storage.GameStats

	table table.Model
	help  help.Model

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard showing the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	dateW := 16
	if m.width > 0 && m.width < statsPanelMinW {
		dateW = 12
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 11},
			{Title: "Date", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load fetches scores and stats for the selected game.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil

	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.cursor].ID

		scores, err := m.store.TopScores(id, boardScores)
		if err != nil {
			logger.Warn("could not load scores", "game", id, "error", err)
		}
		m.scores = scores

		stats, err := m.store.GetGameStats(id)
		if err != nil {
			logger.Warn("could not load stats", "game", id, "error", err)
		}
		m.stats = stats
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			numbers.Sprintf("%d", s.Score),
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selectGame moves the game cursor by delta, wrapping around.
func (m *ScoreboardModel) selectGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.games)) % len(m.games)
	m.load()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, boardKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, boardKeys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, boardKeys.Game):
			switch msg.String() {
			case "left", "h", "shift+tab":
				m.selectGame(-1)
			default:
				m.selectGame(1)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	scores := panelStyle.Render(m.tableView())
	stats := panelStyle.Width(statsPanelWidth).Render(m.statsView())
	if m.width >= statsPanelMinW {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, scores, " ", stats))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, scores, stats))
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(m.help.View(boardKeys)))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		name := truncate(g.Title, 14)
		if i == m.cursor {
			parts[i] = activeTabStyle.Render(name)
		} else {
			parts[i] = tabStyle.Render(name)
		}
	}
	return strings.Join(parts, " ")
}

func (m ScoreboardModel) tableView() string {
	if len(m.scores) == 0 {
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set one!")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsView() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "No games played"
	}

	s := m.stats
	lines := []string{
		numbers.Sprintf("Games   %d", s.GamesCount),
		numbers.Sprintf("Best    %d", s.HighScore),
		numbers.Sprintf("Mean    %.1f", s.AvgScore),
		numbers.Sprintf("Median  %.1f", s.Median),
		numbers.Sprintf("Std dev %.1f", s.StdDev),
		numbers.Sprintf("Total   %d", s.TotalScore),
	}
	if !s.LastPlayed.IsZero() {
		lines = append(lines, "", "Last "+s.LastPlayed.Local().Format("Jan 02 15:04"))
	}
	return strings.Join(lines, "\n")
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
