package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

const (
	minWidthForSidebar = 80 // Below this the game list becomes a tab line
	sidebarWidth       = 20
	maxScores          = 100 // Results loaded per game
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	pickedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev game")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the finished results of one game at a time, best
// first by that game's order.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store // nil without a database
	stats      *storage.GameStats
	scores     []storage.ScoreEntry
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	if len(m.games) > 0 {
		m.loadScores()
	}
	return m
}

func (m ScoreboardModel) wide() bool { return m.width >= minWidthForSidebar }

// newTable sizes the result table to the space left by the game picker.
func (m ScoreboardModel) newTable() table.Model {
	avail := m.width - 4
	if m.wide() {
		avail -= sidebarWidth + 3
	}
	dateWidth := min(max(avail-22, 12), 20)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Result", Width: 12},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Title, summary, help and margins
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

func (m ScoreboardModel) current() registry.GameInfo { return m.games[m.gameCursor] }

// loadScores reads the selected game's results and aggregates.
func (m *ScoreboardModel) loadScores() {
	m.scores, m.stats = nil, nil
	if m.store != nil {
		g := m.current()
		if scores, err := m.store.TopScores(g.ID, g.Order, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(g.ID, g.Order); err == nil {
			m.stats = stats
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			formatResult(m.current(), s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
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
	m.gameCursor = (m.gameCursor + delta + len(m.games)) % len(m.games)
	m.loadScores()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.NextGame):
			m.selectGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.selectGame(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		if len(m.games) > 0 {
			m.fillRows()
		}
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "SCOREBOARD"
	if len(m.games) > 0 {
		title += " - " + m.current().Title
	}

	var body string
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", m.renderTable())
	} else {
		body = centerText(m.renderTabs(), m.width) + "\n\n" + centerText(m.renderTable(), m.width)
	}

	return strings.Join([]string{
		titleStyle.Render(centerText(title, m.width)),
		dimStyle.Render(centerText(m.summary(), m.width)),
		"",
		body,
		"",
		dimStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

func (m ScoreboardModel) renderSidebar() string {
	lines := []string{"Games", strings.Repeat("-", sidebarWidth-4)}
	for i, g := range m.games {
		if i == m.gameCursor {
			lines = append(lines, pickedStyle.Render("> "+g.Title))
			continue
		}
		lines = append(lines, "  "+g.Title)
	}
	return panelStyle.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = pickedStyle.Background(lipgloss.Color("57")).Padding(0, 1).Render(g.Title)
			continue
		}
		tabs[i] = dimStyle.Render(" " + g.Title + " ")
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.current().Title)
	}
	return line
}

func (m ScoreboardModel) renderTable() string {
	if len(m.scores) == 0 {
		return panelStyle.Render(dimStyle.Italic(true).Padding(2, 4).
			Render("No results recorded yet.\nFinish a game to get on the board!"))
	}
	return panelStyle.Render(m.table.View())
}

// summary describes the aggregates of the selected game.
func (m ScoreboardModel) summary() string {
	if m.store == nil {
		return "results are not saved without a database"
	}
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "no games finished"
	}
	g := m.current()
	return fmt.Sprintf("%d finished  |  best %s (%s is better)  |  average %.1f  |  last %s",
		m.stats.GamesCount, formatResult(g, m.stats.Best), g.Order, m.stats.AvgScore,
		m.stats.LastPlayed.Format("Jan 02 15:04"))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
