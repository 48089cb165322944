// Package tui provides the Bubble Tea front end of the arcade: game screens,
// the menu, the scoreboard and the SSH server. It renders game snapshots and
// forwards key presses as inputs.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// GameModel is the Bubble Tea model for one game session.
// It forwards key presses as inputs and renders snapshots; all rules live in
// the game.
type GameModel struct {
	game       registry.Game
	sched      *Scheduler
	keys       GameKeyMap
	help       help.Model
	width      int
	height     int
	standalone bool // Quit the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a session for gameID wired to env.
func NewGameModel(gameID string, env *Env, width, height int) (GameModel, error) {
	sched := NewScheduler()
	game, err := registry.Create(gameID, env.Deps(sched))
	if err != nil {
		return GameModel{}, err
	}

	h := help.New()
	h.Width = width

	return GameModel{
		game:   game,
		sched:  sched,
		keys:   DefaultGameKeyMap(gameID),
		help:   h,
		width:  width,
		height: height,
	}, nil
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case timerMsg:
		// Timers of a previous session or a stopped timer are dropped
		if msg.sched == m.sched {
			m.sched.Fire(msg.id)
		}
		return m, m.sched.Drain()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.game.Close()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.game.Close()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.game.Reset()
		return m, m.sched.Drain()

	case key.Matches(msg, m.keys.Start):
		m.game.Start()
		return m, m.sched.Drain()
	}

	if in, ok := InputFor(m.game.ID(), msg); ok {
		m.game.Submit(in)
	}
	return m, m.sched.Drain()
}

// View renders the current snapshot.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	snap := m.game.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText(strings.ToUpper(m.game.Title()), m.width)))
	b.WriteString("\n")

	board := lipgloss.NewStyle().Width(44).Render(renderBoard(snap))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", renderStats(snap)))
	b.WriteString("\n\n")

	status := fmt.Sprintf("state: %s", snap.State)
	if snap.Locked {
		status += " (locked)"
	}
	b.WriteString(dimStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the terminal until the user quits.
func Run(gameID string, env *Env, width, height int) error {
	model, err := NewGameModel(gameID, env, width, height)
	if err != nil {
		return err
	}
	model.standalone = true
	defer model.game.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
