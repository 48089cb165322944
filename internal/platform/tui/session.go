package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScoreboard
)

// SessionModel manages the full arcade flow: menu -> game or scoreboard ->
// menu. Each SessionModel owns its game sessions; nothing is shared between
// two SessionModels except the store.
type SessionModel struct {
	env        *Env
	width      int
	height     int
	screen     screen
	menu       MenuModel
	game       GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(env *Env, width, height int) SessionModel {
	return SessionModel{
		env:    env,
		width:  width,
		height: height,
		menu:   NewMenuModel(env, width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.env.Store, m.width, m.height)
		m.screen = screenScoreboard
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		game, err := NewGameModel(m.menu.Selected().GameID, m.env, m.width, m.height)
		if err != nil {
			// The menu only lists registered games
			m.env.Logger.Error("could not start game", "error", err)
			m.menu = NewMenuModel(m.env, m.width, m.height)
			return m, nil
		}
		m.env.Logger.Debug("game started", "game", game.game.ID(), "session", game.game.Snapshot().SessionID)
		m.game = game
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.toMenu()
		return m, nil
	}
	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	m.scoreboard = next.(ScoreboardModel)

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.toMenu()
		return m, nil
	}
	return m, cmd
}

func (m *SessionModel) toMenu() {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.env, m.width, m.height)
}

// Close ends the running game, if any.
func (m SessionModel) Close() {
	if m.screen == screenGame && m.game.game != nil {
		m.game.game.Close()
	}
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven arcade in the terminal.
func RunSession(env *Env, width, height int) error {
	p := tea.NewProgram(
		NewSessionModel(env, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if m, ok := final.(SessionModel); ok {
		m.Close()
	}
	return err
}
