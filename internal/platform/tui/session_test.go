package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	_ "github.com/vovakirdan/pocket-arcade/internal/games/colorguess"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/memory"
)

func step(m SessionModel, msg tea.Msg) SessionModel {
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(NewEnv(nil, log.New(io.Discard), 1), 100, 30)

	m = step(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %d, want game", m.screen)
	}
	first := m.game.game.ID()

	m = step(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %d, want menu", m.screen)
	}

	m = step(m, tea.KeyMsg{Type: tea.KeyDown})
	m = step(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game.game.ID() == first {
		t.Errorf("second pick opened %s", m.game.game.ID())
	}
	m.Close()
}

func TestSessionScoreboardWithoutStore(t *testing.T) {
	m := NewSessionModel(NewEnv(nil, log.New(io.Discard), 1), 100, 30)

	m = step(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatalf("screen = %d, want scoreboard", m.screen)
	}
	if m.View() == "" {
		t.Error("empty scoreboard view")
	}

	m = step(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %d, want menu", m.screen)
	}
}

func TestSessionsDoNotShareGames(t *testing.T) {
	env := NewEnv(nil, log.New(io.Discard), 1)
	a := step(NewSessionModel(env, 100, 30), tea.KeyMsg{Type: tea.KeyEnter})
	b := step(NewSessionModel(env, 100, 30), tea.KeyMsg{Type: tea.KeyEnter})
	defer a.Close()
	defer b.Close()

	if a.game.game.Snapshot().SessionID == b.game.game.Snapshot().SessionID {
		t.Error("two connections share a game session")
	}
}
