package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// GameKeyMap holds the bindings shared by every game screen.
// Game-specific input keys are translated by InputFor.
type GameKeyMap struct {
	Start key.Binding
	Reset key.Binding
	Back  key.Binding
	Help  key.Binding
	Quit  key.Binding

	play key.Binding // Help entry only, set per game
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.play, k.Start, k.Back, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.play, k.Start, k.Reset},
		{k.Back, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns the bindings for the given game.
func DefaultGameKeyMap(gameID string) GameKeyMap {
	km := GameKeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "new round"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset stats"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}

	switch gameID {
	case "coinflip":
		km.play = key.NewBinding(key.WithKeys("h", "t", "1", "2"), key.WithHelp("h/t", "call heads or tails"))
	case "colorguess":
		km.play = key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "pick a colour"))
	case "hangman":
		km.play = key.NewBinding(key.WithKeys("a"), key.WithHelp("a-z", "guess a letter"))
	case "memory":
		km.play = key.NewBinding(key.WithKeys("a"), key.WithHelp("a-p", "flip a card"))
	case "reaction":
		km.play = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "tap"))
		// Enter taps too, so it must not re-arm a running attempt
		km.Start.SetEnabled(false)
	}
	return km
}

// InputFor translates a key press into a game input.
// Returns false if the key means nothing to the game.
func InputFor(gameID string, msg tea.KeyMsg) (core.Input, bool) {
	k := msg.String()

	switch gameID {
	case "coinflip":
		switch k {
		case "1":
			return core.Choose(0), true
		case "2":
			return core.Choose(1), true
		}
		if r, ok := singleRune(msg); ok {
			return core.Letter(r), true
		}

	case "colorguess":
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			return core.Choose(int(k[0] - '1')), true
		}

	case "hangman":
		if r, ok := singleRune(msg); ok {
			return core.Letter(r), true
		}

	case "memory":
		if len(k) == 1 && k[0] >= 'a' && k[0] <= 'z' {
			return core.Choose(int(k[0] - 'a')), true
		}

	case "reaction":
		switch k {
		case " ", "enter":
			return core.Tap(), true
		}
	}

	return core.Input{}, false
}

func singleRune(msg tea.KeyMsg) (rune, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || msg.Alt {
		return 0, false
	}
	return msg.Runes[0], true
}

// CardLabel returns the key that flips memory card i.
func CardLabel(i int) string {
	return strings.ToUpper(string(rune('a' + i)))
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
