// Package hangman implements the classic letter guessing game.
package hangman

import (
	"strings"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/session"
)

const (
	GameID  = "hangman"
	BestKey = "hangman.best_streak"
)

// Counter names.
const (
	StatWins   = "wins"
	StatLosses = "losses"
	StatStreak = "streak"
)

// State is the hangman state machine tag.
type State string

const (
	StateIdle    State = "idle"
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Round is the visible data of the current word.
type Round struct {
	Masked   string   `json:"masked" yaml:"masked"`                 // Unrevealed letters as '_'
	Guessed  []string `json:"guessed" yaml:"guessed"`               // Letters in guess order
	Wrong    int      `json:"wrong" yaml:"wrong"`                   // Wrong guesses so far
	MaxWrong int      `json:"max_wrong" yaml:"max_wrong"`           // Wrong guesses allowed
	Word     string   `json:"word,omitempty" yaml:"word,omitempty"` // Shown once the word is finished
}

// Game implements the hangman session.
type Game struct {
	engine  *session.Engine
	cfg     config.HangmanConfig
	state   State
	word    string
	guessed map[rune]bool
	order   []rune
	wrong   int
}

// New creates a hangman session with the current config.
func New(deps session.Deps) *Game {
	return NewWithConfig(config.Current().Hangman, deps)
}

// NewWithConfig creates a hangman session with explicit tunables.
func NewWithConfig(cfg config.HangmanConfig, deps session.Deps) *Game {
	return &Game{
		engine: session.New(session.Config{
			GameID:     GameID,
			BestKey:    BestKey,
			Order:      core.HigherIsBetter,
			HistoryCap: cfg.HistorySize,
			Stats:      []string{StatWins, StatLosses, StatStreak},
		}, deps),
		cfg:     cfg,
		state:   StateIdle,
		guessed: make(map[rune]bool),
	}
}

func init() {
	registry.Register(GameID, func(deps session.Deps) registry.Game {
		return New(deps)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Hangman" }

// Order returns HigherIsBetter: the best result is the longest win streak.
func (g *Game) Order() core.Order { return g.engine.Order() }

// BestKey returns the persistence key.
func (g *Game) BestKey() string { return g.engine.BestKey() }

// Close ends the session.
func (g *Game) Close() { g.engine.Close() }

// State returns the current state tag.
func (g *Game) State() State { return g.state }

// Start picks a new word. Win/loss counters carry over.
func (g *Game) Start() {
	g.engine.Cancel()
	words := g.cfg.Words
	g.word = strings.ToLower(words[core.Intn(g.engine.Rand(), len(words))])
	g.guessed = make(map[rune]bool)
	g.order = nil
	g.wrong = 0
	g.state = StatePlaying

	// A word with no a-z letters has nothing left to guess.
	if g.solved() {
		g.finish(true)
	}
}

// Reset returns to idle and zeroes counters.
func (g *Game) Reset() {
	g.engine.ResetSession()
	g.word = ""
	g.guessed = make(map[rune]bool)
	g.order = nil
	g.wrong = 0
	g.state = StateIdle
}

// Submit takes Letter(r). Non-letters and letters already guessed are
// ignored and never cost a wrong guess.
func (g *Game) Submit(in core.Input) {
	if g.state != StatePlaying || !in.IsLetter() {
		return
	}
	letter := in.Letter
	if g.guessed[letter] {
		return
	}

	g.guessed[letter] = true
	g.order = append(g.order, letter)

	if !strings.ContainsRune(g.word, letter) {
		g.wrong++
		if g.wrong >= g.cfg.MaxWrong {
			g.finish(false)
		}
		return
	}

	if g.solved() {
		g.finish(true)
	}
}

// solved reports whether every letter of the word has been guessed.
func (g *Game) solved() bool {
	for _, r := range g.word {
		if isGuessable(r) && !g.guessed[r] {
			return false
		}
	}
	return true
}

func (g *Game) finish(won bool) {
	g.engine.Push(g.wrong)

	if won {
		g.state = StateWon
		g.engine.AddStat(StatWins, 1)
		streak := g.engine.AddStat(StatStreak, 1)
		g.engine.OfferBest(streak)
		g.engine.Record(g.cfg.MaxWrong - g.wrong)
	} else {
		g.state = StateLost
		g.engine.AddStat(StatLosses, 1)
		g.engine.SetStat(StatStreak, 0)
	}
	g.engine.Logger().Debug("word finished", "won", won, "wrong", g.wrong)
}

// Masked returns the word with unguessed letters replaced by '_'.
func (g *Game) Masked() string {
	var b strings.Builder
	for _, r := range g.word {
		if isGuessable(r) && !g.guessed[r] {
			b.WriteRune('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Snapshot returns a serializable view of the session.
func (g *Game) Snapshot() core.Snapshot {
	var round any
	if g.state != StateIdle {
		guessed := make([]string, len(g.order))
		for i, r := range g.order {
			guessed[i] = string(r)
		}
		r := Round{
			Masked:   g.Masked(),
			Guessed:  guessed,
			Wrong:    g.wrong,
			MaxWrong: g.cfg.MaxWrong,
		}
		if g.state == StateWon || g.state == StateLost {
			r.Word = g.word
		}
		round = r
	}

	snap := g.engine.Base(string(g.state), round)
	snap.Terminal = g.state == StateWon || g.state == StateLost
	return snap
}

// isGuessable reports whether r must be guessed; other runes are shown as-is.
func isGuessable(r rune) bool {
	return r >= 'a' && r <= 'z'
}
