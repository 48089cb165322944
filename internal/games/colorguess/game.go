// Package colorguess implements a colour matching game: the player is shown an
// RGB value and must pick the matching swatch before running out of lives.
package colorguess

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/session"
)

const (
	GameID  = "colorguess"
	BestKey = "colorguess.high_score"
)

// Counter names.
const (
	StatScore   = "score"
	StatStreak  = "streak"
	StatLives   = "lives"
	StatCorrect = "correct"
	StatWrong   = "wrong"
	StatGames   = "games"
)

// State is the colour guess state machine tag.
type State string

const (
	StateIdle     State = "idle"
	StateGuessing State = "guessing"
	StateRevealed State = "revealed" // Locked until the next round is dealt
	StateGameOver State = "gameOver"
)

// RGB is one colour.
type RGB struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

// String formats the colour as CSS-style rgb().
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex formats the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Round is the visible data of the current guess.
type Round struct {
	Target   RGB   `json:"target" yaml:"target"`
	Options  []RGB `json:"options" yaml:"options"`
	Selected int   `json:"selected" yaml:"selected"` // -1 until the player picks
	Answer   int   `json:"answer" yaml:"answer"`     // -1 until revealed
	Correct  bool  `json:"correct" yaml:"correct"`
	Awarded  int   `json:"awarded" yaml:"awarded"`
}

// Game implements the colour guess session.
type Game struct {
	engine *session.Engine
	cfg    config.ColorGuessConfig
	state  State
	round  Round
	answer int
}

// New creates a colour guess session with the current config.
func New(deps session.Deps) *Game {
	return NewWithConfig(config.Current().ColorGuess, deps)
}

// NewWithConfig creates a colour guess session with explicit tunables.
func NewWithConfig(cfg config.ColorGuessConfig, deps session.Deps) *Game {
	return &Game{
		engine: session.New(session.Config{
			GameID:     GameID,
			BestKey:    BestKey,
			Order:      core.HigherIsBetter,
			HistoryCap: cfg.HistorySize,
			Stats:      []string{StatScore, StatStreak, StatLives, StatCorrect, StatWrong, StatGames},
		}, deps),
		cfg:   cfg,
		state: StateIdle,
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
func (g *Game) Title() string { return "Color Guess" }

// Order returns HigherIsBetter: the best result is the high score.
func (g *Game) Order() core.Order { return g.engine.Order() }

// BestKey returns the persistence key.
func (g *Game) BestKey() string { return g.engine.BestKey() }

// Close ends the session.
func (g *Game) Close() { g.engine.Close() }

// State returns the current state tag.
func (g *Game) State() State { return g.state }

// Start deals a fresh round. From idle or game over it also begins a new
// game with full lives and a zero score.
func (g *Game) Start() {
	g.engine.Cancel()
	if g.state == StateIdle || g.state == StateGameOver {
		g.engine.SetStat(StatScore, 0)
		g.engine.SetStat(StatStreak, 0)
		g.engine.SetStat(StatLives, g.cfg.Lives)
		g.engine.AddStat(StatGames, 1)
	}
	g.deal()
}

// Reset returns to idle and zeroes counters.
func (g *Game) Reset() {
	g.engine.ResetSession()
	g.round = Round{}
	g.state = StateIdle
}

// deal generates the options and hides the target among them.
func (g *Game) deal() {
	r := g.engine.Rand()

	options := make([]RGB, g.cfg.Options)
	for i := range options {
		options[i] = RGB{R: core.Intn(r, 256), G: core.Intn(r, 256), B: core.Intn(r, 256)}
	}
	g.answer = core.Intn(r, len(options))

	g.round = Round{
		Target:   options[g.answer],
		Options:  options,
		Selected: -1,
		Answer:   -1,
	}
	g.state = StateGuessing
}

// Submit takes Choose(i) for swatch i. Ignored outside the guessing state.
func (g *Game) Submit(in core.Input) {
	if g.state != StateGuessing || in.Action != core.ActionChoose {
		return
	}
	if in.Index < 0 || in.Index >= len(g.round.Options) {
		return
	}

	g.round.Selected = in.Index
	g.round.Answer = g.answer
	g.round.Correct = g.round.Options[in.Index] == g.round.Target

	if g.round.Correct {
		streak := g.engine.Stat(StatStreak)
		points := g.cfg.BasePoints + g.cfg.StreakBonus*streak
		g.round.Awarded = points

		score := g.engine.AddStat(StatScore, points)
		g.engine.AddStat(StatStreak, 1)
		g.engine.AddStat(StatCorrect, 1)
		g.engine.OfferBest(score)
	} else {
		g.engine.SetStat(StatStreak, 0)
		g.engine.AddStat(StatWrong, 1)
		g.engine.AddStat(StatLives, -1)
	}
	g.engine.Push(g.round.Awarded)

	if g.engine.Stat(StatLives) <= 0 {
		g.state = StateGameOver
		g.engine.Record(g.engine.Stat(StatScore))
		g.engine.Logger().Debug("game over", "score", g.engine.Stat(StatScore))
		return
	}

	g.state = StateRevealed
	g.engine.Schedule(time.Duration(g.cfg.AdvanceDelayMs)*time.Millisecond, g.advance)
}

// advance deals the next round unless the game already ended.
func (g *Game) advance() {
	if g.state != StateRevealed {
		return
	}
	g.deal()
}

// Snapshot returns a serializable view of the session.
func (g *Game) Snapshot() core.Snapshot {
	var round any
	if g.state != StateIdle {
		r := g.round
		r.Options = append([]RGB(nil), g.round.Options...)
		round = r
	}

	snap := g.engine.Base(string(g.state), round)
	snap.Locked = g.state == StateRevealed
	snap.Terminal = g.state == StateGameOver
	return snap
}
