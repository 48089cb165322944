// Package coinflip implements a heads-or-tails prediction game with a
// persisted best streak.
package coinflip

import (
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/session"
)

const (
	GameID  = "coinflip"
	BestKey = "coinflip.best_streak"
)

// Counter names.
const (
	StatCorrect = "correct"
	StatWrong   = "wrong"
	StatStreak  = "streak"
	StatFlips   = "flips"
)

// State is the coin flip state machine tag.
type State string

const (
	StateIdle     State = "idle"
	StateChoosing State = "choosing"
	StateFlipping State = "flipping" // Locked until the coin lands
	StateResult   State = "result"
)

// Side is one face of the coin.
type Side string

const (
	Heads Side = "heads"
	Tails Side = "tails"
)

// Round is the visible data of the current flip.
// Outcome stays empty while the coin is in the air.
type Round struct {
	Prediction Side `json:"prediction,omitempty" yaml:"prediction,omitempty"`
	Outcome    Side `json:"outcome,omitempty" yaml:"outcome,omitempty"`
	Correct    bool `json:"correct" yaml:"correct"`
}

// Game implements the coin flip session.
type Game struct {
	engine  *session.Engine
	cfg     config.CoinFlipConfig
	state   State
	round   Round
	pending Side // Outcome decided at flip time, revealed on landing
}

// New creates a coin flip session with the current config.
func New(deps session.Deps) *Game {
	return NewWithConfig(config.Current().CoinFlip, deps)
}

// NewWithConfig creates a coin flip session with explicit tunables.
func NewWithConfig(cfg config.CoinFlipConfig, deps session.Deps) *Game {
	return &Game{
		engine: session.New(session.Config{
			GameID:     GameID,
			BestKey:    BestKey,
			Order:      core.HigherIsBetter,
			HistoryCap: cfg.HistorySize,
			Stats:      []string{StatCorrect, StatWrong, StatStreak, StatFlips},
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
func (g *Game) Title() string { return "Coin Flip" }

// Order returns HigherIsBetter: the best result is the longest streak.
func (g *Game) Order() core.Order { return g.engine.Order() }

// BestKey returns the persistence key.
func (g *Game) BestKey() string { return g.engine.BestKey() }

// Close ends the session.
func (g *Game) Close() { g.engine.Close() }

// State returns the current state tag.
func (g *Game) State() State { return g.state }

// Start discards any flip in progress and waits for a prediction.
func (g *Game) Start() {
	g.engine.Cancel()
	g.round = Round{}
	g.pending = ""
	g.state = StateChoosing
}

// Reset returns to idle and zeroes counters.
func (g *Game) Reset() {
	g.engine.ResetSession()
	g.round = Round{}
	g.pending = ""
	g.state = StateIdle
}

// Submit takes a prediction: Choose(0)/Letter('h') for heads,
// Choose(1)/Letter('t') for tails. Ignored while the coin is in the air.
func (g *Game) Submit(in core.Input) {
	side, ok := sideFor(in)
	if !ok {
		return
	}

	switch g.state {
	case StateIdle, StateChoosing, StateResult:
	default:
		return
	}

	g.pending = Heads
	if g.engine.Rand().Float64() >= 0.5 {
		g.pending = Tails
	}
	g.round = Round{Prediction: side}
	g.state = StateFlipping

	g.engine.Schedule(time.Duration(g.cfg.FlipDelayMs)*time.Millisecond, g.land)
}

// land resolves the flip.
func (g *Game) land() {
	outcome := g.pending
	g.pending = ""

	g.round.Outcome = outcome
	g.round.Correct = g.round.Prediction == outcome
	g.engine.AddStat(StatFlips, 1)
	g.engine.Push(sideIndex(outcome))

	if g.round.Correct {
		g.engine.AddStat(StatCorrect, 1)
		streak := g.engine.AddStat(StatStreak, 1)
		g.engine.OfferBest(streak)
	} else {
		g.engine.AddStat(StatWrong, 1)
		if streak := g.engine.Stat(StatStreak); streak > 0 {
			g.engine.Record(streak)
		}
		g.engine.SetStat(StatStreak, 0)
	}

	g.state = StateResult
	g.engine.Logger().Debug("coin landed", "prediction", g.round.Prediction, "outcome", outcome)
}

// Snapshot returns a serializable view of the session.
func (g *Game) Snapshot() core.Snapshot {
	snap := g.engine.Base(string(g.state), g.round)
	snap.Locked = g.state == StateFlipping
	return snap
}

func sideFor(in core.Input) (Side, bool) {
	switch in.Action {
	case core.ActionChoose:
		switch in.Index {
		case 0:
			return Heads, true
		case 1:
			return Tails, true
		}
	case core.ActionLetter:
		switch in.Letter {
		case 'h':
			return Heads, true
		case 't':
			return Tails, true
		}
	}
	return "", false
}

// sideIndex encodes a side for the history window: 0 heads, 1 tails.
func sideIndex(s Side) int {
	if s == Tails {
		return 1
	}
	return 0
}
