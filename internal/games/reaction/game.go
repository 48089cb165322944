// Package reaction implements a reaction time test.
//
// The stimulus deadline is fixed when a round is armed and every tap is
// judged against it. The scheduled "go" transition only updates the
// display; a tap that lands after the deadline but before the timer fires
// is still scored.
package reaction

import (
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/session"
)

const (
	GameID  = "reaction"
	BestKey = "reaction.best_ms"
)

// Counter names.
const (
	StatAttempts    = "attempts"
	StatFalseStarts = "false_starts"
	StatAverageMs   = "average_ms"
)

// State is the reaction test state machine tag.
type State string

const (
	StateWaiting  State = "waiting"
	StateReady    State = "ready"
	StateGo       State = "go"
	StateResult   State = "result"
	StateTooEarly State = "tooEarly"
)

// Round is the visible data of the last attempt.
type Round struct {
	LatencyMs int  `json:"latency_ms" yaml:"latency_ms"` // Set in result
	Early     bool `json:"early" yaml:"early"`
}

// Game implements the reaction time session.
type Game struct {
	engine     *session.Engine
	cfg        config.ReactionConfig
	state      State
	stimulusAt time.Time
	round      Round
}

// New creates a reaction session with the current config.
func New(deps session.Deps) *Game {
	return NewWithConfig(config.Current().Reaction, deps)
}

// NewWithConfig creates a reaction session with explicit tunables.
func NewWithConfig(cfg config.ReactionConfig, deps session.Deps) *Game {
	return &Game{
		engine: session.New(session.Config{
			GameID:     GameID,
			BestKey:    BestKey,
			Order:      core.LowerIsBetter,
			HistoryCap: cfg.HistorySize,
			Stats:      []string{StatAttempts, StatFalseStarts, StatAverageMs},
		}, deps),
		cfg:   cfg,
		state: StateWaiting,
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
func (g *Game) Title() string { return "Reaction Time" }

// Order returns LowerIsBetter.
func (g *Game) Order() core.Order { return g.engine.Order() }

// BestKey returns the persistence key.
func (g *Game) BestKey() string { return g.engine.BestKey() }

// Close ends the session.
func (g *Game) Close() { g.engine.Close() }

// State returns the current state tag.
func (g *Game) State() State { return g.state }

// Start arms a new attempt.
func (g *Game) Start() {
	g.arm()
}

// Reset returns to waiting and zeroes counters.
func (g *Game) Reset() {
	g.engine.ResetSession()
	g.stimulusAt = time.Time{}
	g.round = Round{}
	g.state = StateWaiting
}

// Submit handles Tap. In waiting, result and tooEarly it arms a new
// attempt; in ready and go it resolves the current one.
func (g *Game) Submit(in core.Input) {
	if in.Action != core.ActionTap {
		return
	}
	switch g.state {
	case StateWaiting, StateResult, StateTooEarly:
		g.arm()
	case StateReady, StateGo:
		g.resolve()
	}
}

// delay draws the wait before the stimulus in [min, max).
func (g *Game) delay() time.Duration {
	span := float64(g.cfg.MaxDelayMs - g.cfg.MinDelayMs)
	ms := float64(g.cfg.MinDelayMs) + g.engine.Rand().Float64()*span
	return time.Duration(ms * float64(time.Millisecond))
}

func (g *Game) arm() {
	d := g.delay()
	g.stimulusAt = g.engine.Now().Add(d)
	g.round = Round{}
	g.state = StateReady
	g.engine.Schedule(d, func() {
		g.state = StateGo
	})
}

func (g *Game) resolve() {
	now := g.engine.Now()
	if now.Before(g.stimulusAt) {
		g.engine.Cancel()
		g.engine.AddStat(StatFalseStarts, 1)
		g.round = Round{Early: true}
		g.state = StateTooEarly
		return
	}

	g.engine.Cancel()
	latency := int(now.Sub(g.stimulusAt).Milliseconds())
	g.round = Round{LatencyMs: latency}
	g.state = StateResult

	g.engine.AddStat(StatAttempts, 1)
	g.engine.Push(latency)
	g.engine.SetStat(StatAverageMs, g.engine.History().Mean())
	g.engine.OfferBest(latency)
	g.engine.Record(latency)
	g.engine.Logger().Debug("reaction", "latency_ms", latency)
}

// Snapshot returns a serializable view of the session.
func (g *Game) Snapshot() core.Snapshot {
	var round any
	if g.state == StateResult || g.state == StateTooEarly {
		round = g.round
	}
	return g.engine.Base(string(g.state), round)
}
