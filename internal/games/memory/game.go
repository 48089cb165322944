// Package memory implements a pair matching card game.
package memory

import (
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/session"
)

const (
	GameID  = "memory"
	BestKey = "memory.fewest_moves"
)

// Counter names. Moves and matched pairs restart with every board.
const (
	StatMoves        = "moves"
	StatMatchedPairs = "matched_pairs"
	StatGamesWon     = "games_won"
)

// State is the memory match state machine tag.
type State string

const (
	StateIdle     State = "idle"
	StatePlaying  State = "playing"
	StateChecking State = "checking" // Locked while a mismatched pair is shown
	StateWon      State = "won"
)

// Card is the visible face of one card.
// Symbol is empty while the card is face down.
type Card struct {
	Symbol  string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	FaceUp  bool   `json:"face_up" yaml:"face_up"`
	Matched bool   `json:"matched" yaml:"matched"`
}

// Round is the visible data of the current board.
type Round struct {
	Cards   []Card   `json:"cards" yaml:"cards"`
	Matched []string `json:"matched" yaml:"matched"` // Symbols in match order
}

type card struct {
	symbol  string
	faceUp  bool
	matched bool
}

// Game implements the memory match session.
type Game struct {
	engine  *session.Engine
	cfg     config.MemoryConfig
	state   State
	deck    []card
	flipped []int
	matched []string
}

// New creates a memory match session with the current config.
func New(deps session.Deps) *Game {
	return NewWithConfig(config.Current().Memory, deps)
}

// NewWithConfig creates a memory match session with explicit tunables.
func NewWithConfig(cfg config.MemoryConfig, deps session.Deps) *Game {
	return &Game{
		engine: session.New(session.Config{
			GameID:     GameID,
			BestKey:    BestKey,
			Order:      core.LowerIsBetter,
			HistoryCap: cfg.HistorySize,
			Stats:      []string{StatMoves, StatMatchedPairs, StatGamesWon},
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
func (g *Game) Title() string { return "Memory Match" }

// Order returns LowerIsBetter: the best result is the fewest moves.
func (g *Game) Order() core.Order { return g.engine.Order() }

// BestKey returns the persistence key.
func (g *Game) BestKey() string { return g.engine.BestKey() }

// Close ends the session.
func (g *Game) Close() { g.engine.Close() }

// State returns the current state tag.
func (g *Game) State() State { return g.state }

// Pairs returns the number of pairs on a board.
func (g *Game) Pairs() int { return len(g.cfg.Symbols) }

// Start deals a freshly shuffled board.
func (g *Game) Start() {
	g.engine.Cancel()

	g.deck = make([]card, 0, 2*len(g.cfg.Symbols))
	for _, s := range g.cfg.Symbols {
		g.deck = append(g.deck, card{symbol: s}, card{symbol: s})
	}
	core.Shuffle(g.engine.Rand(), len(g.deck), func(i, j int) {
		g.deck[i], g.deck[j] = g.deck[j], g.deck[i]
	})

	g.flipped = nil
	g.matched = nil
	g.engine.SetStat(StatMoves, 0)
	g.engine.SetStat(StatMatchedPairs, 0)
	g.state = StatePlaying
}

// Reset returns to idle and zeroes counters.
func (g *Game) Reset() {
	g.engine.ResetSession()
	g.deck = nil
	g.flipped = nil
	g.matched = nil
	g.state = StateIdle
}

// Submit takes Choose(i) to flip card i. Cards that are out of range,
// already matched or already face up are ignored, as is any input while a
// mismatch is being shown.
func (g *Game) Submit(in core.Input) {
	if g.state != StatePlaying || in.Action != core.ActionChoose {
		return
	}
	i := in.Index
	if i < 0 || i >= len(g.deck) || g.deck[i].matched || g.deck[i].faceUp {
		return
	}

	g.deck[i].faceUp = true
	g.flipped = append(g.flipped, i)
	if len(g.flipped) < 2 {
		return
	}

	g.engine.AddStat(StatMoves, 1)
	a, b := g.flipped[0], g.flipped[1]

	if g.deck[a].symbol != g.deck[b].symbol {
		g.state = StateChecking
		g.engine.Schedule(time.Duration(g.cfg.MismatchDelayMs)*time.Millisecond, g.hideMismatch)
		return
	}

	g.deck[a].matched = true
	g.deck[b].matched = true
	g.flipped = nil
	g.matched = append(g.matched, g.deck[a].symbol)

	if g.engine.AddStat(StatMatchedPairs, 1) == g.Pairs() {
		g.win()
	}
}

// hideMismatch turns the mismatched pair face down again.
func (g *Game) hideMismatch() {
	for _, i := range g.flipped {
		g.deck[i].faceUp = false
	}
	g.flipped = nil
	g.state = StatePlaying
}

func (g *Game) win() {
	moves := g.engine.Stat(StatMoves)
	g.state = StateWon
	g.engine.AddStat(StatGamesWon, 1)
	g.engine.Push(moves)
	g.engine.OfferBest(moves)
	g.engine.Record(moves)
	g.engine.Logger().Debug("board cleared", "moves", moves)
}

// Snapshot returns a serializable view of the session.
func (g *Game) Snapshot() core.Snapshot {
	var round any
	if g.deck != nil {
		cards := make([]Card, len(g.deck))
		for i, c := range g.deck {
			cards[i] = Card{FaceUp: c.faceUp, Matched: c.matched}
			if c.faceUp || c.matched {
				cards[i].Symbol = c.symbol
			}
		}
		round = Round{
			Cards:   cards,
			Matched: append([]string{}, g.matched...),
		}
	}

	snap := g.engine.Base(string(g.state), round)
	snap.Locked = g.state == StateChecking
	return snap
}
