// Package session implements the round-based engine shared by every mini-game.
// A game holds an *Engine and layers its own rules on top: the engine owns the
// counters, the bounded history, the best result and the single pending
// timer of the session.
package session

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Deps bundles the collaborators a session needs.
// Zero fields are filled with defaults by New. The default scheduler is
// core.SystemClock, whose callbacks run on their own goroutine: callers that
// leave Scheduler unset must serialize access to the game themselves.
type Deps struct {
	Rand      core.Rand
	Clock     core.Clock
	Scheduler core.Scheduler
	Store     core.BestStore // nil keeps the best result in memory only
	Logger    *log.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.Clock == nil {
		d.Clock = core.SystemClock{}
	}
	if d.Scheduler == nil {
		if s, ok := d.Clock.(core.Scheduler); ok {
			d.Scheduler = s
		} else {
			d.Scheduler = core.SystemClock{}
		}
	}
	if d.Logger == nil {
		d.Logger = log.Default()
	}
	return d
}

// Config describes the fixed shape of a game's session.
type Config struct {
	GameID     string
	BestKey    string     // Persistence key for the best result
	Order      core.Order // Which direction of best result is an improvement
	HistoryCap int        // Size of the FIFO history window
	Stats      []string   // Counter names, in display order
}

// Engine holds the per-session state common to all games.
// It is not safe for concurrent use: every call, including timer callbacks,
// must come from the goroutine that owns the session.
type Engine struct {
	id     string
	cfg    Config
	deps   Deps
	logger *log.Logger

	stats   core.Stats
	history core.History

	best    int
	hasBest bool

	timer  core.Timer
	epoch  uint64
	closed bool
}

// New creates an engine and loads the persisted best result.
func New(cfg Config, deps Deps) *Engine {
	deps = deps.withDefaults()
	id := uuid.NewString()

	e := &Engine{
		id:      id,
		cfg:     cfg,
		deps:    deps,
		logger:  deps.Logger.With("game", cfg.GameID, "session", id[:8]),
		stats:   core.NewStats(cfg.Stats...),
		history: core.NewHistory(cfg.HistoryCap),
	}
	e.loadBest()
	return e
}

func (e *Engine) loadBest() {
	if e.deps.Store == nil || e.cfg.BestKey == "" {
		return
	}
	v, ok, err := e.deps.Store.LoadBest(e.cfg.BestKey)
	if err != nil {
		e.logger.Warn("could not load best result", "key", e.cfg.BestKey, "error", err)
		return
	}
	e.best, e.hasBest = v, ok
}

// SessionID returns the unique ID of this session.
func (e *Engine) SessionID() string {
	return e.id
}

// BestKey returns the persistence key of the best result.
func (e *Engine) BestKey() string {
	return e.cfg.BestKey
}

// Order returns the best-result ordering of the game.
func (e *Engine) Order() core.Order {
	return e.cfg.Order
}

// Rand returns the session's entropy source.
func (e *Engine) Rand() core.Rand {
	return e.deps.Rand
}

// Now returns the session clock's current time.
func (e *Engine) Now() time.Time {
	return e.deps.Clock.Now()
}

// Logger returns the session-scoped logger.
func (e *Engine) Logger() *log.Logger {
	return e.logger
}

// Schedule arms the session's single pending transition.
// Any previously armed transition is cancelled first. When the timer fires,
// fn runs only if no Cancel, Schedule or Close happened in between.
// A non-positive delay runs fn immediately.
func (e *Engine) Schedule(d time.Duration, fn func()) {
	e.Cancel()
	if e.closed {
		return
	}
	if d <= 0 {
		fn()
		return
	}

	epoch := e.epoch
	e.timer = e.deps.Scheduler.AfterFunc(d, func() {
		if e.closed || e.epoch != epoch {
			return
		}
		e.timer = nil
		fn()
	})
}

// Cancel invalidates the pending transition, if any.
func (e *Engine) Cancel() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.epoch++
}

// Pending reports whether a transition is armed.
func (e *Engine) Pending() bool {
	return e.timer != nil
}

// Close ends the session. Pending and future timers become no-ops.
func (e *Engine) Close() {
	e.Cancel()
	e.closed = true
}

// Closed reports whether Close was called.
func (e *Engine) Closed() bool {
	return e.closed
}

// Stat returns a counter value.
func (e *Engine) Stat(name string) int {
	return e.stats.Get(name)
}

// AddStat increments a counter and returns the new value.
func (e *Engine) AddStat(name string, delta int) int {
	return e.stats.Add(name, delta)
}

// SetStat assigns a counter.
func (e *Engine) SetStat(name string, v int) {
	e.stats.Set(name, v)
}

// Push appends a value to the history window.
func (e *Engine) Push(v int) {
	e.history.Push(v)
}

// History returns the history window.
func (e *Engine) History() core.History {
	return e.history
}

// ClearHistory empties the history window.
func (e *Engine) ClearHistory() {
	e.history.Clear()
}

// Best returns the best result and whether one exists.
func (e *Engine) Best() (int, bool) {
	return e.best, e.hasBest
}

// OfferBest records v as the best result if it improves on the current one.
// The new best is mirrored to the store; a store failure is logged and the
// in-memory value is kept.
func (e *Engine) OfferBest(v int) bool {
	if e.hasBest && !e.cfg.Order.Better(v, e.best) {
		return false
	}
	e.best, e.hasBest = v, true

	if e.deps.Store != nil && e.cfg.BestKey != "" {
		if err := e.deps.Store.SaveBest(e.cfg.BestKey, v); err != nil {
			e.logger.Warn("could not persist best result", "key", e.cfg.BestKey, "error", err)
		}
	}
	e.logger.Debug("new best", "value", v)
	return true
}

// Record forwards a finished result to the scoreboard, if the store keeps one.
func (e *Engine) Record(v int) {
	rec, ok := e.deps.Store.(core.ResultRecorder)
	if !ok {
		return
	}
	if err := rec.RecordResult(e.cfg.GameID, v); err != nil {
		e.logger.Warn("could not record result", "value", v, "error", err)
	}
}

// ResetSession cancels pending work, zeroes counters and clears history.
// The best result is kept.
func (e *Engine) ResetSession() {
	e.Cancel()
	e.stats.Zero()
	e.history.Clear()
}

// Base builds the shared part of a snapshot.
func (e *Engine) Base(state string, round any) core.Snapshot {
	snap := core.Snapshot{
		SessionID: e.id,
		GameID:    e.cfg.GameID,
		State:     state,
		Round:     round,
		History:   e.history.Values(),
		Stats:     e.stats.Map(),
	}
	if e.hasBest {
		best := e.best
		snap.Best = &best
	}
	return snap
}
