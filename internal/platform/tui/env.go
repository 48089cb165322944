package tui

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/session"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

// Env carries the collaborators shared by every game a front end starts.
type Env struct {
	Store  *storage.Store // nil when the database could not be opened
	Logger *log.Logger
	Seed   int64 // 0 seeds from the clock

	memory *storage.Memory
}

// NewEnv creates an Env. Without a database, best results live in memory
// for the lifetime of the Env.
func NewEnv(store *storage.Store, logger *log.Logger, seed int64) *Env {
	if logger == nil {
		logger = log.Default()
	}
	return &Env{
		Store:  store,
		Logger: logger,
		Seed:   seed,
		memory: storage.NewMemory(),
	}
}

// BestStore returns the store games persist their best results to.
func (e *Env) BestStore() core.BestStore {
	if e.Store != nil {
		return e.Store
	}
	return e.memory
}

// Deps builds session collaborators driven by the given scheduler.
func (e *Env) Deps(sched core.Scheduler) session.Deps {
	deps := session.Deps{
		Scheduler: sched,
		Store:     e.BestStore(),
		Logger:    e.Logger,
	}
	if e.Seed != 0 {
		deps.Rand = rand.New(rand.NewSource(e.Seed))
	}
	return deps
}
