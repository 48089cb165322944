// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/session"
)

// Game is the contract every mini-game session implements.
// Games contain pure logic; the platform maps keys to inputs, drives timers
// and renders snapshots.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "coinflip").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Coin Flip").
	Title() string

	// Order tells whether a higher or lower best result is better.
	Order() core.Order

	// BestKey returns the persistence key of the game's best result.
	BestKey() string

	// Start begins a fresh round. Counters are kept.
	Start()

	// Submit delivers one player action. Inputs the current state does not
	// accept are ignored.
	Submit(in core.Input)

	// Reset returns to the initial state and zeroes counters.
	// The best result is kept.
	Reset()

	// Snapshot returns a serializable view of the session.
	Snapshot() core.Snapshot

	// Close ends the session and invalidates pending timers.
	Close()
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID      string
	Title   string
	Order   core.Order
	BestKey string
}

// Factory creates a new game session with the given collaborators.
type Factory func(deps session.Deps) Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	g := f(metadataDeps())
	infos[id] = GameInfo{
		ID:      id,
		Title:   g.Title(),
		Order:   g.Order(),
		BestKey: g.BestKey(),
	}
	g.Close()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns metadata for a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game session by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, deps session.Deps) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(deps), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// metadataDeps gives the throwaway instance built by Register a virtual clock,
// so no wall-clock timer goroutine can outlive it, and a silent logger.
func metadataDeps() session.Deps {
	return session.Deps{
		Clock:  core.NewManualClock(time.Time{}),
		Logger: log.New(io.Discard),
	}
}
