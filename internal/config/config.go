// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

import (
	"fmt"
	"strings"
	"sync"
)

// Board limits reachable from the terminal keymaps: keys 1-9 pick a swatch,
// keys a-z pick a card.
const (
	MaxColorOptions = 9
	MaxMemoryPairs  = 13
)

// Games contains the tunables of every mini-game.
type Games struct {
	CoinFlip   CoinFlipConfig   `yaml:"coinflip"`
	ColorGuess ColorGuessConfig `yaml:"colorguess"`
	Hangman    HangmanConfig    `yaml:"hangman"`
	Memory     MemoryConfig     `yaml:"memory"`
	Reaction   ReactionConfig   `yaml:"reaction"`
}

// CoinFlipConfig defines Coin Flip parameters.
type CoinFlipConfig struct {
	FlipDelayMs int `yaml:"flip_delay_ms"` // Reveal delay covering the flip animation
	HistorySize int `yaml:"history_size"`  // Outcomes kept in history
}

// ColorGuessConfig defines Color Guess parameters.
type ColorGuessConfig struct {
	Options        int `yaml:"options"`          // Swatches per round
	Lives          int `yaml:"lives"`            // Misses allowed per game
	BasePoints     int `yaml:"base_points"`      // Points for a correct guess
	StreakBonus    int `yaml:"streak_bonus"`     // Extra points per streak step
	AdvanceDelayMs int `yaml:"advance_delay_ms"` // Pause before the next round
	HistorySize    int `yaml:"history_size"`
}

// HangmanConfig defines Hangman parameters.
type HangmanConfig struct {
	MaxWrong    int      `yaml:"max_wrong"` // Wrong guesses before a loss
	Words       []string `yaml:"words"`
	HistorySize int      `yaml:"history_size"`
}

// MemoryConfig defines Memory Match parameters.
type MemoryConfig struct {
	Symbols         []string `yaml:"symbols"`           // One entry per pair
	MismatchDelayMs int      `yaml:"mismatch_delay_ms"` // Time a mismatched pair stays visible
	HistorySize     int      `yaml:"history_size"`
}

// ReactionConfig defines Reaction Time parameters.
type ReactionConfig struct {
	MinDelayMs  int `yaml:"min_delay_ms"` // Inclusive lower bound of the stimulus delay
	MaxDelayMs  int `yaml:"max_delay_ms"` // Exclusive upper bound of the stimulus delay
	HistorySize int `yaml:"history_size"`
}

// Validate checks that the tunables describe playable games.
func (g Games) Validate() error {
	switch {
	case g.ColorGuess.Options < 2 || g.ColorGuess.Options > MaxColorOptions:
		return fmt.Errorf("config: colorguess.options must be between 2 and %d, got %d", MaxColorOptions, g.ColorGuess.Options)
	case g.ColorGuess.Lives < 1:
		return fmt.Errorf("config: colorguess.lives must be at least 1, got %d", g.ColorGuess.Lives)
	case g.Hangman.MaxWrong < 1:
		return fmt.Errorf("config: hangman.max_wrong must be at least 1, got %d", g.Hangman.MaxWrong)
	case len(g.Hangman.Words) == 0:
		return fmt.Errorf("config: hangman.words must not be empty")
	case len(g.Memory.Symbols) < 2 || len(g.Memory.Symbols) > MaxMemoryPairs:
		return fmt.Errorf("config: memory.symbols needs between 2 and %d entries, got %d", MaxMemoryPairs, len(g.Memory.Symbols))
	case g.Reaction.MinDelayMs < 0 || g.Reaction.MaxDelayMs <= g.Reaction.MinDelayMs:
		return fmt.Errorf("config: reaction delay range [%d, %d) is empty", g.Reaction.MinDelayMs, g.Reaction.MaxDelayMs)
	case g.CoinFlip.FlipDelayMs < 0 || g.ColorGuess.AdvanceDelayMs < 0 || g.Memory.MismatchDelayMs < 0:
		return fmt.Errorf("config: delays must not be negative")
	case g.ColorGuess.BasePoints < 0 || g.ColorGuess.StreakBonus < 0:
		return fmt.Errorf("config: colorguess points must not be negative")
	}

	for _, w := range g.Hangman.Words {
		if !strings.ContainsFunc(strings.ToLower(w), isWordLetter) {
			return fmt.Errorf("config: hangman word %q has no letter a-z to guess", w)
		}
	}

	seen := make(map[string]bool, len(g.Memory.Symbols))
	for _, s := range g.Memory.Symbols {
		if seen[s] {
			return fmt.Errorf("config: memory symbol %q listed twice", s)
		}
		seen[s] = true
	}
	return nil
}

func isWordLetter(r rune) bool { return r >= 'a' && r <= 'z' }

var (
	current = DefaultGames()
	mu      sync.RWMutex
)

// Current returns the configuration games are created with.
func Current() Games {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetCurrent replaces the configuration used for new games.
func SetCurrent(g Games) {
	mu.Lock()
	defer mu.Unlock()
	current = g
}
