package config

import (
	_ "embed"
)

//go:embed defaults/games.yaml
var defaultGamesYAML []byte

// DefaultGames returns the built-in tunables.
func DefaultGames() Games {
	return Games{
		CoinFlip: CoinFlipConfig{
			FlipDelayMs: 1200,
			HistorySize: 10,
		},
		ColorGuess: ColorGuessConfig{
			Options:        6,
			Lives:          3,
			BasePoints:     10,
			StreakBonus:    2,
			AdvanceDelayMs: 1500,
			HistorySize:    5,
		},
		Hangman: HangmanConfig{
			MaxWrong: 6,
			Words: []string{
				"javascript", "react", "portfolio", "developer", "component",
				"function", "variable", "algorithm", "database", "terminal",
				"keyboard", "compiler", "network", "browser", "framework",
			},
			HistorySize: 5,
		},
		Memory: MemoryConfig{
			Symbols:         []string{"🍎", "🍌", "🍇", "🍓", "🍒", "🍑", "🍍", "🥝"},
			MismatchDelayMs: 1000,
			HistorySize:     5,
		},
		Reaction: ReactionConfig{
			MinDelayMs:  2000,
			MaxDelayMs:  5000,
			HistorySize: 5,
		},
	}
}
