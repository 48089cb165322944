package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset adjusts the forgiving knobs of each game.
// Normal leaves the config untouched.
func ApplyPreset(g *Games, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		g.ColorGuess.Lives = 5
		g.Hangman.MaxWrong = 8
		g.Memory.MismatchDelayMs = 1500
	case DifficultyHard:
		g.ColorGuess.Lives = 1
		g.Hangman.MaxWrong = 4
		g.Memory.MismatchDelayMs = 600
	}
}
