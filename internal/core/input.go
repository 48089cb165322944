package core

import "unicode"

// Action represents a semantic player action, abstracted from physical key presses.
// Each game accepts a subset of actions and ignores the rest.
type Action int

const (
	ActionNone   Action = iota
	ActionChoose        // Pick one of several options by index (coin side, colour, card)
	ActionLetter        // Guess a letter (hangman, coin side by initial)
	ActionTap           // Timing input with no payload (reaction test)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionChoose:
		return "Choose"
	case ActionLetter:
		return "Letter"
	case ActionTap:
		return "Tap"
	default:
		return "Unknown"
	}
}

// Input is one discrete player action delivered to a game.
type Input struct {
	Action Action
	Index  int  // Option index for ActionChoose
	Letter rune // Letter for ActionLetter
}

// Choose returns an ActionChoose input for option i.
func Choose(i int) Input {
	return Input{Action: ActionChoose, Index: i}
}

// Letter returns an ActionLetter input, lower-cased.
func Letter(r rune) Input {
	return Input{Action: ActionLetter, Letter: unicode.ToLower(r)}
}

// Tap returns an ActionTap input.
func Tap() Input {
	return Input{Action: ActionTap}
}

// IsLetter reports whether the input carries an ASCII letter a-z.
func (in Input) IsLetter() bool {
	return in.Action == ActionLetter && in.Letter >= 'a' && in.Letter <= 'z'
}
