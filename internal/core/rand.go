// Package core provides the collaborator contracts and small primitives shared
// by every mini-game. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Rand is the entropy source used by games.
// Float64 returns uniform values in [0, 1). *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Intn derives an index in [0, n) from a single Float64 draw.
// Returns 0 when n <= 0.
func Intn(r Rand, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(r.Float64() * float64(n))
	// Guard against sources that return exactly 1.0
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Shuffle performs a Fisher-Yates shuffle of n elements using swap.
// Walks from the last index down, swapping each with a random earlier index.
func Shuffle(r Rand, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := Intn(r, i+1)
		swap(i, j)
	}
}

// SequenceRand replays a fixed list of values, cycling when exhausted.
// Used for deterministic tests and replays.
type SequenceRand struct {
	values []float64
	pos    int
}

// NewSequenceRand creates a SequenceRand over the given values.
// An empty list always yields 0.
func NewSequenceRand(values ...float64) *SequenceRand {
	return &SequenceRand{values: values}
}

// Float64 returns the next value in the sequence.
func (s *SequenceRand) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// Draws returns how many values have been consumed.
func (s *SequenceRand) Draws() int {
	return s.pos
}
