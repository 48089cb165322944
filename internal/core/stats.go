package core

// Order describes which direction of a best result counts as an improvement.
type Order int

const (
	HigherIsBetter Order = iota // Streaks, scores
	LowerIsBetter               // Latencies, move counts
)

// String returns the order name used in config and storage.
func (o Order) String() string {
	if o == LowerIsBetter {
		return "lower"
	}
	return "higher"
}

// Better reports whether candidate improves on current under this order.
// Equal values are not an improvement.
func (o Order) Better(candidate, current int) bool {
	if o == LowerIsBetter {
		return candidate < current
	}
	return candidate > current
}

// Stats is a set of named integer counters with a stable declaration order.
type Stats struct {
	names  []string
	values map[string]int
}

// NewStats declares counters with the given names, all zero.
func NewStats(names ...string) Stats {
	s := Stats{
		names:  append([]string(nil), names...),
		values: make(map[string]int, len(names)),
	}
	for _, n := range names {
		s.values[n] = 0
	}
	return s
}

// Get returns a counter value. Undeclared names read as 0.
func (s Stats) Get(name string) int {
	return s.values[name]
}

// Set assigns a counter. Undeclared names are ignored.
func (s Stats) Set(name string, v int) {
	if _, ok := s.values[name]; !ok {
		return
	}
	s.values[name] = v
}

// Add increments a counter by delta and returns the new value.
func (s Stats) Add(name string, delta int) int {
	if _, ok := s.values[name]; !ok {
		return 0
	}
	s.values[name] += delta
	return s.values[name]
}

// Zero resets every counter.
func (s Stats) Zero() {
	for _, n := range s.names {
		s.values[n] = 0
	}
}

// Names returns the counter names in declaration order.
func (s Stats) Names() []string {
	return append([]string(nil), s.names...)
}

// Map returns a copy of the counters.
func (s Stats) Map() map[string]int {
	out := make(map[string]int, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// History is a bounded FIFO window of integers.
type History struct {
	capacity int
	values   []int
}

// NewHistory creates a window holding at most capacity values.
// A capacity below 1 is treated as 1.
func NewHistory(capacity int) History {
	if capacity < 1 {
		capacity = 1
	}
	return History{capacity: capacity, values: make([]int, 0, capacity)}
}

// Push appends v, evicting the oldest value on overflow.
func (h *History) Push(v int) {
	if len(h.values) == h.capacity {
		copy(h.values, h.values[1:])
		h.values = h.values[:len(h.values)-1]
	}
	h.values = append(h.values, v)
}

// Values returns a copy of the window, oldest first.
func (h History) Values() []int {
	return append([]int{}, h.values...)
}

// Len returns the number of values held.
func (h History) Len() int {
	return len(h.values)
}

// Cap returns the window capacity.
func (h History) Cap() int {
	return h.capacity
}

// Clear empties the window.
func (h *History) Clear() {
	h.values = h.values[:0]
}

// Mean returns the integer mean of the window, or 0 when empty.
func (h History) Mean() int {
	if len(h.values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range h.values {
		sum += v
	}
	return sum / len(h.values)
}
