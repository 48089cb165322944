package core

// BestStore persists one best-result integer per key.
// A missing key means no best result has been recorded yet.
type BestStore interface {
	LoadBest(key string) (value int, ok bool, err error)
	SaveBest(key string, value int) error
}

// ResultRecorder is implemented by stores that also keep a log of finished
// results for the scoreboard. Games discover it by type assertion.
type ResultRecorder interface {
	RecordResult(gameID string, value int) error
}

// Snapshot is a plain, serializable view of one game session.
// The platform renders snapshots and never reaches into game internals.
type Snapshot struct {
	SessionID string         `json:"session_id" yaml:"session_id"`
	GameID    string         `json:"game_id" yaml:"game_id"`
	State     string         `json:"state" yaml:"state"`
	Locked    bool           `json:"locked" yaml:"locked"`
	Terminal  bool           `json:"terminal" yaml:"terminal"`
	Round     any            `json:"round,omitempty" yaml:"round,omitempty"`
	History   []int          `json:"history" yaml:"history"`
	Stats     map[string]int `json:"stats" yaml:"stats"`
	Best      *int           `json:"best,omitempty" yaml:"best,omitempty"`
}
