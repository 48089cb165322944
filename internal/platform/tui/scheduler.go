package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// timerMsg is delivered when a scheduled transition is due.
type timerMsg struct {
	sched *Scheduler
	id    uint64
}

// Scheduler implements core.Scheduler on top of tea.Tick.
// AfterFunc only queues a command; the callback runs inside Update when the
// matching timerMsg arrives, so game state is only touched by the program's
// event loop.
type Scheduler struct {
	next    uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[uint64]func())}
}

// AfterFunc arms f to run after d.
func (s *Scheduler) AfterFunc(d time.Duration, f func()) core.Timer {
	s.next++
	id := s.next
	s.pending[id] = f
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{sched: s, id: id}
	}))
	return teaTimer{sched: s, id: id}
}

// Drain returns the commands queued since the last call.
func (s *Scheduler) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Fire runs the callback for id. Stopped or unknown timers are dropped.
func (s *Scheduler) Fire(id uint64) bool {
	f, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	f()
	return true
}

// Pending returns the number of armed timers.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

type teaTimer struct {
	sched *Scheduler
	id    uint64
}

func (t teaTimer) Stop() bool {
	if _, ok := t.sched.pending[t.id]; !ok {
		return false
	}
	delete(t.sched.pending, t.id)
	return true
}
