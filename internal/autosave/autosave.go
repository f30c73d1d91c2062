// Package autosave is a trailing-edge debounce for the save pipeline.
//
// Every qualifying edit restarts the countdown: a save fires only after
// a full quiet interval with no further edits. The implementation rides
// the bubbletea update loop instead of OS timers. Trigger schedules a
// tick stamped with a sequence number and bumps the current sequence;
// a tick from a window that was since restarted carries a stale number
// and is ignored. All bookkeeping is single-threaded.
package autosave

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the quiet period after the last qualifying edit
// before a save fires.
const DefaultInterval = time.Second

// TickMsg is delivered when a scheduled debounce window expires.
type TickMsg struct {
	seq int
}

type Scheduler struct {
	interval time.Duration
	seq      int
	pending  bool
}

func New(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{interval: interval}
}

// Trigger (re)starts the debounce window and returns the command that
// will deliver its expiry tick. Any previously scheduled tick becomes
// stale.
func (s *Scheduler) Trigger() tea.Cmd {
	s.seq++
	s.pending = true
	seq := s.seq
	interval := s.interval
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{seq: seq}
	})
}

// Due reports whether msg is the expiry of the current window. A due
// tick consumes the pending save, so each window fires at most once.
func (s *Scheduler) Due(msg TickMsg) bool {
	if !s.pending || msg.seq != s.seq {
		return false
	}
	s.pending = false
	return true
}

// Flush cancels any pending window so the caller can save immediately.
// Used on quit, where no further edits can arrive, and for an explicit
// save-now keystroke. It reports whether a save was pending.
func (s *Scheduler) Flush() bool {
	s.seq++
	wasPending := s.pending
	s.pending = false
	return wasPending
}

// Pending reports whether a save is scheduled but has not fired yet.
func (s *Scheduler) Pending() bool {
	return s.pending
}
