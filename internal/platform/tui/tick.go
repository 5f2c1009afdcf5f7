// Package tui hosts RGB Catcher in the terminal with Bubble Tea.
// It provides the game's Surface, KeyState, Clock and Scheduler on top of
// the Bubble Tea event loop.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rgb-catcher/internal/core"
)

// TimerMsg is sent when a scheduled game timer is due.
type TimerMsg struct {
	Handle core.TimerHandle
	Time   time.Time
}

// tickCmd returns a Bubble Tea command that reports the timer after interval.
func tickCmd(h core.TimerHandle, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TimerMsg{Handle: h, Time: t}
	})
}

type timer struct {
	fn       func()
	interval time.Duration
}

// Scheduler implements core.Scheduler with Bubble Tea ticks.
// tea.Tick fires once, so each timer re-arms itself after running.
// Callbacks run inside Update, one at a time.
type Scheduler struct {
	next    core.TimerHandle
	timers  map[core.TimerHandle]timer
	pending []tea.Cmd
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[core.TimerHandle]timer)}
}

// Schedule arms fn to run every interval.
func (s *Scheduler) Schedule(fn func(), interval time.Duration) core.TimerHandle {
	s.next++
	h := s.next
	s.timers[h] = timer{fn: fn, interval: interval}
	s.pending = append(s.pending, tickCmd(h, interval))
	return h
}

// Cancel stops a timer. A tick already in flight for it is dropped on arrival.
func (s *Scheduler) Cancel(h core.TimerHandle) {
	delete(s.timers, h)
}

// Fire runs the timer behind msg and re-arms it if it is still live
// afterwards. Firings for cancelled timers are ignored.
func (s *Scheduler) Fire(msg TimerMsg) {
	t, ok := s.timers[msg.Handle]
	if !ok {
		return
	}

	t.fn()

	if _, ok := s.timers[msg.Handle]; ok {
		s.pending = append(s.pending, tickCmd(msg.Handle, t.interval))
	}
}

// Drain returns the ticks armed since the last call, or nil.
func (s *Scheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Active returns the number of live timers.
func (s *Scheduler) Active() int {
	return len(s.timers)
}

var _ core.Scheduler = (*Scheduler)(nil)
