package tui

import (
	"time"

	"github.com/vovakirdan/rgb-catcher/internal/core"
)

// DefaultHold is used when no hold window is configured.
const DefaultHold = 200 * time.Millisecond

// HoldTracker turns key presses into held keys.
// Terminals report presses and auto-repeats but no releases, so a key
// counts as held for a short window after its latest press.
type HoldTracker struct {
	clock core.Clock
	hold  time.Duration
	last  map[core.Key]time.Time
}

// NewHoldTracker creates a tracker. A non-positive hold uses DefaultHold.
func NewHoldTracker(clock core.Clock, hold time.Duration) *HoldTracker {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &HoldTracker{
		clock: clock,
		hold:  hold,
		last:  make(map[core.Key]time.Time),
	}
}

// Press records a press. Pressing one direction releases the other.
func (h *HoldTracker) Press(k core.Key) {
	if k == core.KeyNone {
		return
	}

	switch k {
	case core.KeyLeft:
		delete(h.last, core.KeyRight)
	case core.KeyRight:
		delete(h.last, core.KeyLeft)
	}
	h.last[k] = h.clock.Now()
}

// Release forgets a key immediately.
func (h *HoldTracker) Release(k core.Key) {
	delete(h.last, k)
}

// IsKeyDown reports whether k was pressed within the hold window.
func (h *HoldTracker) IsKeyDown(k core.Key) bool {
	at, ok := h.last[k]
	if !ok {
		return false
	}
	return h.clock.Now().Sub(at) <= h.hold
}

// Clear releases every key.
func (h *HoldTracker) Clear() {
	clear(h.last)
}

var _ core.KeyState = (*HoldTracker)(nil)
