package catcher

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rgb-catcher/internal/config"
	"github.com/vovakirdan/rgb-catcher/internal/core"
)

// recordingSurface is a Screen that counts full clears.
type recordingSurface struct {
	*core.Screen
	clears int
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{Screen: core.NewScreen(w, h)}
}

func (s *recordingSurface) Clear(r core.Rect) {
	s.clears++
	s.Screen.Clear(r)
}

// fakeClock only moves when told to.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeTimer struct {
	fn       func()
	interval time.Duration
}

// fakeScheduler runs timers on demand.
type fakeScheduler struct {
	next      core.TimerHandle
	timers    map[core.TimerHandle]fakeTimer
	scheduled []time.Duration
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{timers: make(map[core.TimerHandle]fakeTimer)}
}

func (s *fakeScheduler) Schedule(fn func(), interval time.Duration) core.TimerHandle {
	s.next++
	s.timers[s.next] = fakeTimer{fn: fn, interval: interval}
	s.scheduled = append(s.scheduled, interval)
	return s.next
}

func (s *fakeScheduler) Cancel(h core.TimerHandle) {
	delete(s.timers, h)
}

// fire runs the single armed timer once.
func (s *fakeScheduler) fire(t *testing.T) {
	t.Helper()
	require.Len(t, s.timers, 1, "exactly one timer should be armed")
	for _, tm := range s.timers {
		tm.fn()
	}
}

// interval returns the interval of the single armed timer.
func (s *fakeScheduler) interval(t *testing.T) time.Duration {
	t.Helper()
	require.Len(t, s.timers, 1, "exactly one timer should be armed")
	for _, tm := range s.timers {
		return tm.interval
	}
	return 0
}

// testConfig returns the pixel-sized tuning used by the scenarios:
// a 30x10 basket and 10x10 blocks falling one pixel per tick.
func testConfig() config.CatcherConfig {
	cfg := config.DefaultCatcherConfig()
	cfg.Basket = config.BasketConfig{Width: 30, Height: 10, XSpeed: 1.1}
	cfg.Block = config.BlockConfig{Width: 10, Height: 10, YSpeed: 1, Strength: 5}
	return cfg
}

type testRig struct {
	surface *recordingSurface
	keys    *core.KeyFrame
	clock   *fakeClock
	sched   *fakeScheduler
}

func newTestRig(w, h int) *testRig {
	return &testRig{
		surface: newRecordingSurface(w, h),
		keys:    core.NewKeyFrame(),
		clock:   newFakeClock(),
		sched:   newFakeScheduler(),
	}
}

func (r *testRig) host() Host {
	return Host{Surface: r.surface, Keys: r.keys, Clock: r.clock, Scheduler: r.sched}
}

// newTestSession builds a reset session on a 400x300 viewport.
func newTestSession(t *testing.T, cfg config.CatcherConfig) (*Session, *testRig) {
	t.Helper()
	rig := newTestRig(400, 300)
	s, err := NewSession(cfg, rig.host(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	s.Reset()
	return s, rig
}

// placeBlock adds a hand-positioned block to the session.
func placeBlock(s *Session, x float64, color core.Color) *Block {
	b := &Block{
		Entity:   Entity{X: x, Y: -10, W: 10, H: 10, Alive: true, Color: color},
		YSpeed:   1,
		Strength: 5,
		placed:   true,
	}
	s.Blocks = append(s.Blocks, b)
	s.Spawned++
	s.OnScreen++
	return b
}
