package catcher

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rgb-catcher/internal/core"
)

func newTestDirector(t *testing.T) (*Director, *testRig) {
	t.Helper()
	rig := newTestRig(400, 300)
	d, err := NewDirector(testConfig(), rig.host(), 1, nil)
	require.NoError(t, err)
	return d, rig
}

func TestNewDirectorRejectsBadPalette(t *testing.T) {
	cfg := testConfig()
	cfg.Palette = []string{"red", "mauve"}

	_, err := NewDirector(cfg, newTestRig(40, 20).host(), 1, nil)
	assert.Error(t, err)
}

func TestDirectorTitleScreen(t *testing.T) {
	d, rig := newTestDirector(t)
	cfg := testConfig()

	d.Start()
	assert.Equal(t, StateTitle, d.State())
	assert.Equal(t, core.IntervalForRate(cfg.Timing.TitleTickRate), rig.sched.interval(t))

	for i := 0; i < 10; i++ {
		rig.sched.fire(t)
	}
	assert.Equal(t, 1, rig.surface.clears, "title is drawn once")
	assert.Equal(t, StateTitle, d.State())

	row := rig.surface.Row(149)
	assert.Contains(t, row, "RGBCatcher")
	assert.Contains(t, rig.surface.Row(151), "Press space to start")

	x := (400 - len("RGBCatcher")) / 2
	assert.Equal(t, core.ColorRed, rig.surface.GetCell(x, 149).Color)
	assert.Equal(t, core.ColorGreen, rig.surface.GetCell(x+1, 149).Color)
	assert.Equal(t, core.ColorBlue, rig.surface.GetCell(x+2, 149).Color)
}

func TestDirectorStartsGame(t *testing.T) {
	d, rig := newTestDirector(t)
	cfg := testConfig()
	d.Start()
	rig.sched.fire(t)

	rig.keys.Press(core.KeyStart)
	rig.sched.fire(t)

	assert.Equal(t, StatePlaying, d.State())
	assert.Equal(t, core.IntervalForRate(cfg.Timing.PlayingTickRate), rig.sched.interval(t))
	assert.Len(t, rig.sched.scheduled, 2)

	s := d.Session()
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 100.0, s.Health.Target)
	assert.Equal(t, rig.clock.Now(), s.StartedAt)
}

func TestDirectorFullLoop(t *testing.T) {
	var logs bytes.Buffer
	rig := newTestRig(400, 300)
	d, err := NewDirector(testConfig(), rig.host(), 1, log.New(&logs))
	require.NoError(t, err)

	d.Start()
	rig.keys.Press(core.KeyStart)
	rig.sched.fire(t)
	rig.keys.Release(core.KeyStart)
	require.Equal(t, StatePlaying, d.State())

	s := d.Session()
	s.Score.Change(12)
	s.Health.Change(-100)

	// The displayed value drains by 2 per tick; the game ends only once it
	// is below 1, not when the target drops.
	for i := 0; i < 50; i++ {
		rig.sched.fire(t)
		require.Equal(t, StatePlaying, d.State(), "tick %d", i)
	}
	assert.Equal(t, 0.0, s.Health.Value)

	rig.sched.fire(t)
	require.Equal(t, StateGameOver, d.State())
	assert.False(t, s.Basket.IsAlive())
	assert.Contains(t, logs.String(), "game over")

	clears := rig.surface.clears
	for i := 0; i < 20; i++ {
		rig.sched.fire(t)
	}
	assert.Equal(t, clears+1, rig.surface.clears, "game over screen is drawn once")
	assert.Contains(t, rig.surface.Row(149), "Game over!")
	assert.Contains(t, rig.surface.Row(151), "Score: 12")
	assert.Equal(t, StateGameOver, d.State(), "countdown runs on the clock, not on ticks")

	rig.clock.Advance(3 * time.Second)
	rig.sched.fire(t)
	assert.Equal(t, StateGameOver, d.State())

	rig.clock.Advance(time.Millisecond)
	rig.sched.fire(t)
	assert.Equal(t, StateTitle, d.State())

	// title, playing, gameover, title
	assert.Len(t, rig.sched.scheduled, 4)

	clears = rig.surface.clears
	rig.sched.fire(t)
	assert.Equal(t, clears+1, rig.surface.clears, "title is redrawn after game over")
	assert.Contains(t, rig.surface.Row(149), "RGBCatcher")
}

func TestDirectorCountdownStartsAtGameOver(t *testing.T) {
	d, rig := newTestDirector(t)
	d.Start()
	rig.keys.Press(core.KeyStart)
	rig.sched.fire(t)
	rig.keys.Release(core.KeyStart)

	// A long game: the spawn baseline is far behind when it ends
	rig.clock.Advance(time.Minute)
	d.Session().Health.Value = 0
	rig.sched.fire(t)
	require.Equal(t, StateGameOver, d.State())

	rig.sched.fire(t)
	assert.Equal(t, StateGameOver, d.State())
}

func TestDirectorStop(t *testing.T) {
	d, rig := newTestDirector(t)
	d.Start()
	require.Len(t, rig.sched.timers, 1)

	d.Stop()
	assert.Empty(t, rig.sched.timers)
}

func TestDirectorSnapshot(t *testing.T) {
	d, rig := newTestDirector(t)
	d.Start()

	gs := d.Snapshot()
	assert.Equal(t, "title", gs.Phase)
	assert.Zero(t, gs.Score)

	rig.keys.Press(core.KeyStart)
	rig.sched.fire(t)
	d.Session().Score.Value = 7.6
	rig.clock.Advance(5 * time.Second)

	gs = d.Snapshot()
	assert.Equal(t, "playing", gs.Phase)
	assert.Equal(t, 8, gs.Score)
	assert.Equal(t, 100, gs.Health)
	assert.Equal(t, 1, gs.Level)
	assert.Equal(t, 5*time.Second, gs.Elapsed)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "title", StateTitle.String())
	assert.Equal(t, "playing", StatePlaying.String())
	assert.Equal(t, "gameover", StateGameOver.String())
	assert.Equal(t, "unknown", State(9).String())
}
