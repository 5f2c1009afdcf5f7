package catcher

import (
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rgb-catcher/internal/config"
	"github.com/vovakirdan/rgb-catcher/internal/core"
)

// State is a screen of the game flow.
type State int

const (
	StateTitle State = iota
	StatePlaying
	StateGameOver
)

// String returns the state name used in logs and snapshots.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Director drives the Title -> Playing -> GameOver -> Title loop.
// Each state runs on its own repeating timer. Exactly one timer is armed
// at a time: the old one is cancelled before the next state's is scheduled.
type Director struct {
	session *Session
	host    Host
	timing  config.TimingConfig
	logger  *log.Logger

	state          State
	timer          core.TimerHandle
	dirty          bool      // Title/GameOver text still needs drawing
	countdownStart time.Time // When GameOver was entered
}

// NewDirector wires the game to its host. A nil logger discards output.
func NewDirector(cfg config.CatcherConfig, host Host, seed int64, logger *log.Logger) (*Director, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	session, err := NewSession(cfg, host, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	return &Director{
		session: session,
		host:    host,
		timing:  cfg.Timing,
		logger:  logger,
		state:   StateTitle,
	}, nil
}

// Start shows the title screen and arms its timer.
func (d *Director) Start() {
	d.enter(StateTitle)
}

// Stop cancels the active timer. The director is inert afterwards
// until Start is called again.
func (d *Director) Stop() {
	d.host.Scheduler.Cancel(d.timer)
	d.timer = 0
}

// State returns the current screen.
func (d *Director) State() State {
	return d.state
}

// Session returns the game state driven by this director.
func (d *Director) Session() *Session {
	return d.session
}

// Snapshot summarizes the game for the platform.
func (d *Director) Snapshot() core.GameState {
	s := d.session
	gs := core.GameState{Phase: d.state.String()}

	switch d.state {
	case StatePlaying:
		gs.Elapsed = s.Elapsed(d.host.Clock.Now())
	case StateGameOver:
		gs.Elapsed = s.Elapsed(d.countdownStart)
	default:
		return gs
	}

	gs.Score = s.Score.Display()
	gs.Health = s.Health.Display()
	gs.Level = s.Level
	return gs
}

// enter swaps the active timer for the one belonging to next.
func (d *Director) enter(next State) {
	d.host.Scheduler.Cancel(d.timer)

	prev := d.state
	d.state = next
	d.dirty = true

	var (
		tick func(*Session)
		rate int
	)
	switch next {
	case StatePlaying:
		tick, rate = d.tickPlaying, d.timing.PlayingTickRate
	case StateGameOver:
		tick, rate = d.tickGameOver, d.timing.GameOverTickRate
	default:
		tick, rate = d.tickTitle, d.timing.TitleTickRate
	}

	d.timer = d.host.Scheduler.Schedule(func() { tick(d.session) }, core.IntervalForRate(rate))
	d.logger.Debug("state change", "from", prev, "to", next, "tick_rate", rate)
}

// tickTitle draws the title once and waits for the start key.
func (d *Director) tickTitle(s *Session) {
	if d.dirty {
		d.drawTitle()
		d.dirty = false
	}

	if d.host.Keys.IsKeyDown(core.KeyStart) {
		s.Reset()
		d.logger.Info("game started", "quota", s.Quota(), "spawn_interval", s.Ramp.SpawnInterval())
		d.enter(StatePlaying)
	}
}

// tickPlaying runs one frame of gameplay, or ends the game once the
// displayed health has run out.
func (d *Director) tickPlaying(s *Session) {
	now := d.host.Clock.Now()

	if s.Health.Value < 1 {
		s.Basket.Alive = false
		d.countdownStart = now
		d.logger.Info("game over",
			"score", int(s.Score.Target),
			"level", s.Level,
			"elapsed", s.Elapsed(now).Round(time.Second),
		)
		d.enter(StateGameOver)
		return
	}

	switch s.Step(now) {
	case SpawnAdded:
		d.logger.Debug("block spawned", "level", s.Level, "spawned", s.Spawned, "on_screen", s.OnScreen)
	case SpawnLevelComplete:
		d.logger.Info("level complete",
			"level", s.Level,
			"spawn_interval", s.Ramp.SpawnInterval(),
			"basket_speed", s.Basket.XSpeed,
		)
	}
}

// tickGameOver shows the game-over message, then returns to the title
// once the countdown has elapsed on the clock.
func (d *Director) tickGameOver(s *Session) {
	now := d.host.Clock.Now()

	if d.dirty {
		d.drawGameOver(s)
		d.dirty = false
	}

	wait := time.Duration(d.timing.GameOverSeconds * float64(time.Second))
	if now.Sub(d.countdownStart) > wait {
		d.enter(StateTitle)
	}
}

// drawTitle paints the title banner: "RGB" in the palette colors.
func (d *Director) drawTitle() {
	dst := d.host.Surface
	dst.Clear(core.Bounds(dst))

	const (
		name   = "RGBCatcher"
		prompt = "Press space to start"
	)
	y := float64(dst.Height()/2 - 1)
	x := centerX(dst, name)

	dst.FillText("R", x, y, core.ColorRed)
	dst.FillText("G", x+1, y, core.ColorGreen)
	dst.FillText("B", x+2, y, core.ColorBlue)
	dst.FillText(name[3:], x+3, y, core.ColorBlack)
	dst.FillText(prompt, centerX(dst, prompt), y+2, core.ColorBlack)
}

// drawGameOver wipes the playfield and shows the final score.
func (d *Director) drawGameOver(s *Session) {
	dst := d.host.Surface
	dst.Clear(core.Bounds(dst))

	const title = "Game over!"
	score := "Score: " + strconv.Itoa(int(s.Score.Target))
	y := float64(dst.Height()/2 - 1)

	dst.FillText(title, centerX(dst, title), y, core.ColorBlack)
	dst.FillText(score, centerX(dst, score), y+2, core.ColorBlack)
}

// centerX returns the column that centers text on the surface.
func centerX(dst core.Surface, text string) float64 {
	return float64((dst.Width() - len([]rune(text))) / 2)
}
