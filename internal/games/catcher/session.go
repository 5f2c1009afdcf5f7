package catcher

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/rgb-catcher/internal/config"
	"github.com/vovakirdan/rgb-catcher/internal/core"
)

// Host bundles the collaborators the game needs from the platform.
type Host struct {
	Surface   core.Surface
	Keys      core.KeyState
	Clock     core.Clock
	Scheduler core.Scheduler
}

// Session is the mutable state of a play-through: the entities, the
// level bookkeeping and the difficulty ramp. Tick functions receive it
// explicitly.
type Session struct {
	Basket *Basket
	Health *Health
	Score  *Score
	Blocks []*Block // Dead blocks stay here until the level resets

	Level         int
	Spawned       int // Blocks spawned this level
	OnScreen      int // Spawned blocks that are still alive
	SpawnBaseline time.Time
	StartedAt     time.Time
	Ramp          *config.Ramp

	cfg          config.CatcherConfig
	viewW, viewH int // Viewport captured at the last level reset
	palette      []core.Color
	rng          *rand.Rand
	surface      core.Surface
	clock        core.Clock
}

// NewSession creates the long-lived entities. Basket, Health and Score are
// built once here and only ever reset in place afterwards.
func NewSession(cfg config.CatcherConfig, host Host, rng *rand.Rand) (*Session, error) {
	palette, err := cfg.Colors()
	if err != nil {
		return nil, err
	}

	cfg.Basket = cfg.Basket.WithDefaults()
	cfg.Block = cfg.Block.WithDefaults()
	cfg.HUD = cfg.HUD.WithDefaults()

	return &Session{
		Basket:  NewBasket(cfg.Basket, palette, host.Keys, rng),
		Health:  NewHealth(cfg.HUD),
		Score:   NewScore(cfg.HUD),
		Ramp:    config.NewRamp(cfg.Level),
		cfg:     cfg,
		palette: palette,
		rng:     rng,
		surface: host.Surface,
		clock:   host.Clock,
	}, nil
}

// Reset starts a new play-through at level one.
func (s *Session) Reset() {
	now := s.clock.Now()

	s.Score.Reset()
	s.Health.Reset()
	s.Ramp.Reset()
	s.Level = 1
	s.StartedAt = now
	s.SpawnBaseline = now

	s.resetLevel()
}

// resetLevel clears level-scoped state. Score, health and the session
// start time carry over.
func (s *Session) resetLevel() {
	s.viewW, s.viewH = s.surface.Width(), s.surface.Height()

	s.Basket.XSpeed = s.Ramp.BasketSpeed(s.cfg.Basket.XSpeed)
	s.Basket.Reset(s.viewW, s.viewH)

	s.Blocks = nil
	s.Spawned = 0
	s.OnScreen = 0
}

// Quota returns how many blocks the current level spawns in total.
func (s *Session) Quota() int {
	return s.cfg.Level.BlocksPerLevel * s.Level
}

// Elapsed returns the time since the play-through started.
func (s *Session) Elapsed(now time.Time) time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	return now.Sub(s.StartedAt)
}

// Step advances gameplay by one tick: spawn, move, draw, then resolve
// collisions once every entity has moved.
func (s *Session) Step(now time.Time) SpawnOutcome {
	outcome := s.CheckSpawn(now)

	dst := s.surface
	dst.Clear(core.Bounds(dst))

	Update(s.Basket, dst)
	s.Health.Tick()
	s.Health.Draw(dst)
	s.Score.Tick()
	s.Score.Draw(dst)

	for _, b := range s.Blocks {
		Update(b, dst)
	}
	for _, b := range s.Blocks {
		s.CheckCollision(b)
	}

	return outcome
}
