package catcher

import (
	"time"

	"github.com/vovakirdan/rgb-catcher/internal/core"
)

// SpawnOutcome describes what a spawn check did.
type SpawnOutcome int

const (
	SpawnIdle          SpawnOutcome = iota // Interval not elapsed yet
	SpawnAdded                             // A new block entered play
	SpawnWaiting                           // Quota reached, blocks still falling
	SpawnLevelComplete                     // Quota reached and every block resolved
)

// String returns a human-readable name for the outcome.
func (o SpawnOutcome) String() string {
	switch o {
	case SpawnIdle:
		return "idle"
	case SpawnAdded:
		return "added"
	case SpawnWaiting:
		return "waiting"
	case SpawnLevelComplete:
		return "level-complete"
	default:
		return "unknown"
	}
}

// CheckSpawn runs the spawn timer. Once the spawn interval has elapsed it
// either adds a block or, with the quota spent and the screen empty,
// completes the level. The timer baseline restarts whenever it fires.
func (s *Session) CheckSpawn(now time.Time) SpawnOutcome {
	if now.Sub(s.SpawnBaseline) < s.Ramp.SpawnInterval() {
		return SpawnIdle
	}

	outcome := s.addBlock()
	if outcome == SpawnLevelComplete {
		s.completeLevel()
	}

	s.SpawnBaseline = now
	return outcome
}

// addBlock spawns the next block of the level if the quota allows.
func (s *Session) addBlock() SpawnOutcome {
	if s.Spawned < s.Quota() {
		cfg := s.cfg.Block
		cfg.YSpeed = s.Ramp.FallSpeed(cfg.YSpeed)

		s.Blocks = append(s.Blocks, NewBlock(cfg, core.ColorDefault, s.viewW, s.palette, s.rng))
		s.Spawned++
		s.OnScreen++
		return SpawnAdded
	}

	if s.OnScreen == 0 {
		return SpawnLevelComplete
	}
	return SpawnWaiting
}

// completeLevel ramps up difficulty and starts the next level.
// Only blocks spawned from now on fall faster; the live ones are
// discarded by the level reset anyway.
func (s *Session) completeLevel() {
	s.Ramp.Advance()
	s.Level++
	s.resetLevel()
}
