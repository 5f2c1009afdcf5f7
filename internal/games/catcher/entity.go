// Package catcher implements RGB Catcher: colored blocks fall from the top of
// the screen and the player catches the ones matching the basket's color.
//
// The package is pure game logic. It talks to the outside world only through
// the core collaborator interfaces (Surface, KeyState, Clock, Scheduler).
package catcher

import "github.com/vovakirdan/rgb-catcher/internal/core"

// Movable is anything that moves and draws itself each tick.
type Movable interface {
	Move()
	Draw(dst core.Surface)
	IsAlive() bool
}

// Update advances a movable by one tick: move, then draw.
// Dead entities are skipped entirely.
func Update(m Movable, dst core.Surface) {
	if !m.IsAlive() {
		return
	}
	m.Move()
	m.Draw(dst)
}

// Entity is a colored rectangle with a liveness flag.
// Concrete entities embed it and supply Move.
type Entity struct {
	X, Y  float64
	W, H  float64
	Alive bool
	Color core.Color
}

// IsAlive reports whether the entity still takes part in the game.
func (e *Entity) IsAlive() bool {
	return e.Alive
}

// Kill marks the entity dead. It returns false if it already was,
// so callers can run one-shot bookkeeping exactly once.
func (e *Entity) Kill() bool {
	if !e.Alive {
		return false
	}
	e.Alive = false
	return true
}

// Bounds returns the entity's bounding box.
func (e *Entity) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Draw fills the bounding box with the entity color.
func (e *Entity) Draw(dst core.Surface) {
	dst.FillRect(e.X, e.Y, e.W, e.H, e.Color)
}
