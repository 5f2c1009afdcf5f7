package catcher

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/rgb-catcher/internal/config"
	"github.com/vovakirdan/rgb-catcher/internal/core"
)

// maxColorRerolls bounds the search for a new basket color.
const maxColorRerolls = 32

// Basket is the player-controlled paddle at the bottom of the screen.
type Basket struct {
	Entity
	XSpeed   float64    // Pixels per tick while a direction key is held
	OldColor core.Color // Color picked at the previous reset

	palette []core.Color
	keys    core.KeyState
	rng     *rand.Rand
	viewW   float64 // Viewport width captured at the last reset
}

// NewBasket creates the basket. It is created once and reset in place.
func NewBasket(cfg config.BasketConfig, palette []core.Color, keys core.KeyState, rng *rand.Rand) *Basket {
	cfg = cfg.WithDefaults()
	if len(palette) == 0 {
		palette = core.DefaultPalette()
	}

	return &Basket{
		Entity: Entity{
			W:     cfg.Width,
			H:     cfg.Height,
			Alive: true,
			Color: palette[0],
		},
		XSpeed:   cfg.XSpeed,
		OldColor: palette[0],
		palette:  palette,
		keys:     keys,
		rng:      rng,
	}
}

// Reset centers the basket at the bottom of the viewport and picks a color
// different from the one it had after the previous reset.
func (b *Basket) Reset(viewW, viewH int) {
	b.viewW = float64(viewW)
	b.X = b.viewW/2 - b.W/2
	b.Y = float64(viewH) - b.H
	b.Alive = true

	b.rerollColor()
	b.OldColor = b.Color
}

// rerollColor draws palette colors until one differs from OldColor.
// A single-color palette keeps its only color.
func (b *Basket) rerollColor() {
	n := len(b.palette)
	if n < 2 {
		b.Color = b.palette[0]
		return
	}

	for i := 0; i < maxColorRerolls && b.Color == b.OldColor; i++ {
		b.Color = b.palette[b.rng.Intn(n)]
	}

	// Out of luck: step to the next palette entry.
	if b.Color == b.OldColor {
		idx := slices.Index(b.palette, b.OldColor)
		b.Color = b.palette[(idx+1)%n]
	}
}

// Move applies the held direction keys and keeps the basket on screen.
func (b *Basket) Move() {
	if b.keys.IsKeyDown(core.KeyLeft) {
		b.X -= b.XSpeed
	}
	if b.keys.IsKeyDown(core.KeyRight) {
		b.X += b.XSpeed
	}

	b.X = core.Clamp(b.X, 0, b.viewW-b.W)
}
