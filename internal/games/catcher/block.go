package catcher

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rgb-catcher/internal/config"
	"github.com/vovakirdan/rgb-catcher/internal/core"
)

// Block is a falling obstacle.
// Strength is the score for a matching catch and the damage otherwise;
// it drops to zero once a missed block has been penalized.
type Block struct {
	Entity
	YSpeed   float64
	Strength int

	placed bool
}

// NewBlock spawns a block just above the viewport at a random column.
// If color is core.ColorDefault a random palette color is used.
func NewBlock(cfg config.BlockConfig, color core.Color, viewW int, palette []core.Color, rng *rand.Rand) *Block {
	cfg = cfg.WithDefaults()

	b := &Block{
		Entity: Entity{
			W:     cfg.Width,
			H:     cfg.Height,
			Alive: true,
			Color: color,
		},
		YSpeed:   cfg.YSpeed,
		Strength: cfg.Strength,
	}
	b.initPosition(viewW, rng)
	b.initColor(palette, rng)
	return b
}

// initPosition places the block once: a whole-pixel column inside the
// viewport, and fully above the top edge so it slides in.
func (b *Block) initPosition(viewW int, rng *rand.Rand) {
	if b.placed {
		return
	}
	span := max(float64(viewW)-b.W, 0)
	b.X = math.Round(rng.Float64() * span)
	b.Y = -b.H
	b.placed = true
}

// initColor picks a random palette color unless one was given.
func (b *Block) initColor(palette []core.Color, rng *rand.Rand) {
	if b.Color != core.ColorDefault {
		return
	}
	if len(palette) == 0 {
		palette = core.DefaultPalette()
	}
	b.Color = palette[rng.Intn(len(palette))]
}

// Move drops the block at constant speed.
func (b *Block) Move() {
	b.Y += b.YSpeed
}
