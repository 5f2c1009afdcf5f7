// Package config provides YAML-based game configuration loading and
// difficulty ramp management for RGB Catcher.
package config

import (
	"fmt"

	"github.com/vovakirdan/rgb-catcher/internal/core"
)

// CatcherConfig contains all tuning for the game.
// Sizes and speeds are in viewport pixels (one terminal cell per pixel)
// and pixels per tick.
type CatcherConfig struct {
	Palette []string     `yaml:"palette"`
	Basket  BasketConfig `yaml:"basket"`
	Block   BlockConfig  `yaml:"block"`
	Level   LevelConfig  `yaml:"level"`
	Timing  TimingConfig `yaml:"timing"`
	HUD     HUDConfig    `yaml:"hud"`
	Input   InputConfig  `yaml:"input"`
}

// BasketConfig defines the player's basket.
type BasketConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	XSpeed float64 `yaml:"x_speed"`
}

// BlockConfig defines a falling block.
type BlockConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	YSpeed   float64 `yaml:"y_speed"`
	Strength int     `yaml:"strength"` // Points on a matching catch, damage otherwise
}

// LevelConfig defines spawning and the per-level difficulty ramp.
type LevelConfig struct {
	BlocksPerLevel    int     `yaml:"blocks_per_level"`    // Quota is blocks_per_level * level
	SpawnInterval     float64 `yaml:"spawn_interval"`      // Seconds between spawns on level 1
	SpawnDecay        float64 `yaml:"spawn_decay"`         // Interval multiplier per level
	FallSpeedGrowth   float64 `yaml:"fall_speed_growth"`   // Block speed multiplier per level
	BasketSpeedGrowth float64 `yaml:"basket_speed_growth"` // Basket speed multiplier per level
}

// TimingConfig defines the tick rate of each screen.
type TimingConfig struct {
	TitleTickRate    int     `yaml:"title_tick_rate"`
	PlayingTickRate  int     `yaml:"playing_tick_rate"`
	GameOverTickRate int     `yaml:"gameover_tick_rate"`
	GameOverSeconds  float64 `yaml:"gameover_seconds"` // How long "Game over!" stays up
}

// HUDConfig defines the health bar and score display.
type HUDConfig struct {
	BarWidth     float64 `yaml:"bar_width"`
	BarHeight    float64 `yaml:"bar_height"`
	Margin       float64 `yaml:"margin"`    // Gap between the bar and the right edge
	LabelGap     float64 `yaml:"label_gap"` // Distance from a label to its value
	CounterSpeed float64 `yaml:"counter_speed"`
	SafeAt       float64 `yaml:"safe_at"` // Health at or above this is drawn green
	WarnAt       float64 `yaml:"warn_at"` // Health at or above this is drawn orange
}

// InputConfig defines how key presses are turned into held keys.
type InputConfig struct {
	HoldMillis int `yaml:"hold_ms"` // A key counts as held this long after its last press
}

// Colors resolves the palette names.
func (c CatcherConfig) Colors() ([]core.Color, error) {
	if len(c.Palette) == 0 {
		return core.DefaultPalette(), nil
	}
	colors := make([]core.Color, 0, len(c.Palette))
	for _, name := range c.Palette {
		col, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("config: unknown palette color %q", name)
		}
		colors = append(colors, col)
	}
	return colors, nil
}

// Validate reports the first setting that would make the game unplayable.
func (c CatcherConfig) Validate() error {
	if _, err := c.Colors(); err != nil {
		return err
	}

	checks := []struct {
		name string
		ok   bool
	}{
		{"basket.width", c.Basket.Width > 0},
		{"basket.height", c.Basket.Height > 0},
		{"basket.x_speed", c.Basket.XSpeed > 0},
		{"block.width", c.Block.Width > 0},
		{"block.height", c.Block.Height > 0},
		{"block.y_speed", c.Block.YSpeed > 0},
		{"block.strength", c.Block.Strength >= 0},
		{"level.blocks_per_level", c.Level.BlocksPerLevel > 0},
		{"level.spawn_interval", c.Level.SpawnInterval > 0},
		{"level.spawn_decay", c.Level.SpawnDecay > 0},
		{"level.fall_speed_growth", c.Level.FallSpeedGrowth > 0},
		{"level.basket_speed_growth", c.Level.BasketSpeedGrowth > 0},
		{"timing.title_tick_rate", c.Timing.TitleTickRate > 0},
		{"timing.playing_tick_rate", c.Timing.PlayingTickRate > 0},
		{"timing.gameover_tick_rate", c.Timing.GameOverTickRate > 0},
		{"timing.gameover_seconds", c.Timing.GameOverSeconds >= 0},
		{"hud.bar_width", c.HUD.BarWidth > 0},
		{"hud.bar_height", c.HUD.BarHeight > 0},
		{"hud.counter_speed", c.HUD.CounterSpeed > 0},
		{"hud.warn_at", c.HUD.WarnAt <= c.HUD.SafeAt},
		{"input.hold_ms", c.Input.HoldMillis >= 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: invalid value for %s", chk.name)
		}
	}
	return nil
}

// WithDefaults fills zero fields from the default basket.
func (b BasketConfig) WithDefaults() BasketConfig {
	def := DefaultCatcherConfig().Basket
	if b.Width <= 0 {
		b.Width = def.Width
	}
	if b.Height <= 0 {
		b.Height = def.Height
	}
	if b.XSpeed <= 0 {
		b.XSpeed = def.XSpeed
	}
	return b
}

// WithDefaults fills zero fields from the default block.
// A zero strength is kept: it is a valid (harmless) block.
func (b BlockConfig) WithDefaults() BlockConfig {
	def := DefaultCatcherConfig().Block
	if b.Width <= 0 {
		b.Width = def.Width
	}
	if b.Height <= 0 {
		b.Height = def.Height
	}
	if b.YSpeed <= 0 {
		b.YSpeed = def.YSpeed
	}
	return b
}

// WithDefaults fills zero fields from the default HUD.
func (h HUDConfig) WithDefaults() HUDConfig {
	def := DefaultCatcherConfig().HUD
	if h.BarWidth <= 0 {
		h.BarWidth = def.BarWidth
	}
	if h.BarHeight <= 0 {
		h.BarHeight = def.BarHeight
	}
	if h.CounterSpeed <= 0 {
		h.CounterSpeed = def.CounterSpeed
	}
	if h.SafeAt == 0 && h.WarnAt == 0 {
		h.SafeAt = def.SafeAt
		h.WarnAt = def.WarnAt
	}
	if h.LabelGap == 0 {
		h.LabelGap = def.LabelGap
	}
	return h
}
