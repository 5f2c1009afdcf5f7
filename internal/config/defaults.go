package config

import (
	_ "embed"
)

//go:embed defaults/catcher.yaml
var defaultCatcherYAML []byte

// DefaultCatcherConfig returns the built-in configuration.
// It mirrors defaults/catcher.yaml and backs it up if the embed is unreadable.
func DefaultCatcherConfig() CatcherConfig {
	return CatcherConfig{
		Palette: []string{"red", "green", "blue"},
		Basket: BasketConfig{
			Width:  9,
			Height: 1,
			XSpeed: 0.7,
		},
		Block: BlockConfig{
			Width:    2,
			Height:   1,
			YSpeed:   0.15,
			Strength: 10,
		},
		Level: LevelConfig{
			BlocksPerLevel:    4,
			SpawnInterval:     2,
			SpawnDecay:        0.99,
			FallSpeedGrowth:   1.01,
			BasketSpeedGrowth: 1.02,
		},
		Timing: TimingConfig{
			TitleTickRate:    30,
			PlayingTickRate:  60,
			GameOverTickRate: 60,
			GameOverSeconds:  3,
		},
		HUD: HUDConfig{
			BarWidth:     10,
			BarHeight:    1,
			Margin:       1,
			LabelGap:     4,
			CounterSpeed: 2,
			SafeAt:       50,
			WarnAt:       25,
		},
		Input: InputConfig{
			HoldMillis: 200,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCatcherYAML
}
