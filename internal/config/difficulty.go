package config

import "time"

// Ramp tracks the cumulative difficulty of a session.
// Every completed level shortens the spawn interval and speeds up
// blocks and the basket by the configured ratios.
type Ramp struct {
	cfg           LevelConfig
	spawnInterval float64 // Seconds
	fallSpeed     float64 // Multiplier on block y speed
	basketSpeed   float64 // Multiplier on basket x speed
}

// NewRamp creates a ramp at level-one difficulty.
func NewRamp(cfg LevelConfig) *Ramp {
	r := &Ramp{cfg: cfg}
	r.Reset()
	return r
}

// Reset returns to level-one difficulty.
func (r *Ramp) Reset() {
	r.spawnInterval = r.cfg.SpawnInterval
	r.fallSpeed = 1
	r.basketSpeed = 1
}

// Advance applies one level's worth of difficulty growth.
func (r *Ramp) Advance() {
	r.spawnInterval *= r.cfg.SpawnDecay
	r.fallSpeed *= r.cfg.FallSpeedGrowth
	r.basketSpeed *= r.cfg.BasketSpeedGrowth
}

// SpawnInterval returns the current time between spawns.
func (r *Ramp) SpawnInterval() time.Duration {
	return time.Duration(r.spawnInterval * float64(time.Second))
}

// SpawnSeconds returns the current time between spawns in seconds.
func (r *Ramp) SpawnSeconds() float64 {
	return r.spawnInterval
}

// FallSpeed scales a base block speed.
func (r *Ramp) FallSpeed(base float64) float64 {
	return base * r.fallSpeed
}

// BasketSpeed scales a base basket speed.
func (r *Ramp) BasketSpeed(base float64) float64 {
	return base * r.basketSpeed
}
