package catcher

import (
	"math"
	"strconv"

	"github.com/vovakirdan/rgb-catcher/internal/config"
	"github.com/vovakirdan/rgb-catcher/internal/core"
)

// Countable is an animated HUD number.
type Countable interface {
	Change(amount float64)
	Tick()
	Reset()
	Draw(dst core.Surface)
}

// Counter is a value that eases toward a target by fixed steps.
// Changes land on Target immediately; Value catches up over the
// following ticks.
type Counter struct {
	Value  float64
	Target float64
	Speed  float64
}

// Change moves the target. There is no clamping here.
func (c *Counter) Change(amount float64) {
	c.Target += amount
}

// Tick steps Value toward Target, snapping once within one step.
func (c *Counter) Tick() {
	switch {
	case math.Abs(c.Value-c.Target) < c.Speed:
		c.Value = c.Target
	case c.Target > c.Value:
		c.Value += c.Speed
	default:
		c.Value -= c.Speed
	}
}

// Display returns the value rounded for display.
func (c *Counter) Display() int {
	return int(math.Round(c.Value))
}

// hudOrigin returns the left edge and top of the HUD block.
func hudOrigin(dst core.Surface, hud config.HUDConfig) (x, y float64) {
	return float64(dst.Width()) - (hud.BarWidth + 2) - hud.Margin, 0
}

// Health is the player's hit points, drawn as a color-coded bar.
type Health struct {
	Counter
	hud config.HUDConfig
}

// NewHealth creates a full health counter.
func NewHealth(hud config.HUDConfig) *Health {
	hud = hud.WithDefaults()
	h := &Health{
		Counter: Counter{Speed: hud.CounterSpeed},
		hud:     hud,
	}
	h.Reset()
	return h
}

// Reset restores full health.
func (h *Health) Reset() {
	h.Value = 100
	h.Target = 100
}

// Band returns the fill color for the current value.
// Negative values have no band.
func (h *Health) Band() core.Color {
	switch {
	case h.Value >= h.hud.SafeAt:
		return core.ColorGreen
	case h.Value >= h.hud.WarnAt:
		return core.ColorOrange
	case h.Value >= 0:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// Draw renders the bordered bar and its label.
func (h *Health) Draw(dst core.Surface) {
	x, y := hudOrigin(dst, h.hud)

	dst.StrokeRect(x, y, h.hud.BarWidth+2, h.hud.BarHeight+2, core.ColorWhite)
	if band := h.Band(); band != core.ColorDefault {
		dst.FillRect(x+1, y+1, h.Value*(h.hud.BarWidth/100), h.hud.BarHeight, band)
	}
	dst.FillText("HP", x-h.hud.LabelGap, y+1, core.ColorBlack)
}

// Score is the player's points, drawn as text.
type Score struct {
	Counter
	hud config.HUDConfig
}

// NewScore creates a zero score counter.
func NewScore(hud config.HUDConfig) *Score {
	hud = hud.WithDefaults()
	s := &Score{
		Counter: Counter{Speed: hud.CounterSpeed},
		hud:     hud,
	}
	s.Reset()
	return s
}

// Reset clears the score.
func (s *Score) Reset() {
	s.Value = 0
	s.Target = 0
}

// Draw renders the score below the health bar.
func (s *Score) Draw(dst core.Surface) {
	x, y := hudOrigin(dst, s.hud)
	y += s.hud.BarHeight + 2

	dst.FillText(strconv.Itoa(s.Display()), x, y, core.ColorBlack)
	dst.FillText("PT", x-s.hud.LabelGap, y, core.ColorBlack)
}

var (
	_ Countable = (*Health)(nil)
	_ Countable = (*Score)(nil)
)
