package core

import "time"

// Surface is the render target the game draws into.
// Coordinates are viewport pixels; the implementation decides how a pixel
// maps to the output device.
type Surface interface {
	// Clear erases everything inside r.
	Clear(r Rect)

	// FillRect paints a solid rectangle.
	FillRect(x, y, w, h float64, c Color)

	// StrokeRect paints the outline of a rectangle.
	StrokeRect(x, y, w, h float64, c Color)

	// FillText writes text with its top-left corner at (x, y).
	FillText(text string, x, y float64, c Color)

	// Width and Height report the current viewport size.
	Width() int
	Height() int
}

// Bounds returns the full viewport of a surface as a Rect.
func Bounds(s Surface) Rect {
	return NewRect(0, 0, float64(s.Width()), float64(s.Height()))
}

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading,
// so differences between two values are safe against clock adjustments.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// TimerHandle identifies a repeating timer registration.
// The zero value never refers to a live timer.
type TimerHandle uint64

// Scheduler runs callbacks on a repeating interval.
// Callbacks never overlap and always run to completion.
type Scheduler interface {
	// Schedule arms fn to run every interval until cancelled.
	Schedule(fn func(), interval time.Duration) TimerHandle

	// Cancel stops a timer. Cancelling an unknown or already
	// cancelled handle is a no-op.
	Cancel(h TimerHandle)
}

// IntervalForRate converts a tick rate (ticks per second) into a timer interval.
// Non-positive rates fall back to 60 ticks per second.
func IntervalForRate(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
