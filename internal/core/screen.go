package core

import (
	"math"
	"strings"
)

// Glyphs used when painting onto the character grid.
const (
	FillGlyph = '█'
	BlankRune = ' '
)

// Cell is one character position of the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: BlankRune, Color: ColorDefault}

// Screen is a 2D character buffer for rendering game graphics.
// It implements Surface with one viewport pixel per terminal cell, which
// decouples game rendering from the terminal while the platform handles
// actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Erase()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Erase()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Erase blanks the entire screen.
func (s *Screen) Erase() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places a colored rune at the given cell.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// Get returns the rune at the given position.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// Clear blanks every cell touched by r.
func (s *Screen) Clear(r Rect) {
	x0, y0, x1, y1 := r.Cells()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.Set(x, y, BlankRune, ColorDefault)
		}
	}
}

// FillRect paints every cell touched by the rectangle.
// Rectangles with a non-positive size paint nothing.
func (s *Screen) FillRect(x, y, w, h float64, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0, x1, y1 := NewRect(x, y, w, h).Cells()
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.Set(cx, cy, FillGlyph, c)
		}
	}
}

// StrokeRect draws a box outline using box-drawing characters.
func (s *Screen) StrokeRect(x, y, w, h float64, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0, x1, y1 := NewRect(x, y, w, h).Cells()
	right, bottom := x1-1, y1-1

	// Horizontal edges
	for cx := x0 + 1; cx < right; cx++ {
		s.Set(cx, y0, '─', c)
		s.Set(cx, bottom, '─', c)
	}

	// Vertical edges
	for cy := y0 + 1; cy < bottom; cy++ {
		s.Set(x0, cy, '│', c)
		s.Set(right, cy, '│', c)
	}

	// Corners
	s.Set(x0, y0, '┌', c)
	s.Set(right, y0, '┐', c)
	s.Set(x0, bottom, '└', c)
	s.Set(right, bottom, '┘', c)
}

// FillText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) FillText(text string, x, y float64, c Color) {
	cx := int(math.Floor(x))
	cy := int(math.Floor(y))
	i := 0
	for _, r := range text {
		s.Set(cx+i, cy, r, c)
		i++
	}
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

var _ Surface = (*Screen)(nil)
