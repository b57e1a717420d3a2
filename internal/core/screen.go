package core

import (
	"strings"
)

// Cell is a single screen position: a rune plus its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D colored character buffer for rendering the arena.
// It decouples rendering from the terminal: the renderer draws runes and
// colors, the platform layer converts the buffer to styled output.
// The buffer is sized exactly to the arena dimensions; all draw calls use
// arena-local coordinates.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Color: ColorDefault}
		}
	}
}

// Set places a rune at the given position, keeping the cell's color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
}

// SetCell places a rune with a color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the cell at the given position.
// Returns an uncolored space for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', Color: ColorDefault}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	for i, r := range text {
		s.SetCell(x+i, y, r, c)
	}
}

// FillRect fills a rectangular cell area with the given rune and color.
func (s *Screen) FillRect(x, y, w, h int, r rune, c Color) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			s.SetCell(cx, cy, r, c)
		}
	}
}

// String converts the screen buffer to a plain string, dropping colors.
// Each row is joined with newlines. Useful for tests and screenshots.
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

// Row returns a copy of the specified row's runes as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x := range runes {
		runes[x] = s.cells[y][x].Rune
	}
	return string(runes)
}
