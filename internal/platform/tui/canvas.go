package tui

import (
	"github.com/mkravt/piemenu/internal/layout"
)

// Color represents a foreground color for a canvas cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for menu elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Cell is one character of the canvas.
type Cell struct {
	Rune  rune
	Color Color
}

// Canvas is a 2D character buffer the radial menu is drawn into.
// It decouples menu drawing from the terminal: the menu writes runes and
// colors, the platform turns the buffer into styled output.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: width, height: height}
	c.allocate()
	c.Clear()
	return c
}

func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the canvas dimensions, dropping previous content.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.allocate()
	c.Clear()
}

// Clear fills the canvas with spaces.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' ', Color: ColorDefault}
		}
	}
}

// Set writes a single cell. Out-of-bounds writes are ignored.
func (c *Canvas) Set(x, y int, r rune, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// Get returns the cell at the given position, or an empty cell when out of
// bounds.
func (c *Canvas) Get(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' ', Color: ColorDefault}
	}
	return c.cells[y][x]
}

// Text writes a string horizontally starting at (x, y).
func (c *Canvas) Text(x, y int, s string, color Color) {
	for i, r := range []rune(s) {
		c.Set(x+i, y, r, color)
	}
}

// TextCentered writes a string horizontally centered on (x, y).
func (c *Canvas) TextCentered(x, y int, s string, color Color) {
	c.Text(x-len([]rune(s))/2, y, s, color)
}

// cellAspect compensates for terminal cells being roughly twice as tall as
// they are wide, so the menu ring looks circular.
const cellAspect = 2.0

// Center returns the canvas midpoint.
func (c *Canvas) Center() (int, int) {
	return c.width / 2, c.height / 2
}

// Radius returns the largest ring radius (in rows) that fits the canvas
// with a small margin.
func (c *Canvas) Radius() float64 {
	rY := float64(c.height)/2 - 2
	rX := (float64(c.width)/2 - 8) / cellAspect
	if rX < rY {
		rY = rX
	}
	if rY < 1 {
		rY = 1
	}
	return rY
}

// Project maps a menu direction and radius (in rows) to a canvas cell.
func (c *Canvas) Project(angle, radius float64) (int, int) {
	cx, cy := c.Center()
	v := layout.Direction(angle, radius)
	return cx + int(v.X*cellAspect+signOf(v.X)*0.5), cy + int(v.Y+signOf(v.Y)*0.5)
}

// PointerAngle converts a cell position to the menu direction it points at
// from the center, together with its distance in rows. The aspect
// correction mirrors Project.
func (c *Canvas) PointerAngle(x, y int) (angle, distance float64) {
	cx, cy := c.Center()
	v := layout.Vec{X: float64(x-cx) / cellAspect, Y: float64(y - cy)}
	return layout.AngleOf(v), v.Len()
}

func signOf(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
