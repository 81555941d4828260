// Package render draws a maze as a grid of square pixels for the terminal
// or as a PNG image.
package render

import (
	"github.com/lawnchairsociety/amazeing/internal/maze"
)

// Pixel is the kind of one square of the drawing
type Pixel uint8

const (
	Wall Pixel = iota
	Open
	OnPath
	Entry
	Exit
	Sealed
)

func (p Pixel) String() string {
	switch p {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case OnPath:
		return "path"
	case Entry:
		return "entry"
	case Exit:
		return "exit"
	case Sealed:
		return "sealed"
	default:
		return "unknown"
	}
}

// Canvas is the pixel grid of a maze. It has 2*height+1 rows and 2*width+1
// columns: cell (cx,cy) sits at pixel (2cx+1, 2cy+1), even rows and
// columns hold walls and corners.
type Canvas struct {
	Width, Height int
	Pixels        [][]Pixel
}

// At returns the pixel at column x, row y
func (c *Canvas) At(x, y int) Pixel {
	return c.Pixels[y][x]
}

// Build draws the grid. Sealed cells are drawn as Sealed. When showPath is
// set the path cells and the passages between them are drawn as OnPath;
// steps that leave the grid are ignored.
func Build(g *maze.Grid, sealed maze.CellSet, path maze.Path, showPath bool) *Canvas {
	c := &Canvas{
		Width:  2*g.Width + 1,
		Height: 2*g.Height + 1,
	}
	c.Pixels = make([][]Pixel, c.Height)
	for y := range c.Pixels {
		c.Pixels[y] = make([]Pixel, c.Width)
	}

	onPath := maze.NewCellSet()
	var walk []maze.Point
	if showPath {
		walk = path.Walk(g.Entry)
		for _, p := range walk {
			onPath.Put(p)
		}
	}

	for cy := 0; cy < g.Height; cy++ {
		for cx := 0; cx < g.Width; cx++ {
			cell := maze.Point{X: cx, Y: cy}
			px, py := 2*cx+1, 2*cy+1

			switch {
			case cell == g.Entry:
				c.Pixels[py][px] = Entry
			case cell == g.Exit:
				c.Pixels[py][px] = Exit
			case sealed.Has(cell):
				c.Pixels[py][px] = Sealed
			case onPath.Has(cell):
				c.Pixels[py][px] = OnPath
			default:
				c.Pixels[py][px] = Open
			}

			// Only interior passages are opened; the outer frame stays solid
			if cy > 0 && !g.HasWall(cell, maze.North) {
				c.Pixels[py-1][px] = Open
			}
			if cy < g.Height-1 && !g.HasWall(cell, maze.South) {
				c.Pixels[py+1][px] = Open
			}
			if cx > 0 && !g.HasWall(cell, maze.West) {
				c.Pixels[py][px-1] = Open
			}
			if cx < g.Width-1 && !g.HasWall(cell, maze.East) {
				c.Pixels[py][px+1] = Open
			}
		}
	}

	for i := 0; i+1 < len(walk); i++ {
		a, b := walk[i], walk[i+1]
		if !g.InBounds(a) || !g.InBounds(b) {
			continue
		}
		// The pixel between two cell centres
		mx, my := a.X+b.X+1, a.Y+b.Y+1
		if c.Pixels[my][mx] == Open {
			c.Pixels[my][mx] = OnPath
		}
	}

	return c
}
