package maze

import (
	"github.com/lawnchairsociety/amazeing/internal/logger"
)

// Pattern is a fixed bitmap of cells that must end up fully walled. A 1
// marks a sealed cell, a 0 leaves the generated cell alone.
type Pattern struct {
	Name string
	Rows [][]uint8
}

// Pattern42 draws "42" in sealed cells
var Pattern42 = &Pattern{
	Name: "42",
	Rows: [][]uint8{
		{1, 0, 1, 0, 0, 1, 1, 1},
		{1, 0, 1, 0, 0, 0, 0, 1},
		{1, 1, 1, 0, 0, 1, 1, 1},
		{0, 0, 1, 0, 0, 1, 1, 0},
		{0, 0, 1, 0, 0, 1, 1, 1},
	},
}

// Width returns the number of bitmap columns
func (p *Pattern) Width() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return len(p.Rows[0])
}

// Height returns the number of bitmap rows
func (p *Pattern) Height() int {
	return len(p.Rows)
}

// MinimumFit returns the smallest grid that can hold the pattern with a
// one-cell border on every side.
func (p *Pattern) MinimumFit() (int, int) {
	return p.Width() + 2, p.Height() + 2
}

// Fits reports whether a width x height grid can hold the pattern
func (p *Pattern) Fits(width, height int) bool {
	minW, minH := p.MinimumFit()
	return width >= minW && height >= minH
}

// Origin returns the top-left grid cell of the centered pattern
func (p *Pattern) Origin(width, height int) Point {
	return Point{X: (width - p.Width()) / 2, Y: (height - p.Height()) / 2}
}

// CellsFor returns the absolute coordinates of every sealed pattern cell
// when centered in a width x height grid, or an empty set when it does not
// fit. It depends on the dimensions only, so the prediction made before
// carving always matches what Apply stamps afterwards.
func (p *Pattern) CellsFor(width, height int) CellSet {
	cells := NewCellSet()
	if !p.Fits(width, height) {
		return cells
	}

	origin := p.Origin(width, height)
	for row, bits := range p.Rows {
		for col, bit := range bits {
			if bit != 0 {
				cells.Put(Point{X: origin.X + col, Y: origin.Y + row})
			}
		}
	}
	return cells
}

// Count returns the number of sealed cells in the bitmap
func (p *Pattern) Count() int {
	n := 0
	for _, bits := range p.Rows {
		for _, bit := range bits {
			if bit != 0 {
				n++
			}
		}
	}
	return n
}

// Apply seals every pattern cell of g, overwriting whatever was carved there,
// and returns the stamped set. When the grid is too small nothing is changed,
// a warning is logged and the returned set is empty.
func (p *Pattern) Apply(g *Grid) CellSet {
	if !p.Fits(g.Width, g.Height) {
		minW, minH := p.MinimumFit()
		logger.Warning("Maze too small for pattern, skipping",
			"pattern", p.Name,
			"need", formatSize(minW, minH),
			"got", formatSize(g.Width, g.Height))
		return NewCellSet()
	}

	stamped := p.CellsFor(g.Width, g.Height)
	stamped.Each(func(c Point) {
		g.seal(c)
	})
	return stamped
}

// Covers reports whether pt is one of the sealed cells in a width x height grid
func (p *Pattern) Covers(width, height int, pt Point) bool {
	if !p.Fits(width, height) {
		return false
	}
	origin := p.Origin(width, height)
	row, col := pt.Y-origin.Y, pt.X-origin.X
	if row < 0 || row >= p.Height() || col < 0 || col >= p.Width() {
		return false
	}
	return p.Rows[row][col] != 0
}
