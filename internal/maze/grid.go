package maze

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Point is a cell coordinate. X is the column, Y the row; (0,0) is the
// top-left cell.
type Point struct {
	X, Y int
}

// Step returns the point one cell away in the given direction
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// ParsePoint reads the "x,y" form produced by String
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return Point{}, fmt.Errorf("invalid point %q: coordinates must be integers", s)
	}
	return Point{X: x, Y: y}, nil
}

// CellSet is a set of cell coordinates
type CellSet = mapset.Set[Point]

// NewCellSet creates a set holding the given points
func NewCellSet(points ...Point) CellSet {
	set := mapset.New[Point]()
	for _, p := range points {
		set.Put(p)
	}
	return set
}

// Neighbor is an in-bounds cell next to another cell, together with the
// direction travelled to reach it.
type Neighbor struct {
	Point Point
	Dir   Direction
}

// Grid is the mutable state of a maze during generation. Each cell holds a
// 4-bit wall mask where a set bit means the wall on that side is present.
type Grid struct {
	Width, Height int
	Entry, Exit   Point

	cells   [][]uint8
	visited CellSet
}

// NewGrid creates a fully walled grid. It fails when the dimensions are not
// positive, when entry or exit lie outside the grid, or when they coincide.
func NewGrid(width, height int, entry, exit Point) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}

	g := &Grid{
		Width:   width,
		Height:  height,
		Entry:   entry,
		Exit:    exit,
		cells:   make([][]uint8, height),
		visited: NewCellSet(),
	}

	if !g.InBounds(entry) {
		return nil, fmt.Errorf("%w: entry %s in %dx%d maze", ErrOutOfBounds, entry, width, height)
	}
	if !g.InBounds(exit) {
		return nil, fmt.Errorf("%w: exit %s in %dx%d maze", ErrOutOfBounds, exit, width, height)
	}
	if entry == exit {
		return nil, fmt.Errorf("%w: both at %s", ErrSameEntryExit, entry)
	}

	for y := 0; y < height; y++ {
		g.cells[y] = make([]uint8, width)
		for x := 0; x < width; x++ {
			g.cells[y][x] = AllWalls
		}
	}

	return g, nil
}

// GridFromRows rebuilds a grid from raw wall masks, e.g. from a parsed
// artifact. Rows must be non-empty and of equal length.
func GridFromRows(rows [][]uint8, entry, exit Point) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimension)
	}
	g, err := NewGrid(len(rows[0]), len(rows), entry, exit)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, y, len(row), g.Width)
		}
		for x, mask := range row {
			g.cells[y][x] = mask & AllWalls
		}
	}
	return g, nil
}

// InBounds checks if the point lies inside the grid
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cell returns the wall mask of a cell
func (g *Grid) Cell(p Point) uint8 {
	return g.cells[p.Y][p.X]
}

// Rows returns a copy of all wall masks, row by row
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.Height)
	for y := range g.cells {
		rows[y] = make([]uint8, g.Width)
		copy(rows[y], g.cells[y])
	}
	return rows
}

// Neighbors returns the in-bounds neighbors of p in AllDirections order.
func (g *Grid) Neighbors(p Point) []Neighbor {
	neighbors := make([]Neighbor, 0, 4)
	for _, dir := range AllDirections() {
		n := p.Step(dir)
		if g.InBounds(n) {
			neighbors = append(neighbors, Neighbor{Point: n, Dir: dir})
		}
	}
	return neighbors
}

// HasWall reports whether the wall on the given side of p is present.
// Points outside the grid are treated as solid.
func (g *Grid) HasWall(p Point, d Direction) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.cells[p.Y][p.X]&d.Bit() != 0
}

// RemoveWall opens the wall between two adjacent cells on both sides.
func (g *Grid) RemoveWall(a, b Point) error {
	dir, err := g.sharedWall(a, b)
	if err != nil {
		return err
	}
	g.cells[a.Y][a.X] &^= dir.Bit()
	g.cells[b.Y][b.X] &^= dir.Opposite().Bit()
	return nil
}

// RestoreWall closes the wall between two adjacent cells on both sides.
func (g *Grid) RestoreWall(a, b Point) error {
	dir, err := g.sharedWall(a, b)
	if err != nil {
		return err
	}
	g.cells[a.Y][a.X] |= dir.Bit()
	g.cells[b.Y][b.X] |= dir.Opposite().Bit()
	return nil
}

func (g *Grid) sharedWall(a, b Point) (Direction, error) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrOutOfBounds, a, b)
	}
	dir, ok := directionBetween(a, b)
	if !ok {
		return 0, fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a, b)
	}
	return dir, nil
}

// seal closes all four walls of a cell without touching its neighbors.
// Callers must make sure the neighbors already hold their walls toward p.
func (g *Grid) seal(p Point) {
	g.cells[p.Y][p.X] = AllWalls
}

func (g *Grid) markVisited(p Point) {
	g.visited.Put(p)
}

// IsVisited reports whether the carver reached p
func (g *Grid) IsVisited(p Point) bool {
	return g.visited.Has(p)
}

// VisitedCount returns the number of cells reached by the carver
func (g *Grid) VisitedCount() int {
	return g.visited.Size()
}

// OpenWallCount returns the number of open walls between adjacent cells.
// Each shared wall is counted once.
func (g *Grid) OpenWallCount() int {
	open := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{X: x, Y: y}
			if x+1 < g.Width && !g.HasWall(p, East) {
				open++
			}
			if y+1 < g.Height && !g.HasWall(p, South) {
				open++
			}
		}
	}
	return open
}
