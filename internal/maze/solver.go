package maze

import (
	"fmt"
	"strings"
)

// Path is an ordered sequence of moves from entry to exit
type Path []Direction

// String returns the path as N/E/S/W letters, e.g. "EESSNN"
func (p Path) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, d := range p {
		sb.WriteByte(d.Letter())
	}
	return sb.String()
}

// Walk returns every cell visited when following the path from start,
// start included.
func (p Path) Walk(start Point) []Point {
	cells := make([]Point, 0, len(p)+1)
	cells = append(cells, start)
	current := start
	for _, d := range p {
		current = current.Step(d)
		cells = append(cells, current)
	}
	return cells
}

// ParsePath converts a letter string back into a Path
func ParsePath(s string) (Path, error) {
	path := make(Path, 0, len(s))
	for i := 0; i < len(s); i++ {
		d, ok := DirectionFromLetter(s[i])
		if !ok {
			return nil, fmt.Errorf("invalid direction %q at position %d", s[i], i)
		}
		path = append(path, d)
	}
	return path, nil
}

// Solve finds a shortest path from the grid entry to its exit with a
// breadth-first search over open walls. Forbidden cells are never entered.
// Returns ErrNoPath when the exit is unreachable.
func Solve(g *Grid, forbidden CellSet) (Path, error) {
	type step struct {
		from Point
		dir  Direction
	}

	cameFrom := make(map[Point]step)
	visited := NewCellSet(g.Entry)
	queue := []Point{g.Entry}

	found := false
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == g.Exit {
			found = true
			break
		}

		for _, n := range g.Neighbors(current) {
			if visited.Has(n.Point) || forbidden.Has(n.Point) {
				continue
			}
			if g.HasWall(current, n.Dir) {
				continue
			}
			visited.Put(n.Point)
			cameFrom[n.Point] = step{from: current, dir: n.Dir}
			queue = append(queue, n.Point)
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoPath, g.Entry, g.Exit)
	}

	// Backtrack from the exit through the predecessor map
	var reversed Path
	for at := g.Exit; at != g.Entry; {
		s := cameFrom[at]
		reversed = append(reversed, s.dir)
		at = s.from
	}

	path := make(Path, len(reversed))
	for i, d := range reversed {
		path[len(reversed)-1-i] = d
	}
	return path, nil
}

// Distances returns the BFS distance from start to every reachable,
// non-forbidden cell.
func Distances(g *Grid, start Point, forbidden CellSet) map[Point]int {
	dist := map[Point]int{start: 0}
	queue := []Point{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(current) {
			if _, seen := dist[n.Point]; seen || forbidden.Has(n.Point) {
				continue
			}
			if g.HasWall(current, n.Dir) {
				continue
			}
			dist[n.Point] = dist[current] + 1
			queue = append(queue, n.Point)
		}
	}
	return dist
}
