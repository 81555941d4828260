package output

import (
	"fmt"

	"github.com/lawnchairsociety/amazeing/internal/maze"
	"github.com/spakin/disjoint"
)

// Incoherence is a wall that one cell reports open and its neighbor closed.
// Dir is East or South, pointing from A to B.
type Incoherence struct {
	A, B maze.Point
	Dir  maze.Direction
}

func (i Incoherence) String() string {
	pair := "E/W"
	if i.Dir == maze.South {
		pair = "S/N"
	}
	return fmt.Sprintf("Incoherent %s wall at (%s)<->(%s)", pair, i.A, i.B)
}

// Validate lists every neighbor pair whose shared wall bits disagree, in
// row-major order.
func Validate(a *Artifact) []Incoherence {
	var found []Incoherence
	width, height := a.Width(), a.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := maze.Point{X: x, Y: y}
			for _, dir := range []maze.Direction{maze.East, maze.South} {
				n := p.Step(dir)
				if n.X >= width || n.Y >= height {
					continue
				}
				if a.wall(p, dir) != a.wall(n, dir.Opposite()) {
					found = append(found, Incoherence{A: p, B: n, Dir: dir})
				}
			}
		}
	}
	return found
}

// CheckCoherence wraps ErrIncoherent when Validate finds anything
func CheckCoherence(a *Artifact) error {
	if n := len(Validate(a)); n > 0 {
		return fmt.Errorf("%w: %d wall coherence error(s)", ErrIncoherent, n)
	}
	return nil
}

func (a *Artifact) wall(p maze.Point, d maze.Direction) bool {
	return a.Rows[p.Y][p.X]&d.Bit() != 0
}

// Topology summarizes how the open cells of a maze are connected
type Topology struct {
	Cells  int
	Sealed int

	// OpenWalls counts shared walls open on both sides
	OpenWalls int

	// Components is the number of connected regions of non-sealed cells
	Components int

	// Cycles counts open walls that join cells already connected
	Cycles int

	// BorderOpenings counts open walls on the outer boundary
	BorderOpenings int
}

// Perfect reports whether the open cells form a single spanning tree
func (t Topology) Perfect() bool {
	return t.Components == 1 && t.Cycles == 0
}

// Analyze computes the topology with a union-find over open walls. A cell
// is sealed when all four walls are closed.
func Analyze(a *Artifact) Topology {
	width, height := a.Width(), a.Height()
	t := Topology{Cells: width * height}

	elements := make([][]*disjoint.Element, height)
	for y := range elements {
		elements[y] = make([]*disjoint.Element, width)
		for x := range elements[y] {
			if a.Rows[y][x]&maze.AllWalls == maze.AllWalls {
				t.Sealed++
				continue
			}
			elements[y][x] = disjoint.NewElement()
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := maze.Point{X: x, Y: y}
			if x == 0 && !a.wall(p, maze.West) {
				t.BorderOpenings++
			}
			if x == width-1 && !a.wall(p, maze.East) {
				t.BorderOpenings++
			}
			if y == 0 && !a.wall(p, maze.North) {
				t.BorderOpenings++
			}
			if y == height-1 && !a.wall(p, maze.South) {
				t.BorderOpenings++
			}

			for _, dir := range []maze.Direction{maze.East, maze.South} {
				n := p.Step(dir)
				if n.X >= width || n.Y >= height {
					continue
				}
				if a.wall(p, dir) || a.wall(n, dir.Opposite()) {
					continue
				}
				t.OpenWalls++
				ea, eb := elements[p.Y][p.X], elements[n.Y][n.X]
				if ea.Find() == eb.Find() {
					t.Cycles++
					continue
				}
				disjoint.Union(ea, eb)
			}
		}
	}

	roots := make(map[*disjoint.Element]struct{})
	for y := range elements {
		for _, e := range elements[y] {
			if e != nil {
				roots[e.Find()] = struct{}{}
			}
		}
	}
	t.Components = len(roots)

	return t
}

// CheckPath walks the path from the entry and verifies that each step
// crosses an open wall, that it ends on the exit and that no shorter route
// exists. An empty path is accepted only when the exit is unreachable.
func CheckPath(a *Artifact) error {
	g, err := a.Grid()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadPath, err)
	}

	dist := maze.Distances(g, g.Entry, a.SealedCells())
	shortest, reachable := dist[g.Exit]

	if len(a.Path) == 0 {
		if reachable {
			return fmt.Errorf("%w: path is empty but the exit is reachable in %d steps", ErrBadPath, shortest)
		}
		return nil
	}

	at := g.Entry
	for i, d := range a.Path {
		if g.HasWall(at, d) {
			return fmt.Errorf("%w: step %d (%c) from (%s) crosses a wall", ErrBadPath, i+1, d.Letter(), at)
		}
		at = at.Step(d)
	}
	if at != g.Exit {
		return fmt.Errorf("%w: path ends at (%s), exit is (%s)", ErrBadPath, at, g.Exit)
	}
	if len(a.Path) != shortest {
		return fmt.Errorf("%w: path has %d steps, shortest is %d", ErrBadPath, len(a.Path), shortest)
	}
	return nil
}

// SealedCells returns every cell with all four walls closed
func (a *Artifact) SealedCells() maze.CellSet {
	sealed := maze.NewCellSet()
	for y, row := range a.Rows {
		for x, cell := range row {
			if cell&maze.AllWalls == maze.AllWalls {
				sealed.Put(maze.Point{X: x, Y: y})
			}
		}
	}
	return sealed
}
