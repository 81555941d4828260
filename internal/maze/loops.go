package maze

import (
	"math/rand"
)

// DefaultLoopAttempts is the number of random cells the loop adder tries
const DefaultLoopAttempts = 300

// blockSize is the side of the square that must never become fully open
const blockSize = 3

// LoopAdder opens extra walls in a carved maze to create cycles, while
// keeping corridors thin: no 3x3 block of cells is ever left fully open.
type LoopAdder struct {
	Rand     *rand.Rand
	Attempts int
}

// NewLoopAdder creates a loop adder with the default attempt budget
func NewLoopAdder(rng *rand.Rand) *LoopAdder {
	return &LoopAdder{Rand: rng, Attempts: DefaultLoopAttempts}
}

// Run makes Attempts tries and returns the number of walls it kept open.
// Each try picks a random non-forbidden cell and opens the wall toward the
// first non-forbidden neighbor (in shuffled order) that still has one. If the
// opening creates a fully open 3x3 block the wall is restored. Either way the
// try ends there; other neighbors of that cell are not retried.
func (l *LoopAdder) Run(g *Grid, forbidden CellSet) (int, error) {
	attempts := l.Attempts
	if attempts <= 0 {
		attempts = DefaultLoopAttempts
	}

	added := 0
	for i := 0; i < attempts; i++ {
		cell := Point{X: l.Rand.Intn(g.Width), Y: l.Rand.Intn(g.Height)}
		if forbidden.Has(cell) {
			continue
		}

		neighbors := g.Neighbors(cell)
		l.Rand.Shuffle(len(neighbors), func(a, b int) {
			neighbors[a], neighbors[b] = neighbors[b], neighbors[a]
		})

		for _, n := range neighbors {
			if forbidden.Has(n.Point) {
				continue
			}
			if !g.HasWall(cell, n.Dir) {
				continue
			}

			if err := g.RemoveWall(cell, n.Point); err != nil {
				return added, err
			}
			if OpensBlockNear(g, cell) {
				if err := g.RestoreWall(cell, n.Point); err != nil {
					return added, err
				}
			} else {
				added++
			}
			break
		}
	}

	return added, nil
}

// OpensBlockNear reports whether any 3x3 block containing p is fully open.
// Every block that contains a wall of p also contains p, so checking after
// each opening is enough to keep the whole grid free of open blocks.
func OpensBlockNear(g *Grid, p Point) bool {
	for dy := -(blockSize - 1); dy <= 0; dy++ {
		for dx := -(blockSize - 1); dx <= 0; dx++ {
			origin := Point{X: p.X + dx, Y: p.Y + dy}
			if origin.X < 0 || origin.Y < 0 ||
				origin.X > g.Width-blockSize || origin.Y > g.Height-blockSize {
				continue
			}
			if IsOpenBlock(g, origin) {
				return true
			}
		}
	}
	return false
}

// IsOpenBlock reports whether the 3x3 block with top-left corner origin has
// all twelve internal walls cleared (six east walls, six south walls).
func IsOpenBlock(g *Grid, origin Point) bool {
	for y := origin.Y; y < origin.Y+blockSize; y++ {
		for x := origin.X; x < origin.X+blockSize; x++ {
			p := Point{X: x, Y: y}
			if x < origin.X+blockSize-1 && g.HasWall(p, East) {
				return false
			}
			if y < origin.Y+blockSize-1 && g.HasWall(p, South) {
				return false
			}
		}
	}
	return true
}

// HasOpenBlock scans the whole grid for a fully open 3x3 block
func HasOpenBlock(g *Grid) bool {
	for y := 0; y <= g.Height-blockSize; y++ {
		for x := 0; x <= g.Width-blockSize; x++ {
			if IsOpenBlock(g, Point{X: x, Y: y}) {
				return true
			}
		}
	}
	return false
}
