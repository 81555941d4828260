package maze

import (
	"math/rand"
)

// Carver carves a perfect maze with an iterative randomized depth-first
// search (recursive backtracker with an explicit stack).
type Carver struct {
	Rand *rand.Rand
}

// NewCarver creates a carver drawing from the given random source
func NewCarver(rng *rand.Rand) *Carver {
	return &Carver{Rand: rng}
}

// Run carves passages starting at the grid entry. Forbidden cells are never
// entered and keep all four walls. Every other cell reachable from the entry
// is visited exactly once, so the opened walls form a spanning tree.
func (c *Carver) Run(g *Grid, forbidden CellSet) error {
	stack := []Point{g.Entry}
	g.markVisited(g.Entry)

	candidates := make([]Neighbor, 0, 4)
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, n := range g.Neighbors(current) {
			if g.IsVisited(n.Point) || forbidden.Has(n.Point) {
				continue
			}
			candidates = append(candidates, n)
		}

		if len(candidates) == 0 {
			// Dead end, backtrack
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[c.Rand.Intn(len(candidates))]
		if err := g.RemoveWall(current, next.Point); err != nil {
			return err
		}
		g.markVisited(next.Point)
		stack = append(stack, next.Point)
	}

	return nil
}
