package maze

import (
	"errors"
	"math/rand"
	"testing"
)

// twoRoutes builds a 4x2 grid where the top row is a 3-step route from
// (0,0) to (3,0) and the bottom row offers a 5-step detour.
func twoRoutes(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid(4, 2, Point{0, 0}, Point{3, 0})
	if err != nil {
		t.Fatal(err)
	}
	links := [][2]Point{
		{{0, 0}, {1, 0}}, {{1, 0}, {2, 0}}, {{2, 0}, {3, 0}},
		{{0, 0}, {0, 1}}, {{0, 1}, {1, 1}}, {{1, 1}, {2, 1}}, {{2, 1}, {3, 1}}, {{3, 1}, {3, 0}},
	}
	for _, l := range links {
		if err := g.RemoveWall(l[0], l[1]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

// checkPath walks path from the entry and verifies every step crosses an
// open wall and the walk ends on the exit.
func checkPath(t *testing.T, g *Grid, path Path, forbidden CellSet) {
	t.Helper()
	at := g.Entry
	for i, d := range path {
		if g.HasWall(at, d) {
			t.Fatalf("step %d (%c) from %s crosses a wall", i, d.Letter(), at)
		}
		at = at.Step(d)
		if !g.InBounds(at) {
			t.Fatalf("step %d leaves the grid", i)
		}
		if forbidden.Has(at) {
			t.Fatalf("step %d enters forbidden cell %s", i, at)
		}
	}
	if at != g.Exit {
		t.Fatalf("path ends at %s, want %s", at, g.Exit)
	}
}

func TestSolveShortest(t *testing.T) {
	g := twoRoutes(t)
	path, err := Solve(g, NewCellSet())
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if path.String() != "EEE" {
		t.Errorf("Solve() = %q, want %q", path.String(), "EEE")
	}
}

func TestSolveAvoidsForbidden(t *testing.T) {
	g := twoRoutes(t)
	forbidden := NewCellSet(Point{1, 0})
	path, err := Solve(g, forbidden)
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if path.String() != "SEEEN" {
		t.Errorf("Solve() = %q, want %q", path.String(), "SEEEN")
	}
	checkPath(t, g, path, forbidden)
}

func TestSolveNoPath(t *testing.T) {
	g := twoRoutes(t)
	g.RestoreWall(Point{3, 1}, Point{3, 0})

	path, err := Solve(g, NewCellSet(Point{2, 0}))
	if !errors.Is(err, ErrNoPath) {
		t.Fatalf("Solve() error = %v, want ErrNoPath", err)
	}
	if len(path) != 0 {
		t.Errorf("Solve() returned path %q on failure", path.String())
	}

	closed, _ := NewGrid(3, 3, Point{0, 0}, Point{2, 2})
	if _, err := Solve(closed, NewCellSet()); !errors.Is(err, ErrNoPath) {
		t.Errorf("Solve() on a closed grid error = %v, want ErrNoPath", err)
	}
}

func TestSolveGeneratedMazes(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := carveGrid(t, 17, 11, seed, NewCellSet())
		if seed%2 == 1 {
			NewLoopAdder(rand.New(rand.NewSource(seed))).Run(g, NewCellSet())
		}

		path, err := Solve(g, NewCellSet())
		if err != nil {
			t.Fatalf("seed %d: Solve() failed: %v", seed, err)
		}
		checkPath(t, g, path, NewCellSet())

		dist := Distances(g, g.Entry, NewCellSet())
		if len(path) != dist[g.Exit] {
			t.Errorf("seed %d: path length %d, BFS distance %d", seed, len(path), dist[g.Exit])
		}
	}
}

func TestPathStringRoundTrip(t *testing.T) {
	path, err := ParsePath("EESSWN")
	if err != nil {
		t.Fatalf("ParsePath() failed: %v", err)
	}
	if path.String() != "EESSWN" {
		t.Errorf("String() = %q", path.String())
	}

	cells := path.Walk(Point{0, 0})
	want := []Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {1, 2}, {1, 1}}
	if len(cells) != len(want) {
		t.Fatalf("Walk() visited %d cells, want %d", len(cells), len(want))
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("Walk()[%d] = %s, want %s", i, cells[i], want[i])
		}
	}

	if _, err := ParsePath("EEX"); err == nil {
		t.Error("ParsePath() should reject unknown letters")
	}
	empty, err := ParsePath("")
	if err != nil || len(empty) != 0 {
		t.Errorf("ParsePath(\"\") = %v, %v", empty, err)
	}
}
