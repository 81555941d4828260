package maze

import (
	"math/rand"
	"testing"
)

func TestPattern42Shape(t *testing.T) {
	if Pattern42.Width() != 8 || Pattern42.Height() != 5 {
		t.Errorf("pattern size = %dx%d, want 8x5", Pattern42.Width(), Pattern42.Height())
	}
	w, h := Pattern42.MinimumFit()
	if w != 10 || h != 7 {
		t.Errorf("MinimumFit() = %dx%d, want 10x7", w, h)
	}
	if Pattern42.Count() != 21 {
		t.Errorf("Count() = %d, want 21", Pattern42.Count())
	}
}

func TestPatternFits(t *testing.T) {
	tests := []struct {
		w, h int
		fits bool
	}{
		{3, 3, false},
		{9, 7, false},
		{10, 6, false},
		{10, 7, true},
		{12, 9, true},
		{100, 100, true},
	}
	for _, tt := range tests {
		if got := Pattern42.Fits(tt.w, tt.h); got != tt.fits {
			t.Errorf("Fits(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.fits)
		}
		cells := Pattern42.CellsFor(tt.w, tt.h)
		if tt.fits && cells.Size() != Pattern42.Count() {
			t.Errorf("CellsFor(%d, %d) has %d cells, want %d", tt.w, tt.h, cells.Size(), Pattern42.Count())
		}
		if !tt.fits && cells.Size() != 0 {
			t.Errorf("CellsFor(%d, %d) should be empty", tt.w, tt.h)
		}
	}
}

func TestPatternCellsCentered(t *testing.T) {
	origin := Pattern42.Origin(12, 9)
	if origin != (Point{2, 2}) {
		t.Errorf("Origin(12, 9) = %s, want 2,2", origin)
	}

	cells := Pattern42.CellsFor(12, 9)
	// Top-left stroke of the "4"
	for _, p := range []Point{{2, 2}, {2, 3}, {2, 4}, {3, 4}, {4, 2}} {
		if !cells.Has(p) {
			t.Errorf("expected %s in pattern", p)
		}
	}
	if cells.Has(Point{3, 2}) {
		t.Error("(3,2) is a gap in the pattern")
	}

	cells.Each(func(p Point) {
		if p.X < 1 || p.Y < 1 || p.X > 10 || p.Y > 7 {
			t.Errorf("pattern cell %s touches the border", p)
		}
		if !Pattern42.Covers(12, 9, p) {
			t.Errorf("Covers(%s) = false for a pattern cell", p)
		}
	})
	if Pattern42.Covers(12, 9, Point{0, 0}) {
		t.Error("Covers(0,0) = true")
	}
}

func TestPatternDeterministic(t *testing.T) {
	a := Pattern42.CellsFor(31, 17)
	b := Pattern42.CellsFor(31, 17)
	if a.Size() != b.Size() {
		t.Fatalf("sizes differ: %d vs %d", a.Size(), b.Size())
	}
	a.Each(func(p Point) {
		if !b.Has(p) {
			t.Errorf("%s missing from second computation", p)
		}
	})
}

func TestPatternApply(t *testing.T) {
	g, _ := NewGrid(12, 9, Point{0, 0}, Point{11, 8})
	predicted := Pattern42.CellsFor(12, 9)
	if err := NewCarver(rand.New(rand.NewSource(3))).Run(g, predicted); err != nil {
		t.Fatal(err)
	}

	stamped := Pattern42.Apply(g)
	if stamped.Size() != predicted.Size() {
		t.Fatalf("stamped %d cells, predicted %d", stamped.Size(), predicted.Size())
	}
	stamped.Each(func(p Point) {
		if !predicted.Has(p) {
			t.Errorf("stamped %s was not predicted", p)
		}
		if g.Cell(p) != 0xF {
			t.Errorf("stamped cell %s = %x, want f", p, g.Cell(p))
		}
	})
	checkMirrored(t, g)
}

func TestPatternApplyTooSmall(t *testing.T) {
	g, _ := NewGrid(3, 3, Point{0, 0}, Point{2, 2})
	g.RemoveWall(Point{0, 0}, Point{1, 0})
	before := g.Rows()

	stamped := Pattern42.Apply(g)
	if stamped.Size() != 0 {
		t.Errorf("Apply() on 3x3 stamped %d cells", stamped.Size())
	}
	after := g.Rows()
	for y := range before {
		for x := range before[y] {
			if before[y][x] != after[y][x] {
				t.Fatalf("Apply() mutated cell (%d,%d)", x, y)
			}
		}
	}
}
