package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lawnchairsociety/amazeing/internal/maze"
)

// corridor is a 3x2 maze: the top row is open from west to east, and the
// bottom row hangs off the middle cell.
//
//	(0,0) - (1,0) - (2,0)
//	          |
//	(0,1) - (1,1)   (2,1) sealed
const corridor = `d17
d6f

0,0
2,0
EE
`

func generate(t *testing.T, w, h int, seed int64, perfect bool) *maze.Result {
	t.Helper()
	opts := maze.DefaultOptions(w, h, maze.Point{X: 0, Y: 0}, maze.Point{X: w - 1, Y: h - 1})
	opts.Seed = &seed
	opts.Perfect = perfect
	r, err := maze.Generate(opts)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	return r
}

func TestFormat(t *testing.T) {
	a := &Artifact{
		Rows:  [][]uint8{{0xd, 0x1, 0x7}, {0xd, 0x6, 0xf}},
		Entry: maze.Point{X: 0, Y: 0},
		Exit:  maze.Point{X: 2, Y: 0},
		Path:  maze.Path{maze.East, maze.East},
	}
	if got := Format(a); got != corridor {
		t.Errorf("Format() = %q, want %q", got, corridor)
	}
}

func TestFormatEmptyPath(t *testing.T) {
	a := &Artifact{
		Rows:  [][]uint8{{0xf, 0xf}},
		Entry: maze.Point{X: 0, Y: 0},
		Exit:  maze.Point{X: 1, Y: 0},
	}
	want := "ff\n\n0,0\n1,0\n\n"
	if got := Format(a); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	parsed, err := Parse(strings.NewReader(want))
	if err != nil {
		t.Fatalf("Parse() failed on an unsolved maze: %v", err)
	}
	if len(parsed.Path) != 0 {
		t.Errorf("Path = %q, want empty", parsed.Path)
	}
}

func TestParse(t *testing.T) {
	a, err := Parse(strings.NewReader(corridor))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if a.Width() != 3 || a.Height() != 2 {
		t.Errorf("size = %dx%d, want 3x2", a.Width(), a.Height())
	}
	if a.Rows[1][2] != 0xf {
		t.Errorf("cell (2,1) = %x, want f", a.Rows[1][2])
	}
	if a.Entry != (maze.Point{X: 0, Y: 0}) || a.Exit != (maze.Point{X: 2, Y: 0}) {
		t.Errorf("entry/exit = %s/%s", a.Entry, a.Exit)
	}
	if a.Path.String() != "EE" {
		t.Errorf("Path = %q, want EE", a.Path)
	}
}

func TestParseUpperCaseAndCRLF(t *testing.T) {
	content := strings.ReplaceAll(strings.ToUpper(corridor), "\n", "\r\n")
	a, err := Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if a.Rows[0][0] != 0xd {
		t.Errorf("cell (0,0) = %x, want d", a.Rows[0][0])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"no blank line", "d17\nd6f\n0,0\n2,0\nEE\n", "separated by a blank line"},
		{"starts blank", "\nd17\n\n0,0\n2,0\nEE\n", "separated by a blank line"},
		{"ragged rows", "d17\nd6\n\n0,0\n2,0\nEE\n", "row 1 has wrong length"},
		{"bad hex", "d17\nd6g\n\n0,0\n2,0\nEE\n", "invalid hex character in row 1"},
		{"short metadata", "d17\nd6f\n\n0,0\n2,0", "entry, exit, and path lines"},
		{"extra metadata", "d17\nd6f\n\n0,0\n2,0\nEE\nmore\n", "entry, exit, and path lines"},
		{"bad entry", "d17\nd6f\n\nzero\n2,0\nEE\n", "entry"},
		{"bad path", "d17\nd6f\n\n0,0\n2,0\nEQ\n", "path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.content))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("Parse() error = %v, want ErrMalformed", err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.message)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, perfect := range []bool{true, false} {
		r := generate(t, 15, 10, 3, perfect)
		a := FromResult(r)

		parsed, err := Parse(strings.NewReader(Format(a)))
		if err != nil {
			t.Fatalf("Parse() failed: %v", err)
		}
		if parsed.Entry != a.Entry || parsed.Exit != a.Exit || parsed.Path.String() != a.Path.String() {
			t.Errorf("metadata changed in round trip")
		}
		for y := range a.Rows {
			for x := range a.Rows[y] {
				if parsed.Rows[y][x] != a.Rows[y][x] {
					t.Fatalf("cell (%d,%d) = %x, want %x", x, y, parsed.Rows[y][x], a.Rows[y][x])
				}
			}
		}
	}
}

func TestWriteFileAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	a := FromResult(generate(t, 12, 9, 11, true))

	if err := WriteFile(path, a); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 9+1+3 {
		t.Errorf("file has %d lines, want %d", len(lines), 13)
	}
	if lines[9] != "" {
		t.Errorf("line 10 = %q, want blank separator", lines[9])
	}
	if lines[10] != "0,0" || lines[11] != "11,8" {
		t.Errorf("entry/exit lines = %q, %q", lines[10], lines[11])
	}

	read, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if read.Path.String() != a.Path.String() {
		t.Errorf("Path = %q, want %q", read.Path, a.Path)
	}
}

func TestWriteFileBadPath(t *testing.T) {
	a := &Artifact{Rows: [][]uint8{{0xf}}}
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "maze.txt"), a)
	if err == nil || !strings.Contains(err.Error(), "cannot write to output file") {
		t.Errorf("WriteFile() error = %v", err)
	}
}

func TestArtifactGrid(t *testing.T) {
	a, err := Parse(strings.NewReader(corridor))
	if err != nil {
		t.Fatal(err)
	}
	g, err := a.Grid()
	if err != nil {
		t.Fatalf("Grid() failed: %v", err)
	}
	if g.HasWall(maze.Point{X: 1, Y: 0}, maze.South) {
		t.Error("wall between (1,0) and (1,1) should be open")
	}
	if g.OpenWallCount() != 4 {
		t.Errorf("OpenWallCount() = %d, want 4", g.OpenWallCount())
	}
}
