// Package output reads and writes the maze artifact: one hex digit per
// cell wall mask, a blank line, then the entry, exit and path lines.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lawnchairsociety/amazeing/internal/maze"
)

var (
	// ErrMalformed is returned when an artifact cannot be parsed
	ErrMalformed = errors.New("malformed maze file")

	// ErrIncoherent is returned when two neighbors disagree about a wall
	ErrIncoherent = errors.New("incoherent walls")

	// ErrBadPath is returned when the path line does not lead from entry to exit
	ErrBadPath = errors.New("invalid solution path")
)

const hexDigits = "0123456789abcdef"

// Artifact is the content of a maze file
type Artifact struct {
	Rows  [][]uint8
	Entry maze.Point
	Exit  maze.Point
	Path  maze.Path
}

// FromResult builds the artifact of a generation run
func FromResult(r *maze.Result) *Artifact {
	return &Artifact{
		Rows:  r.Grid.Rows(),
		Entry: r.Grid.Entry,
		Exit:  r.Grid.Exit,
		Path:  r.Path,
	}
}

// Width returns the number of cells per row
func (a *Artifact) Width() int {
	if len(a.Rows) == 0 {
		return 0
	}
	return len(a.Rows[0])
}

// Height returns the number of rows
func (a *Artifact) Height() int {
	return len(a.Rows)
}

// Grid rebuilds a maze.Grid from the artifact rows
func (a *Artifact) Grid() (*maze.Grid, error) {
	return maze.GridFromRows(a.Rows, a.Entry, a.Exit)
}

// Write serializes the artifact. An empty path still produces its line.
func Write(w io.Writer, a *Artifact) error {
	bw := bufio.NewWriter(w)
	for _, row := range a.Rows {
		for _, cell := range row {
			bw.WriteByte(hexDigits[cell&maze.AllWalls])
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	fmt.Fprintf(bw, "%s\n", a.Entry)
	fmt.Fprintf(bw, "%s\n", a.Exit)
	fmt.Fprintf(bw, "%s\n", a.Path)
	return bw.Flush()
}

// Format returns the serialized artifact as a string
func Format(a *Artifact) string {
	var sb strings.Builder
	Write(&sb, a)
	return sb.String()
}

// WriteFile writes the artifact to path, replacing any existing file
func WriteFile(path string, a *Artifact) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot write to output file '%s': %w", path, err)
	}
	if err := Write(f, a); err != nil {
		f.Close()
		return fmt.Errorf("cannot write to output file '%s': %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write to output file '%s': %w", path, err)
	}
	return nil
}

// Parse reads an artifact. The grid block and the metadata block are
// separated by the first blank line; rows must be non-empty, of equal
// length and made of hex digits only.
func Parse(r io.Reader) (*Artifact, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading maze file: %w", err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")

	blank := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank = i
			break
		}
	}
	if blank <= 0 {
		return nil, fmt.Errorf("%w: file must have a maze grid and a metadata block separated by a blank line", ErrMalformed)
	}

	a := &Artifact{}
	width := len(strings.TrimSpace(lines[0]))
	for y, line := range lines[:blank] {
		line = strings.TrimSpace(line)
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has wrong length", ErrMalformed, y)
		}
		row := make([]uint8, width)
		for x := 0; x < width; x++ {
			v := strings.IndexByte(hexDigits, lower(line[x]))
			if v < 0 {
				return nil, fmt.Errorf("%w: invalid hex character in row %d", ErrMalformed, y)
			}
			row[x] = uint8(v)
		}
		a.Rows = append(a.Rows, row)
	}

	meta := lines[blank+1:]
	// Trailing blank lines past the path line carry nothing
	for len(meta) > 3 && strings.TrimSpace(meta[len(meta)-1]) == "" {
		meta = meta[:len(meta)-1]
	}
	if len(meta) != 3 {
		return nil, fmt.Errorf("%w: metadata block must have entry, exit, and path lines", ErrMalformed)
	}

	if a.Entry, err = maze.ParsePoint(strings.TrimSpace(meta[0])); err != nil {
		return nil, fmt.Errorf("%w: entry: %v", ErrMalformed, err)
	}
	if a.Exit, err = maze.ParsePoint(strings.TrimSpace(meta[1])); err != nil {
		return nil, fmt.Errorf("%w: exit: %v", ErrMalformed, err)
	}
	if a.Path, err = maze.ParsePath(strings.TrimSpace(meta[2])); err != nil {
		return nil, fmt.Errorf("%w: path: %v", ErrMalformed, err)
	}

	return a, nil
}

// ReadFile parses the artifact stored at path
func ReadFile(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
