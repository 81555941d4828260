package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lawnchairsociety/amazeing/internal/logger"
)

// Options contains the parameters of one generation run
type Options struct {
	Width, Height int
	Entry, Exit   Point

	// Perfect keeps the carved spanning tree as is. When false, loops are
	// added afterwards.
	Perfect bool

	// Seed makes the run reproducible. Nil picks a seed from the clock.
	Seed *int64

	// Pattern is stamped into the center of the maze. Nil disables it.
	Pattern *Pattern

	// LoopAttempts overrides DefaultLoopAttempts when positive
	LoopAttempts int
}

// DefaultOptions returns options for a perfect maze with the "42" pattern
func DefaultOptions(width, height int, entry, exit Point) Options {
	return Options{
		Width:        width,
		Height:       height,
		Entry:        entry,
		Exit:         exit,
		Perfect:      true,
		Pattern:      Pattern42,
		LoopAttempts: DefaultLoopAttempts,
	}
}

// Result is the output of a generation run. The grid is read-only once
// returned.
type Result struct {
	Grid *Grid
	Path Path

	// Forbidden holds the cells sealed by the pattern stamp
	Forbidden CellSet

	Seed          int64
	Solved        bool
	PatternPlaced bool
	LoopsAdded    int
}

// Generate builds a fresh grid and runs the whole pipeline: predict the
// pattern cells, carve around them, optionally add loops, stamp the pattern
// and solve. Construction and wall errors abort the run. A pattern that does
// not fit or an unreachable exit only degrade the result.
func Generate(opts Options) (*Result, error) {
	g, err := NewGrid(opts.Width, opts.Height, opts.Entry, opts.Exit)
	if err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Debug("Generating maze",
		"width", g.Width, "height", g.Height,
		"entry", g.Entry.String(), "exit", g.Exit.String(),
		"perfect", opts.Perfect, "seed", seed, "random", opts.Seed == nil)

	pattern := opts.Pattern
	if pattern != nil && (pattern.Covers(g.Width, g.Height, g.Entry) || pattern.Covers(g.Width, g.Height, g.Exit)) {
		logger.Warning("Entry or exit lies on the pattern, skipping pattern",
			"pattern", pattern.Name, "entry", g.Entry.String(), "exit", g.Exit.String())
		pattern = nil
	}

	predicted := NewCellSet()
	if pattern != nil {
		predicted = pattern.CellsFor(g.Width, g.Height)
	}

	if err := NewCarver(rng).Run(g, predicted); err != nil {
		return nil, fmt.Errorf("carving failed: %w", err)
	}

	result := &Result{Grid: g, Seed: seed}

	if !opts.Perfect {
		adder := NewLoopAdder(rng)
		if opts.LoopAttempts > 0 {
			adder.Attempts = opts.LoopAttempts
		}
		added, err := adder.Run(g, predicted)
		if err != nil {
			return nil, fmt.Errorf("adding loops failed: %w", err)
		}
		result.LoopsAdded = added
	}

	result.Forbidden = NewCellSet()
	if pattern != nil {
		result.Forbidden = pattern.Apply(g)
		result.PatternPlaced = result.Forbidden.Size() > 0
	}

	path, err := Solve(g, result.Forbidden)
	switch {
	case err == nil:
		result.Path = path
		result.Solved = true
	case errors.Is(err, ErrNoPath):
		logger.Warning("Exit unreachable, maze has no solution", "seed", seed)
		result.Path = Path{}
	default:
		return nil, err
	}

	logger.Debug("Maze generated",
		"seed", seed, "path_length", len(result.Path),
		"loops_added", result.LoopsAdded, "pattern", result.PatternPlaced)

	return result, nil
}

func formatSize(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}
