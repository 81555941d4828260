package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lawnchairsociety/amazeing/internal/output"
	"github.com/lawnchairsociety/amazeing/internal/render"
)

func main() {
	showMap := flag.Bool("map", false, "Print the maze with its path")
	strict := flag.Bool("strict", false, "Also fail when the maze is not perfect or has no solution")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <maze_file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	a, err := output.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(report(os.Stdout, a, *showMap, *strict))
}

// report prints the checks for a parsed maze and returns the exit code
func report(w io.Writer, a *output.Artifact, showMap, strict bool) int {
	incoherent := output.Validate(a)
	for _, inc := range incoherent {
		fmt.Fprintf(w, "  %s\n", inc)
	}
	if len(incoherent) > 0 {
		fmt.Fprintf(w, "Validation FAILED: %d wall coherence error(s).\n", len(incoherent))
		return 1
	}
	fmt.Fprintf(w, "Validation PASSED: %dx%d maze, walls are coherent.\n", a.Width(), a.Height())

	topo := output.Analyze(a)
	fmt.Fprintf(w, "Cells: %d (%d sealed)  Open walls: %d  Components: %d  Cycles: %d  Border openings: %d\n",
		topo.Cells, topo.Sealed, topo.OpenWalls, topo.Components, topo.Cycles, topo.BorderOpenings)
	if topo.Perfect() {
		fmt.Fprintln(w, "Topology: perfect (single spanning tree)")
	} else {
		fmt.Fprintln(w, "Topology: not perfect")
	}

	code := 0
	if topo.BorderOpenings > 0 {
		fmt.Fprintln(w, "Border: FAILED, outer walls must stay closed")
		code = 1
	}
	if strict && !topo.Perfect() {
		code = 1
	}

	if err := output.CheckPath(a); err != nil {
		fmt.Fprintf(w, "Path: FAILED: %v\n", err)
		code = 1
	} else if len(a.Path) == 0 {
		fmt.Fprintln(w, "Path: none, exit is unreachable")
		if strict {
			code = 1
		}
	} else {
		fmt.Fprintf(w, "Path: OK, %d steps\n", len(a.Path))
	}

	if showMap {
		g, err := a.Grid()
		if err != nil {
			fmt.Fprintf(w, "Map: %v\n", err)
			return 1
		}
		fmt.Fprintln(w)
		fmt.Fprint(w, render.Build(g, a.SealedCells(), a.Path, true).Plain())
	}

	return code
}
