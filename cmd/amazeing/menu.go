package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lawnchairsociety/amazeing/internal/maze"
	"github.com/lawnchairsociety/amazeing/internal/render"
)

const clearScreen = "\033[H\033[2J"

// menu is the interactive terminal loop shown after generation
type menu struct {
	in    *bufio.Reader
	out   io.Writer
	color bool

	result     *maze.Result
	regenerate func() (*maze.Result, error)

	showPath bool
	palette  int
}

func newMenu(in io.Reader, out io.Writer, color bool, result *maze.Result, regenerate func() (*maze.Result, error)) *menu {
	return &menu{
		in:         bufio.NewReader(in),
		out:        out,
		color:      color,
		result:     result,
		regenerate: regenerate,
	}
}

// run shows the maze and handles choices until the user quits or input ends
func (m *menu) run() {
	for {
		m.draw()

		choice, ok := m.prompt("\nChoice (1-4): ")
		if !ok {
			fmt.Fprintln(m.out, "\nGoodbye!")
			return
		}

		switch choice {
		case "1":
			result, err := m.regenerate()
			if err != nil {
				fmt.Fprintf(m.out, "Error during regeneration: %v\n", err)
				if _, ok := m.prompt("Press Enter to continue..."); !ok {
					return
				}
				continue
			}
			m.result = result
			m.showPath = false
		case "2":
			m.showPath = !m.showPath
		case "3":
			m.palette = (m.palette + 1) % len(render.Palettes)
		case "4":
			fmt.Fprintln(m.out, "Goodbye!")
			return
		default:
			if _, ok := m.prompt("Invalid choice. Press Enter to continue..."); !ok {
				return
			}
		}
	}
}

func (m *menu) prompt(text string) (string, bool) {
	fmt.Fprint(m.out, text)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func (m *menu) draw() {
	g := m.result.Grid
	canvas := render.Build(g, m.result.Forbidden, m.result.Path, m.showPath)

	pathState := "OFF"
	if m.showPath {
		pathState = "ON"
	}
	if !m.result.Solved {
		pathState = "none"
	}

	if m.color {
		fmt.Fprint(m.out, clearScreen)
	}
	fmt.Fprintf(m.out, "=== A-Maze-ing ===  Entry: (%s)  Exit: (%s)  Seed: %d  Path: %s  Walls: %s\n\n",
		g.Entry, g.Exit, m.result.Seed, pathState, render.PaletteAt(m.palette).Name)

	if m.color {
		fmt.Fprint(m.out, canvas.ANSI(m.palette))
		fmt.Fprintln(m.out)
		fmt.Fprint(m.out, render.Legend())
	} else {
		fmt.Fprint(m.out, canvas.Plain())
	}
	fmt.Fprintln(m.out)

	fmt.Fprintln(m.out, "1. Re-generate a new maze")
	fmt.Fprintln(m.out, "2. Show / Hide path from entry to exit")
	fmt.Fprintln(m.out, "3. Rotate maze wall colours")
	fmt.Fprintln(m.out, "4. Quit")
}
