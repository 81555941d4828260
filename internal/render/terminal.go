package render

import (
	"image/color"
	"strings"
)

const (
	ansiReset = "\033[0m"
	openBG    = "\033[40m"
	pathBG    = "\033[46m"
	entryBG   = "\033[45m"
	exitBG    = "\033[41m"
	sealedBG  = "\033[107m"
)

// Palette is one wall colour scheme
type Palette struct {
	Name  string
	ANSI  string
	Color color.RGBA
}

// Palettes are cycled through by the interactive menu
var Palettes = []Palette{
	{Name: "White", ANSI: "\033[47m", Color: color.RGBA{R: 200, G: 200, B: 200, A: 255}},
	{Name: "Yellow", ANSI: "\033[43m", Color: color.RGBA{R: 200, G: 180, B: 0, A: 255}},
	{Name: "Blue", ANSI: "\033[44m", Color: color.RGBA{R: 30, G: 60, B: 200, A: 255}},
	{Name: "Red", ANSI: "\033[41m", Color: color.RGBA{R: 190, G: 30, B: 30, A: 255}},
	{Name: "Green", ANSI: "\033[42m", Color: color.RGBA{R: 40, G: 160, B: 60, A: 255}},
	{Name: "Magenta", ANSI: "\033[45m", Color: color.RGBA{R: 170, G: 40, B: 170, A: 255}},
	{Name: "Cyan", ANSI: "\033[46m", Color: color.RGBA{R: 30, G: 170, B: 180, A: 255}},
	{Name: "Dark", ANSI: "\033[100m", Color: color.RGBA{R: 90, G: 90, B: 90, A: 255}},
}

// PaletteAt returns the palette for an index, wrapping around
func PaletteAt(i int) Palette {
	n := len(Palettes)
	return Palettes[((i%n)+n)%n]
}

var plainGlyphs = map[Pixel]byte{
	Wall:   '#',
	Open:   ' ',
	OnPath: '.',
	Entry:  'E',
	Exit:   'X',
	Sealed: '@',
}

// Plain renders the canvas with one ASCII character per pixel
func (c *Canvas) Plain() string {
	var sb strings.Builder
	sb.Grow(c.Height * (c.Width + 1))
	for _, row := range c.Pixels {
		for _, p := range row {
			sb.WriteByte(plainGlyphs[p])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ANSI renders the canvas as coloured two-space blocks so pixels look
// square in a monospace terminal. Walls use PaletteAt(palette).
func (c *Canvas) ANSI(palette int) string {
	codes := map[Pixel]string{
		Wall:   PaletteAt(palette).ANSI,
		Open:   openBG,
		OnPath: pathBG,
		Entry:  entryBG,
		Exit:   exitBG,
		Sealed: sealedBG,
	}

	var sb strings.Builder
	for _, row := range c.Pixels {
		for _, p := range row {
			sb.WriteString(codes[p])
			sb.WriteString("  ")
			sb.WriteString(ansiReset)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Legend describes the non-wall colours
func Legend() string {
	return "  " + entryBG + "  " + ansiReset + " Entry   " +
		"  " + exitBG + "  " + ansiReset + " Exit    " +
		"  " + pathBG + "  " + ansiReset + " Solution path   " +
		"  " + sealedBG + "  " + ansiReset + " Pattern   " +
		"  " + openBG + "  " + ansiReset + " Passage\n"
}
