package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/yalue/image_utils"
)

var imageColors = map[Pixel]color.RGBA{
	Open:   {R: 0, G: 0, B: 0, A: 255},
	OnPath: {R: 30, G: 200, B: 220, A: 255},
	Entry:  {R: 200, G: 40, B: 200, A: 255},
	Exit:   {R: 220, G: 30, B: 30, A: 255},
	Sealed: {R: 255, G: 255, B: 255, A: 255},
}

func tile(scale int, c color.RGBA) *image.RGBA {
	t := image.NewRGBA(image.Rect(0, 0, scale, scale))
	draw.Draw(t, t.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return t
}

// Image draws every pixel as a scale x scale square. Walls use the colour
// of PaletteAt(palette).
func (c *Canvas) Image(scale, palette int) (*image.RGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("image scale must be at least 1, got %d", scale)
	}

	tiles := map[Pixel]*image.RGBA{Wall: tile(scale, PaletteAt(palette).Color)}
	for p, col := range imageColors {
		tiles[p] = tile(scale, col)
	}

	composite := image_utils.NewCompositeImage()
	for y, row := range c.Pixels {
		for x, p := range row {
			composite.AddImage(tiles[p], image.Pt(x*scale, y*scale))
		}
	}
	return image_utils.ToRGBA(composite), nil
}

// WritePNG encodes the canvas as a PNG image
func (c *Canvas) WritePNG(w io.Writer, scale, palette int) error {
	img, err := c.Image(scale, palette)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
