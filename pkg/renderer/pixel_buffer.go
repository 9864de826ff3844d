package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-tracer/pkg/core"
)

// PixelBuffer is a row-major raster of colors. It implements image.Image so
// it can be handed to any standard encoder.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []core.Color
}

// NewPixelBuffer allocates a black width x height buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]core.Color, width*height),
	}
}

// Pixel returns the color at column x, row y
func (b *PixelBuffer) Pixel(x, y int) core.Color {
	return b.Pix[y*b.Width+x]
}

// SetPixel stores the color at column x, row y
func (b *PixelBuffer) SetPixel(x, y int, c core.Color) {
	b.Pix[y*b.Width+x] = c
}

// ColorModel implements image.Image
func (b *PixelBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image
func (b *PixelBuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return color.RGBA{}
	}
	return b.Pixel(x, y).RGBA()
}
