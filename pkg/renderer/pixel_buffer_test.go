package renderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/df07/go-tracer/pkg/core"
)

func TestPixelBuffer(t *testing.T) {
	buffer := NewPixelBuffer(3, 2)
	buffer.SetPixel(2, 1, core.Color{R: 1, G: 2, B: 3})

	if got := buffer.Pix[5]; got != (core.Color{R: 1, G: 2, B: 3}) {
		t.Errorf("Expected row-major storage at index 5, got %v", got)
	}
	if got := buffer.Pixel(0, 0); got != core.Black {
		t.Errorf("Expected new buffer to be black, got %v", got)
	}

	var img image.Image = buffer
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Expected bounds 3x2, got %v", img.Bounds())
	}
	if got := img.At(2, 1); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("Expected opaque {1 2 3}, got %v", got)
	}
	if got := img.At(5, 5); got != (color.RGBA{}) {
		t.Errorf("Expected transparent outside bounds, got %v", got)
	}
}
