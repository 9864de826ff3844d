package imageio

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-tracer/pkg/core"
	"github.com/df07/go-tracer/pkg/renderer"
)

func testBuffer() *renderer.PixelBuffer {
	buffer := renderer.NewPixelBuffer(3, 2)
	buffer.SetPixel(0, 0, core.Color{R: 255})
	buffer.SetPixel(1, 0, core.Color{G: 255})
	buffer.SetPixel(2, 1, core.Color{R: 1, G: 2, B: 3})
	return buffer
}

func TestWritePPM(t *testing.T) {
	var out bytes.Buffer
	if err := WritePPM(&out, testBuffer()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	header := "P6\n3 2\n255\n"
	data := out.Bytes()
	if !bytes.HasPrefix(data, []byte(header)) {
		t.Fatalf("Expected header %q, got %q", header, data[:min(len(data), len(header))])
	}

	pixels := data[len(header):]
	if len(pixels) != 3*2*3 {
		t.Fatalf("Expected %d pixel bytes, got %d", 3*2*3, len(pixels))
	}
	expected := []byte{
		255, 0, 0, 0, 255, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 1, 2, 3,
	}
	if !bytes.Equal(pixels, expected) {
		t.Errorf("Expected pixels %v, got %v", expected, pixels)
	}
}

func TestWritePNG(t *testing.T) {
	var out bytes.Buffer
	if err := WritePNG(&out, testBuffer()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 3x2 image, got %v", img.Bounds())
	}
	got := color.RGBAModel.Convert(img.At(2, 1)).(color.RGBA)
	if got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("Expected {1 2 3 255}, got %v", got)
	}
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()

	ppmPath := filepath.Join(dir, "out.ppm")
	if err := SaveImage(ppmPath, testBuffer()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	data, err := os.ReadFile(ppmPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("P6\n")) {
		t.Errorf("Expected PPM output, got %q", data[:3])
	}

	pngPath := filepath.Join(dir, "out.PNG")
	if err := SaveImage(pngPath, testBuffer()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	data, err = os.ReadFile(pngPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("Expected PNG signature, got %q", data[:4])
	}
}

func TestSaveImage_CannotOpen(t *testing.T) {
	err := SaveImage(filepath.Join(t.TempDir(), "missing", "out.ppm"), testBuffer())
	if !errors.Is(err, ErrCannotOpenOutputFile) {
		t.Errorf("Expected ErrCannotOpenOutputFile, got %v", err)
	}
}
