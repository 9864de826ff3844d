package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-tracer/pkg/renderer"
)

// ErrCannotOpenOutputFile is returned when the output image cannot be created
var ErrCannotOpenOutputFile = errors.New("cannot open output file")

// WritePPM writes the buffer as a binary PPM (P6) image: a text header
// followed by one red, green, blue byte triple per pixel in row-major order
func WritePPM(w io.Writer, buffer *renderer.PixelBuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", buffer.Width, buffer.Height); err != nil {
		return err
	}
	for _, c := range buffer.Pix {
		bw.WriteByte(c.R)
		bw.WriteByte(c.G)
		bw.WriteByte(c.B)
	}
	return bw.Flush()
}

// WritePNG writes the buffer as a PNG image
func WritePNG(w io.Writer, buffer *renderer.PixelBuffer) error {
	return png.Encode(w, buffer)
}

// SaveImage writes the buffer to filename, as PNG for a .png extension and
// as binary PPM otherwise
func SaveImage(filename string, buffer *renderer.PixelBuffer) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCannotOpenOutputFile, err)
	}

	if strings.EqualFold(filepath.Ext(filename), ".png") {
		err = WritePNG(file, buffer)
	} else {
		err = WritePPM(file, buffer)
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(filename)
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}
