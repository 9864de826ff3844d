package renderer

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/df07/go-tracer/pkg/core"
	"github.com/df07/go-tracer/pkg/geometry"
	"github.com/df07/go-tracer/pkg/scene"
)

// Config contains rendering configuration
type Config struct {
	Workers int // Goroutines rendering rows: 0 or 1 is sequential, negative means runtime.NumCPU()
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Workers: 1,
	}
}

// Raytracer renders a scene from its single camera into a pixel buffer
type Raytracer struct {
	scene  *scene.Scene
	width  int
	height int
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer for a width x height pixel raster.
// The raster size is independent of the camera's viewport extents.
func NewRaytracer(s *scene.Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:  s,
		width:  width,
		height: height,
		config: DefaultConfig(),
		logger: core.NopLogger{},
	}
}

// SetConfig updates the rendering configuration
func (rt *Raytracer) SetConfig(config Config) {
	rt.config = config
}

// SetLogger sets the logger used for render statistics
func (rt *Raytracer) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	rt.logger = logger
}

// Render traces one ray per pixel and returns the finished buffer. The scene
// must contain exactly one camera. On any error no buffer is returned.
func (rt *Raytracer) Render(ctx context.Context) (*PixelBuffer, RenderStats, error) {
	if rt.width <= 0 || rt.height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("%w: %dx%d", ErrInvalidResolution, rt.width, rt.height)
	}

	viewport, err := FindCamera(rt.scene)
	if err != nil {
		return nil, RenderStats{}, err
	}

	camera := NewCamera(viewport, rt.width, rt.height)
	shapes := geometry.FromScene(rt.scene)
	buffer := NewPixelBuffer(rt.width, rt.height)

	startTime := time.Now()
	hits, workers, err := rt.renderRows(ctx, camera, shapes, buffer)
	if err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels: rt.width * rt.height,
		HitPixels:   hits,
		Shapes:      len(shapes),
		Workers:     workers,
		Duration:    time.Since(startTime),
	}
	rt.logger.Printf("Rendered %dx%d with %d shapes on %d worker(s) in %v (%.1f%% coverage)",
		rt.width, rt.height, stats.Shapes, stats.Workers, stats.Duration, 100*stats.Coverage())

	return buffer, stats, nil
}

// FindCamera returns the scene's only camera
func FindCamera(s *scene.Scene) (scene.Camera, error) {
	cameras := s.Cameras()
	switch len(cameras) {
	case 1:
		return cameras[0], nil
	case 0:
		return scene.Camera{}, &ConfigurationError{Kind: ErrNoCameraFound}
	default:
		return scene.Camera{}, &ConfigurationError{Kind: ErrMultipleCamerasFound, Cameras: len(cameras)}
	}
}

// renderRow fills row y of the buffer and returns how many pixels hit a shape
func (rt *Raytracer) renderRow(y int, camera *Camera, shapes []geometry.Shape, buffer *PixelBuffer) (int, error) {
	hits := 0
	for x := 0; x < rt.width; x++ {
		ray, err := camera.GetRay(x, y)
		if err != nil {
			return hits, fmt.Errorf("pixel (%d, %d): %w", x, y, err)
		}

		pixelColor, isHit := hitWorld(ray, shapes)
		if isHit {
			hits++
		}
		buffer.SetPixel(x, y, pixelColor)
	}
	return hits, nil
}

// hitWorld scans every shape and returns the color of the nearest hit, or
// black when the ray hits nothing. Ties keep the earlier shape.
func hitWorld(ray core.Ray, shapes []geometry.Shape) (core.Color, bool) {
	closestSoFar := math.Inf(1)
	closestColor := core.Black
	hitAnything := false

	for _, shape := range shapes {
		if t, isHit := shape.Hit(ray); isHit && t < closestSoFar {
			hitAnything = true
			closestSoFar = t
			closestColor = shape.Color()
		}
	}

	return closestColor, hitAnything
}
