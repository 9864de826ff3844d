package renderer

import (
	"github.com/df07/go-tracer/pkg/core"
	"github.com/df07/go-tracer/pkg/scene"
)

// Camera generates one ray per pixel through the center of that pixel.
// It sits at the world origin looking down +Z with the viewport at z = 1.
type Camera struct {
	origin      core.Vec3
	width       float64 // Viewport width in world units
	height      float64 // Viewport height in world units
	pixelWidth  float64
	pixelHeight float64
}

// NewCamera maps a scene camera's viewport onto a columns x rows raster
func NewCamera(viewport scene.Camera, columns, rows int) *Camera {
	return &Camera{
		origin:      core.NewVec3(0, 0, 0),
		width:       viewport.Width,
		height:      viewport.Height,
		pixelWidth:  viewport.Width / float64(columns),
		pixelHeight: viewport.Height / float64(rows),
	}
}

// GetRay returns the ray through the center of pixel (x, y). Row 0 is the
// top of the image.
func (c *Camera) GetRay(x, y int) (core.Ray, error) {
	target := core.NewVec3(
		-c.width/2+c.pixelWidth*(float64(x)+0.5),
		-(-c.height/2 + c.pixelHeight*(float64(y)+0.5)),
		1,
	)
	direction, err := target.Subtract(c.origin).Normalize()
	if err != nil {
		return core.Ray{}, err
	}
	return core.NewRay(c.origin, direction), nil
}
