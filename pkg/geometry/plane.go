package geometry

import (
	"math"

	"github.com/df07/go-tracer/pkg/core"
)

// parallelEpsilon is the smallest |normal · direction| treated as crossing the plane
const parallelEpsilon = 1e-8

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Normal vector, need not be unit length
	color  core.Color
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, color core.Color) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal,
		color:  color,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray) (float64, bool) {
	return IntersectPlane(ray.Origin, ray.Direction, p.Point, p.Normal)
}

// Color returns the plane's surface color
func (p *Plane) Color() core.Color {
	return p.color
}

// IntersectPlane computes t = -((O - P) · N) / (N · D).
// Rays parallel to the plane, including a zero normal, never hit, and only
// intersections in front of the origin (t > 0) count.
func IntersectPlane(origin, direction, position, normal core.Vec3) (float64, bool) {
	denominator := normal.Dot(direction)

	// Ray is parallel to plane
	if math.Abs(denominator) < parallelEpsilon {
		return 0, false
	}

	t := -origin.Subtract(position).Dot(normal) / denominator
	if !(t > 0) || math.IsInf(t, 0) {
		return 0, false
	}

	return t, true
}
