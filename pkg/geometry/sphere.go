package geometry

import (
	"math"

	"github.com/df07/go-tracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	color  core.Color
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Color) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		color:  color,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray) (float64, bool) {
	return IntersectSphere(ray.Origin, ray.Direction, s.Center, s.Radius)
}

// Color returns the sphere's surface color
func (s *Sphere) Color() core.Color {
	return s.color
}

// IntersectSphere solves |O + tD - C|² = r² for the nearest positive t.
// The smaller root wins when it is in front of the origin, otherwise the
// larger one (the origin is inside the sphere), otherwise there is no hit.
func IntersectSphere(origin, direction, center core.Vec3, radius float64) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := origin.Subtract(center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := direction.LengthSquared()
	b := 2 * direction.Dot(oc)
	c := oc.LengthSquared() - radius*radius

	if a == 0 {
		return 0, false
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)

	t0 := (-b - sqrtD) / (2 * a)
	if t0 > 0 {
		return t0, true
	}

	t1 := (-b + sqrtD) / (2 * a)
	if t1 > 0 {
		return t1, true
	}

	return 0, false
}
