package geometry

import (
	"github.com/df07/go-tracer/pkg/core"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the distance along the ray to the nearest surface point in
	// front of the origin, or false when the ray misses
	Hit(ray core.Ray) (float64, bool)
	Color() core.Color
}
