package geometry

import (
	"github.com/df07/go-tracer/pkg/scene"
)

// FromScene converts the renderable objects of a scene into shapes, keeping
// their input order. Cameras are skipped.
func FromScene(s *scene.Scene) []Shape {
	shapes := make([]Shape, 0, len(s.Objects))
	for _, obj := range s.Objects {
		switch o := obj.(type) {
		case scene.Sphere:
			shapes = append(shapes, NewSphere(o.Center, o.Radius, o.Color))
		case scene.Plane:
			shapes = append(shapes, NewPlane(o.Position, o.Normal, o.Color))
		}
	}
	return shapes
}
