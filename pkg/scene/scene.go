package scene

import "github.com/df07/go-tracer/pkg/core"

// Kind identifies the variant of a scene object
type Kind int

const (
	KindCamera Kind = iota
	KindSphere
	KindPlane
)

// String returns the name used for the kind in scene files
func (k Kind) String() string {
	switch k {
	case KindCamera:
		return "camera"
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Object is one entity described by a scene file.
// The set of implementations is closed: Camera, Sphere and Plane.
type Object interface {
	Kind() Kind
	isObject()
}

// Camera defines the world-space viewport extents, not the pixel resolution
type Camera struct {
	Width  float64
	Height float64
}

// Sphere is a solid-colored sphere
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Color
}

// Plane is an infinite solid-colored plane through Position facing Normal
type Plane struct {
	Position core.Vec3
	Normal   core.Vec3
	Color    core.Color
}

func (Camera) Kind() Kind { return KindCamera }
func (Sphere) Kind() Kind { return KindSphere }
func (Plane) Kind() Kind  { return KindPlane }

func (Camera) isObject() {}
func (Sphere) isObject() {}
func (Plane) isObject()  {}

// Scene is the ordered list of objects read from a scene file
type Scene struct {
	Objects []Object
}

// NewScene creates a scene holding the given objects in order
func NewScene(objects ...Object) *Scene {
	return &Scene{Objects: objects}
}

// Add appends an object, preserving input order
func (s *Scene) Add(obj Object) {
	s.Objects = append(s.Objects, obj)
}

// Cameras returns every camera in the scene in input order
func (s *Scene) Cameras() []Camera {
	var cameras []Camera
	for _, obj := range s.Objects {
		if cam, ok := obj.(Camera); ok {
			cameras = append(cameras, cam)
		}
	}
	return cameras
}

// Count returns the number of objects of the given kind
func (s *Scene) Count(kind Kind) int {
	n := 0
	for _, obj := range s.Objects {
		if obj.Kind() == kind {
			n++
		}
	}
	return n
}
