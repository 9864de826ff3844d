package scene

import (
	"testing"

	"github.com/df07/go-tracer/pkg/core"
)

func TestScene_PreservesOrder(t *testing.T) {
	s := NewScene()
	s.Add(Sphere{Center: core.NewVec3(0, 0, 5), Radius: 1})
	s.Add(Camera{Width: 2, Height: 2})
	s.Add(Plane{Position: core.NewVec3(0, 0, 10), Normal: core.NewVec3(0, 0, -1)})

	expected := []Kind{KindSphere, KindCamera, KindPlane}
	if len(s.Objects) != len(expected) {
		t.Fatalf("Expected %d objects, got %d", len(expected), len(s.Objects))
	}
	for i, kind := range expected {
		if s.Objects[i].Kind() != kind {
			t.Errorf("Object %d: expected %v, got %v", i, kind, s.Objects[i].Kind())
		}
	}
}

func TestScene_GrowsPastOldCapacity(t *testing.T) {
	s := NewScene()
	for i := 0; i < 500; i++ {
		s.Add(Sphere{Center: core.NewVec3(float64(i), 0, 10), Radius: 0.5})
	}
	if got := s.Count(KindSphere); got != 500 {
		t.Errorf("Expected 500 spheres, got %d", got)
	}
}

func TestScene_Cameras(t *testing.T) {
	tests := []struct {
		name     string
		scene    *Scene
		expected int
	}{
		{"empty", NewScene(), 0},
		{"one camera", NewScene(Camera{Width: 2, Height: 2}, Sphere{Radius: 1}), 1},
		{"two cameras", NewScene(Camera{Width: 1, Height: 1}, Plane{}, Camera{Width: 3, Height: 3}), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cameras := tt.scene.Cameras()
			if len(cameras) != tt.expected {
				t.Errorf("Expected %d cameras, got %d", tt.expected, len(cameras))
			}
			if got := tt.scene.Count(KindCamera); got != tt.expected {
				t.Errorf("Expected Count(KindCamera) = %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindCamera: "camera",
		KindSphere: "sphere",
		KindPlane:  "plane",
		Kind(42):   "unknown",
	}
	for kind, expected := range tests {
		if got := kind.String(); got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	}
}
