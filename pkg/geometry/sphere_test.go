package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-tracer/pkg/core"
)

func TestIntersectSphere(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		center    core.Vec3
		radius    float64
		expectHit bool
		expectedT float64
	}{
		{
			name:      "head on",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(0, 0, 1),
			center:    core.NewVec3(0, 0, 5),
			radius:    1,
			expectHit: true,
			expectedT: 4,
		},
		{
			name:      "unnormalized direction",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(0, 0, 2),
			center:    core.NewVec3(0, 0, 5),
			radius:    1,
			expectHit: true,
			expectedT: 2,
		},
		{
			name:      "origin inside returns far root",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(1, 0, 0),
			center:    core.NewVec3(0, 0, 0),
			radius:    2,
			expectHit: true,
			expectedT: 2,
		},
		{
			name:      "tangent",
			origin:    core.NewVec3(0, 1, 0),
			direction: core.NewVec3(0, 0, 1),
			center:    core.NewVec3(0, 0, 5),
			radius:    1,
			expectHit: true,
			expectedT: 5,
		},
		{
			name:      "miss",
			origin:    core.NewVec3(2, 0, 0),
			direction: core.NewVec3(0, 1, 0),
			center:    core.NewVec3(0, 0, 0),
			radius:    1,
			expectHit: false,
		},
		{
			name:      "sphere behind origin",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(0, 0, 1),
			center:    core.NewVec3(0, 0, -5),
			radius:    1,
			expectHit: false,
		},
		{
			name:      "zero radius off axis",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(0, 0, 1),
			center:    core.NewVec3(0.1, 0, 5),
			radius:    0,
			expectHit: false,
		},
		{
			name:      "zero direction",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(0, 0, 0),
			center:    core.NewVec3(0, 0, 5),
			radius:    1,
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance, isHit := IntersectSphere(tt.origin, tt.direction, tt.center, tt.radius)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got hit=%v (t=%f)", tt.expectHit, isHit, distance)
			}
			if isHit && math.Abs(distance-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, distance)
			}
			if !isHit && distance != 0 {
				t.Errorf("Expected zero distance on miss, got %f", distance)
			}
		})
	}
}

func TestSphere_Hit(t *testing.T) {
	red := core.Color{R: 255}
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1, red)

	distance, isHit := sphere.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(distance-4) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", distance)
	}
	if sphere.Color() != red {
		t.Errorf("Expected color %v, got %v", red, sphere.Color())
	}
}
