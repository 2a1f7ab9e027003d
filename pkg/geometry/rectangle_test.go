package geometry

import (
	"math"
	"testing"

	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"
)

func TestRectangle_Intersect_Center(t *testing.T) {
	rect := NewRectangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(1, 0, 0),
		2, 1,
		testMaterial(),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	interaction, ok := rect.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit at rectangle center, got miss")
	}
	if math.Abs(interaction.Distance-5.0) > 1e-9 {
		t.Errorf("Expected distance 5, got %f", interaction.Distance)
	}
	if !vecClose(interaction.Position, core.NewVec3(0, 0, 0), 1e-9) {
		t.Errorf("Expected position at center, got %v", interaction.Position)
	}
	// Normal stays the rectangle's own even though the ray comes from +z
	if !vecClose(interaction.Normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0,0,1), got %v", interaction.Normal)
	}
}

func TestRectangle_Intersect_EdgeTolerance(t *testing.T) {
	const eps = 1e-3
	rect := NewRectangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(1, 0, 0),
		2, 1,
		testMaterial(),
	)

	tests := []struct {
		name    string
		aim     core.Vec3
		wantHit bool
	}{
		{name: "just inside width edge", aim: core.NewVec3(1-eps, 0, 0), wantHit: true},
		{name: "just outside width edge", aim: core.NewVec3(1+eps, 0, 0), wantHit: false},
		{name: "just inside height edge", aim: core.NewVec3(0, 0.5-eps, 0), wantHit: true},
		{name: "just outside height edge", aim: core.NewVec3(0, 0.5+eps, 0), wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.aim.Add(core.NewVec3(0, 0, 5)), core.NewVec3(0, 0, -1))
			_, ok := rect.Intersect(ray)
			if ok != tt.wantHit {
				t.Errorf("Expected hit=%t, got %t", tt.wantHit, ok)
			}
		})
	}
}

func TestRectangle_Intersect_Parallel(t *testing.T) {
	rect := NewRectangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(1, 0, 0),
		2, 1,
		testMaterial(),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(1, 0, 0))

	if _, ok := rect.Intersect(ray); ok {
		t.Error("Expected miss for ray parallel to rectangle plane")
	}
}

func TestRectangle_Intersect_Behind(t *testing.T) {
	rect := NewRectangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(1, 0, 0),
		2, 1,
		testMaterial(),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1))

	if _, ok := rect.Intersect(ray); ok {
		t.Error("Expected miss for rectangle behind the ray origin")
	}
}
