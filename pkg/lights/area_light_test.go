package lights

import (
	"math"
	"testing"

	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"
)

func TestAreaLight_VPLGrid(t *testing.T) {
	position := core.NewVec3(0, 0, 4)
	color := core.NewVec3(1, 0.9, 0.8)
	light := NewAreaLight(
		position,
		core.NewVec3(0, 0, -1),
		core.NewVec3(1, 0, 0),
		2, 1,
		color,
		3,
	)

	vpls := light.VPLs()
	if len(vpls) != 9 {
		t.Fatalf("Expected 9 VPLs for a 3x3 grid, got %d", len(vpls))
	}

	for i, vpl := range vpls {
		if vpl.Color != color {
			t.Errorf("VPL %d: expected color %v, got %v", i, color, vpl.Color)
		}
		// All VPLs lie on the light's plane
		if math.Abs(vpl.Position.Z-position.Z) > 1e-12 {
			t.Errorf("VPL %d: expected z=%f, got %f", i, position.Z, vpl.Position.Z)
		}
		// And within the light's extent
		if math.Abs(vpl.Position.X) > 1 || math.Abs(vpl.Position.Y) > 0.5 {
			t.Errorf("VPL %d: position %v outside light surface", i, vpl.Position)
		}
	}
}

func TestAreaLight_VPLsAreDistinct(t *testing.T) {
	light := NewAreaLight(
		core.NewVec3(0, 0, 4),
		core.NewVec3(0, 0, -1),
		core.NewVec3(1, 0, 0),
		2, 2,
		core.NewVec3(1, 1, 1),
		2,
	)

	vpls := light.VPLs()
	seen := make(map[core.Vec3]bool)
	for _, vpl := range vpls {
		if seen[vpl.Position] {
			t.Errorf("Duplicate VPL position %v", vpl.Position)
		}
		seen[vpl.Position] = true
	}
}

func TestAreaLight_Intersect_TaggedAsLight(t *testing.T) {
	light := NewAreaLight(
		core.NewVec3(0, 0, 4),
		core.NewVec3(0, 0, -1),
		core.NewVec3(1, 0, 0),
		2, 2,
		core.NewVec3(1, 1, 1),
		2,
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	interaction, ok := light.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit on the light surface, got miss")
	}
	if interaction.Type != core.LightInteraction {
		t.Errorf("Expected light interaction, got %v", interaction.Type)
	}
	if math.Abs(interaction.Distance-4.0) > 1e-9 {
		t.Errorf("Expected distance 4, got %f", interaction.Distance)
	}
}

func TestAreaLight_Intersect_Miss(t *testing.T) {
	light := NewAreaLight(
		core.NewVec3(0, 0, 4),
		core.NewVec3(0, 0, -1),
		core.NewVec3(1, 0, 0),
		2, 2,
		core.NewVec3(1, 1, 1),
		2,
	)
	ray := core.NewRay(core.NewVec3(5, 5, 0), core.NewVec3(0, 0, 1))

	if _, ok := light.Intersect(ray); ok {
		t.Error("Expected miss beside the light surface")
	}
}

func TestAreaLight_MinimumGrid(t *testing.T) {
	light := NewAreaLight(
		core.NewVec3(0, 0, 4),
		core.NewVec3(0, 0, -1),
		core.NewVec3(1, 0, 0),
		2, 2,
		core.NewVec3(1, 1, 1),
		0,
	)
	if len(light.VPLs()) != 1 {
		t.Errorf("Expected grid to clamp to a single VPL, got %d", len(light.VPLs()))
	}
}
