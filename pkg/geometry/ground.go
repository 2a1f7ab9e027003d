package geometry

import "github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"

// Ground represents an infinite horizontal plane at z = Z with normal (0,0,1)
type Ground struct {
	Z        float64
	Material core.Material
}

// NewGround creates a new ground plane
func NewGround(z float64, material core.Material) *Ground {
	return &Ground{Z: z, Material: material}
}

// Intersect tests the ray against the plane z = Z
func (g *Ground) Intersect(ray core.Ray) (*core.Interaction, bool) {
	if ray.Direction.Z == 0 {
		return nil, false
	}

	t := (g.Z - ray.Origin.Z) / ray.Direction.Z
	if !ray.Contains(t) {
		return nil, false
	}

	interaction := &core.Interaction{
		Distance: t,
		Position: ray.At(t),
		Normal:   core.NewVec3(0, 0, 1),
		Type:     core.GeometryInteraction,
	}
	interaction.Material = g.Material.Evaluate(interaction)
	return interaction, true
}
