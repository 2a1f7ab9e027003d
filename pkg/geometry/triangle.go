package geometry

import (
	"math"

	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   core.Material
	normal     core.Vec3 // Cached unit face normal
}

// NewTriangle creates a new triangle from three vertices.
// The face normal follows the counter-clockwise winding of v0, v1, v2.
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		normal:   edge1.Cross(edge2).Normalize(),
	}
}

// NewTriangleWithNormal creates a new triangle with an explicit face normal
func NewTriangleWithNormal(v0, v1, v2, normal core.Vec3, material core.Material) *Triangle {
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		normal:   normal.Normalize(),
	}
}

// Normal returns the triangle's unit face normal
func (tr *Triangle) Normal() core.Vec3 {
	return tr.normal
}

// Intersect tests the ray against the triangle using the Möller-Trumbore algorithm
func (tr *Triangle) Intersect(ray core.Ray) (*core.Interaction, bool) {
	const epsilon = 1e-12

	e1 := tr.V1.Subtract(tr.V0)
	e2 := tr.V2.Subtract(tr.V0)

	s1 := ray.Direction.Cross(e2)
	det := s1.Dot(e1)

	// Ray parallel to the triangle plane (or zero-area triangle)
	if math.Abs(det) < epsilon {
		return nil, false
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(tr.V0)
	s2 := s.Cross(e1)

	t := invDet * s2.Dot(e2)
	u := invDet * s1.Dot(s)
	v := invDet * s2.Dot(ray.Direction)

	if !ray.Contains(t) || u < 0 || v < 0 || u+v > 1 {
		return nil, false
	}

	interaction := &core.Interaction{
		Distance: t,
		Position: ray.At(t),
		Normal:   tr.normal,
		Type:     core.GeometryInteraction,
	}
	interaction.Material = tr.Material.Evaluate(interaction)
	return interaction, true
}
