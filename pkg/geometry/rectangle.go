package geometry

import (
	"math"

	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"
)

// Rectangle represents a finite planar quad centered at Position, oriented by
// a unit normal and an in-plane unit tangent. The bitangent is normal × tangent.
type Rectangle struct {
	Position  core.Vec3
	Normal    core.Vec3
	Tangent   core.Vec3
	Width     float64
	Height    float64
	Material  core.Material
	bitangent core.Vec3 // Cached normal × tangent
}

// NewRectangle creates a new rectangle. Normal and tangent are normalized.
func NewRectangle(position, normal, tangent core.Vec3, width, height float64, material core.Material) *Rectangle {
	n := normal.Normalize()
	t := tangent.Normalize()
	return &Rectangle{
		Position:  position,
		Normal:    n,
		Tangent:   t,
		Width:     width,
		Height:    height,
		Material:  material,
		bitangent: n.Cross(t),
	}
}

// Intersect tests the ray against the rectangle by solving the plane equation
// and projecting the hit offset onto the tangent/bitangent axes
func (r *Rectangle) Intersect(ray core.Ray) (*core.Interaction, bool) {
	const eps = 1e-6

	denom := ray.Direction.Dot(r.Normal)
	if math.Abs(denom) <= eps {
		return nil, false
	}

	t := r.Position.Subtract(ray.Origin).Dot(r.Normal) / denom
	if !ray.Contains(t) {
		return nil, false
	}

	hitPoint := ray.At(t)
	delta := hitPoint.Subtract(r.Position)
	dw := delta.Dot(r.Tangent)
	dh := delta.Dot(r.bitangent)

	if math.Abs(dw) > r.Width/2 || math.Abs(dh) > r.Height/2 {
		return nil, false
	}

	// Normal is the rectangle's own, not flipped toward the ray
	interaction := &core.Interaction{
		Distance: t,
		Position: hitPoint,
		Normal:   r.Normal,
		Type:     core.GeometryInteraction,
	}
	interaction.Material = r.Material.Evaluate(interaction)
	return interaction, true
}
