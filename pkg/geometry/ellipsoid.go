package geometry

import (
	"math"

	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"
)

// Ellipsoid represents an ellipsoid defined by a center and three semi-axis
// vectors. The normalized axis directions form the orientation and the axis
// norms form the anisotropic scale, so intersection is a unit-sphere test in
// the ellipsoid's local space.
type Ellipsoid struct {
	Center   core.Vec3
	A, B, C  core.Vec3
	Material core.Material

	toLocal   core.Mat4 // World-to-local (unit sphere) transform
	normalMat core.Mat3 // Inverse-transpose of the linear block, for normals
}

// NewEllipsoid creates a new ellipsoid from center and semi-axis vectors.
// Panics if any axis vector has zero length.
func NewEllipsoid(center, a, b, c core.Vec3, material core.Material) *Ellipsoid {
	if a.Length() == 0 || b.Length() == 0 || c.Length() == 0 {
		panic("geometry: ellipsoid axis vector has zero length")
	}

	translate := core.NewTranslate(center)
	rotate := core.NewBasis(a.Normalize(), b.Normalize(), c.Normalize())
	scale := core.NewScale(a.Length(), b.Length(), c.Length())
	m := translate.Mul(rotate).Mul(scale)

	return &Ellipsoid{
		Center:    center,
		A:         a,
		B:         b,
		C:         c,
		Material:  material,
		toLocal:   m.Inverse(),
		normalMat: m.UpperLeft().Inverse().Transpose(),
	}
}

// Intersect transforms the ray into the ellipsoid's local space and solves
// the unit-sphere quadratic there
func (e *Ellipsoid) Intersect(ray core.Ray) (*core.Interaction, bool) {
	o := e.toLocal.MulPoint(ray.Origin)
	d := e.toLocal.MulVec(ray.Direction)

	// Unit sphere: |o + t*d|² = 1
	a := d.Dot(d)
	b := 2 * o.Dot(d)
	c := o.Dot(o) - 1

	delta := b*b - 4*a*c
	if delta <= 0 {
		return nil, false
	}

	sqrtDelta := math.Sqrt(delta)
	t1 := (-b - sqrtDelta) / (2 * a)
	t2 := (-b + sqrtDelta) / (2 * a)

	// Smallest positive root
	var t float64
	switch {
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return nil, false
	}

	if !ray.Contains(t) {
		return nil, false
	}

	// Normal transform rule for non-uniform scale: inverse-transpose of the
	// linear block applied to the local-space surface point
	localHit := o.Add(d.Multiply(t))
	normal := e.normalMat.MulVec(localHit).Normalize()

	interaction := &core.Interaction{
		Distance: t,
		Position: ray.At(t),
		Normal:   normal,
		Type:     core.GeometryInteraction,
	}
	interaction.Material = e.Material.Evaluate(interaction)
	return interaction, true
}
