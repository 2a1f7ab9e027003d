package geometry

import (
	"fmt"
	"math"

	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"
)

// Mesh represents a triangle mesh built from indexed vertex positions and
// optional per-vertex normals. Faces must already be triangulated: every
// three entries of the vertex index list form one triangle.
type Mesh struct {
	Vertices      []core.Vec3
	Normals       []core.Vec3
	VertexIndices []int
	NormalIndices []int
	Material      core.Material
}

// NewMesh creates a new mesh and validates the index lists. Malformed index
// data is a precondition violation and fails loudly here, during scene
// construction, rather than mid-render.
func NewMesh(vertices, normals []core.Vec3, vertexIndices, normalIndices []int, material core.Material) *Mesh {
	if len(vertexIndices)%3 != 0 {
		panic("geometry: mesh vertex indices must be a multiple of 3")
	}
	if len(normalIndices) != 0 && len(normalIndices) != len(vertexIndices) {
		panic("geometry: mesh normal indices must be empty or match vertex indices")
	}
	for _, idx := range vertexIndices {
		if idx < 0 || idx >= len(vertices) {
			panic(fmt.Sprintf("geometry: mesh vertex index %d out of range [0,%d)", idx, len(vertices)))
		}
	}
	for _, idx := range normalIndices {
		if idx < 0 || idx >= len(normals) {
			panic(fmt.Sprintf("geometry: mesh normal index %d out of range [0,%d)", idx, len(normals)))
		}
	}

	return &Mesh{
		Vertices:      vertices,
		Normals:       normals,
		VertexIndices: vertexIndices,
		NormalIndices: normalIndices,
		Material:      material,
	}
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.VertexIndices) / 3
}

// Intersect tests the ray against every constituent triangle and returns the
// nearest valid hit. Normals are interpolated from per-vertex normals by
// barycentric weights when present, otherwise the flat face normal is used.
func (m *Mesh) Intersect(ray core.Ray) (*core.Interaction, bool) {
	const epsilon = 1e-12

	closest := math.Inf(1)
	var hit *core.Interaction

	for face := 0; face < len(m.VertexIndices); face += 3 {
		v0 := m.Vertices[m.VertexIndices[face]]
		v1 := m.Vertices[m.VertexIndices[face+1]]
		v2 := m.Vertices[m.VertexIndices[face+2]]

		e1 := v1.Subtract(v0)
		e2 := v2.Subtract(v0)

		s1 := ray.Direction.Cross(e2)
		det := s1.Dot(e1)
		if math.Abs(det) < epsilon {
			continue
		}

		invDet := 1.0 / det
		s := ray.Origin.Subtract(v0)
		s2 := s.Cross(e1)

		t := invDet * s2.Dot(e2)
		u := invDet * s1.Dot(s)
		v := invDet * s2.Dot(ray.Direction)

		if !ray.Contains(t) || u < 0 || v < 0 || u+v > 1 || t >= closest {
			continue
		}

		var normal core.Vec3
		if len(m.NormalIndices) > 0 {
			n0 := m.Normals[m.NormalIndices[face]]
			n1 := m.Normals[m.NormalIndices[face+1]]
			n2 := m.Normals[m.NormalIndices[face+2]]
			normal = n0.Multiply(1 - u - v).Add(n1.Multiply(u)).Add(n2.Multiply(v)).Normalize()
		} else {
			normal = e1.Cross(e2).Normalize()
		}

		closest = t
		interaction := &core.Interaction{
			Distance: t,
			Position: ray.At(t),
			Normal:   normal,
			Type:     core.GeometryInteraction,
		}
		interaction.Material = m.Material.Evaluate(interaction)
		hit = interaction
	}

	return hit, hit != nil
}
