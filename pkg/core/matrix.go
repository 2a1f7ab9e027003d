package core

// Mat3 is a 3x3 matrix in row-major order
type Mat3 struct {
	M [3][3]float64
}

// MulVec returns the matrix-vector product m * v
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// Transpose returns the transposed matrix
func (m Mat3) Transpose() Mat3 {
	var t Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.M[i][j] = m.M[j][i]
		}
	}
	return t
}

// Determinant returns the determinant of the matrix
func (m Mat3) Determinant() float64 {
	a := m.M
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// Inverse returns the inverse of the matrix via the adjugate.
// Panics if the matrix is singular; callers validate their inputs
// (e.g. non-degenerate ellipsoid axes) at construction time.
func (m Mat3) Inverse() Mat3 {
	det := m.Determinant()
	if det == 0 {
		panic("core: cannot invert singular Mat3")
	}
	a := m.M
	inv := 1.0 / det
	var r Mat3
	r.M[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) * inv
	r.M[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) * inv
	r.M[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) * inv
	r.M[1][0] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) * inv
	r.M[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) * inv
	r.M[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) * inv
	r.M[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) * inv
	r.M[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) * inv
	r.M[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) * inv
	return r
}

// Mat4 is a 4x4 matrix in row-major order, used for affine transforms
// (translation, rotation, scale). The bottom row is expected to be (0,0,0,1).
type Mat4 struct {
	M [4][4]float64
}

// NewTranslate creates a translation matrix
func NewTranslate(t Vec3) Mat4 {
	return Mat4{M: [4][4]float64{
		{1, 0, 0, t.X},
		{0, 1, 0, t.Y},
		{0, 0, 1, t.Z},
		{0, 0, 0, 1},
	}}
}

// NewBasis creates a rotation matrix whose columns are the given basis vectors
func NewBasis(a, b, c Vec3) Mat4 {
	return Mat4{M: [4][4]float64{
		{a.X, b.X, c.X, 0},
		{a.Y, b.Y, c.Y, 0},
		{a.Z, b.Z, c.Z, 0},
		{0, 0, 0, 1},
	}}
}

// NewScale creates a scaling matrix
func NewScale(sx, sy, sz float64) Mat4 {
	return Mat4{M: [4][4]float64{
		{sx, 0, 0, 0},
		{0, sy, 0, 0},
		{0, 0, sz, 0},
		{0, 0, 0, 1},
	}}
}

// Mul returns the matrix product m * other
func (m Mat4) Mul(other Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m.M[i][k] * other.M[k][j]
			}
			r.M[i][j] = sum
		}
	}
	return r
}

// MulPoint transforms a point (homogeneous w=1), applying translation
func (m Mat4) MulPoint(p Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*p.X + m.M[0][1]*p.Y + m.M[0][2]*p.Z + m.M[0][3],
		Y: m.M[1][0]*p.X + m.M[1][1]*p.Y + m.M[1][2]*p.Z + m.M[1][3],
		Z: m.M[2][0]*p.X + m.M[2][1]*p.Y + m.M[2][2]*p.Z + m.M[2][3],
	}
}

// MulVec transforms a direction (homogeneous w=0), ignoring translation
func (m Mat4) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// UpperLeft returns the upper-left 3x3 block of the matrix
func (m Mat4) UpperLeft() Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.M[i][j]
		}
	}
	return r
}

// Inverse returns the inverse of an affine transform. For M = [A t; 0 1]
// the inverse is [A⁻¹ -A⁻¹t; 0 1].
func (m Mat4) Inverse() Mat4 {
	linear := m.UpperLeft().Inverse()
	t := Vec3{X: m.M[0][3], Y: m.M[1][3], Z: m.M[2][3]}
	it := linear.MulVec(t).Negate()
	return Mat4{M: [4][4]float64{
		{linear.M[0][0], linear.M[0][1], linear.M[0][2], it.X},
		{linear.M[1][0], linear.M[1][1], linear.M[1][2], it.Y},
		{linear.M[2][0], linear.M[2][1], linear.M[2][2], it.Z},
		{0, 0, 0, 1},
	}}
}
