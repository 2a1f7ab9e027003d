package core

import (
	"math"
	"testing"
)

func mat4Identityish(m Mat4, tolerance float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(m.M[i][j]-want) > tolerance {
				return false
			}
		}
	}
	return true
}

func TestMat4_InverseRoundTrip(t *testing.T) {
	// A composite TRS transform like the one the ellipsoid builds
	translate := NewTranslate(NewVec3(1, -2, 3))
	rotate := NewBasis(NewVec3(0, 1, 0), NewVec3(-1, 0, 0), NewVec3(0, 0, 1))
	scale := NewScale(2, 0.5, 3)
	m := translate.Mul(rotate).Mul(scale)

	if !mat4Identityish(m.Mul(m.Inverse()), 1e-12) {
		t.Errorf("Expected M * M⁻¹ = I, got %v", m.Mul(m.Inverse()))
	}
	if !mat4Identityish(m.Inverse().Mul(m), 1e-12) {
		t.Errorf("Expected M⁻¹ * M = I, got %v", m.Inverse().Mul(m))
	}
}

func TestMat4_MulPointAndVec(t *testing.T) {
	m := NewTranslate(NewVec3(5, 0, 0)).Mul(NewScale(2, 2, 2))

	gotPoint := m.MulPoint(NewVec3(1, 1, 1))
	wantPoint := NewVec3(7, 2, 2)
	if gotPoint.Subtract(wantPoint).Length() > 1e-12 {
		t.Errorf("Expected point %v, got %v", wantPoint, gotPoint)
	}

	// Directions ignore translation
	gotVec := m.MulVec(NewVec3(1, 1, 1))
	wantVec := NewVec3(2, 2, 2)
	if gotVec.Subtract(wantVec).Length() > 1e-12 {
		t.Errorf("Expected vector %v, got %v", wantVec, gotVec)
	}
}

func TestMat3_Inverse(t *testing.T) {
	m := Mat3{M: [3][3]float64{
		{2, 0, 0},
		{0, 3, 1},
		{0, 0, 4},
	}}
	inv := m.Inverse()

	// m * inv applied to basis vectors should be identity
	for _, v := range []Vec3{NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)} {
		got := m.MulVec(inv.MulVec(v))
		if got.Subtract(v).Length() > 1e-12 {
			t.Errorf("Expected %v, got %v", v, got)
		}
	}
}

func TestMat3_Inverse_SingularPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on singular matrix")
		}
	}()
	singular := Mat3{M: [3][3]float64{
		{1, 2, 3},
		{2, 4, 6},
		{0, 0, 1},
	}}
	singular.Inverse()
}

func TestMat3_Transpose(t *testing.T) {
	m := Mat3{M: [3][3]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}}
	got := m.Transpose()
	want := Mat3{M: [3][3]float64{
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
	}}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
