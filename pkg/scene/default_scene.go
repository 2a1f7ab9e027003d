package scene

import (
	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"
	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/geometry"
	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/lights"
	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/material"
)

// NewDefaultScene creates a box-like scene with a checkered ground, a back
// wall, two ellipsoids and an overhead area light. The world is z-up.
func NewDefaultScene() *Scene {
	white := material.NewConstant(
		core.NewVec3(0.1, 0.1, 0.1),
		core.NewVec3(0.7, 0.7, 0.7),
		core.NewVec3(0.2, 0.2, 0.2),
		16,
	)
	red := material.NewConstant(
		core.NewVec3(0.1, 0.02, 0.02),
		core.NewVec3(0.7, 0.1, 0.1),
		core.NewVec3(0.3, 0.3, 0.3),
		32,
	)
	blue := material.NewConstant(
		core.NewVec3(0.02, 0.02, 0.1),
		core.NewVec3(0.1, 0.1, 0.7),
		core.NewVec3(0.3, 0.3, 0.3),
		32,
	)
	checker := material.NewChecker(
		material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.8)),
		material.NewDiffuse(core.NewVec3(0.2, 0.2, 0.2)),
		1.0,
	)

	// Overhead light facing down, sampled into a 4x4 VPL grid
	light := lights.NewAreaLight(
		core.NewVec3(0, 0, 3.95),
		core.NewVec3(0, 0, -1),
		core.NewVec3(1, 0, 0),
		1.5, 1.5,
		core.NewVec3(1, 1, 1),
		4,
	)

	shapes := []geometry.Shape{
		geometry.NewGround(0, checker),
		geometry.NewRectangle(
			core.NewVec3(0, 2, 2), core.NewVec3(0, -1, 0), core.NewVec3(1, 0, 0),
			8, 4, white,
		),
		geometry.NewEllipsoid(
			core.NewVec3(-1, 0, 1),
			core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1),
			red,
		),
		geometry.NewEllipsoid(
			core.NewVec3(1.2, 0.5, 0.6),
			core.NewVec3(0.9, 0, 0), core.NewVec3(0, 0.6, 0), core.NewVec3(0, 0, 0.6),
			blue,
		),
		light,
	}

	return New(shapes, light, core.NewVec3(0.2, 0.2, 0.2))
}
