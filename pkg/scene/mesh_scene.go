package scene

import (
	"fmt"

	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"
	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/geometry"
	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/lights"
	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/loaders"
	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/material"
)

// NewMeshScene creates a scene with a mesh loaded from an OBJ file, placed
// over a ground plane under an overhead area light. Load failures are
// returned to the caller; terminating on them is main's policy, not the
// scene's.
func NewMeshScene(objPath string) (*Scene, error) {
	data, err := loaders.LoadOBJ(objPath)
	if err != nil {
		return nil, fmt.Errorf("mesh scene: %w", err)
	}

	ivory := material.NewConstant(
		core.NewVec3(0.1, 0.1, 0.08),
		core.NewVec3(0.6, 0.6, 0.5),
		core.NewVec3(0.3, 0.3, 0.3),
		24,
	)
	checker := material.NewChecker(
		material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.8)),
		material.NewDiffuse(core.NewVec3(0.2, 0.2, 0.2)),
		1.0,
	)

	mesh := geometry.NewMesh(
		data.Vertices, data.Normals,
		data.VertexIndices, data.NormalIndices,
		ivory,
	)

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
		mesh,
		light,
	}
	return New(shapes, light, core.NewVec3(0.2, 0.2, 0.2)), nil
}
