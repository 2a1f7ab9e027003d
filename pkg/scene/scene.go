package scene

import (
	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"
	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/geometry"
	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/lights"
)

// Scene owns the primitive list and the light aggregate. It is immutable
// during rendering and exposes only query operations, so it is freely shared
// across render workers without locking.
type Scene struct {
	shapes  []geometry.Shape
	light   lights.Light
	ambient core.Vec3
}

// New creates a scene from shapes, a light and an ambient color.
// If the light's emitting surface should be visible and occluding, its shape
// must be included in shapes by the caller.
func New(shapes []geometry.Shape, light lights.Light, ambient core.Vec3) *Scene {
	return &Scene{shapes: shapes, light: light, ambient: ambient}
}

// Intersect tests the ray against every primitive and returns the interaction
// with the globally smallest distance, or (nil, false) on a miss
func (s *Scene) Intersect(ray core.Ray) (*core.Interaction, bool) {
	var closest *core.Interaction
	for _, shape := range s.shapes {
		interaction, ok := shape.Intersect(ray)
		if !ok {
			continue
		}
		if closest == nil || interaction.Distance < closest.Distance {
			closest = interaction
		}
	}
	return closest, closest != nil
}

// IsShadowed reports whether any occluder lies within the ray's valid
// interval. Only occluder existence matters, not the nearest hit; the caller
// is responsible for offsetting the shadow ray away from its origin surface.
// Hits on a light's emitting surface do not count: a shadow ray aimed at a
// VPL grazes the emitter rectangle itself, and the emitter must not shadow
// its own light.
func (s *Scene) IsShadowed(ray core.Ray) bool {
	for _, shape := range s.shapes {
		interaction, ok := shape.Intersect(ray)
		if !ok {
			continue
		}
		if interaction.Type == core.LightInteraction {
			continue
		}
		return true
	}
	return false
}

// Light returns the scene's light aggregate
func (s *Scene) Light() lights.Light {
	return s.light
}

// AmbientColor returns the scene's ambient light color
func (s *Scene) AmbientColor() core.Vec3 {
	return s.ambient
}

// PrimitiveCount returns the total number of primitives, counting each mesh
// triangle individually
func (s *Scene) PrimitiveCount() int {
	count := 0
	for _, shape := range s.shapes {
		if mesh, ok := shape.(*geometry.Mesh); ok {
			count += mesh.TriangleCount()
		} else {
			count++
		}
	}
	return count
}
