package lights

import (
	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"
	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/geometry"
	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/material"
)

// AreaLight is a rectangular emitter approximated by a grid of virtual point
// lights. The light's surface is itself intersectable, so camera rays that
// strike it render the light's color directly.
type AreaLight struct {
	rect  *geometry.Rectangle
	color core.Vec3
	vpls  []VPL
}

// NewAreaLight creates a rectangular area light centered at position with the
// given orientation and size, sampled into a gridN x gridN VPL grid at cell
// centers. Each VPL carries the full light color; the radiance evaluator
// normalizes by the VPL count.
func NewAreaLight(position, normal, tangent core.Vec3, width, height float64, color core.Vec3, gridN int) *AreaLight {
	if gridN < 1 {
		gridN = 1
	}

	emitter := material.NewConstant(color, core.Vec3{}, core.Vec3{}, 1)
	rect := geometry.NewRectangle(position, normal, tangent, width, height, emitter)

	bitangent := rect.Normal.Cross(rect.Tangent)
	vpls := make([]VPL, 0, gridN*gridN)
	for i := 0; i < gridN; i++ {
		for j := 0; j < gridN; j++ {
			du := ((float64(i)+0.5)/float64(gridN) - 0.5) * width
			dv := ((float64(j)+0.5)/float64(gridN) - 0.5) * height
			p := position.Add(rect.Tangent.Multiply(du)).Add(bitangent.Multiply(dv))
			vpls = append(vpls, VPL{Position: p, Color: color})
		}
	}

	return &AreaLight{rect: rect, color: color, vpls: vpls}
}

// VPLs implements the Light interface
func (l *AreaLight) VPLs() []VPL {
	return l.vpls
}

// Color implements the Light interface
func (l *AreaLight) Color() core.Vec3 {
	return l.color
}

// Intersect implements geometry.Shape. Hits on the emitting surface are
// tagged as light interactions so the evaluator can short-circuit shading.
func (l *AreaLight) Intersect(ray core.Ray) (*core.Interaction, bool) {
	interaction, ok := l.rect.Intersect(ray)
	if !ok {
		return nil, false
	}
	interaction.Type = core.LightInteraction
	return interaction, true
}
