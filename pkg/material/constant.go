package material

import (
	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"
)

// Constant is a spatially uniform Blinn-Phong material
type Constant struct {
	Ambient   core.Vec3
	Diffuse   core.Vec3
	Specular  core.Vec3
	Shininess float64
}

// NewConstant creates a new constant material
func NewConstant(ambient, diffuse, specular core.Vec3, shininess float64) *Constant {
	return &Constant{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// NewDiffuse creates a constant material with matching ambient and diffuse
// colors and no specular highlight
func NewDiffuse(color core.Vec3) *Constant {
	return &Constant{Ambient: color, Diffuse: color, Shininess: 1}
}

// Evaluate implements the core.Material interface
func (m *Constant) Evaluate(_ *core.Interaction) core.MaterialModel {
	return core.MaterialModel{
		Ambient:   m.Ambient,
		Diffuse:   m.Diffuse,
		Specular:  m.Specular,
		Shininess: m.Shininess,
	}
}
