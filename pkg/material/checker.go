package material

import (
	"math"

	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"
)

// Checker is a procedural checkerboard material that alternates between two
// sub-materials based on the world-space hit position. It exercises the
// evaluate-at-interaction contract: primitives stay unaware of spatial variation.
type Checker struct {
	Even      core.Material
	Odd       core.Material
	CheckSize float64
}

// NewChecker creates a new checkerboard material with the given cell size
func NewChecker(even, odd core.Material, checkSize float64) *Checker {
	return &Checker{Even: even, Odd: odd, CheckSize: checkSize}
}

// Evaluate implements the core.Material interface
func (c *Checker) Evaluate(interaction *core.Interaction) core.MaterialModel {
	p := interaction.Position
	cell := int(math.Floor(p.X/c.CheckSize)) +
		int(math.Floor(p.Y/c.CheckSize)) +
		int(math.Floor(p.Z/c.CheckSize))

	if cell%2 == 0 {
		return c.Even.Evaluate(interaction)
	}
	return c.Odd.Evaluate(interaction)
}
