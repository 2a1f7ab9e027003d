package lights

import "github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"

// VPL is a virtual point light: a point approximation of an area emitter.
// Averaging many VPLs approximates the emitter's soft shadow.
type VPL struct {
	Position core.Vec3
	Color    core.Vec3
}

// Light exposes a finite, ordered VPL collection and the emitter's color.
// The renderer treats the collection as read-only.
type Light interface {
	VPLs() []VPL
	Color() core.Vec3
}
